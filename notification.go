package notify

import "time"

const (
	// ExpireTimeoutSetByNotificationServer leaves the expiration to the server.
	// Any negative timeout is treated the same way.
	ExpireTimeoutSetByNotificationServer = time.Millisecond * -1
	// ExpireTimeoutNever asks for a notification that does not expire.
	ExpireTimeoutNever time.Duration = 0
)

// Notification holds all information needed for creating a notification
type Notification struct {
	AppName string
	// See predefined icons here: http://standards.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
	// Optional.
	AppIcon string
	Summary string
	Body    string
	// ExpireTimeout: duration to show notification.
	// See ExpireTimeoutSetByNotificationServer and ExpireTimeoutNever.
	// Positive values are sent with millisecond precision.
	ExpireTimeout time.Duration
}

// Clone returns an independent copy of n.
func (n Notification) Clone() Notification {
	return n
}

// expireMilliseconds reports the timeout in milliseconds when n asks to
// expire after a fixed delay.
func (n Notification) expireMilliseconds() (int64, bool) {
	ms := n.ExpireTimeout.Milliseconds()
	if ms <= 0 {
		return 0, false
	}
	return ms, true
}
