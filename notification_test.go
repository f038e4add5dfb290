package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpiration(t *testing.T) {
	require.EqualValues(t, 0, ExpireTimeoutNever.Milliseconds())
	require.EqualValues(t, -1, ExpireTimeoutSetByNotificationServer.Milliseconds())

	// test assignment compiles:
	n := Notification{}
	n.ExpireTimeout = ExpireTimeoutNever
	n.ExpireTimeout = ExpireTimeoutSetByNotificationServer
	n.ExpireTimeout = 5 * time.Second
}

func TestExpireMilliseconds(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    int64
		ok      bool
	}{
		{"server default", ExpireTimeoutSetByNotificationServer, 0, false},
		{"other negative", -5 * time.Second, 0, false},
		{"never", ExpireTimeoutNever, 0, false},
		{"sub millisecond", 500 * time.Microsecond, 0, false},
		{"one millisecond", time.Millisecond, 1, true},
		{"seconds", 5 * time.Second, 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, ok := Notification{ExpireTimeout: tt.timeout}.expireMilliseconds()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, ms)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := Notification{AppName: "demo", Summary: "Hi", Body: "there"}
	c := n.Clone()
	require.Equal(t, n, c)

	c.Summary = "changed"
	require.Equal(t, "Hi", n.Summary)
}
