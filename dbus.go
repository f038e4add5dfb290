package notify

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	dbusObjectPath             = "/org/freedesktop/Notifications" // the DBUS object path
	dbusNotificationsInterface = "org.freedesktop.Notifications"  // DBUS Interface
	callGetCapabilities        = "org.freedesktop.Notifications.GetCapabilities"
	callCloseNotification      = "org.freedesktop.Notifications.CloseNotification"
	callNotify                 = "org.freedesktop.Notifications.Notify"
	callGetServerInformation   = "org.freedesktop.Notifications.GetServerInformation"
)

// DBus is a Dispatcher calling the notification server over the session bus.
type DBus struct {
	obj    dbus.BusObject
	logger *log.Logger
}

// NewDBus creates a DBus dispatcher using conn.
// Only WithLogger applies to it.
func NewDBus(conn *dbus.Conn, opts ...Option) *DBus {
	o := applyOptions(opts)
	return &DBus{
		obj:    conn.Object(dbusNotificationsInterface, dbusObjectPath),
		logger: o.logger,
	}
}

// Dispatch implements Dispatcher.
//
//	UINT32 org.freedesktop.Notifications.Notify (
//	    STRING app_name,
//	    UINT32 replaces_id,
//	    STRING app_icon,
//	    STRING summary,
//	    STRING body,
//	    ARRAY  actions,
//	    DICT   hints,
//	    INT32  expire_timeout
//	);
//
// replaces_id is 0 when previous is nil. Unlike NotifySend, ExpireTimeoutNever
// is sent as an expire_timeout of 0.
func (d *DBus) Dispatch(ctx context.Context, n Notification, previous *uint32) (uint32, error) {
	var replacesID uint32
	if previous != nil {
		replacesID = *previous
	}

	call := d.obj.CallWithContext(ctx, callNotify, 0,
		n.AppName,
		replacesID,
		n.AppIcon,
		n.Summary,
		n.Body,
		[]string{},
		map[string]dbus.Variant{},
		dbusExpireTimeout(n.ExpireTimeout))
	if call.Err != nil {
		return 0, fmt.Errorf("calling %s: %w", callNotify, call.Err)
	}
	var ret uint32
	if err := call.Store(&ret); err != nil {
		d.logger.Printf("error getting uint32 ret value: %v", err)
		return 0, err
	}
	return ret, nil
}

// CloseNotification causes a notification to be forcefully closed and removed from the user's view.
// It can be used, for example, in the event that what the notification pertains to is no longer relevant,
// or to cancel a notification with no expiration time.
//
// If the notification no longer exists, an empty D-BUS Error message is sent back.
func (d *DBus) CloseNotification(ctx context.Context, id uint32) error {
	call := d.obj.CallWithContext(ctx, callCloseNotification, 0, id)
	if call.Err != nil {
		return fmt.Errorf("closing notification %d: %w", id, call.Err)
	}
	return nil
}

// Capabilities gets the capabilities of the notification server.
// Each string describes an optional capability implemented by the server.
func (d *DBus) Capabilities(ctx context.Context) ([]string, error) {
	call := d.obj.CallWithContext(ctx, callGetCapabilities, 0)
	if call.Err != nil {
		d.logger.Printf("error calling GetCapabilities: %v", call.Err)
		return []string{}, call.Err
	}
	var ret []string
	if err := call.Store(&ret); err != nil {
		d.logger.Printf("error getting capabilities ret value: %v", err)
		return ret, err
	}
	return ret, nil
}

// ServerInformation is a holder for information returned by
// GetServerInformation call.
type ServerInformation struct {
	Name        string
	Vendor      string
	Version     string
	SpecVersion string
}

// ServerInformation returns the information on the server.
//
//	GetServerInformation Return Values
//
//		Name		 Type	  Description
//		name		 STRING	  The product name of the server.
//		vendor		 STRING	  The vendor name. For example, "KDE," "GNOME," "freedesktop.org," or "Microsoft."
//		version		 STRING	  The server's version number.
//		spec_version STRING	  The specification version the server is compliant with.
func (d *DBus) ServerInformation(ctx context.Context) (ServerInformation, error) {
	call := d.obj.CallWithContext(ctx, callGetServerInformation, 0)
	if call.Err != nil {
		d.logger.Printf("Error calling %v: %v", callGetServerInformation, call.Err)
		return ServerInformation{}, call.Err
	}

	ret := ServerInformation{}
	if err := call.Store(&ret.Name, &ret.Vendor, &ret.Version, &ret.SpecVersion); err != nil {
		d.logger.Printf("error reading %v return values: %v", callGetServerInformation, err)
		return ret, err
	}
	return ret, nil
}

// dbusExpireTimeout maps a timeout to expire_timeout:
// -1 for the server default, 0 for never, milliseconds otherwise.
func dbusExpireTimeout(d time.Duration) int32 {
	if d < 0 {
		return -1
	}
	ms := d.Milliseconds()
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(ms)
}
