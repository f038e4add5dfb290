/*
The notify package shows desktop notifications on Unix-like systems and keeps
track of the ID the notification server assigned to each one, so the
notification can later be replaced in place instead of duplicated.

Two Dispatchers are provided. NotifySend runs the notify-send program and reads
the ID it prints with --print-id. DBus talks to org.freedesktop.Notifications
over the session bus directly, see https://developer.gnome.org/notification-spec/
and https://github.com/godbus/dbus

Each notification displayed is allocated a unique ID by the server. (see Dispatcher)
This ID unique within the dbus session. While the notification server is running,
the ID will not be recycled unless the capacity of a uint32 is exceeded.

Show returns a Handle wrapping a copy of the Notification and its ID. Fields of
the Handle can be modified directly, and Update atomically replaces the
on-screen notification with the new contents:

	h, err := notify.Show(ctx, notify.NewNotifySend(), notify.Notification{
		AppName: "demo",
		Summary: "Downloading",
		Body:    "0%",
	})
	if err != nil {
		return err
	}
	h.Body = "50%"
	if err := h.Update(ctx); err != nil {
		return err
	}

The server may return a different ID even when a replacement was requested;
the Handle always stores the most recently returned one.
*/
package notify
