package notify

import (
	"context"
	"fmt"
)

// Handle is a notification that has been shown, together with the ID the
// server assigned to it.
//
// The embedded Notification is a private copy and may be modified freely.
// Changes are not visible on screen until Update is called; until then ID
// refers to the previously shown contents.
type Handle struct {
	Notification

	id         uint32
	dispatcher Dispatcher
}

// Show displays n using d and returns a Handle for it.
func Show(ctx context.Context, d Dispatcher, n Notification) (*Handle, error) {
	id, err := d.Dispatch(ctx, n, nil)
	if err != nil {
		return nil, err
	}
	return &Handle{
		Notification: n.Clone(),
		id:           id,
		dispatcher:   d,
	}, nil
}

// ShowResult is delivered by ShowAsync.
type ShowResult struct {
	Handle *Handle
	Err    error
}

// ShowAsync runs Show on a new goroutine. The returned channel receives
// exactly one result and is then closed.
//
// The dispatch itself still blocks the goroutine running it.
func ShowAsync(ctx context.Context, d Dispatcher, n Notification) <-chan ShowResult {
	n = n.Clone()
	ch := make(chan ShowResult, 1)
	go func() {
		defer close(ch)
		h, err := Show(ctx, d, n)
		ch <- ShowResult{Handle: h, Err: err}
	}()
	return ch
}

// ID returns the ID of the most recently shown state of the notification.
func (h *Handle) ID() uint32 {
	return h.id
}

// Update replaces the on-screen notification with the current contents of h.
//
// On failure the ID is left unchanged, and the on-screen state should be
// treated as unknown.
func (h *Handle) Update(ctx context.Context) error {
	previous := h.id
	id, err := h.dispatcher.Dispatch(ctx, h.Notification, &previous)
	if err != nil {
		return err
	}
	h.id = id
	return nil
}

// MustUpdate is like Update but panics if the notification could not be sent.
func (h *Handle) MustUpdate(ctx context.Context) {
	if err := h.Update(ctx); err != nil {
		panic(fmt.Errorf("could not send notification: %w", err))
	}
}

// Close removes the notification from the screen. It returns
// ErrCloseUnsupported if the Dispatcher does not implement Closer.
func (h *Handle) Close(ctx context.Context) error {
	c, ok := h.dispatcher.(Closer)
	if !ok {
		return ErrCloseUnsupported
	}
	return c.CloseNotification(ctx, h.id)
}
