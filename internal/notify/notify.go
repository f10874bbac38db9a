package notify

import (
	"context"
	"time"
)

// Kind identifies a user-feedback event.
type Kind string

const (
	EntryCreated     Kind = "entry.created"
	EntryLiked       Kind = "entry.liked"
	EntryUnliked     Kind = "entry.unliked"
	EntryUpdated     Kind = "entry.updated"
	EntryDeleted     Kind = "entry.deleted"
	AdminLogin       Kind = "admin.login"
	AdminLoginFailed Kind = "admin.login_failed"
)

// Event is a fire-and-forget message for whoever displays feedback to the user.
type Event struct {
	Kind    Kind      `json:"kind"`
	EntryID string    `json:"entryId,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier delivers events. Delivery failures are the notifier's own problem
// and are never reported back to the caller.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// New stamps an event with the current time.
func New(kind Kind, entryID, message string) Event {
	return Event{Kind: kind, EntryID: entryID, Message: message, At: time.Now().UTC()}
}

// Multi fans an event out to several notifiers.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, ev)
		}
	}
}

// Nop drops every event.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, Event) {}
