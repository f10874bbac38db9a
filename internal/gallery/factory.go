package gallery

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the long-form display date stored on every entry.
const DateLayout = "January 2, 2006"

// ErrMissingMedia is returned when an entry is built without a media reference.
var ErrMissingMedia = errors.New("media is required")

// NewEntryInput is the typed payload of the "new entry" form.
type NewEntryInput struct {
	MediaRef    string
	Location    string
	Description string
	RawTags     string
}

// Factory builds new entries from form input.
type Factory struct {
	now   func() time.Time
	newID func() string
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithClock overrides the clock used for the creation date.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) { f.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) FactoryOption {
	return func(f *Factory) { f.newID = newID }
}

// NewFactory creates a new entry factory
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build assigns identity and creation date to a new entry. Only the media
// reference is validated here; location and description are checked by the
// form layer.
func (f *Factory) Build(in NewEntryInput) (Entry, error) {
	if strings.TrimSpace(in.MediaRef) == "" {
		return Entry{}, ErrMissingMedia
	}

	return Entry{
		ID:          f.newID(),
		Media:       in.MediaRef,
		Location:    in.Location,
		CreatedAt:   f.now().Format(DateLayout),
		Description: in.Description,
		Tags:        ParseTags(in.RawTags),
	}, nil
}
