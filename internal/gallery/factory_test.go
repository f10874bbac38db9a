package gallery

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Build(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	f := NewFactory(
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string { return "fixed-id" }),
	)

	e, err := f.Build(NewEntryInput{
		MediaRef:    "media-1",
		Location:    "Yosemite",
		Description: "Half Dome",
		RawTags:     " nature, , hiking ,sunset ",
	})
	require.NoError(t, err)

	assert.Equal(t, Entry{
		ID:          "fixed-id",
		Media:       "media-1",
		Location:    "Yosemite",
		CreatedAt:   "March 15, 2024",
		Description: "Half Dome",
		Tags:        []string{"nature", "hiking", "sunset"},
	}, e)
}

func TestFactory_MissingMedia(t *testing.T) {
	f := NewFactory()
	for _, ref := range []string{"", "   "} {
		_, err := f.Build(NewEntryInput{MediaRef: ref, Location: "x", Description: "y"})
		assert.True(t, errors.Is(err, ErrMissingMedia))
	}
}

func TestFactory_UniqueIDs(t *testing.T) {
	f := NewFactory()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e, err := f.Build(NewEntryInput{MediaRef: "m"})
		require.NoError(t, err)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"nature", "hiking", "sunset"}, ParseTags(" nature, , hiking ,sunset "))
	assert.Equal(t, []string{"a", "a", "b"}, ParseTags("a,a,b"))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , ,"))
}
