package media

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	// ErrEmptyMedia is returned when an upload carries no bytes.
	ErrEmptyMedia = errors.New("media file is empty")

	// ErrMediaTooLarge is returned when an upload exceeds the configured limit.
	ErrMediaTooLarge = errors.New("media file is too large")

	// ErrUnsupportedMedia is returned for anything that is not an image or a video.
	ErrUnsupportedMedia = errors.New("media must be an image or a video")

	// ErrUnknownMedia is returned when a handle does not refer to a stored upload.
	ErrUnknownMedia = errors.New("unknown media handle")

	// ErrMediaClaimed is returned when an upload already belongs to an entry.
	ErrMediaClaimed = errors.New("media is already used by an entry")
)

// Handle is a session-scoped reference to an uploaded media blob.
type Handle string

// URLPrefix is the path under which blobs are served.
const URLPrefix = "/media/"

// URL returns the path that serves h.
func URL(h Handle) string {
	return URLPrefix + string(h)
}

// HandleFromRef extracts a handle from either a bare handle or a media URL.
func HandleFromRef(ref string) Handle {
	return Handle(strings.TrimPrefix(ref, URLPrefix))
}

// Blob is an uploaded media file held in memory.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
	UploadedAt  time.Time
	Claimed     bool
}

// Registry holds uploaded media for the lifetime of the process. A new upload
// is pending until an entry claims it; pending uploads that are replaced or
// abandoned are released.
type Registry struct {
	maxBytes int64
	now      func() time.Time

	mu    sync.RWMutex
	blobs map[Handle]*Blob
}

// NewRegistry creates a registry that accepts uploads up to maxBytes.
// A non-positive maxBytes disables the limit.
func NewRegistry(maxBytes int64) *Registry {
	return &Registry{
		maxBytes: maxBytes,
		now:      time.Now,
		blobs:    make(map[Handle]*Blob),
	}
}

// Put stores a new pending upload and returns its handle.
func (r *Registry) Put(name string, data []byte) (Handle, error) {
	if len(data) == 0 {
		return "", ErrEmptyMedia
	}
	if r.maxBytes > 0 && int64(len(data)) > r.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrMediaTooLarge, len(data), r.maxBytes)
	}

	mtype := mimetype.Detect(data)
	if !isImageOrVideo(mtype) {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedMedia, mtype.String())
	}

	h := Handle(uuid.New().String())
	r.mu.Lock()
	r.blobs[h] = &Blob{
		Name:        name,
		ContentType: mtype.String(),
		Data:        data,
		UploadedAt:  r.now(),
	}
	r.mu.Unlock()

	return h, nil
}

// Replace stores a new pending upload in place of old, releasing old if it is
// still pending. A claimed old handle is left alone. The returned bool
// reports whether old was released.
func (r *Registry) Replace(old Handle, name string, data []byte) (Handle, bool, error) {
	h, err := r.Put(name, data)
	if err != nil {
		return "", false, err
	}
	return h, r.Discard(old), nil
}

// Claim marks a pending upload as owned by an entry. An upload can be
// claimed once; the check and the mark happen under one lock so two
// concurrent claims cannot both succeed.
func (r *Registry) Claim(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blobs[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMedia, h)
	}
	if b.Claimed {
		return fmt.Errorf("%w: %s", ErrMediaClaimed, h)
	}
	b.Claimed = true
	return nil
}

// Discard releases h only while it is still pending. It reports whether
// anything was released.
func (r *Registry) Discard(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blobs[h]
	if !ok || b.Claimed {
		return false
	}
	delete(r.blobs, h)
	return true
}

// Release drops the blob behind ref, a handle or a media URL. References
// this registry does not know, such as absolute URLs, are ignored.
func (r *Registry) Release(ref string) {
	r.mu.Lock()
	delete(r.blobs, HandleFromRef(ref))
	r.mu.Unlock()
}

// Get returns the blob behind h.
func (r *Registry) Get(h Handle) (Blob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blobs[h]
	if !ok {
		return Blob{}, false
	}
	return *b, true
}

// SweepPending releases pending uploads older than maxAge and returns how
// many were released.
func (r *Registry) SweepPending(maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for h, b := range r.blobs {
		if !b.Claimed && b.UploadedAt.Before(cutoff) {
			delete(r.blobs, h)
			n++
		}
	}
	return n
}

// Len returns the number of stored blobs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}

func isImageOrVideo(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		s := m.String()
		if strings.HasPrefix(s, "image/") || strings.HasPrefix(s, "video/") {
			return true
		}
	}
	return false
}
