package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/media"
	loginmodels "io.winapps.travelgallery/internal/models/admin_login"
	createmodels "io.winapps.travelgallery/internal/models/create_entry"
	feedmodels "io.winapps.travelgallery/internal/models/gallery_feed"
	likemodels "io.winapps.travelgallery/internal/models/toggle_like"
	updatemodels "io.winapps.travelgallery/internal/models/update_entry"
	uploadmodels "io.winapps.travelgallery/internal/models/upload_media"
	"io.winapps.travelgallery/internal/notify"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

type recordingNotifier struct {
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, ev notify.Event) {
	r.events = append(r.events, ev)
}

func (r *recordingNotifier) kinds() []notify.Kind {
	out := make([]notify.Kind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

type testApp struct {
	router   *gin.Engine
	store    *gallery.Store
	media    *media.Registry
	notifier *recordingNotifier
}

func newTestApp(t *testing.T, seed ...gallery.Entry) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := media.NewRegistry(1 << 20)
	store := gallery.NewStore(registry, seed...)
	factory := gallery.NewFactory(gallery.WithClock(func() time.Time {
		return time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)
	}))
	gate := gallery.NewGate(gallery.StaticVerifier{Username: "mohan", Password: "mohan"})
	notifier := &recordingNotifier{}
	logger := zap.NewNop().Sugar()

	router := NewRouter(
		NewGalleryHandler(store, factory, registry, notifier, logger, 1<<20),
		NewAdminHandler(store, gate, notifier, logger),
		gate,
		logger,
	)
	return &testApp{router: router, store: store, media: registry, notifier: notifier}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) upload(t *testing.T, filename string, data []byte, replaces string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("media", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	if replaces != "" {
		require.NoError(t, mw.WriteField("replaces", replaces))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/admin/login", loginmodels.LoginRequest{Username: "mohan", Password: "mohan"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp loginmodels.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func stored(r *media.Registry, ref string) bool {
	_, ok := r.Get(media.HandleFromRef(ref))
	return ok
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestListEntries_FiltersByQuery(t *testing.T) {
	app := newTestApp(t, gallery.SampleEntries()...)

	w := app.do(t, http.MethodGet, "/api/v1/entries", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[feedmodels.ListEntriesResponse](t, w)
	assert.Equal(t, 3, all.Total)

	w = app.do(t, http.MethodGet, "/api/v1/entries?q=GREECE", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	filtered := decode[feedmodels.ListEntriesResponse](t, w)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "Santorini, Greece", filtered.Entries[0].Location)
}

func TestCreateEntry_FullFlow(t *testing.T) {
	app := newTestApp(t, gallery.SampleEntries()...)

	w := app.upload(t, "halfdome.png", pngBytes, "")
	require.Equal(t, http.StatusCreated, w.Code)
	up := decode[uploadmodels.UploadMediaResponse](t, w)
	assert.Equal(t, "image/png", up.ContentType)

	w = app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef:    up.Handle,
		Location:    "Lisbon",
		Description: "Tram 28",
		Tags:        " trams, , hills ",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[createmodels.CreateEntryResponse](t, w)

	assert.Equal(t, media.URL(media.Handle(up.Handle)), created.Entry.Media)
	assert.Equal(t, "April 2, 2024", created.Entry.CreatedAt)
	assert.Equal(t, []string{"trams", "hills"}, created.Entry.Tags)
	assert.Zero(t, created.Entry.LikeCount)
	assert.False(t, created.Entry.Liked)

	feed := app.store.Entries()
	require.Len(t, feed, 4)
	assert.Equal(t, created.Entry.ID, feed[0].ID)

	blob, ok := app.media.Get(media.Handle(up.Handle))
	require.True(t, ok)
	assert.True(t, blob.Claimed)

	w = app.do(t, http.MethodGet, up.URL, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	assert.Equal(t, []notify.Kind{notify.EntryCreated}, app.notifier.kinds())
}

func TestCreateEntry_Validation(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		Location: "Oslo", Description: "fjords",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please select an image or video")

	w = app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef: "does-not-exist", Location: "Oslo", Description: "fjords",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef: "x", Description: "fjords",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, app.store.Len())
}

func TestCreateEntry_RejectsBlankFields(t *testing.T) {
	app := newTestApp(t)
	up := decode[uploadmodels.UploadMediaResponse](t, app.upload(t, "a.png", pngBytes, ""))

	for _, req := range []createmodels.CreateEntryRequest{
		{MediaRef: up.Handle, Location: "   ", Description: "fjords"},
		{MediaRef: up.Handle, Location: "Oslo", Description: "\t\n"},
	} {
		w := app.do(t, http.MethodPost, "/api/v1/entries", req, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Location and description are required"}`, w.Body.String())
	}

	assert.Zero(t, app.store.Len())
	blob, ok := app.media.Get(media.Handle(up.Handle))
	require.True(t, ok)
	assert.False(t, blob.Claimed)
}

func TestCreateEntry_MediaUsedOnce(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)
	up := decode[uploadmodels.UploadMediaResponse](t, app.upload(t, "a.png", pngBytes, ""))

	w := app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef: up.Handle, Location: "Kyoto", Description: "temples",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[createmodels.CreateEntryResponse](t, w)

	w = app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef: up.URL, Location: "Nara", Description: "deer",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, app.store.Len())

	// Replacing a claimed upload keeps it attached to its entry
	w = app.upload(t, "b.png", pngBytes, up.Handle)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, stored(app.media, up.Handle))

	w = app.do(t, http.MethodDelete, "/api/v1/admin/entries/"+first.Entry.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, stored(app.media, up.Handle))
}

func TestUploadMedia_ReplaceAndDiscard(t *testing.T) {
	app := newTestApp(t)

	first := decode[uploadmodels.UploadMediaResponse](t, app.upload(t, "a.png", pngBytes, ""))
	w := app.upload(t, "b.png", pngBytes, first.Handle)
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode[uploadmodels.UploadMediaResponse](t, w)

	assert.Equal(t, first.Handle, second.Replaced)
	assert.False(t, stored(app.media, first.Handle))
	assert.True(t, stored(app.media, second.Handle))

	w = app.do(t, http.MethodDelete, "/api/v1/media/"+second.Handle, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, app.media.Len())

	w = app.do(t, http.MethodDelete, "/api/v1/media/"+second.Handle, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadMedia_RejectsNonMedia(t *testing.T) {
	app := newTestApp(t)
	w := app.upload(t, "notes.txt", []byte("plain text is not a photo"), "")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Zero(t, app.media.Len())
}

func TestToggleLike(t *testing.T) {
	app := newTestApp(t, gallery.SampleEntries()...)

	w := app.do(t, http.MethodPost, "/api/v1/entries/2/like", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	liked := decode[likemodels.ToggleLikeResponse](t, w)
	assert.Equal(t, likemodels.ToggleLikeResponse{ID: "2", Likes: 157, IsLiked: true}, liked)

	w = app.do(t, http.MethodPost, "/api/v1/entries/2/like", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	unliked := decode[likemodels.ToggleLikeResponse](t, w)
	assert.Equal(t, likemodels.ToggleLikeResponse{ID: "2", Likes: 156, IsLiked: false}, unliked)

	w = app.do(t, http.MethodPost, "/api/v1/entries/404/like", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t)

	for _, creds := range []loginmodels.LoginRequest{
		{Username: "Mohan", Password: "mohan"},
		{Username: "mohan", Password: "wrong"},
		{},
	} {
		w := app.do(t, http.MethodPost, "/api/v1/admin/login", creds, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	}

	app.login(t)
	assert.Equal(t, notify.AdminLogin, app.notifier.kinds()[len(app.notifier.events)-1])
}

func TestAdminRoutes_RequireGrant(t *testing.T) {
	app := newTestApp(t, gallery.SampleEntries()...)

	w := app.do(t, http.MethodDelete, "/api/v1/admin/entries/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = app.do(t, http.MethodDelete, "/api/v1/admin/entries/1", nil, "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 3, app.store.Len())
}

func TestAdminUpdateEntry(t *testing.T) {
	app := newTestApp(t, gallery.Entry{ID: "p", Location: "Paris", Description: "old", Tags: []string{"x"}})
	token := app.login(t)

	desc := "new"
	w := app.do(t, http.MethodPatch, "/api/v1/admin/entries/p", updatemodels.UpdateEntryRequest{Description: &desc}, token)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[updatemodels.UpdateEntryResponse](t, w)
	assert.Equal(t, "Paris", got.Entry.Location)
	assert.Equal(t, "new", got.Entry.Description)
	assert.Equal(t, []string{"x"}, got.Entry.Tags)

	tags := "a, ,b "
	w = app.do(t, http.MethodPatch, "/api/v1/admin/entries/p", updatemodels.UpdateEntryRequest{Tags: &tags}, token)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[updatemodels.UpdateEntryResponse](t, w)
	assert.Equal(t, []string{"a", "b"}, got.Entry.Tags)

	w = app.do(t, http.MethodPatch, "/api/v1/admin/entries/p", updatemodels.UpdateEntryRequest{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	blank := "  "
	w = app.do(t, http.MethodPatch, "/api/v1/admin/entries/p", updatemodels.UpdateEntryRequest{Location: &blank}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Location cannot be empty"}`, w.Body.String())
	assert.Equal(t, "Paris", app.store.Entries()[0].Location)

	w = app.do(t, http.MethodPatch, "/api/v1/admin/entries/nope", updatemodels.UpdateEntryRequest{Description: &desc}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteEntry_ReleasesMedia(t *testing.T) {
	app := newTestApp(t, gallery.SampleEntries()...)
	token := app.login(t)

	up := decode[uploadmodels.UploadMediaResponse](t, app.upload(t, "a.png", pngBytes, ""))
	created := decode[createmodels.CreateEntryResponse](t, app.do(t, http.MethodPost, "/api/v1/entries", createmodels.CreateEntryRequest{
		MediaRef: up.Handle, Location: "Kyoto", Description: "temples",
	}, ""))

	w := app.do(t, http.MethodDelete, "/api/v1/admin/entries/"+created.Entry.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, stored(app.media, up.Handle))

	w = app.do(t, http.MethodDelete, "/api/v1/admin/entries/2", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/admin/entries", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[feedmodels.ListEntriesResponse](t, w)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "1", all.Entries[0].ID)
	assert.Equal(t, "3", all.Entries[1].ID)

	w = app.do(t, http.MethodDelete, "/api/v1/admin/entries/2", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
