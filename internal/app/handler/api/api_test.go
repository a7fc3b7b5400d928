package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cruises/internal/app/ds"
	"cruises/internal/app/repository"
	"cruises/internal/testutil/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	mu      sync.Mutex
	objects map[string][]byte
	removed []string
	putErr  error
}

func newFakeImages() *fakeImages {
	return &fakeImages{objects: map[string][]byte{}}
}

func (f *fakeImages) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = b
	return nil
}

func (f *fakeImages) Remove(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, name)
	f.removed = append(f.removed, name)
	return nil
}

func newAPIRouter(rep *repository.Repository, images *fakeImages) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ships := &ShipHandler{Repository: rep}
	if images != nil {
		ships.Images = images
	}
	cruises := &CruiseHandler{Repository: rep}

	r.GET("/api/ships", ships.GetShipsAPI)
	r.GET("/api/ships/:id", ships.GetShipAPI)
	r.POST("/api/ships", ships.CreateShipAPI)
	r.PUT("/api/ships/:id", ships.UpdateShipAPI)
	r.DELETE("/api/ships/:id", ships.DeleteShipAPI)
	r.POST("/api/ships/:id/image", ships.AddShipImageAPI)
	r.GET("/api/cruises", cruises.GetCruisesAPI)
	r.GET("/api/cruises/:id", cruises.GetCruiseAPI)
	r.POST("/api/cruises", cruises.CreateCruiseAPI)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(fmt.Errorf("x: %w", repository.ErrNotFound)))
	assert.Equal(t, http.StatusConflict, StatusFor(repository.ErrShipInUse))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(repository.ErrStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("other")))
}

func TestShipLifecycle(t *testing.T) {
	rep := testdb.New(t)
	r := newAPIRouter(rep, nil)

	w := doJSON(r, http.MethodPost, "/api/ships", `{"id": 77, "name": "Oasis", "tonnage": 225000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[struct{ Data ds.Ship }](t, w).Data
	assert.NotEqual(t, int64(77), created.ID)
	assert.Equal(t, "Oasis", created.Name)

	path := fmt.Sprintf("/api/ships/%d", created.ID)
	w = doJSON(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[struct{ Data ds.Ship }](t, w).Data)

	w = doJSON(r, http.MethodPut, path, `{"id": 5, "name": "Oasis of the Seas", "tonnage": 226838}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[struct{ Data ds.Ship }](t, w).Data
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 226838, updated.Tonnage)

	w = doJSON(r, http.MethodGet, "/api/ships", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data  []ds.Ship
		Count int
	}](t, w)
	assert.Equal(t, 1, list.Count)
	assert.Len(t, list.Data, 1)

	w = doJSON(r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, path, "").Code)
}

func TestShipBadInput(t *testing.T) {
	r := newAPIRouter(testdb.New(t), nil)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/ships/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/ships/0", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/ships", `{"name": "x", "tonnage": "heavy"}`).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/ships", `{`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPut, "/api/ships/9", `{"name": "x"}`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/ships/9", "").Code)
}

func TestDeleteShipWithCruisesConflicts(t *testing.T) {
	rep := testdb.New(t)
	ship := testdb.SeedShip(t, rep, "Oasis", 225000)
	testdb.SeedCruise(t, rep, ship, "Bahamas", 4)
	r := newAPIRouter(rep, nil)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/ships/%d", ship.ID), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCruiseAPI(t *testing.T) {
	rep := testdb.New(t)
	ship := testdb.SeedShip(t, rep, "Oasis", 225000)
	r := newAPIRouter(rep, nil)

	w := doJSON(r, http.MethodGet, "/api/cruises", "")
	require.Equal(t, http.StatusOK, w.Code)
	empty := decode[struct {
		Data  []ds.Cruise
		Count int
	}](t, w)
	assert.Zero(t, empty.Count)
	assert.NotNil(t, empty.Data)

	body := fmt.Sprintf(`{"name": "Bahamas", "ship_id": %d, "departs_on": "2026-12-01T00:00:00Z", "nights": 4}`, ship.ID)
	w = doJSON(r, http.MethodPost, "/api/cruises", body)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[struct{ Data ds.Cruise }](t, w).Data
	assert.Equal(t, "Oasis", created.Ship.Name)
	assert.Equal(t, 4, created.Nights)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/cruises/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[struct{ Data ds.Cruise }](t, w).Data
	assert.Equal(t, "Bahamas", got.Name)
	assert.Equal(t, ship.ID, got.Ship.ID)

	w = doJSON(r, http.MethodGet, "/api/cruises", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/api/cruises/42", "").Code)
}

func TestCreateCruiseUnknownShip(t *testing.T) {
	rep := testdb.New(t)
	r := newAPIRouter(rep, nil)

	w := doJSON(r, http.MethodPost, "/api/cruises", `{"name": "Nowhere", "ship_id": 12, "nights": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ship 12 does not exist")

	_, cruises := testdb.Counts(t, rep)
	assert.Zero(t, cruises)
}

func TestListStoreUnavailable(t *testing.T) {
	rep := testdb.New(t)
	r := newAPIRouter(rep, nil)
	require.NoError(t, rep.Close())

	assert.Equal(t, http.StatusInternalServerError, doJSON(r, http.MethodGet, "/api/cruises", "").Code)
	assert.Equal(t, http.StatusInternalServerError, doJSON(r, http.MethodGet, "/api/ships", "").Code)
}

func uploadImage(r http.Handler, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile(field, filename)
	_, _ = fw.Write(content)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddShipImage(t *testing.T) {
	rep := testdb.New(t)
	ship := testdb.SeedShip(t, rep, "Oasis", 225000)
	images := newFakeImages()
	r := newAPIRouter(rep, images)
	path := fmt.Sprintf("/api/ships/%d/image", ship.ID)

	w := uploadImage(r, path, "file", "oasis.png", []byte("first"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[struct {
		Data struct {
			PhotoURL string `json:"photo_url"`
		}
	}](t, w).Data.PhotoURL
	assert.True(t, strings.HasSuffix(first, ".png"))
	assert.Equal(t, []byte("first"), images.objects[first])

	w = uploadImage(r, path, "image", "oasis.jpg", []byte("second"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := rep.GetShip(context.Background(), ship.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.PhotoURL, ".jpg"))
	assert.Equal(t, []string{first}, images.removed)
	assert.Len(t, images.objects, 1)
}

func TestAddShipImageErrors(t *testing.T) {
	rep := testdb.New(t)
	ship := testdb.SeedShip(t, rep, "Oasis", 225000)
	path := fmt.Sprintf("/api/ships/%d/image", ship.ID)

	w := uploadImage(newAPIRouter(rep, nil), path, "file", "a.png", []byte("x"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	images := newFakeImages()
	r := newAPIRouter(rep, images)
	assert.Equal(t, http.StatusNotFound, uploadImage(r, "/api/ships/99/image", "file", "a.png", []byte("x")).Code)
	assert.Equal(t, http.StatusBadRequest, uploadImage(r, path, "attachment", "a.png", []byte("x")).Code)

	images.putErr = errors.New("bucket gone")
	assert.Equal(t, http.StatusInternalServerError, uploadImage(r, path, "file", "a.png", []byte("x")).Code)

	stored, err := rep.GetShip(context.Background(), ship.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.PhotoURL)
}
