package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/notekeeper"
	"github.com/rmarques/notekeeper/internal/httpapi"
	"github.com/rmarques/notekeeper/pkg/core"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	svc, err := notekeeper.New(t.TempDir())
	require.NoError(t, err)
	return httpapi.NewServer(svc, nil).Router()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeNote(t *testing.T, rec *httptest.ResponseRecorder) core.Note {
	t.Helper()
	var note core.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	return note
}

func TestAPI_CreateAndGet(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodPost, "/notes", map[string]any{
		"title":   "Buy milk",
		"content": "2%",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeNote(t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Personal", created.Category)
	assert.False(t, created.Completed)
	assert.False(t, created.IsReminder)

	rec = doJSON(t, api, http.MethodGet, "/notes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeNote(t, rec).ID)
}

func TestAPI_Create_Validation(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodPost, "/notes", map[string]any{"content": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing persisted.
	rec = doJSON(t, api, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []core.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	assert.Empty(t, notes)
}

func TestAPI_Create_BadBody(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Update(t *testing.T) {
	api := newTestAPI(t)

	created := decodeNote(t, doJSON(t, api, http.MethodPost, "/notes", map[string]any{
		"title":   "Buy milk",
		"content": "2%",
	}))

	t.Run("Partial Patch", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPut, "/notes/"+created.ID, map[string]any{
			"completed": true,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		updated := decodeNote(t, rec)
		assert.True(t, updated.Completed)
		assert.Equal(t, "Buy milk", updated.Title)
		assert.Equal(t, "2%", updated.Content)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("Unknown Keys Ignored", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPut, "/notes/"+created.ID, map[string]any{
			"title":      "Buy oat milk",
			"starred":    true,
			"somethings": []int{1, 2, 3},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.Equal(t, "Buy oat milk", raw["title"])
		_, leaked := raw["starred"]
		assert.False(t, leaked, "unknown patch keys must not be stored")
	})

	t.Run("Unknown ID", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPut, "/notes/does-not-exist", map[string]any{"completed": true})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_Delete(t *testing.T) {
	api := newTestAPI(t)

	created := decodeNote(t, doJSON(t, api, http.MethodPost, "/notes", map[string]any{
		"title":   "temp",
		"content": "c",
	}))

	rec := doJSON(t, api, http.MethodDelete, "/notes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, api, http.MethodGet, "/notes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, api, http.MethodDelete, "/notes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_List_CategoryFilter(t *testing.T) {
	api := newTestAPI(t)

	for _, n := range []map[string]any{
		{"title": "a", "content": "c", "category": "Work"},
		{"title": "b", "content": "c"},
		{"title": "d", "content": "c", "category": "Ideas"},
	} {
		rec := doJSON(t, api, http.MethodPost, "/notes", n)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, api, http.MethodGet, "/notes?category=Work", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []core.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].Title)
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)
	rec := doJSON(t, api, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
