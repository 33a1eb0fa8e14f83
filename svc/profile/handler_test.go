package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmalmgren/constgeneric-field-limits/svc/profile"
)

type errorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Mount("/profiles", profile.NewHandler(profile.NewStore(newDB(t)), nil).Router())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/profiles", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	t.Run("json", func(t *testing.T) {
		resp := postJSON(t, srv, `{"handle":"gopher","display_name":"Gopher","bio":"digs"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var p struct {
			ID          string `json:"id"`
			Handle      string `json:"handle"`
			DisplayName string `json:"display_name"`
			Bio         string `json:"bio"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "gopher", p.Handle)
		assert.Equal(t, "Gopher", p.DisplayName)
		assert.Equal(t, "digs", p.Bio)
	})

	t.Run("form without bio", func(t *testing.T) {
		form := url.Values{"handle": {"rustacean"}, "display_name": {"Ferris"}}
		resp, err := http.PostForm(srv.URL+"/profiles", form)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("length violations", func(t *testing.T) {
		body := `{"handle":"go","display_name":"` + strings.Repeat("n", 65) + `"}`
		resp := postJSON(t, srv, body)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		got := decode[errorBody](t, resp)
		assert.Equal(t, "unprocessable_entity", got.Error)
		assert.Equal(t, []string{"must be at least 3 characters long"}, got.Fields["handle"])
		assert.Equal(t, []string{"must be at most 64 characters long"}, got.Fields["display_name"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, srv, `{"bio":"only a bio"}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		got := decode[errorBody](t, resp)
		assert.Contains(t, got.Fields, "handle")
		assert.Contains(t, got.Fields, "display_name")
	})

	t.Run("malformed json", func(t *testing.T) {
		resp := postJSON(t, srv, `{"handle":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "bad_request", decode[errorBody](t, resp).Error)
	})

	t.Run("non string member", func(t *testing.T) {
		resp := postJSON(t, srv, `{"handle":42,"display_name":"Num"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown member", func(t *testing.T) {
		resp := postJSON(t, srv, `{"handle":"extra","display_name":"Extra","admin":true}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/profiles", "text/plain", strings.NewReader("gopher"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})

	t.Run("duplicate handle", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, postJSON(t, srv, `{"handle":"twice","display_name":"One"}`).StatusCode)
		resp := postJSON(t, srv, `{"handle":"twice","display_name":"Two"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestHandler_GetAndList(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp := postJSON(t, srv, `{"handle":"gopher","display_name":"Gopher"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	t.Run("get", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles/" + id)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "gopher", decode[map[string]any](t, resp)["handle"])
	})

	t.Run("get unknown", func(t *testing.T) {
		for _, path := range []string{"/profiles/2f1c5a8e-3b0a-4c55-9e51-0d7a8f0a1b2c", "/profiles/not-a-uuid"} {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		}
	})

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles?limit=10")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Profiles []map[string]any `json:"profiles"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Profiles, 1)
		assert.Equal(t, id, got.Profiles[0]["id"])
	})

	t.Run("list by handle", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles?handle=gopher")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Profiles []map[string]any `json:"profiles"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Profiles, 1)

		resp2, err := http.Get(srv.URL + "/profiles?handle=nobody")
		require.NoError(t, err)
		defer resp2.Body.Close()
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got))
		assert.Empty(t, got.Profiles)
	})

	t.Run("list by handle too long", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles?handle=" + strings.Repeat("h", 33))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, decode[errorBody](t, resp).Fields, "handle")
	})

	t.Run("huge limit", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles?limit=4611686018427387904")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Profiles []map[string]any `json:"profiles"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got.Profiles, 1)
	})

	t.Run("bad limit", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/profiles?limit=many")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
