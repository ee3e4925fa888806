package remote_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/adapters/remote"
	"go.trai.ch/assetimport/internal/core/domain"
)

var modified = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /v1/assets/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "A7" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.RemoteAsset{ID: "A7", Name: "beach.png", ModifiedAt: modified})
	})
	mux.HandleFunc("GET /v1/assets/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "A7" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "original bytes")
	})
	mux.HandleFunc("POST /v1/assets/{id}/transform", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Task       string `json:"task"`
			Parameters []struct {
				Name  string `json:"name"`
				Type  string `json:"type"`
				Value any    `json:"value"`
			} `json:"parameters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Task == "explode" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, req.Task)
		for _, p := range req.Parameters {
			_, _ = io.WriteString(w, "|"+p.Type)
		}
	})
	mux.HandleFunc("GET /v1/containers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("path") != "/Images" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Container{ID: "C1", Path: "/Images"})
	})
	mux.HandleFunc("GET /v1/containers/{id}/assets", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "C1" || r.URL.Query().Get("name") != "beach.png" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.RemoteAsset{ID: "A7", Name: "beach.png"})
	})

	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != `CORP\importer` || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	srv := httptest.NewServer(auth(mux))
	t.Cleanup(srv.Close)
	return srv
}

func settingsFor(endpoint string) domain.Settings {
	s := domain.DefaultSettings()
	s.Credentials = domain.Credentials{
		Endpoint: endpoint,
		Domain:   "CORP",
		Username: "importer",
		Password: "secret",
	}
	return s
}

func TestDial(t *testing.T) {
	srv := newServer(t)

	t.Run("success", func(t *testing.T) {
		c, err := remote.Dial(t.Context(), settingsFor(srv.URL+"/"))
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("bad credentials", func(t *testing.T) {
		s := settingsFor(srv.URL)
		s.Credentials.Password = "wrong"
		_, err := remote.Dial(t.Context(), s)
		assert.ErrorIs(t, err, domain.ErrConnection)
	})

	t.Run("unreachable", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		_, err := remote.Dial(t.Context(), settingsFor(url))
		assert.ErrorIs(t, err, domain.ErrConnection)
	})

	t.Run("no endpoint", func(t *testing.T) {
		_, err := remote.Dial(t.Context(), domain.DefaultSettings())
		assert.ErrorIs(t, err, domain.ErrMissingEndpoint)
	})
}

func TestClient_Lookups(t *testing.T) {
	srv := newServer(t)
	c, err := remote.New(settingsFor(srv.URL), srv.Client())
	require.NoError(t, err)

	asset, err := c.GetAssetByID(t.Context(), "A7")
	require.NoError(t, err)
	assert.Equal(t, "beach.png", asset.Name)
	assert.True(t, asset.ModifiedAt.Equal(modified))

	_, err = c.GetAssetByID(t.Context(), "missing")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	container, err := c.GetContainerByPath(t.Context(), "/Images")
	require.NoError(t, err)
	assert.Equal(t, "C1", container.ID)

	_, err = c.GetContainerByPath(t.Context(), "/Nope")
	assert.ErrorIs(t, err, domain.ErrContainerNotFound)

	byName, err := c.GetAssetByName(t.Context(), "C1", "beach.png")
	require.NoError(t, err)
	assert.Equal(t, "A7", byName.ID)

	_, err = c.GetAssetByName(t.Context(), "C1", "other.png")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestClient_FetchTransformed(t *testing.T) {
	srv := newServer(t)
	c, err := remote.New(settingsFor(srv.URL), srv.Client())
	require.NoError(t, err)

	read := func(t *testing.T, rc io.ReadCloser) string {
		t.Helper()
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}

	t.Run("noop downloads the original", func(t *testing.T) {
		rc, err := c.FetchTransformed(t.Context(), "A7", domain.NoopTask, nil)
		require.NoError(t, err)
		assert.Equal(t, "original bytes", read(t, rc))
	})

	t.Run("task sends typed parameters", func(t *testing.T) {
		params := []domain.TypedParameter{
			{Name: domain.ParamOutputWidth, Kind: domain.KindDouble, Value: 200.0},
			{Name: domain.ParamJPEGQuality, Kind: domain.KindInteger, Value: int64(80)},
		}
		rc, err := c.FetchTransformed(t.Context(), "A7", "resize", params)
		require.NoError(t, err)
		assert.Equal(t, "resize|"+domain.KindDouble.String()+"|"+domain.KindInteger.String(), read(t, rc))
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := c.FetchTransformed(t.Context(), "gone", domain.NoopTask, nil)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})

	t.Run("server failure", func(t *testing.T) {
		_, err := c.FetchTransformed(t.Context(), "A7", "explode", nil)
		assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	})
}

func TestClient_Timeout(t *testing.T) {
	const timeout = 100 * time.Millisecond

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/assets/slow/content", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "first ")
		w.(http.Flusher).Flush()
		time.Sleep(3 * timeout)
		_, _ = io.WriteString(w, "last")
	})
	mux.HandleFunc("GET /v1/assets/hung/content", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(3 * timeout)
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	s := settingsFor(srv.URL)
	s.HTTPTimeout = timeout
	c, err := remote.New(s, nil)
	require.NoError(t, err)

	t.Run("slow body is read to the end", func(t *testing.T) {
		rc, err := c.FetchTransformed(t.Context(), "slow", domain.NoopTask, nil)
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "first last", string(b))
	})

	t.Run("late headers time out", func(t *testing.T) {
		_, err := c.FetchTransformed(t.Context(), "hung", domain.NoopTask, nil)
		assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	})
}
