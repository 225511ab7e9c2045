package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source := NewClient(&config.CMSConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	return srv, source.(*Client)
}

func TestFetchCatalog(t *testing.T) {
	t.Run("fetches and normalizes both collections", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "r1", "title": "Noodle Soup", "variantTags": ["Chinese"]}]`))
		})
		mux.HandleFunc("/ingredients", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "carrot-1", "title": "Carrot"}]`))
		})
		_, client := newTestClient(t, mux)

		cat, err := client.FetchCatalog(context.Background())

		require.NoError(t, err)
		require.Len(t, cat.Frameworks, 1)
		assert.Equal(t, "noodle-soup", cat.Frameworks[0].Slug)
		require.Len(t, cat.Ingredients, 1)
		assert.Equal(t, "Carrot", cat.Ingredients[0].Title)
	})

	t.Run("non-200 recipes response fails the fetch", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		})
		_, client := newTestClient(t, mux)

		_, err := client.FetchCatalog(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("malformed json fails the fetch", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		})
		_, client := newTestClient(t, mux)

		_, err := client.FetchCatalog(context.Background())

		require.Error(t, err)
	})

	t.Run("context cancellation aborts the fetch", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`[]`))
		})
		_, client := newTestClient(t, mux)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.FetchCatalog(ctx)

		require.Error(t, err)
	})
}
