package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	t.Run("counts requests with status label", func(t *testing.T) {
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		counter := requestsTotal.WithLabelValues("GET", "/brew", "418")
		before := testutil.ToFloat64(counter)

		req := httptest.NewRequest(http.MethodGet, "/brew", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("uses route pattern instead of raw path", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(Middleware)
		r.Get("/threads/{thread}", func(w http.ResponseWriter, r *http.Request) {})

		counter := requestsTotal.WithLabelValues("GET", "/threads/{thread}", "200")
		before := testutil.ToFloat64(counter)

		req := httptest.NewRequest(http.MethodGet, "/threads/42", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}
