package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterNotFound(t *testing.T) {
	t.Run("unknown path gets the generic 404 envelope", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		w := performJSON(t, router, http.MethodGet, "/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		response := decodeJSON(t, w)
		assert.Equal(t, "Page not found.", response["message"])
		assert.Equal(t, float64(404), response["status"])
	})

	t.Run("wrong verbs on known paths get 404", func(t *testing.T) {
		router, _, cleanup := setupAPITest(t)
		defer cleanup()

		cases := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/signup"},
			{http.MethodPut, "/signup"},
			{http.MethodDelete, "/signup"},
			{http.MethodPut, "/books"},
			{http.MethodDelete, "/books"},
			{http.MethodPost, "/books/1"},
		}
		for _, tc := range cases {
			w := performJSON(t, router, tc.method, tc.path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
			assert.Contains(t, w.Body.String(), "Page not found.")
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := performJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeJSON(t, w)
	assert.Equal(t, "healthy", response["status"])
	checks := response["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["database"])
}
