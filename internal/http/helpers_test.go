package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
)

// setupAPITest builds the full router against a throwaway sqlite database.
// bcrypt runs at MinCost to keep the suite fast.
func setupAPITest(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	usersRepo := users.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)
	authService := auth.NewService(usersRepo, config.Auth{BcryptCost: bcrypt.MinCost})

	router := NewRouter(RouterConfig{
		Database:    db,
		AuthService: authService,
		Books:       booksRepo,
		Version:     "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

// performJSON issues a request with an optional JSON body and returns the
// recorded response.
func performJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupUser registers an account through the API and returns its ID.
func signupUser(t *testing.T, router *gin.Engine, email, password string) uint {
	t.Helper()

	w := performJSON(t, router, http.MethodPost, "/signup", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return uint(response["id"].(float64))
}

// decodeJSON unmarshals a recorded response body into a generic map.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
