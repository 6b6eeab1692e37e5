package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
)

// RouterConfig carries the dependencies needed to assemble the router.
type RouterConfig struct {
	Database    *database.Database
	AuthService *auth.Service
	Books       *books.Repository
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
//
// Method-not-allowed handling stays off on purpose: a wrong verb on a
// known path falls through to NoRoute and gets the same generic 404 as an
// unknown path.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.AuthService)
	booksController := NewBooksController(cfg.Books, cfg.AuthService)

	router.GET("/health", health.Status)

	router.POST("/signup", usersController.Signup)

	router.GET("/books", booksController.List)
	router.POST("/books", booksController.Create)
	router.GET("/books/:id", booksController.Get)
	router.PUT("/books/:id", booksController.Update)
	router.DELETE("/books/:id", booksController.Delete)

	router.NoRoute(notFound)

	return router
}
