package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/auth"
)

// ErrorResponse is the standard error envelope for all API errors.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	errMalformedPayload = errors.New("request body could not be parsed")
	errTitleRequired    = errors.New("title is required")
	errInvalidPubDate   = errors.New("pub_date must be formatted as MM/DD/YYYY")
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message, Status: status})
}

// renderError is the single place that turns a failure condition into an
// HTTP status. Handlers report what went wrong; the mapping lives here:
//
//	missing/invalid input        -> 400
//	credential mismatch          -> 403
//	record outside owner's scope -> 404
//	persistence conflict         -> 400
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(c, http.StatusForbidden, "The given email and password do not match.")
	case errors.Is(err, auth.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "A User with that email already exists.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "Book not found.")
	default:
		// Validation failures, credential omissions and database-level
		// errors are all the caller's problem.
		respondError(c, http.StatusBadRequest, err.Error())
	}
}

// notFound renders the generic envelope used for unmatched routes.
func notFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Page not found.")
}

// parseIDParam extracts a numeric ID from URL parameters. A non-numeric ID
// is treated like an unmatched route and yields the generic 404.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}
