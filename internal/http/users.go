package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// UsersController handles account creation.
type UsersController struct {
	auth *auth.Service
}

// NewUsersController creates a new UsersController.
func NewUsersController(authService *auth.Service) *UsersController {
	return &UsersController{auth: authService}
}

type signupRequest struct {
	FirstName *string `form:"first_name" json:"first_name"`
	LastName  *string `form:"last_name" json:"last_name"`
	Email     string  `form:"email" json:"email"`
	Password  string  `form:"password" json:"password"`
}

// userResponse is the public rendering of a user. The password digest is
// never part of it.
type userResponse struct {
	ID        uint    `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     string  `json:"email"`
}

func newUserResponse(user *entities.User) userResponse {
	return userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// Signup creates a new user.
// POST /signup
func (uc *UsersController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, errMalformedPayload)
		return
	}

	user, err := uc.auth.Signup(auth.SignupParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}
