// Package auth provides password hashing, signup and per-request
// credential validation.
//
// There are no sessions or tokens: every authenticated request carries the
// account's email and password, and the service resolves them to a user on
// each call.
//
//	service := auth.NewService(usersRepo, cfg.Auth)
//	user, err := service.Validate(email, password)
package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var (
	// ErrCredentialsRequired signals that email or password was absent
	// from the request.
	ErrCredentialsRequired = errors.New("email and password are required")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are intentionally indistinguishable so that
	// account existence cannot be probed.
	ErrInvalidCredentials = errors.New("the given email and password do not match")

	// ErrEmailTaken signals a signup against an already registered email.
	ErrEmailTaken = errors.New("a user with that email already exists")
)

// Service handles signup and credential validation.
type Service struct {
	users      *users.Repository
	bcryptCost int
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		users:      repo,
		bcryptCost: cfg.BcryptCost,
	}
}

// SignupParams carries the signup payload. FirstName and LastName stay nil
// when the caller did not supply them.
type SignupParams struct {
	FirstName *string
	LastName  *string
	Email     string
	Password  string
}

// Signup creates a new user, hashing the password exactly once. A
// duplicate email maps to ErrEmailTaken.
func (s *Service) Signup(params SignupParams) (*entities.User, error) {
	if params.Email == "" || params.Password == "" {
		return nil, ErrCredentialsRequired
	}

	hash, err := HashPassword(params.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  hash,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Validate resolves a set of request credentials to a user. Missing fields
// map to ErrCredentialsRequired; an unknown email and a failed password
// check both map to ErrInvalidCredentials.
func (s *Service) Validate(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := CheckPassword(password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
