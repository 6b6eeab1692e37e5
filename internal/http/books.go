package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// pubDateLayout is the wire format for publication dates, kept as
// MM/DD/YYYY on both input and output.
const pubDateLayout = "01/02/2006"

// BookStore defines database operations for book management.
type BookStore interface {
	Create(book *entities.Book) error
	ListForUser(userID uint) ([]entities.Book, error)
	GetForUser(id, userID uint) (*entities.Book, error)
	Update(book *entities.Book) error
	Delete(book *entities.Book) error
}

// CredentialValidator resolves request credentials to a user account.
type CredentialValidator interface {
	Validate(email, password string) (*entities.User, error)
}

// BooksController handles the per-user book CRUD surface. Every route
// authenticates with email/password carried in the request itself: query
// parameters for GET, the body for POST/PUT/DELETE.
type BooksController struct {
	store     BookStore
	validator CredentialValidator
}

// NewBooksController creates a new BooksController.
func NewBooksController(store BookStore, validator CredentialValidator) *BooksController {
	return &BooksController{store: store, validator: validator}
}

// bookRequest carries credentials plus the writable book fields. Pointer
// fields distinguish "absent" from "empty": create treats absent as null,
// update treats absent as unchanged.
type bookRequest struct {
	Email    string  `form:"email" json:"email"`
	Password string  `form:"password" json:"password"`
	Title    *string `form:"title" json:"title"`
	Author   *string `form:"author" json:"author"`
	ISBN     *string `form:"isbn" json:"isbn"`
	PubDate  *string `form:"pub_date" json:"pub_date"`
}

type bookResponse struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Author  *string `json:"author"`
	ISBN    *string `json:"isbn"`
	PubDate *string `json:"pub_date"`
}

func newBookResponse(book *entities.Book) bookResponse {
	var pubDate *string
	if book.PubDate != nil {
		formatted := book.PubDate.Format(pubDateLayout)
		pubDate = &formatted
	}
	return bookResponse{
		ID:      book.ID,
		Title:   book.Title,
		Author:  book.Author,
		ISBN:    book.ISBN,
		PubDate: pubDate,
	}
}

// parsePubDate converts an optional MM/DD/YYYY string into a timestamp.
func parsePubDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse(pubDateLayout, *raw)
	if err != nil {
		return nil, errInvalidPubDate
	}
	return &parsed, nil
}

// List returns all books owned by the authenticated user.
// GET /books
func (bc *BooksController) List(c *gin.Context) {
	user, err := bc.validator.Validate(c.Query("email"), c.Query("password"))
	if err != nil {
		renderError(c, err)
		return
	}

	books, err := bc.store.ListForUser(user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	response := make([]bookResponse, 0, len(books))
	for i := range books {
		response = append(response, newBookResponse(&books[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create adds a book to the authenticated user's shelf. Title is the only
// required field; author, isbn and pub_date default to null when absent.
// POST /books
func (bc *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, errMalformedPayload)
		return
	}

	user, err := bc.validator.Validate(req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	if req.Title == nil {
		renderError(c, errTitleRequired)
		return
	}

	pubDate, err := parsePubDate(req.PubDate)
	if err != nil {
		renderError(c, err)
		return
	}

	book := &entities.Book{
		UserID:  user.ID,
		Title:   *req.Title,
		Author:  req.Author,
		ISBN:    req.ISBN,
		PubDate: pubDate,
	}
	if err := bc.store.Create(book); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookResponse(book))
}

// Get returns a single book scoped to the authenticated user. A book owned
// by someone else is indistinguishable from a missing one.
// GET /books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := bc.validator.Validate(c.Query("email"), c.Query("password"))
	if err != nil {
		renderError(c, err)
		return
	}

	book, err := bc.store.GetForUser(id, user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// Update applies a partial update: only fields present in the body change,
// and an unparsable pub_date rejects the request before anything mutates.
// PUT /books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, errMalformedPayload)
		return
	}

	user, err := bc.validator.Validate(req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	book, err := bc.store.GetForUser(id, user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	pubDate, err := parsePubDate(req.PubDate)
	if err != nil {
		renderError(c, err)
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = req.Author
	}
	if req.ISBN != nil {
		book.ISBN = req.ISBN
	}
	if req.PubDate != nil {
		book.PubDate = pubDate
	}

	if err := bc.store.Update(book); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// Delete removes a book permanently. A repeated delete finds nothing in
// the owner's scope and yields 404.
// DELETE /books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, errMalformedPayload)
		return
	}

	user, err := bc.validator.Validate(req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	book, err := bc.store.GetForUser(id, user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := bc.store.Delete(book); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
