// Package books provides database operations for book records.
//
// Every read is scoped to an owning user: a book that belongs to someone
// else behaves exactly like a book that does not exist. The database is
// the sole arbiter of that ownership.
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. UserID must already be set to the owner.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// ListForUser returns all books owned by the given user in insertion order.
func (r *Repository) ListForUser(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&books).Error
	return books, err
}

// GetForUser retrieves a book by ID scoped to its owner. A book owned by a
// different user returns gorm.ErrRecordNotFound, indistinguishable from a
// missing record.
func (r *Repository) GetForUser(id, userID uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Update persists all fields of the given book.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

// Delete removes the book permanently.
func (r *Repository) Delete(book *entities.Book) error {
	return r.db.Delete(book).Error
}
