package entities

import (
	"time"
)

// User is an account holder. The Password column stores only the bcrypt
// digest; the plaintext is hashed once at signup and never persisted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName *string   `gorm:"size:100" json:"first_name"`
	LastName  *string   `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Books     []Book    `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is a single entry on a user's shelf. A book always belongs to
// exactly one user and is only reachable through that user's credentials.
// Author, ISBN and PubDate are nullable so that "never supplied" survives
// round trips through the database.
type Book struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Title     string     `gorm:"size:512;not null" json:"title"`
	Author    *string    `gorm:"size:256" json:"author"`
	ISBN      *string    `gorm:"size:20" json:"isbn"`
	PubDate   *time.Time `json:"pub_date"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
