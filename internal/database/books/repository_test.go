package books

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()
	user := &entities.User{Email: email, Password: "digest"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRepository_Create(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")

	author := "Donald Knuth"
	pubDate := time.Date(1988, time.March, 15, 0, 0, 0, 0, time.UTC)
	book := &entities.Book{
		UserID:  owner.ID,
		Title:   "The Art of Computer Programming",
		Author:  &author,
		PubDate: &pubDate,
	}

	require.NoError(t, repo.Create(book))
	assert.NotZero(t, book.ID)
}

func TestRepository_ListForUser(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	require.NoError(t, repo.Create(&entities.Book{UserID: owner.ID, Title: "First"}))
	require.NoError(t, repo.Create(&entities.Book{UserID: owner.ID, Title: "Second"}))
	require.NoError(t, repo.Create(&entities.Book{UserID: other.ID, Title: "Elsewhere"}))

	books, err := repo.ListForUser(owner.ID)

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "First", books[0].Title)
	assert.Equal(t, "Second", books[1].Title)
}

func TestRepository_ListForUser_Empty(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")

	books, err := repo.ListForUser(owner.ID)

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_GetForUser(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")

	created := &entities.Book{UserID: owner.ID, Title: "Mine"}
	require.NoError(t, repo.Create(created))

	book, err := repo.GetForUser(created.ID, owner.ID)

	require.NoError(t, err)
	assert.Equal(t, "Mine", book.Title)
}

func TestRepository_GetForUser_OtherOwnerLooksMissing(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	created := &entities.Book{UserID: owner.ID, Title: "Private"}
	require.NoError(t, repo.Create(created))

	_, wrongOwnerErr := repo.GetForUser(created.ID, other.ID)
	_, missingErr := repo.GetForUser(9000, owner.ID)

	assert.ErrorIs(t, wrongOwnerErr, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, missingErr, gorm.ErrRecordNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")

	created := &entities.Book{UserID: owner.ID, Title: "Before"}
	require.NoError(t, repo.Create(created))

	created.Title = "After"
	isbn := "978-0-201-89683-1"
	created.ISBN = &isbn
	require.NoError(t, repo.Update(created))

	book, err := repo.GetForUser(created.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", book.Title)
	require.NotNil(t, book.ISBN)
	assert.Equal(t, isbn, *book.ISBN)
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	owner := createTestUser(t, db, "owner@example.com")

	created := &entities.Book{UserID: owner.ID, Title: "Doomed"}
	require.NoError(t, repo.Create(created))

	require.NoError(t, repo.Delete(created))

	_, err := repo.GetForUser(created.ID, owner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Hard delete: the row is gone, not tombstoned
	var count int64
	require.NoError(t, db.Model(&entities.Book{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
