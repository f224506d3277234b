package services

import (
	"path/filepath"
	"testing"
	"time"

	"gopress/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Post{},
		&models.Comment{},
	))

	return db
}

func seedAuthor(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Author) {
	t.Helper()

	user := &models.User{Username: username, Password: "Passw3rd!"}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)

	author := &models.Author{UserID: &user.ID, Bio: "Hello there!"}
	require.NoError(t, db.Create(author).Error)
	return user, author
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, title string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:     title,
		Content:   "hello there",
		AuthorID:  &authorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
