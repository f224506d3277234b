package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopress/controllers"
	"gopress/models"
	"gopress/utils"

	"github.com/gin-gonic/gin"
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

func setupServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	SetupRoutes(r,
		controllers.NewAuthController(db),
		controllers.NewUserController(db),
		controllers.NewAuthorController(db),
		controllers.NewPostController(db),
		controllers.NewCommentController(db),
	)

	return db, r
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Password: "Passw3rd!"}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	return user
}

func createBlogger(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Author) {
	t.Helper()

	user := createUser(t, db, username)
	require.NoError(t, db.Model(user).Update("can_create_post", true).Error)
	user.CanCreatePost = true

	author := &models.Author{UserID: &user.ID, Bio: "Hello there!"}
	require.NoError(t, db.Create(author).Error)
	return user, author
}

func makeAdmin(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()
	require.NoError(t, db.Model(user).Update("is_admin", true).Error)
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, title string, createdAt time.Time) *models.Post {
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

func bearer(t *testing.T, userID uint) string {
	t.Helper()

	token, err := utils.GenerateJWT(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func performForm(t *testing.T, r *gin.Engine, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	return performForm(t, r, http.MethodGet, path, token, nil)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
