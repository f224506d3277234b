package controllers

import (
	"net/http"

	"gopress/models"
	"gopress/services"
	"gopress/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthorController struct {
	db            *gorm.DB
	authorService *services.AuthorService
	userService   *services.UserService
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{
		db:            db,
		authorService: services.NewAuthorService(db),
		userService:   services.NewUserService(db),
	}
}

// Create designates an existing user as a blog author. Admin only.
func (ac *AuthorController) Create(c *gin.Context) {
	if _, ok := requireAdmin(c, ac.userService); !ok {
		return
	}

	var req models.CreateAuthorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.FieldErrors(err)})
		return
	}

	if _, err := ac.userService.GetUserByID(req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	author, err := ac.authorService.CreateAuthor(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already has an author profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": author})
}

func (ac *AuthorController) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	author, err := ac.authorService.GetAuthorByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": author})
}
