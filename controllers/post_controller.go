package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"gopress/models"
	"gopress/services"
	"gopress/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db            *gorm.DB
	postService   *services.PostService
	authorService *services.AuthorService
	userService   *services.UserService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:            db,
		postService:   services.NewPostService(db),
		authorService: services.NewAuthorService(db),
		userService:   services.NewUserService(db),
	}
}

// List handles the home page: the five most recent posts, newest first,
// for any caller.
func (pc *PostController) List(c *gin.Context) {
	posts, err := pc.postService.ListRecent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Detail returns one post with its author and comments. Authenticated
// callers also get a blank comment form; a pending notice from a failed
// comment submit is surfaced once and cleared.
func (pc *PostController) Detail(c *gin.Context) {
	post, ok := pc.lookupPost(c)
	if !ok {
		return
	}

	resp := gin.H{"post": post}
	if _, authed := currentUserID(c); authed {
		resp["form"] = models.CommentForm{}
	}

	if notice, err := c.Cookie("notice"); err == nil && notice != "" {
		resp["notice"] = notice
		c.SetCookie("notice", "", -1, "/", "", false, true)
	}

	c.JSON(http.StatusOK, resp)
}

func (pc *PostController) CreateForm(c *gin.Context) {
	if _, ok := requireCreatePermission(c, pc.userService); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": models.PostForm{}})
}

// Create persists a new post owned by the caller's author profile.
func (pc *PostController) Create(c *gin.Context) {
	userID, ok := requireCreatePermission(c, pc.userService)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusOK, gin.H{"form": form, "errors": utils.FieldErrors(err)})
		return
	}

	author, err := pc.authorService.GetAuthorByUserID(userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No author profile for this user"})
		return
	}

	post, err := pc.postService.CreatePost(author.ID, &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.Redirect(http.StatusFound, postPath(post.ID))
}

func (pc *PostController) UpdateForm(c *gin.Context) {
	post, ok := pc.ownedPost(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post,
		"form": models.PostForm{Title: post.Title, Content: post.Content},
	})
}

// Update overwrites title and content of the caller's own post.
func (pc *PostController) Update(c *gin.Context) {
	post, ok := pc.ownedPost(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusOK, gin.H{"form": form, "errors": utils.FieldErrors(err)})
		return
	}

	if err := pc.postService.UpdatePost(post, &form); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.Redirect(http.StatusFound, postPath(post.ID))
}

func (pc *PostController) lookupPost(c *gin.Context) (*models.Post, bool) {
	id, err := parseID(c, "pk")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return nil, false
	}

	post, err := pc.postService.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return nil, false
	}

	return post, true
}

// ownedPost loads the post named by :pk and rejects any caller other than
// its author. Ownership is compared on the underlying user reference, not
// the author record.
func (pc *PostController) ownedPost(c *gin.Context) (*models.Post, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	post, ok := pc.lookupPost(c)
	if !ok {
		return nil, false
	}

	if post.Author == nil || post.Author.UserID == nil || *post.Author.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the author of this post"})
		return nil, false
	}

	return post, true
}

func postPath(id uint) string {
	return fmt.Sprintf("/%d/", id)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}
