package controllers

import (
	"net/http"

	"gopress/models"
	"gopress/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db             *gorm.DB
	commentService *services.CommentService
	postService    *services.PostService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		db:             db,
		commentService: services.NewCommentService(db),
		postService:    services.NewPostService(db),
	}
}

// Create attaches a comment to the post named by :pk. Write-only endpoint:
// the router rejects anything but POST. Invalid content is reported as a
// one-shot notice on the next detail render, not as inline field errors.
func (cc *CommentController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := parseID(c, "pk")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := cc.postService.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.SetCookie("notice", "Comment not created.", 60, "/", "", false, true)
		c.Redirect(http.StatusFound, postPath(post.ID))
		return
	}

	if _, err := cc.commentService.CreateComment(post.ID, userID, &form); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.Redirect(http.StatusFound, postPath(post.ID))
}
