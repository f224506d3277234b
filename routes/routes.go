package routes

import (
	"net/http"

	"gopress/controllers"
	"gopress/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	authorController *controllers.AuthorController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.AuthRequired(), authController.Me)
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/:id", userController.GetUser)
			users.POST("/:id/grants", userController.UpdateGrants)
		}

		authors := api.Group("/authors")
		authors.Use(middleware.AuthRequired())
		{
			authors.POST("", authorController.Create)
			authors.GET("/:id", authorController.Get)
		}
	}

	// Blog surface. Detail is public; a valid token only adds the comment
	// form to the response.
	r.GET("/", postController.List)
	r.GET("/create/", middleware.AuthRequired(), postController.CreateForm)
	r.POST("/create/", middleware.AuthRequired(), postController.Create)
	r.GET("/:pk/", middleware.AuthOptional(), postController.Detail)
	r.GET("/:pk/update", middleware.AuthRequired(), postController.UpdateForm)
	r.POST("/:pk/update", middleware.AuthRequired(), postController.Update)
	r.POST("/:pk/comment", middleware.AuthRequired(), commentController.Create)
}
