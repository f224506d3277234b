package main

import (
	"log"

	"gopress/config"
	"gopress/controllers"
	"gopress/database"
	"gopress/middleware"
	"gopress/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.CORS())
	r.Use(middleware.Logger())

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	authorController := controllers.NewAuthorController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)

	routes.SetupRoutes(r, authController, userController, authorController, postController, commentController)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
