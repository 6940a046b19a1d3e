package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/folksdev/blogapi/api/swagger"
	"github.com/folksdev/blogapi/pkg/blog/blogs"
	"github.com/folksdev/blogapi/pkg/blog/comments"
	"github.com/folksdev/blogapi/pkg/blog/config"
	"github.com/folksdev/blogapi/pkg/blog/database"
	"github.com/folksdev/blogapi/pkg/blog/groups"
	"github.com/folksdev/blogapi/pkg/blog/middleware"
	"github.com/folksdev/blogapi/pkg/blog/models"
	"github.com/folksdev/blogapi/pkg/blog/posts"
	"github.com/folksdev/blogapi/pkg/blog/users"
)

// @title Blog API
// @version 1.0
// @description A CRUD REST backend for a blogging platform: users, groups, blogs, posts and comments.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /v1

func main() {
	// Load .env file if present, otherwise rely on system env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := database.GetDB()

	v1 := r.Group("/v1")
	{
		users.NewHandler(db).RegisterRoutes(v1.Group("/user"))
		groups.NewHandler(db).RegisterRoutes(v1.Group("/group"))
		blogs.NewHandler(db).RegisterRoutes(v1.Group("/blog"))
		posts.NewHandler(db).RegisterRoutes(v1.Group("/post"))
		comments.NewHandler(db).RegisterRoutes(v1.Group("/comment"))
	}

	log.Printf("Starting blog server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
