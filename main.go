package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"civicai-be/blob"
	"civicai-be/config"
	"civicai-be/controllers"
	"civicai-be/lifecycle"
	"civicai-be/mirror"
	"civicai-be/routes"
	"civicai-be/store"
	"civicai-be/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	feed := store.NewFeed(config.RedisClient)
	issueStore := store.NewMongoStore(config.GetCollection("issues"), feed)
	blobStore := blob.NewGridFSStore(db, baseURL)
	uploader := upload.NewOrchestrator(blobStore)

	engine := mirror.NewEngine(issueStore)
	if err := engine.Activate(context.Background()); err != nil {
		log.Fatalf("Failed to activate sync engine: %v", err)
	}
	defer engine.Deactivate()

	reportController := controllers.NewReportController(uploader, issueStore, nil)
	issueController := controllers.NewIssueController(engine, lifecycle.NewController(issueStore))
	mediaController := controllers.NewMediaController(blobStore)

	r := gin.Default()
	r.Use(cors.Default())

	routes.IssueRoutes(r, reportController, issueController)
	routes.MediaRoutes(r, mediaController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
