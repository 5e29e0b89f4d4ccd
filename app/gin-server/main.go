package main

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Sinclqir/jobazur-document-service/config"
	"github.com/Sinclqir/jobazur-document-service/internal/api/handlers"
	"github.com/Sinclqir/jobazur-document-service/internal/api/middleware"
	"github.com/Sinclqir/jobazur-document-service/internal/api/routes"
	"github.com/Sinclqir/jobazur-document-service/internal/logger"
	memrepo "github.com/Sinclqir/jobazur-document-service/internal/repositories/memory"
	pgrepo "github.com/Sinclqir/jobazur-document-service/internal/repositories/postgres"
	"github.com/Sinclqir/jobazur-document-service/internal/services"
	"github.com/Sinclqir/jobazur-document-service/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Document records: Postgres, or in-process when no URI is configured.
	var repo pgrepo.DocumentRepository
	if os.Getenv("POSTGRES_URI") != "" {
		if err := config.InitPostgres(); err != nil {
			l.Fatalf("PostgreSQL init error: %v", err)
		}
		l.Info("PostgreSQL connected")
		repo = pgrepo.NewDocumentRepo(config.PostgresDB)
	} else {
		l.Warn("POSTGRES_URI not set, using in-memory document store (local development only)")
		repo = memrepo.NewDocumentRepo()
	}

	store, err := newObjectStore()
	if err != nil {
		l.Fatalf("Object store init error: %v", err)
	}

	svc := services.NewDocumentService(repo, store, l)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Documents: handlers.NewDocumentHandler(svc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}
	l.Infof("Document service running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		l.Fatalf("Server error: %v", err)
	}
}

func newObjectStore() (storage.ObjectStore, error) {
	switch strings.ToLower(os.Getenv("STORAGE_BACKEND")) {
	case "gcs":
		return storage.NewGCSStore(context.Background(),
			os.Getenv("GCS_BUCKET"),
			os.Getenv("GCS_CREDENTIALS_FILE"))
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewS3Store(storage.S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    os.Getenv("S3_REGION"),
			AccessKey: os.Getenv("S3_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			Bucket:    os.Getenv("S3_BUCKET"),
			UseSSL:    !strings.EqualFold(os.Getenv("S3_USE_SSL"), "false"),
		})
	}
}
