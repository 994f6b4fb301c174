package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	controllers "storefront-service/internal/controllers/http"
	"storefront-service/internal/infra"
	"storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/services"
	"storefront-service/internal/storage"
	"storefront-service/internal/storage/file"
	"storefront-service/internal/storage/memory"
	"storefront-service/internal/storage/mysqlstore"
	"storefront-service/internal/storage/redisstore"
)

func newAdapter() storage.Adapter {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:        os.Getenv("REDIS_HOST") + ":6379",
			DB:          0,
			DialTimeout: 2 * time.Second,
		})
		return redisstore.New(client)
	case "mysql":
		store, err := mysqlstore.NewFromEnv()
		if err != nil {
			log.Fatalf("db: connect: %v", err)
		}
		return store
	case "memory":
		return memory.New()
	default:
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
		store, err := file.New(dir)
		if err != nil {
			log.Fatalf("storage: open %s: %v", dir, err)
		}
		return store
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	store := services.NewStoreService(newAdapter())
	store.Initialize(context.Background())

	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		publisher, err := rabbitmq.NewPublisher(amqpURL, "storefront.events")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer publisher.Close()
		store.SetPublisher(publisher)
	}

	insight := infra.NewInsightClient(
		os.Getenv("GEMINI_API_URL"),
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"),
		10*time.Second,
	)

	handler := controllers.NewHandler(store, insight)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting storefront service on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
