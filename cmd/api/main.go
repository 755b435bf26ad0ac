package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/happytailsapp/petcare-booking/internal/config"
	dbpkg "github.com/happytailsapp/petcare-booking/internal/db"
	"github.com/happytailsapp/petcare-booking/internal/middleware"
	"github.com/happytailsapp/petcare-booking/internal/routes"
	"github.com/happytailsapp/petcare-booking/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
