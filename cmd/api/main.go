package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AstralPath/consult-scheduler/internal/config"
	dbpkg "github.com/AstralPath/consult-scheduler/internal/db"
	"github.com/AstralPath/consult-scheduler/internal/middleware"
	"github.com/AstralPath/consult-scheduler/internal/routes"
	"github.com/AstralPath/consult-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	if err := timezone.SetDefault(cfg.DefaultTimezone); err != nil {
		log.Fatalf("invalid DEFAULT_TIMEZONE %q: %v", cfg.DefaultTimezone, err)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
