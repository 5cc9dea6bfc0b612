package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "clubsite/docs" // swagger docs

	"clubsite/internal/auth"
	"clubsite/internal/cache"
	"clubsite/internal/config"
	"clubsite/internal/db"
	"clubsite/internal/handler"
	"clubsite/internal/model"
	"clubsite/internal/repository"
	"clubsite/internal/router"
	"clubsite/internal/service"
)

// @title Club Site API
// @version 1.0
// @description Sports-club content API: roster, fixtures, news and gallery with JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Player{},
		&model.Match{},
		&model.News{},
		&model.GalleryItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	playerRepo := repository.NewPlayerRepository(gormDB)
	matchRepo := repository.NewMatchRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	playerService := service.NewPlayerService(playerRepo)
	matchService := service.NewMatchService(matchRepo, cacheClient)
	newsService := service.NewNewsService(newsRepo)
	galleryService := service.NewGalleryService(galleryRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	playerHandler := handler.NewPlayerHandler(playerService)
	matchHandler := handler.NewMatchHandler(matchService)
	newsHandler := handler.NewNewsHandler(newsService)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	router.Register(
		e,
		cfg,
		userService,
		authHandler,
		playerHandler,
		matchHandler,
		newsHandler,
		galleryHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
