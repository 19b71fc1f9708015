package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"medialabel/internal/config"
	"medialabel/internal/database"
	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/auth"
	"medialabel/internal/domain/export"
	"medialabel/internal/domain/label"
	"medialabel/internal/domain/region"
	"medialabel/internal/domain/segment"
	"medialabel/internal/middleware"
	jwtsvc "medialabel/internal/pkg/jwt"
	"medialabel/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&asset.Asset{},
		&label.Label{},
		&segment.Segment{},
		&region.Region{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	files := storage.NewLocalStorage(cfg.UploadsDir, cfg.StaticBase)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := auth.NewRepository(db)
	assetRepo := asset.NewRepository(db)
	labelRepo := label.NewRepository(db)
	segmentRepo := segment.NewRepository(db)
	regionRepo := region.NewRepository(db)
	exportRepo := export.NewRepository(db)

	authService := auth.NewService(userRepo, j)
	assetService := asset.NewService(assetRepo, files)
	labelService := label.NewService(labelRepo, assetService)
	segmentService := segment.NewService(segmentRepo, assetService, labelRepo)
	regionService := region.NewService(regionRepo, assetService, labelRepo)
	exportService := export.NewService(exportRepo)

	authHandler := auth.NewHandler(authService)
	assetHandler := asset.NewHandler(assetService)
	labelHandler := label.NewHandler(labelService)
	segmentHandler := segment.NewHandler(segmentService)
	regionHandler := region.NewHandler(regionService)
	exportHandler := export.NewHandler(exportService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static(cfg.StaticBase, files.BaseDir())

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			asset.RegisterRoutes(protected, assetHandler)
			label.RegisterRoutes(protected, labelHandler)
			segment.RegisterRoutes(protected, segmentHandler)
			region.RegisterRoutes(protected, regionHandler)
			export.RegisterRoutes(protected, exportHandler)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
