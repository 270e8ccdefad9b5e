package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"propertyhub/internal/config"
	"propertyhub/internal/database"
	"propertyhub/internal/middleware"
	"propertyhub/internal/modules/auth"
	"propertyhub/internal/modules/booking"
	"propertyhub/internal/modules/comment"
	"propertyhub/internal/modules/events"
	"propertyhub/internal/modules/gallery"
	"propertyhub/internal/modules/property"
	"propertyhub/internal/modules/settings"
	"propertyhub/internal/modules/visitor"
	jwtsvc "propertyhub/internal/pkg/jwt"
	"propertyhub/internal/repository"
	"propertyhub/internal/storage"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	store := storage.NewDisk(cfg.UploadsDir)
	hub := events.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, resetRepo, j, nil, cfg.ResetCodeTTL)
	authHandler := auth.NewHandler(authService, cfg.UploadsDir)

	propertyService := property.NewService(propertyRepo, galleryRepo, store)
	propertyHandler := property.NewHandler(propertyService)

	galleryService := gallery.NewService(galleryRepo, propertyRepo, store)
	galleryHandler := gallery.NewHandler(galleryService)

	commentService := comment.NewService(commentRepo, visitorRepo, hub)
	commentHandler := comment.NewHandler(commentService)

	bookingService := booking.NewService(enquiryRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	visitorService := visitor.NewService(visitorRepo)
	visitorHandler := visitor.NewHandler(visitorService)

	settingsService := settings.NewService(settingRepo)
	settingsHandler := settings.NewHandler(settingsService)

	eventsHandler := events.NewHandler(hub, j)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.Static("/static", cfg.UploadsDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		propertyHandler.RegisterPublicRoutes(api)
		galleryHandler.RegisterPublicRoutes(api)
		commentHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		eventsHandler.RegisterRoutes(api)

		// protected (admin dashboard)
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			propertyHandler.RegisterProtectedRoutes(protected)
			galleryHandler.RegisterProtectedRoutes(protected)
			commentHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			visitorHandler.RegisterProtectedRoutes(protected)
			settingsHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Println("Listening on", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
