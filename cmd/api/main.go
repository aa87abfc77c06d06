package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/admin"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/booking"
	"hotelier/internal/modules/catalog"
	"hotelier/internal/modules/feed"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
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
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(reservationRepo, roomRepo, feed.NewNotifier(hub))
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingService, reservationRepo)
	adminHandler := admin.NewHandler(adminService, bookingService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// guest booking works with or without an account
		guest := v1.Group("/")
		guest.Use(middleware.OptionalAuthorize(j))
		{
			bookingHandler.RegisterPublicRoutes(guest)
		}

		// account-bound endpoints
		protected := v1.Group("/")
		protected.Use(middleware.Authorize(j))
		{
			bookingHandler.RegisterProtectedRoutes(protected)
		}

		// dashboard
		adm := v1.Group("/admin")
		adm.Use(middleware.Authorize(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adm)
			feedHandler.RegisterRoutes(adm)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
