package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "carpool/internal/config"
	"carpool/internal/db"
	router "carpool/internal/http"
	h "carpool/internal/http/handlers"
	"carpool/internal/mq"
	"carpool/internal/repositories"
	"carpool/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("[CONFIG] invalid environment: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()
	conn, err := intconfig.OpenDB(ctx, env)
	if err != nil {
		log.Fatalf("[DB] %v", err)
	}
	defer conn.Close()

	if env.DBEnsureSchema {
		if err := db.EnsureSchema(ctx, conn); err != nil {
			log.Fatalf("[DB] ensure schema: %v", err)
		}
		log.Println("[DB] schema ensured")
	}

	userRepo := repositories.UserRepository{DB: conn}
	rideRepo := repositories.RideRepository{DB: conn}
	passengerRepo := repositories.PassengerRepository{DB: conn}

	users, err := services.NewUserService(userRepo, env.UserCacheTTL)
	if err != nil {
		log.Fatalf("[USER] cache init: %v", err)
	}

	bookings := services.BookingService{
		Store:      repositories.BookingRepository{DB: conn},
		Passengers: passengerRepo,
	}
	if env.AMQPURL != "" {
		pub, err := mq.NewPublisher(env.AMQPURL, env.AMQPExchange)
		if err != nil {
			log.Printf("[MQ] events disabled: %v", err)
		} else {
			defer pub.Close()
			bookings.Events = pub
			log.Printf("[MQ] publishing to exchange=%s", env.AMQPExchange)
		}
	}

	rides := services.RideService{Repo: rideRepo}
	a := &h.API{
		Users:    users,
		Rides:    rides,
		Bookings: bookings,
		Fares:    services.FareService{Repo: repositories.FareRepository{DB: conn}},
		Manifest: services.ManifestService{Rides: rides, Passengers: passengerRepo},
		DB:       conn,
	}

	r := router.NewRouter(env, a)

	srv := &http.Server{
		Addr:              env.AppAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s", env.AppAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
