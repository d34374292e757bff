package api

import (
	"log"
	stdhttp "net/http"

	intconfig "carpool/internal/config"
	h "carpool/internal/http/handlers"
	"carpool/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/routes", h.Routes(r))

		// Users
		api.POST("/register-user", a.RegisterUser)
		api.GET("/get-all/users", a.GetAllUsers)
		api.GET("/:id/get-user", a.GetUserByID)

		// Rides
		rides := api.Group("/ride")
		rides.POST("/create", a.CreateRide)
		rides.GET("/get-all", a.GetAllRides)
		rides.GET("/get-date", a.GetRidesByDate)
		rides.GET("/:id/manifest", a.GetRideManifest)

		// Bookings
		api.POST("/book-ride", a.BookRide)
		api.GET("/:id/booked-passengers", a.GetBookedPassengers)

		// Fares
		fares := api.Group("/fare")
		fares.POST("/add", a.AddRouteFare)
		fares.GET("/get-all", a.GetAllRouteFares)
	}

	return r
}
