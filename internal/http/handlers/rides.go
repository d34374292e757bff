package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"carpool/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/ride/create
func (a *API) CreateRide(c *gin.Context) {
	var in models.CreateRideInput
	if !bindJSON(c, &in, false) {
		return
	}
	ride, err := a.Rides.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ride created!", "ride_id": ride.ID})
}

// GET /api/ride/get-all
func (a *API) GetAllRides(c *gin.Context) {
	rides, err := a.Rides.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}

type rideDateRequest struct {
	Date string `json:"date"`
}

// GET /api/ride/get-date
// The date may come in the JSON body or as ?date=; the body wins.
func (a *API) GetRidesByDate(c *gin.Context) {
	var req rideDateRequest
	if !bindJSON(c, &req, true) {
		return
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = strings.TrimSpace(c.Query("date"))
	}

	rides, resolved, err := a.Rides.ListByDate(c.Request.Context(), date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Rides for %s", resolved),
		"date":    resolved,
		"data":    rides,
	})
}

// GET /api/ride/:id/manifest
func (a *API) GetRideManifest(c *gin.Context) {
	pdf, filename, err := a.Manifest.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
