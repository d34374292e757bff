package handlers

import (
	"net/http"

	"carpool/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/fare/add
func (a *API) AddRouteFare(c *gin.Context) {
	var in models.AddRouteFareInput
	if !bindJSON(c, &in, false) {
		return
	}
	f, err := a.Fares.Add(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Route fare added successfully", "fare_id": f.ID})
}

// GET /api/fare/get-all
func (a *API) GetAllRouteFares(c *gin.Context) {
	fares, err := a.Fares.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route fares fetched successfully", "data": fares})
}
