package handlers

import (
	"net/http"

	"carpool/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/book-ride
func (a *API) BookRide(c *gin.Context) {
	var in models.BookRideInput
	if !bindJSON(c, &in, false) {
		return
	}
	res, err := a.Bookings.Book(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Ride booked successfully!",
		"passenger_id": res.PassengerID,
		"booking_id":   res.BookingID,
	})
}

// GET /api/:id/booked-passengers
func (a *API) GetBookedPassengers(c *gin.Context) {
	out, err := a.Bookings.BookedPassengers(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
