package handlers

import (
	"net/http"

	"carpool/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/register-user
func (a *API) RegisterUser(c *gin.Context) {
	var in models.RegisterUserInput
	if !bindJSON(c, &in, false) {
		return
	}
	u, err := a.Users.Register(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": u.ID,
		"name":    u.Name,
		"phone":   u.Phone,
		"email":   u.Email,
	})
}

// GET /api/get-all/users
func (a *API) GetAllUsers(c *gin.Context) {
	users, err := a.Users.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GET /api/:id/get-user
func (a *API) GetUserByID(c *gin.Context) {
	u, err := a.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": u})
}
