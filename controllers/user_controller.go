package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bw3sley/ignite-daily-diet-api/middlewares"
	"github.com/bw3sley/ignite-daily-diet-api/services"
)

// sessionMaxAge keeps the session cookie for 7 days.
const sessionMaxAge = 7 * 24 * 60 * 60

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
}

// CreateUser registers a user against the caller's session token, minting
// the token and scheduling the cookie when the request carries none. The
// cookie is scheduled before the uniqueness check, so a conflict response
// still sets it.
func (h *UserController) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(middlewares.SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
	}

	if err := h.Svc.Register(c.Request.Context(), input.Username, sessionID); err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}
