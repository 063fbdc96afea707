package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/auth"
	"github.com/thatcatcamp/djchat/internal/middleware"
	"github.com/thatcatcamp/djchat/internal/servers"
	"github.com/thatcatcamp/djchat/internal/users"
)

// ServerList answers the filtered server list query
func (h *Handlers) ServerList(c *gin.Context) {
	q, err := servers.ParseQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	listings, err := servers.List(h.DB, q, auth.CurrentUser(c))
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

type categoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CategoryList returns every category
func (h *Handlers) CategoryList(c *gin.Context) {
	cats, err := servers.ListCategories(h.DB)
	if err != nil {
		h.apiError(c, err)
		return
	}

	resp := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, categoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        iconURL(cat.Icon),
		})
	}
	c.JSON(http.StatusOK, resp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for an access token, also set as a cookie
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	user, err := users.Authenticate(h.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.Logger.Warn("failed login", "email", req.Email, "ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}
		h.apiError(c, err)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		h.apiError(c, err)
		return
	}

	auth.SetTokenCookie(c, token, h.SecureCookies)
	c.JSON(http.StatusOK, gin.H{"access": token})
}

// Account returns the authenticated user. Routes using it sit behind
// auth.RequireAuth.
func (h *Handlers) Account(c *gin.Context) {
	user, err := users.GetUserByID(h.DB, auth.CurrentUser(c).ID)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Logout clears the access token cookie
func (h *Handlers) Logout(c *gin.Context) {
	auth.ClearTokenCookie(c, h.SecureCookies)
	c.JSON(http.StatusOK, gin.H{"detail": "Logged out."})
}

// apiError maps domain errors to status codes
func (h *Handlers) apiError(c *gin.Context, err error) {
	var notFound *servers.ServerNotFoundError

	switch {
	case errors.Is(err, servers.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.Is(err, servers.ErrInvalidServerID), errors.Is(err, servers.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusBadRequest, gin.H{"detail": notFound.Error()})
	case errors.Is(err, servers.ErrCategoryNotFound), errors.Is(err, users.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	default:
		h.Logger.Error("api request failed",
			"path", c.Request.URL.Path,
			"error", err,
			"request_id", middleware.GetRequestID(c),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
	}
}
