package handlers

import (
	"net/http"
	"strconv"

	"blog-api/helper"
	"blog-api/middleware"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type AuthHandler struct {
	authService services.AuthService
	helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, helper: httpHelper}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.helper.Validate.Struct(req); err != nil {
		h.helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	resp, err := h.authService.SignUp(req)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	h.setTokenHeaders(c, resp.Token)
	c.JSON(http.StatusOK, gin.H{"data": resp.User})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.helper.Validate.Struct(req); err != nil {
		h.helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	resp, err := h.authService.SignIn(req)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	h.setTokenHeaders(c, resp.Token)
	c.JSON(http.StatusOK, gin.H{"data": resp.User})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// setTokenHeaders mirrors the header triple the auth middleware expects back
// to the client.
func (h *AuthHandler) setTokenHeaders(c *gin.Context, token models.TokenPair) {
	c.Header(middleware.HeaderAccessToken, token.AccessToken)
	c.Header(middleware.HeaderClient, token.Client)
	c.Header(middleware.HeaderUID, token.UID)
	c.Header("expiry", strconv.FormatInt(token.Expiry.Unix(), 10))
}
