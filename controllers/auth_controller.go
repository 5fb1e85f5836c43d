package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cabin-backend/auth"
	"cabin-backend/middleware"
	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// AuthController handles login, logout, session introspection, guest
// registration, and password changes.
type AuthController struct {
	Accounts      *services.AccountService
	Issuer        *auth.TokenIssuer
	SecureCookies bool
}

func NewAuthController(accounts *services.AccountService, issuer *auth.TokenIssuer, secureCookies bool) *AuthController {
	return &AuthController{Accounts: accounts, Issuer: issuer, SecureCookies: secureCookies}
}

func userResponse(id, name, email, role string) gin.H {
	return gin.H{"id": id, "name": name, "email": email, "role": role}
}

// Login verifies credentials for the requested role population (guest by
// default) and sets the session cookie on success.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	role := strings.TrimSpace(payload.Role)
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		utils.JSONError(c, http.StatusBadRequest, "unknown role")
		return
	}

	account, err := ac.Accounts.Verify(c.Request.Context(), role, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := ac.Issuer.Issue(account)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	auth.SetAuthCookie(c, token, ac.SecureCookies)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user": userResponse(account.ID, account.Name, account.Email, account.Role),
	})
}

// Logout clears the session cookie. Tokens are not revoked server-side;
// expiry is the only other termination.
func (ac *AuthController) Logout(c *gin.Context) {
	auth.ClearAuthCookie(c, ac.SecureCookies)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated principal from the verified token.
func (ac *AuthController) Me(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user": userResponse(claims.Subject, claims.Name, claims.Email, claims.Role),
	})
}

// Register creates a guest account.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	account, err := ac.Accounts.Create(c.Request.Context(), models.RoleUser, payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user": userResponse(account.ID, account.Name, account.Email, account.Role),
	})
}

// ChangePassword replaces the authenticated principal's own password after
// checking the current one.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "current and new passwords are required")
		return
	}

	err := ac.Accounts.ChangePassword(c.Request.Context(), claims.Role, claims.Email, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}
