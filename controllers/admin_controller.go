package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/auth"
	"cabin-backend/middleware"
	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

type createAdminPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminController manages the administrator account population.
type AdminController struct {
	Accounts      *services.AccountService
	SecureCookies bool
}

func NewAdminController(accounts *services.AccountService, secureCookies bool) *AdminController {
	return &AdminController{Accounts: accounts, SecureCookies: secureCookies}
}

func (ac *AdminController) List(c *gin.Context) {
	admins, err := ac.Accounts.List(c.Request.Context(), models.RoleAdmin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"admins": admins})
}

func (ac *AdminController) Create(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	admin, err := ac.Accounts.Create(c.Request.Context(), models.RoleAdmin, payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"admin": gin.H{"id": admin.ID, "name": admin.Name, "email": admin.Email},
	})
}

// Delete removes an admin account. Deleting the last admin fails with 400.
// When an admin deletes their own account the session cookie is cleared too.
func (ac *AdminController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := ac.Accounts.Delete(c.Request.Context(), models.RoleAdmin, id); err != nil {
		respondServiceError(c, err)
		return
	}

	if claims, ok := middleware.Principal(c); ok && claims.Subject == id {
		auth.ClearAuthCookie(c, ac.SecureCookies)
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "admin deleted"})
}
