package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

type createUserPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserController is the admin-facing management surface for guest accounts.
type UserController struct {
	Accounts *services.AccountService
}

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{Accounts: accounts}
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Accounts.List(c.Request.Context(), models.RoleUser)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"users": users})
}

func (uc *UserController) Create(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	user, err := uc.Accounts.Create(c.Request.Context(), models.RoleUser, payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) Update(c *gin.Context) {
	var payload updateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := uc.Accounts.Update(c.Request.Context(), models.RoleUser, c.Param("id"), payload.Name, payload.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.Accounts.Delete(c.Request.Context(), models.RoleUser, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
