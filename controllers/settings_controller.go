package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

type emailSettingsPayload struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Secure  bool   `json:"secure"`
	Auth    struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	} `json:"auth"`
	From string `json:"from"`
}

// SettingsController exposes the email-configuration singleton. Admin only.
type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (sc *SettingsController) GetEmailSettings(c *gin.Context) {
	settings, err := sc.Settings.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"settings": settings})
}

func (sc *SettingsController) UpdateEmailSettings(c *gin.Context) {
	var payload emailSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	settings, err := sc.Settings.Update(c.Request.Context(),
		payload.Enabled, payload.Host, payload.Port, payload.Secure,
		models.SMTPAuth{User: payload.Auth.User, Pass: payload.Auth.Pass},
		payload.From,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"settings": settings})
}
