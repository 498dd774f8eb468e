package handlers

import (
	"CareLedger/models"
	"CareLedger/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetAllSettings(c *gin.Context) {
	settings, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, settings)
}

func (h *SettingsHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	setting, err := h.service.Get(c, key)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if setting == nil {
		c.JSON(404, gin.H{"error": "Setting not found"})
		return
	}
	c.JSON(200, setting)
}

func (h *SettingsHandler) UpsertSetting(c *gin.Context) {
	var setting models.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	setting.Key = c.Param("key")
	if err := h.service.Upsert(c, &setting); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, setting)
}
