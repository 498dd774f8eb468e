package handlers

import (
	"CareLedger/models"
	"CareLedger/services"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &lead); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, lead)
}

func (h *LeadHandler) GetAllLeads(c *gin.Context) {
	status := c.Query("status")
	leads, err := h.service.GetAll(c, status)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, leads)
}

func (h *LeadHandler) GetFollowUpsDue(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	leads, err := h.service.GetFollowUpsDue(c, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, leads)
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid lead ID"})
		return
	}
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	lead.ID = uint(id)
	if err := h.service.Update(c, &lead); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, lead)
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid lead ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Lead deleted"})
}
