package handlers

import (
	"CareLedger/models"
	"CareLedger/services"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service *services.StaffService
}

func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &staff); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, staff)
}

func (h *StaffHandler) GetAllStaff(c *gin.Context) {
	staff, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id := c.Param("id")
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	staff.ID = id
	if err := h.service.Update(c, &staff); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Staff deleted"})
}

func (h *StaffHandler) MarkAttendance(c *gin.Context) {
	var attendance models.StaffAttendance
	if err := c.ShouldBindJSON(&attendance); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	attendance.StaffID = c.Param("id")
	if err := h.service.MarkAttendance(c, &attendance); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, attendance)
}

func (h *StaffHandler) GetAttendance(c *gin.Context) {
	id := c.Param("id")
	from := c.Query("from")
	to := c.Query("to")
	attendance, err := h.service.GetAttendance(c, id, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, attendance)
}
