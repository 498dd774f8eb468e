package handlers

import (
	"CareLedger/models"
	"CareLedger/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.PatientID = c.Param("patient_id")
	if err := h.service.Create(c, &record); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	patientID := c.Param("patient_id")
	records, err := h.service.GetByPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, records)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid record ID"})
		return
	}
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = uint(id)
	record.PatientID = c.Param("patient_id")
	if err := h.service.Update(c, &record); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid record ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Medical record deleted"})
}
