package handlers

import (
	"CareLedger/ledger"
	"CareLedger/middlewares"
	"CareLedger/models"
	"CareLedger/services"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	service *services.LedgerService
}

func NewLedgerHandler(service *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

type setFeeRequest struct {
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
	OtherFees  decimal.Decimal `json:"other_fees"`
}

// RecordPayment appends a payment event and returns the reconciled statement.
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	patientID := c.Param("patient_id")
	var event models.PaymentEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	event.PatientID = patientID

	statement, err := h.service.RecordPayment(c, patientID, &event)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(201, statement)
}

// SetMonthlyFee creates or updates the fee inputs of a billing month.
func (h *LedgerHandler) SetMonthlyFee(c *gin.Context) {
	patientID := c.Param("patient_id")
	month, year, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	var req setFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	statement, err := h.service.SetMonthlyFee(c, patientID, month, year, req.MonthlyFee, req.OtherFees)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(200, statement)
}

// RecomputeMonth replays the full chain for the patient. Idempotent.
func (h *LedgerHandler) RecomputeMonth(c *gin.Context) {
	patientID := c.Param("patient_id")
	month, year, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	statement, err := h.service.RecomputeMonth(c, patientID, month, year)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(200, statement)
}

// GetStatement returns the reconciled statement without persisting anything.
func (h *LedgerHandler) GetStatement(c *gin.Context) {
	patientID := c.Param("patient_id")
	statement, err := h.service.GetStatement(c, patientID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(200, statement)
}

// GetPaymentHistory returns the raw payment events, newest first.
func (h *LedgerHandler) GetPaymentHistory(c *gin.Context) {
	patientID := c.Param("patient_id")
	history, err := h.service.GetPaymentHistory(c, patientID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(200, history)
}

func parsePeriodParams(c *gin.Context) (month, year int, ok bool) {
	var err error
	year, err = strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return month, year, true
}

func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidPeriod):
		middlewares.HttpError(c, err.Error(), 400, err)
	case errors.Is(err, ledger.ErrPatientNotFound):
		middlewares.HttpError(c, "Patient not found", 404, err)
	case errors.Is(err, ledger.ErrRecordLocked):
		middlewares.HttpError(c, "Ledger is busy, retry shortly", 409, err)
	default:
		middlewares.HttpError(c, "Internal server error", 500, err)
	}
}
