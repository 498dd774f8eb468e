package controllers

import (
	"CareLedger/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCRMRoutes wires the clinic routes directly on the router.
func SetupCRMRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	ledgerHandler *handlers.LedgerHandler,
	medicalRecordHandler *handlers.MedicalRecordHandler,
	staffHandler *handlers.StaffHandler,
	leadHandler *handlers.LeadHandler,
	inventoryHandler *handlers.InventoryHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	router.POST("/doctors", doctorHandler.CreateDoctor)
	router.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	router.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	router.GET("/doctors", doctorHandler.GetAllDoctors)

	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	// Ledger: statements, payments, fee edits, recompute
	router.GET("/patients/:patient_id/statement", ledgerHandler.GetStatement)
	router.POST("/patients/:patient_id/payments", ledgerHandler.RecordPayment)
	router.GET("/patients/:patient_id/payments", ledgerHandler.GetPaymentHistory)
	router.PUT("/patients/:patient_id/fees/:year/:month", ledgerHandler.SetMonthlyFee)
	router.POST("/patients/:patient_id/fees/:year/:month/recompute", ledgerHandler.RecomputeMonth)

	router.POST("/patients/:patient_id/medical_records", medicalRecordHandler.CreateMedicalRecord)
	router.GET("/patients/:patient_id/medical_records", medicalRecordHandler.GetMedicalRecords)
	router.PUT("/patients/:patient_id/medical_records/:id", medicalRecordHandler.UpdateMedicalRecord)
	router.DELETE("/patients/:patient_id/medical_records/:id", medicalRecordHandler.DeleteMedicalRecord)

	router.POST("/staff", staffHandler.CreateStaff)
	router.GET("/staff", staffHandler.GetAllStaff)
	router.PUT("/staff/:id", staffHandler.UpdateStaff)
	router.DELETE("/staff/:id", staffHandler.DeleteStaff)
	router.POST("/staff/:id/attendance", staffHandler.MarkAttendance)
	router.GET("/staff/:id/attendance", staffHandler.GetAttendance)

	router.POST("/leads", leadHandler.CreateLead)
	router.GET("/leads", leadHandler.GetAllLeads)
	router.GET("/leads/follow_ups", leadHandler.GetFollowUpsDue)
	router.PUT("/leads/:id", leadHandler.UpdateLead)
	router.DELETE("/leads/:id", leadHandler.DeleteLead)

	router.POST("/inventory", inventoryHandler.CreateItem)
	router.GET("/inventory", inventoryHandler.GetAllItems)
	router.PUT("/inventory/:id", inventoryHandler.UpdateItem)
	router.POST("/inventory/:id/adjust", inventoryHandler.AdjustStock)
	router.DELETE("/inventory/:id", inventoryHandler.DeleteItem)

	router.GET("/settings", settingsHandler.GetAllSettings)
	router.GET("/settings/:key", settingsHandler.GetSetting)
	router.PUT("/settings/:key", settingsHandler.UpsertSetting)
}
