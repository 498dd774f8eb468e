package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Patient model
type Patient struct {
	ID             string          `gorm:"primaryKey;column:id" json:"id"`
	Name           string          `gorm:"column:name;not null;index" json:"name"`
	Sex            string          `gorm:"column:sex;check:sex IN ('Male', 'Female', 'Other');not null" json:"sex"`
	Age            int             `gorm:"column:age" json:"age"`
	Phone          string          `gorm:"column:phone" json:"phone"`
	Email          string          `gorm:"column:email" json:"email"`
	Address        string          `gorm:"column:address" json:"address"`
	AdmissionDate  string          `gorm:"column:admission_date;type:date;not null;index" json:"admission_date"`
	AttenderName   string          `gorm:"column:attender_name" json:"attender_name"`
	AttenderPhone  string          `gorm:"column:attender_phone" json:"attender_phone"`
	DoctorID       string          `gorm:"column:doctor_id;index" json:"doctor_id"`
	Status         string          `gorm:"column:status;check:status IN ('Active', 'Discharged');not null;default:'Active'" json:"status"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	MonthlyRecords []MonthlyRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Payments       []PaymentEvent  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Doctor model
type Doctor struct {
	ID              string          `gorm:"primaryKey;column:id" json:"id"`
	Name            string          `gorm:"column:name;not null;index" json:"name"`
	Specialization  string          `gorm:"column:specialization" json:"specialization"`
	Phone           string          `gorm:"column:phone" json:"phone"`
	Email           string          `gorm:"column:email" json:"email"`
	ConsultationFee decimal.Decimal `gorm:"column:consultation_fee;type:decimal(10,2);not null;default:0.00" json:"consultation_fee"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patients        []Patient       `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	MedicalRecords  []MedicalRecord `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Staff model
type Staff struct {
	ID            string            `gorm:"primaryKey;column:id" json:"id"`
	Name          string            `gorm:"column:name;not null;index" json:"name"`
	Role          string            `gorm:"column:role;not null" json:"role"`
	Phone         string            `gorm:"column:phone" json:"phone"`
	Email         string            `gorm:"column:email" json:"email"`
	MonthlySalary decimal.Decimal   `gorm:"column:monthly_salary;type:decimal(10,2);not null;default:0.00" json:"monthly_salary"`
	JoinDate      string            `gorm:"column:join_date;type:date" json:"join_date"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Attendance    []StaffAttendance `gorm:"foreignKey:StaffID;references:ID" json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}

// StaffAttendance model. One row per staff member per day.
type StaffAttendance struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	StaffID      string    `gorm:"column:staff_id;not null;index;uniqueIndex:idx_staff_date" json:"staff_id"`
	Date         string    `gorm:"column:date;type:date;not null;index;uniqueIndex:idx_staff_date" json:"date"`
	CheckIn      string    `gorm:"column:check_in" json:"check_in"`
	CheckOut     string    `gorm:"column:check_out" json:"check_out"`
	Status       string    `gorm:"column:status;check:status IN ('Present', 'Absent', 'Late', 'Half Day');not null;default:'Present'" json:"status"`
	WorkingHours string    `gorm:"column:working_hours" json:"working_hours"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Staff        Staff     `gorm:"foreignKey:StaffID;references:ID" json:"-"`
}

func (StaffAttendance) TableName() string {
	return "staff_attendance"
}

// Lead model for the enquiry pipeline.
type Lead struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Phone        string    `gorm:"column:phone;not null;index" json:"phone"`
	Source       string    `gorm:"column:source" json:"source"`
	Status       string    `gorm:"column:status;check:status IN ('New', 'Contacted', 'Converted', 'Closed');not null;default:'New'" json:"status"`
	FollowUpDate string    `gorm:"column:follow_up_date;type:date;index" json:"follow_up_date"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Lead) TableName() string {
	return "lead"
}

// MedicineItem model for the pharmacy inventory.
type MedicineItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string          `gorm:"column:name;not null;index" json:"name"`
	Category   string          `gorm:"column:category;index" json:"category"`
	Quantity   int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2);not null;default:0.00" json:"unit_price"`
	ExpiryDate string          `gorm:"column:expiry_date;type:date" json:"expiry_date"`
	Supplier   string          `gorm:"column:supplier" json:"supplier"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MedicineItem) TableName() string {
	return "medicine_item"
}

// MedicalRecord model
type MedicalRecord struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID     string    `gorm:"column:doctor_id;index" json:"doctor_id"`
	Diagnosis    string    `gorm:"column:diagnosis;not null" json:"diagnosis"`
	Prescription string    `gorm:"column:prescription;type:text" json:"prescription"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient      Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Doctor       Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_record"
}

// Setting model holds key/value clinic configuration.
type Setting struct {
	Key       string    `gorm:"primaryKey;column:setting_key" json:"key"`
	Value     string    `gorm:"column:setting_value;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "setting"
}

// SeedSettings inserts default clinic settings.
func SeedSettings(db *gorm.DB) error {
	defaults := []Setting{
		{Key: "clinic_name", Value: "CareLedger Healthcare Center"},
		{Key: "billing_due_day", Value: "10"},
		{Key: "currency", Value: "INR"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range defaults {
			if err := tx.FirstOrCreate(&setting, Setting{Key: setting.Key}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
