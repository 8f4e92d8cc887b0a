package models

import (
	"time"
)

// Payment statuses a procedure can carry.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusGlossed = "glossed"
)

// Doctor model
type Doctor struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	UserID    *int64    `gorm:"column:user_id;uniqueIndex" json:"user_id,omitempty"`
	User      *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Patient model
type Patient struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Procedure model. One row per billing event; immutable after creation.
type Procedure struct {
	ID            int64     `gorm:"primaryKey;column:id" json:"id"`
	DoctorID      int64     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	PatientID     int64     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Date          time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	Value         float64   `gorm:"column:value;not null" json:"value"`
	PaymentStatus string    `gorm:"column:payment_status;check:payment_status IN ('paid', 'pending', 'glossed');not null;index" json:"payment_status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Doctor        Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Patient       Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// FinancialReportRow is one aggregate line of the per-doctor financial
// report: totals grouped by payment status.
type FinancialReportRow struct {
	TotalValue float64 `json:"total_value"`
	Procedures int64   `json:"procedures"`
	Status     string  `json:"status"`
}
