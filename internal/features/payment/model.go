package payment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/pkg/pagination"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

// Payment records one simulated charge attempt for an enrollment.
type Payment struct {
	types.BaseModel

	EnrollmentID uuid.UUID           `gorm:"type:uuid;not null;column:enrollment_id;index" json:"enrollmentId"`
	StudentID    uuid.UUID           `gorm:"type:uuid;not null;column:student_id;index" json:"studentId"`
	Amount       types.Money         `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency     types.Currency      `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Status       types.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Reason       *string             `gorm:"type:varchar(255)" json:"reason,omitempty"`
}

// TableName overrides the default table name.
func (Payment) TableName() string { return "payments" }

// ListFilters defines payment query filters.
type ListFilters struct {
	EnrollmentID *uuid.UUID
	StudentID    *uuid.UUID
	Status       string
}

// List retrieves paginated payments with filters.
func List(db *gorm.DB, filters ListFilters, params pagination.Params) ([]Payment, int64, error) {
	query := db.Model(&Payment{})

	if filters.EnrollmentID != nil {
		query = query.Where("enrollment_id = ?", *filters.EnrollmentID)
	}
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []Payment
	err := query.
		Order("created_at DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&payments).Error

	return payments, total, err
}

// Get retrieves a payment by ID.
func Get(db *gorm.DB, id uuid.UUID) (Payment, error) {
	var p Payment
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return p, ErrPaymentNotFound
		}
		return p, err
	}
	return p, nil
}

// Record persists a payment attempt.
func Record(db *gorm.DB, p Payment) (Payment, error) {
	if err := db.Create(&p).Error; err != nil {
		return Payment{}, err
	}
	return p, nil
}
