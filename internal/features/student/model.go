package student

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/pkg/pagination"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

// Student represents a registered student. StudentNumber is the external
// identifier the enrollment prerequisite check runs against; it is not
// unique because the registry tolerates duplicate registrations.
type Student struct {
	types.BaseModel

	Name          string  `gorm:"type:varchar(100);not null" json:"name"`
	Age           int     `gorm:"type:int;not null" json:"age"`
	StudentNumber string  `gorm:"type:varchar(50);not null;index" json:"studentNumber"`
	Email         *string `gorm:"type:varchar(255)" json:"email,omitempty"`
}

// TableName overrides the default table name.
func (Student) TableName() string { return "students" }

// ListFilters defines student query filters.
type ListFilters struct {
	Keyword string
}

// CreateInput carries data for registering a new student.
type CreateInput struct {
	Name          string
	Age           int
	StudentNumber string
	Email         *string
}

// List retrieves paginated students with filters.
func List(db *gorm.DB, filters ListFilters, params pagination.Params) ([]Student, int64, error) {
	query := db.Model(&Student{})

	if filters.Keyword != "" {
		keyword := "%" + strings.ToLower(filters.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(student_number) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []Student
	err := query.
		Order("created_at ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&students).Error

	return students, total, err
}

// Get retrieves a student by ID.
func Get(db *gorm.DB, id uuid.UUID) (Student, error) {
	var s Student
	if err := db.First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return s, ErrStudentNotFound
		}
		return s, err
	}
	return s, nil
}

// Create registers a new student.
func Create(db *gorm.DB, input CreateInput) (Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Student{}, ErrNameRequired
	}
	if input.Age < 0 {
		return Student{}, ErrInvalidAge
	}
	if strings.TrimSpace(input.StudentNumber) == "" {
		return Student{}, ErrStudentNumberRequired
	}

	s := Student{
		Name:          strings.TrimSpace(input.Name),
		Age:           input.Age,
		StudentNumber: strings.TrimSpace(input.StudentNumber),
		Email:         input.Email,
	}

	if err := db.Create(&s).Error; err != nil {
		return Student{}, err
	}

	return s, nil
}
