package course

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/pkg/pagination"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

// Course represents an offered course. Prerequisite is the code token the
// enrollment check matches against student numbers by prefix; MinAge gates
// admission.
type Course struct {
	types.BaseModel

	Title          string           `gorm:"type:varchar(100);not null" json:"title"`
	Code           string           `gorm:"type:varchar(20);not null;index" json:"code"`
	AvailableSlots int              `gorm:"type:int;not null" json:"availableSlots"`
	MinAge         int              `gorm:"type:int;not null;default:18;column:min_age" json:"minAge"`
	Prerequisite   string           `gorm:"type:varchar(20);not null;default:''" json:"prerequisite"`
	Schedule       types.StringList `gorm:"type:jsonb" json:"schedule"`
	Fee            types.Money      `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`
	Currency       types.Currency   `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Active         bool             `gorm:"type:boolean;not null;default:true;column:is_active" json:"isActive"`
}

// TableName overrides the default table name.
func (Course) TableName() string { return "courses" }

// ListFilters defines course query filters.
type ListFilters struct {
	Keyword    string
	ActiveOnly bool
}

// CreateInput carries data for creating a new course.
type CreateInput struct {
	Title          string
	Code           string
	AvailableSlots int
	MinAge         *int
	Prerequisite   *string
	Schedule       []string
	Fee            *types.Money
	Currency       *types.Currency
	Active         *bool
}

// UpdateInput captures mutable course fields.
type UpdateInput struct {
	Title          *string
	AvailableSlots *int
	MinAge         *int
	PrereqProvided bool
	Prerequisite   *string
	Schedule       *[]string
	Fee            *types.Money
	Active         *bool
}

// List retrieves paginated courses with filters.
func List(db *gorm.DB, filters ListFilters, params pagination.Params) ([]Course, int64, error) {
	query := db.Model(&Course{})

	if filters.Keyword != "" {
		keyword := "%" + strings.ToLower(filters.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(code) LIKE ?", keyword, keyword)
	}

	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []Course
	err := query.
		Order("code ASC, title ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&courses).Error

	return courses, total, err
}

// Get retrieves a course by ID.
func Get(db *gorm.DB, id uuid.UUID) (Course, error) {
	var c Course
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c, ErrCourseNotFound
		}
		return c, err
	}
	return c, nil
}

// Create inserts a new course.
func Create(db *gorm.DB, input CreateInput) (Course, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Course{}, ErrTitleRequired
	}
	if input.AvailableSlots < 0 {
		return Course{}, ErrInvalidSlots
	}

	c := Course{
		Title:          strings.TrimSpace(input.Title),
		Code:           input.Code,
		AvailableSlots: input.AvailableSlots,
		MinAge:         18,
		Schedule:       types.StringList(input.Schedule),
		Currency:       types.CurrencyUSD,
		Active:         true,
	}

	if input.MinAge != nil {
		c.MinAge = *input.MinAge
	}
	if input.Prerequisite != nil {
		c.Prerequisite = *input.Prerequisite
	}
	if input.Fee != nil {
		c.Fee = *input.Fee
	}
	if input.Currency != nil {
		c.Currency = *input.Currency
	}
	if input.Active != nil {
		c.Active = *input.Active
	}

	if err := db.Create(&c).Error; err != nil {
		return Course{}, err
	}

	return c, nil
}

// Update modifies an existing course.
func Update(db *gorm.DB, id uuid.UUID, input UpdateInput) (Course, error) {
	c, err := Get(db, id)
	if err != nil {
		return c, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return c, ErrTitleRequired
		}
		c.Title = strings.TrimSpace(*input.Title)
	}

	if input.AvailableSlots != nil {
		if *input.AvailableSlots < 0 {
			return c, ErrInvalidSlots
		}
		c.AvailableSlots = *input.AvailableSlots
	}

	if input.MinAge != nil {
		c.MinAge = *input.MinAge
	}

	if input.PrereqProvided {
		if input.Prerequisite != nil {
			c.Prerequisite = *input.Prerequisite
		} else {
			c.Prerequisite = ""
		}
	}

	if input.Schedule != nil {
		c.Schedule = types.StringList(*input.Schedule)
	}

	if input.Fee != nil {
		c.Fee = *input.Fee
	}

	if input.Active != nil {
		c.Active = *input.Active
	}

	if err := db.Save(&c).Error; err != nil {
		return c, err
	}

	return c, nil
}
