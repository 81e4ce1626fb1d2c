package enrollment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/internal/features/student"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

// Enrollment links a student to a course roster or waitlist. Position
// preserves insertion order within a course; dropped rows keep their
// position but no longer count against capacity.
type Enrollment struct {
	types.BaseModel

	CourseID  uuid.UUID              `gorm:"type:uuid;not null;column:course_id;index:idx_course_position" json:"courseId"`
	StudentID uuid.UUID              `gorm:"type:uuid;not null;column:student_id;index" json:"studentId"`
	Status    types.EnrollmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Position  int                    `gorm:"type:int;not null;index:idx_course_position" json:"position"`

	Student student.Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName overrides the default table name.
func (Enrollment) TableName() string { return "enrollments" }

// Get retrieves an enrollment by ID.
func Get(db *gorm.DB, id uuid.UUID) (Enrollment, error) {
	var e Enrollment
	if err := db.First(&e, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return e, ErrEnrollmentNotFound
		}
		return e, err
	}
	return e, nil
}

// Roster retrieves active enrollments for a course with students preloaded,
// enrolled first, each group in insertion order.
func Roster(db *gorm.DB, courseID uuid.UUID) ([]Enrollment, error) {
	var entries []Enrollment
	err := db.
		Preload("Student").
		Where("course_id = ? AND status IN ?", courseID,
			[]types.EnrollmentStatus{types.EnrollmentStatusEnrolled, types.EnrollmentStatusWaitlisted}).
		Order("CASE WHEN status = 'enrolled' THEN 0 ELSE 1 END, position ASC").
		Find(&entries).Error
	return entries, err
}

// EnrolledCount returns the number of students holding a seat.
func EnrolledCount(db *gorm.DB, courseID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, types.EnrollmentStatusEnrolled).
		Count(&count).Error
	return count, err
}

// HasActive reports whether the student already holds an active enrollment
// or waitlist place in the course.
func HasActive(db *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&Enrollment{}).
		Where("course_id = ? AND student_id = ? AND status IN ?", courseID, studentID,
			[]types.EnrollmentStatus{types.EnrollmentStatusEnrolled, types.EnrollmentStatusWaitlisted}).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new enrollment at the next position for its course.
func Create(db *gorm.DB, courseID, studentID uuid.UUID, status types.EnrollmentStatus) (Enrollment, error) {
	var maxPosition int64
	err := db.Model(&Enrollment{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error
	if err != nil {
		return Enrollment{}, err
	}

	e := Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
		Status:    status,
		Position:  int(maxPosition) + 1,
	}

	if err := db.Create(&e).Error; err != nil {
		return Enrollment{}, err
	}

	return e, nil
}

// Drop marks an active enrollment as dropped, freeing its seat.
func Drop(db *gorm.DB, id uuid.UUID) (Enrollment, error) {
	e, err := Get(db, id)
	if err != nil {
		return e, err
	}

	if e.Status == types.EnrollmentStatusDropped {
		return e, ErrAlreadyDropped
	}

	e.Status = types.EnrollmentStatusDropped
	if err := db.Save(&e).Error; err != nil {
		return e, err
	}

	return e, nil
}

// OldestWaitlisted returns the earliest waitlisted enrollment for a course.
func OldestWaitlisted(db *gorm.DB, courseID uuid.UUID) (Enrollment, error) {
	var e Enrollment
	err := db.
		Preload("Student").
		Where("course_id = ? AND status = ?", courseID, types.EnrollmentStatusWaitlisted).
		Order("position ASC").
		First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return e, ErrEnrollmentNotFound
		}
		return e, err
	}
	return e, nil
}

// Promote moves a waitlisted enrollment onto the roster.
func Promote(db *gorm.DB, id uuid.UUID) error {
	result := db.Model(&Enrollment{}).
		Where("id = ? AND status = ?", id, types.EnrollmentStatusWaitlisted).
		Update("status", types.EnrollmentStatusEnrolled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}
