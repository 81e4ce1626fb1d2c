package enrollment

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/internal/enroll"
	"github.com/kdpatel43/enrollment-server-go/internal/features/course"
	"github.com/kdpatel43/enrollment-server-go/internal/features/student"
	"github.com/kdpatel43/enrollment-server-go/pkg/response"
)

// Handler processes enrollment HTTP requests.
type Handler struct {
	db      *gorm.DB
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs an enrollment handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger, service *Service) *Handler {
	return &Handler{db: db, logger: logger, service: service}
}

// Enroll admits a student into a course.
func (h *Handler) Enroll(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course id", err)
		return
	}

	var req struct {
		StudentID string `json:"studentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid enrollment payload", err)
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid student id", err)
		return
	}

	result, err := h.service.Enroll(c.Request.Context(), courseID, studentID)
	if err != nil {
		h.respondError(c, err, "failed to enroll student")
		return
	}

	response.Created(c, result, result.Message)
}

// Roster returns active enrollments for a course, enrolled students first,
// each group in insertion order.
func (h *Handler) Roster(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course id", err)
		return
	}

	if _, err := course.Get(h.db, courseID); err != nil {
		h.respondError(c, err, "failed to load course")
		return
	}

	entries, err := Roster(h.db, courseID)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	response.Success(c, http.StatusOK, entries, "", nil)
}

// Seats returns the number of open seats in a course.
func (h *Handler) Seats(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course id", err)
		return
	}

	seats, err := h.service.AvailableSeats(c.Request.Context(), courseID)
	if err != nil {
		h.respondError(c, err, "failed to compute available seats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availableSeats": seats}, "", nil)
}

// Drop releases a seat or waitlist place.
func (h *Handler) Drop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("enrollmentId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid enrollment id", err)
		return
	}

	entry, err := h.service.DropEnrollment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to drop enrollment")
		return
	}

	response.Success(c, http.StatusOK, entry, "", nil)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	var ageErr *enroll.AgeRestrictionError
	var prereqErr *enroll.PrerequisiteError

	switch {
	case errors.As(err, &ageErr), errors.As(err, &prereqErr):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, ErrAlreadyEnrolled):
		status = http.StatusConflict
		message = "Student already enrolled or waitlisted in this course."
	case errors.Is(err, ErrAlreadyDropped):
		status = http.StatusConflict
		message = "Enrollment already dropped."
	case errors.Is(err, ErrCourseInactive):
		status = http.StatusConflict
		message = "Course is not open for enrollment."
	case errors.Is(err, ErrEnrollmentNotFound):
		status = http.StatusNotFound
		message = "Enrollment not found."
	case errors.Is(err, course.ErrCourseNotFound):
		status = http.StatusNotFound
		message = "Course not found."
	case errors.Is(err, student.ErrStudentNotFound):
		status = http.StatusNotFound
		message = "Student not found."
	}

	response.ErrorWithLog(h.logger, c, status, message, err)
}
