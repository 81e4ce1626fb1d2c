package student

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/pkg/pagination"
	"github.com/kdpatel43/enrollment-server-go/pkg/response"
)

// Handler processes student HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler constructs a student handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// List returns paginated students.
func (h *Handler) List(c *gin.Context) {
	params := pagination.Extract(c)

	students, total, err := List(h.db, ListFilters{
		Keyword: c.Query("filterKeyword"),
	}, params)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "failed to list students", err)
		return
	}

	response.Success(c, http.StatusOK, students, "", pagination.MetadataFrom(total, params))
}

// Create registers a new student.
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Age           int     `json:"age"`
		StudentNumber string  `json:"studentNumber" binding:"required"`
		Email         *string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid student payload", err)
		return
	}

	s, err := Create(h.db, CreateInput{
		Name:          req.Name,
		Age:           req.Age,
		StudentNumber: req.StudentNumber,
		Email:         req.Email,
	})
	if err != nil {
		h.respondError(c, err, "failed to register student")
		return
	}

	response.Created(c, s, "")
}

// GetByID fetches a single student.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid student id", err)
		return
	}

	s, err := Get(h.db, id)
	if err != nil {
		h.respondError(c, err, "failed to load student")
		return
	}

	response.Success(c, http.StatusOK, s, "", nil)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, ErrStudentNotFound):
		status = http.StatusNotFound
		message = "Student not found."
	case errors.Is(err, ErrNameRequired):
		status = http.StatusBadRequest
		message = "Student name is required."
	case errors.Is(err, ErrInvalidAge):
		status = http.StatusBadRequest
		message = "Student age must not be negative."
	case errors.Is(err, ErrStudentNumberRequired):
		status = http.StatusBadRequest
		message = "Student number is required."
	}

	response.ErrorWithLog(h.logger, c, status, message, err)
}
