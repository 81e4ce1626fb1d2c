package course

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/pkg/pagination"
	"github.com/kdpatel43/enrollment-server-go/pkg/response"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
	"github.com/kdpatel43/enrollment-server-go/pkg/validation"
)

// Handler processes course HTTP requests. defaultMinAge applies to new
// courses whose payload omits a minimum age.
type Handler struct {
	db            *gorm.DB
	logger        *slog.Logger
	defaultMinAge int
}

// NewHandler constructs a course handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger, defaultMinAge int) *Handler {
	return &Handler{db: db, logger: logger, defaultMinAge: defaultMinAge}
}

// List returns paginated courses.
func (h *Handler) List(c *gin.Context) {
	params := pagination.Extract(c)

	courses, total, err := List(h.db, ListFilters{
		Keyword:    c.Query("filterKeyword"),
		ActiveOnly: c.Query("activeOnly") == "true",
	}, params)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "failed to list courses", err)
		return
	}

	response.Success(c, http.StatusOK, courses, "", pagination.MetadataFrom(total, params))
}

// Create inserts a new course.
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Title          string   `json:"title" binding:"required"`
		Code           string   `json:"code" binding:"required"`
		AvailableSlots int      `json:"availableSlots"`
		MinAge         *int     `json:"minAge"`
		Prerequisite   *string  `json:"prerequisite"`
		Schedule       []string `json:"schedule"`
		Fee            *string  `json:"fee"`
		Currency       *string  `json:"currency"`
		Active         *bool    `json:"isActive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course payload", err)
		return
	}

	code, err := validation.NormalizeCourseCode(req.Code)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, err.Error(), err)
		return
	}

	minAge := h.defaultMinAge
	if req.MinAge != nil {
		minAge = *req.MinAge
	}

	input := CreateInput{
		Title:          req.Title,
		Code:           code,
		AvailableSlots: req.AvailableSlots,
		MinAge:         &minAge,
		Schedule:       req.Schedule,
		Active:         req.Active,
	}

	if req.Prerequisite != nil && *req.Prerequisite != "" {
		prereq, err := validation.NormalizeCourseCode(*req.Prerequisite)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusBadRequest, err.Error(), err)
			return
		}
		input.Prerequisite = &prereq
	}

	if req.Fee != nil {
		fee, err := types.NewMoneyFromString(*req.Fee)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "fee must be a decimal string", err)
			return
		}
		input.Fee = &fee
	}

	if req.Currency != nil {
		currency := types.Currency(*req.Currency)
		input.Currency = &currency
	}

	created, err := Create(h.db, input)
	if err != nil {
		h.respondError(c, err, "failed to create course")
		return
	}

	response.Created(c, created, "")
}

// GetByID fetches a single course.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course id", err)
		return
	}

	crs, err := Get(h.db, id)
	if err != nil {
		h.respondError(c, err, "failed to load course")
		return
	}

	response.Success(c, http.StatusOK, crs, "", nil)
}

// Update modifies an existing course.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course id", err)
		return
	}

	var req struct {
		Title          *string   `json:"title"`
		AvailableSlots *int      `json:"availableSlots"`
		MinAge         *int      `json:"minAge"`
		Prerequisite   *string   `json:"prerequisite"`
		Schedule       *[]string `json:"schedule"`
		Fee            *string   `json:"fee"`
		Active         *bool     `json:"isActive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid course payload", err)
		return
	}

	input := UpdateInput{
		Title:          req.Title,
		AvailableSlots: req.AvailableSlots,
		MinAge:         req.MinAge,
		Schedule:       req.Schedule,
		Active:         req.Active,
	}

	if req.Prerequisite != nil {
		input.PrereqProvided = true
		if *req.Prerequisite != "" {
			prereq, err := validation.NormalizeCourseCode(*req.Prerequisite)
			if err != nil {
				response.ErrorWithLog(h.logger, c, http.StatusBadRequest, err.Error(), err)
				return
			}
			input.Prerequisite = &prereq
		}
	}

	if req.Fee != nil {
		fee, err := types.NewMoneyFromString(*req.Fee)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "fee must be a decimal string", err)
			return
		}
		input.Fee = &fee
	}

	updated, err := Update(h.db, id, input)
	if err != nil {
		h.respondError(c, err, "failed to update course")
		return
	}

	response.Success(c, http.StatusOK, updated, "", nil)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, ErrCourseNotFound):
		status = http.StatusNotFound
		message = "Course not found."
	case errors.Is(err, ErrTitleRequired):
		status = http.StatusBadRequest
		message = "Course title is required."
	case errors.Is(err, ErrInvalidSlots):
		status = http.StatusBadRequest
		message = "Available slots must not be negative."
	}

	response.ErrorWithLog(h.logger, c, status, message, err)
}
