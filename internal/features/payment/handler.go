package payment

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

// Handler processes payment HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler constructs a payment handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// List returns paginated payment attempts.
func (h *Handler) List(c *gin.Context) {
	params := pagination.Extract(c)

	filters := ListFilters{Status: c.Query("status")}

	if raw := c.Query("enrollmentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid enrollment id", err)
			return
		}
		filters.EnrollmentID = &id
	}

	if raw := c.Query("studentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid student id", err)
			return
		}
		filters.StudentID = &id
	}

	payments, total, err := List(h.db, filters, params)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "failed to list payments", err)
		return
	}

	response.Success(c, http.StatusOK, payments, "", pagination.MetadataFrom(total, params))
}

// GetByID fetches a single payment attempt.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusBadRequest, "invalid payment id", err)
		return
	}

	p, err := Get(h.db, id)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to load payment"
		if errors.Is(err, ErrPaymentNotFound) {
			status = http.StatusNotFound
			message = "Payment not found."
		}
		response.ErrorWithLog(h.logger, c, status, message, err)
		return
	}

	response.Success(c, http.StatusOK, p, "", nil)
}
