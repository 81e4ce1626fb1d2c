package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/internal/enroll"
	"github.com/kdpatel43/enrollment-server-go/internal/features/course"
	"github.com/kdpatel43/enrollment-server-go/internal/features/payment"
	"github.com/kdpatel43/enrollment-server-go/internal/features/student"
	"github.com/kdpatel43/enrollment-server-go/pkg/cache"
	"github.com/kdpatel43/enrollment-server-go/pkg/metrics"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

const seatsCacheTTL = 30 * time.Second

// Notifier delivers waitlist promotion notices. Satisfied by pkg/email.
type Notifier interface {
	SendWaitlistPromotion(to, studentName, courseTitle string) error
}

// Service runs the enrollment workflow against persisted courses and
// students. The admission decision itself is delegated to the core
// enroll package; the service replays it over the stored roster.
type Service struct {
	db       *gorm.DB
	cache    cache.Client
	logger   *slog.Logger
	decider  enroll.PaymentDecider
	notifier Notifier
	currency types.Currency
}

// NewService constructs the enrollment service.
func NewService(db *gorm.DB, cacheClient cache.Client, logger *slog.Logger, decider enroll.PaymentDecider, notifier Notifier, currency types.Currency) *Service {
	return &Service{
		db:       db,
		cache:    cacheClient,
		logger:   logger,
		decider:  decider,
		notifier: notifier,
		currency: currency,
	}
}

// Result carries the outcome of one enrollment request.
type Result struct {
	Enrollment Enrollment       `json:"enrollment"`
	Message    string           `json:"message"`
	Payment    *payment.Payment `json:"payment,omitempty"`
	PaymentMsg string           `json:"paymentMessage,omitempty"`
}

// Enroll admits a student into a course, waitlisting on a full roster, and
// runs the simulated payment for seated students. A failed payment is
// recorded but never reverses the admission.
func (s *Service) Enroll(ctx context.Context, courseID, studentID uuid.UUID) (Result, error) {
	crs, err := course.Get(s.db, courseID)
	if err != nil {
		return Result{}, err
	}
	if !crs.Active {
		return Result{}, ErrCourseInactive
	}

	stu, err := student.Get(s.db, studentID)
	if err != nil {
		return Result{}, err
	}

	taken, err := HasActive(s.db, courseID, studentID)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return Result{}, ErrAlreadyEnrolled
	}

	enrolledCount, err := EnrolledCount(s.db, courseID)
	if err != nil {
		return Result{}, err
	}

	snapshot := rosterSnapshot(crs, int(enrolledCount))
	candidate := enroll.NewStudent(stu.Name, stu.Age, stu.StudentNumber)

	msg, err := snapshot.Enroll(candidate, crs.MinAge, crs.Prerequisite)
	if err != nil {
		var ageErr *enroll.AgeRestrictionError
		if errors.As(err, &ageErr) {
			metrics.RecordEnrollment("age_restricted")
		} else {
			metrics.RecordEnrollment("prerequisite_not_met")
		}
		return Result{}, err
	}

	status := types.EnrollmentStatusEnrolled
	if len(snapshot.Waitlist) > 0 {
		status = types.EnrollmentStatusWaitlisted
	}

	entry, err := Create(s.db, courseID, studentID, status)
	if err != nil {
		return Result{}, err
	}
	entry.Student = stu

	metrics.RecordEnrollment(string(status))
	s.invalidateSeats(ctx, courseID)

	result := Result{Enrollment: entry, Message: msg}

	// Waitlisted students are not charged until promoted.
	if status == types.EnrollmentStatusEnrolled {
		result.Payment, result.PaymentMsg = s.chargeSeat(candidate, entry, crs)
	}

	return result, nil
}

// chargeSeat runs the simulated payment for a seated student and records the
// attempt. The configured decider drives the outcome.
func (s *Service) chargeSeat(candidate enroll.Student, entry Enrollment, crs course.Course) (*payment.Payment, string) {
	record := payment.Payment{
		EnrollmentID: entry.ID,
		StudentID:    entry.StudentID,
		Amount:       crs.Fee,
		Currency:     crs.Currency,
	}

	gateway := enroll.Course{Title: crs.Title, Payments: s.decider}
	payMsg, payErr := gateway.VerifyPayment(candidate)
	if payErr != nil {
		var pe *enroll.PaymentError
		errors.As(payErr, &pe)

		record.Status = types.PaymentStatusFailed
		if pe != nil {
			record.Reason = &pe.Reason
		}
		payMsg = payErr.Error()
		metrics.RecordPayment(string(types.PaymentStatusFailed))
	} else {
		record.Status = types.PaymentStatusCompleted
		metrics.RecordPayment(string(types.PaymentStatusCompleted))
	}

	saved, err := payment.Record(s.db, record)
	if err != nil {
		// The admission stands even if the payment row cannot be saved.
		s.logger.Error("failed to record payment attempt",
			slog.String("enrollment_id", entry.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, payMsg
	}

	return &saved, payMsg
}

// rosterSnapshot projects a persisted course onto the core decision type.
// Only the seat count matters for capacity, so the enrolled list is sized
// with placeholders.
func rosterSnapshot(crs course.Course, enrolledCount int) *enroll.Course {
	snapshot := enroll.NewCourse(crs.Title, crs.AvailableSlots, []string{crs.Prerequisite}, []string(crs.Schedule))
	snapshot.Enrolled = make([]enroll.Student, enrolledCount)
	return snapshot
}

// AvailableSeats returns the number of open seats in a course, cached
// briefly to absorb catalog-page traffic.
func (s *Service) AvailableSeats(ctx context.Context, courseID uuid.UUID) (int, error) {
	key := seatsCacheKey(courseID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if seats, err := strconv.Atoi(cached); err == nil {
			return seats, nil
		}
	}

	crs, err := course.Get(s.db, courseID)
	if err != nil {
		return 0, err
	}

	enrolledCount, err := EnrolledCount(s.db, courseID)
	if err != nil {
		return 0, err
	}

	seats := crs.AvailableSlots - int(enrolledCount)

	if err := s.cache.Set(ctx, key, strconv.Itoa(seats), seatsCacheTTL); err != nil {
		s.logger.Warn("failed to cache seat count", slog.String("error", err.Error()))
	}

	return seats, nil
}

// DropEnrollment releases a seat or waitlist place.
func (s *Service) DropEnrollment(ctx context.Context, id uuid.UUID) (Enrollment, error) {
	entry, err := Drop(s.db, id)
	if err != nil {
		return entry, err
	}

	metrics.RecordEnrollment(string(types.EnrollmentStatusDropped))
	s.invalidateSeats(ctx, entry.CourseID)

	return entry, nil
}

// PromoteEligible scans active courses with open seats and promotes the
// earliest waitlisted student on each, notifying them by email when an
// address is on file. Used by the background promotion job.
func (s *Service) PromoteEligible(ctx context.Context) (int, error) {
	var courses []course.Course
	if err := s.db.Where("is_active = ?", true).Find(&courses).Error; err != nil {
		return 0, err
	}

	promoted := 0
	for _, crs := range courses {
		select {
		case <-ctx.Done():
			return promoted, ctx.Err()
		default:
		}

		n, err := s.promoteCourse(ctx, crs)
		if err != nil {
			s.logger.Error("waitlist promotion failed",
				slog.String("course_id", crs.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		promoted += n
	}

	return promoted, nil
}

func (s *Service) promoteCourse(ctx context.Context, crs course.Course) (int, error) {
	promoted := 0

	for {
		enrolledCount, err := EnrolledCount(s.db, crs.ID)
		if err != nil {
			return promoted, err
		}
		if int(enrolledCount) >= crs.AvailableSlots {
			return promoted, nil
		}

		next, err := OldestWaitlisted(s.db, crs.ID)
		if err != nil {
			if errors.Is(err, ErrEnrollmentNotFound) {
				return promoted, nil
			}
			return promoted, err
		}

		if err := Promote(s.db, next.ID); err != nil {
			return promoted, err
		}

		promoted++
		metrics.RecordWaitlistPromotion()
		s.invalidateSeats(ctx, crs.ID)

		// A promoted student takes the seat and is charged like a direct
		// admission. A failed charge does not undo the promotion.
		candidate := enroll.NewStudent(next.Student.Name, next.Student.Age, next.Student.StudentNumber)
		_, payMsg := s.chargeSeat(candidate, next, crs)

		s.logger.Info("promoted waitlisted student",
			slog.String("course_id", crs.ID.String()),
			slog.String("enrollment_id", next.ID.String()),
			slog.String("payment", payMsg),
		)

		if s.notifier != nil && next.Student.Email != nil {
			if err := s.notifier.SendWaitlistPromotion(*next.Student.Email, next.Student.Name, crs.Title); err != nil {
				s.logger.Warn("failed to send promotion notice",
					slog.String("enrollment_id", next.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

func (s *Service) invalidateSeats(ctx context.Context, courseID uuid.UUID) {
	if err := s.cache.Delete(ctx, seatsCacheKey(courseID)); err != nil {
		s.logger.Warn("failed to invalidate seat cache", slog.String("error", err.Error()))
	}
}

func seatsCacheKey(courseID uuid.UUID) string {
	return fmt.Sprintf("course:%s:seats", courseID)
}
