package enrollment

import (
	"context"
	"testing"

	"github.com/kdpatel43/enrollment-server-go/internal/features/payment"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

type recordingNotifier struct {
	calls       int
	to          string
	studentName string
	courseTitle string
}

func (n *recordingNotifier) SendWaitlistPromotion(to, studentName, courseTitle string) error {
	n.calls++
	n.to = to
	n.studentName = studentName
	n.courseTitle = courseTitle
	return nil
}

func TestPromoteEligible_PromotesAndChargesOldestWaitlisted(t *testing.T) {
	svc, db := newTestService(t, approveAll(), nil)
	crs := seedCourse(t, db, 1)
	seated := seedStudent(t, db, "Ava", 25, "CS101-1")
	waiting := seedStudent(t, db, "Ben", 30, "CS101-2")

	ctx := context.Background()

	first, err := svc.Enroll(ctx, crs.ID, seated.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Enroll(ctx, crs.ID, waiting.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Enrollment.Status != types.EnrollmentStatusWaitlisted {
		t.Fatalf("expected second student waitlisted, got %s", second.Enrollment.Status)
	}

	if _, err := svc.DropEnrollment(ctx, first.Enrollment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	promoted, err := svc.PromoteEligible(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted != 1 {
		t.Errorf("expected 1 promotion, got %d", promoted)
	}

	entry, err := Get(db, second.Enrollment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != types.EnrollmentStatusEnrolled {
		t.Errorf("promoted student must hold a seat, got %s", entry.Status)
	}

	// The promoted seat carries a charge just like a direct admission.
	var charges []payment.Payment
	if err := db.Where("enrollment_id = ?", second.Enrollment.ID).Find(&charges).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(charges) != 1 {
		t.Fatalf("expected 1 payment for the promoted enrollment, got %d", len(charges))
	}
	if charges[0].Status != types.PaymentStatusCompleted {
		t.Errorf("expected completed payment, got %s", charges[0].Status)
	}
}

func TestPromoteEligible_FailedChargeDoesNotUndoPromotion(t *testing.T) {
	svc, db := newTestService(t, denyAll(), nil)
	crs := seedCourse(t, db, 1)
	seated := seedStudent(t, db, "Ava", 25, "CS101-1")
	waiting := seedStudent(t, db, "Ben", 30, "CS101-2")

	ctx := context.Background()

	first, err := svc.Enroll(ctx, crs.ID, seated.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Enroll(ctx, crs.ID, waiting.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.DropEnrollment(ctx, first.Enrollment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	promoted, err := svc.PromoteEligible(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted != 1 {
		t.Errorf("expected 1 promotion, got %d", promoted)
	}

	entry, err := Get(db, second.Enrollment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != types.EnrollmentStatusEnrolled {
		t.Errorf("a declined charge must not undo the promotion, got %s", entry.Status)
	}

	var charge payment.Payment
	if err := db.Where("enrollment_id = ?", second.Enrollment.ID).First(&charge).Error; err != nil {
		t.Fatalf("expected a recorded payment attempt: %v", err)
	}
	if charge.Status != types.PaymentStatusFailed {
		t.Errorf("expected failed payment, got %s", charge.Status)
	}
}

func TestPromoteEligible_NotifiesPromotedStudent(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, db := newTestService(t, approveAll(), notifier)
	crs := seedCourse(t, db, 1)
	seated := seedStudent(t, db, "Ava", 25, "CS101-1")

	email := "ben@example.edu"
	waiting := seedStudent(t, db, "Ben", 30, "CS101-2")
	waiting.Email = &email
	if err := db.Save(&waiting).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	first, err := svc.Enroll(ctx, crs.ID, seated.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Enroll(ctx, crs.ID, waiting.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.DropEnrollment(ctx, first.Enrollment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.PromoteEligible(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("expected 1 promotion notice, got %d", notifier.calls)
	}
	if notifier.to != email || notifier.studentName != "Ben" || notifier.courseTitle != "Algorithms" {
		t.Errorf("unexpected notice: %+v", notifier)
	}
}

func TestPromoteEligible_NoOpenSeats(t *testing.T) {
	svc, db := newTestService(t, approveAll(), nil)
	crs := seedCourse(t, db, 1)
	seated := seedStudent(t, db, "Ava", 25, "CS101-1")
	waiting := seedStudent(t, db, "Ben", 30, "CS101-2")

	ctx := context.Background()

	if _, err := svc.Enroll(ctx, crs.ID, seated.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Enroll(ctx, crs.ID, waiting.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	promoted, err := svc.PromoteEligible(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted != 0 {
		t.Errorf("expected no promotions on a full course, got %d", promoted)
	}

	entry, err := Get(db, second.Enrollment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != types.EnrollmentStatusWaitlisted {
		t.Errorf("waitlisted student must stay waitlisted, got %s", entry.Status)
	}
}
