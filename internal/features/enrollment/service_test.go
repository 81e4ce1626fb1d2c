package enrollment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/internal/enroll"
	"github.com/kdpatel43/enrollment-server-go/internal/features/course"
	"github.com/kdpatel43/enrollment-server-go/internal/features/payment"
	"github.com/kdpatel43/enrollment-server-go/internal/features/student"
	"github.com/kdpatel43/enrollment-server-go/pkg/cache"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

func approveAll() enroll.PaymentDecider {
	return enroll.DeciderFunc(func(enroll.Student) bool { return true })
}

func denyAll() enroll.PaymentDecider {
	return enroll.DeciderFunc(func(enroll.Student) bool { return false })
}

func newTestService(t *testing.T, decider enroll.PaymentDecider, notifier Notifier) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&student.Student{}, &course.Course{}, &Enrollment{}, &payment.Payment{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(db, cache.NewMemoryCache(), logger, decider, notifier, types.CurrencyUSD)
	return svc, db
}

func seedCourse(t *testing.T, db *gorm.DB, slots int) course.Course {
	t.Helper()

	crs := course.Course{
		Title:          "Algorithms",
		Code:           "CS201",
		AvailableSlots: slots,
		MinAge:         18,
		Prerequisite:   "CS101",
		Fee:            types.NewMoney(150),
		Currency:       types.CurrencyUSD,
		Active:         true,
	}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	return crs
}

func seedStudent(t *testing.T, db *gorm.DB, name string, age int, number string) student.Student {
	t.Helper()

	stu := student.Student{Name: name, Age: age, StudentNumber: number}
	if err := db.Create(&stu).Error; err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return stu
}

func TestRosterSnapshot_CapacityReflectsPersistedRoster(t *testing.T) {
	crs := course.Course{
		Title:          "Algorithms",
		AvailableSlots: 3,
		MinAge:         18,
		Prerequisite:   "CS101",
	}

	snapshot := rosterSnapshot(crs, 2)

	if snapshot.AvailableSeats() != 1 {
		t.Errorf("expected 1 open seat, got %d", snapshot.AvailableSeats())
	}

	msg, err := snapshot.Enroll(enroll.NewStudent("Ava", 25, "CS101-9"), crs.MinAge, crs.Prerequisite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Ava enrolled successfully!" {
		t.Errorf("unexpected message: %q", msg)
	}

	// A second admission must spill onto the waitlist.
	_, err = snapshot.Enroll(enroll.NewStudent("Ben", 30, "CS101-1"), crs.MinAge, crs.Prerequisite)
	if err != nil {
		t.Fatalf("waitlisting must succeed: %v", err)
	}
	if len(snapshot.Waitlist) != 1 {
		t.Errorf("expected 1 waitlisted student, got %d", len(snapshot.Waitlist))
	}
}

func TestRosterSnapshot_FullCourseWaitlistsImmediately(t *testing.T) {
	crs := course.Course{Title: "Algorithms", AvailableSlots: 2}

	snapshot := rosterSnapshot(crs, 2)

	_, err := snapshot.Enroll(enroll.NewStudent("Cleo", 22, "CS101-3"), 18, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Waitlist) != 1 {
		t.Errorf("expected waitlist placement on full roster, got %d waitlisted", len(snapshot.Waitlist))
	}
}

func TestServiceEnroll_ChargesSeatedStudent(t *testing.T) {
	svc, db := newTestService(t, approveAll(), nil)
	crs := seedCourse(t, db, 2)
	stu := seedStudent(t, db, "Ava", 25, "CS101-1")

	result, err := svc.Enroll(context.Background(), crs.ID, stu.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message != "Ava enrolled successfully!" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if result.Enrollment.Status != types.EnrollmentStatusEnrolled {
		t.Errorf("expected enrolled status, got %s", result.Enrollment.Status)
	}
	if result.Payment == nil {
		t.Fatal("seated student must have a payment attempt on record")
	}
	if result.Payment.Status != types.PaymentStatusCompleted {
		t.Errorf("expected completed payment, got %s", result.Payment.Status)
	}
}

func TestServiceEnroll_FailedChargeKeepsSeat(t *testing.T) {
	svc, db := newTestService(t, denyAll(), nil)
	crs := seedCourse(t, db, 2)
	stu := seedStudent(t, db, "Ben", 30, "CS101-2")

	result, err := svc.Enroll(context.Background(), crs.ID, stu.ID)
	if err != nil {
		t.Fatalf("a declined charge must not fail the enrollment: %v", err)
	}

	if result.Enrollment.Status != types.EnrollmentStatusEnrolled {
		t.Errorf("expected the seat to be kept, got %s", result.Enrollment.Status)
	}
	if result.Payment == nil || result.Payment.Status != types.PaymentStatusFailed {
		t.Errorf("expected a recorded failed payment, got %+v", result.Payment)
	}
}

func TestServiceEnroll_WaitlistedStudentNotCharged(t *testing.T) {
	svc, db := newTestService(t, approveAll(), nil)
	crs := seedCourse(t, db, 1)
	first := seedStudent(t, db, "Ava", 25, "CS101-1")
	second := seedStudent(t, db, "Cleo", 22, "CS101-3")

	if _, err := svc.Enroll(context.Background(), crs.ID, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Enroll(context.Background(), crs.ID, second.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Enrollment.Status != types.EnrollmentStatusWaitlisted {
		t.Errorf("expected waitlisted status, got %s", result.Enrollment.Status)
	}
	if result.Message != "Cleo added to the waitlist." {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if result.Payment != nil {
		t.Errorf("waitlisted student must not be charged, got %+v", result.Payment)
	}

	var count int64
	if err := db.Model(&payment.Payment{}).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 payment row (the seated student's), got %d", count)
	}
}
