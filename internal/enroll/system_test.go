package enroll

import (
	"bytes"
	"strings"
	"testing"
)

func TestSystem_EnrollStudentInCourse_SuccessThenPayment(t *testing.T) {
	course := NewCourse("Algorithms", 2, nil, nil)
	course.Payments = approveAll()

	sys := &System{}
	sys.AddCourse(course)

	student := NewStudent("Ava", 25, "CS101-9")
	sys.AddStudent(student)

	var buf bytes.Buffer
	sys.EnrollStudentInCourse(&buf, student, course, 18, "CS101")

	out := buf.String()
	if !strings.Contains(out, "Ava enrolled successfully!") {
		t.Errorf("missing enrollment line in output: %q", out)
	}
	if !strings.Contains(out, "Payment successful for Ava.") {
		t.Errorf("missing payment line in output: %q", out)
	}
}

func TestSystem_EnrollStudentInCourse_PaymentFailureKeepsEnrollment(t *testing.T) {
	course := NewCourse("Algorithms", 2, nil, nil)
	course.Payments = denyAll()

	sys := &System{}
	student := NewStudent("Ben", 30, "CS101-2")

	var buf bytes.Buffer
	sys.EnrollStudentInCourse(&buf, student, course, 18, "")

	if !strings.Contains(buf.String(), "payment failed: Payment gateway error") {
		t.Errorf("payment failure not reported: %q", buf.String())
	}
	if len(course.Enrolled) != 1 {
		t.Errorf("payment failure must not undo enrollment, roster has %d", len(course.Enrolled))
	}
}

func TestSystem_EnrollStudentInCourse_ValidationFailureSkipsPayment(t *testing.T) {
	course := NewCourse("Algorithms", 2, nil, nil)
	course.Payments = DeciderFunc(func(Student) bool {
		t.Fatal("payment must not run when enrollment fails")
		return false
	})

	sys := &System{}

	var buf bytes.Buffer
	sys.EnrollStudentInCourse(&buf, NewStudent("Kid", 12, "CS101-7"), course, 18, "")

	if !strings.Contains(buf.String(), "student must be at least 18 years old") {
		t.Errorf("age restriction not reported: %q", buf.String())
	}
	if len(course.Enrolled) != 0 || len(course.Waitlist) != 0 {
		t.Error("failed validation must not mutate the course")
	}
}
