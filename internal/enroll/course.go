package enroll

import (
	"fmt"
	"io"
	"strings"
)

// Course owns its roster and waitlist. The invariant len(Enrolled) <=
// AvailableSlots holds after every Enroll call; once capacity is reached
// further admissions land on the waitlist.
type Course struct {
	Title          string
	AvailableSlots int
	Prerequisites  []string
	Schedule       []string
	Enrolled       []Student
	Waitlist       []Student

	// Payments decides simulated payment outcomes. Defaults to the
	// random gateway when nil.
	Payments PaymentDecider
}

// NewCourse constructs a course with the given capacity, prerequisite labels
// and schedule slots.
func NewCourse(title string, slots int, prerequisites, schedule []string) *Course {
	return &Course{
		Title:          title,
		AvailableSlots: slots,
		Prerequisites:  prerequisites,
		Schedule:       schedule,
	}
}

// Enroll admits a student subject to age, prerequisite and capacity checks,
// in that order, first failure wins. A full course is not an error: the
// student is appended to the waitlist and a waitlist message is returned.
//
// The prerequisite check is a string-prefix test against the student ID. That
// conflates a course label with an ID scheme, but it is the contract callers
// rely on, so it stays.
func (c *Course) Enroll(s Student, minAge int, prerequisite string) (string, error) {
	if s.Age < minAge {
		return "", &AgeRestrictionError{MinAge: minAge}
	}

	if prerequisite != "" && !strings.HasPrefix(s.StudentID, prerequisite) {
		return "", &PrerequisiteError{Prerequisite: prerequisite}
	}

	if len(c.Enrolled) < c.AvailableSlots {
		c.Enrolled = append(c.Enrolled, s)
		return fmt.Sprintf("%s enrolled successfully!", s.Name), nil
	}

	c.Waitlist = append(c.Waitlist, s)
	return fmt.Sprintf("%s added to the waitlist.", s.Name), nil
}

// VerifyPayment runs the course's payment decider for the student. The
// outcome never reverses a prior enrollment decision.
func (c *Course) VerifyPayment(s Student) (string, error) {
	decider := c.Payments
	if decider == nil {
		decider = RandomDecider()
	}

	if !decider.Approve(s) {
		return "", &PaymentError{Reason: "Payment gateway error"}
	}

	return fmt.Sprintf("Payment successful for %s.", s.Name), nil
}

// AvailableSeats returns the number of open slots.
func (c *Course) AvailableSeats() int {
	return c.AvailableSlots - len(c.Enrolled)
}

// HasScheduleSlot reports whether slot is an exact element of the course
// schedule.
func (c *Course) HasScheduleSlot(slot string) bool {
	for _, s := range c.Schedule {
		if s == slot {
			return true
		}
	}
	return false
}

// WriteEnrollmentStatus writes the roster to w: a header, each enrolled
// student, then each waitlisted student, in insertion order.
func (c *Course) WriteEnrollmentStatus(w io.Writer) {
	fmt.Fprintf(w, "Enrollment status for %s:\n", c.Title)
	for _, s := range c.Enrolled {
		fmt.Fprintf(w, "%s - enrolled\n", s.Name)
	}
	for _, s := range c.Waitlist {
		fmt.Fprintf(w, "%s - waitlisted\n", s.Name)
	}
}
