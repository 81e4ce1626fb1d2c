package enroll

import (
	"fmt"
	"io"
)

// System aggregates courses and students and drives one enrollment request
// end to end. Duplicates are permitted in both collections.
type System struct {
	Courses  []*Course
	Students []Student
}

// AddCourse registers a course with the system.
func (sys *System) AddCourse(c *Course) {
	sys.Courses = append(sys.Courses, c)
}

// AddStudent registers a student with the system.
func (sys *System) AddStudent(s Student) {
	sys.Students = append(sys.Students, s)
}

// EnrollStudentInCourse runs the enrollment decision and, on success, the
// payment step, writing one line per outcome to w. A payment failure is
// reported but never rolls back the enrollment or waitlist placement.
func (sys *System) EnrollStudentInCourse(w io.Writer, s Student, c *Course, minAge int, prerequisite string) {
	msg, err := c.Enroll(s, minAge, prerequisite)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}

	fmt.Fprintln(w, msg)

	payMsg, err := c.VerifyPayment(s)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}

	fmt.Fprintln(w, payMsg)
}
