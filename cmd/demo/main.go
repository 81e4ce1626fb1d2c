// Command demo runs the fixed enrollment example: one course with two
// seats, three students, simulated payments, then the roster printout.
package main

import (
	"flag"
	"os"

	"github.com/kdpatel43/enrollment-server-go/internal/enroll"
)

func main() {
	seed := flag.Int64("seed", 0, "seed for the simulated payment gateway (0 = random)")
	flag.Parse()

	course := enroll.NewCourse(
		"Introduction to Programming",
		2,
		[]string{"CS101"},
		[]string{"Mon 10:00", "Wed 10:00"},
	)
	if *seed != 0 {
		course.Payments = enroll.SeededDecider(*seed)
	}

	students := []enroll.Student{
		enroll.NewStudent("Alice", 25, "CS101-1"),
		enroll.NewStudent("Bob", 17, "CS101-2"),
		enroll.NewStudent("Charlie", 22, "CS101-3"),
	}

	system := &enroll.System{}
	system.AddCourse(course)
	for _, s := range students {
		system.AddStudent(s)
	}

	for _, s := range students {
		system.EnrollStudentInCourse(os.Stdout, s, course, 18, "CS101")
	}

	course.WriteEnrollmentStatus(os.Stdout)
}
