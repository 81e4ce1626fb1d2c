package enroll

// Student is a passive enrollment candidate. Values are fixed at construction.
type Student struct {
	Name      string
	Age       int
	StudentID string
}

// NewStudent constructs a student record.
func NewStudent(name string, age int, studentID string) Student {
	return Student{Name: name, Age: age, StudentID: studentID}
}
