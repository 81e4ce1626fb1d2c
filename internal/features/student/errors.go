package student

import "errors"

var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrNameRequired          = errors.New("student name is required")
	ErrInvalidAge            = errors.New("student age must not be negative")
	ErrStudentNumberRequired = errors.New("student number is required")
)
