package enrollment

import "errors"

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("student already enrolled or waitlisted in this course")
	ErrAlreadyDropped     = errors.New("enrollment already dropped")
	ErrCourseInactive     = errors.New("course is not open for enrollment")
)
