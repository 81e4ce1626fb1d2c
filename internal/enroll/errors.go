package enroll

import "fmt"

// AgeRestrictionError reports a student below the minimum age for a course.
type AgeRestrictionError struct {
	MinAge int
}

func (e *AgeRestrictionError) Error() string {
	return fmt.Sprintf("student must be at least %d years old to enroll", e.MinAge)
}

// PrerequisiteError reports a student whose ID does not carry the required
// prerequisite token.
type PrerequisiteError struct {
	Prerequisite string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisite not met: %s", e.Prerequisite)
}

// PaymentError reports a failed payment attempt.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}
