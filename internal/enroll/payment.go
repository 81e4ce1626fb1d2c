package enroll

import "math/rand"

// PaymentDecider decides whether a simulated payment goes through. It stands
// in for an external payment gateway; tests supply deterministic deciders.
type PaymentDecider interface {
	Approve(s Student) bool
}

// DeciderFunc adapts a plain function to a PaymentDecider.
type DeciderFunc func(s Student) bool

func (f DeciderFunc) Approve(s Student) bool { return f(s) }

// RandomDecider approves payments by unweighted coin flip, mirroring a flaky
// gateway.
func RandomDecider() PaymentDecider {
	return DeciderFunc(func(Student) bool {
		return rand.Intn(2) == 0
	})
}

// SeededDecider is a RandomDecider driven by its own source, for reproducible
// demo runs.
func SeededDecider(seed int64) PaymentDecider {
	rng := rand.New(rand.NewSource(seed))
	return DeciderFunc(func(Student) bool {
		return rng.Intn(2) == 0
	})
}
