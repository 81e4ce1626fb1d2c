package payment

import (
	"math/rand"

	"github.com/kdpatel43/enrollment-server-go/internal/enroll"
)

// NewRateDecider builds a payment decider that approves charges with the
// given probability. A rate of 0.5 matches the default unweighted gateway.
func NewRateDecider(rate float64) enroll.PaymentDecider {
	return enroll.DeciderFunc(func(enroll.Student) bool {
		return rand.Float64() < rate
	})
}
