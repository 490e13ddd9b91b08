package calculations

import (
	"fmt"
	"math"
)

// DifferentialPayments рассчитывает график дифференцированного кредита.
// Платеж за месяц k (с нуля): ceil(P/n + i*(P - P*k/n)).
func DifferentialPayments(principal float64, periods int, rate float64) ([]int64, error) {
	if periods < 1 {
		return nil, fmt.Errorf("%w: periods must be positive, got %d", ErrComputation, periods)
	}

	P := principal
	n := float64(periods)
	payments := make([]int64, 0, periods)

	for k := 0; k < periods; k++ {
		remaining := P - P*float64(k)/n
		payment, err := toAmount(math.Ceil(P/n + rate*remaining))
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// DifferentialOverpayment - переплата floor(sum(payments) - principal)
func DifferentialOverpayment(principal float64, payments []int64) int64 {
	var total int64
	for _, p := range payments {
		total += p
	}
	return int64(math.Floor(float64(total) - principal))
}
