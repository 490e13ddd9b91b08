package calculations

import (
	"fmt"
	"math"
)

// AnnuityPayment рассчитывает ежемесячный аннуитетный платеж (округление вверх)
func AnnuityPayment(principal float64, periods int, rate float64) (int64, error) {
	ratio, err := PeriodRatio(periods, rate)
	if err != nil {
		return 0, err
	}
	return toAmount(math.Ceil(principal * ratio))
}

// AnnuityOverpayment - переплата floor(payment*n - principal)
func AnnuityOverpayment(principal, payment float64, periods int) int64 {
	return int64(math.Floor(payment*float64(periods) - principal))
}

// Periods рассчитывает число месяцев до полного погашения при платеже payment
func Periods(principal, payment, rate float64) (int, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: periods are undefined for zero interest rate", ErrComputation)
	}
	interest := rate * principal
	if payment <= interest {
		return 0, fmt.Errorf("%w: payment %v does not cover monthly interest %v", ErrComputation, payment, interest)
	}

	n := math.Ceil(math.Log(payment/(payment-interest)) / math.Log(1+rate))
	periods, err := toAmount(n)
	if err != nil {
		return 0, err
	}
	if periods < 1 {
		return 0, fmt.Errorf("%w: nothing to repay", ErrComputation)
	}
	if periods > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d periods is out of range", ErrComputation, periods)
	}
	return int(periods), nil
}

// Principal рассчитывает сумму кредита по платежу и сроку (округление вниз)
func Principal(payment float64, periods int, rate float64) (int64, error) {
	ratio, err := PeriodRatio(periods, rate)
	if err != nil {
		return 0, err
	}
	return toAmount(math.Floor(payment / ratio))
}
