package calculations

import (
	"errors"
	"fmt"
	"math"

	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// ErrComputation возвращается, когда входные данные нарушают условия формулы
// (нулевая ставка, платеж не покрывает проценты, переполнение).
var ErrComputation = errors.New("computation error")

// maxAmount - граница, за которой округленное значение не помещается в int64
const maxAmount = 1 << 62

// NominalRate переводит годовую ставку в процентах в месячную
func NominalRate(annualPercent float64) float64 {
	return annualPercent * 0.01 / 12
}

// PeriodRatio - коэффициент аннуитета i*(1+i)^n / ((1+i)^n - 1)
func PeriodRatio(periods int, rate float64) (float64, error) {
	if periods < 1 {
		return 0, fmt.Errorf("%w: periods must be positive, got %d", ErrComputation, periods)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("%w: annuity ratio is undefined for zero interest rate", ErrComputation)
	}

	growth := math.Pow(1+rate, float64(periods))
	ratio := rate * growth / (growth - 1)
	if !utils.IsFinite(ratio) || ratio <= 0 {
		return 0, fmt.Errorf("%w: annuity ratio overflow for %d periods", ErrComputation, periods)
	}
	return ratio, nil
}

// toAmount приводит уже округленное значение к int64
func toAmount(value float64) (int64, error) {
	if !utils.IsFinite(value) || math.Abs(value) >= maxAmount {
		return 0, fmt.Errorf("%w: value %v is out of range", ErrComputation, value)
	}
	return int64(value), nil
}
