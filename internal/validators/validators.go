package validators

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/config"
	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// ErrInvalidParameters - общая ошибка для любых некорректных входных данных
var ErrInvalidParameters = errors.New("incorrect parameters")

// Reason - причина отказа валидатора
type Reason int

const (
	ReasonUnknownScheme Reason = iota + 1
	ReasonPaymentWithDiff
	ReasonMissingInterest
	ReasonNoTarget
	ReasonNotNumeric
	ReasonNegative
	ReasonOutOfRange
)

var reasonNames = map[Reason]string{
	ReasonUnknownScheme:   "unknown_scheme",
	ReasonPaymentWithDiff: "payment_with_diff",
	ReasonMissingInterest: "missing_interest",
	ReasonNoTarget:        "no_target",
	ReasonNotNumeric:      "not_numeric",
	ReasonNegative:        "negative",
	ReasonOutOfRange:      "out_of_range",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "reason(" + strconv.Itoa(int(r)) + ")"
}

// ValidationError описывает, какое правило нарушено и на каком поле
type ValidationError struct {
	Reason Reason
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Reason.String()
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidParameters)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameters
}

func reject(reason Reason, field, detail string) error {
	return &ValidationError{Reason: reason, Field: field, Detail: detail}
}

// Param - сырое значение флага и признак того, что флаг был передан
type Param struct {
	Value string
	Set   bool
}

// Value возвращает переданный параметр
func Value(s string) Param {
	return Param{Value: s, Set: true}
}

// RawParams - необработанные параметры командной строки
type RawParams struct {
	Principal Param
	Payment   Param
	Periods   Param
	Interest  Param
	Type      Param
}

// ReasonOf извлекает причину отказа из ошибки валидатора
func ReasonOf(err error) (Reason, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason, true
	}
	return 0, false
}

// ValidatePositiveNumber проверяет, что число конечно и лежит в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return reject(ReasonNotNumeric, name, "value is not a finite number")
	}
	if value < minInclusive {
		return reject(ReasonNegative, name, fmt.Sprintf("must be >= %g", minInclusive))
	}
	if value > maxInclusive {
		return reject(ReasonOutOfRange, name, fmt.Sprintf("must be <= %g", maxInclusive))
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive {
		return reject(ReasonNegative, name, fmt.Sprintf("must be >= %d", minInclusive))
	}
	if value > maxInclusive {
		return reject(ReasonOutOfRange, name, fmt.Sprintf("must be <= %d", maxInclusive))
	}
	return nil
}

func parseAmount(name string, p Param, max float64) (*float64, error) {
	if !p.Set {
		return nil, nil
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return nil, reject(ReasonNotNumeric, name, strconv.Quote(p.Value))
	}
	if err := ValidatePositiveNumber(name, v, 0, max); err != nil {
		return nil, err
	}
	return &v, nil
}

func parsePeriods(p Param, max int) (*int, error) {
	if !p.Set {
		return nil, nil
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return nil, reject(ReasonNotNumeric, "periods", strconv.Quote(p.Value))
	}
	if err := ValidateIntRange("periods", v, 0, max); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate проверяет параметры и строит LoanRequest.
// Нечисловые значения отклоняются сразу, а не пропускаются проверкой знака.
func Validate(cfg *config.Config, raw RawParams) (calculations.LoanRequest, error) {
	var req calculations.LoanRequest
	if cfg == nil {
		cfg = config.Default()
	}

	if !raw.Type.Set {
		return req, reject(ReasonUnknownScheme, "type", "missing")
	}
	scheme, ok := calculations.ParseScheme(raw.Type.Value)
	if !ok {
		return req, reject(ReasonUnknownScheme, "type", strconv.Quote(raw.Type.Value))
	}
	if scheme == calculations.SchemeDifferentiated && raw.Payment.Set {
		return req, reject(ReasonPaymentWithDiff, "payment", "")
	}
	if !raw.Interest.Set {
		return req, reject(ReasonMissingInterest, "interest", "")
	}

	interest, err := parseAmount("interest", raw.Interest, cfg.MaxRate)
	if err != nil {
		return req, err
	}
	principal, err := parseAmount("principal", raw.Principal, cfg.MaxPrincipal)
	if err != nil {
		return req, err
	}
	payment, err := parseAmount("payment", raw.Payment, cfg.MaxPayment)
	if err != nil {
		return req, err
	}
	periods, err := parsePeriods(raw.Periods, cfg.MaxPeriods)
	if err != nil {
		return req, err
	}

	target, err := targetOf(principal == nil, payment == nil, periods == nil)
	if err != nil {
		return req, err
	}

	return calculations.LoanRequest{
		Scheme:       scheme,
		Target:       target,
		Principal:    principal,
		Payment:      payment,
		Periods:      periods,
		InterestRate: *interest,
	}, nil
}

// targetOf выбирает вычисляемую величину: ровно одна должна отсутствовать
func targetOf(noPrincipal, noPayment, noPeriods bool) (calculations.Target, error) {
	missing := 0
	var target calculations.Target
	if noPayment {
		missing++
		target = calculations.SolveForPayment
	}
	if noPeriods {
		missing++
		target = calculations.SolveForPeriods
	}
	if noPrincipal {
		missing++
		target = calculations.SolveForPrincipal
	}
	if missing != 1 {
		return 0, reject(ReasonNoTarget, "", fmt.Sprintf("%d of principal/payment/periods missing, want 1", missing))
	}
	return target, nil
}
