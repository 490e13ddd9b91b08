package calculations

import "fmt"

// Scheme определяет схему погашения кредита
type Scheme string

const (
	// SchemeAnnuity - аннуитет, одинаковый платеж каждый месяц
	SchemeAnnuity Scheme = "annuity"
	// SchemeDifferentiated - основной долг гасится равными долями
	SchemeDifferentiated Scheme = "diff"
)

// ParseScheme разбирает значение флага --type
func ParseScheme(s string) (Scheme, bool) {
	switch Scheme(s) {
	case SchemeAnnuity, SchemeDifferentiated:
		return Scheme(s), true
	}
	return "", false
}

// Target определяет, какая из величин {principal, payment, periods} вычисляется
type Target int

const (
	SolveForPayment Target = iota + 1
	SolveForPeriods
	SolveForPrincipal
)

func (t Target) String() string {
	switch t {
	case SolveForPayment:
		return "payment"
	case SolveForPeriods:
		return "periods"
	case SolveForPrincipal:
		return "principal"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// LoanRequest - проверенный запрос на расчет. Ровно одно из полей
// Principal, Payment, Periods равно nil, и Target указывает на него.
type LoanRequest struct {
	Scheme       Scheme
	Target       Target
	Principal    *float64
	Payment      *float64
	Periods      *int
	InterestRate float64
}

// Rate возвращает номинальную месячную ставку запроса
func (r LoanRequest) Rate() float64 {
	return NominalRate(r.InterestRate)
}

// Result - результат расчета. Набор реализаций закрыт:
// MonthlyPayment, PeriodsResult, PrincipalResult, DifferentiatedSchedule.
type Result interface {
	Kind() string
	sealed()
}

// MonthlyPayment - рассчитанный аннуитетный платеж
type MonthlyPayment struct {
	Payment     int64 `json:"payment"`
	Overpayment int64 `json:"overpayment"`
}

// Term - срок кредита в годах и месяцах
type Term struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// SplitTerm раскладывает число месяцев на годы и месяцы
func SplitTerm(periods int) Term {
	return Term{Years: periods / 12, Months: periods % 12}
}

// PeriodsResult - рассчитанный срок кредита
type PeriodsResult struct {
	Term
	Periods     int   `json:"periods"`
	Overpayment int64 `json:"overpayment"`
}

// PrincipalResult - рассчитанная сумма кредита
type PrincipalResult struct {
	Principal   int64 `json:"principal"`
	Overpayment int64 `json:"overpayment"`
}

// DifferentiatedSchedule - помесячные платежи дифференцированного кредита
type DifferentiatedSchedule struct {
	Payments    []int64 `json:"payments"`
	Overpayment int64   `json:"overpayment"`
}

func (MonthlyPayment) Kind() string         { return "monthly_payment" }
func (PeriodsResult) Kind() string          { return "periods" }
func (PrincipalResult) Kind() string        { return "principal" }
func (DifferentiatedSchedule) Kind() string { return "differentiated_schedule" }

func (MonthlyPayment) sealed()         {}
func (PeriodsResult) sealed()          {}
func (PrincipalResult) sealed()        {}
func (DifferentiatedSchedule) sealed() {}
