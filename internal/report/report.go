package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/pkg/utils"
)

// Format - формат вывода результата
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat разбирает значение флага --format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Write печатает результат расчета в выбранном формате
func Write(w io.Writer, result calculations.Result, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, result calculations.Result) error {
	var b strings.Builder
	var overpayment int64

	switch r := result.(type) {
	case calculations.MonthlyPayment:
		fmt.Fprintf(&b, "Your monthly payment = %d!\n", r.Payment)
		overpayment = r.Overpayment
	case calculations.PeriodsResult:
		fmt.Fprintf(&b, "It will take %s to repay this loan!\n", TermString(r.Term))
		overpayment = r.Overpayment
	case calculations.PrincipalResult:
		fmt.Fprintf(&b, "Your loan principal = %d!\n", r.Principal)
		overpayment = r.Overpayment
	case calculations.DifferentiatedSchedule:
		for month, payment := range r.Payments {
			fmt.Fprintf(&b, "Month %d: %d\n", month, payment)
		}
		overpayment = r.Overpayment
	default:
		return fmt.Errorf("unsupported result %T", result)
	}

	fmt.Fprintf(&b, "\nOverpayment = %d\n", overpayment)
	_, err := io.WriteString(w, b.String())
	return err
}

// TermString - "2 years and 1 month", "11 months", "1 year"
func TermString(t calculations.Term) string {
	parts := make([]string, 0, 2)
	if t.Years > 0 {
		parts = append(parts, utils.Plural(t.Years, "year"))
	}
	if t.Months > 0 {
		parts = append(parts, utils.Plural(t.Months, "month"))
	}
	return strings.Join(parts, " and ")
}

type envelope struct {
	Kind   string              `json:"kind"`
	Result calculations.Result `json:"result"`
}

func writeJSON(w io.Writer, result calculations.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope{Kind: result.Kind(), Result: result})
}
