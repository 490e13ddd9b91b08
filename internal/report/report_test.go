package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name   string
		result calculations.Result
		want   string
	}{
		{
			name:   "monthly payment",
			result: calculations.MonthlyPayment{Payment: 21248, Overpayment: 274880},
			want:   "Your monthly payment = 21248!\n\nOverpayment = 274880\n",
		},
		{
			name: "periods",
			result: calculations.PeriodsResult{
				Term:        calculations.SplitTerm(24),
				Periods:     24,
				Overpayment: 52000,
			},
			want: "It will take 2 years to repay this loan!\n\nOverpayment = 52000\n",
		},
		{
			name: "periods with months",
			result: calculations.PeriodsResult{
				Term:        calculations.SplitTerm(13),
				Periods:     13,
				Overpayment: 5,
			},
			want: "It will take 1 year and 1 month to repay this loan!\n\nOverpayment = 5\n",
		},
		{
			name:   "principal",
			result: calculations.PrincipalResult{Principal: 800018, Overpayment: 246622},
			want:   "Your loan principal = 800018!\n\nOverpayment = 246622\n",
		},
		{
			name: "differentiated",
			result: calculations.DifferentiatedSchedule{
				Payments:    []int64{108334, 107500, 106667},
				Overpayment: 22501,
			},
			want: "Month 0: 108334\nMonth 1: 107500\nMonth 2: 106667\n\nOverpayment = 22501\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.result, FormatText); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Write() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term calculations.Term
		want string
	}{
		{term: calculations.Term{Years: 1}, want: "1 year"},
		{term: calculations.Term{Months: 11}, want: "11 months"},
		{term: calculations.Term{Months: 1}, want: "1 month"},
		{term: calculations.Term{Years: 5, Months: 6}, want: "5 years and 6 months"},
	}
	for _, tt := range tests {
		if got := TermString(tt.term); got != tt.want {
			t.Errorf("TermString(%+v) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	result := calculations.PeriodsResult{Term: calculations.SplitTerm(61), Periods: 61, Overpayment: 100}
	if err := Write(&buf, result, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		Kind   string `json:"kind"`
		Result struct {
			Years       int   `json:"years"`
			Months      int   `json:"months"`
			Periods     int   `json:"periods"`
			Overpayment int64 `json:"overpayment"`
		} `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.Kind != "periods" {
		t.Errorf("kind = %q, want periods", got.Kind)
	}
	if got.Result.Years != 5 || got.Result.Months != 1 || got.Result.Periods != 61 || got.Result.Overpayment != 100 {
		t.Errorf("result = %+v", got.Result)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
