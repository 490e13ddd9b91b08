package calculations

import (
	"errors"
	"testing"
)

func TestDifferentialPayments(t *testing.T) {
	payments, err := DifferentialPayments(500000, 8, NominalRate(7.8))
	if err != nil {
		t.Fatalf("DifferentialPayments() error = %v", err)
	}

	want := []int64{65750, 65344, 64938, 64532, 64125, 63719, 63313, 62907}
	if len(payments) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(payments))
	}
	for k := range want {
		if payments[k] != want[k] {
			t.Errorf("month %d: payment = %d, want %d", k, payments[k], want[k])
		}
	}

	// Платежи строго убывают
	for k := 0; k < len(payments)-1; k++ {
		if payments[k] <= payments[k+1] {
			t.Errorf("payment %d (%d) should be greater than payment %d (%d)", k, payments[k], k+1, payments[k+1])
		}
	}

	if over := DifferentialOverpayment(500000, payments); over != 14628 {
		t.Errorf("overpayment = %d, want 14628", over)
	}
}

func TestDifferentialPaymentsProperties(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		periods    int
		annualRate float64
	}{
		{name: "one year", principal: 1000000, periods: 12, annualRate: 12},
		{name: "ten months", principal: 1000000, periods: 10, annualRate: 10},
		{name: "thirty years", principal: 3500000, periods: 360, annualRate: 5.6},
		{name: "zero rate", principal: 100000, periods: 7, annualRate: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments, err := DifferentialPayments(tt.principal, tt.periods, NominalRate(tt.annualRate))
			if err != nil {
				t.Fatalf("DifferentialPayments() error = %v", err)
			}
			if len(payments) != tt.periods {
				t.Fatalf("expected %d months, got %d", tt.periods, len(payments))
			}

			var total int64
			for k, p := range payments {
				total += p
				if k > 0 && p > payments[k-1] {
					t.Errorf("payment %d (%d) is greater than previous (%d)", k, p, payments[k-1])
				}
			}
			if float64(total) < tt.principal {
				t.Errorf("total paid %d is less than principal %v", total, tt.principal)
			}
			if DifferentialOverpayment(tt.principal, payments) < 0 {
				t.Error("overpayment should be non-negative")
			}
		})
	}
}

func TestDifferentialPaymentsSinglePeriod(t *testing.T) {
	payments, err := DifferentialPayments(1000, 1, NominalRate(12))
	if err != nil {
		t.Fatalf("DifferentialPayments() error = %v", err)
	}
	if len(payments) != 1 || payments[0] != 1010 {
		t.Errorf("payments = %v, want [1010]", payments)
	}
}

func TestDifferentialPaymentsZeroPeriods(t *testing.T) {
	_, err := DifferentialPayments(1000, 0, NominalRate(12))
	if !errors.Is(err, ErrComputation) {
		t.Errorf("expected ErrComputation, got %v", err)
	}
}
