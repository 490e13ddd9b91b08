package solver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/metrics"
	"github.com/cloud-ru/loancalc-go/internal/validators"
)

// Handler вычисляет одну из величин по проверенному запросу
type Handler func(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error)

// Solver выбирает обработчик по Target и Scheme
type Solver struct {
	tracer trace.Tracer
	logger *zap.Logger
}

// New создает Solver
func New(tracer trace.Tracer, logger *zap.Logger) *Solver {
	return &Solver{tracer: tracer, logger: logger}
}

// Solve выполняет расчет, оборачивая его в спан и метрики
func (s *Solver) Solve(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error) {
	target := req.Target.String()
	scheme := string(req.Scheme)

	ctx, span := s.tracer.Start(ctx, "solve_"+target)
	defer span.End()

	span.SetAttributes(
		attribute.String("scheme", scheme),
		attribute.String("target", target),
		attribute.Float64("interest_rate", req.InterestRate),
	)
	if req.Principal != nil {
		span.SetAttributes(attribute.Float64("principal", *req.Principal))
	}
	if req.Payment != nil {
		span.SetAttributes(attribute.Float64("payment", *req.Payment))
	}
	if req.Periods != nil {
		span.SetAttributes(attribute.Int("periods", *req.Periods))
	}

	handler, err := s.handlerFor(req)
	if err != nil {
		s.fail(span, req, "validation", err)
		return nil, err
	}

	s.logger.Debug("solving loan", zap.String("target", target), zap.String("scheme", scheme))

	result, err := handler(ctx, req)
	if err != nil {
		s.fail(span, req, "calculation", err)
		return nil, fmt.Errorf("solve %s: %w", target, err)
	}

	span.SetAttributes(attribute.Bool("success", true), attribute.String("result_kind", result.Kind()))
	metrics.Calculations.WithLabelValues(target, scheme, "success").Inc()

	return result, nil
}

func (s *Solver) fail(span trace.Span, req calculations.LoanRequest, errorType string, err error) {
	target := req.Target.String()
	span.SetAttributes(attribute.String("error", errorType+"_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.Calculations.WithLabelValues(target, string(req.Scheme), "error").Inc()
	metrics.CalculationErrors.WithLabelValues(target, errorType).Inc()
	s.logger.Warn("loan calculation failed",
		zap.String("target", target),
		zap.String("scheme", string(req.Scheme)),
		zap.Error(err),
	)
}

// handlerFor выбирает обработчик. Для дифференцированной схемы известный
// платеж запрещен, поэтому считать можно только график платежей.
func (s *Solver) handlerFor(req calculations.LoanRequest) (Handler, error) {
	switch req.Target {
	case calculations.SolveForPayment:
		if req.Scheme == calculations.SchemeDifferentiated {
			return DifferentialScheduleHandler, nil
		}
		return AnnuityPaymentHandler, nil
	case calculations.SolveForPeriods:
		if req.Scheme == calculations.SchemeDifferentiated {
			return nil, fmt.Errorf("%w: periods cannot be derived for the differentiated scheme", validators.ErrInvalidParameters)
		}
		return PeriodsHandler, nil
	case calculations.SolveForPrincipal:
		if req.Scheme == calculations.SchemeDifferentiated {
			return nil, fmt.Errorf("%w: principal cannot be derived for the differentiated scheme", validators.ErrInvalidParameters)
		}
		return PrincipalHandler, nil
	}
	return nil, fmt.Errorf("%w: unknown target %v", validators.ErrInvalidParameters, req.Target)
}

func require[T any](name string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s is missing", validators.ErrInvalidParameters, name)
	}
	return *v, nil
}

// AnnuityPaymentHandler рассчитывает аннуитетный платеж и переплату
func AnnuityPaymentHandler(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error) {
	principal, err := require("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	periods, err := require("periods", req.Periods)
	if err != nil {
		return nil, err
	}

	payment, err := calculations.AnnuityPayment(principal, periods, req.Rate())
	if err != nil {
		return nil, err
	}

	return calculations.MonthlyPayment{
		Payment:     payment,
		Overpayment: calculations.AnnuityOverpayment(principal, float64(payment), periods),
	}, nil
}

// PeriodsHandler рассчитывает срок кредита и переплату
func PeriodsHandler(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error) {
	principal, err := require("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	payment, err := require("payment", req.Payment)
	if err != nil {
		return nil, err
	}

	periods, err := calculations.Periods(principal, payment, req.Rate())
	if err != nil {
		return nil, err
	}

	return calculations.PeriodsResult{
		Term:        calculations.SplitTerm(periods),
		Periods:     periods,
		Overpayment: calculations.AnnuityOverpayment(principal, payment, periods),
	}, nil
}

// PrincipalHandler рассчитывает сумму кредита и переплату
func PrincipalHandler(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error) {
	payment, err := require("payment", req.Payment)
	if err != nil {
		return nil, err
	}
	periods, err := require("periods", req.Periods)
	if err != nil {
		return nil, err
	}

	principal, err := calculations.Principal(payment, periods, req.Rate())
	if err != nil {
		return nil, err
	}

	return calculations.PrincipalResult{
		Principal:   principal,
		Overpayment: calculations.AnnuityOverpayment(float64(principal), payment, periods),
	}, nil
}

// DifferentialScheduleHandler рассчитывает график дифференцированных платежей
func DifferentialScheduleHandler(ctx context.Context, req calculations.LoanRequest) (calculations.Result, error) {
	principal, err := require("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	periods, err := require("periods", req.Periods)
	if err != nil {
		return nil, err
	}

	payments, err := calculations.DifferentialPayments(principal, periods, req.Rate())
	if err != nil {
		return nil, err
	}

	return calculations.DifferentiatedSchedule{
		Payments:    payments,
		Overpayment: calculations.DifferentialOverpayment(principal, payments),
	}, nil
}
