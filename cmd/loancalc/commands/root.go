package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/config"
	"github.com/cloud-ru/loancalc-go/internal/logging"
	"github.com/cloud-ru/loancalc-go/internal/metrics"
	"github.com/cloud-ru/loancalc-go/internal/report"
	"github.com/cloud-ru/loancalc-go/internal/solver"
	"github.com/cloud-ru/loancalc-go/internal/tracing"
	"github.com/cloud-ru/loancalc-go/internal/validators"
)

// IncorrectParameters - единственное сообщение об ошибке в stdout
const IncorrectParameters = "Incorrect parameters"

type options struct {
	payment   string
	principal string
	periods   string
	interest  string
	loanType  string
	format    string
}

// Execute загружает конфигурацию, поднимает логгер, трейсинг и метрики
// и выполняет команду один раз
func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	shutdown, err := tracing.InitTracing(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	root := NewRootCmd(cfg, solver.New(tracing.Tracer, logger), logger)
	err = Run(root)

	if mErr := metrics.WriteTextfile(cfg.MetricsFile); mErr != nil {
		logger.Warn("failed to write metrics textfile", zap.String("path", cfg.MetricsFile), zap.Error(mErr))
	}
	return err
}

// Run выполняет команду; некорректный ввод и нерешаемый кредит
// печатаются как IncorrectParameters
func Run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if IsInputError(err) {
		fmt.Fprintln(cmd.OutOrStdout(), IncorrectParameters)
	}
	return err
}

// NewRootCmd создает команду калькулятора
func NewRootCmd(cfg *config.Config, slv *solver.Solver, logger *zap.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "loancalc",
		Short:         "Loan repayment calculator",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %q", validators.ErrInvalidParameters, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			param := func(name, value string) validators.Param {
				return validators.Param{Value: value, Set: flags.Changed(name)}
			}

			format, err := report.ParseFormat(opts.format)
			if err != nil {
				return fmt.Errorf("%w: %v", validators.ErrInvalidParameters, err)
			}

			req, err := validators.Validate(cfg, validators.RawParams{
				Principal: param("principal", opts.principal),
				Payment:   param("payment", opts.payment),
				Periods:   param("periods", opts.periods),
				Interest:  param("interest", opts.interest),
				Type:      param("type", opts.loanType),
			})
			if err != nil {
				reason, _ := validators.ReasonOf(err)
				metrics.ValidationErrors.WithLabelValues(reason.String()).Inc()
				logger.Warn("rejected parameters", zap.Error(err))
				return err
			}

			result, err := slv.Solve(cmd.Context(), req)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		logger.Warn("rejected flags", zap.Error(err))
		return fmt.Errorf("%w: %v", validators.ErrInvalidParameters, err)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.payment, "payment", "", "the monthly payment amount")
	flags.StringVar(&opts.principal, "principal", "", "the loan principal")
	flags.StringVar(&opts.periods, "periods", "", "number of months needed to repay the loan")
	flags.StringVar(&opts.interest, "interest", "", "annual interest rate in percent (mandatory)")
	flags.StringVar(&opts.loanType, "type", "", "payment scheme: annuity or diff (mandatory)")
	flags.StringVar(&opts.format, "format", string(report.FormatText), "output format: text or json")

	return cmd
}

// IsInputError сообщает, вызвана ли ошибка входными данными, а не вводом-выводом
func IsInputError(err error) bool {
	return errors.Is(err, validators.ErrInvalidParameters) || errors.Is(err, calculations.ErrComputation)
}
