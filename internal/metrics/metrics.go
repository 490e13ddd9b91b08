package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_calculations_total",
			Help: "Количество расчетов по вычисляемой величине и схеме",
		},
		[]string{"target", "scheme", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"target", "error_type"},
	)

	// ValidationErrors счетчик отклоненных входных данных
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_validation_errors_total",
			Help: "Количество отказов валидатора по причине",
		},
		[]string{"reason"},
	)
)

// WriteTextfile сохраняет метрики в формате textfile collector.
// Пустой путь - ничего не делать.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
