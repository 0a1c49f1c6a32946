package model

// Spreadsheet headers recognised by the loader. Any other column is kept as
// raw text only.
const (
	ColumnName          = "NOMBRE COMPLETO / APODO"
	ColumnPosition      = "POSICIÓN"
	ColumnTeam          = "EQUIPO"
	ColumnAge           = "EDAD"
	ColumnQualification = "CALIFICACIÓN"
	ColumnPhoto         = "FOTO"
)

// Per-match statistic columns compared on the radar chart.
const (
	MetricGoals       = "Goles"
	MetricAssists     = "Asist."
	MetricYellowCards = "TA"
	MetricRedCards    = "TR"
	MetricPlayed      = "PJ"
)

// Metrics lists the comparison metrics in display order.
var Metrics = []string{MetricGoals, MetricAssists, MetricYellowCards, MetricRedCards, MetricPlayed}

// IsNumericColumn reports whether values of column are parsed as numbers.
func IsNumericColumn(column string) bool {
	switch column {
	case ColumnAge, ColumnQualification:
		return true
	}
	return IsMetric(column)
}

// IsMetric reports whether column is one of the comparison metrics.
func IsMetric(column string) bool {
	for _, m := range Metrics {
		if m == column {
			return true
		}
	}
	return false
}
