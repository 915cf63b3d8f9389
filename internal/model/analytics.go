package model

type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
)

// Metric is a month-over-month count: Count for the current calendar month and
// Difference against the previous one.
type Metric struct {
	Count      int64 `json:"count"`
	Difference int64 `json:"difference"`
}

func NewMetric(thisMonth, lastMonth int64) Metric {
	return Metric{Count: thisMonth, Difference: thisMonth - lastMonth}
}

// Trend treats zero as a decrease, matching how the dashboard colours cards.
func (m Metric) Trend() Trend {
	if m.Difference > 0 {
		return TrendIncrease
	}
	return TrendDecrease
}

type Analytics struct {
	Tasks      Metric `json:"tasks"`
	Assigned   Metric `json:"assigned_tasks"`
	Completed  Metric `json:"completed_tasks"`
	Incomplete Metric `json:"incomplete_tasks"`
	Overdue    Metric `json:"overdue_tasks"`
}
