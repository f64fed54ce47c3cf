package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	ScopeDay   = "day"
	ScopeWeek  = "week"
	ScopeMonth = "month"
)

// Scopes in presentation order.
var Scopes = []string{ScopeDay, ScopeWeek, ScopeMonth}

type DateCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// AnalyticsThreshold returns the inclusive lower bound (a calendar date in
// today's location) for scope: day is today, week is seven days back, month
// goes back by the number of days in the current month.
func AnalyticsThreshold(scope string, today time.Time) (time.Time, error) {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	switch scope {
	case ScopeDay:
		return midnight, nil
	case ScopeWeek:
		return midnight.AddDate(0, 0, -7), nil
	case ScopeMonth:
		return midnight.AddDate(0, 0, -DaysInMonth(today)), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown scope %q", ErrValidation, scope)
	}
}

func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

type AnalyticsRepository interface {
	// CountByDate groups applications created on or after since by creation date, ascending.
	CountByDate(ctx context.Context, since time.Time, categoryID *int64) ([]DateCount, error)
}

type AnalyticsUsecase interface {
	Aggregate(ctx context.Context, scope string, categoryID *int64) ([]DateCount, error)
	AggregateAll(ctx context.Context, categoryID *int64) (map[string][]DateCount, error)
	Export(ctx context.Context, categoryID *int64) ([]byte, string, error)
}
