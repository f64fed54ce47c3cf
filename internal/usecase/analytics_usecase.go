package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go-jobmarket-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

type analyticsUsecase struct {
	store domain.Store
	now   func() time.Time
}

func NewAnalyticsUsecase(store domain.Store) domain.AnalyticsUsecase {
	return NewAnalyticsUsecaseWithClock(store, time.Now)
}

// NewAnalyticsUsecaseWithClock fixes "today" for callers that need a stable date.
func NewAnalyticsUsecaseWithClock(store domain.Store, now func() time.Time) domain.AnalyticsUsecase {
	return &analyticsUsecase{store: store, now: now}
}

func (uc *analyticsUsecase) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	exists, err := uc.store.Vacancies().CategoryExists(ctx, *categoryID)
	if err != nil {
		return mapError(err)
	}
	if !exists {
		return notFound("Category not found")
	}
	return nil
}

func (uc *analyticsUsecase) aggregate(ctx context.Context, scope string, categoryID *int64, today time.Time) ([]domain.DateCount, error) {
	since, err := domain.AnalyticsThreshold(scope, today)
	if err != nil {
		return nil, mapError(err)
	}
	counts, err := uc.store.Analytics().CountByDate(ctx, since, categoryID)
	if err != nil {
		return nil, mapError(err)
	}
	return counts, nil
}

func (uc *analyticsUsecase) Aggregate(ctx context.Context, scope string, categoryID *int64) ([]domain.DateCount, error) {
	if err := uc.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return uc.aggregate(ctx, scope, categoryID, uc.now())
}

// AggregateAll computes every scope against the same "today".
func (uc *analyticsUsecase) AggregateAll(ctx context.Context, categoryID *int64) (map[string][]domain.DateCount, error) {
	if err := uc.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	today := uc.now()
	result := make(map[string][]domain.DateCount, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		counts, err := uc.aggregate(ctx, scope, categoryID, today)
		if err != nil {
			return nil, err
		}
		result[scope] = counts
	}
	return result, nil
}

// Export writes one sheet per scope with a date and count column.
func (uc *analyticsUsecase) Export(ctx context.Context, categoryID *int64) ([]byte, string, error) {
	all, err := uc.AggregateAll(ctx, categoryID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", mapError(err)
	}

	for i, scope := range domain.Scopes {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", scope); err != nil {
				return nil, "", mapError(err)
			}
		} else if _, err := f.NewSheet(scope); err != nil {
			return nil, "", mapError(err)
		}

		f.SetCellValue(scope, "A1", "DATE")
		f.SetCellValue(scope, "B1", "APPLICATIONS")
		f.SetCellStyle(scope, "A1", "B1", headerStyle)
		f.SetColWidth(scope, "A", "B", 20)

		for row, dc := range all[scope] {
			dateCell, _ := excelize.CoordinatesToCellName(1, row+2)
			countCell, _ := excelize.CoordinatesToCellName(2, row+2)
			f.SetCellValue(scope, dateCell, dc.Date.Format(time.DateOnly))
			f.SetCellValue(scope, countCell, dc.Count)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", mapError(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("applications_analytics_%s.xlsx", uc.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
