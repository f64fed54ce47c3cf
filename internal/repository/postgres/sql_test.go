package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStopQuery = errors.New("stop after capture")

// recordingDB captures statements and answers COUNT(*) with zero.
type recordingDB struct {
	queries []string
	args    [][]any
}

func (d *recordingDB) record(sql string, args []any) {
	d.queries = append(d.queries, sql)
	d.args = append(d.args, args)
}

func (d *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.record(sql, args)
	return nil, errStopQuery
}

func (d *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	d.record(sql, args)
	return zeroRow{}
}

type zeroRow struct{}

func (zeroRow) Scan(dest ...any) error {
	for _, v := range dest {
		if n, ok := v.(*int64); ok {
			*n = 0
		}
	}
	return nil
}

func (d *recordingDB) last() string {
	return d.queries[len(d.queries)-1]
}

func TestVacancyRepo_ListPublicOrder(t *testing.T) {
	tests := []struct {
		name string
		sort domain.VacancySort
		want string
	}{
		{"Newest first by default", domain.SortNewest, "ORDER BY v.created_at DESC, v.id DESC LIMIT $1 OFFSET $2"},
		{"Fewest applicants first", domain.SortAppliedAsc, "ORDER BY applied_count ASC, v.id ASC LIMIT $1 OFFSET $2"},
		{"Most applicants first", domain.SortAppliedDesc, "ORDER BY applied_count DESC, v.id DESC LIMIT $1 OFFSET $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{}
			repo := &vacancyRepo{db: db}

			_, _, err := repo.ListPublic(context.Background(), domain.VacancyFilter{Sort: tt.sort, Limit: 10})

			require.ErrorIs(t, err, errStopQuery)
			require.Len(t, db.queries, 2)
			assert.True(t, len(db.last()) > len(tt.want))
			assert.Equal(t, tt.want, db.last()[len(db.last())-len(tt.want):])
		})
	}
}

func TestVacancyRepo_ListPublicFilters(t *testing.T) {
	db := &recordingDB{}
	repo := &vacancyRepo{db: db}
	applied := false

	_, _, err := repo.ListPublic(context.Background(), domain.VacancyFilter{
		CategoryIDs: []int64{1, 2},
		Title:       "go",
		ViewerID:    5,
		IsApplied:   &applied,
		Sort:        domain.SortAppliedAsc,
		Limit:       10,
		Offset:      20,
	})
	require.ErrorIs(t, err, errStopQuery)

	count := db.queries[0]
	assert.Contains(t, count, "v.is_activate = true")
	assert.Contains(t, count, "v.category_id = ANY($1)")
	assert.Contains(t, count, "v.title ILIKE $2")
	assert.Contains(t, count, "NOT EXISTS (SELECT 1 FROM applications ap WHERE ap.vacancy_id = v.id AND ap.user_id = $3)")
	assert.Equal(t, []any{[]int64{1, 2}, "%go%", int64(5)}, db.args[0])
	assert.Equal(t, []any{[]int64{1, 2}, "%go%", int64(5), 10, 20}, db.args[1])
}

func TestAnalyticsRepo_CountByDateComparesDates(t *testing.T) {
	db := &recordingDB{}
	repo := &analyticsRepo{db: db}

	// 00:30 in UTC+5 is still the previous day in UTC
	tashkent := time.FixedZone("UTC+5", 5*60*60)
	since := time.Date(2026, 10, 15, 0, 30, 0, 0, tashkent)
	category := int64(3)

	_, err := repo.CountByDate(context.Background(), since, &category)

	require.ErrorIs(t, err, errStopQuery)
	assert.Contains(t, db.last(), "a.created_at::date >= $1::date")
	assert.Equal(t, "2026-10-15", db.args[0][0])
	assert.Equal(t, &category, db.args[0][1])
}
