package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobmarket-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	ok := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"database": up}).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok", "database": "ok"}, ok)

	degraded := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"database": up, "redis": down}).Check(context.Background())
	assert.Equal(t, "degraded", degraded["status"])
	assert.Equal(t, "down", degraded["redis"])
}
