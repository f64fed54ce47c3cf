package domain_test

import (
	"testing"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ApplicationStatus
		to      domain.ApplicationStatus
		wantErr error
	}{
		{"submitted to accepted", domain.StatusSubmitted, domain.StatusAccepted, nil},
		{"submitted to rejected", domain.StatusSubmitted, domain.StatusRejected, nil},
		{"submitted to submitted", domain.StatusSubmitted, domain.StatusSubmitted, domain.ErrInvalidTransition},
		{"accepted to rejected", domain.StatusAccepted, domain.StatusRejected, domain.ErrInvalidTransition},
		{"rejected to accepted", domain.StatusRejected, domain.StatusAccepted, domain.ErrInvalidTransition},
		{"accepted back to submitted", domain.StatusAccepted, domain.StatusSubmitted, domain.ErrInvalidTransition},
		{"unknown target", domain.StatusSubmitted, domain.ApplicationStatus(42), domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateTransition(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatusNames(t *testing.T) {
	assert.Equal(t, "submitted", domain.StatusSubmitted.String())
	assert.Equal(t, "accepted", domain.StatusAccepted.String())
	assert.Equal(t, "rejected", domain.StatusRejected.String())
	assert.Equal(t, "status(9)", domain.ApplicationStatus(9).String())
	assert.False(t, domain.StatusSubmitted.IsTerminal())
	assert.True(t, domain.StatusAccepted.IsTerminal())
}
