package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title  string   `validate:"required,max=10,no_emoji"`
	Skills []string `validate:"dive,skill_tag"`
	Level  int      `validate:"gte=0"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(sample{Title: "Backend", Skills: []string{"C++", "Go/gRPC"}}))
	assert.Error(t, v.Struct(sample{Title: "Go 🚀"}))
	assert.Error(t, v.Struct(sample{Title: "Go", Skills: []string{"<script>"}}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()

	err := v.Struct(sample{Title: "", Level: -1})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Contains(t, msgs, "Title: is required")
	assert.Contains(t, msgs, "Level: must be 0 or more")

	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Vacancy Title", formatCamelCase("VacancyTitle"))
}
