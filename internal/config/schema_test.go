package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexityscope/complexityscope/internal/config"
)

func TestValidateSchema_AcceptsKnownKeys(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"walker":  map[string]any{"forin": true, "switchcase": true},
		"project": map[string]any{"skip_calculation": false},
		"output":  map[string]any{"format": "json", "color": true},
	}

	require.NoError(t, config.ValidateSchema(raw))
}

func TestValidateSchema_RejectsUnknownTopLevelKey(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"bogus": map[string]any{"x": 1}}

	err := config.ValidateSchema(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrSchemaViolation)
}

func TestValidateSchema_RejectsWrongTypedFormat(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"output": map[string]any{"format": 7}}

	err := config.ValidateSchema(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrSchemaViolation)
}

func TestValidateSchema_RejectsUnknownFormatValue(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"output": map[string]any{"format": "xml"}}

	err := config.ValidateSchema(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrSchemaViolation)
}
