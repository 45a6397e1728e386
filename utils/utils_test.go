package cheqprint_utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyJSON(t *testing.T) {
	out, err := MinifyJSON([]byte("{\n  \"beneficiaire\": \"TEST API GO\",\n  \"montant\": \"123456\"\n}"))
	require.NoError(t, err)
	assert.Equal(t, `{"beneficiaire":"TEST API GO","montant":"123456"}`, string(out))
}

func TestNewRequestID(t *testing.T) {
	first := NewRequestID()
	second := NewRequestID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		URL   string `validate:"required,url"`
		Limit int    `validate:"min=1"`
	}

	assert.NoError(t, ValidateStruct(context.Background(), sample{URL: "https://example.com/functions/v1", Limit: 5}))
	assert.Error(t, ValidateStruct(context.Background(), sample{URL: "nope", Limit: 5}))
	assert.Error(t, ValidateStruct(context.Background(), sample{URL: "https://example.com", Limit: 0}))
}
