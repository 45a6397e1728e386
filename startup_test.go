package cheqprint_smoke

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envPath = "./testdata/does-not-exist.env"

func TestSetup(t *testing.T) {
	t.Setenv("API_KEY", "sk_live_setup")
	t.Setenv("CHEQPRINT_BASE_URL", "http://localhost:54321/functions/v1/")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Setup(context.Background(), envPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:54321/functions/v1", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestSetup_InvalidConfiguration(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "base url", key: "CHEQPRINT_BASE_URL", value: "not a url"},
		{name: "history limit", key: "HISTORY_LIMIT", value: "0"},
		{name: "negative rate", key: "REQUESTS_PER_SECOND", value: "-2"},
		{name: "negative timeout", key: "HTTP_TIMEOUT_SECONDS", value: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Setup(context.Background(), envPath)
			assert.Error(t, err)
		})
	}
}

func TestSetup_MissingKeyIsNotAConfigurationError(t *testing.T) {
	t.Setenv("API_KEY", "")

	cfg, err := Setup(context.Background(), envPath)
	require.NoError(t, err)
	assert.False(t, cfg.HasAPIKey())
}
