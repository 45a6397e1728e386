package cheqprint_logger

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpModels "github.com/voxtmault/cheqprint-smoke/models"
)

func TestRunLog(t *testing.T) {
	runLog := NewRunLog()
	now := time.Now()

	runLog.LogRequest(cpModels.EgressLog{
		RequestID:  "a",
		HTTPMethod: http.MethodGet,
		Endpoint:   "banks",
		StatusCode: http.StatusOK,
		Success:    true,
		BeginAt:    now,
		EndAt:      now.Add(150 * time.Millisecond),
	})
	runLog.LogRequest(cpModels.EgressLog{
		RequestID:  "b",
		HTTPMethod: http.MethodPost,
		Endpoint:   "print-cheque",
		StatusCode: 0,
		Success:    false,
		BeginAt:    now,
		EndAt:      now,
	})

	logs := runLog.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, 150*time.Millisecond, logs[0].Latency())

	summary := runLog.Summary()
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
}

func TestRunLog_SkipsUnsentRequests(t *testing.T) {
	runLog := NewRunLog()

	runLog.LogRequest(cpModels.EgressLog{
		RequestID:  "never-sent",
		HTTPMethod: http.MethodGet,
		Endpoint:   "templates",
		BeginAt:    time.Now(),
	})

	assert.Empty(t, runLog.Logs())
	assert.Equal(t, 0, runLog.Summary().Total)
}
