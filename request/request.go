package cheqprint_request

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	cpConfig "github.com/voxtmault/cheqprint-smoke/config"
	cpInterfaces "github.com/voxtmault/cheqprint-smoke/interfaces"
	cpLogger "github.com/voxtmault/cheqprint-smoke/logger"
	cpModels "github.com/voxtmault/cheqprint-smoke/models"
	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

var ErrUnsupportedMethod = eris.New("unsupported method")

type CheqPrintRequest struct {
	Config *cpConfig.Config
	Client *http.Client

	// Limiter paces outgoing calls, nil when pacing is disabled
	Limiter *rate.Limiter

	// RunLog collects one entry per call, may be nil
	RunLog *cpLogger.RunLog
}

var _ cpInterfaces.Request = &CheqPrintRequest{}

func NewCheqPrintRequest(cfg *cpConfig.Config, runLog *cpLogger.RunLog) *CheqPrintRequest {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &CheqPrintRequest{
		Config: cfg,
		Client: &http.Client{
			Timeout: cfg.Timeout,
		},
		Limiter: limiter,
		RunLog:  runLog,
	}
}

func (s *CheqPrintRequest) Do(ctx context.Context, method, endpoint string, payload any, auth bool) (*cpModels.RequestResult, error) {

	if method != http.MethodGet && method != http.MethodPost {
		return nil, eris.Wrapf(ErrUnsupportedMethod, "method %q", method)
	}

	target := s.buildURL(endpoint)
	requestID := cpUtil.NewRequestID()

	var body io.Reader
	if method == http.MethodPost && payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, eris.Wrap(err, "marshalling payload")
		}
		body = bytes.NewReader(jsonBody)

		slog.Debug("outgoing payload", "request_id", requestID, "payload", string(jsonBody))
	}

	egress := cpModels.EgressLog{
		RequestID:  requestID,
		HTTPMethod: method,
		Endpoint:   endpoint,
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return s.transportFailure(egress, eris.Wrap(err, "waiting for rate limiter")), nil
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return s.transportFailure(egress, eris.Wrap(err, "creating request")), nil
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Request-ID", requestID)
	if auth && s.Config.HasAPIKey() {
		request.Header.Set("Authorization", "Bearer "+s.Config.APIKey)
	}

	slog.Debug("sending request", "request_id", requestID, "method", method, "url", target, "auth", auth)

	egress.BeginAt = time.Now()
	response, err := s.Client.Do(request)
	if err != nil {
		egress.EndAt = time.Now()
		return s.transportFailure(egress, err), nil
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	egress.EndAt = time.Now()
	if err != nil {
		return s.transportFailure(egress, eris.Wrap(err, "reading response body")), nil
	}

	result := parseResponse(response.StatusCode, raw)
	result.RequestID = requestID
	result.Latency = egress.Latency()

	egress.StatusCode = result.Status
	egress.Success = result.Success
	s.logRequest(egress)

	slog.Debug("response received", "request_id", requestID, "status", result.Status, "latency", result.Latency.String())

	return result, nil
}

func (s *CheqPrintRequest) buildURL(endpoint string) string {
	return strings.TrimRight(s.Config.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// transportFailure builds the synthetic result used when no HTTP exchange completed. A call
// that was never sent has no EndAt and is left out of the run log.
func (s *CheqPrintRequest) transportFailure(egress cpModels.EgressLog, err error) *cpModels.RequestResult {
	slog.Debug("transport failure", "request_id", egress.RequestID, "endpoint", egress.Endpoint, "reason", err)

	s.logRequest(egress)

	return &cpModels.RequestResult{
		Status:    0,
		Body:      map[string]any{"error": err.Error()},
		Success:   false,
		RequestID: egress.RequestID,
		Latency:   egress.Latency(),
	}
}

func (s *CheqPrintRequest) logRequest(egress cpModels.EgressLog) {
	if s.RunLog != nil {
		s.RunLog.LogRequest(egress)
	}
}

// parseResponse turns a completed exchange into a result. An empty body becomes an empty
// mapping, a body that is not JSON is kept under "raw" and the call is marked as failed.
func parseResponse(status int, raw []byte) *cpModels.RequestResult {
	result := &cpModels.RequestResult{
		Status:  status,
		Raw:     raw,
		Body:    map[string]any{},
		Success: status < http.StatusBadRequest,
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return result
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var parsed any
	if err := decoder.Decode(&parsed); err != nil {
		result.Success = false
		result.Body = map[string]any{
			"error": eris.Wrap(err, "decoding response body").Error(),
			"raw":   string(raw),
		}
		return result
	}

	if obj, ok := parsed.(map[string]any); ok {
		result.Body = obj
	} else {
		result.Body = map[string]any{"raw": parsed}
	}

	return result
}
