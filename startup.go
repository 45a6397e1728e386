package cheqprint_smoke

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	cpConfig "github.com/voxtmault/cheqprint-smoke/config"
	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

// Setup loads the configuration from envPath and the environment, prepares the validator and
// sets the slog level from MODE.
func Setup(ctx context.Context, envPath string) (*cpConfig.Config, error) {
	cfg := cpConfig.New(envPath)
	cpUtil.InitValidator()

	if cfg.IsDebug() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	if err := cpUtil.ValidateStruct(ctx, cfg); err != nil {
		return nil, eris.Wrap(err, "invalid configuration")
	}

	slog.Debug("configuration loaded", "base_url", cfg.BaseURL, "timeout", cfg.Timeout.String(), "history_limit", cfg.HistoryLimit)

	return cfg, nil
}
