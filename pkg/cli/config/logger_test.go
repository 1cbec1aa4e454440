package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/masq"

	"github.com/m-mizutani/issuedigest/pkg/cli/config"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// emitRunLogs writes one record per level, the way a refresh run would.
func emitRunLogs(logger *slog.Logger) {
	logger.Debug("fetching issues", "source", "Acme/widgets")
	logger.Info("digest published", "run_id", "run-1")
	logger.Warn("source skipped", "source", "Acme/*")
	logger.Error("refresh failed", "error", "rate limited")
}

func TestLogger_LevelFiltersRunLogs(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		drop  []string
	}{
		{
			level: "debug",
			want:  []string{"fetching issues", "digest published", "source skipped", "refresh failed"},
		},
		{
			level: "INFO",
			want:  []string{"digest published", "source skipped", "refresh failed"},
			drop:  []string{"fetching issues"},
		},
		{
			level: "Warn",
			want:  []string{"source skipped", "refresh failed"},
			drop:  []string{"fetching issues", "digest published"},
		},
		{
			level: "error",
			want:  []string{"refresh failed"},
			drop:  []string{"fetching issues", "digest published", "source skipped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := config.ConfigureLogger(&config.Logger{Level: tt.level, JSON: true}, &buf)
			gt.NoError(t, err)

			emitRunLogs(logger)

			for _, msg := range tt.want {
				gt.S(t, buf.String()).Contains(msg)
			}
			for _, msg := range tt.drop {
				gt.S(t, buf.String()).NotContains(msg)
			}
		})
	}
}

func TestLogger_RejectsUnknownLevel(t *testing.T) {
	for _, level := range []string{"", "trace", "verbose", "warning"} {
		t.Run("level="+level, func(t *testing.T) {
			logger, err := (&config.Logger{Level: level}).Configure()
			gt.Error(t, err)
			gt.Nil(t, logger)

			gErr := goerr.Unwrap(err)
			gt.NotNil(t, gErr)
			gt.Equal(t, gErr.Values()["level"], any(level))
		})
	}
}

func TestLogger_OutputFormat(t *testing.T) {
	t.Run("json records carry run attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := config.ConfigureLogger(&config.Logger{Level: "info", JSON: true}, &buf)
		gt.NoError(t, err)

		logger.Info("digest published", "run_id", "run-1", "issues", 3)

		var record map[string]any
		gt.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
		gt.Equal(t, record["msg"], any("digest published"))
		gt.Equal(t, record["run_id"], any("run-1"))
		gt.Equal(t, record["issues"], any(float64(3)))
	})

	t.Run("console records are not json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := config.ConfigureLogger(&config.Logger{Level: "info", JSON: false}, &buf)
		gt.NoError(t, err)

		logger.Info("digest published", "run_id", "run-1")

		gt.S(t, buf.String()).Contains("digest published")
		gt.S(t, buf.String()).Contains("run-1")
		gt.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})
}

func TestLogger_RedactsCredentials(t *testing.T) {
	type notifySettings struct {
		SlackWebhookURL string
		SentryDSN       string
		WebhookSecret   string
		Channel         string
	}

	var buf bytes.Buffer
	logger, err := config.ConfigureLogger(&config.Logger{Level: "info", JSON: true}, &buf)
	gt.NoError(t, err)

	logger.Info("client configured", slog.Any("token", types.GitHubToken("ghp_secret_value")))
	logger.Info("notifier configured", slog.Any("settings", notifySettings{
		SlackWebhookURL: "https://hooks.slack.com/services/T000/B000/XXXX",
		SentryDSN:       "https://public@sentry.example.com/1",
		WebhookSecret:   "hook-secret",
		Channel:         "#issues",
	}))

	out := buf.String()
	for _, secret := range []string{"ghp_secret_value", "hooks.slack.com", "sentry.example.com", "hook-secret"} {
		gt.S(t, out).NotContains(secret)
	}
	gt.S(t, out).Contains("#issues")
	gt.True(t, strings.Count(out, masq.DefaultRedactMessage) >= 4)
}

func TestLogger_Flags(t *testing.T) {
	flags := (&config.Logger{}).Flags()
	gt.A(t, flags).Length(2)

	var names []string
	for _, flag := range flags {
		names = append(names, flag.Names()[0])
	}
	gt.A(t, names).Has("log-level").Has("log-json")
}
