package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/infra/notify"
)

// Slack holds failure notification configuration
type Slack struct {
	SlackWebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL notified of failed runs",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("ISSUEDIGEST_SLACK_WEBHOOK_URL"),
		},
	}
}

// NewNotifier creates the run failure notifier
func (c *Slack) NewNotifier() interfaces.Notifier {
	if c.SlackWebhookURL == "" {
		return notify.NewNop()
	}
	return notify.NewSlack(c.SlackWebhookURL)
}
