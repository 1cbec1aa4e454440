package notify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

type slackNotifier struct {
	webhookURL string
}

// NewSlack returns a Notifier posting to a Slack incoming webhook
func NewSlack(webhookURL string) interfaces.Notifier {
	return &slackNotifier{webhookURL: webhookURL}
}

func (n *slackNotifier) Notify(ctx context.Context, message string) error {
	msg := &slack.WebhookMessage{
		Text: message,
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}
	return nil
}

type nopNotifier struct{}

// NewNop returns a Notifier that discards messages
func NewNop() interfaces.Notifier {
	return nopNotifier{}
}

func (nopNotifier) Notify(ctx context.Context, message string) error {
	return nil
}
