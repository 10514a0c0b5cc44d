package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/port"
)

type webhookNotifier struct {
	client *http.Client
	config config.NotifierConfig
	logger *slog.Logger
}

// NewWebhookNotifier creates a notifier that POSTs the storage URL to the
// configured third-party endpoint
func NewWebhookNotifier(cfg config.NotifierConfig, logger *slog.Logger) port.Notifier {
	return &webhookNotifier{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
		logger: logger,
	}
}

func (n *webhookNotifier) Notify(ctx context.Context, storageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.WebhookURL, strings.NewReader(storageURL))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	n.logger.Info("webhook notified", "storageURL", storageURL, "status", resp.StatusCode)
	return nil
}
