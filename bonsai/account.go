package bonsai

import (
	"context"
	"fmt"

	"github.com/zkworks/bonsai-go/models"
)

// Version fetches the protocol versions the server currently supports. The
// client's own version header is not checked against the list; that is the
// caller's decision.
func (c *Client) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/version")
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return models.VersionInfo{}, err
	}

	return info, nil
}

// Quotas fetches the account's current limits and usage counters.
func (c *Client) Quotas(ctx context.Context) (models.QuotaSnapshot, error) {
	var quotas models.QuotaSnapshot

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&quotas).
		Get("/user/quotas")
	if err != nil {
		return models.QuotaSnapshot{}, fmt.Errorf("quotas request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return models.QuotaSnapshot{}, err
	}

	return quotas, nil
}

// DeleteImage removes a stored program image from the server.
func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete("/images/" + imageID)
	if err != nil {
		return fmt.Errorf("delete image request: %w", err)
	}
	return mapServerError(resp, nil)
}

// DeleteInput removes a stored input blob from the server.
func (c *Client) DeleteInput(ctx context.Context, inputID string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete("/inputs/" + inputID)
	if err != nil {
		return fmt.Errorf("delete input request: %w", err)
	}
	return mapServerError(resp, nil)
}
