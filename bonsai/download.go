package bonsai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zkworks/bonsai-go/models"
)

// ReceiptDownload looks up the receipt produced by a session and fetches its
// bytes through the presigned URL the server answers with. A 404 on the
// lookup surfaces as [ErrNotFound], which callers typically treat as "proof
// not ready yet".
func (c *Client) ReceiptDownload(ctx context.Context, session *Session) ([]byte, error) {
	var location models.PresignedURL

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&location).
		Get("/receipts/" + session.ID)
	if err != nil {
		return nil, fmt.Errorf("receipt lookup request: %w", err)
	}
	if err = mapServerError(resp, map[int]error{http.StatusNotFound: ErrNotFound}); err != nil {
		return nil, err
	}

	return c.Download(ctx, location.URL)
}

// Download fetches raw bytes from an arbitrary, typically presigned, URL.
// Transport failures surface as [ErrDownload]; a well-formed non-2xx
// response surfaces as [ErrServer] like any other.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.transfer.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrDownload, url, err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("url", url).Int("bytes", len(resp.Body())).Msg("download complete")
	return resp.Body(), nil
}
