package bonsai

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/zkworks/bonsai-go/models"
)

// ImageUploadURL checks whether the image content-addressed by imageID is
// already stored server-side. A 204 response yields the
// [models.ImageExists] outcome; a 200 response yields [models.ImageNew]
// together with a presigned PUT URL for the image bytes.
func (c *Client) ImageUploadURL(ctx context.Context, imageID string) (models.ImageUploadOutcome, error) {
	var presigned models.PresignedURL

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&presigned).
		Get("/images/upload/" + imageID)
	if err != nil {
		return models.ImageUploadOutcome{}, fmt.Errorf("image upload url request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusNoContent:
		return models.ImageUploadOutcome{Kind: models.ImageExists}, nil
	case http.StatusOK:
		return models.ImageUploadOutcome{Kind: models.ImageNew, URL: presigned.URL}, nil
	default:
		return models.ImageUploadOutcome{}, mapServerError(resp, nil)
	}
}

// UploadImage stores the image bytes under imageID unless the server already
// has them. It reports true when the image was already present and no upload
// took place, false when the bytes were PUT to the presigned URL.
func (c *Client) UploadImage(ctx context.Context, imageID string, image []byte) (bool, error) {
	outcome, err := c.ImageUploadURL(ctx, imageID)
	if err != nil {
		return false, err
	}
	return c.resolveImageOutcome(ctx, imageID, outcome, image)
}

// resolveImageOutcome acts on an upload-URL check result: skip, PUT, or
// reject an outcome that matches neither variant.
func (c *Client) resolveImageOutcome(ctx context.Context, imageID string, outcome models.ImageUploadOutcome, image []byte) (bool, error) {
	switch outcome.Kind {
	case models.ImageExists:
		c.logger.Debug().Str("image_id", imageID).Msg("image already stored, skipping upload")
		return true, nil
	case models.ImageNew:
		if err := c.putBlob(ctx, outcome.URL, image); err != nil {
			return false, fmt.Errorf("upload image %s: %w", imageID, err)
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: image upload outcome %d", ErrUnexpectedVariant, outcome.Kind)
	}
}

// UploadInput stores an execution input supplied as a hex string (two hex
// characters per byte) and returns the server-issued input identifier.
//
// The first decoded byte is dropped before upload. The service expects
// exactly this framing; inputs serialized for the zkVM must account for it.
func (c *Client) UploadInput(ctx context.Context, hexInput string) (string, error) {
	data, err := hex.DecodeString(hexInput)
	if err != nil {
		return "", fmt.Errorf("decode input hex: %w", err)
	}
	if len(data) > 0 {
		data = data[1:]
	}

	return c.uploadBlob(ctx, "inputs", data)
}

// UploadReceipt stores raw receipt bytes, unmodified, and returns the
// server-issued receipt identifier. Stored receipts are referenced as
// assumptions when creating sessions.
func (c *Client) UploadReceipt(ctx context.Context, receipt []byte) (string, error) {
	return c.uploadBlob(ctx, "receipts", receipt)
}

// uploadBlob requests a fresh upload ticket from the given route, PUTs data
// to the presigned URL, and returns the identifier the blob is stored under.
func (c *Client) uploadBlob(ctx context.Context, route string, data []byte) (string, error) {
	var ticket models.UploadTicket

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&ticket).
		Get("/" + route + "/upload")
	if err != nil {
		return "", fmt.Errorf("%s upload ticket request: %w", route, err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return "", err
	}

	if err = c.putBlob(ctx, ticket.URL, data); err != nil {
		return "", fmt.Errorf("upload to %s: %w", route, err)
	}

	c.logger.Debug().Str("route", route).Str("uuid", ticket.UUID).Int("bytes", len(data)).Msg("blob uploaded")
	return ticket.UUID, nil
}

// putBlob PUTs raw bytes to an absolute presigned URL. Both transport
// failures and non-2xx responses surface as [ErrServer].
func (c *Client) putBlob(ctx context.Context, url string, data []byte) error {
	resp, err := c.transfer.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put(url)
	if err != nil {
		return fmt.Errorf("%w: put presigned url: %v", ErrServer, err)
	}
	return mapServerError(resp, nil)
}
