package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrTooLarge = errors.New("file is too large")
	// ErrDownload marks failures of the remote host rather than the caller.
	ErrDownload = errors.New("download failed")
)

// Downloader fetches attachments over HTTP with a hard per-request timeout.
type Downloader struct {
	client   *http.Client
	maxBytes int64
}

func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	return &Downloader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrDownload, resp.StatusCode)
	}
	if resp.ContentLength > d.maxBytes {
		return nil, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrDownload, err)
	}
	if int64(len(data)) > d.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
