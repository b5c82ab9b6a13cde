// Package mtg looks Magic: The Gathering cards up on Scryfall.
package mtg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.scryfall.com"
	userAgent      = "Amethyst/1.0"
	maxBodyBytes   = 1 << 20
)

var (
	ErrMissingName      = errors.New("name is required")
	ErrMissingNameOrNum = errors.New("set needs a name or a collector number")
	ErrMissingSet       = errors.New("collector number needs a set")
	ErrUnavailable      = errors.New("scryfall unavailable")
)

// Query selects a card by fuzzy name, optionally within a set, or by set
// and collector number.
type Query struct {
	Name            string
	Set             string
	CollectorNumber int
}

func (q Query) Validate() error {
	switch {
	case q.Name == "" && q.Set == "" && q.CollectorNumber == 0:
		return ErrMissingName
	case q.Set != "" && q.Name == "" && q.CollectorNumber == 0:
		return ErrMissingNameOrNum
	case q.CollectorNumber != 0 && q.Set == "":
		return ErrMissingSet
	}
	return nil
}

func (q Query) path() string {
	set := strings.ToLower(q.Set)
	if q.CollectorNumber != 0 {
		return "/cards/" + url.PathEscape(set) + "/" + strconv.Itoa(q.CollectorNumber)
	}
	v := url.Values{}
	v.Set("fuzzy", q.Name)
	if set != "" {
		v.Set("set", set)
	}
	return "/cards/named?" + v.Encode()
}

// APIError is Scryfall's own error object, such as an unknown card.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scryfall %d %s: %s", e.Status, e.Code, e.Details)
}

type Face struct {
	Name       string            `json:"name"`
	ManaCost   string            `json:"mana_cost"`
	TypeLine   *string           `json:"type_line"`
	OracleText *string           `json:"oracle_text"`
	FlavorText *string           `json:"flavor_text"`
	Power      *string           `json:"power"`
	Toughness  *string           `json:"toughness"`
	Loyalty    *string           `json:"loyalty"`
	ImageURIs  map[string]string `json:"image_uris"`
}

type Card struct {
	Name        string            `json:"name"`
	ScryfallURI string            `json:"scryfall_uri"`
	ManaCost    *string           `json:"mana_cost"`
	TypeLine    string            `json:"type_line"`
	OracleText  *string           `json:"oracle_text"`
	FlavorText  *string           `json:"flavor_text"`
	Power       *string           `json:"power"`
	Toughness   *string           `json:"toughness"`
	Loyalty     *string           `json:"loyalty"`
	Set         string            `json:"set"`
	SetName     string            `json:"set_name"`
	Games       []string          `json:"games"`
	ImageStatus string            `json:"image_status"`
	ImageURIs   map[string]string `json:"image_uris"`
	CardFaces   []Face            `json:"card_faces"`
	Legalities  map[string]string `json:"legalities"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(timeout time.Duration, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Card runs q against Scryfall. Unknown cards come back as *APIError,
// transport and server failures wrap ErrUnavailable.
func (c *Client) Card(ctx context.Context, q Query) (*Card, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+q.path(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrUnavailable, err)
	}

	var envelope struct {
		Object string `json:"object"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrUnavailable, resp.StatusCode, err)
	}
	if envelope.Object == "error" {
		apiErr := new(APIError)
		if err = json.Unmarshal(body, apiErr); err != nil {
			return nil, fmt.Errorf("%w: decoding error: %w", ErrUnavailable, err)
		}
		if apiErr.Status >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
		}
		return nil, apiErr
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	card := new(Card)
	if err = json.Unmarshal(body, card); err != nil {
		return nil, fmt.Errorf("%w: decoding card: %w", ErrUnavailable, err)
	}
	return card, nil
}
