package quotes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sahilm/fuzzy"
)

const MaxLength = 500

var (
	ErrNotFound = errors.New("quote not found")
	ErrEmpty    = errors.New("no quotes saved in this server")
	ErrTooLong  = fmt.Errorf("quotes are limited to %d characters", MaxLength)
)

type Repository interface {
	NextID(ctx context.Context, guildID snowflake.ID) (int, error)
	Create(ctx context.Context, q *models.Quote) error
	Get(ctx context.Context, guildID snowflake.ID, quoteID int) (*models.Quote, error)
	List(ctx context.Context, guildID snowflake.ID) ([]*models.Quote, error)
	Count(ctx context.Context, guildID snowflake.ID) (int, error)
	Delete(ctx context.Context, guildID snowflake.ID, quoteID int) (bool, error)
}

// Author identifies one side of a quote.
type Author struct {
	ID          snowflake.ID
	DisplayName string
}

type Service struct {
	repository Repository
	now        func() time.Time
	intN       func(n int) int
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository, now: time.Now, intN: rand.IntN}
}

// Add appends a quote at the next dense ID. A concurrent add that takes the
// same ID is retried once.
func (s *Service) Add(ctx context.Context, guildID snowflake.ID, adder, sayer Author, text string) (*models.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("quote is empty")
	}
	if utf8.RuneCountInString(text) > MaxLength {
		return nil, ErrTooLong
	}

	q := &models.Quote{
		GuildID:          guildID,
		AdderID:          adder.ID,
		SayerID:          sayer.ID,
		Quote:            text,
		Timestamp:        s.now().UTC().Truncate(24 * time.Hour),
		AdderDisplayName: adder.DisplayName,
		SayerDisplayName: sayer.DisplayName,
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if q.QuoteID, err = s.repository.NextID(ctx, guildID); err != nil {
			return nil, fmt.Errorf("failed to allocate quote id: %w", err)
		}
		err = s.repository.Create(ctx, q)
		if !errors.Is(err, repositories.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	return q, nil
}

func (s *Service) Get(ctx context.Context, guildID snowflake.ID, quoteID int) (*models.Quote, error) {
	q, err := s.repository.Get(ctx, guildID, quoteID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}
	return q, nil
}

// Random picks a uniformly random quote using the dense ID range.
func (s *Service) Random(ctx context.Context, guildID snowflake.ID) (*models.Quote, error) {
	n, err := s.repository.Count(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	if n == 0 {
		return nil, ErrEmpty
	}
	return s.Get(ctx, guildID, s.intN(n)+1)
}

func (s *Service) Delete(ctx context.Context, guildID snowflake.ID, quoteID int) error {
	if quoteID < 1 {
		return ErrNotFound
	}
	found, err := s.repository.Delete(ctx, guildID, quoteID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context, guildID snowflake.ID) ([]*models.Quote, error) {
	quotes, err := s.repository.List(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, ErrEmpty
	}
	return quotes, nil
}

type searchSource []*models.Quote

func (s searchSource) String(i int) string { return s[i].Quote }

func (s searchSource) Len() int { return len(s) }

// Search ranks the guild's quotes by fuzzy match against text.
func (s *Service) Search(ctx context.Context, guildID snowflake.ID, text string, limit int) ([]*models.Quote, error) {
	quotes, err := s.List(ctx, guildID)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(text, searchSource(quotes))
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	found := make([]*models.Quote, len(matches))
	for i, m := range matches {
		found[i] = quotes[m.Index]
	}
	return found, nil
}
