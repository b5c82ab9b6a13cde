package birthday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
)

var (
	ErrExists        = errors.New("birthday already saved")
	ErrNotFound      = errors.New("birthday not saved")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNothingToEdit = errors.New("nothing to edit")
)

type Repository interface {
	Create(ctx context.Context, b *models.Birthday) error
	Get(ctx context.Context, guildID, userID snowflake.ID) (*models.Birthday, error)
	Update(ctx context.Context, b *models.Birthday) error
	Delete(ctx context.Context, guildID, userID snowflake.ID) (bool, error)
	ListByGuild(ctx context.Context, guildID snowflake.ID, month int) ([]*models.Birthday, error)
}

// Edit carries the optional fields of a birthday update.
type Edit struct {
	Month    *int
	Day      *int
	Nickname *string
}

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

func (s *Service) Add(ctx context.Context, guildID, userID snowflake.ID, month, day int, nickname *string) error {
	if !ValidDate(month, day) {
		return ErrInvalidDate
	}
	err := s.repository.Create(ctx, &models.Birthday{
		GuildID:    guildID,
		UserID:     userID,
		BirthMonth: month,
		BirthDay:   day,
		Nickname:   nickname,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrExists
	}
	return err
}

func (s *Service) Get(ctx context.Context, guildID, userID snowflake.ID) (*models.Birthday, error) {
	b, err := s.repository.Get(ctx, guildID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load birthday: %w", err)
	}
	return b, nil
}

func (s *Service) Edit(ctx context.Context, guildID, userID snowflake.ID, edit Edit) (*models.Birthday, error) {
	if edit.Month == nil && edit.Day == nil && edit.Nickname == nil {
		return nil, ErrNothingToEdit
	}

	b, err := s.Get(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}

	if edit.Month != nil {
		b.BirthMonth = *edit.Month
	}
	if edit.Day != nil {
		b.BirthDay = *edit.Day
	}
	if edit.Nickname != nil {
		b.Nickname = edit.Nickname
	}
	if !ValidDate(b.BirthMonth, b.BirthDay) {
		return nil, ErrInvalidDate
	}

	if err = s.repository.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update birthday: %w", err)
	}
	return b, nil
}

func (s *Service) Remove(ctx context.Context, guildID, userID snowflake.ID) error {
	found, err := s.repository.Delete(ctx, guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove birthday: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// List returns the guild's birthdays ordered by date; month 0 lists all.
func (s *Service) List(ctx context.Context, guildID snowflake.ID, month int) ([]*models.Birthday, error) {
	if month < 0 || month > 12 {
		return nil, ErrInvalidDate
	}
	return s.repository.ListByGuild(ctx, guildID, month)
}
