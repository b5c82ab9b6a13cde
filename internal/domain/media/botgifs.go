package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
)

var ErrInvalidURL = errors.New("gif url must be an absolute http(s) url")

// BotGif is an image the bot itself shows, shared by every guild.
type BotGif string

const (
	Glados        BotGif = "glados"
	RouletteClick BotGif = "roulette_click"
	RouletteFire  BotGif = "roulette_fire"
)

var BotGifKinds = []BotGif{Glados, RouletteClick, RouletteFire}

func (g BotGif) column() repositories.BotGifColumn {
	return repositories.BotGifColumn(string(g) + "_gif")
}

func (g BotGif) stored(s *models.BotSettings) *string {
	switch g {
	case Glados:
		return s.GladosGif
	case RouletteClick:
		return s.RouletteClickGif
	case RouletteFire:
		return s.RouletteFireGif
	}
	return nil
}

func ParseBotGif(s string) (BotGif, error) {
	for _, g := range BotGifKinds {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

type BotGifRepository interface {
	Get(ctx context.Context) (*models.BotSettings, error)
	SetGif(ctx context.Context, column repositories.BotGifColumn, url string) error
}

// BotGifs serves owner-configured images with built-in fallbacks.
type BotGifs struct {
	repository BotGifRepository
	defaults   map[BotGif]string
}

func NewBotGifs(repository BotGifRepository, defaults map[BotGif]string) *BotGifs {
	return &BotGifs{repository: repository, defaults: defaults}
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

func (b *BotGifs) Set(ctx context.Context, gif BotGif, rawURL string) error {
	if !validURL(rawURL) {
		return ErrInvalidURL
	}
	return b.repository.SetGif(ctx, gif.column(), rawURL)
}

// URL never fails; a store error is logged and the default is used.
func (b *BotGifs) URL(ctx context.Context, gif BotGif) string {
	settings, err := b.repository.Get(ctx)
	if err != nil {
		slog.Warn("Failed to load bot gifs",
			slog.String("type", "db"),
			slog.String("gif", string(gif)),
			slog.Any("error", err))
		return b.defaults[gif]
	}
	if v := gif.stored(settings); v != nil && *v != "" {
		return *v
	}
	return b.defaults[gif]
}
