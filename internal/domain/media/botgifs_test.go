package media

import (
	"context"
	"errors"
	"testing"

	"github.com/amethystbot/amethyst/internal/domain/media/mock"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var botGifDefaults = map[BotGif]string{
	Glados:        "https://example.com/glados.gif",
	RouletteClick: "https://example.com/click.gif",
	RouletteFire:  "https://example.com/bang.gif",
}

func Test_BotGif_ColumnsAreKnown(t *testing.T) {
	for _, g := range BotGifKinds {
		assert.True(t, g.column().Valid(), "column for %s", g)
	}
	assert.Equal(t, repositories.RouletteFireGif, RouletteFire.column())
}

func Test_BotGifs_Set(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "https", url: "https://media.tenor.com/x.gif"},
		{name: "http", url: "http://example.com/x.gif"},
		{name: "no scheme", url: "media.tenor.com/x.gif", wantErr: ErrInvalidURL},
		{name: "other scheme", url: "ftp://example.com/x.gif", wantErr: ErrInvalidURL},
		{name: "sql", url: "'); DROP TABLE users; --", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockBotGifRepository(gomock.NewController(t))
			if tt.wantErr == nil {
				repo.EXPECT().SetGif(gomock.Any(), repositories.GladosGif, tt.url).Return(nil)
			}

			err := NewBotGifs(repo, botGifDefaults).Set(context.Background(), Glados, tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_BotGifs_URL(t *testing.T) {
	stored := "https://example.com/custom.gif"
	empty := ""
	repo := mock.NewMockBotGifRepository(gomock.NewController(t))
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any()).Return(&models.BotSettings{ID: 1, RouletteFireGif: &stored}, nil),
		repo.EXPECT().Get(gomock.Any()).Return(&models.BotSettings{ID: 1, RouletteClickGif: &empty}, nil),
		repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused")),
	)
	gifs := NewBotGifs(repo, botGifDefaults)
	ctx := context.Background()

	assert.Equal(t, stored, gifs.URL(ctx, RouletteFire))
	assert.Equal(t, botGifDefaults[RouletteClick], gifs.URL(ctx, RouletteClick))
	assert.Equal(t, botGifDefaults[Glados], gifs.URL(ctx, Glados))
}

func Test_ParseBotGif(t *testing.T) {
	got, err := ParseBotGif("roulette_click")
	require.NoError(t, err)
	assert.Equal(t, RouletteClick, got)

	_, err = ParseBotGif("roulette")
	assert.ErrorIs(t, err, ErrInvalidType)
}
