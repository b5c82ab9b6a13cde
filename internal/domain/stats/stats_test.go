package stats

import (
	"context"
	"database/sql"
	"testing"

	"github.com/amethystbot/amethyst/internal/domain/stats/mock"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	users  *mock.MockRepository
	quotes *mock.MockQuoteCounter
	voice  *mock.MockVoiceBoard
	vct    *mock.MockRechecker
}

func newService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:  mock.NewMockRepository(ctrl),
		quotes: mock.NewMockQuoteCounter(ctrl),
		voice:  mock.NewMockVoiceBoard(ctrl),
		vct:    mock.NewMockRechecker(ctrl),
	}
	return NewService(m.users, m.quotes, m.voice, m.vct), m
}

func Test_Service_UserStats(t *testing.T) {
	s, m := newService(t)
	channel := snowflake.ID(50)

	gomock.InOrder(
		m.vct.EXPECT().Recheck(gomock.Any(), snowflake.ID(1), snowflake.ID(2), &channel).Return(nil),
		m.quotes.EXPECT().CountByUser(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(repositories.QuoteCounts{Added: 3, Said: 1}, nil),
		m.users.EXPECT().Get(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(&models.User{CookieSent: 4}, nil),
	)

	got, err := s.UserStats(context.Background(), 1, 2, &channel)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Quotes.Added)
	assert.Equal(t, int64(4), got.User.CookieSent)
}

func Test_Service_UserStats_Missing(t *testing.T) {
	s, m := newService(t)
	m.vct.EXPECT().Recheck(gomock.Any(), snowflake.ID(1), snowflake.ID(2), nil).Return(nil)
	m.quotes.EXPECT().CountByUser(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(repositories.QuoteCounts{}, nil)
	m.users.EXPECT().Get(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(nil, sql.ErrNoRows)

	_, err := s.UserStats(context.Background(), 1, 2, nil)
	assert.ErrorIs(t, err, ErrNoStats)
}

func Test_Service_ServerStats(t *testing.T) {
	s, m := newService(t)
	m.users.EXPECT().GuildTotals(gomock.Any(), snowflake.ID(1)).Return(&models.GuildTotals{Members: 12, VCTotalTime: 90061}, nil)
	m.quotes.EXPECT().Count(gomock.Any(), snowflake.ID(1)).Return(7, nil)

	got, err := s.ServerStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Totals.Members)
	assert.Equal(t, 7, got.Quotes)
}

func Test_Service_VCTop(t *testing.T) {
	tests := []struct {
		name      string
		timeframe Timeframe
		column    repositories.VoiceColumn
	}{
		{name: "all time", timeframe: AllTime, column: repositories.VoiceTotal},
		{name: "monthly", timeframe: Monthly, column: repositories.VoiceMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newService(t)
			entries := []repositories.VoiceEntry{{UserID: 2, DisplayName: "amy", Seconds: 3600}}
			gomock.InOrder(
				m.vct.EXPECT().RecheckGuild(gomock.Any(), snowflake.ID(1), gomock.Any()).Return(nil),
				m.voice.EXPECT().Top(gomock.Any(), snowflake.ID(1), tt.column, LeaderboardSize).Return(entries, nil),
			)

			got, err := s.VCTop(context.Background(), 1, tt.timeframe, func(snowflake.ID) *snowflake.ID { return nil })
			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func Test_Timeframe_Toggle(t *testing.T) {
	assert.Equal(t, Monthly, AllTime.Toggle())
	assert.Equal(t, AllTime, Monthly.Toggle())
}

func Test_FormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", FormatDuration(0))
	assert.Equal(t, "1h 1m 1s", FormatDuration(3661))
	assert.Equal(t, "26h 0m 5s", FormatDuration(93605))
	assert.Equal(t, "0h 0m 0s", FormatDuration(-5))
	assert.Equal(t, "1d 1h 1m 1s", FormatLongDuration(90061))
}
