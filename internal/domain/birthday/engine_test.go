package birthday_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/amethystbot/amethyst/internal/domain/birthday"
	"github.com/amethystbot/amethyst/internal/domain/birthday/mock"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	guilds    *mock.MockGuildSource
	birthdays *mock.MockRepository
	names     *mock.MockNameSource
	gifs      *mock.MockGifSource
	platform  *mock.MockPlatform
}

func newEngine(t *testing.T, at time.Time) (*birthday.Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		guilds:    mock.NewMockGuildSource(ctrl),
		birthdays: mock.NewMockRepository(ctrl),
		names:     mock.NewMockNameSource(ctrl),
		gifs:      mock.NewMockGifSource(ctrl),
		platform:  mock.NewMockPlatform(ctrl),
	}
	e := birthday.NewEngine(m.guilds, m.birthdays, m.names, m.gifs, m.platform).
		WithClock(func() time.Time { return at })
	return e, m
}

func id(v snowflake.ID) *snowflake.ID { return &v }

func Test_Engine_Run_AnnouncesAndRotatesRole(t *testing.T) {
	const guild, channel, role = snowflake.ID(1), snowflake.ID(10), snowflake.ID(20)
	e, m := newEngine(t, time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC))

	m.guilds.EXPECT().ListWithBirthdayChannel(gomock.Any()).Return([]*models.GuildSettings{
		{GuildID: guild, BirthdayChannel: id(channel), BirthdayRole: id(role)},
	}, nil)
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), guild, 0).Return([]*models.Birthday{
		{GuildID: guild, UserID: 100, BirthMonth: 7, BirthDay: 15},
		{GuildID: guild, UserID: 200, BirthMonth: 3, BirthDay: 2},
		{GuildID: guild, UserID: 300, BirthMonth: 7, BirthDay: 16},
	}, nil)
	m.names.EXPECT().DisplayName(gomock.Any(), guild, snowflake.ID(100)).Return("Amy", nil)
	m.gifs.EXPECT().RandomURL(gomock.Any(), guild, media.Birthday).Return("https://example.com/cake.gif")

	m.platform.EXPECT().SendGreeting(gomock.Any(), birthday.Greeting{
		GuildID:   guild,
		ChannelID: channel,
		UserID:    100,
		Name:      "Amy",
		GifURL:    "https://example.com/cake.gif",
	}).Return(nil).Times(1)
	m.platform.EXPECT().AddRole(gomock.Any(), guild, snowflake.ID(100), role).Return(nil)
	m.platform.EXPECT().RemoveRole(gomock.Any(), guild, snowflake.ID(200), role).Return(nil)
	// departed member: failure is logged, not fatal
	m.platform.EXPECT().RemoveRole(gomock.Any(), guild, snowflake.ID(300), role).Return(errors.New("unknown member"))

	require.NoError(t, e.Run(context.Background()))
}

func Test_Engine_Run_NicknameAndNoRole(t *testing.T) {
	const guild, channel = snowflake.ID(1), snowflake.ID(10)
	nick := "Birthday Girl"
	e, m := newEngine(t, time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC))

	m.guilds.EXPECT().ListWithBirthdayChannel(gomock.Any()).Return([]*models.GuildSettings{
		{GuildID: guild, BirthdayChannel: id(channel)},
	}, nil)
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), guild, 0).Return([]*models.Birthday{
		{GuildID: guild, UserID: 100, BirthMonth: 1, BirthDay: 1, Nickname: &nick},
		{GuildID: guild, UserID: 200, BirthMonth: 5, BirthDay: 5},
	}, nil)
	m.gifs.EXPECT().RandomURL(gomock.Any(), guild, media.Birthday).Return("")
	m.platform.EXPECT().SendGreeting(gomock.Any(), gomock.Cond(func(g birthday.Greeting) bool {
		return g.Name == nick && g.GifURL == ""
	})).Return(nil)

	require.NoError(t, e.Run(context.Background()))
}

func Test_Engine_Run_FallsBackToMemberProfile(t *testing.T) {
	const guild = snowflake.ID(1)
	e, m := newEngine(t, time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC))

	m.guilds.EXPECT().ListWithBirthdayChannel(gomock.Any()).Return([]*models.GuildSettings{
		{GuildID: guild, BirthdayChannel: id(5)},
	}, nil)
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), guild, 0).Return([]*models.Birthday{
		{GuildID: guild, UserID: 100, BirthMonth: 3, BirthDay: 9},
	}, nil)
	m.names.EXPECT().DisplayName(gomock.Any(), guild, snowflake.ID(100)).Return("", sql.ErrNoRows)
	global := "Amy Pond"
	m.platform.EXPECT().Profile(gomock.Any(), guild, snowflake.ID(100)).
		Return(identity.Profile{UserID: 100, GlobalName: &global, Username: "amy"}, nil)
	m.gifs.EXPECT().RandomURL(gomock.Any(), guild, media.Birthday).Return("")
	m.platform.EXPECT().SendGreeting(gomock.Any(), gomock.Cond(func(g birthday.Greeting) bool {
		return g.Name == global
	})).Return(nil)

	require.NoError(t, e.Run(context.Background()))
}

func Test_Engine_Run_GuildFailureIsIsolated(t *testing.T) {
	e, m := newEngine(t, time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC))

	m.guilds.EXPECT().ListWithBirthdayChannel(gomock.Any()).Return([]*models.GuildSettings{
		{GuildID: 1, BirthdayChannel: id(5)},
		{GuildID: 2, BirthdayChannel: id(6)},
	}, nil)
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), snowflake.ID(1), 0).Return(nil, errors.New("timeout"))
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), snowflake.ID(2), 0).Return(nil, nil)

	require.NoError(t, e.Run(context.Background()))
}

func Test_Engine_Run_FailedGreetingDoesNotStopGuild(t *testing.T) {
	const guild, channel, role = snowflake.ID(1), snowflake.ID(10), snowflake.ID(20)
	e, m := newEngine(t, time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC))

	m.guilds.EXPECT().ListWithBirthdayChannel(gomock.Any()).Return([]*models.GuildSettings{
		{GuildID: guild, BirthdayChannel: id(channel), BirthdayRole: id(role)},
	}, nil)
	m.birthdays.EXPECT().ListByGuild(gomock.Any(), guild, 0).Return([]*models.Birthday{
		{GuildID: guild, UserID: 100, BirthMonth: 7, BirthDay: 15},
		{GuildID: guild, UserID: 150, BirthMonth: 7, BirthDay: 15},
		{GuildID: guild, UserID: 200, BirthMonth: 1, BirthDay: 2},
	}, nil)
	m.names.EXPECT().DisplayName(gomock.Any(), guild, gomock.Any()).Return("member", nil).Times(2)
	m.gifs.EXPECT().RandomURL(gomock.Any(), guild, media.Birthday).Return("").Times(2)

	m.platform.EXPECT().SendGreeting(gomock.Any(), gomock.Cond(func(g birthday.Greeting) bool {
		return g.UserID == 100
	})).Return(errors.New("missing access"))
	m.platform.EXPECT().SendGreeting(gomock.Any(), gomock.Cond(func(g birthday.Greeting) bool {
		return g.UserID == 150
	})).Return(nil)
	m.platform.EXPECT().AddRole(gomock.Any(), guild, snowflake.ID(150), role).Return(nil)
	m.platform.EXPECT().RemoveRole(gomock.Any(), guild, snowflake.ID(200), role).Return(nil)

	require.NoError(t, e.Run(context.Background()))
}
