package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cooldowns_Take(t *testing.T) {
	c, err := NewCooldowns(16)
	require.NoError(t, err)

	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }

	_, ok := c.Take("welcome", 1, 2, 5*time.Second)
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	left, ok := c.Take("welcome", 1, 2, 5*time.Second)
	assert.False(t, ok)
	assert.Equal(t, 3*time.Second, left)

	_, ok = c.Take("welcome", 1, 3, 5*time.Second)
	assert.True(t, ok, "other members are not limited")
	_, ok = c.Take("boost", 1, 2, 5*time.Second)
	assert.True(t, ok, "other commands are not limited")

	now = now.Add(3 * time.Second)
	_, ok = c.Take("welcome", 1, 2, 5*time.Second)
	assert.True(t, ok)
}

func Test_Wrapper_isOwner(t *testing.T) {
	w := NewWrapper(nil, nil)
	assert.False(t, w.isOwner(1), "nobody owns the bot by default")

	w.WithOwners(1, 2)
	assert.True(t, w.isOwner(1))
	assert.True(t, w.isOwner(2))
	assert.False(t, w.isOwner(3))
}

func Test_CooldownMessage(t *testing.T) {
	assert.Equal(t, "Slow down! Try again in 3s.", CooldownMessage(2100*time.Millisecond))
	assert.Equal(t, "Slow down! Try again in 1s.", CooldownMessage(time.Millisecond))
}

func Test_permissionName(t *testing.T) {
	assert.Equal(t, "Manage Channels", permissionName(discord.PermissionManageChannels))
	assert.Equal(t, "required", permissionName(discord.PermissionSpeak))
}

func Test_splitCustomID(t *testing.T) {
	tests := []struct {
		customID   string
		wantGame   string
		wantPrefix string
		wantValue  string
		wantOK     bool
	}{
		{customID: "bomb:123:red", wantGame: "bomb", wantPrefix: "bomb:123:", wantValue: "red", wantOK: true},
		{customID: "rps:9:rock:extra", wantGame: "rps", wantPrefix: "rps:9:", wantValue: "rock:extra", wantOK: true},
		{customID: "/claim/1"},
		{customID: "bomb::red"},
	}

	for _, tt := range tests {
		t.Run(tt.customID, func(t *testing.T) {
			game, prefix, value, ok := splitCustomID(tt.customID)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantGame, game)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func Test_Collectors(t *testing.T) {
	c := NewCollectors("bomb", "rps")
	col := c.Open("bomb", 55)
	assert.Equal(t, "bomb:55:red", col.CustomID("red"))

	known, delivered := c.deliver(col.CustomID("red"), 7)
	assert.True(t, known)
	assert.True(t, delivered)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	press, ok := col.Next(ctx)
	require.True(t, ok)
	assert.EqualValues(t, 7, press.UserID)
	assert.Equal(t, "red", press.Value)

	known, delivered = c.deliver("rps:55:rock", 7)
	assert.True(t, known)
	assert.False(t, delivered, "no rps game open for that interaction")

	known, _ = c.deliver("paginator:1:next", 7)
	assert.False(t, known)

	col.Close()
	_, delivered = c.deliver(col.CustomID("red"), 7)
	assert.False(t, delivered)

	expired, cancelExpired := context.WithCancel(context.Background())
	cancelExpired()
	_, ok = col.Next(expired)
	assert.False(t, ok)
}

func Test_IsBoostMessage(t *testing.T) {
	tests := []struct {
		t    discord.MessageType
		want bool
	}{
		{t: discord.MessageTypeDefault},
		{t: discord.MessageTypeGuildBoost, want: true},
		{t: discord.MessageTypeGuildBoostTier1, want: true},
		{t: discord.MessageTypeGuildBoostTier2, want: true},
		{t: discord.MessageTypeGuildBoostTier3, want: true},
		{t: discord.MessageTypeChannelFollowAdd},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBoostMessage(tt.t), "type %d", tt.t)
	}
}

func Test_AnnouncementEmbeds(t *testing.T) {
	msg := "Glad you're here"
	image := "https://example.com/w.gif"
	a := &models.Announcement{Message: &msg, ImageURL: &image}

	welcome := WelcomeEmbed("Amy", "https://cdn/avatar.png", a)
	assert.Equal(t, "Welcome, Amy!", welcome.Title)
	assert.Equal(t, msg, welcome.Description)
	assert.Equal(t, config.WelcomeColor, welcome.Color)
	require.NotNil(t, welcome.Thumbnail)
	assert.Equal(t, "https://cdn/avatar.png", welcome.Thumbnail.URL)
	require.NotNil(t, welcome.Image)
	assert.Equal(t, image, welcome.Image.URL)

	boost := BoostEmbed("Bo", "", &models.Announcement{})
	assert.Equal(t, "Thank you for boosting, Bo!", boost.Title)
	assert.Empty(t, boost.Description)
	assert.Nil(t, boost.Thumbnail)
	assert.Nil(t, boost.Image)

	assert.Equal(t, "***Amy has left the server.***", LeaveMessage("Amy"))
}
