package amethyst

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[log]
level = "debug"

[bot]
dev_guilds = [123]
token = "file-token"
owners = [7]

[db]
url = "postgres://file"
pool_size = 4

[[easter_eggs]]
user_id = 42
contains = "Desiner"
reply = "Desiner"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_LoadConfig(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvDiscordToken, "")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, []snowflake.ID{123}, cfg.Bot.DevGuilds)
	assert.Equal(t, "file-token", cfg.Bot.Token)
	assert.Equal(t, []snowflake.ID{7}, cfg.Bot.Owners)
	assert.Equal(t, "postgres://file", cfg.DB.URL)
	assert.Equal(t, 4, cfg.DB.PoolSize)
	require.Len(t, cfg.EasterEggs, 1)
	assert.Equal(t, snowflake.ID(42), cfg.EasterEggs[0].UserID)
	assert.False(t, cfg.Spaces.Enabled())
}

func Test_LoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://env")
	t.Setenv(EnvDiscordToken, "env-token")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.DB.URL)
	assert.Equal(t, "env-token", cfg.Bot.Token)
}

func Test_LoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://env")
	t.Setenv(EnvDiscordToken, "env-token")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, 10, cfg.DB.PoolSize)
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "missing database url", cfg: Config{Bot: BotConfig{Token: "t"}}, wantErr: ErrMissingDatabaseURL},
		{name: "missing token", cfg: Config{DB: DBConfig{URL: "u"}}, wantErr: ErrMissingToken},
		{name: "ok", cfg: Config{DB: DBConfig{URL: "u"}, Bot: BotConfig{Token: "t"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	bad := Config{DB: DBConfig{URL: "u"}, Bot: BotConfig{Token: "t"}, EasterEggs: []EasterEggEntry{{Contains: "x"}}}
	assert.Error(t, bad.Validate())
}

func Test_HTTPConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, HTTPConfig{}.Timeout())
	assert.Equal(t, 5*time.Second, HTTPConfig{TimeoutSeconds: 5}.Timeout())
}

func Test_EasterEggEntry_Matches(t *testing.T) {
	egg := EasterEggEntry{GuildID: 1, UserID: 42, Contains: "Desiner", Reply: "Desiner"}

	tests := []struct {
		name    string
		guild   snowflake.ID
		author  snowflake.ID
		content string
		want    bool
	}{
		{name: "match", guild: 1, author: 42, content: "hi Desiner!", want: true},
		{name: "other author", guild: 1, author: 7, content: "Desiner"},
		{name: "other guild", guild: 2, author: 42, content: "Desiner"},
		{name: "case sensitive", guild: 1, author: 42, content: "desiner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, egg.Matches(tt.guild, tt.author, tt.content))
		})
	}

	assert.True(t, EasterEggEntry{Contains: "x"}.Matches(9, 9, "xyz"))
}
