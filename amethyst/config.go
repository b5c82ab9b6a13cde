package amethyst

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvDatabaseURL  = "DATABASE_URL"
	EnvDiscordToken = "DISCORD_TOKEN"
)

var (
	ErrMissingDatabaseURL = errors.New("missing " + EnvDatabaseURL)
	ErrMissingToken       = errors.New("missing " + EnvDiscordToken)
)

// LoadConfig reads the TOML file at path (optional), applies .env and
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			slog.Warn("Config file not found, using environment only",
				slog.String("type", "sys"),
				slog.String("path", path))
		case err != nil:
			return nil, fmt.Errorf("failed to open config: %w", err)
		default:
			defer file.Close()
			if err = toml.NewDecoder(file).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config: %w", err)
			}
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Log:  LogConfig{Level: slog.LevelInfo},
		DB:   DBConfig{PoolSize: 10},
		HTTP: HTTPConfig{TimeoutSeconds: 30},
	}
}

type Config struct {
	Log        LogConfig        `toml:"log"`
	Bot        BotConfig        `toml:"bot"`
	DB         DBConfig         `toml:"db"`
	Spaces     SpacesConfig     `toml:"spaces"`
	HTTP       HTTPConfig       `toml:"http"`
	EasterEggs []EasterEggEntry `toml:"easter_eggs"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	// Owners may run owner commands. Empty means the application owner or team.
	Owners []snowflake.ID `toml:"owners"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type DBConfig struct {
	URL          string `toml:"url"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

// SpacesConfig enables GIF uploads to object storage when Bucket is set.
type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	Endpoint string `toml:"endpoint"`
	CDNURL   string `toml:"cdn_url"`
}

func (s SpacesConfig) Enabled() bool {
	return s.Bucket != "" && s.Key != "" && s.Secret != ""
}

type HTTPConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

func (h HTTPConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// EasterEggEntry replies to messages containing Contains. Zero GuildID or
// UserID match any guild or author.
type EasterEggEntry struct {
	GuildID  snowflake.ID `toml:"guild_id"`
	UserID   snowflake.ID `toml:"user_id"`
	Contains string       `toml:"contains"`
	Reply    string       `toml:"reply"`
}

func (e EasterEggEntry) Matches(guildID, authorID snowflake.ID, content string) bool {
	if e.GuildID != 0 && e.GuildID != guildID {
		return false
	}
	if e.UserID != 0 && e.UserID != authorID {
		return false
	}
	return strings.Contains(content, e.Contains)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvDatabaseURL)); v != "" {
		c.DB.URL = v
	}
	if v := strings.TrimSpace(getenv(EnvDiscordToken)); v != "" {
		c.Bot.Token = v
	}
}

func (c *Config) Validate() error {
	if c.DB.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Bot.Token == "" {
		return ErrMissingToken
	}
	for i, egg := range c.EasterEggs {
		if egg.Contains == "" || egg.Reply == "" {
			return fmt.Errorf("easter_eggs[%d]: contains and reply are required", i)
		}
	}
	return nil
}
