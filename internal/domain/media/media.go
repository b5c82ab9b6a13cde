package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sahilm/fuzzy"
)

const (
	MaxPerType    = 10
	MaxNameLength = 30
)

var (
	ErrOverLimit   = fmt.Errorf("a category holds at most %d gifs", MaxPerType)
	ErrNotFound    = errors.New("gif not found")
	ErrInvalidType = errors.New("unknown gif type")
	ErrInvalidName = fmt.Errorf("gif names must be 1-%d characters", MaxNameLength)
)

type GifType string

const (
	Birthday    GifType = "birthday"
	Cake        GifType = "cake"
	Cookie      GifType = "cookie"
	CookieSelf  GifType = "cookie_self"
	Slap        GifType = "slap"
	SlapSelf    GifType = "slap_self"
	Tea         GifType = "tea"
	Hug         GifType = "hug"
	BombTime    GifType = "bomb_time"
	BombFailure GifType = "bomb_failure"
	BombDefuse  GifType = "bomb_defuse"
)

var GifTypes = []GifType{Birthday, Cake, Cookie, CookieSelf, Slap, SlapSelf, Tea, Hug, BombTime, BombFailure, BombDefuse}

func ParseGifType(s string) (GifType, error) {
	for _, t := range GifTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Entry is one catalogued gif. IDs are 1-based and contiguous per type.
type Entry struct {
	ID   int
	Name string
	URL  string
}

type Repository interface {
	Count(ctx context.Context, guildID snowflake.ID, gifType string) (int, error)
	Create(ctx context.Context, gif *models.CustomGif, limit int) error
	List(ctx context.Context, guildID snowflake.ID, gifType string) ([]*models.CustomGif, error)
	Delete(ctx context.Context, guildID snowflake.ID, gifType string, gifID int) (bool, error)
}

// Storage persists gif bytes and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// ObjectKey is where an uploaded gif lives. The name is URL-safe base64 so
// any UTF-8 survives as a path segment.
func ObjectKey(guildID snowflake.ID, gifType GifType, name string) string {
	return fmt.Sprintf("CustomGIFs/%s/%s/%s.gif", guildID, gifType, base64.URLEncoding.EncodeToString([]byte(name)))
}

type Registry struct {
	repository Repository
	storage    Storage
	intN       func(n int) int
}

func NewRegistry(repository Repository) *Registry {
	return &Registry{repository: repository, intN: rand.IntN}
}

// WithStorage makes AddFile keep its own copy of uploaded gifs.
func (r *Registry) WithStorage(s Storage) *Registry {
	r.storage = s
	return r
}

func validName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n > 0 && n <= MaxNameLength
}

func (r *Registry) checkRoom(ctx context.Context, guildID snowflake.ID, gifType GifType, name string) error {
	if !validName(name) {
		return ErrInvalidName
	}
	count, err := r.repository.Count(ctx, guildID, string(gifType))
	if err != nil {
		return fmt.Errorf("failed to count gifs: %w", err)
	}
	if count >= MaxPerType {
		return ErrOverLimit
	}
	return nil
}

func (r *Registry) Add(ctx context.Context, guildID snowflake.ID, gifType GifType, name, url string) (Entry, error) {
	if err := r.checkRoom(ctx, guildID, gifType, name); err != nil {
		return Entry{}, err
	}
	return r.create(ctx, guildID, gifType, name, url)
}

// AddFile registers an attachment. With storage configured the bytes are
// uploaded under ObjectKey and that URL is kept, otherwise sourceURL is.
func (r *Registry) AddFile(ctx context.Context, guildID snowflake.ID, gifType GifType, name string, fetch func(ctx context.Context) ([]byte, error), sourceURL string) (Entry, error) {
	if err := r.checkRoom(ctx, guildID, gifType, name); err != nil {
		return Entry{}, err
	}

	url := sourceURL
	if r.storage != nil {
		data, err := fetch(ctx)
		if err != nil {
			return Entry{}, fmt.Errorf("failed to fetch gif: %w", err)
		}
		if url, err = r.storage.Upload(ctx, ObjectKey(guildID, gifType, strings.TrimSpace(name)), data); err != nil {
			return Entry{}, err
		}
	}
	return r.create(ctx, guildID, gifType, name, url)
}

func (r *Registry) create(ctx context.Context, guildID snowflake.ID, gifType GifType, name, url string) (Entry, error) {
	gif := &models.CustomGif{
		GuildID: guildID,
		GifType: string(gifType),
		GifURL:  url,
		GifName: strings.TrimSpace(name),
	}
	err := r.repository.Create(ctx, gif, MaxPerType)
	if errors.Is(err, repositories.ErrDuplicate) {
		err = r.repository.Create(ctx, gif, MaxPerType)
	}
	if errors.Is(err, repositories.ErrFull) {
		return Entry{}, ErrOverLimit
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to add gif: %w", err)
	}
	return Entry{ID: gif.GifID, Name: gif.GifName, URL: gif.GifURL}, nil
}

func (r *Registry) Delete(ctx context.Context, guildID snowflake.ID, gifType GifType, id int) error {
	if id < 1 {
		return ErrNotFound
	}
	found, err := r.repository.Delete(ctx, guildID, string(gifType), id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (r *Registry) List(ctx context.Context, guildID snowflake.ID, gifType GifType) ([]Entry, error) {
	gifs, err := r.repository.List(ctx, guildID, string(gifType))
	if err != nil {
		return nil, fmt.Errorf("failed to list gifs: %w", err)
	}
	entries := make([]Entry, len(gifs))
	for i, g := range gifs {
		entries[i] = Entry{ID: g.GifID, Name: g.GifName, URL: g.GifURL}
	}
	return entries, nil
}

// Random returns nil when the category is empty.
func (r *Registry) Random(ctx context.Context, guildID snowflake.ID, gifType GifType) (*Entry, error) {
	entries, err := r.List(ctx, guildID, gifType)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	e := entries[r.intN(len(entries))]
	return &e, nil
}

// RandomURL is Random for callers that only embed the image.
func (r *Registry) RandomURL(ctx context.Context, guildID snowflake.ID, gifType GifType) string {
	e, err := r.Random(ctx, guildID, gifType)
	if err != nil || e == nil {
		return ""
	}
	return e.URL
}

type entryNames []Entry

func (e entryNames) String(i int) string { return e[i].Name }

func (e entryNames) Len() int { return len(e) }

// Rank orders entries by how well their name fuzzily matches query. An empty
// query keeps every entry in ID order.
func Rank(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, entryNames(entries))
	ranked := make([]Entry, len(matches))
	for i, m := range matches {
		ranked[i] = entries[m.Index]
	}
	return ranked
}
