package handlers

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"
)

type cooldownKey struct {
	command string
	guildID snowflake.ID
	userID  snowflake.ID
}

// Cooldowns rate limits commands per member. The least recently used
// entries fall out first, which only ever shortens a cooldown.
type Cooldowns struct {
	mu    sync.Mutex
	until *lru.Cache
	now   func() time.Time
}

func NewCooldowns(size int) (*Cooldowns, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cooldowns{until: cache, now: time.Now}, nil
}

// Take starts a cooldown of d for the member unless one is running. It
// returns the time left on the running cooldown.
func (c *Cooldowns) Take(command string, guildID, userID snowflake.ID, d time.Duration) (time.Duration, bool) {
	key := cooldownKey{command: command, guildID: guildID, userID: userID}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.until.Get(key); ok {
		if left := v.(time.Time).Sub(now); left > 0 {
			return left, false
		}
	}
	c.until.Add(key, now.Add(d))
	return 0, true
}
