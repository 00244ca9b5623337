package worldcup

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/golazoapps/mundialito/internal/mundial"
)

// Cache holds the fetched reference collections. It is read-mostly:
// entries are immutable once loaded, except for explicit
// append-on-registration. Concurrent first loads are collapsed into a
// single fetch.
type Cache struct {
	client *Client
	logger *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	loaded      bool
	countries   []mundial.Country
	tournaments []mundial.Tournament
	players     []mundial.Player
	positions   []mundial.Position
}

func NewCache(client *Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// Load fetches all four collections. Any individual fetch failure is
// logged and leaves that collection empty rather than failing the
// load: the game degrades instead of crashing. Single attempt per
// fetch, no retries.
func (c *Cache) Load(ctx context.Context) {
	countries, err := c.client.Countries(ctx)
	if err != nil {
		c.logger.Error("loading countries", "error", err)
	}

	tournaments, err := c.client.Tournaments(ctx)
	if err != nil {
		c.logger.Error("loading tournaments", "error", err)
	}

	positions, err := c.client.Positions(ctx)
	if err != nil {
		c.logger.Error("loading positions", "error", err)
	}

	var players []mundial.Player
	for _, t := range tournaments {
		squad, err := c.client.TournamentPlayers(ctx, t.ID)
		if err != nil {
			c.logger.Error("loading tournament roster", "tournament_id", t.ID, "year", t.Year, "error", err)
			continue
		}
		players = append(players, squad...)
	}

	c.mu.Lock()
	c.countries = countries
	c.tournaments = tournaments
	c.positions = positions
	c.players = players
	c.loaded = true
	c.mu.Unlock()

	c.logger.Info("reference data loaded",
		"countries", len(countries),
		"tournaments", len(tournaments),
		"players", len(players),
		"positions", len(positions),
	)
}

// ensure runs Load once if the cache is empty, collapsing concurrent
// callers into a single flight.
func (c *Cache) ensure(ctx context.Context) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return
	}
	c.group.Do("load", func() (any, error) {
		c.Load(ctx)
		return nil, nil
	})
}

// Refresh discards the cached collections and reloads them.
func (c *Cache) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
	c.ensure(ctx)
}

// Countries returns the cached champion countries, loading lazily.
func (c *Cache) Countries(ctx context.Context) []mundial.Country {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countries
}

// Tournaments returns the cached tournament list, loading lazily.
func (c *Cache) Tournaments(ctx context.Context) []mundial.Tournament {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tournaments
}

// Players returns the flattened player list, loading lazily.
func (c *Cache) Players(ctx context.Context) []mundial.Player {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.players
}

// Positions returns the position vocabulary, loading lazily.
func (c *Cache) Positions(ctx context.Context) []mundial.Position {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.positions
}

// FindTournament looks up a cached tournament by year and country.
func (c *Cache) FindTournament(ctx context.Context, year int, country string) (mundial.Tournament, bool) {
	for _, t := range c.Tournaments(ctx) {
		if t.Year == year && t.Country == country {
			return t, true
		}
	}
	return mundial.Tournament{}, false
}

// FindPlayer looks up a cached player by name, country, and year.
func (c *Cache) FindPlayer(ctx context.Context, name, country string, year int) (mundial.Player, bool) {
	for _, p := range c.Players(ctx) {
		if p.Name == name && p.Country == country && p.Year == year {
			return p, true
		}
	}
	return mundial.Player{}, false
}

func (c *Cache) appendTournament(t mundial.Tournament) {
	c.mu.Lock()
	c.tournaments = append(c.tournaments, t)
	c.mu.Unlock()
}

func (c *Cache) appendPlayer(p mundial.Player) {
	c.mu.Lock()
	c.players = append(c.players, p)
	c.mu.Unlock()
}
