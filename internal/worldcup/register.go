package worldcup

import (
	"context"
	"errors"
	"fmt"

	"github.com/golazoapps/mundialito/internal/mundial"
)

// ErrTournamentUnknown is returned when a player registration names a
// tournament the cache does not know about.
var ErrTournamentUnknown = errors.New("no tournament for that year and country")

// RegisterTeam upserts a champion for a year and country. Returns
// created=false when an identical tournament already exists; the
// duplicate is a successful no-op, not an error. On creation the cache
// is appended only after the remote write succeeds, so a failed write
// leaves nothing to roll back.
func (c *Cache) RegisterTeam(ctx context.Context, country string, year int) (mundial.Tournament, bool, error) {
	if existing, ok := c.FindTournament(ctx, year, country); ok {
		return existing, false, nil
	}

	record, err := c.client.CreateCountry(ctx, country)
	if err != nil {
		return mundial.Tournament{}, false, fmt.Errorf("creating country: %w", err)
	}

	tournament, err := c.client.CreateTournament(ctx, year, record.ID)
	if err != nil {
		return mundial.Tournament{}, false, fmt.Errorf("creating tournament: %w", err)
	}
	if tournament.Country == "" {
		tournament.Country = country
	}

	c.appendTournament(tournament)
	return tournament, true, nil
}

// RegisterPlayer upserts a player into the roster of an existing
// tournament, identified by year and country. Duplicate registrations
// (same name, country, year) are successful no-ops.
func (c *Cache) RegisterPlayer(ctx context.Context, name, country string, year, positionID int, starter bool) (mundial.Player, bool, error) {
	if existing, ok := c.FindPlayer(ctx, name, country, year); ok {
		return existing, false, nil
	}

	tournament, ok := c.FindTournament(ctx, year, country)
	if !ok {
		return mundial.Player{}, false, ErrTournamentUnknown
	}

	if err := c.client.CreatePlayer(ctx, name, tournament.ID, positionID, starter); err != nil {
		return mundial.Player{}, false, fmt.Errorf("creating player: %w", err)
	}

	var position string
	for _, p := range c.Positions(ctx) {
		if p.ID == positionID {
			position = p.Name
			break
		}
	}

	player := mundial.Player{
		Name:         name,
		TournamentID: tournament.ID,
		Year:         year,
		Country:      country,
		Position:     position,
		Starter:      starter,
	}
	c.appendPlayer(player)
	return player, true, nil
}
