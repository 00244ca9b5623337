// Package worldcup talks to the reference data API and caches its
// collections for the game engine.
package worldcup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golazoapps/mundialito/internal/mundial"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrQueryShort = errors.New("search query must have at least 3 characters")
)

// Client is a thin HTTP client for the data API. The base URL is
// injected at construction; there is no process-wide lookup.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the data API at baseURL, e.g.
// "http://localhost:3000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Wire types mirror the data API's JSON shapes.

type countryRecord struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

type tournamentRecord struct {
	ID      int    `json:"id"`
	Year    int    `json:"anio"`
	Country string `json:"pais"`
}

type playerRecord struct {
	Name         string `json:"nombre"`
	Position     string `json:"posicion"`
	PositionID   int    `json:"posicion_id"`
	PositionAbbr string `json:"posicion_abr"`
	Starter      bool   `json:"titular"`
}

type tournamentDetail struct {
	ID      int    `json:"id"`
	Year    int    `json:"anio"`
	Country string `json:"pais"`
	Squad   struct {
		Starters    []playerRecord `json:"titulares"`
		Substitutes []playerRecord `json:"suplentes"`
	} `json:"jugadores"`
}

type searchResult struct {
	Name     string `json:"nombre"`
	Position string `json:"posicion"`
	Country  string `json:"pais"`
	Year     int    `json:"anio"`
	Starter  bool   `json:"titular"`
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// Countries fetches the champion country list.
func (c *Client) Countries(ctx context.Context) ([]mundial.Country, error) {
	var records []countryRecord
	if err := c.get(ctx, "/paises", &records); err != nil {
		return nil, err
	}
	countries := make([]mundial.Country, 0, len(records))
	for _, r := range records {
		countries = append(countries, mundial.Country{ID: r.ID, Name: r.Name})
	}
	return countries, nil
}

// Tournaments fetches the tournament list, without rosters.
func (c *Client) Tournaments(ctx context.Context) ([]mundial.Tournament, error) {
	var records []tournamentRecord
	if err := c.get(ctx, "/mundiales", &records); err != nil {
		return nil, err
	}
	tournaments := make([]mundial.Tournament, 0, len(records))
	for _, r := range records {
		tournaments = append(tournaments, mundial.Tournament{ID: r.ID, Year: r.Year, Country: r.Country})
	}
	return tournaments, nil
}

// TournamentPlayers fetches one tournament's detail and flattens
// starters and substitutes into a single list annotated with the
// tournament's year and country.
func (c *Client) TournamentPlayers(ctx context.Context, id int) ([]mundial.Player, error) {
	var detail tournamentDetail
	if err := c.get(ctx, fmt.Sprintf("/mundiales/%d", id), &detail); err != nil {
		return nil, err
	}

	flatten := func(records []playerRecord, starter bool) []mundial.Player {
		players := make([]mundial.Player, 0, len(records))
		for _, r := range records {
			players = append(players, mundial.Player{
				Name:         r.Name,
				TournamentID: detail.ID,
				Year:         detail.Year,
				Country:      detail.Country,
				Position:     r.Position,
				PositionAbbr: r.PositionAbbr,
				Starter:      starter,
			})
		}
		return players
	}

	players := flatten(detail.Squad.Starters, true)
	return append(players, flatten(detail.Squad.Substitutes, false)...), nil
}

// Positions fetches the position vocabulary.
func (c *Client) Positions(ctx context.Context) ([]mundial.Position, error) {
	var records []countryRecord
	if err := c.get(ctx, "/posiciones", &records); err != nil {
		return nil, err
	}
	positions := make([]mundial.Position, 0, len(records))
	for _, r := range records {
		positions = append(positions, mundial.Position{ID: r.ID, Name: r.Name})
	}
	return positions, nil
}

// SearchPlayers looks up players by name. The API requires at least
// three characters; shorter queries fail before any network call.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]mundial.Player, error) {
	if len([]rune(name)) < 3 {
		return nil, ErrQueryShort
	}
	var records []searchResult
	if err := c.get(ctx, "/jugadores/buscar?q="+url.QueryEscape(name), &records); err != nil {
		return nil, err
	}
	players := make([]mundial.Player, 0, len(records))
	for _, r := range records {
		players = append(players, mundial.Player{
			Name:     r.Name,
			Position: r.Position,
			Country:  r.Country,
			Year:     r.Year,
			Starter:  r.Starter,
		})
	}
	return players, nil
}

// CreateCountry upserts a country by name and returns its record. The
// API returns the existing record when the name is already present.
func (c *Client) CreateCountry(ctx context.Context, name string) (mundial.Country, error) {
	var record countryRecord
	err := c.post(ctx, "/paises", map[string]string{"nombre": name}, &record)
	if err != nil {
		return mundial.Country{}, err
	}
	return mundial.Country{ID: record.ID, Name: record.Name}, nil
}

// CreateTournament upserts a tournament for a year and country.
func (c *Client) CreateTournament(ctx context.Context, year, countryID int) (mundial.Tournament, error) {
	var record tournamentRecord
	err := c.post(ctx, "/mundiales", map[string]int{"anio": year, "pais_id": countryID}, &record)
	if err != nil {
		return mundial.Tournament{}, err
	}
	return mundial.Tournament{ID: record.ID, Year: record.Year, Country: record.Country}, nil
}

// CreatePlayer upserts a player into a tournament's roster.
func (c *Client) CreatePlayer(ctx context.Context, name string, tournamentID, positionID int, starter bool) error {
	var record struct {
		ID int `json:"id"`
	}
	return c.post(ctx, "/jugadores", map[string]any{
		"nombre":      name,
		"mundial_id":  tournamentID,
		"posicion_id": positionID,
		"titular":     starter,
	}, &record)
}
