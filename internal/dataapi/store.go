// Package dataapi implements the reference data API: the REST surface
// the game server consumes for countries, tournaments, rosters, and
// positions.
package dataapi

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Wire types, Spanish field names as served since the first version of
// this API.

type CountryRecord struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

type TournamentRecord struct {
	ID        int    `json:"id"`
	Year      int    `json:"anio"`
	CountryID int    `json:"pais_id"`
	Country   string `json:"pais"`
}

type PlayerRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"nombre"`
	Position     string `json:"posicion"`
	PositionID   int    `json:"posicion_id"`
	PositionAbbr string `json:"posicion_abr"`
	Starter      bool   `json:"titular"`
}

type Squad struct {
	Starters    []PlayerRecord `json:"titulares"`
	Substitutes []PlayerRecord `json:"suplentes"`
}

type TournamentDetail struct {
	TournamentRecord
	Squad Squad `json:"jugadores"`
}

type PositionRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"nombre"`
	Abbreviation string `json:"abreviatura"`
}

type SearchHit struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Position string `json:"posicion"`
	Country  string `json:"pais"`
	Year     int    `json:"anio"`
	Starter  bool   `json:"titular"`
}

func (s *Store) Countries(ctx context.Context) ([]CountryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre FROM paises ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []CountryRecord{}
	for rows.Next() {
		var c CountryRecord
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (s *Store) Tournaments(ctx context.Context) ([]TournamentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.anio, p.id, p.nombre
		FROM mundiales m
		JOIN paises p ON p.id = m.pais_id
		ORDER BY m.anio DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := []TournamentRecord{}
	for rows.Next() {
		var t TournamentRecord
		if err := rows.Scan(&t.ID, &t.Year, &t.CountryID, &t.Country); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

// TournamentByID returns a tournament with its roster split into
// starters and substitutes, ordered position-first the way squads are
// traditionally listed.
func (s *Store) TournamentByID(ctx context.Context, id int) (TournamentDetail, error) {
	var detail TournamentDetail
	err := s.db.QueryRowContext(ctx, `
		SELECT m.id, m.anio, p.id, p.nombre
		FROM mundiales m
		JOIN paises p ON p.id = m.pais_id
		WHERE m.id = ?
	`, id).Scan(&detail.ID, &detail.Year, &detail.CountryID, &detail.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return detail, ErrNotFound
	}
	if err != nil {
		return detail, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT j.id, j.nombre, pos.nombre, pos.id, pos.abreviatura, j.titular
		FROM jugadores j
		JOIN posiciones pos ON pos.id = j.posicion_id
		WHERE j.mundial_id = ?
		ORDER BY pos.id, j.titular DESC, j.nombre
	`, id)
	if err != nil {
		return detail, err
	}
	defer rows.Close()

	detail.Squad.Starters = []PlayerRecord{}
	detail.Squad.Substitutes = []PlayerRecord{}
	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.PositionID, &p.PositionAbbr, &p.Starter); err != nil {
			return detail, err
		}
		if p.Starter {
			detail.Squad.Starters = append(detail.Squad.Starters, p)
		} else {
			detail.Squad.Substitutes = append(detail.Squad.Substitutes, p)
		}
	}
	return detail, rows.Err()
}

func (s *Store) Positions(ctx context.Context) ([]PositionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre, abreviatura FROM posiciones ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []PositionRecord{}
	for rows.Next() {
		var p PositionRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Abbreviation); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (s *Store) SearchPlayers(ctx context.Context, query string) ([]SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT j.id, j.nombre, pos.nombre, p.nombre, m.anio, j.titular
		FROM jugadores j
		JOIN mundiales m ON m.id = j.mundial_id
		JOIN paises p ON p.id = m.pais_id
		JOIN posiciones pos ON pos.id = j.posicion_id
		WHERE j.nombre LIKE ?
		ORDER BY m.anio DESC, j.nombre
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []SearchHit{}
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.ID, &h.Name, &h.Position, &h.Country, &h.Year, &h.Starter); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// CreateCountry inserts a country, or returns the existing record when
// the name is already present. Duplicates are successful no-ops.
func (s *Store) CreateCountry(ctx context.Context, name string) (CountryRecord, error) {
	var c CountryRecord
	err := s.db.QueryRowContext(ctx, `SELECT id, nombre FROM paises WHERE nombre = ?`, name).Scan(&c.ID, &c.Name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return c, err
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO paises (nombre) VALUES (?) RETURNING id, nombre
	`, name).Scan(&c.ID, &c.Name)
	return c, err
}

// CreateTournament inserts a tournament, or returns the existing
// record for that year and country.
func (s *Store) CreateTournament(ctx context.Context, year, countryID int) (TournamentRecord, error) {
	var existingID int
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM mundiales WHERE anio = ? AND pais_id = ?
	`, year, countryID).Scan(&existingID)
	if err == nil {
		detail, err := s.TournamentByID(ctx, existingID)
		return detail.TournamentRecord, err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return TournamentRecord{}, err
	}

	var id int
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO mundiales (anio, pais_id) VALUES (?, ?) RETURNING id
	`, year, countryID).Scan(&id)
	if err != nil {
		return TournamentRecord{}, err
	}
	detail, err := s.TournamentByID(ctx, id)
	return detail.TournamentRecord, err
}

// CreatePlayer inserts a player, or returns the existing record for
// that name and tournament.
func (s *Store) CreatePlayer(ctx context.Context, name string, tournamentID, positionID int, starter bool) (SearchHit, error) {
	var existingID int
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM jugadores WHERE nombre = ? AND mundial_id = ?
	`, name, tournamentID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		starterInt := 0
		if starter {
			starterInt = 1
		}
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO jugadores (nombre, mundial_id, posicion_id, titular)
			VALUES (?, ?, ?, ?) RETURNING id
		`, name, tournamentID, positionID, starterInt).Scan(&existingID)
	}
	if err != nil {
		return SearchHit{}, err
	}

	var h SearchHit
	err = s.db.QueryRowContext(ctx, `
		SELECT j.id, j.nombre, pos.nombre, p.nombre, m.anio, j.titular
		FROM jugadores j
		JOIN mundiales m ON m.id = j.mundial_id
		JOIN paises p ON p.id = m.pais_id
		JOIN posiciones pos ON pos.id = j.posicion_id
		WHERE j.id = ?
	`, existingID).Scan(&h.ID, &h.Name, &h.Position, &h.Country, &h.Year, &h.Starter)
	return h, err
}
