package akinator

import (
	"fmt"
	"sort"

	"github.com/golazoapps/mundialito/internal/mundial"
)

// category is the heuristic dimension a question probes.
type category string

const (
	categoryEpoch     category = "epoca"
	categoryContinent category = "continente"
	categoryTitles    category = "titulos"
	categoryPosition  category = "posicion"
	categoryCountry   category = "pais"
	categoryStarter   category = "titular"

	// Fallback categories: name a specific candidate attribute
	// verbatim when the heuristic dimensions are spent.
	categoryDirectCountry    category = "pais_directo"
	categoryDirectPlayer     category = "jugador_directo"
	categoryMultipleChampion category = "multiple_campeon"
)

var (
	teamCategories   = []category{categoryEpoch, categoryContinent, categoryTitles}
	playerCategories = []category{categoryPosition, categoryEpoch, categoryCountry, categoryStarter}
)

// question retains the structured parameters alongside the rendered
// text, so rendering and filtering read from the same value — there is
// no reparsing of prose.
type question struct {
	category category
	text     string

	year     int    // epoch: the median-year threshold
	target   string // direct country/player, position, player country
	wantsYes bool   // continent: asks South America; titles: asks >2; starter: asks titular
}

// nextTeamQuestion picks a category not yet asked this game (resetting
// once all are spent) and renders it against the live candidates. When
// no heuristic category can split the pool anymore it falls back to
// naming a candidate's country directly.
func (g *Game) nextTeamQuestion() question {
	if g.heuristicsExhausted(teamCategories) {
		return g.directTeamQuestion()
	}

	available := make([]category, 0, len(teamCategories))
	for _, c := range teamCategories {
		if !g.wasAsked(c) {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		available = teamCategories
	}

	chosen := available[g.rng.Intn(len(available))]
	g.asked = append(g.asked, chosen)

	switch chosen {
	case categoryEpoch:
		median := medianYear(g.candidates)
		return question{
			category: categoryEpoch,
			year:     median,
			text:     fmt.Sprintf("¿El equipo ganó el mundial después del año %d?", median),
		}

	case categoryContinent:
		// Binary heuristic: if any candidate is South American, probe
		// that; otherwise probe Europe. Not a full geography model.
		asksSouthAmerica := false
		for _, c := range g.candidates {
			if mundial.IsSouthAmerican(c.Country) {
				asksSouthAmerica = true
				break
			}
		}
		text := "¿El equipo es de Europa?"
		if asksSouthAmerica {
			text = "¿El equipo es de Sudamérica?"
		}
		return question{category: categoryContinent, wantsYes: asksSouthAmerica, text: text}

	case categoryTitles:
		// Static heuristic over the historically dominant set, not a
		// computed tally.
		asksMoreThanTwo := false
		for _, c := range g.candidates {
			if mundial.HasMultipleTitles(c.Country) {
				asksMoreThanTwo = true
				break
			}
		}
		text := "¿El país ha ganado solo un mundial?"
		if asksMoreThanTwo {
			text = "¿El país ha ganado más de 2 mundiales?"
		}
		return question{category: categoryTitles, wantsYes: asksMoreThanTwo, text: text}
	}

	return g.directTeamQuestion()
}

// directTeamQuestion names one candidate's country verbatim.
func (g *Game) directTeamQuestion() question {
	countries := g.distinctCountries()
	country := countries[g.rng.Intn(len(countries))]
	g.asked = append(g.asked, categoryDirectCountry)
	return question{
		category: categoryDirectCountry,
		target:   country,
		text:     fmt.Sprintf("¿El equipo es %s?", country),
	}
}

// nextPlayerQuestion avoids repeating the immediately preceding
// category, then renders the chosen one. A pool the heuristics can no
// longer split gets a direct question instead.
func (g *Game) nextPlayerQuestion() question {
	if g.heuristicsExhausted(playerCategories) {
		return g.directPlayerQuestion()
	}

	var lastCategory category
	if len(g.asked) > 0 {
		lastCategory = g.asked[len(g.asked)-1]
	}

	available := make([]category, 0, len(playerCategories))
	for _, c := range playerCategories {
		if c != lastCategory {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		available = playerCategories
	}

	chosen := available[g.rng.Intn(len(available))]
	g.asked = append(g.asked, chosen)

	switch chosen {
	case categoryPosition:
		position := g.presentPosition()
		return question{
			category: categoryPosition,
			target:   position,
			text:     fmt.Sprintf("¿El jugador es %s?", positionPhrase(position)),
		}

	case categoryEpoch:
		median := medianYear(g.candidates)
		return question{
			category: categoryEpoch,
			year:     median,
			text:     fmt.Sprintf("¿El jugador ganó el mundial después del año %d?", median),
		}

	case categoryCountry:
		countries := g.distinctCountries()
		target := "Brasil"
		if len(countries) > 0 {
			target = countries[g.rng.Intn(len(countries))]
		}
		return question{
			category: categoryCountry,
			target:   target,
			text:     fmt.Sprintf("¿El jugador es de %s?", target),
		}

	case categoryStarter:
		starters := 0
		for _, c := range g.candidates {
			if c.Starter {
				starters++
			}
		}
		asksStarter := starters > 0 && starters < len(g.candidates)
		text := "¿El jugador era suplente?"
		if asksStarter {
			text = "¿El jugador era titular?"
		}
		return question{category: categoryStarter, wantsYes: asksStarter, text: text}
	}

	return g.directPlayerQuestion()
}

// directPlayerQuestion names a specific player, or probes repeat
// champions when no candidate has a usable name.
func (g *Game) directPlayerQuestion() question {
	var names []string
	for _, c := range g.candidates {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		g.asked = append(g.asked, categoryMultipleChampion)
		return question{
			category: categoryMultipleChampion,
			text:     "¿El jugador ganó más de un mundial?",
		}
	}
	name := names[g.rng.Intn(len(names))]
	g.asked = append(g.asked, categoryDirectPlayer)
	return question{
		category: categoryDirectPlayer,
		target:   name,
		text:     fmt.Sprintf("¿El jugador es %s?", name),
	}
}

// heuristicsExhausted reports whether none of the given categories can
// split the current candidate set: every candidate answers every
// remaining heuristic question the same way.
func (g *Game) heuristicsExhausted(categories []category) bool {
	for _, c := range categories {
		if g.categoryDiscriminates(c) {
			return false
		}
	}
	return true
}

// categoryDiscriminates reports whether the candidates differ on the
// dimension this category asks about.
func (g *Game) categoryDiscriminates(c category) bool {
	if len(g.candidates) < 2 {
		return false
	}
	first := g.candidates[0]
	for _, cand := range g.candidates[1:] {
		switch c {
		case categoryEpoch:
			if cand.Year != first.Year {
				return true
			}
		case categoryContinent:
			if mundial.IsSouthAmerican(cand.Country) != mundial.IsSouthAmerican(first.Country) {
				return true
			}
		case categoryTitles:
			if mundial.HasMultipleTitles(cand.Country) != mundial.HasMultipleTitles(first.Country) {
				return true
			}
		case categoryPosition:
			if cand.Position != first.Position {
				return true
			}
		case categoryCountry:
			if cand.Country != first.Country {
				return true
			}
		case categoryStarter:
			if cand.Starter != first.Starter {
				return true
			}
		}
	}
	return false
}

func (g *Game) wasAsked(c category) bool {
	for _, asked := range g.asked {
		if asked == c {
			return true
		}
	}
	return false
}

func (g *Game) distinctCountries() []string {
	seen := make(map[string]bool)
	var countries []string
	for _, c := range g.candidates {
		if !seen[c.Country] {
			seen[c.Country] = true
			countries = append(countries, c.Country)
		}
	}
	return countries
}

// presentPosition returns the first fixed position present among the
// candidates, defaulting to forward.
func (g *Game) presentPosition() string {
	present := make(map[string]bool)
	for _, c := range g.candidates {
		present[c.Position] = true
	}
	for _, p := range []string{mundial.PositionGoalkeeper, mundial.PositionDefender, mundial.PositionMidfielder} {
		if present[p] {
			return p
		}
	}
	return mundial.PositionForward
}

func positionPhrase(position string) string {
	switch position {
	case mundial.PositionGoalkeeper:
		return "portero"
	case mundial.PositionDefender:
		return "defensa"
	case mundial.PositionMidfielder:
		return "mediocampista"
	default:
		return "delantero"
	}
}

// medianYear picks sorted(years)[n/2]. A deliberate median split for a
// roughly balanced partition; ties at the median land on the "no"
// side.
func medianYear(candidates []Candidate) int {
	years := make([]int, 0, len(candidates))
	for _, c := range candidates {
		years = append(years, c.Year)
	}
	sort.Ints(years)
	return years[len(years)/2]
}
