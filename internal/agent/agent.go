// Package agent answers free-text questions about World Cup champions
// with plain pattern matching over the cached reference data.
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/golazoapps/mundialito/internal/mundial"
	"github.com/golazoapps/mundialito/internal/worldcup"
)

var yearPattern = regexp.MustCompile(`\b(19\d\d|20\d\d)\b`)

// Words that look like names but never are.
var stopwords = map[string]bool{
	"que": true, "quien": true, "quién": true, "como": true, "cómo": true,
	"cuando": true, "cuándo": true, "donde": true, "dónde": true,
	"jugador": true, "jugó": true, "participó": true, "equipo": true,
	"mundial": true, "copa": true, "mundo": true, "selección": true,
	"ganó": true, "ganador": true, "campeón": true, "campeon": true,
}

// Agent resolves natural-language queries against the data cache and
// the data API's player search.
type Agent struct {
	cache  *worldcup.Cache
	client *worldcup.Client
}

func New(cache *worldcup.Cache, client *worldcup.Client) *Agent {
	return &Agent{cache: cache, client: client}
}

// Answer matches the query against a fixed set of patterns — player
// lookups, editions by year, titles by country — and phrases a reply.
// Unmatched queries get a usage hint, never an error.
func (a *Agent) Answer(ctx context.Context, query string) string {
	query = strings.ToLower(strings.TrimSpace(query))

	var year int
	if m := yearPattern.FindString(query); m != "" {
		year, _ = strconv.Atoi(m)
	}

	var country string
	for _, c := range a.cache.Countries(ctx) {
		if strings.Contains(query, strings.ToLower(c.Name)) {
			country = c.Name
			break
		}
	}

	aboutTitles := strings.Contains(query, "mundial") || strings.Contains(query, "copa") ||
		strings.Contains(query, "ganó") || strings.Contains(query, "ganador")

	switch {
	case strings.Contains(query, "jugador") || strings.Contains(query, "jugó") || strings.Contains(query, "participó"):
		return a.answerPlayer(ctx, query)

	case year != 0 && country != "":
		return a.answerRoster(ctx, year, country)

	case year != 0 && aboutTitles:
		for _, t := range a.cache.Tournaments(ctx) {
			if t.Year == year {
				return fmt.Sprintf("El Mundial de %d fue ganado por %s.", t.Year, t.Country)
			}
		}
		return fmt.Sprintf("No tengo información sobre el Mundial de %d.", year)

	case country != "" && (aboutTitles || strings.Contains(query, "cuantos") || strings.Contains(query, "cuántos")):
		return a.answerTitles(ctx, country)

	case strings.Contains(query, "cuantos") || strings.Contains(query, "cuántos"):
		return fmt.Sprintf("Tengo información sobre %d Mundiales ganados por diferentes países.", len(a.cache.Tournaments(ctx)))
	}

	return "No entiendo tu consulta. Puedes preguntar por un país específico, un año de Mundial, o un jugador."
}

func (a *Agent) answerPlayer(ctx context.Context, query string) string {
	for _, word := range strings.Fields(query) {
		word = strings.Trim(word, "¿?.,!¡")
		if len([]rune(word)) <= 3 || stopwords[word] {
			continue
		}
		results, err := a.client.SearchPlayers(ctx, word)
		if err != nil || len(results) == 0 {
			continue
		}
		p := results[0]
		role := "suplente"
		if p.Starter {
			role = "titular"
		}
		return fmt.Sprintf("%s jugó con %s en el Mundial de %d como %s. Era %s.",
			p.Name, p.Country, p.Year, p.Position, role)
	}
	return "No pude identificar a qué jugador te refieres."
}

func (a *Agent) answerTitles(ctx context.Context, country string) string {
	var years []string
	for _, t := range a.cache.Tournaments(ctx) {
		if t.Country == country {
			years = append(years, strconv.Itoa(t.Year))
		}
	}
	switch len(years) {
	case 0:
		return fmt.Sprintf("No tengo información sobre mundiales ganados por %s.", country)
	case 1:
		return fmt.Sprintf("%s ganó el Mundial de %s.", country, years[0])
	}
	return fmt.Sprintf("%s ha ganado %d Mundiales en los años: %s.", country, len(years), strings.Join(years, ", "))
}

func (a *Agent) answerRoster(ctx context.Context, year int, country string) string {
	tournament, ok := a.cache.FindTournament(ctx, year, country)
	if !ok {
		return fmt.Sprintf("%s no ganó el Mundial de %d según mis datos.", country, year)
	}

	var starters []mundial.Player
	for _, p := range a.cache.Players(ctx) {
		if p.TournamentID == tournament.ID && p.Starter {
			starters = append(starters, p)
		}
	}
	if len(starters) == 0 {
		return fmt.Sprintf("El Mundial de %d fue ganado por %s.", year, country)
	}

	sample := starters
	if len(sample) > 5 {
		sample = sample[:5]
	}
	names := make([]string, 0, len(sample))
	for _, p := range sample {
		names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.PositionAbbr))
	}
	return fmt.Sprintf("El equipo de %s que ganó el Mundial de %d incluía a jugadores como: %s...",
		country, year, strings.Join(names, ", "))
}
