// Package mundial defines the core domain types for the World Cup
// guessing game. It has zero external dependencies — everything here is
// pure Go.
package mundial

// Country is a national team that has won at least one World Cup.
type Country struct {
	ID   int
	Name string
}

// Tournament is a single World Cup edition, identified by year and
// winning country. Unique per year: one champion per edition.
type Tournament struct {
	ID      int
	Year    int
	Country string
}

// Player is a squad member of a winning tournament, denormalized with
// the parent tournament's year and country at cache-load time. Players
// have no identity beyond name+country+year.
type Player struct {
	Name         string
	TournamentID int
	Year         int
	Country      string
	Position     string
	PositionAbbr string
	Starter      bool
}

// Position is a reference vocabulary entry (goalkeeper, defender,
// midfielder, forward).
type Position struct {
	ID   int
	Name string
}

// Mode selects what the game is guessing.
type Mode string

const (
	ModeTeam   Mode = "equipo"
	ModePlayer Mode = "jugador"
)

// Valid reports whether m is one of the two playable modes.
func (m Mode) Valid() bool {
	return m == ModeTeam || m == ModePlayer
}

// Position names as served by the data API.
const (
	PositionGoalkeeper = "Portero"
	PositionDefender   = "Defensa"
	PositionMidfielder = "Mediocampista"
	PositionForward    = "Delantero"
)

// SouthAmericanChampions is the fixed set backing the continent
// heuristic. Data, not control flow: update here when a new champion
// appears.
var SouthAmericanChampions = []string{"Brasil", "Argentina", "Uruguay"}

// MultiTitleChampions is the fixed set of countries with more than two
// titles, backing the titles heuristic.
var MultiTitleChampions = []string{"Brasil", "Alemania", "Italia"}

// IsSouthAmerican reports whether country is in the fixed
// South-American champion set.
func IsSouthAmerican(country string) bool {
	for _, c := range SouthAmericanChampions {
		if c == country {
			return true
		}
	}
	return false
}

// HasMultipleTitles reports whether country is in the fixed
// multi-champion set.
func HasMultipleTitles(country string) bool {
	for _, c := range MultiTitleChampions {
		if c == country {
			return true
		}
	}
	return false
}
