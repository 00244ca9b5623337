package akinator

import (
	"fmt"

	"github.com/golazoapps/mundialito/internal/mundial"
)

// Kind tags a Result so callers branch on structured data instead of
// matching substrings in the prompt text.
type Kind string

const (
	// KindIntro is the opening prompt returned by Intro.
	KindIntro Kind = "intro"
	// KindQuestion is a discriminating yes/no question.
	KindQuestion Kind = "question"
	// KindGuess names a specific candidate and awaits confirmation.
	KindGuess Kind = "guess"
	// KindWon confirms a correct guess. Terminal.
	KindWon Kind = "won"
	// KindLost follows a rejected guess with no candidates left. Terminal.
	KindLost Kind = "lost"
	// KindGaveUp means the engine ran out of candidates or attempts. Terminal.
	KindGaveUp Kind = "gave_up"
)

// Result is what every game interaction returns: a kind to branch on,
// the player-facing prompt, and the named candidate for guesses and
// wins.
type Result struct {
	Kind      Kind
	Text      string
	Candidate *Candidate
}

// Terminal reports whether the game ended with this result. The caller
// may start a fresh game afterwards.
func (r Result) Terminal() bool {
	return r.Kind == KindWon || r.Kind == KindLost || r.Kind == KindGaveUp
}

// Candidate is a tournament or player still consistent with every
// answer given so far. Team candidates leave the player-only fields
// zero.
type Candidate struct {
	Year    int
	Country string

	// Player-mode fields.
	Name     string
	Position string
	Starter  bool
}

// Label renders the candidate the way guesses phrase it.
func (c Candidate) Label(mode mundial.Mode) string {
	if mode == mundial.ModeTeam {
		return fmt.Sprintf("%s del Mundial %d", c.Country, c.Year)
	}
	return fmt.Sprintf("%s (%s, %d)", c.Name, c.Country, c.Year)
}

// TeamCandidates builds the initial candidate pool for team mode.
func TeamCandidates(tournaments []mundial.Tournament) []Candidate {
	candidates := make([]Candidate, 0, len(tournaments))
	for _, t := range tournaments {
		candidates = append(candidates, Candidate{Year: t.Year, Country: t.Country})
	}
	return candidates
}

// PlayerCandidates builds the initial candidate pool for player mode.
func PlayerCandidates(players []mundial.Player) []Candidate {
	candidates := make([]Candidate, 0, len(players))
	for _, p := range players {
		candidates = append(candidates, Candidate{
			Year:     p.Year,
			Country:  p.Country,
			Name:     p.Name,
			Position: p.Position,
			Starter:  p.Starter,
		})
	}
	return candidates
}
