package akinator

import "github.com/golazoapps/mundialito/internal/mundial"

// filter keeps every candidate whose match against the question's
// structured parameter agrees with the player's answer, uniformly for
// all categories. Categories the filter does not understand keep all
// candidates (fail-open).
func (g *Game) filter(q question, affirmative bool) {
	kept := make([]Candidate, 0, len(g.candidates))
	for _, c := range g.candidates {
		matches, known := matches(q, c)
		if !known || matches == affirmative {
			kept = append(kept, c)
		}
	}

	if len(kept) > 0 {
		g.candidates = kept
		g.logger.Debug("candidates filtered", "category", q.category, "remaining", len(kept))
		return
	}

	// Recovery rule: a heuristic filter that empties the set is not
	// accepted. Resample a few candidates from the pre-filter pool so
	// the game can always produce a next question or guess, at the
	// cost of possibly having excluded the true answer already.
	g.candidates = g.sample(g.candidates, 3)
	g.logger.Debug("filter emptied candidates, resampled", "category", q.category, "kept", len(g.candidates))
}

// matches reports whether the candidate agrees with the question's
// parameter, and whether the category is one the filter understands.
func matches(q question, c Candidate) (matched, known bool) {
	switch q.category {
	case categoryEpoch:
		return c.Year > q.year, true
	case categoryContinent:
		return mundial.IsSouthAmerican(c.Country) == q.wantsYes, true
	case categoryTitles:
		return mundial.HasMultipleTitles(c.Country) == q.wantsYes, true
	case categoryCountry, categoryDirectCountry:
		return c.Country == q.target, true
	case categoryPosition:
		return c.Position == q.target, true
	case categoryStarter:
		return c.Starter == q.wantsYes, true
	case categoryDirectPlayer:
		return c.Name == q.target, true
	}
	return false, false
}

// sample draws up to n candidates uniformly without replacement.
func (g *Game) sample(pool []Candidate, n int) []Candidate {
	if len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]Candidate, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}
