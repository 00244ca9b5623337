package akinator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golazoapps/mundialito/internal/mundial"
)

func testTournaments() []Candidate {
	return TeamCandidates([]mundial.Tournament{
		{ID: 1, Year: 1970, Country: "Brasil"},
		{ID: 2, Year: 1974, Country: "Alemania"},
		{ID: 3, Year: 1978, Country: "Argentina"},
	})
}

func testGame(t *testing.T, mode mundial.Mode, candidates []Candidate, seed int64) *Game {
	t.Helper()
	g, err := New(Config{
		Mode:       mode,
		Candidates: candidates,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return g
}

func TestNewRejectsInvalidMode(t *testing.T) {
	_, err := New(Config{Mode: "arbitro"})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestIntroDoesNotConsumeAttempts(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, testTournaments(), 1)

	intro := g.Intro()
	assert.Equal(t, KindIntro, intro.Kind)
	assert.Equal(t, 0, g.Attempts())
}

func TestAttemptsIncrementPerQuestion(t *testing.T) {
	candidates := make([]Candidate, 0, 8)
	for year := 1930; year < 1962; year += 4 {
		candidates = append(candidates, Candidate{Year: year, Country: fmt.Sprintf("País %d", year)})
	}
	g := testGame(t, mundial.ModeTeam, candidates, 1)

	for want := 1; want <= 5; want++ {
		g.NextQuestion()
		assert.Equal(t, want, g.Attempts())
	}
}

func TestEmptyPoolGivesUpImmediately(t *testing.T) {
	g := testGame(t, mundial.ModePlayer, nil, 1)

	result := g.NextQuestion()
	assert.Equal(t, KindGaveUp, result.Kind)
	assert.True(t, result.Terminal())
	assert.Equal(t, StatusGaveUp, g.Status())
}

func TestDirectGuessWithTwoCandidates(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, []Candidate{
		{Year: 1970, Country: "Brasil"},
		{Year: 1974, Country: "Alemania"},
	}, 1)

	result := g.NextQuestion()
	require.Equal(t, KindGuess, result.Kind)
	require.NotNil(t, result.Candidate)
	assert.Equal(t, "Brasil", result.Candidate.Country)
	assert.Equal(t, 1970, result.Candidate.Year)
}

func TestDirectGuessWhenAttemptsExhausted(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, testTournaments(), 3)
	g.attempts = maxAttemptsTeam - 1

	result := g.NextQuestion()
	assert.Equal(t, KindGuess, result.Kind)
}

func TestConfirmedGuessWins(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, []Candidate{{Year: 1970, Country: "Brasil"}}, 1)

	guess := g.NextQuestion()
	require.Equal(t, KindGuess, guess.Kind)

	result := g.ProcessAnswer("sí")
	assert.Equal(t, KindWon, result.Kind)
	assert.Equal(t, StatusWon, g.Status())
	require.NotNil(t, result.Candidate)
	assert.Equal(t, "Brasil", result.Candidate.Country)
	assert.Contains(t, result.Text, "Brasil")
}

func TestRejectedGuessMovesToNextCandidate(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, []Candidate{
		{Year: 1970, Country: "Brasil"},
		{Year: 1974, Country: "Alemania"},
	}, 1)

	first := g.NextQuestion()
	require.Equal(t, KindGuess, first.Kind)
	require.Equal(t, "Brasil", first.Candidate.Country)

	second := g.ProcessAnswer("no")
	require.Equal(t, KindGuess, second.Kind)
	assert.Equal(t, "Alemania", second.Candidate.Country)

	result := g.ProcessAnswer("no")
	assert.Equal(t, KindLost, result.Kind)
	assert.Equal(t, StatusLost, g.Status())
}

func TestUnknownAnswerReasksWithoutFiltering(t *testing.T) {
	candidates := make([]Candidate, 0, 10)
	for year := 1930; year < 1970; year += 4 {
		candidates = append(candidates, Candidate{Year: year, Country: fmt.Sprintf("País %d", year)})
	}
	g := testGame(t, mundial.ModeTeam, candidates, 2)

	g.NextQuestion()
	before := g.Remaining()

	result := g.ProcessAnswer("no sé")
	assert.Equal(t, KindQuestion, result.Kind)
	assert.Equal(t, before, g.Remaining())
	// Re-asking costs an attempt on top of the original question.
	assert.Equal(t, 2, g.Attempts())
}

func TestUnrecognizedAnswerTreatedAsUnknown(t *testing.T) {
	candidates := make([]Candidate, 0, 10)
	for year := 1930; year < 1970; year += 4 {
		candidates = append(candidates, Candidate{Year: year, Country: fmt.Sprintf("País %d", year)})
	}
	g := testGame(t, mundial.ModeTeam, candidates, 2)

	g.NextQuestion()
	before := g.Remaining()

	result := g.ProcessAnswer("quizás")
	assert.Equal(t, KindQuestion, result.Kind)
	assert.Equal(t, before, g.Remaining())
}

func TestGivesUpWhenAttemptsSpent(t *testing.T) {
	candidates := make([]Candidate, 0, 10)
	for year := 1930; year < 1970; year += 4 {
		candidates = append(candidates, Candidate{Year: year, Country: fmt.Sprintf("País %d", year)})
	}
	g := testGame(t, mundial.ModeTeam, candidates, 4)
	g.NextQuestion()
	g.attempts = maxAttemptsTeam

	result := g.ProcessAnswer("no")
	assert.Equal(t, KindGaveUp, result.Kind)
	assert.Equal(t, StatusGaveUp, g.Status())
}

func TestParseAnswerTokens(t *testing.T) {
	cases := []struct {
		in   string
		want answer
	}{
		{"sí", answerYes},
		{"si", answerYes},
		{"s", answerYes},
		{"yes", answerYes},
		{"Y", answerYes},
		{"  SÍ  ", answerYes},
		{"no", answerNo},
		{"n", answerNo},
		{"no sé", answerUnknown},
		{"no se", answerUnknown},
		{"nose", answerUnknown},
		{"ns", answerUnknown},
		{"tal vez", answerUnknown},
		{"", answerUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseAnswer(tc.in), "input %q", tc.in)
	}
}

// truthfulAnswer replies the way a player thinking of target would.
func truthfulAnswer(q *question, pending *Candidate, target Candidate) string {
	if pending != nil {
		if *pending == target {
			return "sí"
		}
		return "no"
	}
	matched, known := matches(*q, target)
	if !known {
		return "no sé"
	}
	if matched {
		return "sí"
	}
	return "no"
}

// Play full games against an oracle: answering every question
// truthfully must end in a win on the target, because consistent
// filtering never discards it.
func TestFullGameFindsTarget(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := testGame(t, mundial.ModeTeam, testTournaments(), seed)
		target := Candidate{Year: 1970, Country: "Brasil"}

		result := g.NextQuestion()
		for !result.Terminal() {
			result = g.ProcessAnswer(truthfulAnswer(g.last, g.pending, target))
		}

		require.Equal(t, KindWon, result.Kind, "seed %d", seed)
		assert.Equal(t, target, *result.Candidate, "seed %d", seed)
	}
}

func TestFullGamePlayerMode(t *testing.T) {
	players := PlayerCandidates([]mundial.Player{
		{Name: "Pelé", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Félix", Year: 1970, Country: "Brasil", Position: mundial.PositionGoalkeeper, Starter: true},
		{Name: "Diego Maradona", Year: 1986, Country: "Argentina", Position: mundial.PositionMidfielder, Starter: true},
		{Name: "Paulo Dybala", Year: 2022, Country: "Argentina", Position: mundial.PositionForward, Starter: false},
		{Name: "Lionel Messi", Year: 2022, Country: "Argentina", Position: mundial.PositionForward, Starter: true},
	})

	for seed := int64(0); seed < 20; seed++ {
		g := testGame(t, mundial.ModePlayer, players, seed)
		target := players[1] // Félix, the only goalkeeper

		result := g.NextQuestion()
		for !result.Terminal() {
			result = g.ProcessAnswer(truthfulAnswer(g.last, g.pending, target))
		}

		require.Equal(t, KindWon, result.Kind, "seed %d", seed)
		assert.Equal(t, target, *result.Candidate, "seed %d", seed)
	}
}

func TestFullGameUniformPoolFallsBackToDirectQuestions(t *testing.T) {
	// Identical on every heuristic dimension: only direct name
	// questions can separate these, and they must still find the
	// target.
	players := PlayerCandidates([]mundial.Player{
		{Name: "Jairzinho", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Tostão", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Pelé", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Roberto", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
	})

	for seed := int64(0); seed < 20; seed++ {
		g := testGame(t, mundial.ModePlayer, players, seed)
		target := players[2]

		result := g.NextQuestion()
		for !result.Terminal() {
			result = g.ProcessAnswer(truthfulAnswer(g.last, g.pending, target))
		}

		require.Equal(t, KindWon, result.Kind, "seed %d", seed)
		assert.Equal(t, target, *result.Candidate, "seed %d", seed)
	}
}

func TestPlayerModeAvoidsBackToBackCategories(t *testing.T) {
	players := make([]Candidate, 0, 30)
	positions := []string{
		mundial.PositionGoalkeeper, mundial.PositionDefender,
		mundial.PositionMidfielder, mundial.PositionForward,
	}
	for i := 0; i < 30; i++ {
		players = append(players, Candidate{
			Name:     fmt.Sprintf("Jugador %d", i),
			Year:     1950 + 4*(i%10),
			Country:  fmt.Sprintf("País %d", i%5),
			Position: positions[i%4],
			Starter:  i%2 == 0,
		})
	}
	g := testGame(t, mundial.ModePlayer, players, 7)

	// Answer "no sé" so the pool never shrinks and questions keep
	// coming until the attempt budget runs out.
	result := g.NextQuestion()
	for result.Kind == KindQuestion {
		result = g.ProcessAnswer("no sé")
	}

	for i := 1; i < len(g.asked); i++ {
		assert.NotEqual(t, g.asked[i-1], g.asked[i], "categories repeated back to back at %d", i)
	}
}

func TestEachQuestionRecordsOneCategory(t *testing.T) {
	players := make([]Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		players = append(players, Candidate{
			Name:    fmt.Sprintf("Jugador %d", i),
			Year:    1950 + 4*i,
			Country: fmt.Sprintf("País %d", i%3),
		})
	}

	for _, mode := range []mundial.Mode{mundial.ModeTeam, mundial.ModePlayer} {
		g := testGame(t, mode, players, 3)
		for want := 1; want <= 4; want++ {
			result := g.NextQuestion()
			require.Equal(t, KindQuestion, result.Kind, "mode %s", mode)
			assert.Len(t, g.asked, want, "mode %s", mode)
		}
	}
}

func TestTeamModeExhaustsCategoriesBeforeRepeating(t *testing.T) {
	candidates := make([]Candidate, 0, 12)
	for year := 1930; year < 1978; year += 4 {
		candidates = append(candidates, Candidate{Year: year, Country: fmt.Sprintf("País %d", year)})
	}
	g := testGame(t, mundial.ModeTeam, candidates, 9)

	result := g.NextQuestion()
	for result.Kind == KindQuestion && len(g.asked) < len(teamCategories) {
		result = g.ProcessAnswer("no sé")
	}

	seen := make(map[category]bool)
	for _, c := range g.asked[:min(len(g.asked), len(teamCategories))] {
		assert.False(t, seen[c], "category %s repeated before exhaustion", c)
		seen[c] = true
	}
}
