package akinator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golazoapps/mundialito/internal/mundial"
)

func TestMedianYear(t *testing.T) {
	cases := []struct {
		name  string
		years []int
		want  int
	}{
		{"odd count", []int{1998, 1970, 1986}, 1986},
		{"even count takes upper middle", []int{1970, 1974, 1978, 1998}, 1978},
		{"single", []int{2022}, 2022},
		{"unsorted input", []int{2022, 1930, 1970}, 1970},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := make([]Candidate, 0, len(tc.years))
			for _, y := range tc.years {
				candidates = append(candidates, Candidate{Year: y})
			}
			assert.Equal(t, tc.want, medianYear(candidates))
		})
	}
}

func TestPresentPositionPrefersFixedOrder(t *testing.T) {
	g := testGame(t, mundial.ModePlayer, []Candidate{
		{Name: "A", Position: mundial.PositionForward},
		{Name: "B", Position: mundial.PositionDefender},
		{Name: "C", Position: mundial.PositionGoalkeeper},
	}, 1)
	assert.Equal(t, mundial.PositionGoalkeeper, g.presentPosition())

	g = testGame(t, mundial.ModePlayer, []Candidate{
		{Name: "A", Position: mundial.PositionForward},
		{Name: "B", Position: mundial.PositionMidfielder},
	}, 1)
	assert.Equal(t, mundial.PositionMidfielder, g.presentPosition())

	g = testGame(t, mundial.ModePlayer, []Candidate{
		{Name: "A", Position: mundial.PositionForward},
	}, 1)
	assert.Equal(t, mundial.PositionForward, g.presentPosition())
}

func TestPositionPhrase(t *testing.T) {
	assert.Equal(t, "portero", positionPhrase(mundial.PositionGoalkeeper))
	assert.Equal(t, "defensa", positionPhrase(mundial.PositionDefender))
	assert.Equal(t, "mediocampista", positionPhrase(mundial.PositionMidfielder))
	assert.Equal(t, "delantero", positionPhrase(mundial.PositionForward))
	assert.Equal(t, "delantero", positionPhrase("Líbero"))
}

// The rendered text and the structured parameters must describe the
// same thing: whatever year or attribute the prompt names is the one
// the filter will use.
func TestQuestionTextAgreesWithParameters(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := testGame(t, mundial.ModeTeam, testTournaments(), seed)
		q := g.nextTeamQuestion()

		switch q.category {
		case categoryEpoch:
			assert.Contains(t, q.text, fmt.Sprintf("%d", q.year))
		case categoryContinent:
			if q.wantsYes {
				assert.Contains(t, q.text, "Sudamérica")
			} else {
				assert.Contains(t, q.text, "Europa")
			}
		case categoryTitles:
			if q.wantsYes {
				assert.Contains(t, q.text, "más de 2")
			} else {
				assert.Contains(t, q.text, "solo un")
			}
		case categoryDirectCountry:
			assert.Contains(t, q.text, q.target)
		default:
			t.Fatalf("unexpected team category %q", q.category)
		}
	}
}

func TestPlayerQuestionTextAgreesWithParameters(t *testing.T) {
	players := []Candidate{
		{Name: "Pelé", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Félix", Year: 1970, Country: "Brasil", Position: mundial.PositionGoalkeeper, Starter: true},
		{Name: "Paulo Dybala", Year: 2022, Country: "Argentina", Position: mundial.PositionForward, Starter: false},
	}

	for seed := int64(0); seed < 10; seed++ {
		g := testGame(t, mundial.ModePlayer, players, seed)
		q := g.nextPlayerQuestion()

		switch q.category {
		case categoryPosition:
			assert.Contains(t, q.text, positionPhrase(q.target))
		case categoryEpoch:
			assert.Contains(t, q.text, fmt.Sprintf("%d", q.year))
		case categoryCountry, categoryDirectPlayer:
			assert.Contains(t, q.text, q.target)
		case categoryStarter:
			if q.wantsYes {
				assert.Contains(t, q.text, "titular")
			} else {
				assert.Contains(t, q.text, "suplente")
			}
		default:
			t.Fatalf("unexpected player category %q", q.category)
		}
	}
}

func TestContinentQuestionProbesSouthAmericaWhenPresent(t *testing.T) {
	g := testGame(t, mundial.ModeTeam, []Candidate{
		{Year: 1970, Country: "Brasil"},
		{Year: 1998, Country: "Francia"},
	}, 1)

	for {
		q := g.nextTeamQuestion()
		if q.category != categoryContinent {
			continue
		}
		assert.True(t, q.wantsYes)
		assert.Contains(t, q.text, "Sudamérica")
		return
	}
}

func TestStarterQuestionSkipsUninformativeSplit(t *testing.T) {
	// All candidates are starters: asking "titular" cannot split the
	// set, so the prompt flips to "suplente" with wantsYes false.
	allStarters := []Candidate{
		{Name: "A", Year: 1970, Country: "Brasil", Starter: true},
		{Name: "B", Year: 1986, Country: "Argentina", Starter: true},
		{Name: "C", Year: 2022, Country: "Francia", Starter: true},
	}

	g := testGame(t, mundial.ModePlayer, allStarters, 1)
	for i := 0; i < 60; i++ {
		q := g.nextPlayerQuestion()
		if q.category != categoryStarter {
			continue
		}
		assert.False(t, q.wantsYes)
		assert.Contains(t, q.text, "suplente")
		return
	}
	t.Fatal("starter category never selected")
}

func TestDirectCountryFallbackWhenHeuristicsCannotSplit(t *testing.T) {
	// Candidates identical on every heuristic dimension: no epoch,
	// continent, or titles question can shrink the set, so the
	// generator names a country outright.
	pool := []Candidate{
		{Year: 1970, Country: "Brasil"},
		{Year: 1970, Country: "Brasil"},
		{Year: 1970, Country: "Brasil"},
	}
	g := testGame(t, mundial.ModeTeam, pool, 1)

	q := g.nextTeamQuestion()
	assert.Equal(t, categoryDirectCountry, q.category)
	assert.Equal(t, "Brasil", q.target)
	assert.Contains(t, q.text, "Brasil")
	assert.Equal(t, []category{categoryDirectCountry}, g.asked)
}

func TestDirectPlayerFallbackWhenHeuristicsCannotSplit(t *testing.T) {
	pool := []Candidate{
		{Name: "Jairzinho", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Tostão", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "Pelé", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
	}
	g := testGame(t, mundial.ModePlayer, pool, 2)

	q := g.nextPlayerQuestion()
	assert.Equal(t, categoryDirectPlayer, q.category)
	assert.Contains(t, []string{"Jairzinho", "Tostão", "Pelé"}, q.target)
	assert.Contains(t, q.text, q.target)
}

func TestMultipleChampionFallbackWithoutNames(t *testing.T) {
	// Uniform pool with no usable names: the only question left is the
	// repeat-champion probe.
	pool := []Candidate{
		{Year: 1970, Country: "Brasil"},
		{Year: 1970, Country: "Brasil"},
		{Year: 1970, Country: "Brasil"},
	}
	g := testGame(t, mundial.ModePlayer, pool, 1)

	q := g.nextPlayerQuestion()
	assert.Equal(t, categoryMultipleChampion, q.category)
	assert.Contains(t, q.text, "más de un mundial")
}

func TestCategoryDiscriminates(t *testing.T) {
	g := testGame(t, mundial.ModePlayer, []Candidate{
		{Name: "A", Year: 1970, Country: "Brasil", Position: mundial.PositionForward, Starter: true},
		{Name: "B", Year: 1970, Country: "Brasil", Position: mundial.PositionGoalkeeper, Starter: true},
	}, 1)

	assert.True(t, g.categoryDiscriminates(categoryPosition))
	assert.False(t, g.categoryDiscriminates(categoryEpoch))
	assert.False(t, g.categoryDiscriminates(categoryCountry))
	assert.False(t, g.categoryDiscriminates(categoryStarter))
	assert.False(t, g.categoryDiscriminates(categoryContinent))
}
