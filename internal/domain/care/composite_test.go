package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeScore_WeightedSum(t *testing.T) {
	cases := []struct {
		name   string
		scores AttributeScores
		want   int
	}{
		{"all fifty", AttributeScores{50, 50, 50, 50, 50}, 50},
		{"all zero: riesgo y complejidad invertidos suman", AttributeScores{0, 0, 0, 0, 0}, 45},
		{"worst case", AttributeScores{0, 0, 100, 100, 0}, 0},
		{"best case", AttributeScores{100, 100, 0, 0, 100}, 100},
		{"senior bulldog", AttributeScores{25, 50, 75, 50, 40}, 35},
		{"rounds half up", AttributeScores{2, 0, 100, 100, 0}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CompositeScore(c.scores))
		})
	}
}

func TestCompositeScore_InvertsHealthRiskAndCareComplexity(t *testing.T) {
	base := AttributeScores{EnergyLevel: 50, SocialNeed: 50, HealthRisk: 50, CareComplexity: 50, Adaptability: 50}
	ref := CompositeScore(base)

	riskier := base
	riskier.HealthRisk += 20
	assert.Less(t, CompositeScore(riskier), ref, "más healthRisk debe bajar el aiScore")

	harder := base
	harder.CareComplexity += 20
	assert.Less(t, CompositeScore(harder), ref, "más careComplexity debe bajar el aiScore")
}

func TestCompositeScore_MonotonicPerWeight(t *testing.T) {
	base := AttributeScores{EnergyLevel: 40, SocialNeed: 40, HealthRisk: 40, CareComplexity: 40, Adaptability: 40}
	ref := CompositeScore(base)

	up := []func(*AttributeScores){
		func(s *AttributeScores) { s.EnergyLevel += 20 },
		func(s *AttributeScores) { s.SocialNeed += 20 },
		func(s *AttributeScores) { s.Adaptability += 20 },
	}
	for i, f := range up {
		s := base
		f(&s)
		assert.Greater(t, CompositeScore(s), ref, "term %d should increase aiScore", i)
	}

	down := []func(*AttributeScores){
		func(s *AttributeScores) { s.HealthRisk += 20 },
		func(s *AttributeScores) { s.CareComplexity += 20 },
	}
	for i, f := range down {
		s := base
		f(&s)
		assert.Less(t, CompositeScore(s), ref, "term %d should decrease aiScore", i)
	}
}

func TestCompositeScore_ClampsOutOfRangeInput(t *testing.T) {
	assert.Equal(t, 100, CompositeScore(AttributeScores{500, 500, -50, -50, 500}))
	assert.Equal(t, 0, CompositeScore(AttributeScores{-10, -10, 300, 300, -10}))
}

func TestCompositeScore_Deterministic(t *testing.T) {
	rec := PetRecord{Category: "Cats", Breed: "Maine Coon", Age: "3", Weight: "7"}
	first := CompositeScore(ScoreAttributes(rec))
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, CompositeScore(ScoreAttributes(rec)))
	}
}
