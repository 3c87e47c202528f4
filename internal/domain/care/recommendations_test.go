package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recTypes(recs []Recommendation) []RecommendationType {
	out := make([]RecommendationType, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Type)
	}
	return out
}

func TestGenerateRecommendations_OnlyHealthRule(t *testing.T) {
	rec := PetRecord{Name: "Nube", Category: "Cats", Breed: "Scottish Fold", Age: Num(6), Weight: Num(4)}
	recs := GenerateRecommendations(rec, ScoreAttributes(rec))

	require.Len(t, recs, 1)
	assert.Equal(t, RecommendationHealth, recs[0].Type)
	assert.Equal(t, PriorityCritical, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "Nube")
	assert.Len(t, recs[0].Actions, 4)
}

func TestGenerateRecommendations_SeniorBulldog(t *testing.T) {
	rec := PetRecord{Name: "Toro", Category: "Dogs", Breed: "Bulldog", Age: Num(9), Weight: Num(25)}
	recs := GenerateRecommendations(rec, ScoreAttributes(rec))

	assert.Equal(t, []RecommendationType{RecommendationGentleCare, RecommendationHealth}, recTypes(recs))
	assert.Equal(t, PriorityMedium, recs[0].Priority)
	assert.Equal(t, PriorityCritical, recs[1].Priority)
}

func TestGenerateRecommendations_FixedRuleOrder(t *testing.T) {
	s := AttributeScores{EnergyLevel: 90, SocialNeed: 80, HealthRisk: 70, CareComplexity: 75, Adaptability: 50}
	recs := GenerateRecommendations(PetRecord{}, s)

	assert.Equal(t, []RecommendationType{
		RecommendationExercise,
		RecommendationSocialization,
		RecommendationHealth,
		RecommendationGrooming,
	}, recTypes(recs))
	assert.Equal(t, []Priority{PriorityHigh, PriorityHigh, PriorityCritical, PriorityMedium},
		[]Priority{recs[0].Priority, recs[1].Priority, recs[2].Priority, recs[3].Priority})
	assert.Contains(t, recs[0].Description, "Tu mascota")

	for _, r := range recs {
		assert.GreaterOrEqual(t, len(r.Actions), 3)
		assert.LessOrEqual(t, len(r.Actions), 4)
	}
}

func TestGenerateRecommendations_ThresholdsAreStrict(t *testing.T) {
	s := AttributeScores{EnergyLevel: 70, SocialNeed: 60, HealthRisk: 50, CareComplexity: 60, Adaptability: 50}
	recs := GenerateRecommendations(PetRecord{}, s)

	require.NotNil(t, recs)
	assert.Empty(t, recs)

	s.EnergyLevel = 30
	assert.Empty(t, GenerateRecommendations(PetRecord{}, s))

	s.EnergyLevel = 29
	assert.Equal(t, []RecommendationType{RecommendationGentleCare}, recTypes(GenerateRecommendations(PetRecord{}, s)))
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityNormal.Rank())
}
