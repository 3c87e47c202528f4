package care

// Pesos del score compuesto, en centésimas. Suman 100.
const (
	weightEnergy         = 25
	weightSocialNeed     = 20
	weightHealthRisk     = 30
	weightCareComplexity = 15
	weightAdaptability   = 10
)

// CompositeScore combina los sub-scores en el aiScore [0,100]:
//
//	0.25·E + 0.20·S + 0.30·(100−H) + 0.15·(100−C) + 0.10·A
//
// healthRisk y careComplexity se invierten: más riesgo o más complejidad de
// cuidado bajan el score. Se calcula en centésimas enteras para que el
// redondeo sea exacto y reproducible.
func CompositeScore(s AttributeScores) int {
	hundredths := weightEnergy*clamp(s.EnergyLevel) +
		weightSocialNeed*clamp(s.SocialNeed) +
		weightHealthRisk*(100-clamp(s.HealthRisk)) +
		weightCareComplexity*(100-clamp(s.CareComplexity)) +
		weightAdaptability*clamp(s.Adaptability)

	return clamp((hundredths + 50) / 100)
}
