package care

// Bases de cada sub-score antes de ajustes.
const (
	baseEnergy         = 50
	baseSocialNeed     = 30
	baseHealthRisk     = 20
	baseCareComplexity = 20
	baseAdaptability   = 50

	largeWeightKg = 30.0
	tinyWeightKg  = 2.0
	smallWeightKg = 10.0
)

// ScoreAttributes calcula los cinco sub-scores de un PetRecord.
// Función pura: sin I/O ni estado compartido.
//
// Orden: energy y healthRisk se calculan antes que careComplexity,
// que incorpora el 30% de cada uno.
func ScoreAttributes(p PetRecord) AttributeScores {
	age := p.age()
	weight := p.weight()
	cat := ParseCategory(p.Category)
	breed := normalizeBreed(p.Breed)
	patterns := breedTables[cat]

	energy := energyLevel(age, weight, cat, breed, patterns)
	risk := healthRisk(age, weight, breed, patterns)

	return AttributeScores{
		EnergyLevel:    energy,
		SocialNeed:     socialNeed(age, cat, breed, patterns),
		HealthRisk:     risk,
		CareComplexity: careComplexity(energy, risk, cat, breed, patterns),
		Adaptability:   adaptability(age, weight),
	}
}

func energyLevel(age, weight float64, cat Category, breed string, bp breedPatterns) int {
	score := baseEnergy

	switch {
	case age < 1:
		score += 30
	case age < 3:
		score += 20
	case age <= 7:
	case age <= 10:
		score -= 15
	default:
		score -= 25
	}

	switch {
	case matchAny(breed, bp.highEnergy):
		score += 20
	case matchAny(breed, bp.lowEnergy):
		score -= 20
	}

	switch {
	case weight > largeWeightKg:
		score += 5
	case weight < tinyWeightKg:
		score += 10
	}

	switch cat {
	case CategoryDogs:
		score += 10
	case CategoryCats:
		score -= 5
	case CategoryBirds:
		score += 5
	}

	return clamp(score)
}

func socialNeed(age float64, cat Category, breed string, bp breedPatterns) int {
	score := baseSocialNeed

	switch {
	case age < 1:
		score += 10
	case age > 8:
		score -= 5
	}

	if matchAny(breed, bp.companion) {
		score += 15
	}

	switch cat {
	case CategoryDogs:
		score += 25
	case CategoryCats:
		score += 5
	case CategoryBirds:
		score += 20
	}

	return clamp(score)
}

func healthRisk(age, weight float64, breed string, bp breedPatterns) int {
	score := baseHealthRisk

	switch {
	case age < 1:
		score += 10
	case age <= 5:
	case age <= 8:
		score += 15
	default:
		score += 30
	}

	score += matchRisk(breed, bp.risk)

	switch {
	case weight > largeWeightKg:
		score += 10
	case weight < tinyWeightKg:
		score += 5
	}

	return clamp(score)
}

func careComplexity(energy, risk int, cat Category, breed string, bp breedPatterns) int {
	// Se trabaja en décimas para que el 30% no dependa de redondeos de float.
	tenths := baseCareComplexity*10 + 3*risk + 3*energy

	if matchAny(breed, bp.coat) {
		tenths += 150
	}

	switch cat {
	case CategoryBirds:
		tenths += 200
	case CategoryOther:
		tenths += 150
	}

	// .5 redondea hacia arriba (tenths nunca es negativo)
	return clamp((tenths + 5) / 10)
}

// adaptability tiene su pico entre 1 y 7 años y penaliza fuera de ese rango.
func adaptability(age, weight float64) int {
	score := baseAdaptability

	switch {
	case age < 1:
		score -= 10
	case age <= 7:
		score += 20
	case age <= 10:
		score -= 10
	default:
		score -= 20
	}

	switch {
	case weight > largeWeightKg:
		score -= 10
	case weight < smallWeightKg:
		score += 10
	}

	return clamp(score)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
