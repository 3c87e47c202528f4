package care

import (
	"fmt"
	"math"
	"strings"
)

const caloriesPerKg = 50.0

// GenerateFeedingPlan arma el plan nutricional base y aplica ajustes en orden.
// El orden importa: cada ajuste lee las calorías ya ajustadas, así que
// energía alta y edad > 7 se componen multiplicativamente.
func GenerateFeedingPlan(p PetRecord, a Analysis) FeedingPlan {
	cat := ParseCategory(p.Category)
	age := p.age()
	weight := p.weight()

	plan := FeedingPlan{
		DailyCalories: weight * caloriesPerKg,
		Protein:       25,
		Fat:           15,
		Fiber:         5,
		Frequency:     2,
		Supplements:   []string{},
		Restrictions:  restrictionsFor(cat),
	}
	if cat == CategoryCats {
		plan.Protein = 35
	}
	if age < 1 {
		plan.Frequency = 3
	}

	notes := make([]string, 0, 3)

	if a.Scores.EnergyLevel > highEnergyThreshold {
		plan.DailyCalories *= 1.3
		plan.Protein += 5
		notes = append(notes, "Calorías +30% y proteína extra por nivel de energía alto.")
	}
	if a.Scores.HealthRisk > healthRiskThreshold {
		plan.Supplements = append(plan.Supplements, healthSupplements...)
		notes = append(notes, "Suplementos recomendados por riesgo de salud elevado.")
	}
	if age > 7 {
		plan.DailyCalories *= 0.9
		plan.Fiber += 3
		notes = append(notes, "Calorías -10% y más fibra por edad senior.")
	}

	plan.DailyCalories = math.Round(plan.DailyCalories*100) / 100

	if len(notes) == 0 {
		plan.Note = fmt.Sprintf("Plan estándar para %s.", displayName(p.Name))
	} else {
		plan.Note = strings.Join(notes, " ")
	}
	return plan
}

// restrictionsFor devuelve una copia para que el caller no mute la tabla.
func restrictionsFor(cat Category) []string {
	src := toxicFoods[cat]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
