package care

import (
	"fmt"
	"strings"
)

// Umbrales de las reglas de recomendación.
const (
	highEnergyThreshold     = 70
	lowEnergyThreshold      = 30
	highSocialThreshold     = 60
	healthRiskThreshold     = 50
	careComplexityThreshold = 60
)

// GenerateRecommendations evalúa las reglas en orden fijo:
// energía, socialización, salud, grooming. Ese orden es también el desempate.
// Si ninguna regla aplica devuelve una lista vacía (no nil).
func GenerateRecommendations(p PetRecord, s AttributeScores) []Recommendation {
	name := displayName(p.Name)
	out := make([]Recommendation, 0, 4)

	switch {
	case s.EnergyLevel > highEnergyThreshold:
		out = append(out, Recommendation{
			Type:        RecommendationExercise,
			Priority:    PriorityHigh,
			Title:       "Programa de ejercicio intensivo",
			Description: fmt.Sprintf("%s tiene un nivel de energía alto y necesita actividad física diaria.", name),
			Actions: []string{
				"Al menos 60 minutos de ejercicio diario",
				"Juegos de búsqueda y agilidad",
				"Juguetes interactivos para estimulación mental",
				"Paseos en horarios variados",
			},
		})
	case s.EnergyLevel < lowEnergyThreshold:
		out = append(out, Recommendation{
			Type:        RecommendationGentleCare,
			Priority:    PriorityMedium,
			Title:       "Cuidado suave y actividad moderada",
			Description: fmt.Sprintf("%s tiene poca energía; conviene actividad de bajo impacto.", name),
			Actions: []string{
				"Paseos cortos y tranquilos",
				"Zonas de descanso cómodas",
				"Control de peso mensual",
			},
		})
	}

	if s.SocialNeed > highSocialThreshold {
		out = append(out, Recommendation{
			Type:        RecommendationSocialization,
			Priority:    PriorityHigh,
			Title:       "Programa de socialización",
			Description: fmt.Sprintf("%s necesita contacto frecuente con personas y otros animales.", name),
			Actions: []string{
				"Interacción diaria con la familia",
				"Encuentros supervisados con otras mascotas",
				"Evitar largos periodos en soledad",
				"Clases de socialización o adiestramiento",
			},
		})
	}

	if s.HealthRisk > healthRiskThreshold {
		out = append(out, Recommendation{
			Type:        RecommendationHealth,
			Priority:    PriorityCritical,
			Title:       "Seguimiento de salud especial",
			Description: fmt.Sprintf("%s presenta un riesgo de salud elevado por edad, raza o tamaño.", name),
			Actions: []string{
				"Chequeo veterinario cada 6 meses",
				"Análisis de sangre anual",
				"Registro de peso y apetito",
				"Plan de vacunación al día",
			},
		})
	}

	if s.CareComplexity > careComplexityThreshold {
		out = append(out, Recommendation{
			Type:        RecommendationGrooming,
			Priority:    PriorityMedium,
			Title:       "Grooming profesional",
			Description: fmt.Sprintf("El cuidado de %s es complejo; se recomienda apoyo profesional.", name),
			Actions: []string{
				"Cepillado 3 veces por semana",
				"Grooming profesional mensual",
				"Revisión de uñas, oídos y dientes",
			},
		})
	}

	return out
}

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Tu mascota"
	}
	return name
}
