package care

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Category define las categorías de mascota que el motor reconoce.
// Cualquier otro valor se trata como neutro (sin bonus de categoría).
type Category string

const (
	CategoryDogs    Category = "Dogs"
	CategoryCats    Category = "Cats"
	CategoryBirds   Category = "Birds"
	CategoryOther   Category = "Other"
	CategoryUnknown Category = ""
)

// ParseCategory normaliza el texto libre que viene del document store.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dogs", "dog", "perros", "perro":
		return CategoryDogs
	case "cats", "cat", "gatos", "gato":
		return CategoryCats
	case "birds", "bird", "aves", "ave", "pájaros", "pajaros":
		return CategoryBirds
	case "other", "others", "otros", "otro", "exotic", "exóticos", "exoticos":
		return CategoryOther
	default:
		return CategoryUnknown
	}
}

const (
	DefaultAge    = 1.0
	DefaultWeight = 5.0
)

// FlexNumber acepta número JSON, string numérico o null.
// El valor crudo se conserva; la conversión ocurre en Float.
type FlexNumber string

// Num construye un FlexNumber desde un float (útil en CLI y tests).
func Num(f float64) FlexNumber {
	return FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexNumber(strings.TrimSpace(s))
		return nil
	}
	// Cualquier otro literal (número, bool, objeto) se guarda crudo;
	// Float decide si sirve o cae al default.
	*n = FlexNumber(b)
	return nil
}

// Float devuelve el valor numérico o def si falta, no es numérico o no es finito.
func (n FlexNumber) Float(def float64) float64 {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return def
	}
	s = strings.Replace(s, ",", ".", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// PetRecord es la entrada inmutable del motor. Es propiedad del document store.
type PetRecord struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Breed       string     `json:"breed"`
	Age         FlexNumber `json:"age,omitempty"`
	Weight      FlexNumber `json:"weight,omitempty"`
	OwnerUserID string     `json:"ownerUserId,omitempty"`
}

// age en años. Negativo se considera dato inválido.
func (p PetRecord) age() float64 {
	a := p.Age.Float(DefaultAge)
	if a < 0 {
		return DefaultAge
	}
	return a
}

// weight en kg. Cero o negativo se considera dato inválido.
func (p PetRecord) weight() float64 {
	w := p.Weight.Float(DefaultWeight)
	if w <= 0 {
		return DefaultWeight
	}
	return w
}

// AttributeScores son los cinco sub-scores, cada uno en [0,100].
type AttributeScores struct {
	EnergyLevel    int `json:"energyLevel"`
	SocialNeed     int `json:"socialNeed"`
	HealthRisk     int `json:"healthRisk"`
	CareComplexity int `json:"careComplexity"`
	Adaptability   int `json:"adaptability"`
}

type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank permite ordenar prioridades; critical es la más alta.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type RecommendationType string

const (
	RecommendationExercise      RecommendationType = "exercise"
	RecommendationGentleCare    RecommendationType = "gentle_care"
	RecommendationSocialization RecommendationType = "socialization"
	RecommendationHealth        RecommendationType = "health_monitoring"
	RecommendationGrooming      RecommendationType = "grooming"
)

type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Priority    Priority           `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Actions     []string           `json:"actions"`
}

// Analysis es un valor: se crea por llamada y no se muta.
type Analysis struct {
	Scores          AttributeScores  `json:"scores"`
	AIScore         int              `json:"aiScore"`
	Recommendations []Recommendation `json:"recommendations"`
}

type FeedingPlan struct {
	DailyCalories float64  `json:"dailyCalories"`
	Protein       float64  `json:"protein"`
	Fat           float64  `json:"fat"`
	Fiber         float64  `json:"fiber"`
	Frequency     int      `json:"frequency"`
	Supplements   []string `json:"supplements"`
	Restrictions  []string `json:"restrictions"`
	Note          string   `json:"note"`
}

// Report es la salida completa del motor para un PetRecord.
type Report struct {
	Scores          AttributeScores  `json:"scores"`
	AIScore         int              `json:"aiScore"`
	Recommendations []Recommendation `json:"recommendations"`
	FeedingPlan     FeedingPlan      `json:"feedingPlan"`
}
