package detection

import (
	"strings"

	"pet-care-insights/internal/domain/breeds"
)

// Label es una etiqueta cruda de un proveedor con su score en [0,1].
type Label struct {
	Name  string
	Score float64
}

var animalKeywords = []struct {
	animal AnimalType
	words  []string
}{
	{AnimalDog, []string{"dog", "puppy", "canine", "perro"}},
	{AnimalCat, []string{"cat", "kitten", "feline", "gato"}},
	{AnimalBird, []string{"bird", "parrot", "budgerigar", "parakeet", "cockatiel", "canary", "ave"}},
	{AnimalOther, []string{"rabbit", "hamster", "guinea pig", "reptile", "turtle", "lizard", "ferret", "fish"}},
}

// genericAnimal solo cuenta si ninguna etiqueta nombra una especie concreta.
var genericAnimal = []string{"animal", "mammal", "pet", "vertebrate", "mascota"}

// NormalizeLabels convierte etiquetas crudas al Result común.
// El tipo de animal sale de la etiqueta de animal con mayor score (a igualdad, la
// más específica: dog/cat/bird antes que other). La raza sale de cualquier
// etiqueta que coincida con una raza conocida de ese tipo. Sin etiqueta de
// animal devuelve ErrNoAnimal.
func NormalizeLabels(source string, labels []Label) (Result, error) {
	animal, score, ok := pickAnimal(labels)
	if !ok {
		return Result{}, ErrNoAnimal
	}

	breed, breedScore := pickBreed(animal, labels)
	conf := score
	if breed != "" && breedScore > conf {
		conf = breedScore
	}

	return Result{
		Success:    true,
		AnimalType: animal,
		Breed:      breed,
		Confidence: clampConfidence(conf),
		Source:     source,
	}, nil
}

// ParseAnimalType acepta variantes libres ("Dog", "perro", "kitten") y devuelve
// AnimalOther si no reconoce el texto.
func ParseAnimalType(s string) AnimalType {
	if a, ok := animalOf(s); ok {
		return a
	}
	return AnimalOther
}

func pickAnimal(labels []Label) (AnimalType, float64, bool) {
	var (
		best      AnimalType
		bestScore = -1.0
		bestRank  = len(animalKeywords)
	)
	for _, l := range labels {
		a, ok := animalOf(l.Name)
		if !ok {
			continue
		}
		rank := animalRank(a)
		if l.Score > bestScore || (l.Score == bestScore && rank < bestRank) {
			best, bestScore, bestRank = a, l.Score, rank
		}
	}
	if bestScore >= 0 {
		return best, bestScore, true
	}

	for _, l := range labels {
		if hasWord(normalizeLabel(l.Name), genericAnimal) && l.Score > bestScore {
			bestScore = l.Score
		}
	}
	if bestScore < 0 {
		return "", 0, false
	}
	return AnimalOther, bestScore, true
}

func pickBreed(animal AnimalType, labels []Label) (string, float64) {
	known := breeds.Known(string(animal))
	if len(known) == 0 {
		return "", 0
	}
	var (
		best      string
		bestScore = -1.0
	)
	for _, l := range labels {
		name := normalizeLabel(l.Name)
		for _, k := range known {
			if strings.Contains(" "+name+" ", " "+k+" ") && l.Score > bestScore {
				best, bestScore = titleCase(k), l.Score
				break
			}
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}

func animalOf(name string) (AnimalType, bool) {
	n := normalizeLabel(name)
	if n == "" {
		return "", false
	}
	for _, group := range animalKeywords {
		if hasWord(n, group.words) {
			return group.animal, true
		}
	}
	return "", false
}

// hasWord busca palabras completas (o su plural simple) dentro de n.
func hasWord(n string, words []string) bool {
	padded := " " + n + " "
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") || strings.Contains(padded, " "+w+"s ") {
			return true
		}
	}
	return false
}

func animalRank(a AnimalType) int {
	for i, g := range animalKeywords {
		if g.animal == a {
			return i
		}
	}
	return len(animalKeywords)
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
