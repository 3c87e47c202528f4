package detection

import (
	"context"
	"fmt"
	"time"
)

// Heuristic clasifica usando solo metadata de la imagen (sin red).
// La hora del día aporta como máximo 1 punto; el reloj se inyecta para tests.
type Heuristic struct {
	now func() time.Time
}

func NewHeuristic(now func() time.Time) *Heuristic {
	if now == nil {
		now = time.Now
	}
	return &Heuristic{now: now}
}

func (h *Heuristic) Name() string { return SourceHeuristic }

// orden de desempate: dog -> cat -> bird
var heuristicOrder = []AnimalType{AnimalDog, AnimalCat, AnimalBird}

const (
	maxHeuristicConfidence  = 0.6
	baseHeuristicConfidence = 0.3
	pointConfidence         = 0.05
)

func (h *Heuristic) Detect(ctx context.Context, img Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !img.HasDimensions() {
		return Result{}, fmt.Errorf("%w: missing dimensions", ErrInvalidImage)
	}

	points := h.score(img)

	winner := heuristicOrder[0]
	for _, a := range heuristicOrder[1:] {
		if points[a] > points[winner] {
			winner = a
		}
	}

	conf := baseHeuristicConfidence + pointConfidence*float64(points[winner])
	if conf > maxHeuristicConfidence {
		conf = maxHeuristicConfidence
	}

	return Result{
		Success:    true,
		AnimalType: winner,
		Breed:      guessBreed(winner, img),
		Confidence: conf,
		Source:     SourceHeuristic,
	}, nil
}

func (h *Heuristic) score(img Image) map[AnimalType]int {
	p := map[AnimalType]int{}

	switch r := img.AspectRatio(); {
	case r >= 1.2:
		p[AnimalDog] += 2
		p[AnimalCat]++
	case r >= 0.8:
		p[AnimalCat] += 2
		p[AnimalBird]++
	default:
		p[AnimalBird] += 2
		p[AnimalCat]++
	}

	switch mp := img.Megapixels(); {
	case mp >= 2:
		p[AnimalDog] += 2
		p[AnimalCat]++
	case mp >= 0.5:
		p[AnimalCat] += 2
		p[AnimalDog]++
	default:
		p[AnimalBird] += 2
	}

	switch size := img.Size; {
	case size >= 1500*1024:
		p[AnimalDog]++
	case size >= 300*1024:
		p[AnimalCat]++
	default:
		p[AnimalBird]++
	}

	switch hour := h.now().Hour(); {
	case hour >= 6 && hour < 12:
		p[AnimalDog]++
	case hour >= 12 && hour < 19:
		p[AnimalBird]++
	default:
		p[AnimalCat]++
	}

	return p
}

func guessBreed(a AnimalType, img Image) string {
	r, mp := img.AspectRatio(), img.Megapixels()
	switch a {
	case AnimalDog:
		switch {
		case r >= 1.5:
			return "German Shepherd"
		case mp >= 2:
			return "Labrador Retriever"
		case mp < 0.5:
			return "Chihuahua"
		}
		return "Beagle"
	case AnimalCat:
		switch {
		case mp >= 2:
			return "Maine Coon"
		case r < 0.9:
			return "Siamese"
		}
		return "Mixed"
	case AnimalBird:
		if mp < 0.3 {
			return "Budgerigar"
		}
		return "Canary"
	}
	return "Mixed"
}
