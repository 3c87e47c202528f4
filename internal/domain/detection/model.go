package detection

import (
	"context"
	"encoding/json"
	"errors"

	"pet-care-insights/internal/domain/breeds"
)

var (
	// ErrNoAnimal: el proveedor respondió, pero ninguna etiqueta identifica un animal.
	ErrNoAnimal = errors.New("no animal label in provider response")
	// ErrInvalidImage: los bytes no son una imagen decodificable.
	ErrInvalidImage = errors.New("invalid image")
)

type AnimalType string

const (
	AnimalDog   AnimalType = "dog"
	AnimalCat   AnimalType = "cat"
	AnimalBird  AnimalType = "bird"
	AnimalOther AnimalType = "other"
)

// SourceHeuristic identifica al clasificador local de respaldo.
const SourceHeuristic = "local_heuristic"

// Result es la salida normalizada de un proveedor o del heurístico local.
type Result struct {
	Success    bool       `json:"success"`
	AnimalType AnimalType `json:"animalType"`
	Breed      string     `json:"breed,omitempty"`
	Confidence float64    `json:"confidence"`
	Source     string     `json:"source"`
	Fallback   bool       `json:"fallback"`
}

// Detection es el resultado final del agregador: el Result ganador más la
// metadata de raza. Si Success es false el resto de campos queda vacío.
type Detection struct {
	ID string `json:"id,omitempty"`
	Result
	Enriched *breeds.Info `json:"enriched,omitempty"`
}

var unsuccessfulJSON = []byte(`{"success":false}`)

// MarshalJSON: un resultado exitoso siempre lleva animalType, confidence,
// source y fallback; uno fallido se reduce a {"success":false}.
func (d Detection) MarshalJSON() ([]byte, error) {
	if !d.Success {
		return unsuccessfulJSON, nil
	}
	type plain Detection
	return json.Marshal(plain(d))
}

// Unsuccessful es la respuesta explícita de "no se pudo clasificar".
func Unsuccessful() Detection {
	return Detection{}
}

// Provider es un servicio externo de clasificación de imágenes.
type Provider interface {
	Name() string
	Detect(ctx context.Context, img Image) (Result, error)
}

// configurable lo implementan los proveedores que pueden quedar sin credenciales.
type configurable interface {
	IsConfigured() bool
}

func isConfigured(p Provider) bool {
	if c, ok := p.(configurable); ok {
		return c.IsConfigured()
	}
	return true
}

func clampConfidence(c float64) float64 {
	if c != c || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
