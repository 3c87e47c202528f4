package pets

import (
	"context"
	"time"
)

// Pet es la lectura de un documento de mascota del document store.
// Age y Weight se guardan tal como vienen (pueden ser texto libre);
// el motor de cuidado decide cómo interpretarlos.
type Pet struct {
	ID          string
	OwnerUserID string

	Name     string
	Category string // Dogs, Cats, Birds, Other
	Breed    string

	Age    string // años, puede ser fraccional o vacío
	Weight string // kg, puede ser vacío

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository es el puerto al document store de mascotas (memory o postgres).
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
}
