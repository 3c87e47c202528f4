package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("pet belongs to another user")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput guarda age y weight como texto crudo; el motor de cuidado los interpreta.
type CreateInput struct {
	Name     string
	Category string
	Breed    string
	Age      string
	Weight   string
}

func (in CreateInput) normalized() (CreateInput, error) {
	out := CreateInput{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Breed:    strings.TrimSpace(in.Breed),
		Age:      strings.TrimSpace(in.Age),
		Weight:   strings.TrimSpace(in.Weight),
	}
	if out.Name == "" || out.Category == "" {
		return CreateInput{}, ErrInvalidInput
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, ErrInvalidInput
	}
	in, err := in.normalized()
	if err != nil {
		return Pet{}, err
	}

	now := s.now().UTC()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        in.Name,
		Category:    in.Category,
		Breed:       in.Breed,
		Age:         in.Age,
		Weight:      in.Weight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetOwned devuelve la mascota solo si pertenece a userID (ErrForbidden si no).
func (s *Service) GetOwned(ctx context.Context, userID, petID string) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}
