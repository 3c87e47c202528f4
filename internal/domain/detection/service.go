package detection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"pet-care-insights/internal/domain/breeds"
	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
)

var ErrUnsupportedReference = errors.New("unsupported image reference")

// Cache guarda detecciones exitosas por hash de contenido.
type Cache interface {
	Get(ctx context.Context, key string) (Detection, bool, error)
	Set(ctx context.Context, key string, d Detection, ttl time.Duration) error
}

// ImageResolver descarga una referencia (http(s)://, s3://bucket/key).
// Devuelve ErrUnsupportedReference si no reconoce el esquema.
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) ([]byte, error)
}

type ServiceConfig struct {
	Cache    Cache
	Resolver ImageResolver
	CacheTTL time.Duration
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

type Service struct {
	selector *Selector
	cache    Cache
	resolver ImageResolver
	ttl      time.Duration
	log      logger.Logger
	metrics  *metrics.Metrics
	newID    func() string
}

func NewService(sel *Selector, cfg ServiceConfig) *Service {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		selector: sel,
		cache:    cfg.Cache,
		resolver: cfg.Resolver,
		ttl:      cfg.CacheTTL,
		log:      log,
		metrics:  cfg.Metrics,
		newID:    func() string { return uuid.NewString() },
	}
}

// Enrich adjunta la metadata de raza al resultado ganador.
func Enrich(r Result) Detection {
	if !r.Success {
		return Unsuccessful()
	}
	info := breeds.Lookup(string(r.AnimalType), r.Breed)
	return Detection{Result: r, Enriched: &info}
}

// Detect nunca falla: si nadie pudo clasificar devuelve Success=false.
func (s *Service) Detect(ctx context.Context, img Image) Detection {
	key := cacheKey(img.Data)

	if s.cache != nil {
		d, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.metrics.ObserveCache("error")
			s.log.Warn("detection cache get failed", map[string]any{"error": err})
		case ok:
			s.metrics.ObserveCache("hit")
			return d
		default:
			s.metrics.ObserveCache("miss")
		}
	}

	r, ok := s.selector.Select(ctx, img)
	if !ok {
		s.metrics.ObserveDetection("none", false)
		s.log.Warn("no source could classify image", map[string]any{"size": img.Size})
		return Unsuccessful()
	}

	d := Enrich(r)
	d.ID = s.newID()
	s.metrics.ObserveDetection(r.Source, r.Fallback)
	s.log.Info("image classified", map[string]any{
		"detection_id": d.ID,
		"source":       r.Source,
		"animal":       string(r.AnimalType),
		"breed":        r.Breed,
		"confidence":   r.Confidence,
		"fallback":     r.Fallback,
	})

	// el heurístico solo vale mientras ningún proveedor responda
	if s.cache != nil && !r.Fallback {
		if err := s.cache.Set(ctx, key, d, s.ttl); err != nil {
			s.log.Warn("detection cache set failed", map[string]any{"error": err})
		}
	}
	return d
}

// DetectBytes clasifica los bytes tal cual. Solo falla con payload vacío;
// formatos que no se pueden medir localmente igual van a los proveedores.
func (s *Service) DetectBytes(ctx context.Context, data []byte, uri string) (Detection, error) {
	img, err := NewImage(data, uri)
	if err != nil {
		return Detection{}, err
	}
	return s.Detect(ctx, img), nil
}

// DetectReference resuelve la referencia y clasifica.
func (s *Service) DetectReference(ctx context.Context, ref string) (Detection, error) {
	if s.resolver == nil {
		return Detection{}, ErrUnsupportedReference
	}
	data, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return Detection{}, err
	}
	return s.DetectBytes(ctx, data, ref)
}

func cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return "detection:" + hex.EncodeToString(sum[:])
}
