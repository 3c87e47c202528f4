package detection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
)

const DefaultProviderTimeout = 8 * time.Second

type SelectorConfig struct {
	// Timeout por llamada a cada proveedor (y al heurístico).
	Timeout time.Duration
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// Selector consulta todos los proveedores configurados en paralelo, espera a
// que todos terminen y se queda con el de mayor confianza.
type Selector struct {
	providers []Provider
	fallback  Provider
	timeout   time.Duration
	log       logger.Logger
	metrics   *metrics.Metrics
}

// NewSelector: el orden de providers define el desempate (gana el primero).
// fallback puede ser nil.
func NewSelector(providers []Provider, fallback Provider, cfg SelectorConfig) *Selector {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	ps := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &Selector{
		providers: ps,
		fallback:  fallback,
		timeout:   timeout,
		log:       log,
		metrics:   cfg.Metrics,
	}
}

// Active devuelve los nombres de los proveedores configurados, en orden.
func (s *Selector) Active() []string {
	out := []string{}
	for _, p := range s.providers {
		if isConfigured(p) {
			out = append(out, p.Name())
		}
	}
	return out
}

// Select nunca devuelve error: un fallo total es (Result{}, false).
func (s *Selector) Select(ctx context.Context, img Image) (Result, bool) {
	active := make([]Provider, 0, len(s.providers))
	for _, p := range s.providers {
		if !isConfigured(p) {
			s.metrics.ObserveProvider(p.Name(), "skipped", 0)
			continue
		}
		active = append(active, p)
	}

	results := make([]*Result, len(active))
	var fb *Result

	// Sin WithContext: un fallo no debe cancelar al resto.
	var g errgroup.Group
	for i, p := range active {
		g.Go(func() error {
			if r, ok := s.call(ctx, p, img); ok {
				results[i] = &r
			}
			return nil
		})
	}
	if s.fallback != nil {
		g.Go(func() error {
			if r, ok := s.call(ctx, s.fallback, img); ok {
				fb = &r
			}
			return nil
		})
	}
	_ = g.Wait()

	var best *Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.Confidence > best.Confidence {
			best = r
		}
	}
	if best != nil {
		return *best, true
	}
	if fb != nil {
		out := *fb
		out.Fallback = true
		return out, true
	}
	return Result{}, false
}

func (s *Selector) call(ctx context.Context, p Provider, img Image) (res Result, ok bool) {
	name := p.Name()
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			res, ok = Result{}, false
			s.fail(name, "panic", time.Since(start), fmt.Errorf("provider panic: %v", rec))
		}
	}()

	r, err := p.Detect(cctx, img)
	elapsed := time.Since(start)
	switch {
	case err != nil:
		s.fail(name, outcomeFor(cctx, err), elapsed, err)
		return Result{}, false
	case !r.Success:
		s.fail(name, "unsuccessful", elapsed, ErrNoAnimal)
		return Result{}, false
	}

	if r.Source == "" {
		r.Source = name
	}
	if r.AnimalType == "" {
		r.AnimalType = AnimalOther
	}
	r.Confidence = clampConfidence(r.Confidence)
	r.Fallback = false

	s.metrics.ObserveProvider(name, "success", elapsed)
	s.log.Debug("provider detection", map[string]any{
		"provider":   name,
		"animal":     string(r.AnimalType),
		"breed":      r.Breed,
		"confidence": r.Confidence,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	return r, true
}

func (s *Selector) fail(name, outcome string, d time.Duration, err error) {
	s.metrics.ObserveProvider(name, outcome, d)
	s.log.Warn("provider failed", map[string]any{
		"provider":   name,
		"outcome":    outcome,
		"elapsed_ms": d.Milliseconds(),
		"error":      err,
	})
}

func outcomeFor(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrNoAnimal):
		return "no_animal"
	}
	return "error"
}
