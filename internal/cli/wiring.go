package cli

import (
	"context"
	"fmt"
	"time"

	memcache "pet-care-insights/internal/adapters/cache/memory"
	rediscache "pet-care-insights/internal/adapters/cache/redis"
	"pet-care-insights/internal/adapters/images"
	"pet-care-insights/internal/adapters/providers/gemini"
	"pet-care-insights/internal/adapters/providers/googlevision"
	"pet-care-insights/internal/adapters/providers/imagga"
	"pet-care-insights/internal/config"
	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
)

// buildProviders en orden de desempate: googlevision, imagga, gemini.
// Los que no tienen credenciales quedan no configurados y el selector los omite.
func buildProviders(ctx context.Context, cfg *config.Config) ([]detection.Provider, error) {
	pc := cfg.Providers
	timeout := cfg.Detection.ProviderTimeout

	gv, err := googlevision.NewClient(googlevision.Config{
		Endpoint: pc.GoogleVision.Endpoint,
		APIKey:   pc.GoogleVision.APIKey,
		Timeout:  timeout,
	})
	if err != nil {
		return nil, err
	}
	im, err := imagga.NewClient(imagga.Config{
		Endpoint:  pc.Imagga.Endpoint,
		APIKey:    pc.Imagga.APIKey,
		APISecret: pc.Imagga.APISecret,
		Timeout:   timeout,
	})
	if err != nil {
		return nil, err
	}
	gm, err := gemini.NewClient(ctx, gemini.Config{
		APIKey: pc.Gemini.APIKey,
		Model:  pc.Gemini.Model,
	})
	if err != nil {
		return nil, err
	}
	return []detection.Provider{gv, im, gm}, nil
}

// buildCache usa Redis si hay addr y responde; si no, memoria.
// El close devuelto nunca es nil.
func buildCache(ctx context.Context, cfg *config.Config, log logger.Logger) (detection.Cache, func()) {
	if cfg.Redis.Addr == "" {
		return memcache.NewDetectionCache(), func() {}
	}

	rc := rediscache.New(rediscache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, using in-memory detection cache", map[string]any{
			"addr":  cfg.Redis.Addr,
			"error": err,
		})
		_ = rc.Close()
		return memcache.NewDetectionCache(), func() {}
	}
	log.Info("detection cache on redis", map[string]any{"addr": cfg.Redis.Addr})
	return rc, func() { _ = rc.Close() }
}

func buildDetectionService(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*detection.Service, func(), error) {
	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("providers: %w", err)
	}

	resolver, err := images.New(images.Config{
		Timeout:  cfg.Detection.ProviderTimeout,
		MaxBytes: cfg.Detection.MaxImageBytes,
		MinIO: images.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
		},
		AllowPrivateHosts: cfg.Detection.AllowPrivateImageHosts,
	})
	if err != nil {
		return nil, nil, err
	}

	dlog := log.With(map[string]any{"module": "detection"})
	sel := detection.NewSelector(providers, detection.NewHeuristic(nil), detection.SelectorConfig{
		Timeout: cfg.Detection.ProviderTimeout,
		Logger:  dlog,
		Metrics: m,
	})
	if active := sel.Active(); len(active) == 0 {
		log.Warn("no detection providers configured, only local heuristic available", nil)
	} else {
		log.Info("detection providers", map[string]any{"active": active})
	}

	cache, closeCache := buildCache(ctx, cfg, log)
	svc := detection.NewService(sel, detection.ServiceConfig{
		Cache:    cache,
		Resolver: resolver,
		CacheTTL: cfg.Detection.CacheTTL,
		Logger:   dlog,
		Metrics:  m,
	})
	return svc, closeCache, nil
}
