package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/httpclient"
)

var (
	ErrTooLarge      = errors.New("image exceeds size limit")
	ErrObjectMissing = errors.New("object not found")
	ErrForbiddenHost = errors.New("image host resolves to a non-public address")
)

const DefaultMaxBytes = 10 << 20

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type Config struct {
	Timeout  time.Duration
	MaxBytes int64
	MinIO    MinIOConfig

	// AllowPrivateHosts habilita descargas hacia loopback, redes privadas
	// y link-local. Solo para desarrollo local.
	AllowPrivateHosts bool
}

// objectStore es el único método de blob storage que se necesita.
type objectStore interface {
	Fetch(ctx context.Context, bucket, key string, max int64) ([]byte, error)
}

// Resolver implementa detection.ImageResolver para http(s):// y s3://bucket/key.
type Resolver struct {
	http  *httpclient.Client
	store objectStore
	max   int64
}

// New: sin endpoint de MinIO las referencias s3:// se rechazan como no soportadas.
func New(cfg Config) (*Resolver, error) {
	max := cfg.MaxBytes
	if max <= 0 {
		max = DefaultMaxBytes
	}
	r := &Resolver{http: httpclient.New(cfg.Timeout), max: max}
	if !cfg.AllowPrivateHosts {
		r.http.HTTP.Transport = publicOnlyTransport()
	}

	if endpoint := strings.TrimSpace(cfg.MinIO.Endpoint); endpoint != "" {
		mc, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("images: minio client: %w", err)
		}
		r.store = &minioStore{client: mc}
	}
	return r, nil
}

func (r *Resolver) Resolve(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		data, _, err := r.http.GetBytes(ctx, ref, r.max+1)
		if err != nil {
			return nil, fmt.Errorf("images: fetch %s: %w", ref, err)
		}
		return r.checkSize(data)

	case strings.HasPrefix(ref, "s3://"):
		if r.store == nil {
			return nil, fmt.Errorf("%w: s3 storage not configured", detection.ErrUnsupportedReference)
		}
		bucket, key, ok := splitS3(ref)
		if !ok {
			return nil, fmt.Errorf("%w: malformed s3 reference", detection.ErrUnsupportedReference)
		}
		data, err := r.store.Fetch(ctx, bucket, key, r.max+1)
		if err != nil {
			return nil, fmt.Errorf("images: fetch s3://%s/%s: %w", bucket, key, err)
		}
		return r.checkSize(data)
	}
	return nil, fmt.Errorf("%w: %q", detection.ErrUnsupportedReference, ref)
}

// publicOnlyTransport valida la IP ya resuelta en cada conexión, así que
// cubre redirects y DNS que apunte a la red interna.
func publicOnlyTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	d := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			return checkPublicAddr(address)
		},
	}
	t.DialContext = d.DialContext
	t.Proxy = nil
	return t
}

func checkPublicAddr(address string) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenHost, address)
	}
	a, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenHost, address)
	}
	a = a.Unmap()
	if !a.IsGlobalUnicast() || a.IsPrivate() {
		return fmt.Errorf("%w: %s", ErrForbiddenHost, a)
	}
	return nil
}

func (r *Resolver) checkSize(data []byte) ([]byte, error) {
	if int64(len(data)) > r.max {
		return nil, ErrTooLarge
	}
	return data, nil
}

// splitS3: "s3://bucket/path/to/key.jpg" -> ("bucket", "path/to/key.jpg").
func splitS3(ref string) (string, string, bool) {
	rest := strings.TrimPrefix(ref, "s3://")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || strings.TrimLeft(key, "/") == "" {
		return "", "", false
	}
	return bucket, strings.TrimLeft(key, "/"), true
}

type minioStore struct {
	client *minio.Client
}

func (m *minioStore) Fetch(ctx context.Context, bucket, key string, max int64) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, max))
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectMissing
		}
		return nil, err
	}
	return data, nil
}
