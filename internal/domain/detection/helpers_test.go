package detection

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// heicBytes es el encabezado ISO-BMFF de una foto HEIC de celular; DecodeConfig no lo conoce.
func heicBytes() []byte {
	b := []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic")
	return append(b, make([]byte, 256)...)
}

type stubProvider struct {
	name     string
	result   Result
	err      error
	delay    time.Duration
	unconfig bool
	panics   bool
	calls    atomic.Int32
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) IsConfigured() bool { return !s.unconfig }

func (s *stubProvider) Detect(ctx context.Context, img Image) (Result, error) {
	s.calls.Add(1)
	if s.panics {
		panic("boom")
	}
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-t.C:
		}
	}
	if s.err != nil {
		return Result{}, s.err
	}
	return s.result, nil
}

func succeeding(name string, animal AnimalType, breed string, conf float64) *stubProvider {
	return &stubProvider{
		name: name,
		result: Result{
			Success:    true,
			AnimalType: animal,
			Breed:      breed,
			Confidence: conf,
			Source:     name,
		},
	}
}

func failing(name string, err error) *stubProvider {
	return &stubProvider{name: name, err: err}
}

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 5, 10, hour, 30, 0, 0, time.UTC)
	}
}
