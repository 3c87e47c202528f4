package detection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristic_PointTable(t *testing.T) {
	cases := []struct {
		name   string
		img    Image
		hour   int
		animal AnimalType
		breed  string
		conf   float64
	}{
		{
			// ratio 1.6 -> dog+2 cat+1; 1.6MP -> cat+2 dog+1; 2MB -> dog+1; 9h -> dog+1
			name: "landscape large morning", img: Image{Width: 1600, Height: 1000, Size: 2 << 20},
			hour: 9, animal: AnimalDog, breed: "German Shepherd", conf: 0.55,
		},
		{
			// ratio 1 -> cat+2 bird+1; 0.64MP -> cat+2 dog+1; 400KB -> cat+1; 22h -> cat+1
			name: "square night", img: Image{Width: 800, Height: 800, Size: 400 * 1024},
			hour: 22, animal: AnimalCat, breed: "Mixed", conf: 0.6,
		},
		{
			// ratio 0.6 -> bird+2 cat+1; 0.15MP -> bird+2; 50KB -> bird+1; 14h -> bird+1
			name: "small portrait afternoon", img: Image{Width: 300, Height: 500, Size: 50 * 1024},
			hour: 14, animal: AnimalBird, breed: "Budgerigar", conf: 0.6,
		},
		{
			// dog 4 vs cat 4: desempate a favor de dog
			name: "tie resolves to dog", img: Image{Width: 1300, Height: 800, Size: 400 * 1024},
			hour: 9, animal: AnimalDog, breed: "German Shepherd", conf: 0.5,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := NewHeuristic(fixedClock(c.hour)).Detect(context.Background(), c.img)
			require.NoError(t, err)
			assert.True(t, r.Success)
			assert.Equal(t, c.animal, r.AnimalType)
			assert.Equal(t, c.breed, r.Breed)
			assert.InDelta(t, c.conf, r.Confidence, 1e-9)
			assert.Equal(t, SourceHeuristic, r.Source)
			assert.False(t, r.Fallback)
		})
	}
}

func TestHeuristic_ConfidenceNeverExceedsCap(t *testing.T) {
	h := NewHeuristic(fixedClock(9))
	for _, img := range []Image{
		{Width: 4000, Height: 2000, Size: 8 << 20},
		{Width: 10, Height: 10, Size: 10},
		{Width: 1000, Height: 1000, Size: 500 * 1024},
	} {
		r, err := h.Detect(context.Background(), img)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.Confidence, 0.6)
		assert.GreaterOrEqual(t, r.Confidence, 0.3)
	}
}

func TestHeuristic_TimeOfDayIsAWeakSignal(t *testing.T) {
	img := Image{Width: 1600, Height: 1000, Size: 2 << 20}

	morning, err := NewHeuristic(fixedClock(9)).Detect(context.Background(), img)
	require.NoError(t, err)
	night, err := NewHeuristic(fixedClock(23)).Detect(context.Background(), img)
	require.NoError(t, err)

	assert.Equal(t, morning.AnimalType, night.AnimalType)
	assert.InDelta(t, 0.05, morning.Confidence-night.Confidence, 1e-9)
}

func TestHeuristic_RequiresDimensions(t *testing.T) {
	_, err := NewHeuristic(nil).Detect(context.Background(), Image{Size: 100})
	assert.True(t, errors.Is(err, ErrInvalidImage))
}

func TestHeuristic_Deterministic(t *testing.T) {
	h := NewHeuristic(fixedClock(15))
	img := Image{Width: 640, Height: 480, Size: 120 * 1024}
	first, err := h.Detect(context.Background(), img)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _ := h.Detect(context.Background(), img)
		assert.Equal(t, first, again)
	}
}
