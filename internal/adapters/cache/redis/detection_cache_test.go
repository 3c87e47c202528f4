package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-insights/internal/domain/breeds"
	"pet-care-insights/internal/domain/detection"
)

func sampleDetection() detection.Detection {
	info := breeds.Lookup("dog", "Beagle")
	return detection.Detection{
		ID: "det-1",
		Result: detection.Result{
			Success:    true,
			AnimalType: detection.AnimalDog,
			Breed:      "Beagle",
			Confidence: 0.81,
			Source:     "imagga",
		},
		Enriched: &info,
	}
}

func TestDetectionCache_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewWithClient(db, "test:")

	d := sampleDetection()
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	mock.ExpectGet("test:detection:abc").SetVal(string(raw))

	got, ok, err := c.Get(context.Background(), "detection:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetectionCache_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewWithClient(db, "")

	mock.ExpectGet(DefaultPrefix + "k").RedisNil()

	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetectionCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewWithClient(db, "test:")

	mock.ExpectGet("test:k").SetErr(errors.New("connection refused"))

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDetectionCache_CorruptPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewWithClient(db, "test:")

	mock.ExpectGet("test:k").SetVal("{not json")

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDetectionCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewWithClient(db, "test:")

	d := sampleDetection()
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	mock.ExpectSet("test:k", raw, 24*time.Hour).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), "k", d, 24*time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}
