package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/models"
)

func sampleReport() *models.WeatherReport {
	return &models.WeatherReport{
		Status:      "Clouds",
		Description: "scattered clouds",
		Temp:        12.3,
		FeelsLike:   11.1,
		Pressure:    1012,
		Humidity:    70,
		WindSpeed:   3.7,
		UnixTime:    1680346800,
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		c := NewMemoryCache()

		c.Set(ctx, "key", []byte("value"), time.Minute)

		data, found := c.Get(ctx, "key")
		assert.True(t, found)
		assert.Equal(t, []byte("value"), data)
	})

	t.Run("MissingKey", func(t *testing.T) {
		c := NewMemoryCache()

		_, found := c.Get(ctx, "absent")
		assert.False(t, found)
	})

	t.Run("NilValueIgnored", func(t *testing.T) {
		c := NewMemoryCache()

		c.Set(ctx, "key", nil, time.Minute)

		_, found := c.Get(ctx, "key")
		assert.False(t, found)
	})

	t.Run("Expiry", func(t *testing.T) {
		c := NewMemoryCache()

		c.Set(ctx, "key", []byte("value"), time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		_, found := c.Get(ctx, "key")
		assert.False(t, found)
	})

	t.Run("Delete", func(t *testing.T) {
		c := NewMemoryCache()

		c.Set(ctx, "key", []byte("value"), time.Minute)
		c.Delete(ctx, "key")

		_, found := c.Get(ctx, "key")
		assert.False(t, found)
	})

	t.Run("Clear", func(t *testing.T) {
		c := NewMemoryCache()

		c.Set(ctx, "a", []byte("1"), time.Minute)
		c.Set(ctx, "b", []byte("2"), time.Minute)
		c.Clear(ctx)

		_, foundA := c.Get(ctx, "a")
		_, foundB := c.Get(ctx, "b")
		assert.False(t, foundA)
		assert.False(t, foundB)
	})

	t.Run("StopIsIdempotent", func(t *testing.T) {
		c := NewMemoryCache()

		c.Stop()
		c.Stop()
	})

	t.Run("UsableAfterStop", func(t *testing.T) {
		c := NewMemoryCache()
		c.Stop()

		c.Set(ctx, "key", []byte("value"), time.Minute)

		data, found := c.Get(ctx, "key")
		assert.True(t, found)
		assert.Equal(t, []byte("value"), data)

		c.Set(ctx, "short", []byte("value"), time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		_, found = c.Get(ctx, "short")
		assert.False(t, found)
	})
}

func TestReportCache(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		c := NewReportCache(NewMemoryCache())
		report := sampleReport()

		c.Set("weather:50.4500:30.5200", report, time.Minute)

		cached, found := c.Get("weather:50.4500:30.5200")
		require.True(t, found)
		assert.Equal(t, report, cached)
	})

	t.Run("NilReportIgnored", func(t *testing.T) {
		c := NewReportCache(NewMemoryCache())

		c.Set("key", nil, time.Minute)

		_, found := c.Get("key")
		assert.False(t, found)
	})

	t.Run("CorruptPayloadTreatedAsMiss", func(t *testing.T) {
		backend := NewMemoryCache()
		c := NewReportCache(backend)

		backend.Set(context.Background(), "key", []byte("{broken"), time.Minute)

		_, found := c.Get("key")
		assert.False(t, found)
	})
}

func setupRedisCache(t *testing.T) (CacheInterface, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(&RedisCacheConfig{
		Addr:         mr.Addr(),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	require.NoError(t, err)
	return c, mr
}

func TestRedisCache(t *testing.T) {
	t.Run("ConnectionFailure", func(t *testing.T) {
		_, err := NewRedisCache(&RedisCacheConfig{Addr: "127.0.0.1:1", DialTimeout: time.Second})
		assert.Error(t, err)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		c, _ := setupRedisCache(t)
		report := sampleReport()

		c.Set("weather:50.4500:30.5200", report, time.Minute)

		cached, found := c.Get("weather:50.4500:30.5200")
		require.True(t, found)
		assert.Equal(t, report, cached)
	})

	t.Run("MissingKey", func(t *testing.T) {
		c, _ := setupRedisCache(t)

		_, found := c.Get("absent")
		assert.False(t, found)
	})

	t.Run("Expiry", func(t *testing.T) {
		c, mr := setupRedisCache(t)

		c.Set("key", sampleReport(), time.Minute)
		mr.FastForward(2 * time.Minute)

		_, found := c.Get("key")
		assert.False(t, found)
	})

	t.Run("Delete", func(t *testing.T) {
		c, _ := setupRedisCache(t)

		c.Set("key", sampleReport(), time.Minute)
		c.Delete("key")

		_, found := c.Get("key")
		assert.False(t, found)
	})

	t.Run("Clear", func(t *testing.T) {
		c, _ := setupRedisCache(t)

		c.Set("a", sampleReport(), time.Minute)
		c.Set("b", sampleReport(), time.Minute)
		c.Clear()

		_, foundA := c.Get("a")
		_, foundB := c.Get("b")
		assert.False(t, foundA)
		assert.False(t, foundB)
	})
}
