package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatrix_backend/internals/helpers/kvcache"
)

type stubScopeClient struct {
	code  int
	err   error
	calls int
}

func (s *stubScopeClient) FetchPlantCode(ctx context.Context, personnelNo string) (int, error) {
	s.calls++
	return s.code, s.err
}

func TestResolve_Success_WritesThroughCache(t *testing.T) {
	cache := kvcache.NewMemoryStore()
	r := NewResolver(&stubScopeClient{code: 2023}, cache)

	scope := r.Resolve(context.Background(), "EMP-001")

	assert.Equal(t, 2023, scope.PlantCode)
	require.NotNil(t, scope.Location)
	assert.Equal(t, "Pune", *scope.Location)
	assert.False(t, scope.UsingFallback)

	// write-through harus kejadian
	code, err := cache.Get(context.Background(), "plant_code:EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "2023", code)
	loc, err := cache.Get(context.Background(), "plant_location:EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "Pune", loc)
}

func TestResolve_FallbackToCachedValue(t *testing.T) {
	cache := kvcache.NewMemoryStore()
	// resolusi sukses sebelumnya menyimpan 2021
	require.NoError(t, cache.Set(context.Background(), "plant_code:EMP-002", strconv.Itoa(2021)))
	require.NoError(t, cache.Set(context.Background(), "plant_location:EMP-002", "Baramati"))

	r := NewResolver(&stubScopeClient{err: errors.New("network down")}, cache)
	scope := r.Resolve(context.Background(), "EMP-002")

	assert.Equal(t, 2021, scope.PlantCode)
	assert.True(t, scope.UsingFallback)
	require.NotNil(t, scope.Location)
	assert.Equal(t, "Baramati", *scope.Location)
}

func TestResolve_FallbackToDefaultWhenCacheEmpty(t *testing.T) {
	r := NewResolver(&stubScopeClient{err: errors.New("boom")}, kvcache.NewMemoryStore())

	scope := r.Resolve(context.Background(), "EMP-003")

	assert.Equal(t, 2021, scope.PlantCode) // default plant
	assert.True(t, scope.UsingFallback)
	require.NotNil(t, scope.Location)
	assert.Equal(t, "Baramati", *scope.Location)
}

func TestResolve_UnmappedPlantHasNilLocation(t *testing.T) {
	r := NewResolver(&stubScopeClient{code: 9999}, kvcache.NewMemoryStore())

	scope := r.Resolve(context.Background(), "EMP-004")

	assert.Equal(t, 9999, scope.PlantCode)
	assert.Nil(t, scope.Location)
}

func TestCoercePlantCode(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		n, err := coercePlantCode(float64(2022))
		require.NoError(t, err)
		assert.Equal(t, 2022, n)
	})
	t.Run("numeric string", func(t *testing.T) {
		n, err := coercePlantCode(" 2021 ")
		require.NoError(t, err)
		assert.Equal(t, 2021, n)
	})
	t.Run("N/A string rejected", func(t *testing.T) {
		_, err := coercePlantCode("N/A")
		assert.Error(t, err)
	})
	t.Run("nil rejected", func(t *testing.T) {
		_, err := coercePlantCode(nil)
		assert.Error(t, err)
	})
	t.Run("non positive rejected", func(t *testing.T) {
		_, err := coercePlantCode(float64(0))
		assert.Error(t, err)
	})
}
