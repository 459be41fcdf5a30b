package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("17:30")
	require.NoError(t, err)
	assert.Equal(t, "17:30:00", got.Format("15:04:05"))

	got, err = Parse("08:05:09")
	require.NoError(t, err)
	assert.Equal(t, "08:05:09", got.Format("15:04:05"))

	_, err = Parse("25:99")
	assert.Error(t, err)
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	src := time.Date(2026, 3, 15, 17, 30, 45, 0, loc)

	got := From(src)
	assert.Equal(t, "17:30:45", got.Format("15:04:05"))
	assert.Equal(t, 0, got.Year())
}

func TestScanVariants(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("17:30"))
	assert.Equal(t, "17:30:00", tod.Format("15:04:05"))

	require.NoError(t, tod.Scan([]byte("09:15:30")))
	assert.Equal(t, "09:15:30", tod.Format("15:04:05"))

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())

	assert.Error(t, tod.Scan(42))
}

func TestValue(t *testing.T) {
	tod, _ := Parse("17:30")
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "17:30:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestJSONRoundTrip(t *testing.T) {
	tod, _ := Parse("17:30")
	b, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"17:30:00"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, tod.Format("15:04:05"), back.Format("15:04:05"))
}
