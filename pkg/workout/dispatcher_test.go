package workout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittracker/fittracker/pkg/types"
)

func TestCreate_KnownCodes(t *testing.T) {
	tests := []struct {
		code     string
		params   []float64
		wantKind types.Kind
		wantKcal float64
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, types.KindSwimming, 336.0},
		{"RUN", []float64{15000, 1, 75}, types.KindRunning, 797.805},
		{"WLK", []float64{9000, 1, 75, 180}, types.KindWalking, 349.251747525},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			c, err := Create(tc.code, tc.params)
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tc.wantKind, c.Kind())

			s, err := Summarize(c)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantKcal, s.CaloriesKcal, 1e-6)
		})
	}
}

func TestCreate_UnknownCode(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "RUNNING"} {
		c, err := Create(code, []float64{15000, 1, 75})
		assert.Nil(t, c, "code %q", code)
		assert.ErrorIs(t, err, ErrUnknownWorkoutType, "code %q", code)
	}
}

func TestCreate_WrongParamCount(t *testing.T) {
	c, err := Create("RUN", []float64{15000, 1})
	assert.Nil(t, c)
	require.ErrorIs(t, err, ErrInvalidParameterCount)

	var pce *ParamCountError
	require.True(t, errors.As(err, &pce))
	assert.Equal(t, "RUN", pce.Code)
	assert.Equal(t, 3, pce.Want)
	assert.Equal(t, 2, pce.Got)

	_, err = Create("SWM", []float64{720, 1, 80, 25, 40, 1})
	assert.ErrorIs(t, err, ErrInvalidParameterCount)

	_, err = Create("WLK", nil)
	assert.ErrorIs(t, err, ErrInvalidParameterCount)
}

func TestCreate_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		params  []float64
		wantErr error
	}{
		{"fractional action", "RUN", []float64{100.5, 1, 70}, ErrInvalidParameter},
		{"fractional laps", "SWM", []float64{720, 1, 80, 25, 4.5}, ErrInvalidParameter},
		{"NaN weight", "RUN", []float64{100, 1, math.NaN()}, ErrInvalidParameter},
		{"infinite duration", "WLK", []float64{100, math.Inf(1), 70, 170}, ErrInvalidParameter},
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrInvalidDuration},
		{"negative height", "WLK", []float64{9000, 1, 75, -180}, ErrInvalidParameter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Create(tc.code, tc.params)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTypes_SortedWithParams(t *testing.T) {
	got := Types()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())

	for _, typ := range got {
		n, ok := Arity(typ.Code)
		require.True(t, ok)
		assert.Len(t, typ.Params, n)
	}

	// Callers may not mutate the registry through the returned slices.
	got[0].Params[0] = "mutated"
	assert.Equal(t, "action", Types()[0].Params[0])
}

func TestArity_Unknown(t *testing.T) {
	_, ok := Arity("XYZ")
	assert.False(t, ok)
}
