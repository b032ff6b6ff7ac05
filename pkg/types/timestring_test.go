package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid evening time", input: "18:30"},
		{name: "midnight", input: "00:00"},
		{name: "last minute of day", input: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "with seconds", input: "18:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "half past six", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 18, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("18:30"), ts)
}

func TestTimeString_Comparison(t *testing.T) {
	early := TimeString("17:00")
	late := TimeString("21:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("17:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		delta   int
		want    TimeString
		wantErr error
	}{
		{name: "simple step", start: "17:00", delta: 30, want: "17:30"},
		{name: "hour rollover", start: "17:45", delta: 30, want: "18:15"},
		{name: "backwards", start: "17:00", delta: -30, want: "16:30"},
		{name: "overflow past midnight", start: "23:45", delta: 30, wantErr: ErrTimeOverflow},
		{name: "underflow before midnight", start: "00:10", delta: -30, wantErr: ErrTimeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:30"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("19:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 20, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("20:15"), ts)

	assert.Error(t, ts.Scan(42))
}
