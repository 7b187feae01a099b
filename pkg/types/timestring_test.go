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
		{name: "valid morning", input: "08:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "0800", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, ts.Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	early, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("18:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", end.String())

	// Выход за пределы суток - ошибка, а не перенос на следующий день
	late, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)
	_, err = late.AddMinutes(120)
	assert.Error(t, err)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	start, err := NewTimeStringFromString("09:15")
	require.NoError(t, err)
	end, err := NewTimeStringFromString("12:00")
	require.NoError(t, err)

	assert.Equal(t, 165, start.MinutesUntil(end))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, "14:45", NewTimeString(moment).String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres возвращает TIME как "HH:MM:SS"
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, "18:00", ts.String())
}
