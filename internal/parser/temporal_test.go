package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
)

func TestDeriveTemporal(t *testing.T) {
	fields, err := DeriveTemporal("13/05/2024 10:00", "13/05/2024 11:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.May, 13, 10, 0, 0, 0, time.UTC), fields.OpenedAt)
	assert.Equal(t, time.Date(2024, time.May, 13, 11, 30, 0, 0, time.UTC), fields.ClosedAt)
	assert.Equal(t, float64(90), fields.DurationMinutes)
	assert.Equal(t, "Monday", fields.OpenDay)
	assert.Equal(t, "10:00", fields.OpenTime)
	assert.Equal(t, "May", fields.OpenMonth)
	assert.Equal(t, model.KillzoneOther, fields.Killzone)
}

func TestDeriveTemporal_ClampsNegativeDuration(t *testing.T) {
	fields, err := DeriveTemporal("13/05/2024 11:30", "13/05/2024 10:00")
	require.NoError(t, err)
	assert.Equal(t, float64(0), fields.DurationMinutes)
}

func TestDeriveTemporal_ParseFailure(t *testing.T) {
	tests := []struct {
		name   string
		opened string
		closed string
	}{
		{name: "malformed opened", opened: "2024-05-13 10:00", closed: "13/05/2024 11:30"},
		{name: "malformed closed", opened: "13/05/2024 10:00", closed: "soon after"},
		{name: "empty opened", opened: "", closed: "13/05/2024 11:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := DeriveTemporal(tt.opened, tt.closed)
			assert.Error(t, err)
			assert.Nil(t, fields)
		})
	}
}

func TestDetermineKillzone(t *testing.T) {
	tests := []struct {
		name   string
		opened string
		want   model.Killzone
	}{
		{name: "london lower bound", opened: "13/05/2024 02:00", want: model.KillzoneLondon},
		{name: "london interior", opened: "13/05/2024 03:45", want: model.KillzoneLondon},
		{name: "london upper bound excluded", opened: "13/05/2024 05:00", want: model.KillzoneOther},
		{name: "new york lower bound", opened: "13/05/2024 07:00", want: model.KillzoneNewYork},
		{name: "new york interior", opened: "13/05/2024 08:15", want: model.KillzoneNewYork},
		{name: "new york upper bound excluded", opened: "13/05/2024 10:00", want: model.KillzoneOther},
		{name: "afternoon", opened: "13/05/2024 14:00", want: model.KillzoneOther},
		{name: "midnight", opened: "13/05/2024 00:00", want: model.KillzoneOther},
		{name: "unparseable", opened: "yesterday morning", want: model.KillzoneUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineKillzone(tt.opened))
		})
	}
}
