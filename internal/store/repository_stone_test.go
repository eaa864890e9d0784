package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/sphere-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stonesWithUIDs(uids ...any) []models.Record {
	records := make([]models.Record, 0, len(uids))
	for _, uid := range uids {
		records = append(records, models.Record{Fields: map[string]any{FieldStoneUID: uid}})
	}
	return records
}

func TestLowestFreeUID(t *testing.T) {
	tests := []struct {
		name   string
		stones []models.Record
		want   int
	}{
		{name: "empty sphere", stones: nil, want: 1},
		{name: "gap is reused", stones: stonesWithUIDs(float64(1), float64(3)), want: 2},
		{name: "contiguous", stones: stonesWithUIDs(float64(1), float64(2)), want: 3},
		{name: "stones without uid are ignored", stones: stonesWithUIDs(nil, float64(1)), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lowestFreeUID(tt.stones)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLowestFreeUID_Exhausted(t *testing.T) {
	uids := make([]any, 0, maxStoneUID)
	for i := 1; i <= maxStoneUID; i++ {
		uids = append(uids, float64(i))
	}

	_, err := lowestFreeUID(stonesWithUIDs(uids...))

	assert.True(t, errors.Is(err, ErrStoneUIDExhausted))
}
