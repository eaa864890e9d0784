package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/models"
)

const (
	// FieldStoneUID is the mesh identifier of a stone, unique per sphere.
	FieldStoneUID = "uid"

	maxStoneUID = 255
)

// stoneRepository answers stone specific questions on top of the stones
// [RecordStore].
type stoneRepository struct {
	stones RecordStore
}

func NewStoneRepository(stones RecordStore) StoneRepository {
	return &stoneRepository{stones: stones}
}

func (r *stoneRepository) NextUID(ctx context.Context, sphereID string) (int, error) {
	stones, err := r.stones.FindBySpheres(ctx, []string{sphereID}, FindFilter{})
	if err != nil {
		return 0, err
	}

	return lowestFreeUID(stones)
}

func lowestFreeUID(stones []models.Record) (int, error) {
	taken := make(map[int64]bool, len(stones))
	for _, stone := range stones {
		taken[stone.Int(FieldStoneUID)] = true
	}

	for uid := 1; uid <= maxStoneUID; uid++ {
		if !taken[int64(uid)] {
			return uid, nil
		}
	}

	return 0, fmt.Errorf("%w: %d stones", ErrStoneUIDExhausted, len(stones))
}
