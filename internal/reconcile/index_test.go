package reconcile

import (
	"errors"
	"testing"

	"github.com/MKhiriev/sphere-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, fields map[string]any) models.Record {
	return models.Record{ID: id, Fields: fields}
}

func TestUniqueIndex(t *testing.T) {
	t.Run("indexes by id", func(t *testing.T) {
		index, err := UniqueIndex([]models.Record{rec("a", nil), rec("b", nil)})

		require.NoError(t, err)
		assert.Len(t, index, 2)
		assert.Equal(t, "b", index["b"].ID)
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		index, err := UniqueIndex([]models.Record{rec("a", nil), rec("a", nil)})

		assert.Nil(t, index)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateID))
	})

	t.Run("empty input", func(t *testing.T) {
		index, err := UniqueIndex(nil)

		require.NoError(t, err)
		assert.Empty(t, index)
	})
}

func TestBuildNestedIndex(t *testing.T) {
	records := []models.Record{
		rec("s1", map[string]any{"sphereId": "sp1"}),
		rec("s2", map[string]any{"sphereId": "sp1"}),
		rec("s3", map[string]any{"sphereId": "sp2"}),
		rec("orphan", map[string]any{"name": "no parent"}),
	}

	index := BuildNestedIndex(records, models.FieldSphereID)

	assert.Len(t, index, 2)
	assert.ElementsMatch(t, []string{"s1", "s2"}, index.Children("sp1").IDs())
	assert.ElementsMatch(t, []string{"s3"}, index.Children("sp2").IDs())
}

func TestNestedIndex_Children_UnknownParent_NotNil(t *testing.T) {
	index := BuildNestedIndex(nil, models.FieldSphereID)

	children := index.Children("missing")

	require.NotNil(t, children)
	assert.Empty(t, children)
}

func TestIndex_Clone_Independent(t *testing.T) {
	index := Index{"a": rec("a", nil)}

	clone := index.Clone()
	delete(clone, "a")

	assert.Len(t, index, 1)
}
