package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimItem_UnmarshalJSON_NestedShape(t *testing.T) {
	body := `{
		"sync": {"type": "REQUEST", "scope": ["stones"]},
		"user": {"updatedAt": 5, "firstName": "Ann"},
		"spheres": {
			"sp1": {
				"data": {"updatedAt": "2026-01-02T03:04:05.006Z"},
				"stones": {
					"st1": {
						"new": true,
						"data": {"address": "AA:BB", "updatedAt": 0},
						"abilities": {
							"ab1": {"data": {"type": "dimming"}, "properties": {}}
						}
					}
				},
				"hubs": {}
			}
		}
	}`

	var req SyncRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.Sync)
	assert.Equal(t, SyncTypeRequest, req.Sync.Type)
	assert.Equal(t, []Category{CategoryStones}, req.Sync.Scope)

	require.NotNil(t, req.User)
	assert.Equal(t, int64(5), req.User.UpdatedAt().Millis())
	assert.Equal(t, "Ann", req.User.Data["firstName"])

	sphere := req.Spheres["sp1"]
	require.NotNil(t, sphere)
	assert.Equal(t, int64(1767323045006), sphere.UpdatedAt().Millis())
	assert.True(t, sphere.Has("hubs"))
	assert.Empty(t, sphere.Category("hubs"))
	assert.False(t, sphere.Has("locations"))

	stone := sphere.Category("stones")["st1"]
	require.NotNil(t, stone)
	assert.True(t, stone.New)
	assert.Equal(t, "AA:BB", stone.Data["address"])

	ability := stone.Category("abilities")["ab1"]
	require.NotNil(t, ability)
	assert.False(t, ability.New)
	assert.True(t, ability.Has("properties"))
}

func TestClaimItem_MarkNew(t *testing.T) {
	claim := &ClaimItem{
		New: true,
		Children: map[string]map[string]*ClaimItem{
			"abilities": {
				"ab1": {Children: map[string]map[string]*ClaimItem{
					"properties": {"p1": {}},
				}},
			},
		},
	}

	claim.MarkNew()

	ability := claim.Category("abilities")["ab1"]
	assert.True(t, ability.New)
	assert.True(t, ability.Category("properties")["p1"].New)
}

func TestItemStatus_UnmarshalJSON_DeletedAlias(t *testing.T) {
	var reply ItemReply
	require.NoError(t, json.Unmarshal([]byte(`{"status":"DELETED"}`), &reply))

	assert.Equal(t, StatusNotAvailable, reply.Status)
}

func TestReplyItem_MarshalJSON_Flattened(t *testing.T) {
	node := NewReplyItem(ItemReply{Status: StatusInSync})
	node.Category("hubs")["h1"] = NewReplyItem(ItemReply{
		Status: StatusError,
		Error:  &ReplyError{Code: 422, Msg: "bad"},
	})

	raw, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"data": {"status": "IN_SYNC"},
		"hubs": {"h1": {"data": {"status": "ERROR", "error": {"code": 422, "msg": "bad"}}}}
	}`, string(raw))

	var decoded ReplyItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, StatusInSync, decoded.Status())
	assert.Equal(t, StatusError, decoded.Children["hubs"]["h1"].Status())
}

func TestSyncReply_OmitsIgnoredParts(t *testing.T) {
	raw, err := json.Marshal(SyncReply{Spheres: map[string]*ReplyItem{}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"spheres": {}}`, string(raw))
}

func TestRecord_JSON(t *testing.T) {
	record := Record{
		ID:        "r1",
		UpdatedAt: TimestampFromMillis(1000),
		Fields:    map[string]any{"name": "kitchen", "sphereId": "sp1"},
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"r1","name":"kitchen","sphereId":"sp1","updatedAt":"1970-01-01T00:00:01.000Z"}`, string(raw))

	var decoded Record
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "r1", decoded.ID)
	assert.True(t, decoded.UpdatedAt.Equal(record.UpdatedAt))
	assert.Equal(t, "sp1", decoded.Ref(FieldSphereID))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int64
		wantErr bool
	}{
		{name: "nil", value: nil, want: 0},
		{name: "millis", value: float64(1500), want: 1500},
		{name: "numeric string", value: "1500", want: 1500},
		{name: "iso", value: "1970-01-01T00:00:01.500Z", want: 1500},
		{name: "iso with nanos truncated", value: "1970-01-01T00:00:01.500999Z", want: 1500},
		{name: "garbage", value: "yesterday", wantErr: true},
		{name: "bool", value: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Millis())
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("users")
	assert.True(t, ok)
	assert.Equal(t, CategorySphereUsers, c)

	c, ok = ParseCategory("hubs")
	assert.True(t, ok)
	assert.Equal(t, "hubs", c.WireKey())

	_, ok = ParseCategory("gadgets")
	assert.False(t, ok)
}
