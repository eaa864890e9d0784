// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// SyncType is the phase of the sync protocol a request belongs to.
type SyncType string

const (
	// SyncTypeFull returns the whole accessible state tagged VIEW.
	SyncTypeFull SyncType = "FULL"
	// SyncTypeRequest compares client claims with the server state.
	SyncTypeRequest SyncType = "REQUEST"
	// SyncTypeReply applies the creations and updates the client was asked for.
	SyncTypeReply SyncType = "REPLY"
)

// Valid reports whether t is a known sync phase.
func (t SyncType) Valid() bool {
	return t == SyncTypeFull || t == SyncTypeRequest || t == SyncTypeReply
}

// ItemStatus is the per-item outcome of a sync call.
type ItemStatus string

const (
	StatusInSync           ItemStatus = "IN_SYNC"
	StatusRequestData      ItemStatus = "REQUEST_DATA"
	StatusCreatedInCloud   ItemStatus = "CREATED_IN_CLOUD"
	StatusAlreadyInCloud   ItemStatus = "ALREADY_IN_CLOUD"
	StatusUpdatedInCloud   ItemStatus = "UPDATED_IN_CLOUD"
	StatusNewDataAvailable ItemStatus = "NEW_DATA_AVAILABLE"
	StatusNotAvailable     ItemStatus = "NOT_AVAILABLE"
	StatusAccessDenied     ItemStatus = "ACCESS_DENIED"
	StatusError            ItemStatus = "ERROR"
	StatusView             ItemStatus = "VIEW"

	// statusDeleted is the legacy spelling of StatusNotAvailable.
	statusDeleted ItemStatus = "DELETED"
)

// UnmarshalJSON decodes a status, mapping the legacy DELETED spelling to
// NOT_AVAILABLE.
func (s *ItemStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	status := ItemStatus(raw)
	if status == statusDeleted {
		status = StatusNotAvailable
	}
	*s = status

	return nil
}

// SyncMeta is the "sync" header of a request envelope.
type SyncMeta struct {
	Type       SyncType   `json:"type"`
	Scope      []Category `json:"scope,omitempty"`
	AppVersion string     `json:"appVersion,omitempty"`
}

// SyncRequest is the envelope a client posts to a sync endpoint.
type SyncRequest struct {
	Sync    *SyncMeta             `json:"sync"`
	User    *ClaimItem            `json:"user,omitempty"`
	Spheres map[string]*ClaimItem `json:"spheres,omitempty"`
}

// ClaimItem is the client's view of one record: whether it was created
// offline, its last known body and the claims on its nested categories.
//
// Children are keyed by category wire key, then by item id. A sphere node is
// a ClaimItem as well; its data is the sphere claim itself.
type ClaimItem struct {
	New      bool
	Data     map[string]any
	Children map[string]map[string]*ClaimItem
}

// UpdatedAt returns the claimed updatedAt, or the zero Timestamp when the
// claim does not carry one.
func (c *ClaimItem) UpdatedAt() Timestamp {
	if c == nil || c.Data == nil {
		return Timestamp{}
	}
	ts, _ := ParseTimestamp(c.Data[FieldUpdatedAt])

	return ts
}

// Category returns the claims of one nested category, or nil.
func (c *ClaimItem) Category(wireKey string) map[string]*ClaimItem {
	if c == nil || c.Children == nil {
		return nil
	}
	return c.Children[wireKey]
}

// Has reports whether the client sent the nested category at all, even empty.
func (c *ClaimItem) Has(wireKey string) bool {
	if c == nil || c.Children == nil {
		return false
	}
	_, ok := c.Children[wireKey]
	return ok
}

// MarkNew stamps New on every nested claim below c. A record created offline
// cannot have children the server already knows.
func (c *ClaimItem) MarkNew() {
	if c == nil {
		return
	}
	for _, items := range c.Children {
		for _, child := range items {
			if child == nil {
				continue
			}
			child.New = true
			child.MarkNew()
		}
	}
}

// UnmarshalJSON decodes the recursive claim shape. The keys "new" and "data"
// are reserved, object values are nested categories, and any other scalar
// value is folded into Data so that the flat {updatedAt, ...} form of the
// user claim is accepted as well.
func (c *ClaimItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	item := ClaimItem{}
	for key, value := range raw {
		switch key {
		case "new":
			if err := json.Unmarshal(value, &item.New); err != nil {
				return fmt.Errorf("claim field %q: %w", key, err)
			}
		case "data":
			if err := json.Unmarshal(value, &item.Data); err != nil {
				return fmt.Errorf("claim field %q: %w", key, err)
			}
		default:
			if isJSONObject(value) {
				var nested map[string]*ClaimItem
				if err := json.Unmarshal(value, &nested); err != nil {
					return fmt.Errorf("claim category %q: %w", key, err)
				}
				if item.Children == nil {
					item.Children = make(map[string]map[string]*ClaimItem)
				}
				item.Children[key] = nested
				continue
			}

			var scalar any
			if err := json.Unmarshal(value, &scalar); err != nil {
				return fmt.Errorf("claim field %q: %w", key, err)
			}
			if item.Data == nil {
				item.Data = make(map[string]any)
			}
			item.Data[key] = scalar
		}
	}

	*c = item
	return nil
}

// MarshalJSON encodes the claim in the same recursive shape it is decoded from.
func (c ClaimItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Children)+2)
	for key, items := range c.Children {
		out[key] = items
	}
	if c.New {
		out["new"] = true
	}
	if c.Data != nil {
		out["data"] = c.Data
	}

	return json.Marshal(out)
}

// ReplyError is the error payload of an ERROR item.
type ReplyError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// ItemReply is the "data" part of a reply node.
type ItemReply struct {
	Status ItemStatus  `json:"status"`
	Data   any         `json:"data,omitempty"`
	Error  *ReplyError `json:"error,omitempty"`
}

// ReplyItem is one node of the reply tree: the item reply and the replies of
// its nested categories, keyed by wire key and item id.
type ReplyItem struct {
	Data     *ItemReply
	Children map[string]map[string]*ReplyItem
}

// NewReplyItem returns a node carrying only an item reply.
func NewReplyItem(reply ItemReply) *ReplyItem {
	return &ReplyItem{Data: &reply}
}

// Category returns the reply map of a nested category, creating it if needed.
func (r *ReplyItem) Category(wireKey string) map[string]*ReplyItem {
	if r.Children == nil {
		r.Children = make(map[string]map[string]*ReplyItem)
	}
	items, ok := r.Children[wireKey]
	if !ok {
		items = make(map[string]*ReplyItem)
		r.Children[wireKey] = items
	}

	return items
}

// Status returns the status of the node, or "" when it carries no data.
func (r *ReplyItem) Status() ItemStatus {
	if r == nil || r.Data == nil {
		return ""
	}
	return r.Data.Status
}

// MarshalJSON flattens the node to {"data": {...}, "<category>": {...}}.
func (r ReplyItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Children)+1)
	for key, items := range r.Children {
		out[key] = items
	}
	if r.Data != nil {
		out["data"] = r.Data
	}

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of [ReplyItem.MarshalJSON].
func (r *ReplyItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	item := ReplyItem{}
	for key, value := range raw {
		if key == "data" {
			item.Data = &ItemReply{}
			if err := json.Unmarshal(value, item.Data); err != nil {
				return fmt.Errorf("reply data: %w", err)
			}
			continue
		}

		var nested map[string]*ReplyItem
		if err := json.Unmarshal(value, &nested); err != nil {
			return fmt.Errorf("reply category %q: %w", key, err)
		}
		if item.Children == nil {
			item.Children = make(map[string]map[string]*ReplyItem)
		}
		item.Children[key] = nested
	}

	*r = item
	return nil
}

// SyncReply is the envelope returned by every sync endpoint. Parts that were
// ignored by scope or domain are left nil and omitted from the JSON.
type SyncReply struct {
	Spheres     map[string]*ReplyItem `json:"spheres"`
	User        *ItemReply            `json:"user,omitempty"`
	Firmwares   *CatalogReply         `json:"firmwares,omitempty"`
	Bootloaders *CatalogReply         `json:"bootloaders,omitempty"`
	Keys        *KeysReply            `json:"keys,omitempty"`
}

func isJSONObject(raw json.RawMessage) bool {
	for _, ch := range raw {
		switch ch {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
