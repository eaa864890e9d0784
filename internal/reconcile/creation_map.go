package reconcile

import "fmt"

// CreationMap maps the temporary ids a client assigned to records it created
// offline onto the ids the server assigned when storing them.
//
// A CreationMap lives for the processing of one sphere within one sync call.
// It is passed explicitly down the category chain and is not safe for
// concurrent use.
type CreationMap struct {
	resolved map[string]string
	expected map[string]struct{}
}

func NewCreationMap() *CreationMap {
	return &CreationMap{
		resolved: make(map[string]string),
		expected: make(map[string]struct{}),
	}
}

// Resolve returns the server id for localID, or localID itself when no
// mapping exists.
func (m *CreationMap) Resolve(localID string) string {
	if serverID, ok := m.resolved[localID]; ok {
		return serverID
	}
	return localID
}

// Record stores the server id assigned to localID.
func (m *CreationMap) Record(localID, serverID string) {
	m.resolved[localID] = serverID
}

// Expect announces localID as a record the client claims to have created
// offline in this pass.
func (m *CreationMap) Expect(localID string) {
	m.expected[localID] = struct{}{}
}

// Pending reports whether localID was announced as new but has no server id.
func (m *CreationMap) Pending(localID string) bool {
	if _, ok := m.expected[localID]; !ok {
		return false
	}
	_, resolved := m.resolved[localID]

	return !resolved
}

// Len returns the number of recorded mappings.
func (m *CreationMap) Len() int {
	return len(m.resolved)
}

// Rewrite returns a copy of fields with every reference field resolved.
// A reference to a local id announced as new whose creation did not succeed
// yields ErrUnresolvedReference. References to ids that were never announced
// are server ids and pass through unchanged.
func (m *CreationMap) Rewrite(fields map[string]any, refFields []string) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	for _, field := range refFields {
		ref, ok := out[field].(string)
		if !ok || ref == "" {
			continue
		}
		if m.Pending(ref) {
			return nil, fmt.Errorf("%w: %s=%s", ErrUnresolvedReference, field, ref)
		}
		out[field] = m.Resolve(ref)
	}

	return out, nil
}
