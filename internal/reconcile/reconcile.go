// Package reconcile holds the side-effect free building blocks of the sphere
// sync protocol: result set indexes, the per-sphere creation map, scope
// filtering, role tables and the single-record reconciliation rule.
package reconcile

import "github.com/MKhiriev/sphere-sync/models"

// Reconcile decides the status of one record from the client claim and the
// server record, either of which may be absent.
//
//   - no claim: NEW_DATA_AVAILABLE with the record attached
//   - no server record: NOT_AVAILABLE, children must not be processed
//   - equal updatedAt: IN_SYNC without payload
//   - different updatedAt: REQUEST_DATA, or IN_SYNC when canEdit is false
//
// A claim without a body is treated like no claim. The direction of a
// timestamp difference is not inspected.
func Reconcile(claim *models.ClaimItem, server *models.Record, canEdit bool) models.ItemReply {
	if server == nil {
		return models.ItemReply{Status: models.StatusNotAvailable}
	}

	if claim == nil || claim.Data == nil {
		return models.ItemReply{Status: models.StatusNewDataAvailable, Data: *server}
	}

	if claim.UpdatedAt().Equal(server.UpdatedAt) {
		return models.ItemReply{Status: models.StatusInSync}
	}

	if !canEdit {
		return models.ItemReply{Status: models.StatusInSync}
	}

	return models.ItemReply{Status: models.StatusRequestData}
}
