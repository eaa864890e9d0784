package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/validators"
	"github.com/MKhiriev/sphere-sync/models"
)

// SyncValidationService rejects malformed envelopes before the engine loads
// anything from storage.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *SyncValidationService) Sync(ctx context.Context, userID string, req models.SyncRequest, domain *models.DomainRestriction) (models.SyncReply, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("user_id", userID).Msg("sync request rejected")
		return models.SyncReply{}, fmt.Errorf("error during sync request validation: %w", err)
	}

	return v.inner.Sync(ctx, userID, req, domain)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
