package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sphere-sync/models"
)

// RecordCreation is a record a client created offline, about to be stored
// in Category.
type RecordCreation struct {
	Category models.Category
	Record   models.Record
}

// requiredFields lists, per category, the payload fields a new record must
// carry as non-empty strings. Reference fields are only checked for
// presence here.
var requiredFields = map[models.Category][]string{
	models.CategoryLocations:         {"name"},
	models.CategoryHubs:              {"name"},
	models.CategoryScenes:            {"name"},
	models.CategoryToons:             {"cloudId"},
	models.CategoryStones:            {"address"},
	models.CategoryBehaviours:        {"type"},
	models.CategoryAbilities:         {"type"},
	models.CategoryProperties:        {"type"},
	models.CategoryFingerprints:      {"locationId"},
	models.CategoryMessages:          {"content"},
	models.CategoryMessageRecipients: {"userId"},
	models.CategoryMessageReadBy:     {},
	models.CategoryMessageDeletedBy:  {},
}

// RequiredFields returns the fields a new record of c must carry.
func RequiredFields(c models.Category) []string {
	return requiredFields[c]
}

type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate accepts a [RecordCreation] or a [models.SyncRequest]. For a
// creation the optional fields narrow the check to those payload fields.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case RecordCreation:
		return v.validateCreation(ctx, value, fields...)
	case *RecordCreation:
		return v.validateCreation(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, &value)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateCreation(ctx context.Context, creation RecordCreation, fields ...string) error {
	required, ok := requiredFields[creation.Category]
	if !ok {
		return fmt.Errorf("%w: %s", ErrReadOnlyCategory, creation.Category)
	}
	if len(fields) == 0 {
		fields = required
	}

	for _, field := range fields {
		value, present := creation.Record.Fields[field]
		if !present || value == nil {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
		s, isString := value.(string)
		if !isString || strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidField, field)
		}
	}

	return nil
}

func (v *RecordValidator) validateSyncRequest(ctx context.Context, req *models.SyncRequest) error {
	if req == nil || req.Sync == nil {
		return ErrEmptySyncRequest
	}
	if !req.Sync.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSyncType, req.Sync.Type)
	}
	for _, c := range req.Sync.Scope {
		if _, ok := models.ParseCategory(string(c)); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownScopeCategory, c)
		}
	}

	return nil
}
