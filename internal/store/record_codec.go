package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sphere-sync/models"
)

// serverFields are never written into the data column; they have columns of
// their own or are derived on read.
var serverFields = []string{models.FieldID, models.FieldUpdatedAt, models.FieldCreatedAt, models.FieldSphereID}

func encodeData(fields map[string]any) ([]byte, error) {
	body := make(map[string]any, len(fields))
	for k, v := range fields {
		body[k] = v
	}
	for _, k := range serverFields {
		delete(body, k)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}
	return data, nil
}

func decodeData(data []byte) (map[string]any, error) {
	fields := make(map[string]any)
	if len(data) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}
	return fields, nil
}

func encodeRecord(t Table, sphereID string, record models.Record) (recordRow, error) {
	data, err := encodeData(record.Fields)
	if err != nil {
		return recordRow{}, err
	}

	row := recordRow{
		id:        record.ID,
		sphereID:  sphereID,
		createdAt: record.CreatedAt.Millis(),
		updatedAt: record.UpdatedAt.Millis(),
		data:      data,
	}
	if t.ParentField != "" {
		if parent := record.Ref(t.ParentField); parent != "" {
			row.parentID = sql.NullString{String: parent, Valid: true}
		}
	}

	return row, nil
}

func decodeRecord(t Table, row recordRow) (models.Record, error) {
	fields, err := decodeData(row.data)
	if err != nil {
		return models.Record{}, err
	}

	if t.Category != models.CategorySpheres {
		fields[models.FieldSphereID] = row.sphereID
	}
	if t.ParentField != "" && row.parentID.Valid {
		fields[t.ParentField] = row.parentID.String
	}

	return models.Record{
		ID:        row.id,
		CreatedAt: models.TimestampFromMillis(row.createdAt),
		UpdatedAt: models.TimestampFromMillis(row.updatedAt),
		Fields:    fields,
	}, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordRow(s rowScanner) (recordRow, error) {
	var row recordRow
	err := s.Scan(&row.id, &row.sphereID, &row.parentID, &row.createdAt, &row.updatedAt, &row.data)
	return row, err
}
