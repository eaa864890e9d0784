package utils

import "github.com/google/uuid"

// RecordIDGenerator issues the server ids of records created through sync.
// Ids are UUIDv7, so ids of one table sort by creation time.
type RecordIDGenerator struct{}

func NewRecordIDGenerator() RecordIDGenerator {
	return RecordIDGenerator{}
}

func (RecordIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
