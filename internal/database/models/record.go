package models

import (
	"gorm.io/datatypes"
)

// CollectionRecord is one element of a persisted collection in the relational backends.
// Seq preserves storage order inside a collection.
type CollectionRecord struct {
	Collection string         `json:"collection" gorm:"primaryKey;size:64"`
	Seq        int            `json:"seq" gorm:"primaryKey;autoIncrement:false"`
	Payload    datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for CollectionRecord
func (CollectionRecord) TableName() string {
	return "collection_records"
}
