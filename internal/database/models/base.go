package models

// BaseModel provides the identity and creation stamp shared by every numbered record
type BaseModel struct {
	ID           int       `json:"id" validate:"gt=0"`
	CreationTime Timestamp `json:"creation_time"`
}

// NextSequentialID returns the id assigned by count+1 numbering
func NextSequentialID(count int) int {
	return count + 1
}
