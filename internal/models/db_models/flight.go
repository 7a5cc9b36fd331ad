package db_models

// Flight is one row of the mock flight inventory. Position fixes the ordinal
// that booking selections reference.
type Flight struct {
	BaseModel
	Airline  string
	Schedule string
	Price    float64
	Position int `gorm:"uniqueIndex"`
}
