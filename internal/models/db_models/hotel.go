package db_models

// Hotel is one row of the mock hotel inventory. Position fixes the ordinal
// that booking selections reference.
type Hotel struct {
	BaseModel
	Name          string
	Rating        float64
	PricePerNight float64
	Position      int `gorm:"uniqueIndex"`
}
