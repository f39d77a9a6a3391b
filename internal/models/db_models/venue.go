package db_models

import "github.com/lib/pq"

// Venue is a catalog row; Destination holds the normalised destination id.
type Venue struct {
	BaseModel
	Destination string `gorm:"index;not null"`
	Kind        string `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Category    string
	Cost        int64
	Duration    string
	Rating      float64
	Description string
	Location    string
	Specialties string
	Tags        pq.StringArray `gorm:"type:text[]"`
	SortOrder   int            `gorm:"default:0"`
}

func (Venue) TableName() string {
	return "venues"
}
