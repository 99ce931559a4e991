package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEventModel mirrors the 'tracking_events' table. Rows are insert-only;
// no update or delete path exists in the repository layer.
type TrackingEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	Location    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"index;not null"`
	CreatedBy   string    `gorm:"type:varchar(128)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TrackingEventModel) TableName() string {
	return "tracking_events"
}
