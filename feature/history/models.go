package history

import "time"

// Event statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Event is one position write attempted during a reconciliation.
type Event struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Folder       string    `gorm:"column:folder;size:512;index" json:"folder"`
	ItemID       string    `gorm:"column:item_id;size:255" json:"item_id"`
	FromPosition int       `gorm:"column:from_position" json:"from_position"`
	ToPosition   int       `gorm:"column:to_position" json:"to_position"`
	Status       string    `gorm:"column:status;size:16" json:"status"`
	Error        string    `gorm:"column:error;size:1024" json:"error,omitempty"`
	RayID        string    `gorm:"column:ray_id;size:64" json:"ray_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name.
func (Event) TableName() string {
	return "reorder_events"
}

