package models

import "time"

type ActivityAction string

const (
	ActivityCreate ActivityAction = "CREATE"
	ActivityUpdate ActivityAction = "UPDATE"
	ActivityDelete ActivityAction = "DELETE"
)

type EntityType string

const (
	EntityProject EntityType = "PROJECT"
	EntityTask    EntityType = "TASK"
	EntityUser    EntityType = "USER"
)

// ActivityHistory is an append-only audit row. Nothing updates or deletes it.
type ActivityHistory struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	UserID      *uint64        `gorm:"index" json:"user_id"`
	Action      ActivityAction `gorm:"type:varchar(20);not null" json:"action"`
	EntityType  EntityType     `gorm:"type:varchar(20);not null;index:idx_activity_entity" json:"entity_type"`
	EntityID    uint64         `gorm:"not null;index:idx_activity_entity" json:"entity_id"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}
