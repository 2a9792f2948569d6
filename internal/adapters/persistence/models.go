package persistence

import "time"

// RecentDocument records a station document the user has opened. One
// row per path; reopening refreshes LastOpened.
type RecentDocument struct {
	Path       string    `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	LastOpened time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for RecentDocument
func (RecentDocument) TableName() string {
	return "recent_documents"
}
