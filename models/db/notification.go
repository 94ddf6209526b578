package dbmodels

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/models"
)

// Notification is one row of the candidate's in-app feed. The same record
// is pushed over the websocket hub when the candidate is connected.
type Notification struct {
	BaseModel
	CandidateID string                      `gorm:"type:varchar(36);index:idx_feed"`
	Type        models.NotificationType     `gorm:"type:varchar(50)"`
	Category    models.NotificationCategory `gorm:"type:varchar(50)"`
	Title       string                      `gorm:"type:varchar(255)"`
	Message     string

	ApplicationID string `gorm:"type:varchar(36);index"`
	JobTitle      string `gorm:"type:varchar(255)"`
	CompanyName   string `gorm:"type:varchar(255)"`

	ActionRequired bool
	ActionText     string `gorm:"type:varchar(255)"`
	ActionUrl      string `gorm:"type:varchar(512)"`

	Read   bool `gorm:"default:false;index:idx_feed"`
	ReadAt *time.Time
}
