package notificationapimodels

import (
	"time"

	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
)

type NotificationFilter struct {
	UnreadOnly bool `json:"unread_only"`
	apimodels.Pagination
}

type NotificationView struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	ApplicationID string     `json:"application_id,omitempty"`
	JobTitle      string     `json:"job_title,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
	ActionRequired bool      `json:"action_required"`
	ActionText    string     `json:"action_text,omitempty"`
	ActionUrl     string     `json:"action_url,omitempty"`
	Read          bool       `json:"read"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func Convert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:             rec.ID,
		Type:           string(rec.Type),
		Category:       string(rec.Category),
		Title:          rec.Title,
		Message:        rec.Message,
		ApplicationID:  rec.ApplicationID,
		JobTitle:       rec.JobTitle,
		CompanyName:    rec.CompanyName,
		ActionRequired: rec.ActionRequired,
		ActionText:     rec.ActionText,
		ActionUrl:      rec.ActionUrl,
		Read:           rec.Read,
		ReadAt:         rec.ReadAt,
		CreatedAt:      rec.CreatedAt,
	}
}
