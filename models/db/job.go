package dbmodels

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/models"
	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	CompanyID    string   `gorm:"type:varchar(36);index"`
	Company      *Company `gorm:"foreignKey:CompanyID"`
	Title        string   `gorm:"type:varchar(255)"`
	Description  string
	Location     string           `gorm:"type:varchar(255)"`
	Requirements pq.StringArray   `gorm:"type:text[]"`
	Status       models.JobStatus `gorm:"type:varchar(50);index"`
	ClosingAt    time.Time
}

func (j Job) IsOpenForApplications() bool {
	if j.Status != models.JobStatusPublished {
		return false
	}
	if !j.ClosingAt.IsZero() && j.ClosingAt.Before(time.Now()) {
		return false
	}
	return true
}
