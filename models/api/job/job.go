package jobapimodels

import (
	"strings"
	"time"

	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
)

type JobData struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Requirements []string  `json:"requirements"`
	ClosingAt    time.Time `json:"closing_at"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("job title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("job description is required")
	}
	return nil
}

type JobView struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	CompanyName  string    `json:"company_name,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Requirements []string  `json:"requirements"`
	Status       string    `json:"status"`
	ClosingAt    time.Time `json:"closing_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func Convert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:           rec.ID,
		CompanyID:    rec.CompanyID,
		Title:        rec.Title,
		Description:  rec.Description,
		Location:     rec.Location,
		Requirements: []string(rec.Requirements),
		Status:       string(rec.Status),
		ClosingAt:    rec.ClosingAt,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Company != nil {
		view.CompanyName = rec.Company.Name
	}
	return view
}
