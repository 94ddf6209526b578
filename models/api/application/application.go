package applicationapimodels

import (
	"time"

	apimodels "github.com/dukeika/interview-portal-sub001/models/api"

	"github.com/dukeika/interview-portal-sub001/models"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
)

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("job id is required")
	}
	return nil
}

type ProgressRequest struct {
	CurrentStage int `json:"current_stage"`
}

type DecisionRequest struct {
	Feedback string `json:"feedback"`
}

type TestCompleteRequest struct {
	Stage int `json:"stage"`
}

func (r TestCompleteRequest) Validate() error {
	if !models.ApplicationStage(r.Stage).IsValid() {
		return errors.New("unknown stage")
	}
	return nil
}

type InterviewScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    string    `json:"location"`
}

func (r InterviewScheduleRequest) Validate() error {
	if r.ScheduledAt.IsZero() {
		return errors.New("interview time is required")
	}
	if r.ScheduledAt.Before(time.Now()) {
		return errors.New("interview time must be in the future")
	}
	return nil
}

type NotesRequest struct {
	Feedback      *string `json:"feedback"`
	InternalNotes *string `json:"internal_notes"`
}

// UpdateData is a partial update of an application. Nil fields are left
// untouched; a non-nil OverallStatus is what arms the status-diff trigger.
type UpdateData struct {
	CurrentStage      *models.ApplicationStage
	OverallStatus     *models.OverallStatus
	ApplicationStatus *models.StageStatus
	WrittenTestStatus *models.StageStatus
	VideoTestStatus   *models.StageStatus
	InterviewStatus   *models.StageStatus
	Feedback          *string
	InternalNotes     *string
}

// ToUpdateMap converts the partial update into the column map the store
// writes with.
func (d UpdateData) ToUpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if d.CurrentStage != nil {
		updMap["current_stage"] = *d.CurrentStage
	}
	if d.OverallStatus != nil {
		updMap["overall_status"] = *d.OverallStatus
	}
	if d.ApplicationStatus != nil {
		updMap["application_status"] = *d.ApplicationStatus
	}
	if d.WrittenTestStatus != nil {
		updMap["written_test_status"] = *d.WrittenTestStatus
	}
	if d.VideoTestStatus != nil {
		updMap["video_test_status"] = *d.VideoTestStatus
	}
	if d.InterviewStatus != nil {
		updMap["interview_status"] = *d.InterviewStatus
	}
	if d.Feedback != nil {
		updMap["feedback"] = *d.Feedback
	}
	if d.InternalNotes != nil {
		updMap["internal_notes"] = *d.InternalNotes
	}
	return updMap
}

type ApplicationFilter struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	apimodels.Pagination
}

type ApplicationView struct {
	ID            string    `json:"id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name,omitempty"`
	JobID         string    `json:"job_id"`
	JobTitle      string    `json:"job_title,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`

	CurrentStage     int    `json:"current_stage"`
	CurrentStageName string `json:"current_stage_name"`
	OverallStatus    string `json:"overall_status"`

	ApplicationStatus string `json:"application_status"`
	WrittenTestStatus string `json:"written_test_status"`
	VideoTestStatus   string `json:"video_test_status"`
	InterviewStatus   string `json:"interview_status"`

	Feedback string `json:"feedback,omitempty"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:                rec.ID,
		CandidateID:       rec.CandidateID,
		JobID:             rec.JobID,
		AppliedAt:         rec.AppliedAt,
		CurrentStage:      int(rec.CurrentStage),
		CurrentStageName:  rec.CurrentStage.Name(),
		OverallStatus:     string(rec.OverallStatus),
		ApplicationStatus: string(rec.ApplicationStatus),
		WrittenTestStatus: string(rec.WrittenTestStatus),
		VideoTestStatus:   string(rec.VideoTestStatus),
		InterviewStatus:   string(rec.InterviewStatus),
		Feedback:          rec.Feedback,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
		if rec.Job.Company != nil {
			view.CompanyName = rec.Job.Company.Name
		}
	}
	return view
}

// AdminView additionally exposes the company-internal notes.
type AdminView struct {
	ApplicationView
	InternalNotes string `json:"internal_notes,omitempty"`
}

func ConvertAdmin(rec dbmodels.Application) AdminView {
	return AdminView{
		ApplicationView: Convert(rec),
		InternalNotes:   rec.InternalNotes,
	}
}
