package dbmodels

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/models"
	"github.com/pkg/errors"
)

// Application tracks one candidate on one job through the four pipeline
// stages. The per-stage status fields are bookkeeping for the dashboards;
// CurrentStage is the single source of truth for where the candidate is.
type Application struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index:idx_candidate_job"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	JobID       string     `gorm:"type:varchar(36);index:idx_candidate_job"`
	Job         *Job       `gorm:"foreignKey:JobID"`
	AppliedAt   time.Time

	CurrentStage  models.ApplicationStage `gorm:"default:1"`
	OverallStatus models.OverallStatus    `gorm:"type:varchar(50);index"`

	ApplicationStatus models.StageStatus `gorm:"type:varchar(50)"`
	WrittenTestStatus models.StageStatus `gorm:"type:varchar(50)"`
	VideoTestStatus   models.StageStatus `gorm:"type:varchar(50)"`
	InterviewStatus   models.StageStatus `gorm:"type:varchar(50)"`

	Feedback      string // candidate-visible
	InternalNotes string // company-internal, never returned to candidates
}

// NewApplication returns the record a fresh application is created with:
// stage 1 already completed (applying is the stage), everything else untouched.
func NewApplication(candidateID, jobID string) Application {
	return Application{
		CandidateID:       candidateID,
		JobID:             jobID,
		AppliedAt:         time.Now(),
		CurrentStage:      models.StageApplied,
		OverallStatus:     models.OverallStatusActive,
		ApplicationStatus: models.StageStatusCompleted,
		WrittenTestStatus: models.StageStatusNotStarted,
		VideoTestStatus:   models.StageStatusNotStarted,
		InterviewStatus:   models.StageStatusNotStarted,
	}
}

// IsAllowProgress guards stage progression: once a terminal decision is
// recorded the pipeline is closed for this application.
func (a Application) IsAllowProgress() (bool, error) {
	if a.OverallStatus == models.OverallStatusRejected {
		return false, errors.New("application has already been rejected")
	}
	if a.OverallStatus == models.OverallStatusHired {
		return false, errors.New("candidate has already been hired")
	}
	return true, nil
}

// StageStatusOf returns the bookkeeping status for the given stage.
func (a Application) StageStatusOf(stage models.ApplicationStage) models.StageStatus {
	switch stage {
	case models.StageApplied:
		return a.ApplicationStatus
	case models.StageWrittenTest:
		return a.WrittenTestStatus
	case models.StageVideoTest:
		return a.VideoTestStatus
	case models.StageInterview:
		return a.InterviewStatus
	}
	return ""
}

type ApplicationFilter struct {
	CompanyID   string
	JobID       string
	CandidateID string
}
