package models

// ApplicationStage is the sequential phase of the hiring pipeline.
// Stages only move forward; there is no revert operation.
type ApplicationStage int

const (
	StageApplied     ApplicationStage = 1
	StageWrittenTest ApplicationStage = 2
	StageVideoTest   ApplicationStage = 3
	StageInterview   ApplicationStage = 4
)

var stageNames = map[ApplicationStage]string{
	StageApplied:     "Applied",
	StageWrittenTest: "Written Test",
	StageVideoTest:   "Video Test",
	StageInterview:   "Interview",
}

func (s ApplicationStage) Name() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s ApplicationStage) IsValid() bool {
	return s >= StageApplied && s <= StageInterview
}

// OverallStatus classifies the application as a whole, orthogonal to stage.
type OverallStatus string

const (
	OverallStatusActive   OverallStatus = "ACTIVE"
	OverallStatusRejected OverallStatus = "REJECTED"
	OverallStatusHired    OverallStatus = "HIRED"
)

func (s OverallStatus) IsValid() bool {
	return s == OverallStatusActive || s == OverallStatusRejected || s == OverallStatusHired
}

// IsTerminal reports whether the status ends the pipeline.
func (s OverallStatus) IsTerminal() bool {
	return s == OverallStatusRejected || s == OverallStatusHired
}

// StageStatus is the per-stage bookkeeping value.
type StageStatus string

const (
	StageStatusNotStarted StageStatus = "NOT_STARTED"
	StageStatusPending    StageStatus = "PENDING"
	StageStatusCompleted  StageStatus = "COMPLETED"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusClosed    JobStatus = "CLOSED"
)

type UserRole string

const (
	UserRoleSuperAdmin   UserRole = "SUPER_ADMIN"
	UserRoleCompanyAdmin UserRole = "COMPANY_ADMIN"
	UserRoleCandidate    UserRole = "CANDIDATE"
)
