package application

import (
	"github.com/dukeika/interview-portal-sub001/models"
)

// NextStage advances the pipeline by one stage and saturates at the
// interview stage. Out-of-range input is clamped into the valid range
// rather than left undefined.
func NextStage(current models.ApplicationStage) models.ApplicationStage {
	if current < models.StageApplied {
		current = models.StageApplied
	}
	next := current + 1
	if next > models.StageInterview {
		next = models.StageInterview
	}
	return next
}

// PendingStatusColumn names the per-stage status column that switches to
// PENDING when the given stage is entered. The applied stage is created, not
// entered, so it has no column.
func PendingStatusColumn(stage models.ApplicationStage) string {
	switch stage {
	case models.StageWrittenTest:
		return "written_test_status"
	case models.StageVideoTest:
		return "video_test_status"
	case models.StageInterview:
		return "interview_status"
	}
	return ""
}

// CompletedStatusColumn names the column a candidate marks COMPLETED when
// finishing the test belonging to the stage. Only the two test stages are
// completed by the candidate; the interview is closed out by the company.
func CompletedStatusColumn(stage models.ApplicationStage) string {
	switch stage {
	case models.StageWrittenTest:
		return "written_test_status"
	case models.StageVideoTest:
		return "video_test_status"
	}
	return ""
}
