package notification

import (
	"github.com/dukeika/interview-portal-sub001/models"
)

// NextStepsMessage tells the candidate what happens after a status change.
// Total over both arguments: every combination maps to a message.
func NextStepsMessage(status models.OverallStatus, stage models.ApplicationStage) string {
	switch status {
	case models.OverallStatusActive:
		switch stage {
		case models.StageWrittenTest:
			return "Please log in to your dashboard to complete your written test."
		case models.StageVideoTest:
			return "Please log in to your dashboard to complete your video interview."
		case models.StageInterview:
			return "Your interview will be scheduled shortly. Keep an eye on your inbox for the date and time."
		default:
			return "Your application is under review. We will be in touch as it moves forward."
		}
	case models.OverallStatusRejected:
		return "Thank you for the time you invested in this application. We will keep your profile on file and encourage you to apply for future openings."
	case models.OverallStatusHired:
		return "Congratulations! Our team will reach out with your offer details and onboarding information."
	default:
		return "We will update you on the next steps shortly."
	}
}
