package notification

import (
	"testing"

	"github.com/dukeika/interview-portal-sub001/models"

	"github.com/stretchr/testify/require"
)

func TestNextStepsMessage(t *testing.T) {
	t.Run(`active stages check`, func(t *testing.T) {
		msg := NextStepsMessage(models.OverallStatusActive, models.StageWrittenTest)
		require.Contains(t, msg, "written test")

		msg = NextStepsMessage(models.OverallStatusActive, models.StageVideoTest)
		require.Contains(t, msg, "video interview")

		msg = NextStepsMessage(models.OverallStatusActive, models.StageInterview)
		require.Contains(t, msg, "interview will be scheduled")

		msg = NextStepsMessage(models.OverallStatusActive, models.StageApplied)
		require.Contains(t, msg, "under review")
	})

	t.Run(`terminal statuses ignore stage check`, func(t *testing.T) {
		for _, stage := range []models.ApplicationStage{models.StageApplied, models.StageWrittenTest, models.StageVideoTest, models.StageInterview} {
			require.Contains(t, NextStepsMessage(models.OverallStatusRejected, stage), "future openings")
			require.Contains(t, NextStepsMessage(models.OverallStatusHired, stage), "Congratulations")
		}
	})

	t.Run(`total over unknown input check`, func(t *testing.T) {
		require.NotEmpty(t, NextStepsMessage(models.OverallStatus("UNKNOWN"), models.StageApplied))
		require.NotEmpty(t, NextStepsMessage(models.OverallStatusActive, models.ApplicationStage(42)))
	})
}
