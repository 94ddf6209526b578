package application

import (
	"testing"

	"github.com/dukeika/interview-portal-sub001/models"

	"github.com/stretchr/testify/require"
)

func TestNextStage(t *testing.T) {
	t.Run(`regular progression check`, func(t *testing.T) {
		require.Equal(t, models.StageWrittenTest, NextStage(models.StageApplied))
		require.Equal(t, models.StageVideoTest, NextStage(models.StageWrittenTest))
		require.Equal(t, models.StageInterview, NextStage(models.StageVideoTest))
	})

	t.Run(`saturation at the last stage check`, func(t *testing.T) {
		require.Equal(t, models.StageInterview, NextStage(models.StageInterview))
		require.Equal(t, models.StageInterview, NextStage(models.ApplicationStage(7)))
	})

	t.Run(`below-range input check`, func(t *testing.T) {
		require.Equal(t, models.StageWrittenTest, NextStage(models.ApplicationStage(0)))
		require.Equal(t, models.StageWrittenTest, NextStage(models.ApplicationStage(-3)))
	})
}

func TestStatusColumns(t *testing.T) {
	t.Run(`pending column check`, func(t *testing.T) {
		require.Equal(t, "", PendingStatusColumn(models.StageApplied))
		require.Equal(t, "written_test_status", PendingStatusColumn(models.StageWrittenTest))
		require.Equal(t, "video_test_status", PendingStatusColumn(models.StageVideoTest))
		require.Equal(t, "interview_status", PendingStatusColumn(models.StageInterview))
	})

	t.Run(`candidate-completable column check`, func(t *testing.T) {
		require.Equal(t, "", CompletedStatusColumn(models.StageApplied))
		require.Equal(t, "written_test_status", CompletedStatusColumn(models.StageWrittenTest))
		require.Equal(t, "video_test_status", CompletedStatusColumn(models.StageVideoTest))
		require.Equal(t, "", CompletedStatusColumn(models.StageInterview))
	})
}
