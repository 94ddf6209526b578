package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderStatusChange(t *testing.T) {
	t.Run(`render check`, func(t *testing.T) {
		subject, htmlBody, textBody, err := renderStatusChange(StatusChangeData{
			CandidateName: "Jane Doe",
			JobTitle:      "Backend Engineer",
			CompanyName:   "Initech",
			OldStatus:     "ACTIVE",
			NewStatus:     "HIRED",
			NextSteps:     "Congratulations!",
		})
		require.Nil(t, err)
		require.Contains(t, subject, "Backend Engineer")
		require.Contains(t, htmlBody, "Jane Doe")
		require.Contains(t, htmlBody, "from <b>ACTIVE</b>")
		require.Contains(t, textBody, "to HIRED")
	})

	t.Run(`unknown previous status is omitted check`, func(t *testing.T) {
		_, htmlBody, textBody, err := renderStatusChange(StatusChangeData{
			CandidateName: "Jane Doe",
			JobTitle:      "Backend Engineer",
			CompanyName:   "Initech",
			NewStatus:     "REJECTED",
		})
		require.Nil(t, err)
		require.NotContains(t, htmlBody, "from")
		require.NotContains(t, textBody, "from")
	})

	t.Run(`html escaping check`, func(t *testing.T) {
		_, htmlBody, textBody, err := renderStatusChange(StatusChangeData{
			CandidateName: `<script>alert("x")</script>`,
			JobTitle:      "QA & Test",
			CompanyName:   "Initech",
			NewStatus:     "ACTIVE",
		})
		require.Nil(t, err)
		require.NotContains(t, htmlBody, "<script>")
		require.Contains(t, htmlBody, "&lt;script&gt;")
		// the plain text variant keeps the raw value
		require.Contains(t, textBody, "QA & Test")
	})
}

func TestRenderInterviewScheduled(t *testing.T) {
	t.Run(`location rendering check`, func(t *testing.T) {
		subject, htmlBody, _, err := renderInterviewScheduled(InterviewData{
			CandidateName: "Jane Doe",
			JobTitle:      "Backend Engineer",
			CompanyName:   "Initech",
			When:          "Monday, 02 Mar 2026 14:00",
			Location:      "Zoom",
		})
		require.Nil(t, err)
		require.Contains(t, subject, "Interview scheduled")
		require.Contains(t, htmlBody, "Zoom")
		require.Contains(t, htmlBody, "Monday, 02 Mar 2026 14:00")
	})
}

func TestRenderWelcome(t *testing.T) {
	t.Run(`render check`, func(t *testing.T) {
		subject, htmlBody, textBody, err := renderWelcome(WelcomeData{
			CandidateName: "Jane Doe",
			PortalUrl:     "https://portal.example.com",
		})
		require.Nil(t, err)
		require.Equal(t, "Welcome to Interview Portal", subject)
		require.Contains(t, htmlBody, `href="https://portal.example.com"`)
		require.Contains(t, textBody, "https://portal.example.com")
	})
}
