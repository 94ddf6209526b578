package notification

import (
	"fmt"
	"time"

	"github.com/dukeika/interview-portal-sub001/config"
	"github.com/dukeika/interview-portal-sub001/db"
	candidatestore "github.com/dukeika/interview-portal-sub001/lib/candidate/store"
	notificationstore "github.com/dukeika/interview-portal-sub001/lib/notification/store"
	"github.com/dukeika/interview-portal-sub001/lib/smtp"
	connectionhub "github.com/dukeika/interview-portal-sub001/lib/ws/hub/connection-hub"
	"github.com/dukeika/interview-portal-sub001/models"
	notificationapimodels "github.com/dukeika/interview-portal-sub001/models/api/notification"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	wsmodels "github.com/dukeika/interview-portal-sub001/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider composes and delivers candidate notifications. Dispatch methods
// return whether delivery was attempted successfully; they log and swallow
// every failure so a broken notification never breaks the calling flow.
type Provider interface {
	ApplicationStatusChanged(app dbmodels.Application, oldStatus *models.OverallStatus, newStatus models.OverallStatus) bool
	InterviewScheduled(app dbmodels.Application, when time.Time, location string) bool
	Welcome(candidate dbmodels.Candidate) bool

	ListForCandidate(candidateID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error)
	MarkRead(candidateID, id string) error
	MarkAllRead(candidateID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:          notificationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		mailer:         smtp.Instance,
		hub:            connectionhub.Instance,
		portalUrl:      config.Conf.Portal.BaseUrl,
	}
}

type impl struct {
	store          notificationstore.Provider
	candidateStore candidatestore.Provider
	mailer         smtp.Provider
	hub            connectionhub.Provider
	portalUrl      string
}

func (i impl) ApplicationStatusChanged(app dbmodels.Application, oldStatus *models.OverallStatus, newStatus models.OverallStatus) bool {
	logger := log.
		WithField("application_id", app.ID).
		WithField("candidate_id", app.CandidateID).
		WithField("new_status", newStatus)

	candidate := i.lookupCandidate(app.CandidateID, logger)
	if candidate == nil {
		return false
	}
	jobTitle, companyName := jobContext(app)

	old := ""
	if oldStatus != nil {
		old = string(*oldStatus)
	}
	data := StatusChangeData{
		CandidateName: candidate.GetFullName(),
		JobTitle:      jobTitle,
		CompanyName:   companyName,
		OldStatus:     old,
		NewStatus:     string(newStatus),
		NextSteps:     NextStepsMessage(newStatus, app.CurrentStage),
	}
	subject, htmlBody, textBody, err := renderStatusChange(data)
	if err != nil {
		logger.WithError(err).Error("failed to render status change notification")
		return false
	}

	rec := dbmodels.Notification{
		CandidateID:   candidate.ID,
		Type:          typeForStatus(newStatus),
		Category:      models.CategoryApplicationUpdate,
		Title:         subject,
		Message:       fmt.Sprintf("Your application for %v at %v is now %v. %v", jobTitle, companyName, newStatus, data.NextSteps),
		ApplicationID: app.ID,
		JobTitle:      jobTitle,
		CompanyName:   companyName,
	}
	if newStatus == models.OverallStatusActive && (app.CurrentStage == models.StageWrittenTest || app.CurrentStage == models.StageVideoTest) {
		rec.ActionRequired = true
		rec.ActionText = "Go to your dashboard"
		rec.ActionUrl = fmt.Sprintf("%v/applications/%v", i.portalUrl, app.ID)
	}
	i.persistAndPush(rec, logger)

	if err = i.mailer.SendEmail(candidate.Email, subject, htmlBody, textBody); err != nil {
		logger.WithError(err).Error("failed to email status change notification")
		return false
	}
	return true
}

func (i impl) InterviewScheduled(app dbmodels.Application, when time.Time, location string) bool {
	logger := log.
		WithField("application_id", app.ID).
		WithField("candidate_id", app.CandidateID)

	candidate := i.lookupCandidate(app.CandidateID, logger)
	if candidate == nil {
		return false
	}
	jobTitle, companyName := jobContext(app)

	data := InterviewData{
		CandidateName: candidate.GetFullName(),
		JobTitle:      jobTitle,
		CompanyName:   companyName,
		When:          when.Format("Monday, 02 Jan 2006 15:04"),
		Location:      location,
	}
	subject, htmlBody, textBody, err := renderInterviewScheduled(data)
	if err != nil {
		logger.WithError(err).Error("failed to render interview notification")
		return false
	}

	rec := dbmodels.Notification{
		CandidateID:    candidate.ID,
		Type:           models.NotificationTypeInfo,
		Category:       models.CategoryInterviewScheduled,
		Title:          subject,
		Message:        fmt.Sprintf("Your interview for %v at %v is scheduled for %v.", jobTitle, companyName, data.When),
		ApplicationID:  app.ID,
		JobTitle:       jobTitle,
		CompanyName:    companyName,
		ActionRequired: true,
		ActionText:     "View details",
		ActionUrl:      fmt.Sprintf("%v/applications/%v", i.portalUrl, app.ID),
	}
	i.persistAndPush(rec, logger)

	if err = i.mailer.SendEmail(candidate.Email, subject, htmlBody, textBody); err != nil {
		logger.WithError(err).Error("failed to email interview notification")
		return false
	}
	return true
}

func (i impl) Welcome(candidate dbmodels.Candidate) bool {
	logger := log.WithField("candidate_id", candidate.ID)

	data := WelcomeData{
		CandidateName: candidate.GetFullName(),
		PortalUrl:     i.portalUrl,
	}
	subject, htmlBody, textBody, err := renderWelcome(data)
	if err != nil {
		logger.WithError(err).Error("failed to render welcome notification")
		return false
	}

	rec := dbmodels.Notification{
		CandidateID: candidate.ID,
		Type:        models.NotificationTypeSuccess,
		Category:    models.CategorySystem,
		Title:       subject,
		Message:     "Welcome to Interview Portal. Browse open positions and track your applications from your dashboard.",
	}
	i.persistAndPush(rec, logger)

	if err = i.mailer.SendEmail(candidate.Email, subject, htmlBody, textBody); err != nil {
		logger.WithError(err).Error("failed to email welcome notification")
		return false
	}
	return true
}

func (i impl) ListForCandidate(candidateID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	count, err := i.store.ListCount(candidateID, filter.UnreadOnly)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}
	page, limit := filter.GetPage()
	list, err := i.store.List(candidateID, filter.UnreadOnly, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.Convert(rec))
	}
	return result, count, nil
}

func (i impl) MarkRead(candidateID, id string) error {
	return i.store.MarkRead(candidateID, id)
}

func (i impl) MarkAllRead(candidateID string) error {
	return i.store.MarkAllRead(candidateID)
}

func (i impl) lookupCandidate(candidateID string, logger *log.Entry) *dbmodels.Candidate {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to look up notification recipient")
		return nil
	}
	if candidate == nil {
		logger.Error("notification recipient not found")
		return nil
	}
	return candidate
}

// persistAndPush stores the feed entry and pushes it over the hub. Both are
// best-effort: failures are logged and the dispatch continues.
func (i impl) persistAndPush(rec dbmodels.Notification, logger *log.Entry) {
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to persist notification")
	}
	if i.hub == nil {
		return
	}
	i.hub.SendMessage(wsmodels.ServerMessage{
		ToCandidateID: rec.CandidateID,
		Time:          time.Now().Format("02.01.2006 15:04:05"),
		Category:      string(rec.Category),
		Title:         rec.Title,
		Msg:           rec.Message,
	})
}

func typeForStatus(status models.OverallStatus) models.NotificationType {
	switch status {
	case models.OverallStatusHired:
		return models.NotificationTypeSuccess
	case models.OverallStatusRejected:
		return models.NotificationTypeWarning
	default:
		return models.NotificationTypeInfo
	}
}

func jobContext(app dbmodels.Application) (jobTitle, companyName string) {
	if app.Job != nil {
		jobTitle = app.Job.Title
		if app.Job.Company != nil {
			companyName = app.Job.Company.Name
		}
	}
	if jobTitle == "" {
		jobTitle = "the position"
	}
	if companyName == "" {
		companyName = "the company"
	}
	return jobTitle, companyName
}
