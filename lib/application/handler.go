package application

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/db"
	applicationstore "github.com/dukeika/interview-portal-sub001/lib/application/store"
	jobstore "github.com/dukeika/interview-portal-sub001/lib/job/store"
	"github.com/dukeika/interview-portal-sub001/lib/notification"
	"github.com/dukeika/interview-portal-sub001/models"
	applicationapimodels "github.com/dukeika/interview-portal-sub001/models/api/application"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Apply(candidateID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error)
	Get(companyID, id string) (applicationapimodels.AdminView, error)
	GetForCandidate(candidateID, id string) (applicationapimodels.ApplicationView, error)
	List(companyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.AdminView, int64, error)
	ListForCandidate(candidateID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	ListForExport(companyID string, filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error)

	ProgressToNextStage(companyID, id string, currentStage models.ApplicationStage) error
	Update(id string, data applicationapimodels.UpdateData) error
	Reject(companyID, id, feedback string) error
	Hire(companyID, id string) error
	SaveNotes(companyID, id string, data applicationapimodels.NotesRequest) error
	CompleteStage(candidateID, id string, stage models.ApplicationStage) error
	ScheduleInterview(companyID, id string, when time.Time, location string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:    applicationstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
		notifier: notification.Instance,
	}
}

type impl struct {
	store    applicationstore.Provider
	jobStore jobstore.Provider
	notifier notification.Provider
}

func (i impl) Apply(candidateID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error) {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("job_id", data.JobID)

	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		logger.WithError(err).Error("failed to look up job")
		return applicationapimodels.ApplicationView{}, errors.New("failed to look up job")
	}
	if job == nil {
		return applicationapimodels.ApplicationView{}, errors.New("job not found")
	}
	if !job.IsOpenForApplications() {
		return applicationapimodels.ApplicationView{}, errors.New("job is not accepting applications")
	}
	exists, err := i.store.IsExist(candidateID, data.JobID)
	if err != nil {
		logger.WithError(err).Error("failed to check for an existing application")
		return applicationapimodels.ApplicationView{}, errors.New("failed to check for an existing application")
	}
	if exists {
		return applicationapimodels.ApplicationView{}, errors.New("you have already applied for this job")
	}

	rec := dbmodels.NewApplication(candidateID, data.JobID)
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create application")
		return applicationapimodels.ApplicationView{}, err
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		// the write went through, fall back to the record in hand
		rec.ID = id
		return applicationapimodels.Convert(rec), nil
	}
	return applicationapimodels.Convert(*created), nil
}

func (i impl) Get(companyID, id string) (applicationapimodels.AdminView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.AdminView{}, err
	}
	if rec == nil || !belongsToCompany(*rec, companyID) {
		return applicationapimodels.AdminView{}, errors.New("application not found")
	}
	return applicationapimodels.ConvertAdmin(*rec), nil
}

func (i impl) GetForCandidate(candidateID, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil || rec.CandidateID != candidateID {
		return applicationapimodels.ApplicationView{}, errors.New("application not found")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) List(companyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.AdminView, int64, error) {
	dbFilter := dbmodels.ApplicationFilter{
		CompanyID:   companyID,
		JobID:       filter.JobID,
		CandidateID: filter.CandidateID,
	}
	count, err := i.store.ListCount(dbFilter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list, err := i.store.List(dbFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.AdminView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ConvertAdmin(rec))
	}
	return result, count, nil
}

func (i impl) ListForCandidate(candidateID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	dbFilter := dbmodels.ApplicationFilter{
		CandidateID: candidateID,
		JobID:       filter.JobID,
	}
	count, err := i.store.ListCount(dbFilter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list, err := i.store.List(dbFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, count, nil
}

func (i impl) ListForExport(companyID string, filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error) {
	dbFilter := dbmodels.ApplicationFilter{
		CompanyID:   companyID,
		JobID:       filter.JobID,
		CandidateID: filter.CandidateID,
	}
	count, err := i.store.ListCount(dbFilter)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []dbmodels.Application{}, nil
	}
	return i.store.List(dbFilter, 1, int(count))
}

// ProgressToNextStage moves the application one stage forward using the
// caller-supplied current stage. The persisted stage is not compared against
// the supplied one before writing; two racing callers resolve as last write
// wins.
func (i impl) ProgressToNextStage(companyID, id string, currentStage models.ApplicationStage) error {
	logger := log.
		WithField("application_id", id).
		WithField("current_stage", currentStage)

	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("failed to read application before progression")
		return errors.New("failed to read application")
	}
	if rec == nil {
		return errors.New("application not found")
	}
	if !belongsToCompany(*rec, companyID) {
		return errors.New("application not found")
	}
	if ok, allowErr := rec.IsAllowProgress(); !ok {
		return allowErr
	}

	next := NextStage(currentStage)
	updMap := map[string]interface{}{
		"current_stage": next,
	}
	if col := PendingStatusColumn(next); col != "" {
		updMap[col] = models.StageStatusPending
	}
	return i.update(id, updMap, nil, logger)
}

// Update applies a partial update and arms the status-diff trigger when the
// payload carries an overall status.
func (i impl) Update(id string, data applicationapimodels.UpdateData) error {
	logger := log.WithField("application_id", id)
	return i.update(id, data.ToUpdateMap(), data.OverallStatus, logger)
}

func (i impl) Reject(companyID, id, feedback string) error {
	if err := i.checkScope(companyID, id); err != nil {
		return err
	}
	status := models.OverallStatusRejected
	data := applicationapimodels.UpdateData{
		OverallStatus: &status,
	}
	if feedback != "" {
		data.Feedback = &feedback
	}
	return i.Update(id, data)
}

func (i impl) Hire(companyID, id string) error {
	if err := i.checkScope(companyID, id); err != nil {
		return err
	}
	status := models.OverallStatusHired
	return i.Update(id, applicationapimodels.UpdateData{
		OverallStatus: &status,
	})
}

func (i impl) SaveNotes(companyID, id string, data applicationapimodels.NotesRequest) error {
	if err := i.checkScope(companyID, id); err != nil {
		return err
	}
	return i.Update(id, applicationapimodels.UpdateData{
		Feedback:      data.Feedback,
		InternalNotes: data.InternalNotes,
	})
}

// CompleteStage lets the candidate close out their own pending test stage.
func (i impl) CompleteStage(candidateID, id string, stage models.ApplicationStage) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.CandidateID != candidateID {
		return errors.New("application not found")
	}
	col := CompletedStatusColumn(stage)
	if col == "" {
		return errors.New("this stage has no candidate test to complete")
	}
	if rec.StageStatusOf(stage) != models.StageStatusPending {
		return errors.New("the test is not pending for this application")
	}
	logger := log.
		WithField("application_id", id).
		WithField("stage", stage)
	return i.update(id, map[string]interface{}{col: models.StageStatusCompleted}, nil, logger)
}

func (i impl) ScheduleInterview(companyID, id string, when time.Time, location string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || !belongsToCompany(*rec, companyID) {
		return errors.New("application not found")
	}
	if rec.OverallStatus != models.OverallStatusActive {
		return errors.New("application pipeline is closed")
	}
	if rec.CurrentStage != models.StageInterview {
		return errors.New("application has not reached the interview stage")
	}
	i.dispatch(rec.ID, func() bool {
		return i.notifier.InterviewScheduled(*rec, when, location)
	})
	return nil
}

// update is the single write path. It best-effort reads the previous state,
// writes, then fires the status-diff notification when the payload carried a
// status that differs from the observed one. An unknown previous state does
// not suppress the notification.
func (i impl) update(id string, updMap map[string]interface{}, newStatus *models.OverallStatus, logger *log.Entry) error {
	var oldStatus *models.OverallStatus
	var prev *dbmodels.Application
	prev, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Warn("failed to read application state before update, previous status treated as unknown")
		prev = nil
	} else if prev == nil {
		return errors.New("application not found")
	} else {
		s := prev.OverallStatus
		oldStatus = &s
	}

	if err := i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("failed to update application")
		return err
	}

	if newStatus == nil {
		return nil
	}
	if oldStatus != nil && *oldStatus == *newStatus {
		return nil
	}

	notifyRec := i.recordForNotification(id, prev, logger)
	status := *newStatus
	i.dispatch(id, func() bool {
		return i.notifier.ApplicationStatusChanged(notifyRec, oldStatus, status)
	})
	return nil
}

// recordForNotification prefers a fresh read so the message reflects the
// written state; it degrades to the pre-read copy, then to a bare id.
func (i impl) recordForNotification(id string, prev *dbmodels.Application, logger *log.Entry) dbmodels.Application {
	rec, err := i.store.GetByID(id)
	if err == nil && rec != nil {
		return *rec
	}
	if err != nil {
		logger.WithError(err).Warn("failed to re-read application after update")
	}
	if prev != nil {
		return *prev
	}
	return dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: id}}
}

// dispatch runs a notification attempt detached from the request flow. A
// failed or panicking dispatch is logged and never reaches the caller.
func (i impl) dispatch(applicationID string, attempt func() bool) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("application_id", applicationID).Errorf("panic in notification dispatch: (%v)", r)
			}
		}()
		if ok := attempt(); !ok {
			log.WithField("application_id", applicationID).Warn("notification was not delivered")
		}
	}()
}

func (i impl) checkScope(companyID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("failed to read application for scope check")
		return errors.New("failed to read application")
	}
	if rec == nil || !belongsToCompany(*rec, companyID) {
		return errors.New("application not found")
	}
	return nil
}

func belongsToCompany(rec dbmodels.Application, companyID string) bool {
	return rec.Job != nil && rec.Job.CompanyID == companyID
}
