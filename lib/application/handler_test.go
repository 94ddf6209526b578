package application

import (
	"fmt"
	"sync"
	"testing"
	"time"

	jobstore "github.com/dukeika/interview-portal-sub001/lib/job/store"
	"github.com/dukeika/interview-portal-sub001/models"
	applicationapimodels "github.com/dukeika/interview-portal-sub001/models/api/application"
	notificationapimodels "github.com/dukeika/interview-portal-sub001/models/api/notification"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	seq     int
	recs    map[string]*dbmodels.Application
	failGet bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: map[string]*dbmodels.Application{}}
}

func (s *fakeStore) Create(rec dbmodels.Application) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	rec.ID = fmt.Sprintf("app-%v", s.seq)
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *fakeStore) Update(id string, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return errors.New("application not found")
	}
	for col, val := range updMap {
		switch col {
		case "current_stage":
			rec.CurrentStage = val.(models.ApplicationStage)
		case "overall_status":
			rec.OverallStatus = val.(models.OverallStatus)
		case "application_status":
			rec.ApplicationStatus = val.(models.StageStatus)
		case "written_test_status":
			rec.WrittenTestStatus = val.(models.StageStatus)
		case "video_test_status":
			rec.VideoTestStatus = val.(models.StageStatus)
		case "interview_status":
			rec.InterviewStatus = val.(models.StageStatus)
		case "feedback":
			rec.Feedback = val.(string)
		case "internal_notes":
			rec.InternalNotes = val.(string)
		}
	}
	return nil
}

func (s *fakeStore) GetByID(id string) (*dbmodels.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, errors.New("store unavailable")
	}
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) IsExist(candidateID, jobID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.CandidateID == candidateID && rec.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) List(filter dbmodels.ApplicationFilter, page, limit int) ([]dbmodels.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dbmodels.Application{}
	for _, rec := range s.recs {
		if filter.CandidateID != "" && rec.CandidateID != filter.CandidateID {
			continue
		}
		if filter.JobID != "" && rec.JobID != filter.JobID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (s *fakeStore) ListCount(filter dbmodels.ApplicationFilter) (int64, error) {
	list, _ := s.List(filter, 1, 0)
	return int64(len(list)), nil
}

func (s *fakeStore) get(id string) dbmodels.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.recs[id]
}

type statusCall struct {
	appID     string
	oldStatus *models.OverallStatus
	newStatus models.OverallStatus
}

type fakeNotifier struct {
	mu             sync.Mutex
	statusCalls    []statusCall
	interviewCalls int
}

func (n *fakeNotifier) ApplicationStatusChanged(app dbmodels.Application, oldStatus *models.OverallStatus, newStatus models.OverallStatus) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusCalls = append(n.statusCalls, statusCall{appID: app.ID, oldStatus: oldStatus, newStatus: newStatus})
	return true
}

func (n *fakeNotifier) InterviewScheduled(app dbmodels.Application, when time.Time, location string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.interviewCalls++
	return true
}

func (n *fakeNotifier) Welcome(candidate dbmodels.Candidate) bool { return true }

func (n *fakeNotifier) ListForCandidate(candidateID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	return nil, 0, nil
}

func (n *fakeNotifier) MarkRead(candidateID, id string) error { return nil }
func (n *fakeNotifier) MarkAllRead(candidateID string) error  { return nil }

func (n *fakeNotifier) statusCallCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.statusCalls)
}

func (n *fakeNotifier) lastStatusCall() statusCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.statusCalls[len(n.statusCalls)-1]
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (s *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (s *fakeJobStore) Update(id, companyID string, updMap map[string]interface{}) error {
	return nil
}
func (s *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	return s.jobs[id], nil
}
func (s *fakeJobStore) ListByCompany(companyID string, page, limit int) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}
func (s *fakeJobStore) ListPublished(page, limit int) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}
func (s *fakeJobStore) Delete(id, companyID string) error { return nil }

var _ jobstore.Provider = (*fakeJobStore)(nil)

const (
	testCompanyID   = "company-1"
	testCandidateID = "candidate-1"
	testJobID       = "job-1"
)

func testJob() *dbmodels.Job {
	return &dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: testJobID},
		CompanyID: testCompanyID,
		Title:     "Backend Engineer",
		Status:    models.JobStatusPublished,
	}
}

func newTestHandler() (*fakeStore, *fakeNotifier, impl) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	handler := impl{
		store:    store,
		jobStore: &fakeJobStore{jobs: map[string]*dbmodels.Job{testJobID: testJob()}},
		notifier: notifier,
	}
	return store, notifier, handler
}

func seedApplication(store *fakeStore, mutate func(rec *dbmodels.Application)) string {
	rec := dbmodels.NewApplication(testCandidateID, testJobID)
	rec.Job = testJob()
	if mutate != nil {
		mutate(&rec)
	}
	id, _ := store.Create(rec)
	return id
}

func waitForStatusCalls(t *testing.T, notifier *fakeNotifier, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return notifier.statusCallCount() == want
	}, time.Second, 10*time.Millisecond)
}

func TestApply(t *testing.T) {
	t.Run(`fresh application check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		view, err := handler.Apply(testCandidateID, applicationapimodels.ApplyRequest{JobID: testJobID})
		require.Nil(t, err)
		require.Equal(t, 1, view.CurrentStage)
		require.Equal(t, string(models.OverallStatusActive), view.OverallStatus)
		require.Equal(t, string(models.StageStatusCompleted), view.ApplicationStatus)
		require.Equal(t, string(models.StageStatusNotStarted), view.WrittenTestStatus)

		rec := store.get(view.ID)
		require.Equal(t, models.StageApplied, rec.CurrentStage)
	})

	t.Run(`duplicate application check`, func(t *testing.T) {
		_, _, handler := newTestHandler()
		_, err := handler.Apply(testCandidateID, applicationapimodels.ApplyRequest{JobID: testJobID})
		require.Nil(t, err)
		_, err = handler.Apply(testCandidateID, applicationapimodels.ApplyRequest{JobID: testJobID})
		require.NotNil(t, err)
	})

	t.Run(`closed job check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		closed := testJob()
		closed.Status = models.JobStatusClosed
		handler.jobStore = &fakeJobStore{jobs: map[string]*dbmodels.Job{testJobID: closed}}
		_, err := handler.Apply(testCandidateID, applicationapimodels.ApplyRequest{JobID: testJobID})
		require.NotNil(t, err)
		require.Empty(t, store.recs)
	})
}

func TestProgressToNextStage(t *testing.T) {
	t.Run(`progression to written test check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)

		err := handler.ProgressToNextStage(testCompanyID, id, models.StageApplied)
		require.Nil(t, err)

		rec := store.get(id)
		require.Equal(t, models.StageWrittenTest, rec.CurrentStage)
		require.Equal(t, models.StageStatusPending, rec.WrittenTestStatus)
		require.Equal(t, models.StageStatusNotStarted, rec.VideoTestStatus)

		// plain progression carries no overall status, so nothing to announce
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 0, notifier.statusCallCount())
	})

	t.Run(`progression to video test check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageWrittenTest
			rec.WrittenTestStatus = models.StageStatusCompleted
		})

		err := handler.ProgressToNextStage(testCompanyID, id, models.StageWrittenTest)
		require.Nil(t, err)

		rec := store.get(id)
		require.Equal(t, models.StageVideoTest, rec.CurrentStage)
		require.Equal(t, models.StageStatusPending, rec.VideoTestStatus)
	})

	t.Run(`saturation at interview stage check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageInterview
		})

		err := handler.ProgressToNextStage(testCompanyID, id, models.StageInterview)
		require.Nil(t, err)

		rec := store.get(id)
		require.Equal(t, models.StageInterview, rec.CurrentStage)
		require.Equal(t, models.StageStatusPending, rec.InterviewStatus)
	})

	t.Run(`rejected application is closed check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.OverallStatus = models.OverallStatusRejected
		})

		err := handler.ProgressToNextStage(testCompanyID, id, models.StageApplied)
		require.NotNil(t, err)
		require.Equal(t, models.StageApplied, store.get(id).CurrentStage)
	})

	t.Run(`hired application is closed check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.OverallStatus = models.OverallStatusHired
		})

		err := handler.ProgressToNextStage(testCompanyID, id, models.StageInterview)
		require.NotNil(t, err)
	})

	t.Run(`foreign company check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, nil)

		err := handler.ProgressToNextStage("other-company", id, models.StageApplied)
		require.NotNil(t, err)
		require.Equal(t, models.StageApplied, store.get(id).CurrentStage)
	})

	t.Run(`missing application check`, func(t *testing.T) {
		_, _, handler := newTestHandler()
		err := handler.ProgressToNextStage(testCompanyID, "unknown", models.StageApplied)
		require.NotNil(t, err)
	})

	t.Run(`unreadable store fails closed check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.OverallStatus = models.OverallStatusRejected
		})
		store.failGet = true

		err := handler.ProgressToNextStage("other-company", id, models.StageApplied)
		require.NotNil(t, err)

		rec := store.get(id)
		require.Equal(t, models.StageApplied, rec.CurrentStage)
		require.Equal(t, models.StageStatusNotStarted, rec.WrittenTestStatus)
	})
}

func TestStatusDiffTrigger(t *testing.T) {
	t.Run(`status change fires notification check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)

		err := handler.Reject(testCompanyID, id, "not a fit")
		require.Nil(t, err)

		waitForStatusCalls(t, notifier, 1)
		call := notifier.lastStatusCall()
		require.Equal(t, id, call.appID)
		require.Equal(t, models.OverallStatusRejected, call.newStatus)
		require.NotNil(t, call.oldStatus)
		require.Equal(t, models.OverallStatusActive, *call.oldStatus)

		rec := store.get(id)
		require.Equal(t, models.OverallStatusRejected, rec.OverallStatus)
		require.Equal(t, "not a fit", rec.Feedback)
	})

	t.Run(`unchanged status stays silent check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)

		status := models.OverallStatusActive
		err := handler.Update(id, applicationapimodels.UpdateData{OverallStatus: &status})
		require.Nil(t, err)

		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 0, notifier.statusCallCount())
	})

	t.Run(`payload without status stays silent check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)

		feedback := "solid written test"
		err := handler.Update(id, applicationapimodels.UpdateData{Feedback: &feedback})
		require.Nil(t, err)
		require.Equal(t, "solid written test", store.get(id).Feedback)

		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 0, notifier.statusCallCount())
	})

	t.Run(`failed pre-read does not suppress the update check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)
		store.failGet = true

		status := models.OverallStatusHired
		err := handler.Update(id, applicationapimodels.UpdateData{OverallStatus: &status})
		require.Nil(t, err)

		waitForStatusCalls(t, notifier, 1)
		call := notifier.lastStatusCall()
		require.Nil(t, call.oldStatus)
		require.Equal(t, models.OverallStatusHired, call.newStatus)

		require.Equal(t, models.OverallStatusHired, store.get(id).OverallStatus)
	})

	t.Run(`unreadable store blocks the rejection check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, nil)
		store.failGet = true

		err := handler.Reject(testCompanyID, id, "not a fit")
		require.NotNil(t, err)

		require.Equal(t, models.OverallStatusActive, store.get(id).OverallStatus)
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, 0, notifier.statusCallCount())
	})

	t.Run(`hire fires notification check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageInterview
		})

		err := handler.Hire(testCompanyID, id)
		require.Nil(t, err)

		waitForStatusCalls(t, notifier, 1)
		require.Equal(t, models.OverallStatusHired, notifier.lastStatusCall().newStatus)
	})
}

func TestCompleteStage(t *testing.T) {
	t.Run(`pending written test completion check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageWrittenTest
			rec.WrittenTestStatus = models.StageStatusPending
		})

		err := handler.CompleteStage(testCandidateID, id, models.StageWrittenTest)
		require.Nil(t, err)
		require.Equal(t, models.StageStatusCompleted, store.get(id).WrittenTestStatus)
	})

	t.Run(`not pending test check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, nil)

		err := handler.CompleteStage(testCandidateID, id, models.StageWrittenTest)
		require.NotNil(t, err)
	})

	t.Run(`interview has no candidate test check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageInterview
			rec.InterviewStatus = models.StageStatusPending
		})

		err := handler.CompleteStage(testCandidateID, id, models.StageInterview)
		require.NotNil(t, err)
	})

	t.Run(`foreign candidate check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.WrittenTestStatus = models.StageStatusPending
		})

		err := handler.CompleteStage("other-candidate", id, models.StageWrittenTest)
		require.NotNil(t, err)
	})
}

func TestScheduleInterview(t *testing.T) {
	t.Run(`interview stage dispatch check`, func(t *testing.T) {
		store, notifier, handler := newTestHandler()
		id := seedApplication(store, func(rec *dbmodels.Application) {
			rec.CurrentStage = models.StageInterview
		})

		err := handler.ScheduleInterview(testCompanyID, id, time.Now().Add(48*time.Hour), "Zoom")
		require.Nil(t, err)

		require.Eventually(t, func() bool {
			notifier.mu.Lock()
			defer notifier.mu.Unlock()
			return notifier.interviewCalls == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run(`too early stage check`, func(t *testing.T) {
		store, _, handler := newTestHandler()
		id := seedApplication(store, nil)

		err := handler.ScheduleInterview(testCompanyID, id, time.Now().Add(48*time.Hour), "Zoom")
		require.NotNil(t, err)
	})
}
