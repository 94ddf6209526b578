package notification

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dukeika/interview-portal-sub001/models"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	wsmodels "github.com/dukeika/interview-portal-sub001/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeNotificationStore struct {
	mu   sync.Mutex
	seq  int
	recs []dbmodels.Notification
}

func (s *fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	rec.ID = fmt.Sprintf("ntf-%v", s.seq)
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *fakeNotificationStore) List(candidateID string, unreadOnly bool, page, limit int) ([]dbmodels.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dbmodels.Notification{}
	for _, rec := range s.recs {
		if rec.CandidateID != candidateID {
			continue
		}
		if unreadOnly && rec.Read {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

func (s *fakeNotificationStore) ListCount(candidateID string, unreadOnly bool) (int64, error) {
	list, _ := s.List(candidateID, unreadOnly, 1, 0)
	return int64(len(list)), nil
}

func (s *fakeNotificationStore) ListUnread(candidateID string) ([]dbmodels.Notification, error) {
	return s.List(candidateID, true, 1, 0)
}

func (s *fakeNotificationStore) MarkRead(candidateID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, rec := range s.recs {
		if rec.CandidateID == candidateID && rec.ID == id {
			now := time.Now()
			s.recs[idx].Read = true
			s.recs[idx].ReadAt = &now
			return nil
		}
	}
	return errors.New("notification not found")
}

func (s *fakeNotificationStore) MarkAllRead(candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, rec := range s.recs {
		if rec.CandidateID == candidateID {
			s.recs[idx].Read = true
		}
	}
	return nil
}

func (s *fakeNotificationStore) stored() []dbmodels.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dbmodels.Notification{}, s.recs...)
}

type fakeCandidateStore struct {
	recs map[string]*dbmodels.Candidate
}

func (s *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) { return rec.ID, nil }
func (s *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	return s.recs[id], nil
}
func (s *fakeCandidateStore) GetByEmail(email string) (*dbmodels.Candidate, error) {
	return nil, nil
}
func (s *fakeCandidateStore) ExistByEmail(email string) (bool, error) { return false, nil }

type sentEmail struct {
	to      string
	subject string
}

type fakeMailer struct {
	mu    sync.Mutex
	fail  bool
	sends []sentEmail
}

func (m *fakeMailer) SendEmail(to, subject, htmlBody, textBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp connection refused")
	}
	m.sends = append(m.sends, sentEmail{to: to, subject: subject})
	return nil
}

func (m *fakeMailer) IsConfigured() bool { return true }

type fakeHub struct {
	mu       sync.Mutex
	messages []wsmodels.ServerMessage
}

func (h *fakeHub) AddClient(candidateID string, conn *websocket.Conn) {}
func (h *fakeHub) DeleteClient(candidateID string)                   {}
func (h *fakeHub) IsConnected(candidateID string) bool               { return false }
func (h *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
}

func (h *fakeHub) pushed() []wsmodels.ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]wsmodels.ServerMessage{}, h.messages...)
}

func testCandidate() *dbmodels.Candidate {
	return &dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: "candidate-1"},
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func testApplication(stage models.ApplicationStage) dbmodels.Application {
	return dbmodels.Application{
		BaseModel:   dbmodels.BaseModel{ID: "app-1"},
		CandidateID: "candidate-1",
		JobID:       "job-1",
		Job: &dbmodels.Job{
			BaseModel: dbmodels.BaseModel{ID: "job-1"},
			CompanyID: "company-1",
			Title:     "Backend Engineer",
			Company:   &dbmodels.Company{Name: "Initech"},
		},
		CurrentStage:  stage,
		OverallStatus: models.OverallStatusActive,
	}
}

func newTestNotifier() (*fakeNotificationStore, *fakeMailer, *fakeHub, impl) {
	store := &fakeNotificationStore{}
	mailer := &fakeMailer{}
	hub := &fakeHub{}
	handler := impl{
		store:          store,
		candidateStore: &fakeCandidateStore{recs: map[string]*dbmodels.Candidate{"candidate-1": testCandidate()}},
		mailer:         mailer,
		hub:            hub,
		portalUrl:      "https://portal.example.com",
	}
	return store, mailer, hub, handler
}

func TestApplicationStatusChanged(t *testing.T) {
	t.Run(`successful dispatch check`, func(t *testing.T) {
		store, mailer, hub, handler := newTestNotifier()
		old := models.OverallStatusActive

		ok := handler.ApplicationStatusChanged(testApplication(models.StageInterview), &old, models.OverallStatusHired)
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.Equal(t, "candidate-1", recs[0].CandidateID)
		require.Equal(t, models.CategoryApplicationUpdate, recs[0].Category)
		require.Equal(t, models.NotificationTypeSuccess, recs[0].Type)
		require.Contains(t, recs[0].Message, "Backend Engineer")
		require.Contains(t, recs[0].Message, "Initech")

		require.Len(t, hub.pushed(), 1)

		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		require.Len(t, mailer.sends, 1)
		require.Equal(t, "jane@example.com", mailer.sends[0].to)
		require.Contains(t, mailer.sends[0].subject, "Backend Engineer")
	})

	t.Run(`action required for pending test check`, func(t *testing.T) {
		store, _, _, handler := newTestNotifier()

		ok := handler.ApplicationStatusChanged(testApplication(models.StageWrittenTest), nil, models.OverallStatusActive)
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.True(t, recs[0].ActionRequired)
		require.Equal(t, "https://portal.example.com/applications/app-1", recs[0].ActionUrl)
	})

	t.Run(`no action for terminal status check`, func(t *testing.T) {
		store, _, _, handler := newTestNotifier()

		ok := handler.ApplicationStatusChanged(testApplication(models.StageVideoTest), nil, models.OverallStatusRejected)
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.False(t, recs[0].ActionRequired)
		require.Equal(t, models.NotificationTypeWarning, recs[0].Type)
	})

	t.Run(`missing recipient check`, func(t *testing.T) {
		store, mailer, _, handler := newTestNotifier()
		handler.candidateStore = &fakeCandidateStore{recs: map[string]*dbmodels.Candidate{}}

		ok := handler.ApplicationStatusChanged(testApplication(models.StageApplied), nil, models.OverallStatusRejected)
		require.False(t, ok)
		require.Empty(t, store.stored())
		require.Empty(t, mailer.sends)
	})

	t.Run(`transport failure check`, func(t *testing.T) {
		store, mailer, hub, handler := newTestNotifier()
		mailer.fail = true

		ok := handler.ApplicationStatusChanged(testApplication(models.StageApplied), nil, models.OverallStatusRejected)
		require.False(t, ok)

		// the feed entry and push do not depend on the email leg
		require.Len(t, store.stored(), 1)
		require.Len(t, hub.pushed(), 1)
	})

	t.Run(`missing job context fallback check`, func(t *testing.T) {
		store, _, _, handler := newTestNotifier()
		app := testApplication(models.StageApplied)
		app.Job = nil

		ok := handler.ApplicationStatusChanged(app, nil, models.OverallStatusRejected)
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.Contains(t, recs[0].Message, "the position")
	})
}

func TestInterviewScheduled(t *testing.T) {
	t.Run(`successful dispatch check`, func(t *testing.T) {
		store, mailer, _, handler := newTestNotifier()
		when := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

		ok := handler.InterviewScheduled(testApplication(models.StageInterview), when, "Zoom")
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.Equal(t, models.CategoryInterviewScheduled, recs[0].Category)
		require.True(t, recs[0].ActionRequired)

		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		require.Len(t, mailer.sends, 1)
	})
}

func TestWelcome(t *testing.T) {
	t.Run(`successful dispatch check`, func(t *testing.T) {
		store, mailer, _, handler := newTestNotifier()

		ok := handler.Welcome(*testCandidate())
		require.True(t, ok)

		recs := store.stored()
		require.Len(t, recs, 1)
		require.Equal(t, models.CategorySystem, recs[0].Category)

		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		require.Equal(t, "jane@example.com", mailer.sends[0].to)
	})
}

func TestFeedOperations(t *testing.T) {
	t.Run(`unread filter check`, func(t *testing.T) {
		store, _, _, handler := newTestNotifier()
		_ = handler.ApplicationStatusChanged(testApplication(models.StageApplied), nil, models.OverallStatusRejected)
		_ = handler.Welcome(*testCandidate())

		recs := store.stored()
		require.Len(t, recs, 2)

		require.Nil(t, handler.MarkRead("candidate-1", recs[0].ID))
		unread, err := store.ListUnread("candidate-1")
		require.Nil(t, err)
		require.Len(t, unread, 1)

		require.Nil(t, handler.MarkAllRead("candidate-1"))
		unread, err = store.ListUnread("candidate-1")
		require.Nil(t, err)
		require.Empty(t, unread)
	})
}
