package connectionhub

import (
	"testing"

	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	wsmodels "github.com/dukeika/interview-portal-sub001/models/ws"

	"github.com/stretchr/testify/require"
)

type fakeFeedStore struct {
	unread []dbmodels.Notification
}

func (s *fakeFeedStore) Create(rec dbmodels.Notification) (string, error) { return rec.ID, nil }
func (s *fakeFeedStore) List(candidateID string, unreadOnly bool, page, limit int) ([]dbmodels.Notification, error) {
	return nil, nil
}
func (s *fakeFeedStore) ListCount(candidateID string, unreadOnly bool) (int64, error) {
	return 0, nil
}
func (s *fakeFeedStore) ListUnread(candidateID string) ([]dbmodels.Notification, error) {
	return s.unread, nil
}
func (s *fakeFeedStore) MarkRead(candidateID, id string) error { return nil }
func (s *fakeFeedStore) MarkAllRead(candidateID string) error  { return nil }

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   &fakeFeedStore{},
	}
}

func TestConnectionLifecycle(t *testing.T) {
	t.Run(`delete removes the client check`, func(t *testing.T) {
		hub := newTestHub()
		hub.AddClient("candidate-1", nil)
		hub.DeleteClient("candidate-1")
		require.False(t, hub.IsConnected("candidate-1"))
	})

	t.Run(`delete of unknown client check`, func(t *testing.T) {
		hub := newTestHub()
		require.NotPanics(t, func() { hub.DeleteClient("candidate-1") })
	})

	t.Run(`push to disconnected client check`, func(t *testing.T) {
		hub := newTestHub()
		hub.AddClient("candidate-1", nil)
		hub.DeleteClient("candidate-1")
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToCandidateID: "candidate-1", Msg: "hello"})
		})
	})

	t.Run(`push racing a disconnect check`, func(t *testing.T) {
		hub := newTestHub()
		hub.AddClient("candidate-1", nil)

		// A sender can hold the session while DeleteClient runs. The channel
		// must stay writable after the teardown.
		hub.mu.Lock()
		sess := hub.clients["candidate-1"]
		hub.mu.Unlock()

		hub.DeleteClient("candidate-1")
		require.NotPanics(t, func() {
			sess.sendCh <- wsmodels.ServerMessage{ToCandidateID: "candidate-1", Msg: "hello"}
		})
	})
}
