package connectionhub

import (
	"sync"

	"github.com/dukeika/interview-portal-sub001/db"
	notificationstore "github.com/dukeika/interview-portal-sub001/lib/notification/store"
	wsmodels "github.com/dukeika/interview-portal-sub001/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(candidateID string, conn *websocket.Conn)
	DeleteClient(candidateID string)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(candidateID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[candidateID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(candidateID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[candidateID]
	if !ok {
		return
	}
	delete(i.clients, candidateID)
	// stop() tears down the writer through its context; the channel is never
	// closed so a concurrent SendMessage that already holds the session
	// cannot hit a closed channel.
	sess.stop()
}

func (i *impl) AddClient(candidateID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[candidateID]
	if ok {
		oldSess.stop()
	}
	i.clients[candidateID] = newSession(conn)
	i.mu.Unlock()
	go i.sendMissedNotifications(candidateID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToCandidateID]
	i.mu.Unlock()
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) IsConnected(candidateID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[candidateID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendMissedNotifications replays the unread feed to a freshly connected
// client, so pushes dispatched while it was offline are not lost.
func (i *impl) sendMissedNotifications(candidateID string) {
	logger := log.WithField("candidate_id", candidateID)
	list, err := i.store.ListUnread(candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to load unread notifications")
		return
	}
	for _, item := range list {
		if !i.IsConnected(candidateID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToCandidateID: candidateID,
			Time:          item.CreatedAt.Format("02.01.2006 15:04:05"),
			Category:      string(item.Category),
			Title:         item.Title,
			Msg:           item.Message,
		})
	}
}
