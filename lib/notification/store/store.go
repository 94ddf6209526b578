package notificationstore

import (
	"time"

	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List(candidateID string, unreadOnly bool, page, limit int) ([]dbmodels.Notification, error)
	ListCount(candidateID string, unreadOnly bool) (int64, error)
	ListUnread(candidateID string) ([]dbmodels.Notification, error)
	MarkRead(candidateID, id string) error
	MarkAllRead(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(candidateID string, unreadOnly bool, page, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("candidate_id = ?", candidateID)
	if unreadOnly {
		tx.Where("read = false")
	}
	offset := (page - 1) * limit
	err = tx.
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(candidateID string, unreadOnly bool) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("candidate_id = ?", candidateID)
	if unreadOnly {
		tx.Where("read = false")
	}
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) ListUnread(candidateID string) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	err := i.db.
		Model(dbmodels.Notification{}).
		Where("candidate_id = ?", candidateID).
		Where("read = false").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(candidateID, id string) error {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("candidate_id = ?", candidateID).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": &now,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

func (i impl) MarkAllRead(candidateID string) error {
	now := time.Now()
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("candidate_id = ?", candidateID).
		Where("read = false").
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": &now,
		}).
		Error
}
