package jobstore

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/models"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id, companyID string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Job, err error)
	ListByCompany(companyID string, page, limit int) ([]dbmodels.Job, int64, error)
	ListPublished(page, limit int) ([]dbmodels.Job, int64, error)
	Delete(id, companyID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id, companyID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Preload("Company").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByCompany(companyID string, page, limit int) (list []dbmodels.Job, count int64, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{}).
		Where("company_id = ?", companyID)
	err = tx.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Preload("Company").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func (i impl) ListPublished(page, limit int) (list []dbmodels.Job, count int64, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{}).
		Where("status = ?", models.JobStatusPublished).
		Where("closing_at is null or closing_at = ? or closing_at > ?", time.Time{}, time.Now())
	err = tx.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Preload("Company").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func (i impl) Delete(id, companyID string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Job{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}
