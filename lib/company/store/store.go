package companystore

import (
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Company) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Company, err error)
	List(page, limit int) ([]dbmodels.Company, int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("company not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", id).
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

func (i impl) List(page, limit int) (list []dbmodels.Company, count int64, err error) {
	list = []dbmodels.Company{}
	tx := i.db.Model(dbmodels.Company{})
	err = tx.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}
