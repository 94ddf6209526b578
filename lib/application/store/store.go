package applicationstore

import (
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Application, err error)
	IsExist(candidateID, jobID string) (found bool, err error)
	List(filter dbmodels.ApplicationFilter, page, limit int) ([]dbmodels.Application, error)
	ListCount(filter dbmodels.ApplicationFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
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
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("applications.id = ?", id).
		Preload("Candidate").
		Preload("Job").
		Preload("Job.Company").
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

func (i impl) IsExist(candidateID, jobID string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.Application{}).
		Select("count(*) > 0").
		Where("candidate_id = ? and job_id = ?", candidateID, jobID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List(filter dbmodels.ApplicationFilter, page, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	offset := (page - 1) * limit
	err = tx.
		Preload("Candidate").
		Preload("Job").
		Preload("Job.Company").
		Order("applications.applied_at desc").
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

func (i impl) ListCount(filter dbmodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.CompanyID != "" {
		tx.Joins("join jobs as j on applications.job_id = j.id").
			Where("j.company_id = ?", filter.CompanyID)
	}
	if filter.JobID != "" {
		tx.Where("applications.job_id = ?", filter.JobID)
	}
	if filter.CandidateID != "" {
		tx.Where("applications.candidate_id = ?", filter.CandidateID)
	}
}
