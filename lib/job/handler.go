package job

import (
	"github.com/dukeika/interview-portal-sub001/db"
	jobstore "github.com/dukeika/interview-portal-sub001/lib/job/store"
	"github.com/dukeika/interview-portal-sub001/models"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	jobapimodels "github.com/dukeika/interview-portal-sub001/models/api/job"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(companyID string, data jobapimodels.JobData) (jobapimodels.JobView, error)
	Update(companyID, id string, data jobapimodels.JobData) error
	Publish(companyID, id string) error
	Close(companyID, id string) error
	Get(companyID, id string) (jobapimodels.JobView, error)
	GetPublished(id string) (jobapimodels.JobView, error)
	ListByCompany(companyID string, pagination apimodels.Pagination) ([]jobapimodels.JobView, int64, error)
	ListPublished(pagination apimodels.Pagination) ([]jobapimodels.JobView, int64, error)
	Delete(companyID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(companyID string, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec := dbmodels.Job{
		CompanyID:    companyID,
		Title:        data.Title,
		Description:  data.Description,
		Location:     data.Location,
		Requirements: pq.StringArray(data.Requirements),
		Status:       models.JobStatusDraft,
		ClosingAt:    data.ClosingAt,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to create job")
		return jobapimodels.JobView{}, err
	}
	rec.ID = id
	return jobapimodels.Convert(rec), nil
}

func (i impl) Update(companyID, id string, data jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"title":       data.Title,
		"description": data.Description,
		"location":    data.Location,
		"closing_at":  data.ClosingAt,
	}
	if data.Requirements != nil {
		updMap["requirements"] = pq.StringArray(data.Requirements)
	}
	return i.store.Update(id, companyID, updMap)
}

func (i impl) Publish(companyID, id string) error {
	return i.store.Update(id, companyID, map[string]interface{}{
		"status": models.JobStatusPublished,
	})
}

func (i impl) Close(companyID, id string) error {
	return i.store.Update(id, companyID, map[string]interface{}{
		"status": models.JobStatusClosed,
	})
}

func (i impl) Get(companyID, id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil || rec.CompanyID != companyID {
		return jobapimodels.JobView{}, errors.New("job not found")
	}
	return jobapimodels.Convert(*rec), nil
}

// GetPublished is the candidate-facing read, drafts and closed jobs stay hidden.
func (i impl) GetPublished(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil || rec.Status != models.JobStatusPublished {
		return jobapimodels.JobView{}, errors.New("job not found")
	}
	return jobapimodels.Convert(*rec), nil
}

func (i impl) ListByCompany(companyID string, pagination apimodels.Pagination) ([]jobapimodels.JobView, int64, error) {
	page, limit := pagination.GetPage()
	list, count, err := i.store.ListByCompany(companyID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return convertList(list), count, nil
}

func (i impl) ListPublished(pagination apimodels.Pagination) ([]jobapimodels.JobView, int64, error) {
	page, limit := pagination.GetPage()
	list, count, err := i.store.ListPublished(page, limit)
	if err != nil {
		return nil, 0, err
	}
	return convertList(list), count, nil
}

func (i impl) Delete(companyID, id string) error {
	return i.store.Delete(id, companyID)
}

func convertList(list []dbmodels.Job) []jobapimodels.JobView {
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.Convert(rec))
	}
	return result
}
