package company

import (
	"github.com/dukeika/interview-portal-sub001/db"
	companystore "github.com/dukeika/interview-portal-sub001/lib/company/store"
	userstore "github.com/dukeika/interview-portal-sub001/lib/company/user-store"
	"github.com/dukeika/interview-portal-sub001/lib/utils/helpers"
	"github.com/dukeika/interview-portal-sub001/models"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	companyapimodels "github.com/dukeika/interview-portal-sub001/models/api/company"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data companyapimodels.CompanyData) (companyapimodels.CompanyView, error)
	Update(id string, data companyapimodels.CompanyData) error
	SetActive(id string, active bool) error
	Get(id string) (companyapimodels.CompanyView, error)
	List(pagination apimodels.Pagination) ([]companyapimodels.CompanyView, int64, error)

	CreateAdmin(companyID string, data companyapimodels.AdminData) (companyapimodels.AdminView, error)
	ListAdmins(companyID string) ([]companyapimodels.AdminView, error)
	SetAdminActive(id string, active bool) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     companystore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     companystore.Provider
	userStore userstore.Provider
}

func (i impl) Create(data companyapimodels.CompanyData) (companyapimodels.CompanyView, error) {
	rec := dbmodels.Company{
		Name:         data.Name,
		ContactEmail: helpers.NormalizeEmail(data.ContactEmail),
		Description:  data.Description,
		Active:       true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("name", data.Name).WithError(err).Error("failed to create company")
		return companyapimodels.CompanyView{}, err
	}
	rec.ID = id
	return companyapimodels.Convert(rec), nil
}

func (i impl) Update(id string, data companyapimodels.CompanyData) error {
	return i.store.Update(id, map[string]interface{}{
		"name":          data.Name,
		"contact_email": helpers.NormalizeEmail(data.ContactEmail),
		"description":   data.Description,
	})
}

func (i impl) SetActive(id string, active bool) error {
	return i.store.Update(id, map[string]interface{}{
		"active": active,
	})
}

func (i impl) Get(id string) (companyapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return companyapimodels.CompanyView{}, err
	}
	if rec == nil {
		return companyapimodels.CompanyView{}, errors.New("company not found")
	}
	return companyapimodels.Convert(*rec), nil
}

func (i impl) List(pagination apimodels.Pagination) ([]companyapimodels.CompanyView, int64, error) {
	page, limit := pagination.GetPage()
	list, count, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]companyapimodels.CompanyView, 0, len(list))
	for _, rec := range list {
		result = append(result, companyapimodels.Convert(rec))
	}
	return result, count, nil
}

func (i impl) CreateAdmin(companyID string, data companyapimodels.AdminData) (companyapimodels.AdminView, error) {
	email := helpers.NormalizeEmail(data.Email)
	logger := log.
		WithField("company_id", companyID).
		WithField("email", email)

	company, err := i.store.GetByID(companyID)
	if err != nil {
		logger.WithError(err).Error("failed to look up company")
		return companyapimodels.AdminView{}, errors.New("failed to look up company")
	}
	if company == nil {
		return companyapimodels.AdminView{}, errors.New("company not found")
	}
	exists, err := i.userStore.ExistByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to check for an existing account")
		return companyapimodels.AdminView{}, errors.New("failed to check for an existing account")
	}
	if exists {
		return companyapimodels.AdminView{}, errors.New("an account with this email already exists")
	}

	rec := dbmodels.User{
		CompanyID: &companyID,
		Email:     email,
		Password:  helpers.HashPassword(data.Password),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      models.UserRoleCompanyAdmin,
		Active:    true,
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create company admin")
		return companyapimodels.AdminView{}, err
	}
	rec.ID = id
	return companyapimodels.ConvertAdmin(rec), nil
}

func (i impl) ListAdmins(companyID string) ([]companyapimodels.AdminView, error) {
	list, err := i.userStore.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	result := make([]companyapimodels.AdminView, 0, len(list))
	for _, rec := range list {
		result = append(result, companyapimodels.ConvertAdmin(rec))
	}
	return result, nil
}

func (i impl) SetAdminActive(id string, active bool) error {
	return i.userStore.SetActive(id, active)
}
