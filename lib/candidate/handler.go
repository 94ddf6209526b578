package candidate

import (
	"github.com/dukeika/interview-portal-sub001/db"
	candidatestore "github.com/dukeika/interview-portal-sub001/lib/candidate/store"
	"github.com/dukeika/interview-portal-sub001/lib/notification"
	"github.com/dukeika/interview-portal-sub001/lib/utils/helpers"
	authapimodels "github.com/dukeika/interview-portal-sub001/models/api/auth"
	candidateapimodels "github.com/dukeika/interview-portal-sub001/models/api/candidate"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (candidateapimodels.CandidateView, error)
	Authenticate(email, password string) (*dbmodels.Candidate, error)
	Get(id string) (candidateapimodels.CandidateView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:    candidatestore.NewInstance(db.DB),
		notifier: notification.Instance,
	}
}

type impl struct {
	store    candidatestore.Provider
	notifier notification.Provider
}

func (i impl) Register(data authapimodels.RegisterRequest) (candidateapimodels.CandidateView, error) {
	email := helpers.NormalizeEmail(data.Email)
	logger := log.WithField("email", email)

	exists, err := i.store.ExistByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to check for an existing account")
		return candidateapimodels.CandidateView{}, errors.New("failed to check for an existing account")
	}
	if exists {
		return candidateapimodels.CandidateView{}, errors.New("an account with this email already exists")
	}

	rec := dbmodels.Candidate{
		Email:     email,
		Password:  helpers.HashPassword(data.Password),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create candidate")
		return candidateapimodels.CandidateView{}, err
	}
	rec.ID = id

	// greeting is best-effort, registration never waits on it
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("panic in welcome dispatch: (%v)", r)
			}
		}()
		if ok := i.notifier.Welcome(rec); !ok {
			logger.Warn("welcome notification was not delivered")
		}
	}()

	return candidateapimodels.Convert(rec), nil
}

func (i impl) Authenticate(email, password string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByEmail(helpers.NormalizeEmail(email))
	if err != nil {
		log.WithField("email", email).WithError(err).Error("failed to look up candidate")
		return nil, errors.New("failed to look up candidate")
	}
	if rec == nil || rec.Password != helpers.HashPassword(password) {
		return nil, errors.New("invalid email or password")
	}
	return rec, nil
}

func (i impl) Get(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("candidate not found")
	}
	return candidateapimodels.Convert(*rec), nil
}
