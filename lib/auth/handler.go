package auth

import (
	"github.com/dukeika/interview-portal-sub001/db"
	candidatestore "github.com/dukeika/interview-portal-sub001/lib/candidate/store"
	userstore "github.com/dukeika/interview-portal-sub001/lib/company/user-store"
	authutils "github.com/dukeika/interview-portal-sub001/lib/utils/auth-utils"
	"github.com/dukeika/interview-portal-sub001/lib/utils/helpers"
	"github.com/dukeika/interview-portal-sub001/models"
	authapimodels "github.com/dukeika/interview-portal-sub001/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	CandidateLogin(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	Refresh(data authapimodels.RefreshRequest) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		userStore:      userstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore      userstore.Provider
	candidateStore candidatestore.Provider
}

// Login authenticates portal administrators, both super admins and company
// admins.
func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	email := helpers.NormalizeEmail(data.Email)
	rec, err := i.userStore.GetByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("failed to look up user")
		return authapimodels.JWTResponse{}, errors.New("failed to look up user")
	}
	if rec == nil || rec.Password != helpers.HashPassword(data.Password) {
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !rec.Active {
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	companyID := ""
	if rec.CompanyID != nil {
		companyID = *rec.CompanyID
	}
	return i.issueTokens(rec.ID, rec.GetFullName(), companyID, rec.Role)
}

func (i impl) CandidateLogin(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	email := helpers.NormalizeEmail(data.Email)
	rec, err := i.candidateStore.GetByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("failed to look up candidate")
		return authapimodels.JWTResponse{}, errors.New("failed to look up candidate")
	}
	if rec == nil || rec.Password != helpers.HashPassword(data.Password) {
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	return i.issueTokens(rec.ID, rec.GetFullName(), "", models.UserRoleCandidate)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The account
// is re-read so a deactivated admin cannot keep refreshing forever.
func (i impl) Refresh(data authapimodels.RefreshRequest) (authapimodels.JWTResponse, error) {
	userID, role, err := authutils.ParseRefreshToken(data.RefreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}

	switch role {
	case models.UserRoleCandidate:
		rec, err := i.candidateStore.GetByID(userID)
		if err != nil || rec == nil {
			return authapimodels.JWTResponse{}, errors.New("account not found")
		}
		return i.issueTokens(rec.ID, rec.GetFullName(), "", models.UserRoleCandidate)
	case models.UserRoleSuperAdmin, models.UserRoleCompanyAdmin:
		rec, err := i.userStore.GetByID(userID)
		if err != nil || rec == nil {
			return authapimodels.JWTResponse{}, errors.New("account not found")
		}
		if !rec.Active {
			return authapimodels.JWTResponse{}, errors.New("account is deactivated")
		}
		companyID := ""
		if rec.CompanyID != nil {
			companyID = *rec.CompanyID
		}
		return i.issueTokens(rec.ID, rec.GetFullName(), companyID, rec.Role)
	}
	return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
}

func (i impl) issueTokens(userID, name, companyID string, role models.UserRole) (authapimodels.JWTResponse, error) {
	access, err := authutils.GetToken(userID, name, companyID, role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(userID, role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
