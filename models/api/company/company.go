package companyapimodels

import (
	"strings"

	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
	"github.com/pkg/errors"
)

type CompanyData struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Description  string `json:"description"`
}

func (r CompanyData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("company name is required")
	}
	if strings.TrimSpace(r.ContactEmail) == "" {
		return errors.New("contact email is required")
	}
	return nil
}

type CompanyView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
}

func Convert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		ID:           rec.ID,
		Name:         rec.Name,
		ContactEmail: rec.ContactEmail,
		Description:  rec.Description,
		Active:       rec.Active,
	}
}

type AdminData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r AdminData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type AdminView struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

func ConvertAdmin(rec dbmodels.User) AdminView {
	view := AdminView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Role:      string(rec.Role),
		Active:    rec.Active,
	}
	if rec.CompanyID != nil {
		view.CompanyID = *rec.CompanyID
	}
	return view
}
