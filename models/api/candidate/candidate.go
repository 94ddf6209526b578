package candidateapimodels

import (
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"
)

type CandidateView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
	}
}
