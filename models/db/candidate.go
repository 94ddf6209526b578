package dbmodels

import (
	"fmt"
	"strings"
)

type Candidate struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(255)"`
}

func (c Candidate) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", c.FirstName, c.LastName))
}
