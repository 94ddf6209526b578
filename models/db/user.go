package dbmodels

import (
	"fmt"
	"strings"

	"github.com/dukeika/interview-portal-sub001/models"
)

// User is a portal administrator: either a super admin or a company admin.
type User struct {
	BaseModel
	CompanyID *string  `gorm:"type:varchar(36);index"`
	Company   *Company `gorm:"foreignKey:CompanyID"`
	Email     string   `gorm:"type:varchar(255);uniqueIndex"`
	Password  string   `gorm:"type:varchar(128)"`
	FirstName string   `gorm:"type:varchar(255)"`
	LastName  string   `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	Active    bool            `gorm:"default:true"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.FirstName, u.LastName))
}
