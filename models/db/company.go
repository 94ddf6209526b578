package dbmodels

type Company struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);uniqueIndex"`
	ContactEmail string `gorm:"type:varchar(255)"`
	Description  string
	Active       bool `gorm:"default:true"`
}
