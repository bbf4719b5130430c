package domain

import "time"

// ServiceCategories is the fixed set of categories a provider can list under.
var ServiceCategories = []string{
	"House Cleaning",
	"Pest Control",
	"Agricultural Services",
	"Deep Sanitation",
	"Office Cleaning",
}

type Service struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	ProviderID  int64     `json:"provider_id" gorm:"column:provider_id;index"`
	Name        string    `json:"name" gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	Price       float64   `json:"price" gorm:"column:price"`
	Duration    string    `json:"duration" gorm:"column:duration"`
	Category    string    `json:"category" gorm:"column:category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "services" }

func IsValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}
