package domain

import "time"

type Contact struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email"`
	Subject   string    `json:"subject" gorm:"column:subject"`
	Message   string    `json:"message" gorm:"column:message;type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }
