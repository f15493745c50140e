package models

import (
	"time"
)

// Draft represents a reply draft. EmailID is nullable so a draft can
// outlive or be detached from its source email.
type Draft struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EmailID   *uint     `gorm:"index" json:"emailId"`
	To        string    `gorm:"size:255" json:"to"`
	ToName    string    `gorm:"size:255" json:"toName"`
	Subject   string    `gorm:"size:500" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
