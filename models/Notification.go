package models

import (
	"gorm.io/gorm"
)

// Notification is an in-app notification row keyed by the recipient's IC.
type Notification struct {
	gorm.Model
	RecipientIC string `json:"recipientIc" gorm:"size:20;index;not null"`
	Title       string `json:"title" gorm:"size:200"`
	Message     string `json:"message" gorm:"type:text"`
	Type        string `json:"type" gorm:"size:50;index"` // application_submitted, application_decided, contract_signed, escrow_resolved
	RefID       uint   `json:"refId"`
	RefType     string `json:"refType" gorm:"size:30"` // application, contract, escrow
	IsRead      bool   `json:"isRead" gorm:"default:false"`
}
