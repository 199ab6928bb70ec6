package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application records a tenant's interest in a property and the landlord's
// accept/reject decision. approved and rejected are terminal.
type Application struct {
	gorm.Model
	PropertyID uint       `json:"propertyId" gorm:"index;not null"`
	TenantIC   string     `json:"tenantIc" gorm:"size:20;index;not null"`
	TenantName string     `json:"tenantName" gorm:"size:100"`
	Message    string     `json:"message" gorm:"type:text"`
	Status     string     `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	AppliedAt  time.Time  `json:"appliedAt"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
