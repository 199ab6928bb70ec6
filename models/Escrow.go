package models

import (
	"time"

	"gorm.io/gorm"
)

type EscrowStatus string

const (
	EscrowHolding          EscrowStatus = "holding"
	EscrowReleaseRequested EscrowStatus = "release_requested"
	EscrowReleased         EscrowStatus = "released"
	EscrowDisputed         EscrowStatus = "disputed"
)

// Escrow tracks custody of a deposit tied 1:1 to a Contract. released and
// disputed are terminal; a disputed escrow goes to manual resolution.
type Escrow struct {
	gorm.Model
	ContractID    uint         `json:"contractId" gorm:"uniqueIndex;not null"`
	Amount        float64      `json:"amount" gorm:"not null"`
	Status        EscrowStatus `json:"status" gorm:"type:varchar(20);default:'holding';index"`
	PaymentMethod string       `json:"paymentMethod" gorm:"size:30"` // FPX, card, ...
	PaidAt        *time.Time   `json:"paidAt,omitempty"`
	ReleasedAt    *time.Time   `json:"releasedAt,omitempty"`

	Contract *Contract `json:"contract,omitempty" gorm:"foreignKey:ContractID"`
}
