package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractStatus is the closed set of contract states. "signed" is the
// single fully-executed label regardless of signing order.
type ContractStatus string

const (
	ContractPendingPhotos          ContractStatus = "pending_photos"
	ContractPendingTenantApproval  ContractStatus = "pending_tenant_approval"
	ContractPhotosRejected         ContractStatus = "photos_rejected_by_tenant"
	ContractAwaitingTenantSig      ContractStatus = "awaiting_tenant_signature"
	ContractTenantSignedWaiting    ContractStatus = "tenant_signed_waiting_landlord"
	ContractPendingSignatures      ContractStatus = "pending_signatures"
	ContractSigned                 ContractStatus = "signed"
	ContractDepositPaid            ContractStatus = "deposit_paid"
)

// Contract is the binding agreement derived from an approved Application.
// It owns the photo-disclosure record and both signature records; the Escrow
// row (1:1) is existentially dependent on it.
type Contract struct {
	gorm.Model
	PropertyID    uint           `json:"propertyId" gorm:"index;not null"`
	TenantIC      string         `json:"tenantIc" gorm:"size:20;index;not null"`
	LandlordIC    string         `json:"landlordIc" gorm:"size:20;index;not null"`
	MonthlyRent   float64        `json:"monthlyRent" gorm:"not null"`
	DepositAmount float64        `json:"depositAmount" gorm:"not null"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       time.Time      `json:"endDate"`
	Status        ContractStatus `json:"status" gorm:"type:varchar(40);default:'pending_photos';index"`

	PropertyPhotos datatypes.JSON `json:"propertyPhotos"` // array of URLs
	PhotosApproved bool           `json:"photosApproved" gorm:"default:false"`

	TenantSigned       bool       `json:"tenantSigned" gorm:"default:false"`
	TenantSignName     string     `json:"-" gorm:"size:100"`
	TenantSignIC       string     `json:"-" gorm:"size:20"`
	TenantSignedAt     *time.Time `json:"-"`
	TenantDocumentHash string     `json:"-" gorm:"size:128"`

	LandlordSigned   bool       `json:"landlordSigned" gorm:"default:false"`
	LandlordSignName string     `json:"-" gorm:"size:100"`
	LandlordSignIC   string     `json:"-" gorm:"size:20"`
	LandlordSignedAt *time.Time `json:"-"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Escrow   *Escrow   `json:"escrow,omitempty" gorm:"foreignKey:ContractID"`
}

// Signature is the JSON block exposed for each signer.
type Signature struct {
	Name         string     `json:"name"`
	IC           string     `json:"ic"`
	SignedAt     *time.Time `json:"signedAt"`
	DocumentHash string     `json:"documentHash,omitempty"`
}

// FullyExecuted reports whether both parties have signed.
func (c *Contract) FullyExecuted() bool {
	return c.TenantSigned && c.LandlordSigned
}

// Photos decodes the stored photo URL array.
func (c *Contract) Photos() []string {
	var photos []string
	if len(c.PropertyPhotos) > 0 {
		json.Unmarshal(c.PropertyPhotos, &photos)
	}
	return photos
}

// SetPhotos stores the photo URL array.
func (c *Contract) SetPhotos(photos []string) {
	raw, err := json.Marshal(photos)
	if err != nil {
		return
	}
	c.PropertyPhotos = datatypes.JSON(raw)
}

// Custom JSON marshaling to expose propertyPhotos as an array and the
// signature fields as nested blocks.
func (c *Contract) MarshalJSON() ([]byte, error) {
	type Alias Contract
	aux := &struct {
		PropertyPhotos []string              `json:"propertyPhotos"`
		Signatures     map[string]*Signature `json:"signatures"`
		*Alias
	}{
		PropertyPhotos: c.Photos(),
		Signatures:     map[string]*Signature{"tenant": nil, "landlord": nil},
		Alias:          (*Alias)(c),
	}

	if aux.PropertyPhotos == nil {
		aux.PropertyPhotos = []string{}
	}

	if c.TenantSigned {
		aux.Signatures["tenant"] = &Signature{
			Name:         c.TenantSignName,
			IC:           c.TenantSignIC,
			SignedAt:     c.TenantSignedAt,
			DocumentHash: c.TenantDocumentHash,
		}
	}
	if c.LandlordSigned {
		aux.Signatures["landlord"] = &Signature{
			Name:     c.LandlordSignName,
			IC:       c.LandlordSignIC,
			SignedAt: c.LandlordSignedAt,
		}
	}

	return json.Marshal(aux)
}
