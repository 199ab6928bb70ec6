package services

import (
	"fmt"
	"time"

	"rentsafe-server/models"
)

const (
	// ContractTermDays is the default lease term applied at creation.
	ContractTermDays = 365
	// DepositMonths is the deposit multiplier over monthly rent.
	DepositMonths = 2
)

// NewContract derives a contract from an approved application. Deposit is
// two months of rent; the term runs one year from creation.
func NewContract(property *models.Property, tenantIC string, now time.Time) models.Contract {
	return models.Contract{
		PropertyID:    property.ID,
		TenantIC:      tenantIC,
		LandlordIC:    property.LandlordIC,
		MonthlyRent:   property.Price,
		DepositAmount: property.Price * DepositMonths,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, ContractTermDays),
		Status:        models.ContractPendingPhotos,
	}
}

// UploadContractPhotos records the landlord's photo disclosure. Re-upload is
// a legitimate correction path both while the tenant is reviewing and after
// a rejection, so all three pre-approval states accept it.
func UploadContractPhotos(contract *models.Contract, photos []string) error {
	if len(photos) == 0 {
		return fmt.Errorf("%w: at least one photo URL is required", ErrValidation)
	}
	switch contract.Status {
	case models.ContractPendingPhotos, models.ContractPendingTenantApproval, models.ContractPhotosRejected:
	default:
		return fmt.Errorf("%w: photos cannot be uploaded while the contract is %s", ErrConflict, contract.Status)
	}

	contract.SetPhotos(photos)
	contract.Status = models.ContractPendingTenantApproval
	return nil
}

// ApproveContractPhotos records the tenant's approval of the disclosed
// photos and opens the contract for signing.
func ApproveContractPhotos(contract *models.Contract) error {
	if len(contract.Photos()) == 0 {
		return fmt.Errorf("%w: no photos to approve", ErrPreconditionFailed)
	}
	if contract.Status != models.ContractPendingTenantApproval {
		return fmt.Errorf("%w: photos cannot be approved while the contract is %s", ErrConflict, contract.Status)
	}

	contract.PhotosApproved = true
	contract.Status = models.ContractAwaitingTenantSig
	return nil
}

// RejectContractPhotos parks the contract until the landlord re-uploads.
func RejectContractPhotos(contract *models.Contract) error {
	if len(contract.Photos()) == 0 {
		return fmt.Errorf("%w: no photos to reject", ErrPreconditionFailed)
	}
	if contract.Status != models.ContractPendingTenantApproval {
		return fmt.Errorf("%w: photos cannot be rejected while the contract is %s", ErrConflict, contract.Status)
	}

	contract.PhotosApproved = false
	contract.Status = models.ContractPhotosRejected
	return nil
}

// SignAsTenant records the tenant signature. Photo approval is a hard
// precondition regardless of the current status label.
func SignAsTenant(contract *models.Contract, name, ic, documentHash string, now time.Time) error {
	if err := checkSignable(contract, contract.TenantSigned, "tenant"); err != nil {
		return err
	}

	signedAt := now
	contract.TenantSigned = true
	contract.TenantSignName = name
	contract.TenantSignIC = ic
	contract.TenantSignedAt = &signedAt
	contract.TenantDocumentHash = documentHash
	contract.Status = signatureState(contract)
	return nil
}

// SignAsLandlord records the landlord signature under the same
// photo-approval precondition as the tenant.
func SignAsLandlord(contract *models.Contract, name, ic string, now time.Time) error {
	if err := checkSignable(contract, contract.LandlordSigned, "landlord"); err != nil {
		return err
	}

	signedAt := now
	contract.LandlordSigned = true
	contract.LandlordSignName = name
	contract.LandlordSignIC = ic
	contract.LandlordSignedAt = &signedAt
	contract.Status = signatureState(contract)
	return nil
}

func checkSignable(contract *models.Contract, alreadySigned bool, party string) error {
	if !contract.PhotosApproved {
		return fmt.Errorf("%w: photos must be approved by the tenant before signing", ErrPreconditionFailed)
	}
	if alreadySigned {
		return fmt.Errorf("%w: %s has already signed", ErrConflict, party)
	}
	if contract.Status == models.ContractDepositPaid {
		return fmt.Errorf("%w: contract is already %s", ErrConflict, contract.Status)
	}
	return nil
}

// signatureState computes the post-signature status purely from the two
// signed flags, so tenant-first and landlord-first orders converge on the
// same fully-executed state.
func signatureState(contract *models.Contract) models.ContractStatus {
	switch {
	case contract.TenantSigned && contract.LandlordSigned:
		return models.ContractSigned
	case contract.TenantSigned:
		return models.ContractTenantSignedWaiting
	case contract.LandlordSigned:
		return models.ContractPendingSignatures
	default:
		return contract.Status
	}
}
