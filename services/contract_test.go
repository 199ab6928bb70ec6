package services

import (
	"testing"
	"time"

	"rentsafe-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPhotos = []string{
	"https://example.com/living-room.jpg",
	"https://example.com/bedroom.jpg",
}

func testProperty() models.Property {
	p := models.Property{
		Title:      "Luxury Condo in KL",
		Location:   "KL City Centre",
		Price:      3000,
		LandlordIC: "800515-01-5678",
		Status:     "verified",
	}
	p.ID = 1
	return p
}

func contractReadyToSign(t *testing.T) *models.Contract {
	t.Helper()
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())
	require.NoError(t, UploadContractPhotos(&contract, testPhotos))
	require.NoError(t, ApproveContractPhotos(&contract))
	return &contract
}

func TestNewContractDefaults(t *testing.T) {
	property := testProperty()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	contract := NewContract(&property, "950101-01-1234", now)

	assert.Equal(t, models.ContractPendingPhotos, contract.Status)
	assert.Equal(t, 3000.0, contract.MonthlyRent)
	assert.Equal(t, 6000.0, contract.DepositAmount, "deposit is two months of rent")
	assert.Equal(t, now.AddDate(0, 0, 365), contract.EndDate)
	assert.Equal(t, "800515-01-5678", contract.LandlordIC)
	assert.False(t, contract.FullyExecuted())
}

func TestUploadPhotosTransitions(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())

	require.NoError(t, UploadContractPhotos(&contract, testPhotos))
	assert.Equal(t, models.ContractPendingTenantApproval, contract.Status)
	assert.Len(t, contract.Photos(), 2)

	// Re-upload while awaiting approval is a landlord correction path.
	require.NoError(t, UploadContractPhotos(&contract, testPhotos[:1]))
	assert.Equal(t, models.ContractPendingTenantApproval, contract.Status)
	assert.Len(t, contract.Photos(), 1)
}

func TestUploadPhotosRequiresURLs(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())

	err := UploadContractPhotos(&contract, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.ContractPendingPhotos, contract.Status)
}

func TestUploadPhotosRejectedAfterApproval(t *testing.T) {
	contract := contractReadyToSign(t)

	err := UploadContractPhotos(contract, testPhotos)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.ContractAwaitingTenantSig, contract.Status)
}

func TestApprovePhotosWithoutPhotos(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())

	err := ApproveContractPhotos(&contract)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.False(t, contract.PhotosApproved)
	assert.Equal(t, models.ContractPendingPhotos, contract.Status)
}

func TestRejectPhotosThenReupload(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())
	require.NoError(t, UploadContractPhotos(&contract, testPhotos))

	require.NoError(t, RejectContractPhotos(&contract))
	assert.Equal(t, models.ContractPhotosRejected, contract.Status)
	assert.False(t, contract.PhotosApproved)

	// The rejection dead end is recoverable by re-uploading.
	require.NoError(t, UploadContractPhotos(&contract, testPhotos))
	assert.Equal(t, models.ContractPendingTenantApproval, contract.Status)
}

func TestTenantSignRequiresPhotoApproval(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())
	require.NoError(t, UploadContractPhotos(&contract, testPhotos))

	err := SignAsTenant(&contract, "Ahmad Bin Abdullah", "950101-01-1234", "", time.Now())
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.False(t, contract.TenantSigned)
	assert.Empty(t, contract.TenantSignName)
	assert.Equal(t, models.ContractPendingTenantApproval, contract.Status)
}

func TestLandlordSignRequiresPhotoApproval(t *testing.T) {
	property := testProperty()
	contract := NewContract(&property, "950101-01-1234", time.Now())
	require.NoError(t, UploadContractPhotos(&contract, testPhotos))

	err := SignAsLandlord(&contract, "Tan Mei Ling", "800515-01-5678", time.Now())
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.False(t, contract.LandlordSigned)
}

func TestSignatureOrderConverges(t *testing.T) {
	now := time.Now()

	tenantFirst := contractReadyToSign(t)
	require.NoError(t, SignAsTenant(tenantFirst, "Ahmad", "950101-01-1234", "deadbeef", now))
	assert.Equal(t, models.ContractTenantSignedWaiting, tenantFirst.Status)
	require.NoError(t, SignAsLandlord(tenantFirst, "Tan Mei Ling", "800515-01-5678", now))

	landlordFirst := contractReadyToSign(t)
	require.NoError(t, SignAsLandlord(landlordFirst, "Tan Mei Ling", "800515-01-5678", now))
	assert.Equal(t, models.ContractPendingSignatures, landlordFirst.Status)
	require.NoError(t, SignAsTenant(landlordFirst, "Ahmad", "950101-01-1234", "deadbeef", now))

	// Both orders end on the single fully-executed label.
	assert.Equal(t, models.ContractSigned, tenantFirst.Status)
	assert.Equal(t, models.ContractSigned, landlordFirst.Status)
	assert.True(t, tenantFirst.FullyExecuted())
	assert.True(t, landlordFirst.FullyExecuted())
}

func TestDoubleSignConflicts(t *testing.T) {
	contract := contractReadyToSign(t)
	now := time.Now()

	require.NoError(t, SignAsTenant(contract, "Ahmad", "950101-01-1234", "", now))
	err := SignAsTenant(contract, "Ahmad", "950101-01-1234", "", now)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, SignAsLandlord(contract, "Tan Mei Ling", "800515-01-5678", now))
	err = SignAsLandlord(contract, "Tan Mei Ling", "800515-01-5678", now)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.ContractSigned, contract.Status)
}

func TestSignatureRecordsCaptured(t *testing.T) {
	contract := contractReadyToSign(t)
	now := time.Now()

	require.NoError(t, SignAsTenant(contract, "Ahmad Bin Abdullah", "950101-01-1234", "cafe0001", now))
	require.NoError(t, SignAsLandlord(contract, "Tan Mei Ling", "800515-01-5678", now))

	assert.Equal(t, "Ahmad Bin Abdullah", contract.TenantSignName)
	assert.Equal(t, "cafe0001", contract.TenantDocumentHash)
	assert.NotNil(t, contract.TenantSignedAt)
	assert.Equal(t, "Tan Mei Ling", contract.LandlordSignName)
	assert.NotNil(t, contract.LandlordSignedAt)
}
