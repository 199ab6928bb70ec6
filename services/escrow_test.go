package services

import (
	"testing"
	"time"

	"rentsafe-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executedContract(t *testing.T) *models.Contract {
	t.Helper()
	contract := contractReadyToSign(t)
	now := time.Now()
	require.NoError(t, SignAsTenant(contract, "Ahmad", "950101-01-1234", "", now))
	require.NoError(t, SignAsLandlord(contract, "Tan Mei Ling", "800515-01-5678", now))
	contract.ID = 7
	return contract
}

func heldEscrow(t *testing.T) (*models.Escrow, *models.Contract) {
	t.Helper()
	contract := executedContract(t)
	escrow, err := OpenEscrow(contract, contract.DepositAmount, "FPX", time.Now())
	require.NoError(t, err)
	return &escrow, contract
}

func TestOpenEscrow(t *testing.T) {
	contract := executedContract(t)

	escrow, err := OpenEscrow(contract, 6000, "FPX", time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.EscrowHolding, escrow.Status)
	assert.Equal(t, uint(7), escrow.ContractID)
	assert.Equal(t, 6000.0, escrow.Amount)
	assert.NotNil(t, escrow.PaidAt)
	assert.Equal(t, models.ContractDepositPaid, contract.Status)
}

func TestOpenEscrowRequiresExecutedContract(t *testing.T) {
	contract := contractReadyToSign(t)

	_, err := OpenEscrow(contract, 6000, "FPX", time.Now())
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Equal(t, models.ContractAwaitingTenantSig, contract.Status)
}

func TestOpenEscrowTwiceConflicts(t *testing.T) {
	_, contract := heldEscrow(t)

	_, err := OpenEscrow(contract, 6000, "FPX", time.Now())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.ContractDepositPaid, contract.Status)
}

func TestOpenEscrowValidatesAmount(t *testing.T) {
	contract := executedContract(t)

	_, err := OpenEscrow(contract, 0, "FPX", time.Now())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.ContractSigned, contract.Status)
}

func TestReleaseFlow(t *testing.T) {
	escrow, _ := heldEscrow(t)

	require.NoError(t, RequestEscrowRelease(escrow))
	assert.Equal(t, models.EscrowReleaseRequested, escrow.Status)

	require.NoError(t, ApproveEscrowRelease(escrow, time.Now()))
	assert.Equal(t, models.EscrowReleased, escrow.Status)
	assert.NotNil(t, escrow.ReleasedAt)
}

func TestDisputeFlow(t *testing.T) {
	escrow, _ := heldEscrow(t)

	require.NoError(t, RequestEscrowRelease(escrow))
	require.NoError(t, RejectEscrowRelease(escrow))
	assert.Equal(t, models.EscrowDisputed, escrow.Status)
}

func TestRequestReleaseOnlyFromHolding(t *testing.T) {
	escrow, _ := heldEscrow(t)
	require.NoError(t, RequestEscrowRelease(escrow))

	err := RequestEscrowRelease(escrow)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.EscrowReleaseRequested, escrow.Status)
}

func TestReleaseRequiresPendingRequest(t *testing.T) {
	escrow, _ := heldEscrow(t)

	// Approving or rejecting without a pending request must fail.
	err := ApproveEscrowRelease(escrow, time.Now())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.EscrowHolding, escrow.Status)
	assert.Nil(t, escrow.ReleasedAt)

	err = RejectEscrowRelease(escrow)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, models.EscrowHolding, escrow.Status)
}

func TestTerminalStatesAreRigid(t *testing.T) {
	released, _ := heldEscrow(t)
	require.NoError(t, RequestEscrowRelease(released))
	require.NoError(t, ApproveEscrowRelease(released, time.Now()))

	assert.ErrorIs(t, RequestEscrowRelease(released), ErrConflict)
	assert.ErrorIs(t, ApproveEscrowRelease(released, time.Now()), ErrConflict)
	assert.ErrorIs(t, RejectEscrowRelease(released), ErrConflict)
	assert.Equal(t, models.EscrowReleased, released.Status)

	disputed, _ := heldEscrow(t)
	require.NoError(t, RequestEscrowRelease(disputed))
	require.NoError(t, RejectEscrowRelease(disputed))

	assert.ErrorIs(t, ApproveEscrowRelease(disputed, time.Now()), ErrConflict)
	assert.Equal(t, models.EscrowDisputed, disputed.Status)
}
