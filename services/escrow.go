package services

import (
	"fmt"
	"time"

	"rentsafe-server/models"
)

// OpenEscrow takes custody of the deposit for a fully executed contract and
// advances the contract to deposit_paid. The 1:1 invariant against an
// existing escrow row is enforced by the caller before this runs.
func OpenEscrow(contract *models.Contract, amount float64, paymentMethod string, now time.Time) (models.Escrow, error) {
	if amount <= 0 {
		return models.Escrow{}, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if contract.Status == models.ContractDepositPaid {
		return models.Escrow{}, fmt.Errorf("%w: deposit is already held in escrow", ErrConflict)
	}
	if contract.Status != models.ContractSigned {
		return models.Escrow{}, fmt.Errorf("%w: contract must be fully executed before the deposit is held", ErrPreconditionFailed)
	}

	paidAt := now
	escrow := models.Escrow{
		ContractID:    contract.ID,
		Amount:        amount,
		Status:        models.EscrowHolding,
		PaymentMethod: paymentMethod,
		PaidAt:        &paidAt,
	}
	contract.Status = models.ContractDepositPaid
	return escrow, nil
}

// RequestEscrowRelease moves a held deposit into the release-pending state.
func RequestEscrowRelease(escrow *models.Escrow) error {
	if escrow.Status != models.EscrowHolding {
		return fmt.Errorf("%w: escrow already processed", ErrConflict)
	}
	escrow.Status = models.EscrowReleaseRequested
	return nil
}

// ApproveEscrowRelease releases the deposit. A pending release request is
// required.
func ApproveEscrowRelease(escrow *models.Escrow, now time.Time) error {
	if escrow.Status != models.EscrowReleaseRequested {
		return fmt.Errorf("%w: no pending release request", ErrConflict)
	}
	releasedAt := now
	escrow.Status = models.EscrowReleased
	escrow.ReleasedAt = &releasedAt
	return nil
}

// RejectEscrowRelease disputes the release. disputed is terminal and routes
// to manual resolution.
func RejectEscrowRelease(escrow *models.Escrow) error {
	if escrow.Status != models.EscrowReleaseRequested {
		return fmt.Errorf("%w: no pending release request", ErrConflict)
	}
	escrow.Status = models.EscrowDisputed
	return nil
}
