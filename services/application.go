package services

import (
	"fmt"
	"time"

	"rentsafe-server/models"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// NewApplication builds a pending application for a tenant on a property.
// The tenant's display name is snapshotted at application time.
func NewApplication(property *models.Property, tenant *models.Person, message string, now time.Time) models.Application {
	return models.Application{
		PropertyID: property.ID,
		TenantIC:   tenant.IC,
		TenantName: tenant.Name,
		Message:    message,
		Status:     models.ApplicationPending,
		AppliedAt:  now,
	}
}

// DecideApplication applies a landlord accept/reject decision. pending is the
// only state a decision is accepted from; approved and rejected are terminal.
func DecideApplication(app *models.Application, decision string, now time.Time) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return fmt.Errorf("%w: decision must be approve or reject", ErrValidation)
	}
	if app.Status != models.ApplicationPending {
		return fmt.Errorf("%w: application is already %s", ErrInvalidTransition, app.Status)
	}

	if decision == DecisionApprove {
		app.Status = models.ApplicationApproved
	} else {
		app.Status = models.ApplicationRejected
	}
	decidedAt := now
	app.DecidedAt = &decidedAt
	return nil
}
