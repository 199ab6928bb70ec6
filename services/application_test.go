package services

import (
	"testing"
	"time"

	"rentsafe-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingApplication(t *testing.T) models.Application {
	t.Helper()
	property := testProperty()
	tenant := models.Person{IC: "950101-01-1234", Name: "Ahmad Bin Abdullah", Role: "tenant"}
	return NewApplication(&property, &tenant, "Interested in a long lease", time.Now())
}

func TestNewApplication(t *testing.T) {
	app := pendingApplication(t)

	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "Ahmad Bin Abdullah", app.TenantName, "tenant name is snapshotted")
	assert.Equal(t, uint(1), app.PropertyID)
	assert.Nil(t, app.DecidedAt)
}

func TestApproveApplication(t *testing.T) {
	app := pendingApplication(t)

	require.NoError(t, DecideApplication(&app, DecisionApprove, time.Now()))
	assert.Equal(t, models.ApplicationApproved, app.Status)
	assert.NotNil(t, app.DecidedAt)
}

func TestRejectApplication(t *testing.T) {
	app := pendingApplication(t)

	require.NoError(t, DecideApplication(&app, DecisionReject, time.Now()))
	assert.Equal(t, models.ApplicationRejected, app.Status)
}

func TestDecisionIsTerminal(t *testing.T) {
	app := pendingApplication(t)
	require.NoError(t, DecideApplication(&app, DecisionApprove, time.Now()))

	err := DecideApplication(&app, DecisionReject, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.ApplicationApproved, app.Status)

	err = DecideApplication(&app, DecisionApprove, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecisionValidated(t *testing.T) {
	app := pendingApplication(t)

	err := DecideApplication(&app, "withdraw", time.Now())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.ApplicationPending, app.Status)
}
