package services

import "errors"

// Error taxonomy shared by the application, contract and escrow state
// machines. Routes translate these into HTTP status codes; every failed
// transition leaves the entity unchanged.
var (
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrValidation         = errors.New("validation error")
)
