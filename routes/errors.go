package routes

import (
	"errors"

	"rentsafe-server/services"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// handleServiceError maps the lifecycle error taxonomy onto HTTP statuses:
// NotFound 404, PreconditionFailed 412, Conflict/InvalidTransition 409,
// ValidationError 400.
func handleServiceError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		utils.CreateError(iris.StatusNotFound, "Not Found", err.Error(), ctx)
	case errors.Is(err, services.ErrPreconditionFailed):
		utils.CreateError(iris.StatusPreconditionFailed, "Precondition Failed", err.Error(), ctx)
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidTransition):
		utils.CreateError(iris.StatusConflict, "Conflict", err.Error(), ctx)
	case errors.Is(err, services.ErrValidation):
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
	default:
		utils.CreateInternalServerError(ctx)
	}
}
