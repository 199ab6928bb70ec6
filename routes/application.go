package routes

import (
	"errors"
	"time"

	"rentsafe-server/models"
	"rentsafe-server/services"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateApplicationInput struct {
	PropertyID uint   `json:"propertyId" validate:"required"`
	TenantIC   string `json:"tenantIc" validate:"required"`
	Message    string `json:"message"`
}

// CreateApplication records a tenant's interest in a property. The tenant
// must already hold a verified Person record.
func CreateApplication(ctx iris.Context) {
	var input CreateApplicationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var tenant models.Person
	if err := storage.DB.Where("ic = ?", input.TenantIC).First(&tenant).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Tenant must complete identity verification before applying", ctx)
		return
	}

	var property models.Property
	if err := storage.DB.First(&property, input.PropertyID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	application := services.NewApplication(&property, &tenant, input.Message, time.Now())
	if err := storage.DB.Create(&application).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	services.NewNotificationService().NotifyApplicationSubmitted(&application, &property)

	storage.DB.Preload("Property").First(&application, application.ID)
	ctx.JSON(application)
}

func GetApplication(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var application models.Application
	if err := storage.DB.Preload("Property").First(&application, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Application not found", ctx)
		return
	}
	ctx.JSON(application)
}

// GetPropertyApplications lists a property's applications, paginated.
func GetPropertyApplications(ctx iris.Context) {
	id := ctx.Params().Get("id")

	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Application{}).Where("property_id = ?", id)

	var total int64
	q.Count(&total)

	var applications []models.Application
	if err := q.Preload("Property").Offset((page - 1) * perPage).Limit(perPage).Order("applied_at DESC").Find(&applications).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, applications, page, perPage, total)
}

func GetTenantApplications(ctx iris.Context) {
	ic := ctx.Params().Get("ic")

	var applications []models.Application
	if err := storage.DB.Preload("Property").Where("tenant_ic = ?", ic).Order("applied_at DESC").Find(&applications).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(applications)
}

func ApproveApplication(ctx iris.Context) {
	decideApplication(ctx, services.DecisionApprove)
}

func RejectApplication(ctx iris.Context) {
	decideApplication(ctx, services.DecisionReject)
}

// decideApplication applies the landlord decision inside one transaction.
// Approval creates the contract for the (property, tenant) pair if none
// exists yet, so repeating the approve call never yields a second contract.
func decideApplication(ctx iris.Context, decision string) {
	id := ctx.Params().Get("id")

	var application models.Application
	var property models.Property

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := storage.LockForUpdate(tx).First(&application, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}

		if err := tx.First(&property, application.PropertyID).Error; err != nil {
			return err
		}

		if err := services.DecideApplication(&application, decision, time.Now()); err != nil {
			return err
		}

		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		if decision == services.DecisionApprove {
			if err := ensureContract(tx, &property, application.TenantIC); err != nil {
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		handleServiceError(txErr, ctx)
		return
	}

	utils.Audit(ctx, "application_"+application.Status, "application", application.ID, nil, &application)
	services.NewNotificationService().NotifyApplicationDecided(&application, &property)

	storage.DB.Preload("Property").First(&application, application.ID)
	ctx.JSON(iris.Map{
		"message":     "Application " + application.Status,
		"application": application,
	})
}

// ensureContract creates the contract for a (property, tenant) pair exactly
// once.
func ensureContract(tx *gorm.DB, property *models.Property, tenantIC string) error {
	var existing models.Contract
	err := tx.Where("property_id = ? AND tenant_ic = ?", property.ID, tenantIC).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	contract := services.NewContract(property, tenantIC, time.Now())
	return tx.Create(&contract).Error
}
