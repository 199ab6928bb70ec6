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

// placeholderPhotos stand in for a real upload pipeline when the landlord
// submits without files.
var placeholderPhotos = []string{
	"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
}

func GetContract(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var contract models.Contract
	if err := storage.DB.Preload("Property").Preload("Escrow").First(&contract, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Contract not found", ctx)
		return
	}
	ctx.JSON(&contract)
}

type UploadPhotosInput struct {
	Photos []string `json:"photos"`
}

// UploadContractPhotos records the landlord's photo disclosure. A request
// without a body falls back to the placeholder set.
func UploadContractPhotos(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UploadPhotosInput
	if ctx.GetContentLength() > 0 {
		if err := ctx.ReadJSON(&input); err != nil {
			utils.HandleValidationErrors(err, ctx)
			return
		}
	}
	photos := input.Photos
	if len(photos) == 0 {
		photos = placeholderPhotos
	}

	var contract models.Contract
	before := models.Contract{}
	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := storage.LockForUpdate(tx).First(&contract, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}
		before = contract

		if err := services.UploadContractPhotos(&contract, photos); err != nil {
			return err
		}
		return tx.Save(&contract).Error
	})

	if txErr != nil {
		handleServiceError(txErr, ctx)
		return
	}

	utils.Audit(ctx, "contract_photos_uploaded", "contract", contract.ID, &before, &contract)
	ctx.JSON(iris.Map{"message": "Photos uploaded", "contract": &contract})
}

// ApproveContractPhotos is the tenant's acceptance of the disclosure.
func ApproveContractPhotos(ctx iris.Context) {
	transitionContract(ctx, "contract_photos_approved", "Photos approved", func(contract *models.Contract) error {
		return services.ApproveContractPhotos(contract)
	})
}

// RejectContractPhotos parks the contract until the landlord re-uploads.
func RejectContractPhotos(ctx iris.Context) {
	transitionContract(ctx, "contract_photos_rejected", "Photos rejected", func(contract *models.Contract) error {
		return services.RejectContractPhotos(contract)
	})
}

type TenantSignInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	IC           string `json:"ic" validate:"required,max=20"`
	DocumentHash string `json:"documentHash" validate:"omitempty,max=128"`
}

func TenantSignContract(ctx iris.Context) {
	var input TenantSignInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	transitionContract(ctx, "contract_tenant_signed", "Contract signed by tenant", func(contract *models.Contract) error {
		return services.SignAsTenant(contract, input.Name, input.IC, input.DocumentHash, time.Now())
	})
}

type LandlordSignInput struct {
	Name string `json:"name" validate:"required,max=100"`
	IC   string `json:"ic" validate:"required,max=20"`
}

func LandlordSignContract(ctx iris.Context) {
	var input LandlordSignInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	transitionContract(ctx, "contract_landlord_signed", "Contract signed by landlord", func(contract *models.Contract) error {
		return services.SignAsLandlord(contract, input.Name, input.IC, time.Now())
	})
}

// transitionContract runs one guarded state transition as a single
// read-validate-write transaction against the contract row.
func transitionContract(ctx iris.Context, action, message string, apply func(*models.Contract) error) {
	id := ctx.Params().Get("id")

	var contract models.Contract
	before := models.Contract{}
	wasExecuted := false

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := storage.LockForUpdate(tx).First(&contract, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}
		before = contract
		wasExecuted = contract.FullyExecuted()

		if err := apply(&contract); err != nil {
			return err
		}
		return tx.Save(&contract).Error
	})

	if txErr != nil {
		handleServiceError(txErr, ctx)
		return
	}

	utils.Audit(ctx, action, "contract", contract.ID, &before, &contract)
	if !wasExecuted && contract.FullyExecuted() {
		services.NewNotificationService().NotifyContractExecuted(&contract)
	}

	ctx.JSON(iris.Map{"message": message, "contract": &contract})
}
