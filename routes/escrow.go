package routes

import (
	"errors"
	"fmt"
	"time"

	"rentsafe-server/models"
	"rentsafe-server/services"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type OpenEscrowInput struct {
	ContractID    uint    `json:"contractId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,max=30"`
}

// OpenEscrow takes custody of the deposit for a fully executed contract.
// The contract row is locked for the whole check-then-create so two
// concurrent payments cannot both pass the 1:1 check.
func OpenEscrow(ctx iris.Context) {
	var input OpenEscrowInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var escrow models.Escrow
	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := storage.LockForUpdate(tx).First(&contract, input.ContractID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}

		var existing models.Escrow
		err := tx.Where("contract_id = ?", contract.ID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: an escrow already exists for this contract", services.ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		opened, openErr := services.OpenEscrow(&contract, input.Amount, input.PaymentMethod, time.Now())
		if openErr != nil {
			return openErr
		}

		if err := tx.Create(&opened).Error; err != nil {
			return err
		}
		if err := tx.Save(&contract).Error; err != nil {
			return err
		}
		escrow = opened
		return nil
	})

	if txErr != nil {
		handleServiceError(txErr, ctx)
		return
	}

	utils.Audit(ctx, "escrow_opened", "escrow", escrow.ID, nil, &escrow)
	ctx.JSON(iris.Map{"message": "Deposit held in escrow", "escrow": escrow})
}

// GetEscrowByContract returns the escrow record owned by a contract.
func GetEscrowByContract(ctx iris.Context) {
	contractID := ctx.Params().Get("contractId")

	var escrow models.Escrow
	if err := storage.DB.Preload("Contract").Where("contract_id = ?", contractID).First(&escrow).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "No escrow for this contract", ctx)
		return
	}
	ctx.JSON(escrow)
}

func RequestEscrowRelease(ctx iris.Context) {
	transitionEscrow(ctx, "escrow_release_requested", "Release requested", false, func(escrow *models.Escrow) error {
		return services.RequestEscrowRelease(escrow)
	})
}

func ApproveEscrowRelease(ctx iris.Context) {
	transitionEscrow(ctx, "escrow_released", "Deposit released", true, func(escrow *models.Escrow) error {
		return services.ApproveEscrowRelease(escrow, time.Now())
	})
}

func RejectEscrowRelease(ctx iris.Context) {
	transitionEscrow(ctx, "escrow_disputed", "Release rejected, deposit disputed", true, func(escrow *models.Escrow) error {
		return services.RejectEscrowRelease(escrow)
	})
}

func transitionEscrow(ctx iris.Context, action, message string, resolves bool, apply func(*models.Escrow) error) {
	id := ctx.Params().Get("id")

	var escrow models.Escrow
	before := models.Escrow{}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := storage.LockForUpdate(tx).First(&escrow, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}
		before = escrow

		if err := apply(&escrow); err != nil {
			return err
		}
		return tx.Save(&escrow).Error
	})

	if txErr != nil {
		handleServiceError(txErr, ctx)
		return
	}

	utils.Audit(ctx, action, "escrow", escrow.ID, &before, &escrow)
	if resolves {
		var contract models.Contract
		if err := storage.DB.First(&contract, escrow.ContractID).Error; err == nil {
			services.NewNotificationService().NotifyEscrowResolved(&escrow, &contract)
		}
	}

	ctx.JSON(iris.Map{"message": message, "escrow": escrow})
}
