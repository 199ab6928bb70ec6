package routes

import (
	"rentsafe-server/models"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
)

// LandlordDashboard aggregates everything a landlord acts on: their
// listings, pending applications, contracts split by phase, and deposits
// currently under custody.
func LandlordDashboard(ctx iris.Context) {
	ic := ctx.Params().Get("ic")

	var properties []models.Property
	if err := storage.DB.Where("landlord_ic = ?", ic).Order("created_at DESC").Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var pendingApplications []models.Application
	storage.DB.
		Joins("JOIN properties p ON p.id = applications.property_id").
		Where("p.landlord_ic = ? AND applications.status = ?", ic, models.ApplicationPending).
		Preload("Property").
		Order("applications.applied_at DESC").
		Find(&pendingApplications)

	var activeContracts []models.Contract
	storage.DB.
		Where("landlord_ic = ? AND status IN ?", ic, []models.ContractStatus{models.ContractSigned, models.ContractDepositPaid}).
		Preload("Property").
		Find(&activeContracts)

	var pendingContracts []models.Contract
	storage.DB.
		Where("landlord_ic = ? AND status NOT IN ?", ic, []models.ContractStatus{models.ContractSigned, models.ContractDepositPaid}).
		Preload("Property").
		Find(&pendingContracts)

	var securedEscrows []models.Escrow
	storage.DB.
		Joins("JOIN contracts c ON c.id = escrows.contract_id").
		Where("c.landlord_ic = ? AND escrows.status IN ?", ic, []models.EscrowStatus{models.EscrowHolding, models.EscrowReleaseRequested}).
		Preload("Contract").
		Find(&securedEscrows)

	ctx.JSON(iris.Map{
		"myProperties":        properties,
		"pendingApplications": pendingApplications,
		"activeContracts":     activeContracts,
		"pendingContracts":    pendingContracts,
		"securedEscrows":      securedEscrows,
	})
}

type tenantHistoryRecord struct {
	Property        *models.Property `json:"property"`
	Tenant          iris.Map         `json:"tenant"`
	ContractDetails *models.Contract `json:"contractDetails"`
	Escrow          *models.Escrow   `json:"escrow"`
}

// LandlordTenantHistory lists every contract a landlord has with its tenant
// and deposit state. Tenant names resolve through the Person table.
func LandlordTenantHistory(ctx iris.Context) {
	ic := ctx.Params().Get("ic")

	var contracts []models.Contract
	if err := storage.DB.
		Where("landlord_ic = ?", ic).
		Preload("Property").
		Preload("Escrow").
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	history := make([]tenantHistoryRecord, 0, len(contracts))
	for i := range contracts {
		contract := &contracts[i]

		tenantName := ""
		var tenant models.Person
		if err := storage.DB.Where("ic = ?", contract.TenantIC).First(&tenant).Error; err == nil {
			tenantName = tenant.Name
		}

		history = append(history, tenantHistoryRecord{
			Property:        contract.Property,
			Tenant:          iris.Map{"name": tenantName, "ic": contract.TenantIC},
			ContractDetails: contract,
			Escrow:          contract.Escrow,
		})
	}

	ctx.JSON(history)
}

type rentalHistoryRecord struct {
	Property    *models.Property    `json:"property"`
	Application *models.Application `json:"application"`
	Contract    *models.Contract    `json:"contract"`
	Escrow      *models.Escrow      `json:"escrow"`
}

// TenantRentalHistory is the tenant-side projection joining each contract
// with its originating application and deposit state.
func TenantRentalHistory(ctx iris.Context) {
	ic := ctx.Params().Get("ic")

	var contracts []models.Contract
	if err := storage.DB.
		Where("tenant_ic = ?", ic).
		Preload("Property").
		Preload("Escrow").
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	history := make([]rentalHistoryRecord, 0, len(contracts))
	for i := range contracts {
		contract := &contracts[i]

		var application *models.Application
		var app models.Application
		if err := storage.DB.
			Where("property_id = ? AND tenant_ic = ?", contract.PropertyID, contract.TenantIC).
			Order("applied_at DESC").
			First(&app).Error; err == nil {
			application = &app
		}

		history = append(history, rentalHistoryRecord{
			Property:    contract.Property,
			Application: application,
			Contract:    contract,
			Escrow:      contract.Escrow,
		})
	}

	ctx.JSON(history)
}
