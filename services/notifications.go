package services

import (
	"fmt"
	"log"

	"rentsafe-server/models"
	"rentsafe-server/storage"
)

// NotificationService writes in-app notification rows for lifecycle events.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (ns *NotificationService) notify(recipientIC, title, message, notifType string, refID uint, refType string) {
	notification := models.Notification{
		RecipientIC: recipientIC,
		Title:       title,
		Message:     message,
		Type:        notifType,
		RefID:       refID,
		RefType:     refType,
	}
	if err := storage.DB.Create(&notification).Error; err != nil {
		log.Printf("notification write failed for %s: %v", recipientIC, err)
	}
}

// NotifyApplicationSubmitted tells the landlord a tenant has applied.
func (ns *NotificationService) NotifyApplicationSubmitted(app *models.Application, property *models.Property) {
	ns.notify(
		property.LandlordIC,
		"New Rental Application",
		fmt.Sprintf("%s has applied for %s", app.TenantName, property.Title),
		"application_submitted",
		app.ID,
		"application",
	)
}

// NotifyApplicationDecided tells the tenant the landlord's decision.
func (ns *NotificationService) NotifyApplicationDecided(app *models.Application, property *models.Property) {
	ns.notify(
		app.TenantIC,
		"Application "+app.Status,
		fmt.Sprintf("Your application for %s has been %s", property.Title, app.Status),
		"application_decided",
		app.ID,
		"application",
	)
}

// NotifyContractExecuted tells both parties the contract is fully signed.
func (ns *NotificationService) NotifyContractExecuted(contract *models.Contract) {
	message := fmt.Sprintf("Rental agreement #%d has been signed by both parties", contract.ID)
	ns.notify(contract.TenantIC, "Contract Signed", message, "contract_signed", contract.ID, "contract")
	ns.notify(contract.LandlordIC, "Contract Signed", message, "contract_signed", contract.ID, "contract")
}

// NotifyEscrowResolved tells both parties how the deposit was settled.
func (ns *NotificationService) NotifyEscrowResolved(escrow *models.Escrow, contract *models.Contract) {
	message := fmt.Sprintf("Deposit of RM %.2f for contract #%d is now %s", escrow.Amount, contract.ID, escrow.Status)
	ns.notify(contract.TenantIC, "Deposit Update", message, "escrow_resolved", escrow.ID, "escrow")
	ns.notify(contract.LandlordIC, "Deposit Update", message, "escrow_resolved", escrow.ID, "escrow")
}
