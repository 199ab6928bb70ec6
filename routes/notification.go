package routes

import (
	"rentsafe-server/models"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GetMyNotifications lists the authenticated person's notifications.
func GetMyNotifications(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var notifications []models.Notification
	if err := storage.DB.
		Where("recipient_ic = ?", claims.IC).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(notifications)
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	id := ctx.Params().Get("id")

	var notification models.Notification
	if err := storage.DB.Where("id = ? AND recipient_ic = ?", id, claims.IC).First(&notification).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Notification not found", ctx)
		return
	}

	notification.IsRead = true
	if err := storage.DB.Save(&notification).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(notification)
}
