package routes

import (
	"strings"

	"rentsafe-server/models"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/kataras/iris/v12"
)

type CreatePropertyInput struct {
	Title        string  `json:"title" validate:"required,max=100"`
	Description  string  `json:"description"`
	Location     string  `json:"location" validate:"required,max=200"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0,lte=20"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0,lte=20"`
	SizeSqft     int     `json:"sizeSqft" validate:"gte=0"`
	PropertyType string  `json:"propertyType"`
	Amenities    string  `json:"amenities"`
	ImageURL     string  `json:"imageUrl"`
	LandlordIC   string  `json:"landlordIc" validate:"required"`
}

func CreateProperty(ctx iris.Context) {
	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// The owner must exist as a verified landlord before a listing is
	// admitted.
	var landlord models.Person
	if err := storage.DB.Where("ic = ?", input.LandlordIC).First(&landlord).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Landlord is not a verified person", ctx)
		return
	}
	if landlord.Role != "landlord" {
		utils.CreateError(iris.StatusPreconditionFailed, "Precondition Failed", "Person is not registered as a landlord", ctx)
		return
	}

	property := models.Property{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Price:        input.Price,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SizeSqft:     input.SizeSqft,
		PropertyType: input.PropertyType,
		Amenities:    input.Amenities,
		ImageURL:     input.ImageURL,
		LandlordIC:   input.LandlordIC,
		Status:       "unverified",
	}

	if err := storage.DB.Create(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(property)
}

// GetAllProperties lists the catalog, paginated, with optional status,
// landlord and free-text filters.
func GetAllProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	landlordIC := ctx.URLParamDefault("landlord_ic", "")
	search := strings.TrimSpace(ctx.URLParamDefault("search", ""))

	q := storage.DB.Model(&models.Property{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if landlordIC != "" {
		q = q.Where("landlord_ic = ?", landlordIC)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ? OR lower(location) LIKE ?", like, like, like)
	}

	var total int64
	q.Count(&total)

	var properties []models.Property
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, properties, page, perPage, total)
}

func GetProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var property models.Property
	if err := storage.DB.Preload("Landlord").First(&property, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}
	ctx.JSON(property)
}

type UpdatePropertyInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price" validate:"omitempty,gt=0"`
	Amenities   string  `json:"amenities"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status" validate:"omitempty,oneof=unverified verified available rented"`
}

func UpdateProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var property models.Property
	if err := storage.DB.First(&property, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if input.Title != "" {
		property.Title = input.Title
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Location != "" {
		property.Location = input.Location
	}
	if input.Price > 0 {
		property.Price = input.Price
	}
	if input.Amenities != "" {
		property.Amenities = input.Amenities
	}
	if input.ImageURL != "" {
		property.ImageURL = input.ImageURL
	}
	if input.Status != "" {
		property.Status = input.Status
	}

	if err := storage.DB.Save(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(property)
}

func DeleteProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var property models.Property
	if err := storage.DB.First(&property, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if err := storage.DB.Delete(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Property deleted"})
}
