package models

import (
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	Title        string  `json:"title" gorm:"size:100;not null"`
	Description  string  `json:"description" gorm:"type:text"`
	Location     string  `json:"location" gorm:"size:200;not null"`
	Price        float64 `json:"price" gorm:"not null"` // monthly rent, RM
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	SizeSqft     int     `json:"sizeSqft"`
	PropertyType string  `json:"propertyType" gorm:"size:30"` // studio, condo, house, penthouse
	Amenities    string  `json:"amenities" gorm:"type:text"`  // comma separated
	ImageURL     string  `json:"imageUrl" gorm:"size:512"`
	LandlordIC   string  `json:"landlordIc" gorm:"size:20;index;not null"`
	Status       string  `json:"status" gorm:"type:varchar(20);default:'unverified';index"` // unverified, verified, available, rented

	Landlord *Person `json:"landlord,omitempty" gorm:"foreignKey:LandlordIC;references:IC"`
}
