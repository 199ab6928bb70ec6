package models

import (
	"gorm.io/gorm"
)

// Person is a verified identity record created by the MyDigital ID mock on
// first successful verification. The IC is the national identifier and never
// changes; Role is written at most once after verification.
type Person struct {
	gorm.Model
	IC     string `json:"ic" gorm:"size:20;uniqueIndex;not null"`
	Name   string `json:"name" gorm:"size:100;not null"`
	Email  string `json:"email" gorm:"size:100"`
	Age    int    `json:"age"`
	Gender string `json:"gender" gorm:"size:10"`
	Role   string `json:"role" gorm:"type:varchar(20);default:'';index"` // "", tenant, landlord
}
