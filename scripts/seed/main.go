package main

import (
	"fmt"
	"log"
	"time"

	"rentsafe-server/models"
	"rentsafe-server/storage"
)

// Seeds the demo dataset: verified persons, four listings and six
// applications in mixed states.
func main() {
	db := storage.InitializeDB()

	persons := []models.Person{
		{IC: "800515-01-5678", Name: "Tan Mei Ling", Age: 45, Gender: "female", Email: "tan.meiling@example.com", Role: "landlord"},
		{IC: "750820-02-9012", Name: "Rajesh Kumar", Age: 50, Gender: "male", Email: "rajesh.kumar@example.com", Role: "landlord"},
		{IC: "000000-00-0000", Name: "NextNation", Age: 30, Gender: "male", Email: "next_nation@gmail.com", Role: "landlord"},
		{IC: "950101-01-1234", Name: "Ahmad Bin Abdullah", Age: 30, Gender: "male", Email: "ahmad@example.com", Role: "tenant"},
		{IC: "960202-02-2222", Name: "Nur Aina Binti Salleh", Age: 29, Gender: "female", Email: "aina@example.com", Role: "tenant"},
		{IC: "920707-07-7777", Name: "Chan Li Wei", Age: 33, Gender: "male", Email: "chan@example.com", Role: "tenant"},
		{IC: "930808-08-8888", Name: "Lim Wei Jie", Age: 32, Gender: "male", Email: "lim@example.com", Role: "tenant"},
	}
	for i := range persons {
		if err := db.Where("ic = ?", persons[i].IC).FirstOrCreate(&persons[i]).Error; err != nil {
			log.Fatalf("seeding person %s: %v", persons[i].IC, err)
		}
	}
	fmt.Printf("%d persons seeded\n", len(persons))

	properties := []models.Property{
		{
			Title:        "Modern Studio Apartment in KLCC",
			Description:  "Fully furnished studio with stunning city views. Walking distance to Pavilion and KLCC.",
			Location:     "Unit 15-03, The Troika, Persiaran KLCC, Kuala Lumpur",
			Price:        2800,
			LandlordIC:   "800515-01-5678",
			Bedrooms:     1,
			Bathrooms:    1,
			SizeSqft:     550,
			PropertyType: "studio",
			Amenities:    "WiFi, Air Conditioning, Swimming Pool, Gym, Security, Parking",
			ImageURL:     "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
			Status:       "verified",
		},
		{
			Title:        "Cozy 2BR Condo in Bangsar South",
			Description:  "Spacious 2-bedroom unit with modern finishes. Near LRT station and The Sphere.",
			Location:     "Block A, Southview Residences, Jalan Kerinchi, Petaling Jaya",
			Price:        2200,
			LandlordIC:   "800515-01-5678",
			Bedrooms:     2,
			Bathrooms:    2,
			SizeSqft:     850,
			PropertyType: "condo",
			Amenities:    "WiFi, Air Conditioning, Swimming Pool, Playground, Security",
			ImageURL:     "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
			Status:       "verified",
		},
		{
			Title:        "Family Home in Mont Kiara",
			Description:  "3-bedroom family home with garden. Quiet neighborhood, near international schools.",
			Location:     "12, Jalan Kiara 5, Mont Kiara, Kuala Lumpur",
			Price:        4500,
			LandlordIC:   "750820-02-9012",
			Bedrooms:     3,
			Bathrooms:    3,
			SizeSqft:     1800,
			PropertyType: "house",
			Amenities:    "Garden, Parking, Air Conditioning, Security, Near Schools",
			ImageURL:     "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
			Status:       "verified",
		},
		{
			Title:        "Family Home in Johor",
			Description:  "3-bedroom family home with garden. Quiet neighborhood, near international schools.",
			Location:     "12, Jalan Kiara 5, Johor Bahru, Johor Bahru",
			Price:        4500,
			LandlordIC:   "000000-00-0000",
			Bedrooms:     3,
			Bathrooms:    3,
			SizeSqft:     1800,
			PropertyType: "house",
			Amenities:    "Garden, Parking, Air Conditioning, Security, Near Schools",
			ImageURL:     "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
			Status:       "verified",
		},
	}
	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			log.Fatalf("seeding property %q: %v", properties[i].Title, err)
		}
	}
	fmt.Printf("%d properties seeded\n", len(properties))

	applications := []models.Application{
		{PropertyID: properties[0].ID, TenantIC: "950101-01-1234", TenantName: "Ahmad Bin Abdullah", Status: models.ApplicationPending, AppliedAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)},
		{PropertyID: properties[1].ID, TenantIC: "960202-02-2222", TenantName: "Nur Aina Binti Salleh", Status: models.ApplicationApproved, AppliedAt: time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC)},
		{PropertyID: properties[2].ID, TenantIC: "920707-07-7777", TenantName: "Chan Li Wei", Status: models.ApplicationRejected, AppliedAt: time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC)},
		{PropertyID: properties[1].ID, TenantIC: "950101-01-1234", TenantName: "Ahmad Bin Abdullah", Status: models.ApplicationApproved, AppliedAt: time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)},
		{PropertyID: properties[0].ID, TenantIC: "930808-08-8888", TenantName: "Lim Wei Jie", Status: models.ApplicationApproved, AppliedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{PropertyID: properties[2].ID, TenantIC: "960202-02-2222", TenantName: "Nur Aina Binti Salleh", Status: models.ApplicationApproved, AppliedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range applications {
		if err := db.Create(&applications[i]).Error; err != nil {
			log.Fatalf("seeding application for %s: %v", applications[i].TenantIC, err)
		}
	}
	fmt.Printf("%d applications seeded\n", len(applications))
}
