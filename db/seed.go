package db

import (
	"log"
	"os"

	"github.com/Abishek-KS6/HomeBuddy/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the admin account and the default service catalog when they
// are absent. Safe to run on every boot.
func Seed() {
	seedAdmin()
	seedServices()
}

func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("✅ Admin account created")
}

func seedServices() {
	var count int64
	DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Plumbing", Description: "Pipe repairs, leak fixing, and fitting installation", BasePrice: 500, PricePerHour: 200},
		{Name: "Electrical", Description: "Wiring, switchboards, and appliance installation", BasePrice: 400, PricePerHour: 250},
		{Name: "Cleaning", Description: "Deep home and kitchen cleaning", BasePrice: 800, PricePerHour: 150},
		{Name: "Painting", Description: "Interior and exterior wall painting", BasePrice: 1500, PricePerHour: 300},
		{Name: "Carpentry", Description: "Furniture repair and custom woodwork", BasePrice: 600, PricePerHour: 250},
		{Name: "AC Repair", Description: "AC servicing, gas refill, and installation", BasePrice: 700, PricePerHour: 350},
	}
	if err := DB.Create(&services).Error; err != nil {
		log.Printf("Failed to seed services: %v", err)
		return
	}
	log.Printf("✅ Seeded %d default services", len(services))
}
