package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/KhaanFaizan/Safai-PAK/internal/database"
	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "safai.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Safai-PAK Admin",
		Email:        "admin@safaipak.com",
		PasswordHash: string(adminHash),
		Phone:        "+92 300 0000000",
		City:         "Islamabad",
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@safaipak.com / admin123")

	providers := make([]domain.User, 0, 3)
	providerData := []struct {
		name, email, city string
	}{
		{"Ahmed Cleaning Co", "ahmed@safaipak.com", "Lahore"},
		{"Karachi Pest Masters", "bilal@safaipak.com", "Karachi"},
		{"GreenField Services", "sana@safaipak.com", "Islamabad"},
	}
	for i, p := range providerData {
		hash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
		provider := domain.User{
			Name:         p.name,
			Email:        p.email,
			PasswordHash: string(hash),
			Phone:        fmt.Sprintf("+92 321 11122%02d", i+10),
			City:         p.city,
			Role:         domain.RoleProvider,
			IsVerified:   true,
		}
		db.Create(&provider)
		providers = append(providers, provider)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Name:         "Fatima Khan",
		Email:        "fatima@example.com",
		PasswordHash: string(customerHash),
		Phone:        "+92 333 4455667",
		City:         "Lahore",
		Role:         domain.RoleCustomer,
	}
	db.Create(&customer)

	log.Println("Creating services...")
	services := []domain.Service{
		{ProviderID: providers[0].ID, Name: "Full House Deep Clean", Description: "Complete top-to-bottom house cleaning including kitchen and bathrooms.", Price: 5000, Duration: "4 hours", Category: "House Cleaning"},
		{ProviderID: providers[0].ID, Name: "Office Floor Cleaning", Description: "Daily or weekly office cleaning for small businesses.", Price: 3500, Duration: "2 hours", Category: "Office Cleaning"},
		{ProviderID: providers[1].ID, Name: "Termite Treatment", Description: "Professional termite inspection and treatment with warranty.", Price: 8000, Duration: "3 hours", Category: "Pest Control"},
		{ProviderID: providers[1].ID, Name: "Anti-Dengue Fumigation", Description: "Indoor and outdoor fumigation against mosquitoes.", Price: 4500, Duration: "1 hour", Category: "Deep Sanitation"},
		{ProviderID: providers[2].ID, Name: "Crop Spraying Service", Description: "Pesticide and fertilizer spraying for farmland.", Price: 12000, Duration: "1 day", Category: "Agricultural Services"},
		{ProviderID: providers[2].ID, Name: "Lawn and Garden Care", Description: "Seasonal lawn mowing, trimming and garden upkeep.", Price: 2500, Duration: "2 hours", Category: "House Cleaning"},
	}
	for i := range services {
		db.Create(&services[i])
	}

	log.Printf("Seed complete: %d providers, %d services", len(providers), len(services))
}
