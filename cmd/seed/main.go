package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"propertyhub/internal/config"
	"propertyhub/internal/database"
	"propertyhub/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM enquiry_bookings")
	db.Exec("DELETE FROM property_gallery_images")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM visitors")
	db.Exec("DELETE FROM settings")
	db.Exec("DELETE FROM password_resets")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@propertyhub.io",
		PasswordHash: string(adminHash),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@propertyhub.io / admin123")

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")
	properties := make([]domain.Property, 0, 3)
	names := []string{"Seaside Villa", "City Loft", "Garden Cottage"}
	for i, name := range names {
		p := domain.Property{
			ID:          uuid.NewString(),
			Name:        name,
			Nickname:    fmt.Sprintf("unit-%d", i+1),
			Description: "Comfortable stay with all amenities included.",
			Address:     fmt.Sprintf("%d Harbor Road", (i+1)*10),
			RefNo:       fmt.Sprintf("REF-%03d", i+1),
			Price:       float64(150 + i*50),
			CleaningFee: "40",
			Pets:        "allowed",
			PetsFee:     "25",
			Features:    []string{"WiFi", "Parking", "Air conditioning"},
			Images:      []string{},
			Bedrooms:    fmt.Sprintf("%d", i+1),
			Bathrooms:   fmt.Sprintf("%d", i+1),
			Guests:      fmt.Sprintf("%d", (i+1)*2),
			Status:      domain.PropertyActive,
		}
		db.Create(&p)
		properties = append(properties, p)
	}

	// ================== VISITORS ==================
	log.Println("Creating visitors...")
	visitors := make([]domain.Visitor, 0, 3)
	visitorEmails := []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	for i, email := range visitorEmails {
		v := domain.Visitor{
			ID:     uuid.NewString(),
			Name:   fmt.Sprintf("Visitor %d", i+1),
			Email:  email,
			Mobile: fmt.Sprintf("+44 7700 9001%02d", i),
		}
		db.Create(&v)
		visitors = append(visitors, v)
	}

	// ================== COMMENTS ==================
	log.Println("Creating comments...")
	rating := 5
	statuses := []domain.CommentStatus{domain.CommentPending, domain.CommentApproved, domain.CommentRejected}
	for i, v := range visitors {
		cm := domain.Comment{
			ID:         uuid.NewString(),
			PropertyID: properties[i%len(properties)].ID,
			VisitorID:  v.ID,
			Content:    "Lovely place, would stay again.",
			Rating:     &rating,
			Status:     statuses[i%len(statuses)],
		}
		db.Create(&cm)
	}

	// ================== ENQUIRIES ==================
	log.Println("Creating enquiry bookings...")
	for i, v := range visitors {
		e := domain.EnquiryBooking{
			ID:            uuid.NewString(),
			PropertyID:    properties[i%len(properties)].ID,
			FirstName:     "Visitor",
			LastName:      fmt.Sprintf("%d", i+1),
			Email:         v.Email,
			Mobile:        v.Mobile,
			ArrivalDate:   fmt.Sprintf("2026-10-%02d", i+10),
			DepartureDate: fmt.Sprintf("2026-10-%02d", i+14),
			Adults:        2,
			Children:      i,
			Message:       "Looking forward to the stay.",
			Status:        domain.EnquiryPending,
		}
		db.Create(&e)
	}

	// ================== SETTINGS ==================
	log.Println("Creating settings...")
	defaults := []domain.Setting{
		{Key: "site.title", Value: "PropertyHub", Category: "general", Description: "Public site title"},
		{Key: "site.contactEmail", Value: "hello@propertyhub.io", Category: "general"},
		{Key: "booking.autoConfirm", Value: "false", Category: "booking"},
		{Key: "comments.requireApproval", Value: "true", Category: "comments"},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}

	log.Println("Seed complete.")
}
