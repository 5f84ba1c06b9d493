package main

import (
	"log"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the default standard and admin accounts when the users table is
// still empty.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	if count > 0 {
		log.Println("Users already exist in the database, nothing to do")
		return
	}

	userCard := "USER001YS"
	adminCard := "ADMIN001RC"

	user := &model.User{
		Username: "yassine",
		Email:    "yassine@example.com",
		Role:     model.RoleUser,
		RFIDCard: &userCard,
	}
	if err := user.SetPassword("user123"); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		Username: "rachid",
		Email:    "rachid@example.com",
		Role:     model.RoleAdmin,
		RFIDCard: &adminCard,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Println("Default users created")
}
