package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func main() {
	name := flag.String("name", "Owner", "owner display name")
	mobile := flag.String("mobile", "", "owner mobile number (login id)")
	password := flag.String("password", "", "owner password")
	flag.Parse()

	if *mobile == "" || *password == "" {
		log.Fatal("Usage: add_owner -mobile <10 digits> -password <password> [-name <name>]")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Name:         *name,
		Mobile:       *mobile,
		PasswordHash: hash,
		Role:         models.RoleOwner,
		Status:       models.StatusActive,
		JoinedAt:     dates.TodayStr(),
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create owner:", err)
	}

	fmt.Printf("Owner created successfully: %s (%s)\n", user.Name, user.Mobile)
}
