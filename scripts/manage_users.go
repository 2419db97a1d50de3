package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-recipe-api/internal/config"
	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	createSuperuser := flag.Bool("create-superuser", false, "Create a staff and superuser account")
	deleteEmail := flag.String("delete", "", "Delete the user with this email and everything they own")
	email := flag.String("email", "", "Email for the new superuser")
	password := flag.String("password", "", "Password for the new superuser (or SUPERUSER_PASSWORD)")
	name := flag.String("name", "Admin", "Name for the new superuser")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.InitDatabase(database.FromAppConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	users := services.NewUserService(db)

	switch {
	case *createSuperuser:
		pw := *password
		if pw == "" {
			pw = os.Getenv("SUPERUSER_PASSWORD")
		}
		if *email == "" || pw == "" {
			log.Fatal("-create-superuser needs -email and -password (or SUPERUSER_PASSWORD)")
		}

		user, err := users.CreateSuperuser(*email, pw, *name)
		if err != nil {
			log.Fatal("Failed to create superuser: ", err)
		}
		fmt.Printf("✓ Superuser created: %s (ID: %d)\n", user.Email, user.ID)

	case *deleteEmail != "":
		user, err := users.GetUserByEmail(*deleteEmail)
		if err != nil {
			log.Fatal("User not found: ", *deleteEmail)
		}
		if err := users.DeleteUser(user.ID); err != nil {
			log.Fatal("Failed to delete user: ", err)
		}
		fmt.Printf("✓ Deleted %s with their recipes, tags, ingredients and tokens\n", user.Email)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
