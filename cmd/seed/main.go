package main

import (
	"log"
	"os"

	"drivetube-be/internal/model"
	"drivetube-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Plan Catalog...")

	plans := []model.Plan{
		{
			Name:     "Básico",
			Price:    2,
			Interval: "month",
			Features: []string{
				"Acesso ilimitado a vídeos",
				"Suporte por email",
				"Atualizações de segurança",
			},
			IsActive: true,
		},
		{
			Name:     "Pro",
			Price:    5,
			Interval: "month",
			Features: []string{
				"Tudo do plano Básico",
				"Download de vídeos",
				"Suporte prioritário",
				"Recursos avançados",
			},
			IsActive: true,
		},
		{
			Name:     "Empresarial",
			Price:    10,
			Interval: "month",
			Features: []string{
				"Tudo do plano Pro",
				"API dedicada",
				"Suporte 24/7",
				"Recursos personalizados",
				"Treinamento exclusivo",
			},
			IsActive: true,
		},
	}

	for _, p := range plans {
		var existing model.Plan
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating plan '%s': %v", p.Name, err)
		} else {
			color.Green("Created plan: %s (%.2f/%s)", p.Name, p.Price, p.Interval)
		}
	}

	color.Cyan("Plan seeding completed!")
}
