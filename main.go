package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"comanda/config"
	"comanda/database"
	"comanda/models"
	"comanda/repository"
	"comanda/router"
	"comanda/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env não encontrado: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		menus  repository.MenuRepository
		orders repository.OrderRepository
	)

	if config.Driver() == config.DriverMemory {
		utils.InfoLogger.Println("Armazenamento em memória (sem persistência entre reinícios)")
		menus = repository.NewMemoryMenuRepository()
		orders = repository.NewMemoryOrderRepository()
	} else {
		db, err := config.InitDB()
		if err != nil {
			utils.ErrorLogger.Fatalf("Falha ao conectar no banco: %v", err)
		}
		if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
			utils.ErrorLogger.Fatalf("Falha no AutoMigrate: %v", err)
		}
		menus = repository.NewGormMenuRepository(db)
		orders = repository.NewGormOrderRepository(db)
	}

	if err := database.SeedMenu(context.Background(), menus); err != nil {
		utils.ErrorLogger.Fatalf("Falha ao popular o cardápio: %v", err)
	}

	r := router.SetupRouter(menus, orders)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
