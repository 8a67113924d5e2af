package main

import (
	"log"

	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// 開発用の初期データ投入。何度実行しても二重に入らない。
func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.InventoryAdjustment{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	categories := []model.Category{
		{Name: "Running", Slug: "running", Description: "ランニングシューズ"},
		{Name: "Basketball", Slug: "basketball", Description: "バスケットボールシューズ"},
		{Name: "Lifestyle", Slug: "lifestyle", Description: "タウンユース"},
	}

	for i := range categories {
		var existing model.Category
		err := gormDB.Where("slug = ?", categories[i].Slug).First(&existing).Error
		if err == nil {
			categories[i] = existing
			continue
		}
		if err := gormDB.Create(&categories[i]).Error; err != nil {
			log.Fatalf("seed category %s: %v", categories[i].Slug, err)
		}
	}

	products := []model.Product{
		{
			Name:          "Air Zoom Pegasus 41",
			Description:   "デイリートレーニング向けの定番ランニングシューズ",
			Price:         decimal.RequireFromString("179.99"),
			StockQuantity: 50,
			CategoryID:    categories[0].ID,
			Brand:         "Nike",
			SizeAvailable: `["40","41","42","43","44"]`,
			Color:         "White/Black",
			IsActive:      true,
		},
		{
			Name:          "Adizero Adios Pro 4",
			Description:   "レース用カーボンプレート搭載モデル",
			Price:         decimal.RequireFromString("299.99"),
			StockQuantity: 20,
			CategoryID:    categories[0].ID,
			Brand:         "Adidas",
			SizeAvailable: `["41","42","43"]`,
			Color:         "Solar Red",
			IsActive:      true,
		},
		{
			Name:          "GEL-Kayano 31",
			Description:   "安定性重視のロングラン向け",
			Price:         decimal.RequireFromString("189.99"),
			StockQuantity: 35,
			CategoryID:    categories[0].ID,
			Brand:         "Asics",
			SizeAvailable: `["40","41","42","43"]`,
			Color:         "Blue/Yellow",
			IsActive:      true,
		},
		{
			Name:          "LeBron XXII",
			Description:   "インドア向けハイカットバッシュ",
			Price:         decimal.RequireFromString("219.99"),
			StockQuantity: 25,
			CategoryID:    categories[1].ID,
			Brand:         "Nike",
			SizeAvailable: `["42","43","44","45"]`,
			Color:         "Black/Gold",
			IsActive:      true,
		},
		{
			Name:          "Air Jordan 1 Retro High OG",
			Description:   "復刻版。数量限定。",
			Price:         decimal.RequireFromString("399.99"),
			StockQuantity: 10,
			CategoryID:    categories[2].ID,
			Brand:         "Jordan",
			SizeAvailable: `["41","42","43"]`,
			Color:         "Chicago",
			IsActive:      true,
		},
		{
			Name:          "Suede Classic XXI",
			Description:   "定番スエードスニーカー",
			Price:         decimal.RequireFromString("189.99"),
			StockQuantity: 60,
			CategoryID:    categories[2].ID,
			Brand:         "Puma",
			SizeAvailable: `["40","41","42","43","44"]`,
			Color:         "Navy",
			IsActive:      true,
		},
	}

	for i := range products {
		var existing model.Product
		err := gormDB.Where("name = ?", products[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := gormDB.Create(&products[i]).Error; err != nil {
			log.Fatalf("seed product %s: %v", products[i].Name, err)
		}
	}

	// 管理者ユーザー
	adminEmail := "admin@example.com"
	var existingAdmin model.User
	if err := gormDB.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
		pwHash, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		admin := model.User{
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: string(pwHash),
			Role:         model.RoleAdmin,
			IsActive:     true,
		}
		if err := gormDB.Create(&admin).Error; err != nil {
			log.Fatalf("seed admin: %v", err)
		}
	}

	log.Println("seed done")
}
