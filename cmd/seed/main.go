package main

import (
	"log"
	"os"

	"github.com/dentora-store/internal/config"
	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seedAdmin(stdLog)

	categories := []models.Category{
		{Slug: "restorative", Name: "Restorative", Description: "Composites, cements and filling materials", SortOrder: 1},
		{Slug: "endodontics", Name: "Endodontics", Description: "Files, sealers and irrigation solutions", SortOrder: 2},
		{Slug: "consumables", Name: "Consumables", Description: "Gloves, masks and single-use supplies", SortOrder: 3},
		{Slug: "instruments", Name: "Instruments", Description: "Hand instruments and rotary tools", SortOrder: 4},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"restorative", "endodontics", "consumables", "instruments"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			CategoryID:  categoryIDs["restorative"],
			Name:        "Nano-Hybrid Composite A2 4g",
			Brand:       "DentiFill",
			Description: "Light-cure nano-hybrid composite syringe, shade A2",
			Price:       models.NewMoneyFromInt(5400),
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["restorative"],
			Name:        "Glass Ionomer Cement Kit",
			Brand:       "DentiFill",
			Description: "Powder and liquid kit for luting and lining",
			Price:       models.NewMoneyFromInt(3200),
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["endodontics"],
			Name:        "Rotary NiTi File Set 25mm",
			Brand:       "EndoPro",
			Description: "Assorted taper set, 6 files per pack",
			Price:       models.NewMoneyFromInt(8900),
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["endodontics"],
			Name:        "Sodium Hypochlorite 5% 1L",
			Brand:       "EndoPro",
			Description: "Root canal irrigation solution",
			Price:       models.NewMoneyFromInt(1500),
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["consumables"],
			Name:        "Nitrile Gloves M (100 pcs)",
			Brand:       "SafeHands",
			Description: "Powder-free examination gloves, medium",
			Price:       models.NewMoneyFromInt(1800),
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["consumables"],
			Name:        "Saliva Ejectors (100 pcs)",
			Brand:       "SafeHands",
			Description: "Disposable clear ejectors with flexible tip",
			Price:       models.NewMoneyFromInt(900),
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["instruments"],
			Name:        "Extraction Forceps Upper Molar",
			Brand:       "SteelCraft",
			Description: "Stainless steel, autoclavable",
			Price:       models.NewMoneyFromInt(6700),
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["instruments"],
			Name:        "Mouth Mirror #5 (12 pcs)",
			Brand:       "SteelCraft",
			Description: "Front surface mirrors with handles",
			Price:       models.NewMoneyFromInt(2400),
			IsActive:    true,
			SortOrder:   2,
		},
	}

	productIDs := map[string]uint{}
	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", p.Name)
			productIDs[p.Name] = p.ID
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
			productIDs[p.Name] = existing.ID
		}
	}

	bundles := []struct {
		bundle models.Bundle
		lines  map[string]int
	}{
		{
			bundle: models.Bundle{
				Name:        "Endo Starter Pack",
				Description: "Rotary files plus irrigation for a new operatory",
				Price:       "32,900 DZD",
				IsActive:    true,
				SortOrder:   1,
			},
			lines: map[string]int{
				"Rotary NiTi File Set 25mm": 3,
				"Sodium Hypochlorite 5% 1L": 4,
				"Saliva Ejectors (100 pcs)": 1,
			},
		},
		{
			bundle: models.Bundle{
				Name:        "Clinic Restock Essentials",
				Description: "Monthly consumables refill",
				Price:       "12,500 DZD",
				IsActive:    true,
				SortOrder:   2,
			},
			lines: map[string]int{
				"Nitrile Gloves M (100 pcs)": 4,
				"Saliva Ejectors (100 pcs)":  4,
			},
		},
	}

	for _, entry := range bundles {
		var existing models.Bundle
		if err := models.DB.Where("name = ?", entry.bundle.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Bundle already exists: %s", entry.bundle.Name)
			continue
		}
		b := entry.bundle
		for name, qty := range entry.lines {
			pid, ok := productIDs[name]
			if !ok {
				continue
			}
			b.Products = append(b.Products, models.BundleProduct{ProductID: pid, Quantity: qty})
		}
		if err := models.DB.Create(&b).Error; err != nil {
			stdLog.Printf("Failed to create bundle %s: %v", b.Name, err)
		} else {
			stdLog.Printf("Created bundle: %s", b.Name)
		}
	}

	stdLog.Printf("Seed finished")
}

// seedAdmin records the default back-office operator. The password hash is a
// break-glass credential only; normal login goes through the identity provider.
func seedAdmin(stdLog *log.Logger) {
	subject := os.Getenv("DT_DEFAULT_ADMIN_SUBJECT")
	if subject == "" {
		subject = "admin"
	}
	password := os.Getenv("DT_DEFAULT_ADMIN_PASSWORD")
	if password == "" {
		stdLog.Printf("DT_DEFAULT_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.Admin
	if err := models.DB.Where("subject = ?", subject).First(&existing).Error; err == nil {
		stdLog.Printf("Admin already exists: %s", subject)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash admin password: %v", err)
		return
	}
	admin := models.Admin{
		Subject:      subject,
		DisplayName:  "Store Admin",
		PasswordHash: string(hash),
	}
	if err := models.DB.Create(&admin).Error; err != nil {
		stdLog.Printf("Failed to create admin %s: %v", subject, err)
		return
	}
	stdLog.Printf("Created admin: %s", subject)
}
