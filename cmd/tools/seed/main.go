package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
)

type seedProduct struct {
	Slug        string
	Name        string
	PriceCents  int
	Drop        string
	DropLabel   string
	Color       string
	Description []string
	Sizes       []string
}

var seedProducts = []seedProduct{
	{
		Slug:       "ant-man-tee",
		Name:       "ANT MAN",
		PriceCents: 299000,
		Drop:       "archive-001",
		DropLabel:  "ARCHIVE 001",
		Color:      "Black",
		Description: []string{
			"Heavy cotton construction",
			"Screen printed graphics",
			"Oversized fit",
			"Produced once — No restock",
		},
		Sizes: []string{"S", "M", "L", "XL"},
	},
	{
		Slug:       "if-youre-reading-this-tee",
		Name:       "IF YOU'RE READING THIS",
		PriceCents: 299000,
		Drop:       "archive-001",
		DropLabel:  "ARCHIVE 001",
		Color:      "White",
		Description: []string{
			"Premium cotton blend",
			"Typographic print",
			"Regular fit",
			"Produced once — No restock",
		},
		Sizes: []string{"S", "M", "L", "XL"},
	},
	{
		Slug:       "brent-tee",
		Name:       "BRENT",
		PriceCents: 299000,
		Drop:       "archive-001",
		DropLabel:  "ARCHIVE 001",
		Color:      "Black",
		Description: []string{
			"Heavyweight jersey",
			"Back print detail",
			"Relaxed silhouette",
			"Produced once — No restock",
		},
		Sizes: []string{"S", "M", "L", "XL"},
	},
	{
		Slug:       "wnm-studio-tee",
		Name:       "WNM STUDIO",
		PriceCents: 279000,
		Drop:       "archive-002",
		DropLabel:  "ARCHIVE 002",
		Color:      "Off-white",
		Description: []string{
			"Organic cotton",
			"Embroidered logo",
			"Boxy cut",
			"Produced once — No restock",
		},
		Sizes: []string{"S", "M", "L", "XL"},
	},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	repo := catalog.NewRepo(db)

	for _, sp := range seedProducts {
		if _, err := repo.GetBySlug(ctx, sp.Slug); err == nil {
			log.Printf("skip %s (exists)", sp.Slug)
			continue
		}

		desc, _ := json.Marshal(sp.Description)
		sizes, _ := json.Marshal(sp.Sizes)

		p, err := repo.CreateProduct(ctx, catalog.ProductInput{
			Slug:              sp.Slug,
			Name:              sp.Name,
			PriceCents:        sp.PriceCents,
			Currency:          "IDR",
			Drop:              sp.Drop,
			DropLabel:         sp.DropLabel,
			Category:          "tee",
			Color:             sp.Color,
			Availability:      "limited",
			AvailabilityLabel: "Limited Run",
			Description:       desc,
			Sizes:             sizes,
			InStock:           true,
			Status:            "active",
		})
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", sp.Slug, err)
		}
		log.Printf("✓ seeded %s (%s)", p.Name, p.ID)
	}

	log.Println("✓ seed complete")
}
