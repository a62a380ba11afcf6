package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// main creates a super admin account and, with -demo, a small catalog.
// Usage: go run ./cmd/seed [-email a@b.es -name Ana -password ...] [-demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	email := flag.String("email", "", "super admin email (prompted when empty)")
	name := flag.String("name", "", "super admin name")
	password := flag.String("password", "", "super admin password")
	demo := flag.Bool("demo", false, "also seed a demo outdoor catalog and articles")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ALEXIKA - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.Load()
	config.InitLogger()
	defer config.SyncLogger()

	config.InitDB()
	defer config.CloseDB()
	if err := models.AutoMigrate(config.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Connected to database")

	if *email == "" || *password == "" {
		*email, *password, *name = getAdminCredentials()
	}
	if *name == "" {
		*name = *email
	}
	createSuperAdmin(*email, *name, *password)

	if *demo {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := seedDemoCatalog(ctx); err != nil {
			log.Fatalf("Demo catalog failed: %v", err)
		}
	}
}

func createSuperAdmin(email, name, password string) {
	if !services.ValidatePassword(password) {
		fmt.Println("❌ Password must be at least 8 characters")
		os.Exit(1)
	}

	var existing models.Admin
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("ℹ️  Admin with email '%s' already exists, skipping\n", email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		Status:       models.AdminStatusActive,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Role:  %s\n", admin.Role)
	fmt.Println()
	fmt.Println("Login at POST /api/v1/admin/login with email and password")
	fmt.Println()
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	for email == "" {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
	}
	for name == "" {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
	}
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if services.ValidatePassword(password) {
			break
		}
		fmt.Println("❌ Password must be at least 8 characters")
	}
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}
	fmt.Println()
	return email, password, name
}

// ════════════════════════════════════════════════════════════
// Demo catalog
// ════════════════════════════════════════════════════════════

type demoProduct struct {
	name, sku, category, brand string
	price                      float64
	stock                      int
	weight                     string
	activities                 []string
	featured                   bool
}

var demoProducts = []demoProduct{
	{"Tienda Hubba Hubba NX 2", "MSR-HH2", "Tiendas", "MSR", 489.95, 6, "1,72 kg", []string{"Trekking", "Montañismo"}, true},
	{"Tienda Elixir 3", "MSR-EL3", "Tiendas", "MSR", 329.00, 4, "2,9 kg", []string{"Camping"}, false},
	{"Mochila Futura 32", "DEU-FU32", "Mochilas", "Deuter", 149.95, 12, "1,45 kg", []string{"Trekking"}, true},
	{"Mochila Aircontact 55+10", "DEU-AC55", "Mochilas", "Deuter", 229.00, 5, "2,4 kg", []string{"Trekking", "Montañismo"}, false},
	{"Frontal Spot 400", "BD-SPOT", "Iluminación", "Black Diamond", 49.95, 30, "86 g", []string{"Camping", "Trekking"}, false},
	{"Saco Cumulus 350", "CUM-350", "Sacos de dormir", "", 399.00, 3, "0,8 kg", []string{"Montañismo"}, false},
}

var demoArticles = []models.ArticleRequest{
	{
		Title:   "Cómo elegir tu tienda de trekking",
		Excerpt: "Peso, espacio y resistencia: lo que de verdad importa.",
		Content: "[title]Cómo elegir tu tienda[/title]" +
			"[p]Para travesías de varios días el [b]peso[/b] manda. Por debajo de 2 kg para dos personas es una buena referencia.[/p]" +
			"[subtitle]Qué mirar[/subtitle]" +
			"[list][*]Peso total y peso mínimo[*]Número de accesos[*]Columna de agua del doble techo[/list]" +
			"[p]Consulta nuestra [link href=\"/store/products?category=tiendas\"]selección de tiendas[/link].[/p]",
		Published: true,
		Tags:      []string{"tiendas", "trekking"},
	},
	{
		Title:     "Capas: el sistema que funciona",
		Excerpt:   "Base, aislante y protección.",
		Content:   "[title]El sistema de tres capas[/title][p]Una capa [i]base[/i] que evacúe el sudor, una intermedia que aísle y una exterior que corte viento y agua.[/p]",
		Published: true,
		Tags:      []string{"ropa"},
	},
}

func seedDemoCatalog(ctx context.Context) error {
	var n int64
	if err := config.DB.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		fmt.Println("ℹ️  Catalog already has products, skipping demo data")
		return nil
	}

	db := config.DB.WithContext(ctx)

	weight := models.Specification{Key: config.App.WeightSpecKey, Name: "Peso", Unit: "kg", SortOrder: 1}
	if err := db.Create(&weight).Error; err != nil {
		return fmt.Errorf("weight spec: %w", err)
	}

	categories := map[string]*models.Category{}
	brands := map[string]*models.Brand{}
	activities := map[string]map[string]*models.Subcategory{}

	for i, p := range demoProducts {
		cat, ok := categories[p.category]
		if !ok {
			cat = &models.Category{Name: p.category, Slug: utils.Slugify(p.category), SortOrder: len(categories) + 1, Active: true}
			if err := db.Create(cat).Error; err != nil {
				return fmt.Errorf("category %s: %w", p.category, err)
			}
			categories[p.category] = cat
			activities[p.category] = map[string]*models.Subcategory{}
		}

		var brandID *uuid.UUID
		if p.brand != "" {
			b, ok := brands[p.brand]
			if !ok {
				b = &models.Brand{Name: p.brand, Slug: utils.Slugify(p.brand), SortOrder: len(brands) + 1, Active: true}
				if err := db.Create(b).Error; err != nil {
					return fmt.Errorf("brand %s: %w", p.brand, err)
				}
				brands[p.brand] = b
			}
			brandID = &b.ID
		}

		var subIDs []uuid.UUID
		for _, a := range p.activities {
			sub, ok := activities[p.category][a]
			if !ok {
				sub = &models.Subcategory{
					CategoryID: cat.ID,
					Name:       a,
					Slug:       utils.Slugify(p.category + " " + a),
					IsActivity: true,
					SortOrder:  len(activities[p.category]) + 1,
					Active:     true,
				}
				if err := db.Create(sub).Error; err != nil {
					return fmt.Errorf("subcategory %s: %w", a, err)
				}
				activities[p.category][a] = sub
			}
			subIDs = append(subIDs, sub.ID)
		}

		active := true
		_, err := services.CreateProduct(ctx, models.ProductRequest{
			Name:           p.name,
			SKU:            p.sku,
			Description:    fmt.Sprintf("%s. Producto de demostración nº %d.", p.name, i+1),
			Price:          p.price,
			Stock:          p.stock,
			Active:         &active,
			Featured:       p.featured,
			CategoryID:     cat.ID,
			BrandID:        brandID,
			SubcategoryIDs: subIDs,
			Specs:          []models.SpecValueInput{{SpecificationID: weight.ID, Value: p.weight}},
		})
		if err != nil {
			return fmt.Errorf("product %s: %w", p.name, err)
		}
	}

	now := time.Now().UTC()
	for _, a := range demoArticles {
		article := models.Article{
			Title:       a.Title,
			Slug:        utils.Slugify(a.Title),
			Excerpt:     a.Excerpt,
			Content:     a.Content,
			Published:   a.Published,
			PublishedAt: &now,
			Tags:        models.EncodeTags(a.Tags),
		}
		if err := db.Create(&article).Error; err != nil {
			return fmt.Errorf("article %s: %w", a.Title, err)
		}
	}

	fmt.Printf("✅ Demo catalog: %d products, %d categories, %d brands, %d articles\n",
		len(demoProducts), len(categories), len(brands), len(demoArticles))
	return nil
}
