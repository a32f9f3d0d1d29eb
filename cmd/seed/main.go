package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/philgetzen/favorites-tracker-sub003/config"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	pginfra "github.com/philgetzen/favorites-tracker-sub003/internal/infrastructure/postgres"
)

// Seeds a demo account with one template, one collection, and a couple of
// items. Safe to run repeatedly; the account is recreated only when absent.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	auth := pginfra.NewAuthRepository(pool)

	email := "demo@favorites-tracker.test"
	password := "password123"

	u, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		u, err = auth.SignUp(ctx, email, password)
		if err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		u.DisplayName = "Demo User"
		u.Touch()
		if err := users.UpdateUser(ctx, u); err != nil {
			log.Fatalf("failed to name seed user: %v", err)
		}
		if err := users.CreateProfile(ctx, entity.NewUserProfile(u.ID, u.DisplayName)); err != nil {
			log.Fatalf("failed to seed profile: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)

	cols := pginfra.NewCollectionRepository(pool)
	existing, err := cols.GetCollections(ctx, u.ID)
	if err != nil {
		log.Fatalf("failed to list collections: %v", err)
	}
	if len(existing) > 0 {
		fmt.Println("demo data already present, nothing to do")
		return
	}

	tmplRepo := pginfra.NewTemplateRepository(pool)
	tmpl := entity.NewTemplate(u.ID, "Coffee Shops", "Track the cafes you visit", "food_drink")
	tmpl.IsPublic = true
	roast := entity.NewComponentDefinition(entity.ComponentPicker, "Roast")
	roast.Options = []string{"light", "medium", "dark"}
	score := entity.NewComponentDefinition(entity.ComponentRating, "Score")
	visited := entity.NewComponentDefinition(entity.ComponentDate, "First visit")
	tmpl.Components = []entity.ComponentDefinition{roast, score, visited}
	if err := tmplRepo.CreateTemplate(ctx, tmpl); err != nil {
		log.Fatalf("failed to seed template: %v", err)
	}

	col := entity.NewCollection(u.ID, "Favorite Cafes")
	col.Description = "Places worth going back to"
	col.TemplateID = tmpl.ID
	col.Tags = []string{"coffee"}
	if err := cols.CreateCollection(ctx, col); err != nil {
		log.Fatalf("failed to seed collection: %v", err)
	}

	items := pginfra.NewItemRepository(pool)
	first := entity.NewItem(u.ID, col.ID, "Corner Roasters")
	first.Description = "Great pour over"
	first.CustomFields = map[string]entity.CustomFieldValue{
		roast.ID: entity.TextValue("light"),
		score.ID: entity.NumberValue(4.5),
	}
	second := entity.NewItem(u.ID, col.ID, "Harbor Espresso")
	second.Favorite = true
	for _, it := range []*entity.Item{first, second} {
		if err := items.CreateItem(ctx, it); err != nil {
			log.Fatalf("failed to seed item %q: %v", it.Name, err)
		}
	}

	n, err := items.GetItemCount(ctx, col.ID)
	if err == nil && n != col.ItemCount {
		col.ItemCount = n
		col.Touch()
		_ = cols.UpdateCollection(ctx, col)
	}

	fmt.Printf("seeded template=%s collection=%s items=%d\n", tmpl.ID, col.ID, n)
}
