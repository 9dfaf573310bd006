// File: cmd/seed/main.go
// 建立預設帳號與初始內容，冪等：已存在的資料不重複建立
package main

import (
	"context"
	"log"
	"os"

	"dracarys/internal/config"
	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/repository"
	"dracarys/internal/service"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	exitFunc        = os.Exit
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedUsers(ctx context.Context, db database.DB) error {
	defaults := []struct {
		email    string
		name     string
		password string
		role     model.UserRole
	}{
		{"admin@dracarys.com", "Admin User", "admin123", model.RoleSuperUser},
		{"user@dracarys.com", "Test User", "user123", model.RoleClient},
	}

	for _, d := range defaults {
		if _, err := repository.GetUserByEmail(ctx, db, d.email); err == nil {
			log.Printf("使用者已存在: %s", d.email)
			continue
		}
		hash, err := service.HashPassword(d.password)
		if err != nil {
			return err
		}
		u := &model.User{
			Email:        d.email,
			Name:         d.name,
			PasswordHash: hash,
			Role:         d.role,
			IsActive:     true,
		}
		if _, err := repository.CreateUser(ctx, db, u); err != nil {
			return err
		}
		log.Printf("建立使用者: %s (%s)", d.email, d.role)
	}
	return nil
}

func seedContent(ctx context.Context, db database.DB) error {
	defaults := []model.Content{
		{Page: "home", Section: "hero", Title: strPtr("Welcome to Dracarys"), Body: strPtr("Experience the future of AI-powered web applications with our cutting-edge platform."), OrderIndex: 1},
		{Page: "home", Section: "features", Title: strPtr("Why Choose Dracarys?"), Body: strPtr("Our platform combines cutting-edge technology with user-friendly design to deliver exceptional experiences."), OrderIndex: 2},
		{Page: "about", Section: "mission", Title: strPtr("Our Mission"), Body: strPtr("We believe that artificial intelligence should be accessible to everyone."), OrderIndex: 1},
		{Page: "about", Section: "values", Title: strPtr("Our Values"), Body: strPtr("Innovation, user experience, security and privacy by design, continuous learning."), OrderIndex: 2},
		{Page: "contact", Section: "info", Title: strPtr("Get in Touch"), Body: strPtr("Questions about the platform? Reach out and we will get back to you."), OrderIndex: 1},
	}

	for _, d := range defaults {
		existing, err := repository.ListContentByPage(ctx, db, d.Page)
		if err != nil {
			return err
		}
		found := false
		for _, e := range existing {
			if e.Section == d.Section {
				found = true
				break
			}
		}
		if found {
			log.Printf("內容已存在: %s/%s", d.Page, d.Section)
			continue
		}
		ct := d
		if _, err := repository.CreateContent(ctx, db, &ct); err != nil {
			return err
		}
		log.Printf("建立內容: %s/%s", d.Page, d.Section)
	}
	return nil
}

func seedProducts(ctx context.Context, db database.DB) error {
	existing, err := repository.ListProducts(ctx, db, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("商品已存在，略過")
		return nil
	}

	defaults := []model.Product{
		{Name: "Dracarys Starter", Description: strPtr("Entry plan for individuals."), Price: intPtr(0), Category: "subscription", Features: strPtr(`["1 project","community support"]`)},
		{Name: "Dracarys Pro", Description: strPtr("Full platform access for teams."), Price: intPtr(9900), Category: "subscription", Features: strPtr(`["unlimited projects","priority support","AI assistant"]`)},
	}
	for _, d := range defaults {
		p := d
		if _, err := repository.CreateProduct(ctx, db, &p); err != nil {
			return err
		}
		log.Printf("建立商品: %s", d.Name)
	}
	return nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}

	ctx := context.Background()
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	if err := seedContent(ctx, db); err != nil {
		return err
	}
	return seedProducts(ctx, db)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
