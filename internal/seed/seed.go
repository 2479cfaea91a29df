// Package seed loads the demo admin account and the Belgaum sample
// listings into an empty (or reset) database.
package seed

import (
	"context"
	"fmt"
	"log"

	"primespace/internal/database"
	"primespace/internal/model"
	"primespace/internal/service"
	"primespace/internal/store"
)

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@primespace.com"
	AdminPassword = "admin123"
)

// SampleProperties are the demo listings, all around Belgaum.
var SampleProperties = []model.Property{
	{
		Title:       "Luxury Villa in Tilakwadi",
		Location:    "Tilakwadi, Belgaum",
		Price:       8500000,
		Description: "Stunning 4BHK villa with modern amenities, garden, and car parking. Located in the heart of Tilakwadi with excellent connectivity.",
		Type:        model.TypeSale,
		Status:      model.StatusAvailable,
		Bedrooms:    4,
		Bathrooms:   3,
		Area:        2400,
		Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800",
	},
	{
		Title:       "Modern Apartment in Shahapur",
		Location:    "Shahapur, Belgaum",
		Price:       15000,
		Description: "Well-furnished 2BHK apartment ideal for families. Close to schools, hospitals, and markets.",
		Type:        model.TypeRent,
		Status:      model.StatusAvailable,
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        1100,
		Image:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
	},
	{
		Title:       "Commercial Space in Camp Area",
		Location:    "Camp, Belgaum",
		Price:       12000000,
		Description: "Prime commercial property in the bustling Camp area. Perfect for retail stores or offices.",
		Type:        model.TypeSale,
		Status:      model.StatusAvailable,
		Bedrooms:    0,
		Bathrooms:   2,
		Area:        1800,
		Image:       "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
	},
	{
		Title:       "Cozy 3BHK in Vadgaon",
		Location:    "Vadgaon, Belgaum",
		Price:       4500000,
		Description: "Beautiful 3BHK flat in a gated community with 24/7 security, power backup, and children play area.",
		Type:        model.TypeSale,
		Status:      model.StatusAvailable,
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        1450,
		Image:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
	},
	{
		Title:       "Budget-Friendly Flat in Angol",
		Location:    "Angol, Belgaum",
		Price:       8000,
		Description: "Affordable 1BHK flat suitable for bachelors or small families. Near bus stop and local market.",
		Type:        model.TypeRent,
		Status:      model.StatusAvailable,
		Bedrooms:    1,
		Bathrooms:   1,
		Area:        650,
		Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
	},
	{
		Title:       "Farmhouse in Kangrali",
		Location:    "Kangrali, Belgaum",
		Price:       15000000,
		Description: "Spacious farmhouse with 2 acres of land, fruit orchards, and stunning views of the Western Ghats.",
		Type:        model.TypeSale,
		Status:      model.StatusAvailable,
		Bedrooms:    5,
		Bathrooms:   4,
		Area:        4500,
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
	},
	{
		Title:       "Premium Flat in Goaves",
		Location:    "Goaves, Belgaum",
		Price:       5500000,
		Description: "Newly constructed 2BHK with modern fittings, modular kitchen, and balcony with city view.",
		Type:        model.TypeSale,
		Status:      model.StatusSold,
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        1200,
		Image:       "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
	},
	{
		Title:       "Office Space in Khanapur Road",
		Location:    "Khanapur Road, Belgaum",
		Price:       25000,
		Description: "Ready-to-use office space with AC, conference room, and ample parking. Ideal for startups.",
		Type:        model.TypeRent,
		Status:      model.StatusAvailable,
		Bedrooms:    0,
		Bathrooms:   1,
		Area:        800,
		Image:       "https://images.unsplash.com/photo-1497366811353-6870744d04b2?w=800",
	},
}

// Run clears both tables, then inserts the admin account and the sample
// listings attributed to it.
func Run(ctx context.Context, db database.DB) error {
	if _, err := db.Exec(ctx, `DELETE FROM properties`); err != nil {
		return fmt.Errorf("clear properties: %w", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	hash, err := service.HashPassword(AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin, err := store.CreateUser(ctx, db, &model.User{
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("admin user created: %s / %s", AdminEmail, AdminPassword)

	for _, p := range SampleProperties {
		p.CreatedBy = admin.ID
		if _, err := store.CreateProperty(ctx, db, &p); err != nil {
			return fmt.Errorf("create property %q: %w", p.Title, err)
		}
	}
	log.Printf("%d sample properties added", len(SampleProperties))
	return nil
}
