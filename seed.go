package main

import (
	"log"
	"time"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
)

// seedDemoData populates the catalog with a small demo dataset. Duplicate
// names on reruns are skipped.
func seedDemoData(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	promotionRepo repositories.PromotionRepository,
) {
	categories := []models.Category{
		{Name: "Fruits & Vegetables", ImageURL: "https://example.com/img/fruits-vegetables.jpg"},
		{Name: "Dairy & Eggs", ImageURL: "https://example.com/img/dairy-eggs.jpg"},
		{Name: "Bakery", ImageURL: "https://example.com/img/bakery.jpg"},
		{Name: "Beverages", ImageURL: "https://example.com/img/beverages.jpg"},
	}
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			if err == repositories.ErrDuplicate {
				continue
			}
			log.Printf("Error seeding category %s: %v", categories[i].Name, err)
			continue
		}
		log.Printf("Seeded category: %s", categories[i].Name)
	}

	products := []models.Product{
		{
			Name:        "Organic Bananas",
			Description: "Bunch of ripe organic bananas, roughly 1kg.",
			Price:       2.49,
			ImageURL:    "https://example.com/img/bananas.jpg",
			Category:    "Fruits & Vegetables",
			Stock:       120,
			Tags:        []string{"organic", "fruit"},
		},
		{
			Name:        "Whole Milk 1L",
			Description: "Fresh whole milk, pasteurized, 3.5% fat.",
			Price:       1.89,
			ImageURL:    "https://example.com/img/milk.jpg",
			Category:    "Dairy & Eggs",
			Stock:       80,
			Tags:        []string{"dairy", "fresh"},
		},
		{
			Name:        "Sourdough Loaf",
			Description: "Stone-baked sourdough loaf, baked daily.",
			Price:       4.50,
			ImageURL:    "https://example.com/img/sourdough.jpg",
			Category:    "Bakery",
			Stock:       30,
			Tags:        []string{"bread", "fresh"},
		},
		{
			Name:        "Orange Juice 1L",
			Description: "Cold-pressed orange juice, no added sugar.",
			Price:       3.20,
			ImageURL:    "https://example.com/img/orange-juice.jpg",
			Category:    "Beverages",
			Stock:       60,
			Tags:        []string{"juice", "sale"},
		},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
			continue
		}
		log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
	}

	validUntil := time.Now().AddDate(0, 1, 0)
	promotions := []models.Promotion{
		{
			Title:            "Fresh Week",
			Description:      "Up to 20% off selected fruit and vegetables.",
			ShortDescription: "20% off fresh produce",
			ImageURL:         "https://example.com/img/fresh-week.jpg",
			Type:             models.PromotionTypeBanner,
			DiscountCode:     "FRESH20",
			ValidUntil:       &validUntil,
		},
		{
			Title:            "First Order",
			Description:      "Free delivery on your first order.",
			ShortDescription: "Free first delivery",
			ImageURL:         "https://example.com/img/first-order.jpg",
			Type:             models.PromotionTypeCard,
			DiscountCode:     "WELCOME",
		},
	}
	for i := range promotions {
		if err := promotionRepo.Create(&promotions[i]); err != nil {
			log.Printf("Error seeding promotion %s: %v", promotions[i].Title, err)
			continue
		}
		log.Printf("Seeded promotion: %s", promotions[i].Title)
	}
}
