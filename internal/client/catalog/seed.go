package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
)

// SeedProducts returns the demo catalog. Timestamps are staggered so the
// newest/oldest sorts have a deterministic order.
func SeedProducts() []models.Product {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	return []models.Product{
		{
			ID:          "1",
			Title:       "Vintage Leather Jacket",
			Description: "Genuine leather jacket in excellent condition. Perfect for fall weather.",
			Price:       decimal.RequireFromString("89.99"),
			Condition:   models.ConditionGood,
			Category:    "Fashion",
			SellerID:    "seller1",
			SellerName:  "Vintage Finds",
			Images:      []string{"https://images.unsplash.com/photo-1551028719-00167b16eac5"},
			Properties: map[string]string{
				"Size":     "Medium",
				"Color":    "Brown",
				"Material": "Genuine Leather",
				"Brand":    "Levi's",
				"Year":     "1980s",
			},
			CreatedAt: base,
		},
		{
			ID:          "2",
			Title:       "Mechanical Keyboard",
			Description: "High-quality mechanical keyboard with RGB lighting and Cherry MX switches.",
			Price:       decimal.RequireFromString("129.99"),
			Condition:   models.ConditionLikeNew,
			Category:    "Electronics",
			SellerID:    "seller2",
			SellerName:  "Tech Gear",
			Images:      []string{"https://images.unsplash.com/photo-1618384887929-16ec33fab9ef"},
			Properties: map[string]string{
				"Switch Type":  "Cherry MX Brown",
				"Layout":       "Full Size",
				"Backlight":    "RGB",
				"Connectivity": "USB-C",
				"Brand":        "Ducky",
			},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "Ceramic Planter Set",
			Description: "Set of 3 handmade ceramic planters. Perfect for succulents and small plants.",
			Price:       decimal.RequireFromString("45.99"),
			Condition:   models.ConditionNew,
			Category:    "Home & Garden",
			SellerID:    "seller3",
			SellerName:  "Green Thumb",
			Images:      []string{"https://images.unsplash.com/photo-1485955900006-10f4d324d411"},
			Properties: map[string]string{
				"Material":       "Ceramic",
				"Size":           "Small, Medium, Large",
				"Color":          "White",
				"Drainage Holes": "Yes",
				"Handmade":       "Yes",
			},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:          "4",
			Title:       "Mountain Bike",
			Description: "Sturdy mountain bike with 27-speed shifter and hydraulic brakes.",
			Price:       decimal.RequireFromString("349.99"),
			Condition:   models.ConditionGood,
			Category:    "Sports & Outdoors",
			SellerID:    "seller4",
			SellerName:  "Outdoor Adventures",
			Images:      []string{"https://images.unsplash.com/photo-1511994298241-608e28f14fde"},
			Properties: map[string]string{
				"Frame":      "Aluminum",
				"Wheel Size": "27.5\"",
				"Speeds":     "27",
				"Brake Type": "Hydraulic Disc",
				"Suspension": "Front",
				"Brand":      "Trek",
			},
			CreatedAt: base.Add(72 * time.Hour),
		},
		{
			ID:          "5",
			Title:       "Vintage Record Player",
			Description: "Beautiful vintage record player from the 1970s in working condition.",
			Price:       decimal.RequireFromString("179.99"),
			Condition:   models.ConditionFair,
			Category:    "Electronics",
			SellerID:    "seller1",
			SellerName:  "Vintage Finds",
			Images:      []string{"https://images.unsplash.com/photo-1542208998-f6dbbb22d989"},
			Properties: map[string]string{
				"Era":               "1970s",
				"Brand":             "Sony",
				"Working Condition": "Yes",
				"Connectivity":      "RCA",
				"Includes":          "2 speakers",
				"Color":             "Wood grain",
			},
			CreatedAt: base.Add(96 * time.Hour),
		},
		{
			ID:          "6",
			Title:       "Designer Watch",
			Description: "Elegant designer watch with leather band and stainless steel case.",
			Price:       decimal.RequireFromString("225.00"),
			Condition:   models.ConditionLikeNew,
			Category:    "Jewelry",
			SellerID:    "seller5",
			SellerName:  "Luxe Accessories",
			Images:      []string{"https://images.unsplash.com/photo-1547996160-81dfa63595aa"},
			Properties: map[string]string{
				"Brand":           "Fossil",
				"Material":        "Stainless Steel",
				"Band":            "Genuine Leather",
				"Movement":        "Automatic",
				"Water Resistant": "Yes",
				"Color":           "Black/Silver",
			},
			CreatedAt: base.Add(120 * time.Hour),
		},
	}
}
