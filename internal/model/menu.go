package model

import "time"

// MenuCategory groups menu items on the public menu page.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – category name.
//  Description – optional description shown under the heading.
//  Icon        – optional icon identifier for the frontend.
//  SortOrder   – display position (ascending).
//  IsActive    – inactive categories are hidden from the public menu.
type MenuCategory struct {
	ID          uint64    `json:"id"`          // menu_categories.id
	Name        string    `json:"name"`        // menu_categories.name
	Description string    `json:"description"` // menu_categories.description
	Icon        string    `json:"icon"`        // menu_categories.icon
	SortOrder   int       `json:"order"`       // menu_categories.sort_order
	IsActive    bool      `json:"isActive"`    // menu_categories.is_active
	CreatedAt   time.Time `json:"createdAt"`   // menu_categories.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // menu_categories.updated_at
}

// MenuItem is a single dish or drink. Prices are stored in cents; a nil
// price means that size is not offered. Items with only a single price
// use PriceSingleCents.
type MenuItem struct {
	ID               uint64    `json:"id"`           // menu_items.id
	CategoryID       uint64    `json:"categoryId"`   // menu_items.category_id
	CategoryName     string    `json:"categoryName,omitempty"` // joined from menu_categories.name
	Name             string    `json:"name"`         // menu_items.name
	Description      string    `json:"description"`  // menu_items.description
	PriceSingleCents *uint32   `json:"priceSingleCents,omitempty"` // menu_items.price_single_cents
	PriceMediumCents *uint32   `json:"priceMediumCents,omitempty"` // menu_items.price_medium_cents
	PriceLargeCents  *uint32   `json:"priceLargeCents,omitempty"`  // menu_items.price_large_cents
	Image            string    `json:"image,omitempty"` // menu_items.image (upload path)
	IsAvailable      bool      `json:"isAvailable"`  // menu_items.is_available
	IsPopular        bool      `json:"isPopular"`    // menu_items.is_popular
	IsVegetarian     bool      `json:"isVegetarian"` // menu_items.is_vegetarian
	IsVegan          bool      `json:"isVegan"`      // menu_items.is_vegan
	IsGlutenFree     bool      `json:"isGlutenFree"` // menu_items.is_gluten_free
	SortOrder        int       `json:"order"`        // menu_items.sort_order
	PrepMinutes      int       `json:"preparationTime"` // menu_items.prep_minutes
	CreatedAt        time.Time `json:"createdAt"`    // menu_items.created_at
	UpdatedAt        time.Time `json:"updatedAt"`    // menu_items.updated_at
}

// CategoryWithItems is the public menu payload: an active category plus
// its available items, both in display order.
type CategoryWithItems struct {
	MenuCategory
	Items []MenuItem `json:"items"`
}
