package model

import "time"

// ActivityReport summarises marketplace activity over a time window
type ActivityReport struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Since       time.Time `json:"since"`

	TotalUsers    int64 `json:"totalUsers"`
	NewUsers      int64 `json:"newUsers"`
	TotalProducts int64 `json:"totalProducts"`
	NewProducts   int64 `json:"newProducts"`
	NewIntents    int64 `json:"newIntents"`
	NewPosts      int64 `json:"newPosts"`

	TopProducts []ProductInterest `json:"topProducts"`
}

// ProductInterest counts purchase intents for one product
type ProductInterest struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Intents   int64  `json:"intents"`
}
