package model

import "time"

// Review sources. Externally sourced reviews carry a GoogleReviewID;
// manually entered ones do not.
const (
	ReviewSourceGoogle = "google"
	ReviewSourceManual = "manual"
)

// Review is a customer review shown on the public site. Reviews either
// originate from the Google Business profile (GoogleReviewID set, unique)
// or are entered by staff. A given external id maps to at most one stored
// row; the unique index on google_review_id makes the sync idempotent.
//
// Fields:
//  ID             – primary key identifier.
//  GoogleReviewID – external review identifier (nullable, unique when set).
//  AuthorName     – reviewer display name.
//  Text           – review body.
//  Rating         – integer rating 1..5.
//  Source         – "google" or "manual".
//  IsVisible      – whether the review is shown publicly.
//  ReviewDate     – when the review was written at the source.
//  CreatedAt      – creation timestamp of the local row.
//  UpdatedAt      – last update timestamp.
type Review struct {
	ID             uint64    `json:"id"`             // reviews.id
	GoogleReviewID *string   `json:"googleReviewId,omitempty"` // reviews.google_review_id (nullable)
	AuthorName     string    `json:"authorName"`     // reviews.author_name
	Text           string    `json:"text"`           // reviews.text
	Rating         int       `json:"rating"`         // reviews.rating
	Source         string    `json:"source"`         // reviews.source
	IsVisible      bool      `json:"isVisible"`      // reviews.is_visible
	ReviewDate     time.Time `json:"reviewDate"`     // reviews.review_date
	CreatedAt      time.Time `json:"createdAt"`      // reviews.created_at
	UpdatedAt      time.Time `json:"updatedAt"`      // reviews.updated_at
}

// ReviewStats aggregates the counters shown on the admin reviews page.
type ReviewStats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
	Google        int     `json:"google"`
	Manual        int     `json:"manual"`
	Visible       int     `json:"visible"`
}
