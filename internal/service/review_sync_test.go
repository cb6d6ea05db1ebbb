package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lunabrew/restaurant-backend/internal/googleapi"
	"github.com/lunabrew/restaurant-backend/internal/model"
)

// =============================================================================
// Test: Sync
// =============================================================================

func TestReviewSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("Given fresh reviews When synced Then all are imported with mapped ratings", func(t *testing.T) {
		// Given
		store := NewMockReviewStore()
		source := &MockReviewSource{Ready: true, Reviews: []googleapi.Review{
			{ReviewID: "g-1", Reviewer: googleapi.Reviewer{DisplayName: "Deniz"}, StarRating: googleapi.StarFive, Comment: "harika", CreateTime: "2026-01-05T10:00:00Z"},
			{ReviewID: "g-2", Reviewer: googleapi.Reviewer{DisplayName: "Can"}, StarRating: googleapi.StarTwo, Comment: "idare eder", CreateTime: "2026-01-06T10:00:00Z"},
		}}
		svc := NewReviewSyncService(store, source)

		// When
		res, err := svc.Sync(ctx)

		// Then
		if err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		if res.NewReviews != 2 || res.TotalFetched != 2 {
			t.Errorf("unexpected result %+v", res)
		}
		if got := store.ByGoogleID["g-1"].Rating; got != 5 {
			t.Errorf("expected rating 5 for g-1, got %d", got)
		}
		if got := store.ByGoogleID["g-2"].Rating; got != 2 {
			t.Errorf("expected rating 2 for g-2, got %d", got)
		}
	})

	t.Run("Given an already imported review When synced again Then nothing new is stored", func(t *testing.T) {
		// Given
		store := NewMockReviewStore()
		source := &MockReviewSource{Ready: true, Reviews: []googleapi.Review{
			{ReviewID: "g-1", StarRating: googleapi.StarFour, Comment: "güzel"},
		}}
		svc := NewReviewSyncService(store, source)
		if _, err := svc.Sync(ctx); err != nil {
			t.Fatalf("first Sync failed: %v", err)
		}

		// When
		res, err := svc.Sync(ctx)

		// Then
		if err != nil {
			t.Fatalf("second Sync failed: %v", err)
		}
		if res.NewReviews != 0 {
			t.Errorf("expected 0 new reviews, got %d", res.NewReviews)
		}
		if res.TotalFetched != 1 {
			t.Errorf("expected 1 fetched, got %d", res.TotalFetched)
		}
	})

	t.Run("Given ratings around the threshold When synced Then only four stars and up are visible", func(t *testing.T) {
		// Given
		store := NewMockReviewStore()
		source := &MockReviewSource{Ready: true, Reviews: []googleapi.Review{
			{ReviewID: "hi", StarRating: googleapi.StarFour},
			{ReviewID: "lo", StarRating: googleapi.StarThree},
		}}
		svc := NewReviewSyncService(store, source)

		// When
		if _, err := svc.Sync(ctx); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}

		// Then
		if !store.ByGoogleID["hi"].IsVisible {
			t.Error("expected four star review to be visible")
		}
		if store.ByGoogleID["lo"].IsVisible {
			t.Error("expected three star review to be hidden")
		}
	})

	t.Run("Given a nameless reviewer When synced Then the anonymous fallback is used", func(t *testing.T) {
		// Given
		store := NewMockReviewStore()
		source := &MockReviewSource{Ready: true, Reviews: []googleapi.Review{
			{ReviewID: "g-9", StarRating: googleapi.StarFive},
		}}
		svc := NewReviewSyncService(store, source)

		// When
		if _, err := svc.Sync(ctx); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}

		// Then
		if got := store.ByGoogleID["g-9"].AuthorName; got != "Anonim" {
			t.Errorf("expected author Anonim, got %q", got)
		}
		if got := store.ByGoogleID["g-9"].Source; got != model.ReviewSourceGoogle {
			t.Errorf("expected source google, got %q", got)
		}
	})

	t.Run("Given an unconfigured client When synced Then ErrSyncUnavailable is returned", func(t *testing.T) {
		// Given
		svc := NewReviewSyncService(NewMockReviewStore(), &MockReviewSource{Ready: false})

		// When
		_, err := svc.Sync(ctx)

		// Then
		if !errors.Is(err, ErrSyncUnavailable) {
			t.Fatalf("expected ErrSyncUnavailable, got %v", err)
		}
	})

	t.Run("Given a transport failure When synced Then a SyncError wraps the cause", func(t *testing.T) {
		// Given
		svc := NewReviewSyncService(NewMockReviewStore(), &MockReviewSource{Ready: true, Err: ErrMockSource})

		// When
		_, err := svc.Sync(ctx)

		// Then
		var serr *SyncError
		if !errors.As(err, &serr) {
			t.Fatalf("expected *SyncError, got %v", err)
		}
		if !errors.Is(err, ErrMockSource) {
			t.Errorf("expected wrapped cause, got %v", serr.Err)
		}
	})
}
