package service

import (
	"context"
	"errors"
	"time"

	"github.com/lunabrew/restaurant-backend/internal/googleapi"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// visibilityThreshold: externally imported reviews are published
// automatically only at this rating or above.
const visibilityThreshold = 4

// ReviewStore is the persistence surface the sync needs. Satisfied by
// *repository.ReviewRepo.
type ReviewStore interface {
	ExistsByGoogleID(ctx context.Context, googleID string) (bool, error)
	Create(ctx context.Context, rv *model.Review) error
}

// ReviewSource fetches the current review set from the external
// platform. Satisfied by *googleapi.Client.
type ReviewSource interface {
	Configured() bool
	ListReviews(ctx context.Context) ([]googleapi.Review, error)
}

// SyncResult reports one sync run.
type SyncResult struct {
	NewReviews   int `json:"newReviews"`
	TotalFetched int `json:"totalReviews"`
}

// ReviewSyncService imports Google reviews idempotently: a review is
// keyed by its external id and imported at most once; existing rows are
// never updated in place.
type ReviewSyncService struct {
	store  ReviewStore
	source ReviewSource
}

func NewReviewSyncService(store ReviewStore, source ReviewSource) *ReviewSyncService {
	return &ReviewSyncService{store: store, source: source}
}

// Sync fetches the external review set and stores every review not seen
// before. Ratings map from the star labels onto 1..5; visibility is
// granted only at rating >= 4; the source's creation timestamp is kept.
// Returns ErrSyncUnavailable when the client is not configured and a
// *SyncError wrapping any transport failure.
func (s *ReviewSyncService) Sync(ctx context.Context) (SyncResult, error) {
	if !s.source.Configured() {
		return SyncResult{}, ErrSyncUnavailable
	}
	fetched, err := s.source.ListReviews(ctx)
	if err != nil {
		return SyncResult{}, &SyncError{Err: err}
	}

	result := SyncResult{TotalFetched: len(fetched)}
	for _, gr := range fetched {
		if gr.ReviewID == "" {
			continue
		}
		exists, err := s.store.ExistsByGoogleID(ctx, gr.ReviewID)
		if err != nil {
			return result, &SyncError{Err: err}
		}
		if exists {
			continue
		}

		rating := googleapi.StarValue(gr.StarRating)
		author := gr.Reviewer.DisplayName
		if author == "" {
			author = "Anonim"
		}
		reviewDate := time.Now().UTC()
		if t, err := time.Parse(time.RFC3339, gr.CreateTime); err == nil {
			reviewDate = t
		}

		id := gr.ReviewID
		rv := model.Review{
			GoogleReviewID: &id,
			AuthorName:     author,
			Text:           gr.Comment,
			Rating:         rating,
			Source:         model.ReviewSourceGoogle,
			IsVisible:      rating >= visibilityThreshold,
			ReviewDate:     reviewDate,
		}
		if err := s.store.Create(ctx, &rv); err != nil {
			// A concurrent sync run may have inserted the same review
			// between the existence check and the insert; the unique
			// index makes that a no-op rather than a failure.
			if errors.Is(err, repository.ErrDuplicateReview) {
				continue
			}
			return result, &SyncError{Err: err}
		}
		result.NewReviews++
	}
	return result, nil
}
