package repository

import (
	"context"
	"database/sql"

	"github.com/lunabrew/restaurant-backend/internal/model"
)

// ReviewRepo persists customer reviews. Externally sourced rows carry a
// google_review_id protected by a unique index, which is what makes the
// Google sync idempotent under concurrent runs.
type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

const reviewCols = "id,google_review_id,author_name,text,rating,source,is_visible,review_date,created_at,updated_at"

func scanReview(row interface{ Scan(...any) error }) (model.Review, error) {
	var (
		rv  model.Review
		gid sql.NullString
	)
	err := row.Scan(&rv.ID, &gid, &rv.AuthorName, &rv.Text, &rv.Rating, &rv.Source,
		&rv.IsVisible, &rv.ReviewDate, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return model.Review{}, err
	}
	if gid.Valid {
		rv.GoogleReviewID = &gid.String
	}
	return rv, nil
}

// Create inserts a review and populates the generated ID. A duplicate
// google_review_id yields ErrDuplicateReview.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (google_review_id, author_name, text, rating, source, is_visible, review_date)
		 VALUES (?,?,?,?,?,?,?)`,
		rv.GoogleReviewID, rv.AuthorName, rv.Text, rv.Rating, rv.Source, rv.IsVisible, rv.ReviewDate)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateReview
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// ExistsByGoogleID reports whether a review with the given external id is
// already stored.
func (r *ReviewRepo) ExistsByGoogleID(ctx context.Context, googleID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM reviews WHERE google_review_id=? LIMIT 1", googleID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID fetches a review by id. Returns sql.ErrNoRows when absent.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (model.Review, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reviewCols+" FROM reviews WHERE id=? LIMIT 1", id)
	return scanReview(row)
}

// ListVisible returns the newest visible reviews with rating >= minRating,
// the payload of the public reviews endpoint.
func (r *ReviewRepo) ListVisible(ctx context.Context, minRating, limit int) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reviewCols+" FROM reviews WHERE is_visible=1 AND rating>=? ORDER BY created_at DESC LIMIT ?",
		minRating, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

// ReviewFilter narrows the admin review listing.
type ReviewFilter struct {
	Rating int    // 0 = any
	Source string // "" = any
	Search string // matched against author name and text
	Limit  int
	Offset int
}

// Search returns a page of reviews matching f plus the total match count,
// newest first.
func (r *ReviewRepo) Search(ctx context.Context, f ReviewFilter) ([]model.Review, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if f.Rating > 0 {
		where += " AND rating=?"
		args = append(args, f.Rating)
	}
	if f.Source != "" {
		where += " AND source=?"
		args = append(args, f.Source)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		where += " AND (LOWER(author_name) LIKE LOWER(?) OR LOWER(text) LIKE LOWER(?))"
		args = append(args, like, like)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reviews"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reviewCols+" FROM reviews"+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out, err := collectReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// SetVisibility flips the public visibility flag. Returns sql.ErrNoRows
// when no row matched.
func (r *ReviewRepo) SetVisibility(ctx context.Context, id uint64, visible bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET is_visible=? WHERE id=?", visible, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a review. Returns sql.ErrNoRows when no row matched.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountStats aggregates the counters shown on the admin reviews page.
func (r *ReviewRepo) CountStats(ctx context.Context) (model.ReviewStats, error) {
	var s model.ReviewStats
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*), AVG(rating) FROM reviews").Scan(&s.Total, &avg); err != nil {
		return model.ReviewStats{}, err
	}
	s.AverageRating = avg.Float64
	steps := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&s.Google, "SELECT COUNT(*) FROM reviews WHERE source=?", []any{model.ReviewSourceGoogle}},
		{&s.Manual, "SELECT COUNT(*) FROM reviews WHERE source=?", []any{model.ReviewSourceManual}},
		{&s.Visible, "SELECT COUNT(*) FROM reviews WHERE is_visible=1", nil},
	}
	for _, st := range steps {
		if err := r.db.QueryRowContext(ctx, st.query, st.args...).Scan(st.dst); err != nil {
			return model.ReviewStats{}, err
		}
	}
	return s, nil
}

func collectReviews(rows *sql.Rows) ([]model.Review, error) {
	out := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
