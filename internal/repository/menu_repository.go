package repository

import (
	"context"
	"database/sql"

	"github.com/lunabrew/restaurant-backend/internal/model"
)

// MenuRepo manages menu categories and items. The menu is plain CRUD
// owned by the admin panel; the only rule enforced here is that a
// category with items cannot be deleted.
type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

const categoryCols = "id,name,description,icon,sort_order,is_active,created_at,updated_at"

const itemCols = "i.id,i.category_id,c.name,i.name,i.description," +
	"i.price_single_cents,i.price_medium_cents,i.price_large_cents,i.image," +
	"i.is_available,i.is_popular,i.is_vegetarian,i.is_vegan,i.is_gluten_free," +
	"i.sort_order,i.prep_minutes,i.created_at,i.updated_at"

func scanCategory(row interface{ Scan(...any) error }) (model.MenuCategory, error) {
	var c model.MenuCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.SortOrder,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanItem(row interface{ Scan(...any) error }) (model.MenuItem, error) {
	var (
		it     model.MenuItem
		single sql.NullInt64
		medium sql.NullInt64
		large  sql.NullInt64
		image  sql.NullString
	)
	err := row.Scan(&it.ID, &it.CategoryID, &it.CategoryName, &it.Name, &it.Description,
		&single, &medium, &large, &image,
		&it.IsAvailable, &it.IsPopular, &it.IsVegetarian, &it.IsVegan, &it.IsGlutenFree,
		&it.SortOrder, &it.PrepMinutes, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return model.MenuItem{}, err
	}
	toPrice := func(v sql.NullInt64) *uint32 {
		if !v.Valid {
			return nil
		}
		p := uint32(v.Int64)
		return &p
	}
	it.PriceSingleCents = toPrice(single)
	it.PriceMediumCents = toPrice(medium)
	it.PriceLargeCents = toPrice(large)
	it.Image = image.String
	return it, nil
}

// ---- Categories ----

// ListCategories returns categories in display order; when activeOnly is
// set, hidden categories are excluded.
func (r *MenuRepo) ListCategories(ctx context.Context, activeOnly bool) ([]model.MenuCategory, error) {
	query := "SELECT " + categoryCols + " FROM menu_categories"
	if activeOnly {
		query += " WHERE is_active=1"
	}
	query += " ORDER BY sort_order, name"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.MenuCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateCategory inserts a category and populates the generated ID.
func (r *MenuRepo) CreateCategory(ctx context.Context, c *model.MenuCategory) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO menu_categories (name, description, icon, sort_order, is_active) VALUES (?,?,?,?,?)",
		c.Name, c.Description, c.Icon, c.SortOrder, c.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// UpdateCategory overwrites a category. Returns sql.ErrNoRows when absent.
func (r *MenuRepo) UpdateCategory(ctx context.Context, c model.MenuCategory) error {
	var one int
	if err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM menu_categories WHERE id=? LIMIT 1", c.ID).Scan(&one); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE menu_categories SET name=?, description=?, icon=?, sort_order=?, is_active=? WHERE id=?",
		c.Name, c.Description, c.Icon, c.SortOrder, c.IsActive, c.ID)
	return err
}

// DeleteCategory removes an empty category. ErrCategoryNotEmpty when
// items still reference it, sql.ErrNoRows when absent.
func (r *MenuRepo) DeleteCategory(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM menu_items WHERE category_id=?", id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_categories WHERE id=?", id)
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

// ---- Items ----

// ListItemsByCategory returns a category's items in display order; when
// availableOnly is set, unavailable items are excluded.
func (r *MenuRepo) ListItemsByCategory(ctx context.Context, categoryID uint64, availableOnly bool) ([]model.MenuItem, error) {
	query := "SELECT " + itemCols + " FROM menu_items i JOIN menu_categories c ON c.id=i.category_id WHERE i.category_id=?"
	if availableOnly {
		query += " AND i.is_available=1"
	}
	query += " ORDER BY i.sort_order, i.name"
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListPopular returns up to limit available items flagged popular.
func (r *MenuRepo) ListPopular(ctx context.Context, limit int) ([]model.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemCols+" FROM menu_items i JOIN menu_categories c ON c.id=i.category_id"+
			" WHERE i.is_popular=1 AND i.is_available=1 ORDER BY i.sort_order LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

// ItemFilter narrows the admin item listing.
type ItemFilter struct {
	CategoryID uint64 // 0 = any
	Search     string // matched against name and description
	Limit      int
	Offset     int
}

// SearchItems returns a page of items matching f plus the total count.
func (r *MenuRepo) SearchItems(ctx context.Context, f ItemFilter) ([]model.MenuItem, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if f.CategoryID > 0 {
		where += " AND i.category_id=?"
		args = append(args, f.CategoryID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		where += " AND (LOWER(i.name) LIKE LOWER(?) OR LOWER(i.description) LIKE LOWER(?))"
		args = append(args, like, like)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM menu_items i"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemCols+" FROM menu_items i JOIN menu_categories c ON c.id=i.category_id"+where+
			" ORDER BY i.sort_order, i.name LIMIT ? OFFSET ?",
		append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// CreateItem inserts a menu item and populates the generated ID.
func (r *MenuRepo) CreateItem(ctx context.Context, it *model.MenuItem) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_items
		   (category_id, name, description, price_single_cents, price_medium_cents, price_large_cents,
		    image, is_available, is_popular, is_vegetarian, is_vegan, is_gluten_free, sort_order, prep_minutes)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		it.CategoryID, it.Name, it.Description, it.PriceSingleCents, it.PriceMediumCents, it.PriceLargeCents,
		nullStr(it.Image), it.IsAvailable, it.IsPopular, it.IsVegetarian, it.IsVegan, it.IsGlutenFree,
		it.SortOrder, it.PrepMinutes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// GetItemByID fetches a single item with its category name.
func (r *MenuRepo) GetItemByID(ctx context.Context, id uint64) (model.MenuItem, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemCols+" FROM menu_items i JOIN menu_categories c ON c.id=i.category_id WHERE i.id=? LIMIT 1", id)
	return scanItem(row)
}

// SetItemAvailability flips the is_available flag. Returns sql.ErrNoRows
// when no row matched.
func (r *MenuRepo) SetItemAvailability(ctx context.Context, id uint64, available bool) error {
	return r.setItemFlag(ctx, "is_available", id, available)
}

// SetItemPopular flips the is_popular flag. Returns sql.ErrNoRows when no
// row matched.
func (r *MenuRepo) SetItemPopular(ctx context.Context, id uint64, popular bool) error {
	return r.setItemFlag(ctx, "is_popular", id, popular)
}

func (r *MenuRepo) setItemFlag(ctx context.Context, column string, id uint64, v bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE menu_items SET "+column+"=? WHERE id=?", v, id)
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

// UpdateItem overwrites a menu item. Returns sql.ErrNoRows when absent.
func (r *MenuRepo) UpdateItem(ctx context.Context, it model.MenuItem) error {
	var one int
	if err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM menu_items WHERE id=? LIMIT 1", it.ID).Scan(&one); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET category_id=?, name=?, description=?,
		   price_single_cents=?, price_medium_cents=?, price_large_cents=?, image=?,
		   is_available=?, is_popular=?, is_vegetarian=?, is_vegan=?, is_gluten_free=?,
		   sort_order=?, prep_minutes=? WHERE id=?`,
		it.CategoryID, it.Name, it.Description,
		it.PriceSingleCents, it.PriceMediumCents, it.PriceLargeCents, nullStr(it.Image),
		it.IsAvailable, it.IsPopular, it.IsVegetarian, it.IsVegan, it.IsGlutenFree,
		it.SortOrder, it.PrepMinutes, it.ID)
	return err
}

// DeleteItem removes a menu item. Returns sql.ErrNoRows when absent.
func (r *MenuRepo) DeleteItem(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id=?", id)
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

// CountStats returns the menu counters for the dashboard: total items,
// available items, popular items, active categories.
func (r *MenuRepo) CountStats(ctx context.Context) (total, available, popular, categories int, err error) {
	steps := []struct {
		dst   *int
		query string
	}{
		{&total, "SELECT COUNT(*) FROM menu_items"},
		{&available, "SELECT COUNT(*) FROM menu_items WHERE is_available=1"},
		{&popular, "SELECT COUNT(*) FROM menu_items WHERE is_popular=1"},
		{&categories, "SELECT COUNT(*) FROM menu_categories WHERE is_active=1"},
	}
	for _, st := range steps {
		if err = r.db.QueryRowContext(ctx, st.query).Scan(st.dst); err != nil {
			return
		}
	}
	return
}

func collectItems(rows *sql.Rows) ([]model.MenuItem, error) {
	out := []model.MenuItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
