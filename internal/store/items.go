package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/erazemk/track/internal/model"
)

// LoadItems returns every stored item in insertion order.
func LoadItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, purchase_date, price, category, tags, status, sold_price, notes
		 FROM items ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		var tags string
		if err := rows.Scan(&it.ID, &it.Name, &it.PurchaseDate, &it.Price, &it.Category, &tags, &it.Status, &it.SoldPrice, &it.Notes); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &it.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags of item %d: %w", it.ID, err)
		}
		if it.Tags == nil {
			it.Tags = []string{}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaveItems replaces the stored collection with items. Rows of items that
// are no longer present are deleted; photos of kept items are preserved.
func SaveItems(ctx context.Context, db *sql.DB, items []model.Item) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stale, err := storedIDs(ctx, tx)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (id, position, name, purchase_date, price, category, tags, status, sold_price, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		     position = excluded.position,
		     name = excluded.name,
		     purchase_date = excluded.purchase_date,
		     price = excluded.price,
		     category = excluded.category,
		     tags = excluded.tags,
		     status = excluded.status,
		     sold_price = excluded.sold_price,
		     notes = excluded.notes`,
	)
	if err != nil {
		return fmt.Errorf("preparing item upsert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("encoding tags of item %d: %w", it.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			it.ID, i, it.Name, it.PurchaseDate, it.Price.String(), it.Category,
			string(encoded), string(it.Status), it.SoldPrice.String(), it.Notes,
		); err != nil {
			return fmt.Errorf("saving item %d: %w", it.ID, err)
		}
		delete(stale, it.ID)
	}

	for id := range stale {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting item %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}
	return nil
}

func storedIDs(ctx context.Context, tx *sql.Tx) (map[int64]bool, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM items`)
	if err != nil {
		return nil, fmt.Errorf("listing item ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning item id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// SetItemImage sets an item's photo. It returns false if the item is not stored.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return false, fmt.Errorf("setting item image: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("setting item image: %w", err)
	}
	return n > 0, nil
}

// GetItemImage returns an item's photo and MIME type, or nil if it has none.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

// ItemHasImage reports whether the item with the given ID has a photo. An
// unknown ID reports false.
func ItemHasImage(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var has bool
	err := db.QueryRowContext(ctx, `SELECT image IS NOT NULL FROM items WHERE id = ?`, id).Scan(&has)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking item image: %w", err)
	}
	return has, nil
}

// ItemsWithImages returns the IDs of items that have a photo.
func ItemsWithImages(ctx context.Context, db *sql.DB) (map[int64]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT id FROM items WHERE image IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("listing item images: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning item id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
