// Package app owns the application state: the record store, kept in sync
// with the database after every mutation.
package app

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/erazemk/track/internal/csvcodec"
	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/i18n"
	"github.com/erazemk/track/internal/imaging"
	"github.com/erazemk/track/internal/model"
	"github.com/erazemk/track/internal/query"
	"github.com/erazemk/track/internal/records"
	"github.com/erazemk/track/internal/store"
)

var (
	// ErrNotFound is returned for operations on an unknown item.
	ErrNotFound = errors.New("item not found")
	// ErrNoData is returned when exporting an empty collection.
	ErrNoData = errors.New("no items to export")
	// ErrNoValidRows is returned when an import file has no acceptable row.
	ErrNoValidRows = errors.New("no valid rows to import")
)

// App serializes access to the record store and persists it.
type App struct {
	mu      sync.Mutex
	db      *sql.DB
	records *records.Store
	now     func() time.Time
}

// Open loads the stored items into a new App.
func Open(ctx context.Context, db *sql.DB) (*App, error) {
	items, err := store.LoadItems(ctx, db)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded items", "count", len(items))
	return &App{db: db, records: records.New(items), now: time.Now}, nil
}

// SetClock replaces the time source. Used by tests.
func (a *App) SetClock(now func() time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.now = now
	a.records.SetClock(now)
}

// Today is the reference date for derived values and validation.
func (a *App) Today() date.Date {
	a.mu.Lock()
	defer a.mu.Unlock()
	return date.Of(a.now())
}

// Items returns all items in insertion order.
func (a *App) Items() []model.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.records.List()
}

// Item returns the item with the given ID.
func (a *App) Item(id int64) (model.Item, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	it, ok := a.records.Get(id)
	if !ok {
		return model.Item{}, ErrNotFound
	}
	return it, nil
}

// Create validates a manually entered item, stores it under a fresh ID
// and persists the collection.
func (a *App) Create(ctx context.Context, it model.Item) (model.Item, error) {
	it.Normalize()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := it.Validate(date.Of(a.now())); err != nil {
		return model.Item{}, err
	}

	prev := a.records.List()
	it = a.records.Add(it)
	if err := a.persist(ctx, prev); err != nil {
		return model.Item{}, err
	}
	slog.Info("item created", "id", it.ID, "item", it.Name)
	return it, nil
}

// Update merges patch into the item with the given ID. The result must pass
// the same validation as a new item.
func (a *App) Update(ctx context.Context, id int64, patch model.Patch) (model.Item, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, ok := a.records.Get(id)
	if !ok {
		return model.Item{}, ErrNotFound
	}
	next := patch.Apply(current)
	next.Normalize()
	if err := next.Validate(date.Of(a.now())); err != nil {
		return model.Item{}, err
	}

	prev := a.records.List()
	it, _ := a.records.Update(id, model.Replace(next))
	if err := a.persist(ctx, prev); err != nil {
		return model.Item{}, err
	}
	slog.Info("item updated", "id", it.ID, "item", it.Name)
	return it, nil
}

// Delete removes the item with the given ID. Deleting an unknown item is a no-op.
func (a *App) Delete(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.records.List()
	if !a.records.Remove(id) {
		return nil
	}
	if err := a.persist(ctx, prev); err != nil {
		return err
	}
	slog.Info("item deleted", "id", id)
	return nil
}

// List returns the items matching c, ordered by o.
func (a *App) List(c query.Criteria, o query.Order) []model.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return query.Sort(query.Filter(a.records.List(), c), o, date.Of(a.now()))
}

// Search returns the items containing q in insertion order.
func (a *App) Search(q string) []model.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return query.Search(a.records.List(), q)
}

// Categories returns the distinct categories in first-use order.
func (a *App) Categories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.records.Categories()
}

// Statistics summarizes the whole collection as of today.
func (a *App) Statistics() derive.Statistics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return derive.Compute(a.records.List(), date.Of(a.now()))
}

// ImportReport describes a finished import.
type ImportReport struct {
	Imported []model.Item
	Errors   []csvcodec.RowError
}

// Import reads a CSV file in either language and appends its valid rows.
// Nothing is committed when the file has no valid row.
func (a *App) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := csvcodec.Decode(r, csvcodec.Options{
		Labels: i18n.AllCSVLabels(),
		BaseID: a.records.NextID(),
	})
	if err != nil {
		return nil, err
	}
	for _, rowErr := range res.Errors {
		slog.Warn("skipping import row", "row", rowErr.Row, "error", rowErr.Err)
	}
	if len(res.Items) == 0 {
		return &ImportReport{Imported: []model.Item{}, Errors: res.Errors}, ErrNoValidRows
	}

	prev := a.records.List()
	added := a.records.Append(res.Items...)
	if err := a.persist(ctx, prev); err != nil {
		return nil, err
	}
	slog.Info("items imported", "imported", len(added), "skipped", len(res.Errors))
	return &ImportReport{Imported: added, Errors: res.Errors}, nil
}

// Export writes the whole collection as CSV with lang's headers and labels.
func (a *App) Export(w io.Writer, lang string) error {
	items := a.Items()
	if len(items) == 0 {
		return ErrNoData
	}
	// Buffer so a failed encode never leaves a partial file behind.
	var buf bytes.Buffer
	if err := csvcodec.Encode(&buf, items, i18n.CSVLabels(lang)); err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ExportFilename is the suggested name of a file exported on d.
func ExportFilename(d date.Date) string {
	return "track_" + d.String() + ".csv"
}

// Preferences are the user's display settings.
type Preferences struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
}

// Preferences returns the stored preferences. An unset language is returned
// as "" so callers can fall back to the browser's choice.
func (a *App) Preferences(ctx context.Context) (Preferences, error) {
	lang, err := store.GetSetting(ctx, a.db, store.SettingLanguage)
	if err != nil {
		return Preferences{}, err
	}
	cur, err := store.GetSetting(ctx, a.db, store.SettingCurrency)
	if err != nil {
		return Preferences{}, err
	}
	if cur == "" {
		cur = currency.Default
	}
	return Preferences{Language: lang, Currency: cur}, nil
}

// Language returns the preferred language, or the best match for an
// Accept-Language header when none is stored.
func (a *App) Language(ctx context.Context, acceptLanguage string) string {
	p, err := a.Preferences(ctx)
	if err != nil {
		slog.Warn("failed to read preferences", "error", err)
	}
	if i18n.Supported(p.Language) {
		return p.Language
	}
	return i18n.Match(acceptLanguage)
}

// ErrInvalidPreference is returned for an unsupported language or currency.
var ErrInvalidPreference = errors.New("invalid preference")

// SetPreferences stores the non-empty fields of p.
func (a *App) SetPreferences(ctx context.Context, p Preferences) error {
	if p.Language != "" {
		if !i18n.Supported(p.Language) {
			return fmt.Errorf("%w: language %q", ErrInvalidPreference, p.Language)
		}
		if err := store.SetSetting(ctx, a.db, store.SettingLanguage, p.Language); err != nil {
			return err
		}
	}
	if p.Currency != "" {
		if !currency.Valid(p.Currency) {
			return fmt.Errorf("%w: currency %q", ErrInvalidPreference, p.Currency)
		}
		if err := store.SetSetting(ctx, a.db, store.SettingCurrency, p.Currency); err != nil {
			return err
		}
	}
	return nil
}

// SetImage normalizes and stores a photo for the item with the given ID.
func (a *App) SetImage(ctx context.Context, id int64, r io.Reader) error {
	photo, err := imaging.Normalize(r)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.records.Get(id); !ok {
		return ErrNotFound
	}
	ok, err := store.SetItemImage(ctx, a.db, id, photo.Data, photo.MIME)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	slog.Info("item photo stored", "id", id, "bytes", len(photo.Data))
	return nil
}

// Image returns the photo of the item with the given ID, or ErrNotFound if
// the item has none.
func (a *App) Image(ctx context.Context, id int64) ([]byte, string, error) {
	data, mime, err := store.GetItemImage(ctx, a.db, id)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return nil, "", ErrNotFound
	}
	return data, mime, nil
}

// HasImage reports whether the item has a photo.
func (a *App) HasImage(ctx context.Context, id int64) (bool, error) {
	return store.ItemHasImage(ctx, a.db, id)
}

// HasImages returns the IDs of items with a photo.
func (a *App) HasImages(ctx context.Context) (map[int64]bool, error) {
	return store.ItemsWithImages(ctx, a.db)
}

// persist writes the collection to the database. On failure the in-memory
// collection is rolled back to prev.
func (a *App) persist(ctx context.Context, prev []model.Item) error {
	err := store.SaveItems(ctx, a.db, a.records.List())
	if err == nil {
		return nil
	}
	slog.Error("failed to save items", "error", err)
	a.records = records.New(prev)
	a.records.SetClock(a.now)
	return err
}
