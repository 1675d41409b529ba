package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/jmoiron/sqlx"
)

// WordsR keeps the collection in two tables: deck_meta holds the strategy
// tag, vocab_items holds one row per item ordered by position.
type WordsR struct {
	db   DBI
	bind int
}

// NewWordsRepository takes the driver name to pick the placeholder style.
func NewWordsRepository(db DBI, driverName string) *WordsR {
	return &WordsR{db: db, bind: sqlx.BindType(driverName)}
}

func (w *WordsR) Load(ctx context.Context) (models.Collection, error) {
	var meta models.DeckMeta
	err := w.db.GetContext(ctx, &meta, `SELECT strategy, max_box FROM deck_meta WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Collection{}, nil
		}
		return models.Collection{}, fmt.Errorf("%w: read deck meta: %v", models.ErrPersistence, err)
	}

	strategy := models.Strategy(meta.Strategy)
	if !strategy.Valid() {
		return models.Collection{}, fmt.Errorf("%w: unknown strategy %q", models.ErrCorruptStore, meta.Strategy)
	}

	query := `
		SELECT position, term, translation, theme, success_count, attempt_count, box_number, next_review
		FROM vocab_items
		ORDER BY position
	`
	rows := make([]models.VocabRow, 0)
	if err := w.db.SelectContext(ctx, &rows, query); err != nil {
		return models.Collection{}, fmt.Errorf("%w: read items: %v", models.ErrPersistence, err)
	}

	c := models.Collection{
		Strategy: strategy,
		MaxBox:   uint(meta.MaxBox),
		Items:    make([]models.VocabItem, 0, len(rows)),
	}
	for _, r := range rows {
		c.Items = append(c.Items, toItem(r))
	}
	return c, nil
}

// Save replaces the whole collection inside one transaction.
func (w *WordsR) Save(ctx context.Context, c models.Collection) (err error) {
	tx, err := w.db.BeginTxI(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", models.ErrPersistence, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM vocab_items`); err != nil {
		return fmt.Errorf("%w: clear items: %v", models.ErrPersistence, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM deck_meta`); err != nil {
		return fmt.Errorf("%w: clear meta: %v", models.ErrPersistence, err)
	}

	metaQuery := sqlx.Rebind(w.bind, `INSERT INTO deck_meta (id, strategy, max_box) VALUES (1, ?, ?)`)
	if _, err = tx.ExecContext(ctx, metaQuery, string(c.Strategy), int64(c.MaxBox)); err != nil {
		return fmt.Errorf("%w: write meta: %v", models.ErrPersistence, err)
	}

	itemQuery := sqlx.Rebind(w.bind, `
		INSERT INTO vocab_items (position, term, translation, theme, success_count, attempt_count, box_number, next_review)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for i, item := range c.Items {
		r := fromItem(i, item)
		_, err = tx.ExecContext(ctx, itemQuery,
			r.Position, r.Term, r.Translation, r.Theme, r.SuccessCount, r.AttemptCount, r.BoxNumber, r.NextReview)
		if err != nil {
			return fmt.Errorf("%w: write item %q: %v", models.ErrPersistence, item.Term, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrPersistence, err)
	}
	return nil
}

func toItem(r models.VocabRow) models.VocabItem {
	item := models.VocabItem{
		Term:        r.Term,
		Translation: r.Translation,
		Theme:       r.Theme,
	}
	if r.AttemptCount.Valid {
		item.Frequency = &models.FrequencyState{
			SuccessCount: uint(r.SuccessCount.Int64),
			AttemptCount: uint(r.AttemptCount.Int64),
		}
	}
	if r.BoxNumber.Valid {
		item.Box = &models.BoxState{
			BoxNumber:  uint(r.BoxNumber.Int64),
			NextReview: r.NextReview.Time.UTC(),
		}
	}
	return item
}

func fromItem(position int, item models.VocabItem) models.VocabRow {
	r := models.VocabRow{
		Position:    position,
		Term:        item.Term,
		Translation: item.Translation,
		Theme:       item.Theme,
	}
	if st := item.Frequency; st != nil {
		r.SuccessCount = sql.NullInt64{Int64: int64(st.SuccessCount), Valid: true}
		r.AttemptCount = sql.NullInt64{Int64: int64(st.AttemptCount), Valid: true}
	}
	if st := item.Box; st != nil {
		r.BoxNumber = sql.NullInt64{Int64: int64(st.BoxNumber), Valid: true}
		r.NextReview = sql.NullTime{Time: st.NextReview.UTC(), Valid: true}
	}
	return r
}
