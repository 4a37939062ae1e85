package sqlite

import (
	"context"
	"database/sql"

	domain "github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/domain/model"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, name, qty
		FROM items
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}

	defer rows.Close()

	items := []*domain.Item{}

	for rows.Next() {
		item := &domain.Item{}

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Qty,
		)

		if err != nil {
			return nil, domain.NewStorageError(err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(err)
	}

	return items, nil
}

func (r *ItemRepository) Insert(ctx context.Context, name string, qty int64) (int64, error) {
	if name == "" {
		return 0, domain.ErrNameRequired
	}

	// A falsy quantity defaults to 1. This is a default-value rule, not
	// validation: negative quantities are stored as given.
	if qty == 0 {
		qty = 1
	}

	query := `
		INSERT INTO items (name, qty)
		VALUES (?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, name, qty)
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, name string, qty int64) (int64, error) {
	if name == "" {
		return 0, domain.ErrNameRequired
	}

	if qty == 0 {
		qty = 1
	}

	query := `
		UPDATE items
		SET name = ?, qty = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, name, qty, id)
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	// An unknown id is an affected count of zero, not an error. The
	// handler decides whether that is a 404.
	return affected, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `
		DELETE FROM items
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError(err)
	}

	return affected, nil
}
