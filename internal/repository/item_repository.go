package repository

import (
	"context"

	domain "github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/domain/model"
)

type ItemRepository interface {
	ListAll(ctx context.Context) ([]*domain.Item, error)
	Insert(ctx context.Context, name string, qty int64) (int64, error)
	Update(ctx context.Context, id int64, name string, qty int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
