package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List возвращает все категории с количеством активных товаров,
// отсортированные по имени.
func (c *CategoryRepo) List(ctx context.Context) ([]usecase.CategoryInfo, error) {
	query := `
		SELECT cat.id, cat.name, cat.slug, cat.description,
		       COUNT(pr.id) FILTER (WHERE pr.active) AS product_count
		FROM categories cat
		LEFT JOIN products pr ON pr.category_id = cat.id
		GROUP BY cat.id, cat.name, cat.slug, cat.description
		ORDER BY cat.name
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CategoryInfo, 0)
	for rows.Next() {
		var info usecase.CategoryInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Slug, &info.Description, &info.ProductCount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
