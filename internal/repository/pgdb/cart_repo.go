package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзины поверх PostgreSQL.
// Чтения идут через пул, мутации — через транзакцию из контекста.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartItemConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartItemConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

// ListByUser возвращает позиции корзины пользователя вместе с живыми данными
// товара и категории, новые позиции первыми.
func (c *CartRepo) ListByUser(ctx context.Context, userID int64) ([]usecase.CartItemInfo, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.quantity,
		       pr.name, pr.slug, pr.price, pr.compare_at_price, pr.stock,
		       pr.category_id, cat.name
		FROM cart_items ci
		JOIN products pr ON ci.product_id = pr.id
		JOIN categories cat ON pr.category_id = cat.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC
	`

	rows, err := c.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CartItemInfo, 0)
	for rows.Next() {
		var item usecase.CartItemInfo
		err := rows.Scan(
			&item.ID, &item.ProductID, &item.Quantity,
			&item.ProductName, &item.ProductSlug, &item.Price,
			&item.CompareAtPrice, &item.Stock, &item.CategoryID, &item.CategoryName,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// UpsertAdd атомарно создаёт позицию или прибавляет количество к существующей
// одним запросом на уникальном ограничении (user_id, product_id).
// Слияние, превышающее maxStock, не применяется и возвращает
// e.ErrInsufficientStock.
func (c *CartRepo) UpsertAdd(ctx context.Context, item *domain.CartItem, maxStock int32) (*domain.CartItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()
		WHERE cart_items.quantity + EXCLUDED.quantity <= $4
		RETURNING id, user_id, product_id, quantity, created_at, updated_at;
	`

	var model converter.CartItemModel
	err = tx.QueryRow(ctx, query, item.UserID, item.ProductID, item.Quantity, maxStock).
		Scan(
			&model.ID, &model.UserID, &model.ProductID, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		// Конфликт был, но merge отфильтрован ограничением остатка
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Get возвращает позицию корзины вместе с текущими данными товара.
// Читает через транзакцию, поскольку предваряет мутацию.
func (c *CartRepo) Get(ctx context.Context, itemID int64) (*usecase.StoredCartItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity,
		       pr.name, pr.slug, pr.price, pr.compare_at_price, pr.stock, pr.category_id
		FROM cart_items ci
		JOIN products pr ON ci.product_id = pr.id
		WHERE ci.id = $1
	`

	var stored usecase.StoredCartItem
	err = tx.QueryRow(ctx, query, itemID).
		Scan(
			&stored.ID, &stored.UserID, &stored.ProductID, &stored.Quantity,
			&stored.ProductName, &stored.ProductSlug, &stored.Price,
			&stored.CompareAtPrice, &stored.ProductStock, &stored.CategoryID,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &stored, nil
}

// SetQuantity выставляет абсолютное количество позиции, не превышая остаток.
// Запрос с защитой по stock закрывает гонку между проверкой и записью.
func (c *CartRepo) SetQuantity(ctx context.Context, itemID int64, quantity int32) (*domain.CartItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE cart_items ci
		SET quantity = $2, updated_at = NOW()
		FROM products pr
		WHERE ci.id = $1 AND pr.id = ci.product_id AND pr.stock >= $2
		RETURNING ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at;
	`

	var model converter.CartItemModel
	err = tx.QueryRow(ctx, query, itemID, quantity).
		Scan(
			&model.ID, &model.UserID, &model.ProductID, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет позицию корзины. Отсутствующая позиция — e.ErrCartItemNotFound.
func (c *CartRepo) Delete(ctx context.Context, itemID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartItemNotFound)
	}

	return nil
}

// DeleteByUser безусловно удаляет все позиции корзины пользователя
// и возвращает количество удалённых записей.
func (c *CartRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected(), nil
}
