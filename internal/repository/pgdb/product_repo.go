package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
// Каталог читается только на чтение, все запросы идут через пул.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetActive возвращает активный товар по ID.
// Отсутствующий или деактивированный товар — e.ErrProductNotFound.
func (p *ProductRepo) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, slug, description, sku, price, compare_at_price,
		       stock, active, featured, category_id, created_at, updated_at
		FROM products
		WHERE id = $1 AND active
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description, &model.SKU,
		&model.Price, &model.CompareAtPrice, &model.Stock, &model.Active,
		&model.Featured, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetInfo возвращает информацию об активном товаре вместе с названием категории.
func (p *ProductRepo) GetInfo(ctx context.Context, id int64) (*usecase.ProductInfo, error) {
	query := productInfoSelect + `
		WHERE pr.id = $1 AND pr.active
	`

	rows, err := p.pool.Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	info, err := scanProductInfo(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return info, nil
}

// List возвращает активные товары по фильтрам каталога.
// SortBy и SortOrder к этому моменту уже нормализованы usecase-слоем.
func (p *ProductRepo) List(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(productInfoSelect)
	sb.WriteString(" WHERE pr.active")

	if req.CategoryID != 0 {
		args = append(args, req.CategoryID)
		fmt.Fprintf(&sb, " AND pr.category_id = $%d", len(args))
	}

	if req.Search != "" {
		args = append(args, req.Search)
		fmt.Fprintf(&sb, " AND pr.name ILIKE '%%' || $%d || '%%'", len(args))
	}

	if req.MinPrice != nil {
		args = append(args, *req.MinPrice)
		fmt.Fprintf(&sb, " AND pr.price >= $%d", len(args))
	}

	if req.MaxPrice != nil {
		args = append(args, *req.MaxPrice)
		fmt.Fprintf(&sb, " AND pr.price <= $%d", len(args))
	}

	// Колонка и направление берутся из белого списка, не из пользовательского ввода
	fmt.Fprintf(&sb, " ORDER BY pr.%s %s", req.SortBy, strings.ToUpper(req.SortOrder))

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return collectProductInfos(rows)
}

// Search ищет активные товары по подстроке в названии, описании и SKU.
func (p *ProductRepo) Search(ctx context.Context, query string, limit int) ([]usecase.ProductInfo, error) {
	sqlQuery := productInfoSelect + `
		WHERE pr.active
		  AND (pr.name ILIKE '%' || $1 || '%'
		    OR pr.description ILIKE '%' || $1 || '%'
		    OR pr.sku ILIKE '%' || $1 || '%')
		ORDER BY pr.name
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return collectProductInfos(rows)
}

// GetRelated возвращает активные товары той же категории, исключая сам товар.
func (p *ProductRepo) GetRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]usecase.ProductInfo, error) {
	query := productInfoSelect + `
		WHERE pr.active AND pr.category_id = $1 AND pr.id <> $2
		ORDER BY pr.created_at DESC
		LIMIT $3
	`

	rows, err := p.pool.Query(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return collectProductInfos(rows)
}

const productInfoSelect = `
	SELECT pr.id, pr.name, pr.slug, pr.description, pr.sku, pr.price,
	       pr.compare_at_price, pr.stock, pr.featured, pr.category_id, cat.name
	FROM products pr
	JOIN categories cat ON pr.category_id = cat.id
`

func scanProductInfo(rows pgx.Rows) (*usecase.ProductInfo, error) {
	var info usecase.ProductInfo
	err := rows.Scan(
		&info.ID, &info.Name, &info.Slug, &info.Description, &info.SKU,
		&info.Price, &info.CompareAtPrice, &info.Stock, &info.Featured,
		&info.CategoryID, &info.CategoryName,
	)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func collectProductInfos(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		info, err := scanProductInfo(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *info)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
