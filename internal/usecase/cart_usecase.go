package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// taxRate — фиксированная ставка налога 10%.
// Захардкожена намеренно, не выносить в конфиг без подтверждения требования.
var taxRate = decimal.New(10, -2)

// CartUseCase реализует бизнес-логику корзины: учёт остатков,
// слияние дубликатов и расчёт итогов.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// GetCart возвращает содержимое корзины пользователя вместе с итогом.
// Итог пересчитывается на каждое чтение и никогда не кэшируется.
func (c *CartUseCase) GetCart(ctx context.Context, userID int64) (*GetCartRes, error) {
	const op = "CartUseCase.GetCart"

	items, err := c.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGetCartRes(items, BuildSummary(items)), nil
}

// AddItem добавляет товар в корзину. Если позиция (user, product) уже
// существует, количества складываются одним атомарным upsert-запросом,
// защищённым ограничением остатка.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddCartItemReq) (*CartItemInfo, error) {
	const op = "CartUseCase.AddItem"

	var err error
	if err = c.validateAdd(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.GetActive(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Quantity > product.Stock {
		return nil, e.Wrap(op, e.ErrInsufficientStock)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	item, err := c.cartRepo.UpsertAdd(ctx, domain.NewCartItem(req.UserID, req.ProductID, req.Quantity), product.Stock)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.recordEvent(ctx, EventCartItemAdded, req.UserID, item.ID, req.ProductID, item.Quantity, 0); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return newCartItemInfo(item, product), nil
}

// UpdateQuantity выставляет абсолютное количество позиции после проверки
// владельца и остатка.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, req *UpdateCartItemReq) (*CartItemInfo, error) {
	const op = "CartUseCase.UpdateQuantity"

	var err error
	if req.Quantity < 1 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	stored, err := c.cartRepo.Get(ctx, req.ItemID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Проверка владельца обязательна до любой мутации.
	// err должен быть присвоен, иначе deferred rollback не сработает
	if stored.UserID != req.UserID {
		err = e.ErrNotResourceOwner
		return nil, e.Wrap(op, err)
	}

	if req.Quantity > stored.ProductStock {
		err = e.ErrInsufficientStock
		return nil, e.Wrap(op, err)
	}

	item, err := c.cartRepo.SetQuantity(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.recordEvent(ctx, EventCartQuantityUpdated, req.UserID, item.ID, stored.ProductID, item.Quantity, 0); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Данные товара берутся из того же транзакционного чтения, что и остаток:
	// после успешного коммита мутация не должна превращаться в ошибку
	return newCartItemInfoFromStored(item, stored), nil
}

// RemoveItem удаляет позицию корзины после проверки владельца.
// Повторное удаление возвращает ErrCartItemNotFound.
func (c *CartUseCase) RemoveItem(ctx context.Context, userID int64, itemID int64) error {
	const op = "CartUseCase.RemoveItem"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	stored, err := c.cartRepo.Get(ctx, itemID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if stored.UserID != userID {
		err = e.ErrNotResourceOwner
		return e.Wrap(op, err)
	}

	if err = c.cartRepo.Delete(ctx, itemID); err != nil {
		return e.Wrap(op, err)
	}

	if err = c.recordEvent(ctx, EventCartItemRemoved, userID, itemID, stored.ProductID, 0, 0); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Clear безусловно удаляет все позиции корзины пользователя.
// Пустая корзина не является ошибкой.
func (c *CartUseCase) Clear(ctx context.Context, userID int64) error {
	const op = "CartUseCase.Clear"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	removed, err := c.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = c.recordEvent(ctx, EventCartCleared, userID, 0, 0, 0, removed); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// recordEvent сохраняет событие активности корзины в outbox той же транзакцией.
func (c *CartUseCase) recordEvent(ctx context.Context, eventType OutboxEventType,
	userID int64, itemID int64, productID int64, quantity int32, removed int64) error {
	envelope := &CartEventEnvelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		UserID:     userID,
		ItemID:     itemID,
		ProductID:  productID,
		Quantity:   quantity,
		Removed:    removed,
		OccurredAt: time.Now().UTC().UnixNano(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   envelope.EventID,
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})

	return err
}

// validateAdd проверяет корректность запроса на добавление в корзину.
func (c *CartUseCase) validateAdd(req *AddCartItemReq) error {
	if req.ProductID == 0 {
		return e.ErrProductIDRequired
	}

	if req.Quantity < 1 {
		return e.ErrInvalidQuantity
	}

	return nil
}

// BuildSummary считает итог корзины в точной десятичной арифметике.
// Subtotal, tax и total округляются до 2 знаков независимо друг от друга
// (round half-up), total = subtotal + tax уже округлённых величин.
func BuildSummary(items []CartItemInfo) CartSummary {
	subtotal := decimal.Zero
	var count int32

	for _, item := range items {
		line := decimal.New(item.Price, -2).Mul(decimal.NewFromInt32(item.Quantity))
		subtotal = subtotal.Add(line)
		count += item.Quantity
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return CartSummary{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		ItemCount: count,
	}
}

func newCartItemInfoFromStored(item *domain.CartItem, stored *StoredCartItem) *CartItemInfo {
	return &CartItemInfo{
		ID:             item.ID,
		ProductID:      stored.ProductID,
		Quantity:       item.Quantity,
		ProductName:    stored.ProductName,
		ProductSlug:    stored.ProductSlug,
		Price:          stored.Price,
		CompareAtPrice: stored.CompareAtPrice,
		Stock:          stored.ProductStock,
		CategoryID:     stored.CategoryID,
	}
}

func newCartItemInfo(item *domain.CartItem, product *domain.Product) *CartItemInfo {
	return &CartItemInfo{
		ID:             item.ID,
		ProductID:      product.ID,
		Quantity:       item.Quantity,
		ProductName:    product.Name,
		ProductSlug:    product.Slug,
		Price:          product.Price,
		CompareAtPrice: product.CompareAtPrice,
		Stock:          product.Stock,
		CategoryID:     product.CategoryID,
	}
}
