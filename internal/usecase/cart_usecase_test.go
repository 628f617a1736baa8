package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeProductRepo struct {
	products map[int64]*domain.Product
	infos    map[int64]*ProductInfo
	related  []ProductInfo

	listErr    error
	lastList   *ListProductsReq
	searchErr  error
	lastSearch string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[int64]*domain.Product),
		infos:    make(map[int64]*ProductInfo),
	}
}

func (f *fakeProductRepo) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetInfo(ctx context.Context, id int64) (*ProductInfo, error) {
	info, ok := f.infos[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return info, nil
}

func (f *fakeProductRepo) List(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error) {
	f.lastList = req
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []ProductInfo{}, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, query string, limit int) ([]ProductInfo, error) {
	f.lastSearch = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return []ProductInfo{{ID: 1, Name: "match"}}, nil
}

func (f *fakeProductRepo) GetRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]ProductInfo, error) {
	return f.related, nil
}

type fakeCartRepo struct {
	items []CartItemInfo
	err   error

	stored    *StoredCartItem
	upsertErr error
	setErr    error
	deleteErr error

	setCalled    bool
	lastSetQty   int32
	deleteCalled bool
	removedCount int64
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID int64) ([]CartItemInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeCartRepo) UpsertAdd(ctx context.Context, item *domain.CartItem, maxStock int32) (*domain.CartItem, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return item, nil
}

func (f *fakeCartRepo) Get(ctx context.Context, itemID int64) (*StoredCartItem, error) {
	if f.stored == nil {
		return nil, e.ErrCartItemNotFound
	}
	return f.stored, nil
}

func (f *fakeCartRepo) SetQuantity(ctx context.Context, itemID int64, quantity int32) (*domain.CartItem, error) {
	f.setCalled = true
	f.lastSetQty = quantity
	if f.setErr != nil {
		return nil, f.setErr
	}
	return &domain.CartItem{
		ID:        itemID,
		UserID:    f.stored.UserID,
		ProductID: f.stored.ProductID,
		Quantity:  quantity,
	}, nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, itemID int64) error {
	f.deleteCalled = true
	return f.deleteErr
}

func (f *fakeCartRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return f.removedCount, nil
}

type fakeOutboxRepo struct {
	created []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

// fakeTx подменяет pgx.Tx в транзакционных сценариях. Встроенный интерфейс
// оставляет нереализованные методы паникующими, тесты их не трогают.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	tx *fakeTx
}

func (f *fakeTxBeginner) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	f.tx = &fakeTx{}
	return f.tx, nil
}

func TestBuildSummary_EmptyCart(t *testing.T) {
	summary := BuildSummary(nil)

	assert.True(t, summary.Subtotal.IsZero())
	assert.True(t, summary.Tax.IsZero())
	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, int32(0), summary.ItemCount)
}

func TestBuildSummary_SingleItem(t *testing.T) {
	items := []CartItemInfo{
		{Price: 1000, Quantity: 2}, // 10.00 x 2
	}

	summary := BuildSummary(items)

	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("20.00")), "subtotal = %s", summary.Subtotal)
	assert.True(t, summary.Tax.Equal(decimal.RequireFromString("2.00")), "tax = %s", summary.Tax)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("22.00")), "total = %s", summary.Total)
	assert.Equal(t, int32(2), summary.ItemCount)
}

func TestBuildSummary_TaxRoundsHalfUp(t *testing.T) {
	items := []CartItemInfo{
		{Price: 333, Quantity: 3}, // 3.33 x 3 = 9.99, tax 0.999 -> 1.00
	}

	summary := BuildSummary(items)

	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("9.99")), "subtotal = %s", summary.Subtotal)
	assert.True(t, summary.Tax.Equal(decimal.RequireFromString("1.00")), "tax = %s", summary.Tax)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("10.99")), "total = %s", summary.Total)
	assert.Equal(t, int32(3), summary.ItemCount)
}

func TestBuildSummary_SmallAmounts(t *testing.T) {
	items := []CartItemInfo{
		{Price: 5, Quantity: 1}, // 0.05, tax 0.005 -> 0.01
	}

	summary := BuildSummary(items)

	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("0.05")), "subtotal = %s", summary.Subtotal)
	assert.True(t, summary.Tax.Equal(decimal.RequireFromString("0.01")), "tax = %s", summary.Tax)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("0.06")), "total = %s", summary.Total)
}

func TestBuildSummary_MultipleItems(t *testing.T) {
	items := []CartItemInfo{
		{Price: 19999, Quantity: 1}, // 199.99
		{Price: 550, Quantity: 4},   // 22.00
	}

	summary := BuildSummary(items)

	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("221.99")), "subtotal = %s", summary.Subtotal)
	assert.True(t, summary.Tax.Equal(decimal.RequireFromString("22.20")), "tax = %s", summary.Tax)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("244.19")), "total = %s", summary.Total)
	assert.Equal(t, int32(5), summary.ItemCount)
}

func TestGetCart_RecomputesSummary(t *testing.T) {
	cartRepo := &fakeCartRepo{
		items: []CartItemInfo{
			{ID: 1, ProductID: 10, Price: 1000, Quantity: 2, ProductName: "Чайник"},
		},
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nil, nil, nopLogger{})

	res, err := uc.GetCart(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Чайник", res.Items[0].ProductName)
	assert.True(t, res.Summary.Total.Equal(decimal.RequireFromString("22.00")))
}

func TestAddItem_RequiresProductID(t *testing.T) {
	uc := NewCartUC(&fakeCartRepo{}, newFakeProductRepo(), nil, nil, nopLogger{})

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(1, 0, 1))
	assert.ErrorIs(t, err, e.ErrProductIDRequired)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	uc := NewCartUC(&fakeCartRepo{}, newFakeProductRepo(), nil, nil, nopLogger{})

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(1, 10, 0))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(context.Background(), NewAddCartItemReq(1, 10, -3))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	uc := NewCartUC(&fakeCartRepo{}, newFakeProductRepo(), nil, nil, nopLogger{})

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(1, 99, 1))
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestAddItem_QuantityExceedsStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.products[10] = &domain.Product{ID: 10, Name: "Чайник", Price: 1000, Stock: 3, Active: true}
	uc := NewCartUC(&fakeCartRepo{}, productRepo, nil, nil, nopLogger{})

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(1, 10, 4))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)
}

func TestUpdateQuantity_RejectsNonPositiveQuantity(t *testing.T) {
	uc := NewCartUC(&fakeCartRepo{}, newFakeProductRepo(), nil, nil, nopLogger{})

	_, err := uc.UpdateQuantity(context.Background(), NewUpdateCartItemReq(1, 5, 0))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestAddItem_CommitsOnSuccess(t *testing.T) {
	db := &fakeTxBeginner{}
	outboxRepo := &fakeOutboxRepo{}
	productRepo := newFakeProductRepo()
	productRepo.products[10] = &domain.Product{ID: 10, Name: "Чайник", Price: 1000, Stock: 10, Active: true}
	uc := NewCartUC(&fakeCartRepo{}, productRepo, outboxRepo, db, nopLogger{})

	item, err := uc.AddItem(context.Background(), NewAddCartItemReq(42, 10, 2))
	require.NoError(t, err)

	assert.Equal(t, int32(2), item.Quantity)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
	require.Len(t, outboxRepo.created, 1)
	assert.Equal(t, EventCartItemAdded, outboxRepo.created[0].EventType)
	assert.Equal(t, int64(42), outboxRepo.created[0].UserID)
}

func TestAddItem_RollsBackWhenMergeExceedsStock(t *testing.T) {
	db := &fakeTxBeginner{}
	productRepo := newFakeProductRepo()
	productRepo.products[10] = &domain.Product{ID: 10, Name: "Чайник", Price: 1000, Stock: 5, Active: true}
	cartRepo := &fakeCartRepo{upsertErr: e.ErrInsufficientStock}
	uc := NewCartUC(cartRepo, productRepo, &fakeOutboxRepo{}, db, nopLogger{})

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(42, 10, 3))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	require.NotNil(t, db.tx)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestUpdateQuantity_ForeignItemRollsBack(t *testing.T) {
	db := &fakeTxBeginner{}
	cartRepo := &fakeCartRepo{
		stored: &StoredCartItem{ID: 5, UserID: 7, ProductID: 10, Quantity: 1, ProductStock: 10},
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), &fakeOutboxRepo{}, db, nopLogger{})

	_, err := uc.UpdateQuantity(context.Background(), NewUpdateCartItemReq(42, 5, 2))
	assert.ErrorIs(t, err, e.ErrNotResourceOwner)

	assert.False(t, cartRepo.setCalled)
	require.NotNil(t, db.tx)
	assert.True(t, db.tx.rolledBack, "транзакция должна откатываться на чужой позиции")
	assert.False(t, db.tx.committed)
}

func TestUpdateQuantity_OverStockRollsBack(t *testing.T) {
	db := &fakeTxBeginner{}
	cartRepo := &fakeCartRepo{
		stored: &StoredCartItem{ID: 5, UserID: 42, ProductID: 10, Quantity: 1, ProductStock: 3},
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), &fakeOutboxRepo{}, db, nopLogger{})

	_, err := uc.UpdateQuantity(context.Background(), NewUpdateCartItemReq(42, 5, 5))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	assert.False(t, cartRepo.setCalled)
	require.NotNil(t, db.tx)
	assert.True(t, db.tx.rolledBack, "транзакция должна откатываться при превышении остатка")
	assert.False(t, db.tx.committed)
}

func TestUpdateQuantity_BuildsResultFromTransactionalRead(t *testing.T) {
	db := &fakeTxBeginner{}
	outboxRepo := &fakeOutboxRepo{}
	cartRepo := &fakeCartRepo{
		stored: &StoredCartItem{
			ID: 5, UserID: 42, ProductID: 10, Quantity: 1,
			ProductName: "Чайник", ProductSlug: "chajnik",
			Price: 1000, ProductStock: 10, CategoryID: 2,
		},
	}
	// Пустой productRepo: после коммита товар заново не читается,
	// даже если к этому моменту он деактивирован
	uc := NewCartUC(cartRepo, newFakeProductRepo(), outboxRepo, db, nopLogger{})

	item, err := uc.UpdateQuantity(context.Background(), NewUpdateCartItemReq(42, 5, 4))
	require.NoError(t, err)

	assert.Equal(t, int32(4), item.Quantity)
	assert.Equal(t, "Чайник", item.ProductName)
	assert.Equal(t, int64(1000), item.Price)
	assert.Equal(t, int64(2), item.CategoryID)
	assert.Equal(t, int32(4), cartRepo.lastSetQty)
	assert.True(t, db.tx.committed)
	require.Len(t, outboxRepo.created, 1)
	assert.Equal(t, EventCartQuantityUpdated, outboxRepo.created[0].EventType)
}

func TestRemoveItem_ForeignItemRollsBack(t *testing.T) {
	db := &fakeTxBeginner{}
	cartRepo := &fakeCartRepo{
		stored: &StoredCartItem{ID: 5, UserID: 7, ProductID: 10, Quantity: 1, ProductStock: 10},
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), &fakeOutboxRepo{}, db, nopLogger{})

	err := uc.RemoveItem(context.Background(), 42, 5)
	assert.ErrorIs(t, err, e.ErrNotResourceOwner)

	assert.False(t, cartRepo.deleteCalled)
	require.NotNil(t, db.tx)
	assert.True(t, db.tx.rolledBack, "транзакция должна откатываться на чужой позиции")
	assert.False(t, db.tx.committed)
}

func TestRemoveItem_CommitsOnSuccess(t *testing.T) {
	db := &fakeTxBeginner{}
	outboxRepo := &fakeOutboxRepo{}
	cartRepo := &fakeCartRepo{
		stored: &StoredCartItem{ID: 5, UserID: 42, ProductID: 10, Quantity: 1, ProductStock: 10},
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), outboxRepo, db, nopLogger{})

	err := uc.RemoveItem(context.Background(), 42, 5)
	require.NoError(t, err)

	assert.True(t, cartRepo.deleteCalled)
	assert.True(t, db.tx.committed)
	require.Len(t, outboxRepo.created, 1)
	assert.Equal(t, EventCartItemRemoved, outboxRepo.created[0].EventType)
}

func TestClear_CommitsAndRecordsRemovedCount(t *testing.T) {
	db := &fakeTxBeginner{}
	outboxRepo := &fakeOutboxRepo{}
	cartRepo := &fakeCartRepo{removedCount: 3}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), outboxRepo, db, nopLogger{})

	err := uc.Clear(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, db.tx.committed)
	require.Len(t, outboxRepo.created, 1)
	assert.Equal(t, EventCartCleared, outboxRepo.created[0].EventType)

	var envelope CartEventEnvelope
	require.NoError(t, json.Unmarshal(outboxRepo.created[0].Payload, &envelope))
	assert.Equal(t, int64(3), envelope.Removed)
}
