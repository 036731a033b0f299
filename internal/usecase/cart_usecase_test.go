package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepo struct {
	nextCartID int64
	nextItemID int64
	carts      map[int64]*domain.Cart
	items      map[int64][]domain.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: map[int64]*domain.Cart{},
		items: map[int64][]domain.CartItem{},
	}
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	f.nextCartID++
	cart.ID = f.nextCartID
	f.carts[cart.ID] = cart
	return cart, nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	cart, ok := f.carts[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cart, nil
}

func (f *fakeCartRepo) UpsertItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	for i := range f.items[item.CartID] {
		existing := &f.items[item.CartID][i]
		if existing.VariantID == item.VariantID {
			existing.Quantity += item.Quantity
			return existing, nil
		}
	}

	f.nextItemID++
	item.ID = f.nextItemID
	f.items[item.CartID] = append(f.items[item.CartID], *item)
	return item, nil
}

func (f *fakeCartRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	return f.items[cartID], nil
}

func (f *fakeCartRepo) Deactivate(ctx context.Context, id int64) error {
	if cart, ok := f.carts[id]; ok {
		cart.IsActive = false
	}
	return nil
}

func newCartFixture() (*CartUseCase, *fakeCartRepo) {
	repo := newFakeCartRepo()
	variants := &fakeVariantRepo{variants: map[int64]*domain.Variant{}}
	return NewCartUC(repo, variants, logger.NewSlogLogger()), repo
}

func TestCreateCartAnonymous(t *testing.T) {
	uc, _ := newCartFixture()

	cart, err := uc.CreateCart(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, cart.UserID)
	assert.True(t, cart.IsActive)
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	uc, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(1, 1, 0))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(context.Background(), NewAddCartItemReq(1, 1, -3))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestAddItemUnknownCart(t *testing.T) {
	uc, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), NewAddCartItemReq(99, 1, 1))
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	uc, _ := newCartFixture()

	cart, err := uc.CreateCart(context.Background(), nil)
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), NewAddCartItemReq(cart.ID, 5, 2))
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), NewAddCartItemReq(cart.ID, 5, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.Quantity)

	res, err := uc.GetCart(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(5), res.Items[0].Quantity)
}

func TestGetCartUnknown(t *testing.T) {
	uc, _ := newCartFixture()

	_, err := uc.GetCart(context.Background(), 404)
	assert.ErrorIs(t, err, e.ErrNotFound)
}
