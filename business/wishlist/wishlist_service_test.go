package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistRepo struct {
	entries map[uint]map[uint64]bool
	adds    int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[uint]map[uint64]bool)}
}

func (f *fakeWishlistRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Product, error) {
	var out []domain.Product
	for productID := range f.entries[userID] {
		out = append(out, domain.Product{ID: productID})
	}
	return out, nil
}

func (f *fakeWishlistRepo) Contains(ctx context.Context, userID uint, productID uint64) (bool, error) {
	return f.entries[userID][productID], nil
}

func (f *fakeWishlistRepo) Add(ctx context.Context, userID uint, productID uint64) error {
	if f.entries[userID] == nil {
		f.entries[userID] = make(map[uint64]bool)
	}
	f.entries[userID][productID] = true
	f.adds++
	return nil
}

func (f *fakeWishlistRepo) Remove(ctx context.Context, userID uint, productID uint64) error {
	delete(f.entries[userID], productID)
	return nil
}

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func TestAddToWishlist_Idempotent(t *testing.T) {
	wishlistRepo := newFakeWishlistRepo()
	productRepo := &fakeProductRepo{products: map[uint64]domain.Product{10: {ID: 10}}}
	svc := NewWishlistService(wishlistRepo, productRepo)

	require.NoError(t, svc.AddToWishlist(context.Background(), 1, 10))
	require.NoError(t, svc.AddToWishlist(context.Background(), 1, 10))

	assert.Equal(t, 1, wishlistRepo.adds)

	list, err := svc.GetWishlist(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAddToWishlist_UnknownProduct(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), &fakeProductRepo{})

	err := svc.AddToWishlist(context.Background(), 1, 404)
	require.Error(t, err)
	assert.Equal(t, "product not found", err.Error())
}

func TestRemoveFromWishlist_NotOnList(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), &fakeProductRepo{})

	err := svc.RemoveFromWishlist(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Equal(t, "product not in wishlist", err.Error())
}

func TestRemoveFromWishlist_RemovesEntry(t *testing.T) {
	wishlistRepo := newFakeWishlistRepo()
	productRepo := &fakeProductRepo{products: map[uint64]domain.Product{10: {ID: 10}}}
	svc := NewWishlistService(wishlistRepo, productRepo)

	require.NoError(t, svc.AddToWishlist(context.Background(), 1, 10))
	require.NoError(t, svc.RemoveFromWishlist(context.Background(), 1, 10))

	list, err := svc.GetWishlist(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
