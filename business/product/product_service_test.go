package product

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uint64]*domain.Product
	nextID   uint64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint64]*domain.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	f.nextID++
	product.ID = f.nextID
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return *p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindBySellerID(ctx context.Context, sellerID uint) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.UserID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	existing, ok := f.products[product.ID]
	if !ok {
		return errors.New("product not found")
	}
	product.UserID = existing.UserID
	*existing = *product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.products[id]; !ok {
		return errors.New("product not found or already deleted")
	}
	delete(f.products, id)
	return nil
}

type fakeRatingRepo struct {
	ratings []domain.Rating
}

func (f *fakeRatingRepo) FindByProductID(ctx context.Context, productID uint64) ([]domain.Rating, error) {
	var out []domain.Rating
	for _, r := range f.ratings {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDiscountRepo struct {
	discounts []domain.Discount
}

func (f *fakeDiscountRepo) FindByProductID(ctx context.Context, productID uint64) ([]domain.Discount, error) {
	var out []domain.Discount
	for _, d := range f.discounts {
		if d.ProductID == productID {
			out = append(out, d)
		}
	}
	return out, nil
}

func seedProduct(t *testing.T, repo *fakeProductRepo, sellerID uint) domain.Product {
	t.Helper()
	p := domain.Product{
		Name:       "Wireless Mouse",
		CategoryID: 1,
		Price:      30.0,
		Stock:      10,
		UserID:     sellerID,
		SKU:        "WIRELE-TEST0001",
	}
	require.NoError(t, repo.Create(context.Background(), &p))
	return p
}

func TestCreateProduct_GeneratesSKUWhenMissing(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name:       "Wireless Mouse",
		CategoryID: 1,
		Price:      30.0,
		Stock:      10,
		UserID:     5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.SKU)
	assert.True(t, strings.HasPrefix(created.SKU, "WIRELE-"))
}

func TestCreateProduct_KeepsProvidedSKU(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name:       "Wireless Mouse",
		CategoryID: 1,
		Price:      30.0,
		Stock:      10,
		UserID:     5,
		SKU:        "CUSTOM-SKU-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-SKU-1", created.SKU)
}

func TestCreateProduct_RejectsBadPrice(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeRatingRepo{}, &fakeDiscountRepo{})

	_, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name:       "Freebie",
		CategoryID: 1,
		Price:      0,
		UserID:     5,
	})
	require.Error(t, err)
}

func TestUpdateProduct_SellerOwnsIt(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})
	p := seedProduct(t, repo, 5)

	updated, err := svc.UpdateProduct(context.Background(), &domain.Product{
		ID:         p.ID,
		Name:       "Wireless Mouse v2",
		CategoryID: 1,
		Price:      35.0,
		Stock:      8,
	}, 5, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse v2", updated.Name)
}

func TestUpdateProduct_OtherSellerForbidden(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})
	p := seedProduct(t, repo, 5)

	_, err := svc.UpdateProduct(context.Background(), &domain.Product{
		ID:         p.ID,
		Name:       "Hijacked",
		CategoryID: 1,
		Price:      1.0,
	}, 6, domain.RoleSeller)
	require.Error(t, err)
	assert.Equal(t, "unauthorized", err.Error())
}

func TestUpdateProduct_AdminMayEditAny(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})
	p := seedProduct(t, repo, 5)

	_, err := svc.UpdateProduct(context.Background(), &domain.Product{
		ID:         p.ID,
		Name:       "Moderated name",
		CategoryID: 1,
		Price:      30.0,
	}, 99, domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestDeleteProduct_OwnershipEnforced(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeRatingRepo{}, &fakeDiscountRepo{})
	p := seedProduct(t, repo, 5)

	err := svc.DeleteProduct(context.Background(), p.ID, 6, domain.RoleSeller)
	require.Error(t, err)

	err = svc.DeleteProduct(context.Background(), p.ID, 5, domain.RoleSeller)
	assert.NoError(t, err)
}

func TestGetProductDetail_AggregatesRatingsAndDiscount(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(t, repo, 5)

	ratingRepo := &fakeRatingRepo{ratings: []domain.Rating{
		{ID: 1, ProductID: p.ID, UserID: 2, Rating: 4, User: domain.User{Username: "alice"}},
		{ID: 2, ProductID: p.ID, UserID: 3, Rating: 2, User: domain.User{Username: "bob"}},
	}}
	now := time.Now()
	discountRepo := &fakeDiscountRepo{discounts: []domain.Discount{
		{ID: 1, ProductID: p.ID, DiscountPercentage: 50, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
	}}

	svc := NewProductService(repo, ratingRepo, discountRepo)

	detail, err := svc.GetProductDetail(context.Background(), p.ID)
	require.NoError(t, err)

	require.Len(t, detail.Ratings, 2)
	assert.Equal(t, "alice", detail.Ratings[0].Username)
	assert.InDelta(t, 3.0, detail.AverageRating, 1e-9)
	require.NotNil(t, detail.ActiveDiscount)
	assert.InDelta(t, 15.0, detail.DiscountedPrice, 1e-9)
}

func TestGetProductDetail_ExpiredDiscountIgnored(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(t, repo, 5)

	now := time.Now()
	discountRepo := &fakeDiscountRepo{discounts: []domain.Discount{
		{ID: 1, ProductID: p.ID, DiscountPercentage: 50, StartDate: now.Add(-2 * time.Hour), EndDate: now.Add(-time.Hour)},
	}}

	svc := NewProductService(repo, &fakeRatingRepo{}, discountRepo)

	detail, err := svc.GetProductDetail(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Nil(t, detail.ActiveDiscount)
	assert.InDelta(t, p.Price, detail.DiscountedPrice, 1e-9)
}
