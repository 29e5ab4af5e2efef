package services

import (
	"context"
	"testing"

	"github.com/monocle-dev/rentals/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOwnedProducts_Empty(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	got, err := products.ListOwnedProducts(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListOwnedProducts_UnknownOwner(t *testing.T) {
	_, products := newServices(store.NewMemoryStore())

	_, err := products.ListOwnedProducts(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	kind, msg := Describe(err)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "User not found", msg)
}

func TestCreateProduct_UnknownOwnerCreatesNothing(t *testing.T) {
	s := store.NewMemoryStore()
	users, products := newServices(s)
	ctx := context.Background()

	owner, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	_, err = products.CreateProduct(ctx, validProduct("ghost@example.com", "Tent"))
	require.ErrorIs(t, err, ErrUserNotFound)

	// ids are sequential, so a leaked row would have taken id 1
	_, err = s.FindProductByID(ctx, 1)
	require.ErrorIs(t, err, store.ErrNotFound)

	listed, err := s.FindProductsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateProduct_Result(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	owner, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	in := validProduct("ADA@example.com", "  Tent ")
	in.Categories = []string{"OUTDOOR", "OUTDOOR", "TOYS"}

	res, err := products.CreateProduct(ctx, in)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Product created successfully: Tent!", res.Message)
	assert.Equal(t, owner.ID, res.Product.UserID)
	assert.Equal(t, 0, res.Product.Views)
	assert.Equal(t, []string{"OUTDOOR", "TOYS"}, []string(res.Product.Categories))
	assert.False(t, res.Product.CreatedAt.IsZero())
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateProductInput)
		field  string
	}{
		{name: "missing name", mutate: func(in *CreateProductInput) { in.Name = "   " }, field: "name"},
		{name: "missing description", mutate: func(in *CreateProductInput) { in.Description = "" }, field: "description"},
		{name: "negative price", mutate: func(in *CreateProductInput) { in.Price = -1 }, field: "price"},
		{name: "negative rent price", mutate: func(in *CreateProductInput) { in.RentPrice = -0.5 }, field: "rentPrice"},
		{name: "price overflows column", mutate: func(in *CreateProductInput) { in.Price = 1e12 }, field: "price"},
		{name: "rent price overflows column", mutate: func(in *CreateProductInput) { in.RentPrice = 1e10 }, field: "rentPrice"},
		{name: "unknown rent type", mutate: func(in *CreateProductInput) { in.RentType = "per week" }, field: "rentType"},
		{name: "no categories", mutate: func(in *CreateProductInput) { in.Categories = []string{} }, field: "categories"},
		{name: "unknown category", mutate: func(in *CreateProductInput) { in.Categories = []string{"OUTDOOR", "WEAPONS"} }, field: "categories[1]"},
		{name: "bad email", mutate: func(in *CreateProductInput) { in.Email = "nope" }, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, products := newServices(store.NewMemoryStore())
			ctx := context.Background()

			_, err := users.Register(ctx, validRegistration("ada@example.com"))
			require.NoError(t, err)

			in := validProduct("ada@example.com", "Tent")
			tt.mutate(&in)

			_, err = products.CreateProduct(ctx, in)
			require.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestCreateProduct_ZeroPricesAllowed(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	in := validProduct("ada@example.com", "Free chair")
	in.Price = 0
	in.RentPrice = 0
	in.RentType = "per hour"

	res, err := products.CreateProduct(ctx, in)
	require.NoError(t, err)
	assert.Zero(t, res.Product.Price)
}

func TestCreateProduct_PriceLimits(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	t.Run("rounds to cents", func(t *testing.T) {
		in := validProduct("ada@example.com", "Kayak")
		in.Price = 9.999
		in.RentPrice = 0.125

		res, err := products.CreateProduct(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 10.0, res.Product.Price)
		assert.Equal(t, 0.13, res.Product.RentPrice)
	})

	t.Run("largest storable price", func(t *testing.T) {
		in := validProduct("ada@example.com", "Yacht")
		in.Price = 9999999999.99

		res, err := products.CreateProduct(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 9999999999.99, res.Product.Price)
	})

	t.Run("over the limit", func(t *testing.T) {
		in := validProduct("ada@example.com", "Island")
		in.Price = 1e12

		_, err := products.CreateProduct(ctx, in)
		kind, msg := Describe(err)
		assert.Equal(t, KindValidation, kind)
		assert.Equal(t, "Invalid input: price must not exceed 9999999999.99", msg)
	})
}

func TestDeleteProduct(t *testing.T) {
	s := store.NewMemoryStore()
	users, products := newServices(s)
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)

	res, err := products.CreateProduct(ctx, validProduct("ada@example.com", "Tent"))
	require.NoError(t, err)

	t.Run("missing id fails without side effects", func(t *testing.T) {
		ok, err := products.DeleteProduct(ctx, res.Product.ID+100)
		require.ErrorIs(t, err, ErrProductNotFound)
		assert.False(t, ok)

		listed, err := products.ListOwnedProducts(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("existing id", func(t *testing.T) {
		ok, err := products.DeleteProduct(ctx, res.Product.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		listed, err := products.ListOwnedProducts(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("second delete is not a no-op", func(t *testing.T) {
		_, err := products.DeleteProduct(ctx, res.Product.ID)
		require.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestGetProduct(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("ada@example.com"))
	require.NoError(t, err)
	res, err := products.CreateProduct(ctx, validProduct("ada@example.com", "Tent"))
	require.NoError(t, err)

	got, err := products.GetProduct(ctx, res.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tent", got.Name)

	_, err = products.GetProduct(ctx, 999)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_StoreUnavailable(t *testing.T) {
	_, products := newServices(downStore{})
	ctx := context.Background()

	_, err := products.ListOwnedProducts(ctx, "ada@example.com")
	kind, msg := Describe(err)
	assert.Equal(t, KindUnavailable, kind)
	assert.Equal(t, "Failed to resolve product owner", msg)

	_, err = products.DeleteProduct(ctx, 1)
	kind, msg = Describe(err)
	assert.Equal(t, KindUnavailable, kind)
	assert.Equal(t, "Failed to delete product", msg)
}

func TestProductID(t *testing.T) {
	id, err := ProductID(12)
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	_, err = ProductID(0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = ProductID(-3)
	require.ErrorIs(t, err, ErrValidation)
}

// Register A, create two products, list, delete the first, list again.
func TestOwnerProductScenario(t *testing.T) {
	users, products := newServices(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration("a@x.com"))
	require.NoError(t, err)

	first, err := products.CreateProduct(ctx, validProduct("a@x.com", "First"))
	require.NoError(t, err)
	second, err := products.CreateProduct(ctx, validProduct("a@x.com", "Second"))
	require.NoError(t, err)

	listed, err := products.ListOwnedProducts(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.Product.ID, listed[0].ID)
	assert.Equal(t, second.Product.ID, listed[1].ID)

	ok, err := products.DeleteProduct(ctx, first.Product.ID)
	require.NoError(t, err)
	require.True(t, ok)

	listed, err = products.ListOwnedProducts(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Second", listed[0].Name)
}
