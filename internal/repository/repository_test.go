package repository

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// Helper to create a new Product
func newProduct(productID, name, sellerID string) model.Product {
	return model.Product{
		ID:       productID,
		Name:     name,
		EndDate:  time.Now().Add(24 * time.Hour).UTC(),
		SellerID: sellerID,
	}
}

// Helper to create a new Bid
func newBid(bidID, productID, bidderID string, price float64) model.Bid {
	return model.Bid{
		ID:        bidID,
		ProductID: productID,
		BidderID:  bidderID,
		Price:     price,
		Date:      time.Now().UTC(),
	}
}

// Helper to build a store with two users and one product
func seededStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	require.NoError(t, store.CreateUser(model.User{ID: "user1", Username: "alice", Email: "alice@example.com"}))
	require.NoError(t, store.CreateUser(model.User{ID: "user2", Username: "bob", Email: "bob@example.com"}))
	require.NoError(t, store.CreateProduct(newProduct("prod1", "Lamp", "user1")))
	return store
}

// Test CreateUser
func TestMemoryStore_CreateUser(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	require.NoError(t, store.CreateUser(model.User{ID: "user1", Email: "alice@example.com"}))

	err := store.CreateUser(model.User{ID: "user2", Email: "alice@example.com"})
	require.ErrorIs(t, err, auctionerrors.ErrEmailTaken)

	u, err := store.UserByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "user1", u.ID)
}

// Test CreateBid
func TestMemoryStore_CreateBid(t *testing.T) {
	t.Parallel()

	store := seededStore(t)

	tests := []struct {
		name      string
		bid       model.Bid
		wantError error
	}{
		{name: "valid_bid", bid: newBid("bid1", "prod1", "user2", 100), wantError: nil},
		{name: "product_not_found", bid: newBid("bid2", "prodX", "user2", 50), wantError: auctionerrors.ErrProductNotFound},
		{name: "empty_product_id", bid: newBid("bid3", "", "user2", 50), wantError: auctionerrors.ErrProductNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := store.CreateBid(tc.bid)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
			} else {
				require.NoError(t, err)
				got, err := store.BidByID(tc.bid.ID)
				require.NoError(t, err)
				require.Equal(t, tc.bid, got)
			}
		})
	}

	// concurrency test
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		store := seededStore(t)

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "prod1", "user2", float64(100+i))
				require.NoError(t, store.CreateBid(b))
			}()
		}

		wg.Wait()

		detail, err := store.ProductDetailByID("prod1")
		require.NoError(t, err)
		require.Len(t, detail.Bids, concurrentCount)
	})
}

// Test that bid order is preserved per product
func TestMemoryStore_BidInsertionOrder(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	for i := 0; i < 10; i++ {
		require.NoError(t, store.CreateBid(newBid(fmt.Sprintf("bid%d", i), "prod1", "user2", float64(10+i))))
	}

	detail, err := store.ProductDetailByID("prod1")
	require.NoError(t, err)
	require.Len(t, detail.Bids, 10)
	for i, bd := range detail.Bids {
		require.Equal(t, fmt.Sprintf("bid%d", i), bd.Bid.ID)
		require.Equal(t, "bob", bd.Bidder.Username)
	}
}

// Test DeleteProductWithBids
func TestMemoryStore_DeleteProductWithBids(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	require.NoError(t, store.CreateProduct(newProduct("prod2", "Chair", "user1")))
	require.NoError(t, store.CreateBid(newBid("bid1", "prod1", "user2", 50)))
	require.NoError(t, store.CreateBid(newBid("bid2", "prod1", "user2", 60)))
	require.NoError(t, store.CreateBid(newBid("bid3", "prod2", "user2", 70)))

	require.NoError(t, store.DeleteProductWithBids("prod1"))

	// product and its bids are gone in one step
	_, err := store.ProductByID("prod1")
	require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	_, err = store.BidByID("bid1")
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	_, err = store.BidByID("bid2")
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)

	// the other product's bid survives
	_, err = store.BidByID("bid3")
	require.NoError(t, err)

	// bidder's bid list no longer references the deleted product
	detail, err := store.UserDetailByID("user2")
	require.NoError(t, err)
	require.Len(t, detail.Bids, 1)
	require.Equal(t, "bid3", detail.Bids[0].ID)

	// second delete reports not found
	require.ErrorIs(t, store.DeleteProductWithBids("prod1"), auctionerrors.ErrProductNotFound)
}

// Test DeleteBid under contention: exactly one of N concurrent deletes wins
func TestMemoryStore_DeleteBid_Concurrent(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	require.NoError(t, store.CreateBid(newBid("bid1", "prod1", "user2", 50)))

	var wg sync.WaitGroup
	var successes atomic.Int64

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.DeleteBid("bid1")
			if err == nil {
				successes.Add(1)
				return
			}
			require.True(t, errors.Is(err, auctionerrors.ErrBidNotFound))
		}()
	}

	wg.Wait()
	require.Equal(t, int64(1), successes.Load())
}

// Test UpdateProduct
func TestMemoryStore_UpdateProduct(t *testing.T) {
	t.Parallel()

	store := seededStore(t)

	updated := newProduct("prod1", "Renamed lamp", "user2")
	require.NoError(t, store.UpdateProduct(updated))

	got, err := store.ProductByID("prod1")
	require.NoError(t, err)
	require.Equal(t, "Renamed lamp", got.Name)
	require.Equal(t, "user2", got.SellerID)

	require.ErrorIs(t, store.UpdateProduct(newProduct("prodX", "Ghost", "user1")), auctionerrors.ErrProductNotFound)
}

// Test ListProductDetails
func TestMemoryStore_ListProductDetails(t *testing.T) {
	t.Parallel()

	t.Run("empty_store", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		details, err := store.ListProductDetails()
		require.NoError(t, err)
		require.NotNil(t, details)
		require.Empty(t, details)
	})

	t.Run("products_in_insertion_order", func(t *testing.T) {
		t.Parallel()

		store := seededStore(t)
		require.NoError(t, store.CreateProduct(newProduct("prod2", "Chair", "user2")))

		details, err := store.ListProductDetails()
		require.NoError(t, err)
		require.Len(t, details, 2)
		require.Equal(t, "prod1", details[0].Product.ID)
		require.Equal(t, "alice", details[0].Seller.Username)
		require.Equal(t, "prod2", details[1].Product.ID)
		require.Equal(t, "bob", details[1].Seller.Username)
	})
}

// Test UserDetailByID
func TestMemoryStore_UserDetailByID(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	require.NoError(t, store.CreateBid(newBid("bid1", "prod1", "user2", 50)))

	t.Run("seller_with_product", func(t *testing.T) {
		detail, err := store.UserDetailByID("user1")
		require.NoError(t, err)
		require.Equal(t, "alice", detail.User.Username)
		require.Len(t, detail.Products, 1)
		require.Empty(t, detail.Bids)
	})

	t.Run("bidder_with_bid", func(t *testing.T) {
		detail, err := store.UserDetailByID("user2")
		require.NoError(t, err)
		require.Empty(t, detail.Products)
		require.Len(t, detail.Bids, 1)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := store.UserDetailByID("ghost")
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})
}
