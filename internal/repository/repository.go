package repository

import (
	"fmt"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// AuctionStore defines the storage interface for the marketplace. Every
// write is existence-checked atomically by the implementation, so a caller
// racing with a concurrent delete sees a not-found error rather than a torn
// state.
type AuctionStore interface {
	CreateUser(user model.User) error
	UserByID(userID string) (model.User, error)
	UserByEmail(email string) (model.User, error)
	UserDetailByID(userID string) (model.UserDetail, error)

	CreateProduct(product model.Product) error
	ProductByID(productID string) (model.Product, error)
	ProductDetailByID(productID string) (model.ProductDetail, error)
	ListProductDetails() ([]model.ProductDetail, error)
	UpdateProduct(product model.Product) error
	DeleteProductWithBids(productID string) error

	CreateBid(bid model.Bid) error
	BidByID(bidID string) (model.Bid, error)
	DeleteBid(bidID string) error
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]model.User
	products     map[string]model.Product
	bids         map[string]model.Bid
	productOrder []string            // product IDs in insertion order
	productBids  map[string][]string // key: productID -> bid IDs in insertion order
	bidOrder     []string            // bid IDs in insertion order
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]model.User),
		products:    make(map[string]model.Product),
		bids:        make(map[string]model.Bid),
		productBids: make(map[string][]string),
	}
}

// CreateUser adds a user, rejecting duplicate emails
func (s *MemoryStore) CreateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.ID, auctionerrors.ErrEmailTaken)
		}
	}
	s.users[user.ID] = user
	return nil
}

// UserByID returns the user with the given id
func (s *MemoryStore) UserByID(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// UserByEmail returns the user registered under the given email
func (s *MemoryStore) UserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email: %w", auctionerrors.ErrUserNotFound)
}

// UserDetailByID returns a user with the products they sell and the bids
// they placed, both in insertion order.
func (s *MemoryStore) UserDetailByID(userID string) (model.UserDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.UserDetail{}, fmt.Errorf("get user detail %s: %w", userID, auctionerrors.ErrUserNotFound)
	}

	detail := model.UserDetail{
		User:     user,
		Products: []model.Product{},
		Bids:     []model.Bid{},
	}
	for _, id := range s.productOrder {
		if p := s.products[id]; p.SellerID == userID {
			detail.Products = append(detail.Products, p)
		}
	}
	for _, id := range s.bidOrder {
		if b := s.bids[id]; b.BidderID == userID {
			detail.Bids = append(detail.Bids, b)
		}
	}
	return detail, nil
}

// CreateProduct adds a product listing
func (s *MemoryStore) CreateProduct(product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)
	return nil
}

// ProductByID returns the product with the given id
func (s *MemoryStore) ProductByID(productID string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// ProductDetailByID returns a product with its seller and bids, each bid
// carrying its bidder.
func (s *MemoryStore) ProductDetailByID(productID string) (model.ProductDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[productID]
	if !ok {
		return model.ProductDetail{}, fmt.Errorf("get product detail %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return s.assembleDetail(product), nil
}

// ListProductDetails returns every product with seller and bids, in
// insertion order. Never fails for an empty store.
func (s *MemoryStore) ListProductDetails() ([]model.ProductDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := make([]model.ProductDetail, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		details = append(details, s.assembleDetail(s.products[id]))
	}
	return details, nil
}

// assembleDetail builds the association fan-out for one product.
// Caller must hold at least the read lock.
func (s *MemoryStore) assembleDetail(product model.Product) model.ProductDetail {
	detail := model.ProductDetail{
		Product: product,
		Seller:  s.users[product.SellerID],
		Bids:    []model.BidDetail{},
	}
	for _, bidID := range s.productBids[product.ID] {
		bid := s.bids[bidID]
		detail.Bids = append(detail.Bids, model.BidDetail{
			Bid:    bid,
			Bidder: s.users[bid.BidderID],
		})
	}
	return detail
}

// UpdateProduct replaces every field of an existing product
func (s *MemoryStore) UpdateProduct(product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return fmt.Errorf("update product %s: %w", product.ID, auctionerrors.ErrProductNotFound)
	}
	s.products[product.ID] = product
	return nil
}

// DeleteProductWithBids removes a product and every bid referencing it
// under a single lock, so no caller can observe the product gone while its
// bids remain, or the reverse.
func (s *MemoryStore) DeleteProductWithBids(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	for _, bidID := range s.productBids[productID] {
		delete(s.bids, bidID)
		s.bidOrder = removeID(s.bidOrder, bidID)
	}
	delete(s.productBids, productID)
	delete(s.products, productID)
	s.productOrder = removeID(s.productOrder, productID)
	return nil
}

// CreateBid records a bid, failing if the referenced product no longer
// exists. The existence check and the insert happen under one lock, so a
// concurrent product delete can never leave an orphan bid.
func (s *MemoryStore) CreateBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[bid.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}

	s.bids[bid.ID] = bid
	s.productBids[bid.ProductID] = append(s.productBids[bid.ProductID], bid.ID)
	s.bidOrder = append(s.bidOrder, bid.ID)
	return nil
}

// BidByID returns the bid with the given id
func (s *MemoryStore) BidByID(bidID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// DeleteBid removes a bid. Exactly one of two concurrent deletes of the
// same bid succeeds; the other gets ErrBidNotFound.
func (s *MemoryStore) DeleteBid(bidID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}

	delete(s.bids, bidID)
	s.productBids[bid.ProductID] = removeID(s.productBids[bid.ProductID], bidID)
	s.bidOrder = removeID(s.bidOrder, bidID)
	return nil
}

// removeID drops the first occurrence of id from ids, preserving order
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
