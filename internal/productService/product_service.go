package product

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/internal/policy"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// ProductService defines the business logic for product listings
type ProductService struct {
	repo repository.AuctionStore
}

// NewProductService creates a new ProductService instance
func NewProductService(repo repository.AuctionStore) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ProductInput carries the mutable product fields of a create or update
// request. EndDate arrives as a string and must parse as a timestamp.
// SellerID is honored on update only.
type ProductInput struct {
	Name          string
	Description   string
	Category      string
	OriginalPrice float64
	PictureURL    string
	EndDate       string
	SellerID      string
}

// ListProducts returns every product with its seller and bids
func (s *ProductService) ListProducts() ([]model.ProductDetail, error) {
	details, err := s.repo.ListProductDetails()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	if details == nil {
		return nil, fmt.Errorf("service: %w", auctionerrors.ErrProductNotFound)
	}
	return details, nil
}

// GetProduct returns one product with its seller and bids
func (s *ProductService) GetProduct(productID string) (model.ProductDetail, error) {
	detail, err := s.repo.ProductDetailByID(productID)
	if err != nil {
		return model.ProductDetail{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return detail, nil
}

// CreateProduct validates the input and stores a new listing owned by the
// actor.
func (s *ProductService) CreateProduct(input ProductInput, actor auth.Identity) (model.Product, error) {
	endDate, err := validateProduct(input)
	if err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		ID:            utils.GenerateID(),
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		OriginalPrice: input.OriginalPrice,
		PictureURL:    input.PictureURL,
		EndDate:       endDate,
		SellerID:      actor.ID,
	}

	if err := s.repo.CreateProduct(product); err != nil {
		return model.Product{}, fmt.Errorf("service: failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct fully replaces the mutable fields of an existing listing.
// Existence is checked before authorization, so a missing product is
// reported as not found, never as forbidden. A supplied SellerID replaces
// the current owner verbatim; no check is made that the new owner exists.
func (s *ProductService) UpdateProduct(productID string, input ProductInput, actor auth.Identity) (model.Product, error) {
	endDate, err := validateProduct(input)
	if err != nil {
		return model.Product{}, err
	}

	current, err := s.repo.ProductByID(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, err)
	}

	if !policy.CanMutate(actor.ID, actor.Admin, current.SellerID) {
		return model.Product{}, fmt.Errorf("service: update product %s: %w", productID, auctionerrors.ErrForbidden)
	}

	sellerID := current.SellerID
	if input.SellerID != "" {
		sellerID = input.SellerID
	}

	product := model.Product{
		ID:            productID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		OriginalPrice: input.OriginalPrice,
		PictureURL:    input.PictureURL,
		EndDate:       endDate,
		SellerID:      sellerID,
	}

	// the store re-checks existence, so a delete racing us surfaces as
	// not found rather than a resurrected product
	if err := s.repo.UpdateProduct(product); err != nil {
		return model.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, err)
	}
	return product, nil
}

// DeleteProduct removes a listing and every bid placed against it. The
// cascade is atomic: no caller observes the product gone with bids left.
func (s *ProductService) DeleteProduct(productID string, actor auth.Identity) error {
	current, err := s.repo.ProductByID(productID)
	if err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}

	if !policy.CanMutate(actor.ID, actor.Admin, current.SellerID) {
		return fmt.Errorf("service: delete product %s: %w", productID, auctionerrors.ErrForbidden)
	}

	if err := s.repo.DeleteProductWithBids(productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}
	return nil
}

// validateProduct checks the shared create/update rules. Whatever fails,
// the error lists both name and endDate, matching the public contract.
func validateProduct(input ProductInput) (time.Time, error) {
	endDate, parseErr := parseEndDate(input.EndDate)
	if input.Name == "" || parseErr != nil {
		return time.Time{}, auctionerrors.NewValidationError("name", "endDate")
	}
	return endDate, nil
}

// parseEndDate accepts an RFC 3339 timestamp or a bare calendar date
func parseEndDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
