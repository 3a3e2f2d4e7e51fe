package bid

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/internal/policy"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// BidService defines the business logic for placing and withdrawing bids
type BidService struct {
	repo repository.AuctionStore
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.AuctionStore) *BidService {
	return &BidService{
		repo: repo,
	}
}

// PlaceBid records a bid by the actor against a product. rawPrice is the
// decoded JSON value of the price field and may be a number or a numeric
// string; anything else, or a non-finite or non-positive amount, is a
// validation failure reported before the product lookup.
func (s *BidService) PlaceBid(productID string, actor auth.Identity, rawPrice any) (model.Bid, error) {
	price, err := validatePrice(rawPrice)
	if err != nil {
		return model.Bid{}, err
	}

	if _, err := s.repo.ProductByID(productID); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on product %s: %w", productID, err)
	}

	bid := model.Bid{
		ID:        utils.GenerateID(),
		ProductID: productID,
		BidderID:  actor.ID,
		Price:     price,
		Date:      time.Now().UTC(),
	}

	// the store re-checks product existence, so a product delete racing
	// us surfaces as not found rather than an orphan bid
	if err := s.repo.CreateBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for product %s by user %s: %w", productID, actor.ID, err)
	}

	return bid, nil
}

// DeleteBid removes a bid. Only the original bidder or an admin may do so,
// and a missing bid is reported as not found before any permission verdict.
// The parent product is not consulted: bids on expired or reassigned
// listings remain deletable.
func (s *BidService) DeleteBid(bidID string, actor auth.Identity) error {
	bid, err := s.repo.BidByID(bidID)
	if err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}

	if !policy.CanMutate(actor.ID, actor.Admin, bid.BidderID) {
		return fmt.Errorf("service: delete bid %s: %w", bidID, auctionerrors.ErrForbidden)
	}

	if err := s.repo.DeleteBid(bidID); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}
	return nil
}

// validatePrice coerces the raw price and enforces that it is a finite
// number strictly greater than zero.
func validatePrice(raw any) (float64, error) {
	var price float64
	switch v := raw.(type) {
	case float64:
		price = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, auctionerrors.NewValidationError("price")
		}
		price = parsed
	default:
		return 0, auctionerrors.NewValidationError("price")
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, auctionerrors.NewValidationError("price")
	}
	return price, nil
}
