package helpers

import (
	"time"

	model "auction-house/internal/models"
)

// Request DTOs
type ProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	OriginalPrice float64 `json:"originalPrice"`
	PictureURL    string  `json:"pictureUrl"`
	EndDate       string  `json:"endDate"`
	SellerID      string  `json:"sellerId"`
}

// PlaceBidRequest leaves price untyped: the contract accepts a JSON number
// or a numeric string, and anything else must surface as a validation
// failure naming the field, not as a decode error.
type PlaceBidRequest struct {
	Price any `json:"price"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response DTOs
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type BidSummary struct {
	ID     string       `json:"id"`
	Price  float64      `json:"price"`
	Date   string       `json:"date"`
	Bidder *UserSummary `json:"bidder,omitempty"`
}

// ProductResponse is the created/updated product projection
type ProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	OriginalPrice float64 `json:"originalPrice"`
	PictureURL    string  `json:"pictureUrl"`
	EndDate       string  `json:"endDate"`
	SellerID      string  `json:"sellerId"`
}

// ProductDetailResponse is the list/get projection with the seller summary
// and the bid fan-out.
type ProductDetailResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	OriginalPrice float64      `json:"originalPrice"`
	PictureURL    string       `json:"pictureUrl"`
	EndDate       string       `json:"endDate"`
	SellerID      string       `json:"sellerId"`
	Seller        UserSummary  `json:"seller"`
	Bids          []BidSummary `json:"bids"`
}

type BidResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	BidderID  string  `json:"bidderId"`
}

type UserDetailResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Admin    bool              `json:"admin"`
	Products []ProductResponse `json:"products"`
	Bids     []BidResponse     `json:"bids"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// NewProductResponse projects a bare product
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		OriginalPrice: p.OriginalPrice,
		PictureURL:    p.PictureURL,
		EndDate:       formatTime(p.EndDate),
		SellerID:      p.SellerID,
	}
}

// NewProductDetailResponse projects a product with seller and bids. The
// bidder summary is attached only on the single-product view.
func NewProductDetailResponse(d model.ProductDetail, withBidders bool) ProductDetailResponse {
	bids := make([]BidSummary, 0, len(d.Bids))
	for _, bd := range d.Bids {
		summary := BidSummary{
			ID:    bd.Bid.ID,
			Price: bd.Bid.Price,
			Date:  formatTime(bd.Bid.Date),
		}
		if withBidders {
			summary.Bidder = &UserSummary{ID: bd.Bidder.ID, Username: bd.Bidder.Username}
		}
		bids = append(bids, summary)
	}

	return ProductDetailResponse{
		ID:            d.Product.ID,
		Name:          d.Product.Name,
		Description:   d.Product.Description,
		Category:      d.Product.Category,
		OriginalPrice: d.Product.OriginalPrice,
		PictureURL:    d.Product.PictureURL,
		EndDate:       formatTime(d.Product.EndDate),
		SellerID:      d.Product.SellerID,
		Seller:        UserSummary{ID: d.Seller.ID, Username: d.Seller.Username},
		Bids:          bids,
	}
}

// NewBidResponse projects a bid
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		ProductID: b.ProductID,
		Price:     b.Price,
		Date:      formatTime(b.Date),
		BidderID:  b.BidderID,
	}
}

// NewUserDetailResponse projects a user with their products and bids
func NewUserDetailResponse(d model.UserDetail) UserDetailResponse {
	products := make([]ProductResponse, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, NewProductResponse(p))
	}
	bids := make([]BidResponse, 0, len(d.Bids))
	for _, b := range d.Bids {
		bids = append(bids, NewBidResponse(b))
	}

	return UserDetailResponse{
		ID:       d.User.ID,
		Username: d.User.Username,
		Email:    d.User.Email,
		Admin:    d.User.Admin,
		Products: products,
		Bids:     bids,
	}
}

// formatTime renders timestamps for the wire
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
