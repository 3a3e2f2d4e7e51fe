package models

import "time"

// User represents a marketplace account. PasswordHash never leaves the
// storage/auth layers.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Admin        bool   `json:"admin"`
	PasswordHash string `json:"-"`
}

// Product represents a listing open for bidding until EndDate
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	PictureURL    string    `json:"pictureUrl"`
	EndDate       time.Time `json:"endDate"`
	SellerID      string    `json:"sellerId"`
}

// Bid represents an immutable price offer against a product
type Bid struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	BidderID  string    `json:"bidderId"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
}

// BidDetail is a bid together with its bidder
type BidDetail struct {
	Bid    Bid
	Bidder User
}

// ProductDetail is a product together with its seller and its bids,
// ordered by insertion.
type ProductDetail struct {
	Product Product
	Seller  User
	Bids    []BidDetail
}

// UserDetail is a user together with the products they sell and the bids
// they placed.
type UserDetail struct {
	User     User
	Products []Product
	Bids     []Bid
}
