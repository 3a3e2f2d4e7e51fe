package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// PostgresStore is a pgx-backed implementation of AuctionStore. Referential
// integrity between products and bids is enforced here (cascade delete in a
// transaction), not delegated to schema constraints.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on top of an existing pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ConnectPool opens and pings a pgx connection pool
func ConnectPool(dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return pool, nil
}

// CreateUser inserts a user, rejecting duplicate emails
func (s *PostgresStore) CreateUser(user model.User) error {
	var taken bool
	err := s.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, user.Email).Scan(&taken)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.ID, err)
	}
	if taken {
		return fmt.Errorf("create user %s: %w", user.ID, auctionerrors.ErrEmailTaken)
	}

	_, err = s.pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, admin, password_hash) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Admin, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.ID, err)
	}
	return nil
}

// UserByID returns the user with the given id
func (s *PostgresStore) UserByID(userID string) (model.User, error) {
	var u model.User
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, username, email, admin, password_hash FROM users WHERE id = $1`, userID,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Admin, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

// UserByEmail returns the user registered under the given email
func (s *PostgresStore) UserByEmail(email string) (model.User, error) {
	var u model.User
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, username, email, admin, password_hash FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Admin, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user by email: %w", auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// UserDetailByID returns a user with their products and bids
func (s *PostgresStore) UserDetailByID(userID string) (model.UserDetail, error) {
	user, err := s.UserByID(userID)
	if err != nil {
		return model.UserDetail{}, err
	}

	detail := model.UserDetail{User: user, Products: []model.Product{}, Bids: []model.Bid{}}

	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, description, category, original_price, picture_url, end_date, seller_id
		 FROM products WHERE seller_id = $1 ORDER BY seq`, userID)
	if err != nil {
		return model.UserDetail{}, fmt.Errorf("get user detail %s: %w", userID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.OriginalPrice,
			&p.PictureURL, &p.EndDate, &p.SellerID); err != nil {
			return model.UserDetail{}, fmt.Errorf("get user detail %s: %w", userID, err)
		}
		detail.Products = append(detail.Products, p)
	}

	bids, err := s.queryBids(`SELECT id, product_id, bidder_id, price, date FROM bids WHERE bidder_id = $1 ORDER BY seq`, userID)
	if err != nil {
		return model.UserDetail{}, fmt.Errorf("get user detail %s: %w", userID, err)
	}
	detail.Bids = bids
	return detail, nil
}

// CreateProduct inserts a product listing
func (s *PostgresStore) CreateProduct(product model.Product) error {
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO products (id, name, description, category, original_price, picture_url, end_date, seller_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		product.ID, product.Name, product.Description, product.Category,
		product.OriginalPrice, product.PictureURL, product.EndDate, product.SellerID,
	)
	if err != nil {
		return fmt.Errorf("create product %s: %w", product.ID, err)
	}
	return nil
}

// ProductByID returns the product with the given id
func (s *PostgresStore) ProductByID(productID string) (model.Product, error) {
	var p model.Product
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, name, description, category, original_price, picture_url, end_date, seller_id
		 FROM products WHERE id = $1`, productID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.OriginalPrice,
		&p.PictureURL, &p.EndDate, &p.SellerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, err)
	}
	return p, nil
}

// ProductDetailByID returns a product with its seller and bids
func (s *PostgresStore) ProductDetailByID(productID string) (model.ProductDetail, error) {
	product, err := s.ProductByID(productID)
	if err != nil {
		return model.ProductDetail{}, err
	}
	return s.assembleDetail(product)
}

// ListProductDetails returns every product with seller and bids
func (s *PostgresStore) ListProductDetails() ([]model.ProductDetail, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, description, category, original_price, picture_url, end_date, seller_id
		 FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.OriginalPrice,
			&p.PictureURL, &p.EndDate, &p.SellerID); err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, p)
	}
	rows.Close()

	details := make([]model.ProductDetail, 0, len(products))
	for _, p := range products {
		d, err := s.assembleDetail(p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// assembleDetail loads the seller and bid fan-out for one product. A seller
// id pointing at no user yields a zero-value seller rather than an error,
// matching the permissive ownership-transfer semantics.
func (s *PostgresStore) assembleDetail(product model.Product) (model.ProductDetail, error) {
	detail := model.ProductDetail{Product: product, Bids: []model.BidDetail{}}

	seller, err := s.UserByID(product.SellerID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return model.ProductDetail{}, err
	}
	detail.Seller = seller

	rows, err := s.pool.Query(context.Background(),
		`SELECT b.id, b.product_id, b.bidder_id, b.price, b.date, u.id, u.username
		 FROM bids b LEFT JOIN users u ON u.id = b.bidder_id
		 WHERE b.product_id = $1 ORDER BY b.seq`, product.ID)
	if err != nil {
		return model.ProductDetail{}, fmt.Errorf("get bids for product %s: %w", product.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bd model.BidDetail
		var bidderID, bidderName *string
		if err := rows.Scan(&bd.Bid.ID, &bd.Bid.ProductID, &bd.Bid.BidderID,
			&bd.Bid.Price, &bd.Bid.Date, &bidderID, &bidderName); err != nil {
			return model.ProductDetail{}, fmt.Errorf("get bids for product %s: %w", product.ID, err)
		}
		if bidderID != nil {
			bd.Bidder = model.User{ID: *bidderID, Username: *bidderName}
		}
		detail.Bids = append(detail.Bids, bd)
	}
	return detail, nil
}

// UpdateProduct replaces every field of an existing product
func (s *PostgresStore) UpdateProduct(product model.Product) error {
	ct, err := s.pool.Exec(context.Background(),
		`UPDATE products SET name = $1, description = $2, category = $3, original_price = $4,
		 picture_url = $5, end_date = $6, seller_id = $7 WHERE id = $8`,
		product.Name, product.Description, product.Category, product.OriginalPrice,
		product.PictureURL, product.EndDate, product.SellerID, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update product %s: %w", product.ID, auctionerrors.ErrProductNotFound)
	}
	return nil
}

// DeleteProductWithBids removes a product and its bids in one transaction
func (s *PostgresStore) DeleteProductWithBids(productID string) error {
	ctx := context.Background()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bids WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	if ct.RowsAffected() == 0 {
		// rollback restores any bids deleted above
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	return nil
}

// CreateBid records a bid only if the referenced product still exists; the
// guard and the insert run in one statement so a concurrent product delete
// cannot leave an orphan bid.
func (s *PostgresStore) CreateBid(bid model.Bid) error {
	ct, err := s.pool.Exec(context.Background(),
		`INSERT INTO bids (id, product_id, bidder_id, price, date)
		 SELECT $1, $2, $3, $4, $5 WHERE EXISTS(SELECT 1 FROM products WHERE id = $2)`,
		bid.ID, bid.ProductID, bid.BidderID, bid.Price, bid.Date,
	)
	if err != nil {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}
	return nil
}

// BidByID returns the bid with the given id
func (s *PostgresStore) BidByID(bidID string) (model.Bid, error) {
	var b model.Bid
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, product_id, bidder_id, price, date FROM bids WHERE id = $1`, bidID,
	).Scan(&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return b, nil
}

// DeleteBid removes a bid; only one of two racing deletes sees the row
func (s *PostgresStore) DeleteBid(bidID string) error {
	ct, err := s.pool.Exec(context.Background(), `DELETE FROM bids WHERE id = $1`, bidID)
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", bidID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delete bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// queryBids runs a bid query and scans the rows
func (s *PostgresStore) queryBids(query string, args ...any) ([]model.Bid, error) {
	rows, err := s.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}
