package main

import (
	"fmt"
	"os"

	"auction-house/internal/auth"
	bid "auction-house/internal/bidService"
	"auction-house/internal/config"
	model "auction-house/internal/models"
	product "auction-house/internal/productService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	user "auction-house/internal/userService"
	"auction-house/utils"
)

func main() {
	cfg := config.Load()

	repo, cleanup, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	productSvc := product.NewProductService(repo)
	bidSvc := bid.NewBidService(repo)
	userSvc := user.NewUserService(repo, tokens)

	router := server.SetupRouter(productSvc, bidSvc, userSvc, tokens)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the storage backend from config. The in-memory store
// is the default and gets a couple of seeded accounts so the API is usable
// out of the box.
func buildStore(cfg *config.Config) (repository.AuctionStore, func(), error) {
	if cfg.StoreDriver == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		pool, err := repository.ConnectPool(dsn)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("connected to postgres", map[string]any{"host": cfg.DBHost, "db": cfg.DBName})
		return repository.NewPostgresStore(pool), pool.Close, nil
	}

	repo := repository.NewMemoryStore()
	seedUsers(repo)
	return repo, func() {}, nil
}

// seedUsers adds demo accounts to the in-memory store
func seedUsers(repo *repository.MemoryStore) {
	users := []struct {
		user     model.User
		password string
	}{
		{model.User{ID: "user1", Username: "alice", Email: "alice@example.com", Admin: false}, "alice123"},
		{model.User{ID: "user2", Username: "bob", Email: "bob@example.com", Admin: false}, "bob123"},
		{model.User{ID: "admin1", Username: "admin", Email: "admin@example.com", Admin: true}, "admin123"},
	}

	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			utils.Fatal("failed to hash seed password", map[string]any{"user": u.user.Username, "error": err.Error()})
		}
		u.user.PasswordHash = hash
		if err := repo.CreateUser(u.user); err != nil {
			utils.Fatal("failed to seed user", map[string]any{"user": u.user.Username, "error": err.Error()})
		}
	}
}
