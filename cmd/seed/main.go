package main

import (
	"fmt"
	"log"
	"time"

	"cryptofolio/internal/alerts"
	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/portfolio"
	"cryptofolio/internal/shared/config"
	"cryptofolio/internal/shared/database"
	"cryptofolio/internal/transactions"
	"cryptofolio/internal/users"
	"cryptofolio/internal/wallets"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Cryptofolio Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"alerts",
		"transactions",
		"holdings",
		"wallets",
		"cryptos",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	seededUsers, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	seededCryptos, err := s.SeedCryptos()
	if err != nil {
		return fmt.Errorf("failed to seed cryptos: %w", err)
	}

	seededWallets, err := s.SeedWallets(seededUsers)
	if err != nil {
		return fmt.Errorf("failed to seed wallets: %w", err)
	}

	if err := s.SeedHoldings(seededWallets, seededCryptos); err != nil {
		return fmt.Errorf("failed to seed holdings: %w", err)
	}

	if err := s.SeedTransactions(seededWallets, seededCryptos); err != nil {
		return fmt.Errorf("failed to seed transactions: %w", err)
	}

	if err := s.SeedAlerts(seededUsers, seededCryptos); err != nil {
		return fmt.Errorf("failed to seed alerts: %w", err)
	}

	return nil
}

// SeedUsers creates an admin and a couple of regular accounts
func (s *Seeder) SeedUsers() ([]users.User, error) {
	fmt.Println("  Seeding users...")

	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(hashed)
	}

	seedUsers := []users.User{
		{
			FirstName:  "Admin",
			LastName:   "User",
			Email:      "admin@cryptofolio.dev",
			Password:   hash("Admin@123"),
			Role:       users.RoleAdmin,
			BalanceUSD: 1_000_000,
		},
		{
			FirstName:  "Alice",
			LastName:   "Trader",
			Email:      "alice@example.com",
			Password:   hash("Alice@123"),
			Role:       users.RoleUser,
			BalanceUSD: 50_000,
		},
		{
			FirstName:  "Bob",
			LastName:   "Hodler",
			Email:      "bob@example.com",
			Password:   hash("Bob@1234"),
			Role:       users.RoleUser,
			BalanceUSD: 25_000,
		},
	}

	for i := range seedUsers {
		if err := s.db.PostgreSQL.Create(&seedUsers[i]).Error; err != nil {
			return nil, err
		}
		fmt.Printf("    Created user: %s (%s)\n", seedUsers[i].Email, seedUsers[i].Role)
	}

	return seedUsers, nil
}

// SeedCryptos loads the tracked currencies with reference prices
func (s *Seeder) SeedCryptos() ([]cryptos.Crypto, error) {
	fmt.Println("  Seeding cryptos...")

	seedCryptos := []cryptos.Crypto{
		{Symbol: "BTC", Name: "Bitcoin", Category: "Layer 1", CurrentPriceUSD: 64250.00},
		{Symbol: "ETH", Name: "Ethereum", Category: "Layer 1", CurrentPriceUSD: 3180.50},
		{Symbol: "SOL", Name: "Solana", Category: "Layer 1", CurrentPriceUSD: 148.72},
		{Symbol: "USDC", Name: "USD Coin", Category: "Stablecoin", CurrentPriceUSD: 1.00},
		{Symbol: "LINK", Name: "Chainlink", Category: "Oracle", CurrentPriceUSD: 14.35},
		{Symbol: "UNI", Name: "Uniswap", Category: "DeFi", CurrentPriceUSD: 7.82},
		{Symbol: "DOGE", Name: "Dogecoin", Category: "Meme", CurrentPriceUSD: 0.12},
	}

	for i := range seedCryptos {
		if err := s.db.PostgreSQL.Create(&seedCryptos[i]).Error; err != nil {
			return nil, err
		}
		fmt.Printf("    Created crypto: %s ($%.2f)\n", seedCryptos[i].Symbol, seedCryptos[i].CurrentPriceUSD)
	}

	return seedCryptos, nil
}

// SeedWallets gives every user their default wallet
func (s *Seeder) SeedWallets(seededUsers []users.User) ([]wallets.Wallet, error) {
	fmt.Println("  Seeding wallets...")

	var seededWallets []wallets.Wallet
	for _, u := range seededUsers {
		wallet := wallets.Wallet{
			UserID:     u.ID,
			WalletName: u.FirstName + "_Wallet",
			BalanceUSD: u.BalanceUSD / 2,
		}
		if err := s.db.PostgreSQL.Create(&wallet).Error; err != nil {
			return nil, err
		}
		fmt.Printf("    Created wallet: %s\n", wallet.WalletName)
		seededWallets = append(seededWallets, wallet)
	}

	return seededWallets, nil
}

// SeedHoldings gives the regular users starter positions
func (s *Seeder) SeedHoldings(seededWallets []wallets.Wallet, seededCryptos []cryptos.Crypto) error {
	fmt.Println("  Seeding holdings...")

	if len(seededWallets) < 3 || len(seededCryptos) < 3 {
		return fmt.Errorf("not enough seed data for holdings")
	}

	holdings := []portfolio.Holding{
		{WalletID: seededWallets[1].ID, CryptoID: seededCryptos[0].ID, QuantityHeld: 0.5, AvgBuyPrice: 58000},
		{WalletID: seededWallets[1].ID, CryptoID: seededCryptos[1].ID, QuantityHeld: 4.0, AvgBuyPrice: 2900},
		{WalletID: seededWallets[2].ID, CryptoID: seededCryptos[2].ID, QuantityHeld: 60.0, AvgBuyPrice: 120},
	}

	for i := range holdings {
		if err := s.db.PostgreSQL.Create(&holdings[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("    Created %d holdings\n", len(holdings))

	return nil
}

// SeedTransactions records the trades behind the seeded holdings
func (s *Seeder) SeedTransactions(seededWallets []wallets.Wallet, seededCryptos []cryptos.Crypto) error {
	fmt.Println("  Seeding transactions...")

	now := time.Now()
	txns := []transactions.Transaction{
		{WalletID: seededWallets[1].ID, CryptoID: seededCryptos[0].ID, TxnType: transactions.TxnTypeBuy, Quantity: 0.5, PriceAtTxn: 58000, TxnDate: now.AddDate(0, -2, 0)},
		{WalletID: seededWallets[1].ID, CryptoID: seededCryptos[1].ID, TxnType: transactions.TxnTypeBuy, Quantity: 4.0, PriceAtTxn: 2900, TxnDate: now.AddDate(0, -1, -10)},
		{WalletID: seededWallets[2].ID, CryptoID: seededCryptos[2].ID, TxnType: transactions.TxnTypeBuy, Quantity: 80.0, PriceAtTxn: 110, TxnDate: now.AddDate(0, -1, 0)},
		{WalletID: seededWallets[2].ID, CryptoID: seededCryptos[2].ID, TxnType: transactions.TxnTypeSell, Quantity: 20.0, PriceAtTxn: 160, TxnDate: now.AddDate(0, 0, -3)},
	}

	for i := range txns {
		if err := s.db.PostgreSQL.Create(&txns[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("    Created %d transactions\n", len(txns))

	return nil
}

// SeedAlerts adds a few active price alerts for the demo users
func (s *Seeder) SeedAlerts(seededUsers []users.User, seededCryptos []cryptos.Crypto) error {
	fmt.Println("  Seeding alerts...")

	seedAlerts := []alerts.Alert{
		{UserID: seededUsers[1].ID, CryptoID: seededCryptos[0].ID, Direction: alerts.DirectionAbove, ThresholdUSD: 70000, Status: alerts.StatusActive},
		{UserID: seededUsers[1].ID, CryptoID: seededCryptos[1].ID, Direction: alerts.DirectionBelow, ThresholdUSD: 2500, Status: alerts.StatusActive},
		{UserID: seededUsers[2].ID, CryptoID: seededCryptos[2].ID, Direction: alerts.DirectionAbove, ThresholdUSD: 200, Status: alerts.StatusActive},
	}

	for i := range seedAlerts {
		if err := s.db.PostgreSQL.Create(&seedAlerts[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("    Created %d alerts\n", len(seedAlerts))

	return nil
}
