package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// Prints a bcrypt hash suitable for seeding a users row by hand
func main() {
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run scripts/generate_password.go [-cost 12] <password>")
	}
	password := flag.Arg(0)

	cfg := &config.Config{}
	cfg.Security.BcryptCost = *cost
	passwords := auth.NewPasswordManager(cfg)

	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Hash: %s\n", hash)

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Println("✅ Hash verified successfully!")
}
