package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the well-known chain objects and resource limits. The clock
// is a system-owned shared object with a fixed address.
const (
	DefaultClockID        = "0x6"
	DefaultRentalModule   = "rentables_ext"
	DefaultNFTModule      = "simple_nft"
	DefaultGasBudget      = uint64(10_000_000)
	DefaultCacheTTL       = 5 * time.Second
	DefaultPort           = "8080"
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds the deployment constants that parameterize every chain call:
// the published package, module names, the well-known clock object and the
// environment-specific policy objects.
type Config struct {
	Stage string
	Port  string

	// Chain endpoints
	RPCURL    string
	WalletURL string

	// Deployed package and modules
	PackageID    string
	RentalModule string
	NFTModule    string

	// Environment-specific object ids. PublisherID is an external
	// precondition: acquiring a Publisher is not part of this service.
	ClockID        string
	RentalPolicyID string
	ProtectedTPID  string
	PublisherID    string

	GasBudget uint64
	CacheTTL  time.Duration
}

// NFTType returns the fully qualified struct type of the NFT this
// deployment mints and rents.
func (c *Config) NFTType() string {
	return fmt.Sprintf("%s::%s::NFT", c.PackageID, c.NFTModule)
}

// RentalTarget returns the fully qualified target of a function in the
// rental extension module.
func (c *Config) RentalTarget(fn string) string {
	return fmt.Sprintf("%s::%s::%s", c.PackageID, c.RentalModule, fn)
}

// NFTTarget returns the fully qualified target of a function in the NFT
// module.
func (c *Config) NFTTarget(fn string) string {
	return fmt.Sprintf("%s::%s::%s", c.PackageID, c.NFTModule, fn)
}

// Load builds a Config from the environment. SUI_RPC_URL and PACKAGE_ID are
// required; everything else has a sensible default or is optional.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:          getEnv("STAGE", "development"),
		Port:           getEnv("PORT", DefaultPort),
		RPCURL:         os.Getenv("SUI_RPC_URL"),
		WalletURL:      os.Getenv("WALLET_BRIDGE_URL"),
		PackageID:      os.Getenv("PACKAGE_ID"),
		RentalModule:   getEnv("RENTAL_MODULE", DefaultRentalModule),
		NFTModule:      getEnv("NFT_MODULE", DefaultNFTModule),
		ClockID:        getEnv("CLOCK_ID", DefaultClockID),
		RentalPolicyID: os.Getenv("RENTAL_POLICY_ID"),
		ProtectedTPID:  os.Getenv("PROTECTED_TP_ID"),
		PublisherID:    os.Getenv("PUBLISHER_ID"),
		GasBudget:      DefaultGasBudget,
		CacheTTL:       DefaultCacheTTL,
	}

	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("SUI_RPC_URL environment variable is required")
	}
	if cfg.PackageID == "" {
		return nil, fmt.Errorf("PACKAGE_ID environment variable is required")
	}

	if v := os.Getenv("GAS_BUDGET"); v != "" {
		budget, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GAS_BUDGET %q: %w", v, err)
		}
		cfg.GasBudget = budget
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = ttl
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
