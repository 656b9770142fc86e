package constants

import (
	"fmt"
	"time"
)

// Centralized Redis cache keys and TTLs.
// Pattern: cryptofolio:{module}:{operation}:{identifier}

const (
	CACHE_PREFIX = "cryptofolio"
)

// TTL tiers
const (
	TTL_STATIC_SHORT   = 6 * time.Hour    // user profiles
	TTL_SEMI_STATIC    = 1 * time.Hour    // crypto metadata
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // portfolio snapshots
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // crypto listings with live prices
	TTL_REALTIME_SHORT = 30 * time.Second // individual price lookups
)

// ================== CRYPTOS MODULE ==================

const (
	CACHE_KEY_CRYPTOS_LIST = CACHE_PREFIX + ":cryptos:list"
	CACHE_KEY_CRYPTOS_TOP  = CACHE_PREFIX + ":cryptos:top5"
	CACHE_KEY_CRYPTO_BY_ID = CACHE_PREFIX + ":cryptos:detail:id:" // + crypto-id
)

const (
	TTL_CRYPTOS_LIST  = TTL_DYNAMIC_SHORT
	TTL_CRYPTOS_TOP   = TTL_DYNAMIC_SHORT
	TTL_CRYPTO_DETAIL = TTL_REALTIME_SHORT
)

// ================== PORTFOLIO MODULE ==================

const (
	CACHE_KEY_PORTFOLIO_USER   = CACHE_PREFIX + ":portfolio:user:id:"   // + user-id
	CACHE_KEY_PORTFOLIO_WALLET = CACHE_PREFIX + ":portfolio:wallet:id:" // + wallet-id
)

const (
	TTL_PORTFOLIO = TTL_DYNAMIC_MEDIUM
)

// ================== AUTH MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:id:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_CRYPTOS_ALL   = CACHE_PREFIX + ":cryptos:*"
	PATTERN_INVALIDATE_PORTFOLIO_ALL = CACHE_PREFIX + ":portfolio:*"
)

// ================== HELPERS ==================

func BuildCryptoDetailKey(cryptoID uint) string {
	return CACHE_KEY_CRYPTO_BY_ID + fmt.Sprintf("%d", cryptoID)
}

func BuildPortfolioUserKey(userID uint) string {
	return CACHE_KEY_PORTFOLIO_USER + fmt.Sprintf("%d", userID)
}

func BuildPortfolioWalletKey(walletID uint) string {
	return CACHE_KEY_PORTFOLIO_WALLET + fmt.Sprintf("%d", walletID)
}
