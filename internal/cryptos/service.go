package cryptos

import (
	"context"
	"time"

	"cryptofolio/internal/shared/constants"
	"cryptofolio/pkg/cache"
)

const (
	cacheKeyAllCryptos = constants.CACHE_KEY_CRYPTOS_LIST
	cacheKeyTopCryptos = constants.CACHE_KEY_CRYPTOS_TOP
	topCryptoCount     = 5
)

type Service interface {
	ListCryptos(ctx context.Context) ([]Crypto, error)
	TopCryptos(ctx context.Context) ([]Crypto, error)
	GetCrypto(ctx context.Context, id uint) (*Crypto, error)
	CreateCrypto(ctx context.Context, req *CreateCryptoRequest) (*Crypto, error)
	UpdateCrypto(ctx context.Context, id uint, req *UpdateCryptoRequest) (*Crypto, error)
	DeleteCrypto(ctx context.Context, id uint) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService wires the repository with an optional read cache; pass nil cache
// to serve directly from the database.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListCryptos(ctx context.Context) ([]Crypto, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var list []Crypto
	err := s.cache.GetOrSet(ctx, cacheKeyAllCryptos, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &list)
	return list, err
}

func (s *service) TopCryptos(ctx context.Context) ([]Crypto, error) {
	if s.cache == nil {
		return s.repo.GetTop(ctx, topCryptoCount)
	}

	var list []Crypto
	err := s.cache.GetOrSet(ctx, cacheKeyTopCryptos, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetTop(ctx, topCryptoCount)
	}, &list)
	return list, err
}

func (s *service) GetCrypto(ctx context.Context, id uint) (*Crypto, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateCrypto(ctx context.Context, req *CreateCryptoRequest) (*Crypto, error) {
	crypto := &Crypto{
		Symbol:          req.Symbol,
		Name:            req.Name,
		Category:        req.Category,
		CurrentPriceUSD: req.CurrentPriceUSD,
	}
	if err := s.repo.Create(ctx, crypto); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return crypto, nil
}

func (s *service) UpdateCrypto(ctx context.Context, id uint, req *UpdateCryptoRequest) (*Crypto, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CurrentPriceUSD != nil {
		updates["current_price_usd"] = *req.CurrentPriceUSD
	}

	crypto, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return crypto, nil
}

func (s *service) DeleteCrypto(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

// stale listings are tolerable for at most one TTL window, so invalidation
// failures are ignored
func (s *service) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, cacheKeyAllCryptos, cacheKeyTopCryptos)
}
