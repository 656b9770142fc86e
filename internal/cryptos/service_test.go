package cryptos

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptofolio/pkg/cache"
)

type fakeCryptoRepo struct {
	mu       sync.Mutex
	byID     map[uint]*Crypto
	nextID   uint
	getCalls int
}

func newFakeCryptoRepo() *fakeCryptoRepo {
	return &fakeCryptoRepo{byID: make(map[uint]*Crypto), nextID: 1}
}

func (f *fakeCryptoRepo) GetAll(ctx context.Context) ([]Crypto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	var list []Crypto
	for _, c := range f.byID {
		list = append(list, *c)
	}
	return list, nil
}

func (f *fakeCryptoRepo) GetTop(ctx context.Context, limit int) ([]Crypto, error) {
	list, err := f.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit < len(list) {
		return list[:limit], nil
	}
	return list, nil
}

func (f *fakeCryptoRepo) GetByID(ctx context.Context, id uint) (*Crypto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, ErrCryptoNotFound
	}
	found := *c
	return &found, nil
}

func (f *fakeCryptoRepo) Create(ctx context.Context, crypto *Crypto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	crypto.ID = f.nextID
	f.nextID++
	stored := *crypto
	f.byID[crypto.ID] = &stored
	return nil
}

func (f *fakeCryptoRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (*Crypto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, ErrCryptoNotFound
	}
	if price, ok := updates["current_price_usd"].(float64); ok {
		c.CurrentPriceUSD = price
	}
	if name, ok := updates["name"].(string); ok {
		c.Name = name
	}
	found := *c
	return &found, nil
}

func (f *fakeCryptoRepo) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return ErrCryptoNotFound
	}
	delete(f.byID, id)
	return nil
}

func newCryptoTestService(t *testing.T) (Service, *fakeCryptoRepo, cache.Service) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := newFakeCryptoRepo()
	cacheService := cache.NewService(client)
	return NewService(repo, cacheService, time.Minute), repo, cacheService
}

func TestListCryptosServesFromCache(t *testing.T) {
	svc, repo, cacheService := newCryptoTestService(t)
	ctx := context.Background()

	cached := []Crypto{{ID: 1, Symbol: "BTC", Name: "Bitcoin", CurrentPriceUSD: 64250}}
	require.NoError(t, cacheService.Set(ctx, cacheKeyAllCryptos, cached, time.Minute))

	list, err := svc.ListCryptos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BTC", list[0].Symbol)
	assert.Zero(t, repo.getCalls)
}

func TestListCryptosFallsThroughOnMiss(t *testing.T) {
	svc, repo, _ := newCryptoTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Crypto{Symbol: "ETH", Name: "Ethereum"}))

	list, err := svc.ListCryptos(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, repo.getCalls)
}

func TestListCryptosWithoutCache(t *testing.T) {
	repo := newFakeCryptoRepo()
	svc := NewService(repo, nil, 0)

	require.NoError(t, repo.Create(context.Background(), &Crypto{Symbol: "SOL"}))

	list, err := svc.ListCryptos(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTopCryptosLimit(t *testing.T) {
	repo := newFakeCryptoRepo()
	svc := NewService(repo, nil, 0)
	ctx := context.Background()

	for _, symbol := range []string{"BTC", "ETH", "SOL", "USDC", "LINK", "UNI", "DOGE"} {
		require.NoError(t, repo.Create(ctx, &Crypto{Symbol: symbol}))
	}

	top, err := svc.TopCryptos(ctx)
	require.NoError(t, err)
	assert.Len(t, top, topCryptoCount)
}

func TestMutationsInvalidateListings(t *testing.T) {
	svc, _, cacheService := newCryptoTestService(t)
	ctx := context.Background()

	stale := []Crypto{{ID: 99, Symbol: "OLD"}}
	require.NoError(t, cacheService.Set(ctx, cacheKeyAllCryptos, stale, time.Minute))
	require.NoError(t, cacheService.Set(ctx, cacheKeyTopCryptos, stale, time.Minute))

	_, err := svc.CreateCrypto(ctx, &CreateCryptoRequest{
		Symbol:          "BTC",
		Name:            "Bitcoin",
		CurrentPriceUSD: 64250,
	})
	require.NoError(t, err)

	var out []Crypto
	assert.ErrorIs(t, cacheService.Get(ctx, cacheKeyAllCryptos, &out), cache.ErrCacheMiss)
	assert.ErrorIs(t, cacheService.Get(ctx, cacheKeyTopCryptos, &out), cache.ErrCacheMiss)
}

func TestUpdateCrypto(t *testing.T) {
	repo := newFakeCryptoRepo()
	svc := NewService(repo, nil, 0)
	ctx := context.Background()

	created, err := svc.CreateCrypto(ctx, &CreateCryptoRequest{
		Symbol:          "BTC",
		Name:            "Bitcoin",
		CurrentPriceUSD: 64250,
	})
	require.NoError(t, err)

	newPrice := 70000.0
	updated, err := svc.UpdateCrypto(ctx, created.ID, &UpdateCryptoRequest{CurrentPriceUSD: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 70000.0, updated.CurrentPriceUSD)

	_, err = svc.UpdateCrypto(ctx, 999, &UpdateCryptoRequest{CurrentPriceUSD: &newPrice})
	assert.ErrorIs(t, err, ErrCryptoNotFound)
}
