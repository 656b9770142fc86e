package alerts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlertRepo struct {
	mu        sync.Mutex
	byID      map[uint]*Alert
	nextID    uint
	triggered []TriggeredAlert
	marked    []uint
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{byID: make(map[uint]*Alert), nextID: 1}
}

func (f *fakeAlertRepo) GetByUser(ctx context.Context, userID uint) ([]AlertView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var views []AlertView
	for _, a := range f.byID {
		if a.UserID == userID {
			views = append(views, AlertView{
				ID:           a.ID,
				Direction:    a.Direction,
				ThresholdUSD: a.ThresholdUSD,
				Status:       a.Status,
			})
		}
	}
	return views, nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, id uint) (*Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, ErrAlertNotFound
	}
	found := *a
	return &found, nil
}

func (f *fakeAlertRepo) Create(ctx context.Context, alert *Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	alert.ID = f.nextID
	f.nextID++
	stored := *alert
	f.byID[alert.ID] = &stored
	return nil
}

func (f *fakeAlertRepo) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return ErrAlertNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAlertRepo) FindTriggered(ctx context.Context, limit int) ([]TriggeredAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit < len(f.triggered) {
		return f.triggered[:limit], nil
	}
	return f.triggered, nil
}

func (f *fakeAlertRepo) MarkTriggered(ctx context.Context, ids []uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, ids...)
	return nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []*TriggeredAlert
}

func (r *recordingNotifier) NotifyAlertTriggered(ctx context.Context, alert *TriggeredAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, alert)
	return nil
}

func TestCreateAlert(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := NewService(repo, nil)

	alert, err := svc.CreateAlert(context.Background(), 7, &CreateAlertRequest{
		CryptoID:     3,
		Direction:    "above",
		ThresholdUSD: 70000,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), alert.UserID)
	assert.Equal(t, DirectionAbove, alert.Direction)
	assert.Equal(t, StatusActive, alert.Status)
	assert.NotZero(t, alert.ID)
}

func TestDeleteAlertOwnership(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := NewService(repo, nil)

	alert, err := svc.CreateAlert(context.Background(), 7, &CreateAlertRequest{
		CryptoID:     3,
		Direction:    "below",
		ThresholdUSD: 2500,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteAlert(context.Background(), alert.ID, 99), ErrNotAlertOwner)
	assert.NoError(t, svc.DeleteAlert(context.Background(), alert.ID, 7))
	assert.ErrorIs(t, svc.DeleteAlert(context.Background(), alert.ID, 7), ErrAlertNotFound)
}

func TestEvaluateAlertsMarksAndNotifies(t *testing.T) {
	repo := newFakeAlertRepo()
	repo.triggered = []TriggeredAlert{
		{
			Alert:        Alert{ID: 1, UserID: 7, CryptoID: 3, Direction: DirectionAbove, ThresholdUSD: 60000},
			Email:        "alice@example.com",
			CryptoSymbol: "BTC",
			CurrentPrice: 64250,
		},
		{
			Alert:        Alert{ID: 2, UserID: 8, CryptoID: 4, Direction: DirectionBelow, ThresholdUSD: 3500},
			Email:        "bob@example.com",
			CryptoSymbol: "ETH",
			CurrentPrice: 3180,
		},
	}

	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	count, err := svc.EvaluateAlerts(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, []uint{1, 2}, repo.marked)
	require.Len(t, notifier.calls, 2)
	assert.Equal(t, "alice@example.com", notifier.calls[0].Email)
	assert.Equal(t, "BTC", notifier.calls[0].CryptoSymbol)
}

func TestEvaluateAlertsRespectsBatchSize(t *testing.T) {
	repo := newFakeAlertRepo()
	for i := uint(1); i <= 5; i++ {
		repo.triggered = append(repo.triggered, TriggeredAlert{
			Alert: Alert{ID: i, Direction: DirectionAbove, ThresholdUSD: 100},
		})
	}

	svc := NewService(repo, nil)

	count, err := svc.EvaluateAlerts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, repo.marked, 3)
}

func TestEvaluateAlertsNothingTriggered(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := NewService(repo, &recordingNotifier{})

	count, err := svc.EvaluateAlerts(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, repo.marked)
}
