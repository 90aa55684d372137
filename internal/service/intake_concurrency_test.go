package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/entity"
)

// memoryStore mimics the postgres schema: unique (user_id, date) on days
type memoryStore struct {
	mu      sync.Mutex
	user    entity.User
	days    []entity.DayRecord
	intakes []entity.Intake
	nextID  int64

	// every first lookup of a day is held until all writers performed it
	lookups   atomic.Int32
	writers   int32
	allLooked sync.WaitGroup
}

func newMemoryStore(user entity.User, writers int) *memoryStore {
	s := &memoryStore{user: user, writers: int32(writers)}
	s.allLooked.Add(writers)
	return s
}

func (s *memoryStore) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	if uid != s.user.ID {
		return nil, errorvalues.ErrUserNotFound
	}
	u := s.user
	return &u, nil
}

func (s *memoryStore) GetByUserAndDate(_ context.Context, uid uuid.UUID, date time.Time) (*entity.DayRecord, error) {
	defer func() {
		if s.lookups.Add(1) <= s.writers {
			s.allLooked.Done()
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.days {
		if d.UserID == uid && d.Date.Equal(date) {
			return &d, nil
		}
	}
	return nil, errorvalues.ErrDayNotFound
}

func (s *memoryStore) CreateDay(_ context.Context, day *entity.DayRecord) error {
	s.allLooked.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.days {
		if d.UserID == day.UserID && d.Date.Equal(day.Date) {
			return errorvalues.ErrDayExists
		}
	}
	day.ID = uuid.New()
	s.days = append(s.days, *day)
	return nil
}

func (s *memoryStore) CreateIntake(_ context.Context, intake *entity.Intake) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	intake.ID = s.nextID
	s.intakes = append(s.intakes, *intake)
	return nil
}

type memoryUsers struct{ *memoryStore }

func (memoryUsers) Create(context.Context, *entity.User) error { return nil }
func (memoryUsers) List(context.Context, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (memoryUsers) Count(context.Context) (int, error) { return 1, nil }
func (memoryUsers) Delete(context.Context, uuid.UUID) error { return nil }

type memoryDays struct{ *memoryStore }

func (d memoryDays) Create(ctx context.Context, day *entity.DayRecord) error {
	return d.CreateDay(ctx, day)
}
func (memoryDays) ListByUser(context.Context, uuid.UUID, int, int) ([]entity.DayRecord, error) {
	return nil, nil
}
func (memoryDays) CountByUser(context.Context, uuid.UUID) (int, error) { return 0, nil }

type memoryIntakes struct{ *memoryStore }

func (i memoryIntakes) Create(ctx context.Context, intake *entity.Intake) error {
	return i.CreateIntake(ctx, intake)
}
func (memoryIntakes) ListByDay(context.Context, uuid.UUID) ([]entity.Intake, error) {
	return nil, nil
}
func (memoryIntakes) ListByDays(context.Context, []uuid.UUID) (map[uuid.UUID][]entity.Intake, error) {
	return nil, nil
}

type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestRecordIntakeConcurrentFirstIntakes(t *testing.T) {
	const writers = 16
	user := entity.User{ID: uuid.New(), Name: "test_user", Weight: decimal.NewFromInt(75)}
	store := newMemoryStore(user, writers)
	serv := service.NewIntakeService(
		memoryUsers{store}, memoryDays{store}, memoryIntakes{store}, passTx{},
		service.WithClock(func() time.Time { return fixedNow }),
	)

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := serv.RecordIntake(context.Background(), user.ID, &service.RecordIntakeRequest{
				Quantity: decimal.NewFromInt(100),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, store.days, 1)
	assert.Len(t, store.intakes, writers)
	for _, in := range store.intakes {
		assert.Equal(t, store.days[0].ID, in.DayID)
	}
	assert.Equal(t, "2625.00", store.days[0].Goal.StringFixed(2))
}
