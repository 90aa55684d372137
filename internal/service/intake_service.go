package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/hydration"
)

// How many times a day lookup is repeated after losing the creation race
const resolveDayAttempts = 3

type IntakeService struct {
	usersRepo   repository.UsersRepositoryI
	daysRepo    repository.DaysRepositoryI
	intakesRepo repository.IntakesRepositoryI
	txManager   repository.TxManagerI
	now         func() time.Time
}

type IntakeServiceOption func(*IntakeService)

// WithClock replaces the source of "today"
func WithClock(now func() time.Time) IntakeServiceOption {
	return func(s *IntakeService) {
		s.now = now
	}
}

func NewIntakeService(
	usersRepo repository.UsersRepositoryI,
	daysRepo repository.DaysRepositoryI,
	intakesRepo repository.IntakesRepositoryI,
	txManager repository.TxManagerI,
	opts ...IntakeServiceOption,
) *IntakeService {
	if usersRepo == nil || daysRepo == nil || intakesRepo == nil || txManager == nil {
		log.Fatal("on intake service provided nil dependencies")
	}
	s := &IntakeService{
		usersRepo:   usersRepo,
		daysRepo:    daysRepo,
		intakesRepo: intakesRepo,
		txManager:   txManager,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (serv *IntakeService) today() time.Time {
	return hydration.DateOf(serv.now())
}

func (serv *IntakeService) RecordIntake(ctx context.Context, uid uuid.UUID, req *RecordIntakeRequest) (*entity.Intake, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	intake := entity.Intake{Quantity: req.Quantity}
	date := serv.today()
	err := serv.txManager.WithinTx(ctx, func(ctx context.Context) error {
		user, err := serv.usersRepo.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		day, err := serv.resolveDay(ctx, user, date)
		if err != nil {
			return err
		}
		intake.DayID = day.ID
		return serv.intakesRepo.Create(ctx, &intake)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("recording intake error: " + err.Error())
	}
	return &intake, nil
}

// resolveDay returns user's day for date, creating it with the goal derived from
// the current weight. A concurrent creator of the same day makes Create report
// ErrDayExists, then the winner's day is read back.
func (serv *IntakeService) resolveDay(ctx context.Context, user *entity.User, date time.Time) (*entity.DayRecord, error) {
	for attempt := 0; attempt < resolveDayAttempts; attempt++ {
		day, err := serv.daysRepo.GetByUserAndDate(ctx, user.ID, date)
		if err == nil {
			return day, nil
		}
		if !errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		day = &entity.DayRecord{
			UserID: user.ID,
			Goal:   hydration.DailyGoal(user.Weight),
			Date:   date,
		}
		err = serv.daysRepo.Create(ctx, day)
		if err == nil {
			return day, nil
		}
		if !errors.Is(err, errorvalues.ErrDayExists) {
			return nil, err
		}
	}
	return nil, errors.New("resolving day error: day keeps conflicting")
}

func (serv *IntakeService) GetSummary(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayReport, error) {
	if _, err := serv.findUser(ctx, uid); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = serv.today()
	}
	day, err := serv.daysRepo.GetByUserAndDate(ctx, uid, hydration.DateOf(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	intakes, err := serv.intakesRepo.ListByDay(ctx, day.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	report := hydration.Report(*day, intakes)
	return &report, nil
}

func (serv *IntakeService) GetHistory(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) (*entity.HistoryPage, error) {
	if _, err := serv.findUser(ctx, uid); err != nil {
		return nil, err
	}
	total, err := serv.daysRepo.CountByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	days, err := serv.daysRepo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
	}
	intakes, err := serv.intakesRepo.ListByDays(ctx, ids)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	page := entity.HistoryPage{
		UserID: uid,
		Total:  total,
		Days:   make([]entity.DayReport, 0, len(days)),
	}
	for _, d := range days {
		page.Days = append(page.Days, hydration.Report(d, intakes[d.ID]))
	}
	return &page, nil
}

func (serv *IntakeService) findUser(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return user, nil
}
