package seed_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	storage "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// UseCase заполнение календаря слотов на горизонт дней вперёд
type UseCase struct {
	turfRepo       TurfRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	defaultHorizon int
	log            Logger
}

func NewUseCase(turfRepo TurfRepository, txManager TransactionManager, timeProvider TimeProvider, defaultHorizon int, log Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if defaultHorizon <= 0 {
		defaultHorizon = domain.DefaultSeedHorizonDays
	}
	return &UseCase{
		turfRepo:       turfRepo,
		txManager:      txManager,
		timeProvider:   timeProvider,
		defaultHorizon: defaultHorizon,
		log:            log,
	}
}

// Execute создаёт слоты на horizonDays дней начиная с сегодняшнего,
// по дневному шаблону. Уже существующие слоты не трогаются.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	template, err := uc.resolveTemplate(req)
	if err != nil {
		return nil, err
	}

	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = uc.defaultHorizon
	}
	if horizon > domain.MaxSeedHorizonDays {
		return nil, fmt.Errorf("%w: horizon days must not exceed %d", ErrInvalidInput, domain.MaxSeedHorizonDays)
	}

	if _, err := uc.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, storage.ErrTurfNotFound) {
			return nil, fmt.Errorf("%w: turf %d", ErrTurfNotFound, req.TurfID)
		}
		uc.log.Error("SeedSlots: failed to load turf %d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	from := domain.NormalizeDate(uc.timeProvider.Now())
	dates := make([]time.Time, 0, horizon)
	for i := 0; i < horizon; i++ {
		dates = append(dates, from.AddDate(0, 0, i))
	}

	var created int64
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		n, err := uc.turfRepo.SeedSlots(ctx, req.TurfID, dates, template)
		if err != nil {
			return err
		}
		created = n
		return nil
	})
	if err != nil {
		uc.log.Error("SeedSlots: failed to seed slots for turf %d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.log.Info("SeedSlots: turf %d seeded, %d new slots over %d days", req.TurfID, created, horizon)

	return &Response{
		TurfID:       req.TurfID,
		FromDate:     from,
		Days:         horizon,
		SlotsCreated: created,
	}, nil
}

// resolveTemplate валидирует шаблон из запроса или берёт дефолтный
func (uc *UseCase) resolveTemplate(req Request) ([]domain.SlotTemplate, error) {
	if req.TurfID <= 0 {
		return nil, fmt.Errorf("%w: turf id is required", ErrInvalidInput)
	}
	if len(req.Template) == 0 {
		return domain.DefaultSlotTemplate(), nil
	}

	template := make([]domain.SlotTemplate, 0, len(req.Template))
	seen := make(map[string]struct{}, len(req.Template))
	for i, ts := range req.Template {
		start := types.TimeString(ts.StartTime)
		end := types.TimeString(ts.EndTime)
		if err := start.Validate(); err != nil {
			return nil, fmt.Errorf("%w: template[%d] start time: %v", ErrInvalidInput, i, err)
		}
		if err := end.Validate(); err != nil {
			return nil, fmt.Errorf("%w: template[%d] end time: %v", ErrInvalidInput, i, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: template[%d] start must be before end", ErrInvalidInput, i)
		}
		if ts.MaxPlayers <= 0 {
			return nil, fmt.Errorf("%w: template[%d] max players must be positive", ErrInvalidInput, i)
		}
		key := ts.StartTime + "-" + ts.EndTime
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: template[%d] duplicates slot %s", ErrInvalidInput, i, key)
		}
		seen[key] = struct{}{}
		template = append(template, domain.SlotTemplate{
			StartTime:  start,
			EndTime:    end,
			MaxPlayers: ts.MaxPlayers,
		})
	}
	return template, nil
}
