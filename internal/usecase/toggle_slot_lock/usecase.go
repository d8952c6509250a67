package toggle_slot_lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	storage "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// UseCase переключение операторской блокировки слота
type UseCase struct {
	turfRepo TurfRepository
	log      Logger
}

func NewUseCase(turfRepo TurfRepository, log Logger) *UseCase {
	return &UseCase{
		turfRepo: turfRepo,
		log:      log,
	}
}

// Execute переключает lock_state слота. Блокировка не трогает флаг
// занятости: заблокированный слот просто не выдаётся как доступный
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	timeRange, err := uc.validate(req)
	if err != nil {
		return nil, err
	}

	turf, err := uc.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, storage.ErrTurfNotFound) {
			return nil, fmt.Errorf("%w: turf %d", ErrTurfNotFound, req.TurfID)
		}
		uc.log.Error("ToggleSlotLock: failed to load turf %d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if turf.OwnerID != req.UserID {
		return nil, fmt.Errorf("%w: user %d is not the owner of turf %d", ErrAccessDenied, req.UserID, req.TurfID)
	}

	key := domain.SlotKey{
		TurfID:    req.TurfID,
		Date:      domain.NormalizeDate(req.Date),
		StartTime: timeRange.Start,
		EndTime:   timeRange.End,
	}

	state, err := uc.turfRepo.ToggleSlotLock(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, key)
		}
		uc.log.Error("ToggleSlotLock: failed to toggle slot %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.log.Info("ToggleSlotLock: slot %s is now %s", key, state)

	return &Response{
		TurfID:    req.TurfID,
		Date:      key.Date,
		TimeRange: req.TimeRange,
		LockState: state,
	}, nil
}

func (uc *UseCase) validate(req Request) (types.TimeRange, error) {
	if req.TurfID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: turf id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return types.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	timeRange, err := types.ParseTimeRange(req.TimeRange)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return timeRange, nil
}
