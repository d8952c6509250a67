package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
)

// UseCase проекция доступности: read-only выборка свободных слотов для
// витрины. Не участвует в гарантии уникальности бронирования и никогда
// не пишет в календарь.
type UseCase struct {
	turfRepo TurfRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(turfRepo TurfRepository, logger Logger) *UseCase {
	return &UseCase{
		turfRepo: turfRepo,
		logger:   logger,
	}
}

// Execute возвращает слоты площадки на дату, свободные для бронирования:
// не занятые и не заблокированные оператором. Читает напрямую из календаря,
// поэтому слот, только что занятый координатором, в ответ уже не попадёт.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TurfID <= 0 {
		return nil, fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.NormalizeDate(req.Date)

	uc.logger.Info("GetAvailableSlots: turf=%d, date=%s", req.TurfID, date.Format(domain.DateFormat))

	if _, err := uc.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	schedule, err := uc.turfRepo.GetDaySchedule(ctx, req.TurfID, date)
	if err != nil {
		if errors.Is(err, turfRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: no slots seeded for turf=%d date=%s",
				req.TurfID, date.Format(domain.DateFormat))
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	available := make([]Slot, 0, len(schedule.Slots))
	for _, s := range schedule.Slots {
		if !s.IsBookable() {
			continue
		}
		available = append(available, Slot{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			MaxPlayers: s.MaxPlayers,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for turf=%d date=%s",
		len(available), len(schedule.Slots), req.TurfID, date.Format(domain.DateFormat))

	return &Response{
		TurfID: req.TurfID,
		Date:   date,
		Slots:  available,
	}, nil
}
