package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// validateRequest валидирует входные данные запроса и разбирает диапазон
// времени. Любая ошибка здесь означает отказ без побочных эффектов.
func validateRequest(req *Request) (types.TimeRange, error) {
	if req.UserID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TurfID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return types.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PlayerCount < domain.MinPlayerCount {
		return types.TimeRange{}, fmt.Errorf("%w: playerCount must be at least %d", ErrInvalidInput, domain.MinPlayerCount)
	}

	if req.PlayerCount > domain.MaxPlayerCount {
		return types.TimeRange{}, fmt.Errorf("%w: playerCount must be at most %d", ErrInvalidInput, domain.MaxPlayerCount)
	}

	if req.TotalPrice < 0 {
		return types.TimeRange{}, fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	// Диапазон вида "HH:MM-HH:MM" с ведущими нулями; start строго раньше end
	timeRange, err := types.ParseTimeRange(req.TimeRange)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return timeRange, nil
}
