package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
)

// UseCase отмена бронирования с освобождением слота
type UseCase struct {
	bookingRepo BookingRepository
	turfRepo    TurfRepository
	log         Logger
}

func NewUseCase(bookingRepo BookingRepository, turfRepo TurfRepository, log Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		log:         log,
	}
}

// Execute отменяет бронирование и освобождает слот в календаре.
// Отменять может автор бронирования или владелец площадки.
// Журнал обновляется первым, освобождение слота не откатывает отмену
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, req.BookingID)
		}
		uc.log.Error("CancelReservation: failed to load booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.checkAccess(ctx, booking, req.UserID); err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %d", ErrAlreadyCancelled, req.BookingID)
	}

	if err := uc.bookingRepo.Cancel(ctx, req.BookingID, req.Reason); err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, req.BookingID)
		}
		uc.log.Error("CancelReservation: failed to cancel booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.releaseSlot(ctx, booking)

	cancelled, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		uc.log.Error("CancelReservation: failed to reload booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.log.Info("CancelReservation: booking %d cancelled by user %d", req.BookingID, req.UserID)

	return &Response{Booking: cancelled}, nil
}

// checkAccess разрешает отмену автору бронирования или владельцу площадки
func (uc *UseCase) checkAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	turf, err := uc.turfRepo.GetByID(ctx, booking.TurfID)
	if err != nil {
		uc.log.Error("CancelReservation: failed to load turf %d: %v", booking.TurfID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if turf.OwnerID == userID {
		return nil
	}

	return fmt.Errorf("%w: user %d cannot cancel booking %d", ErrAccessDenied, userID, booking.ID)
}

// releaseSlot снимает флаг занятости слота. Отмена в журнале уже
// зафиксирована, поэтому ошибка здесь только логируется: сверка через
// аудит несинхронизированных слотов покажет расхождение
func (uc *UseCase) releaseSlot(ctx context.Context, booking *domain.Booking) {
	key := booking.SlotKey()

	matched, err := uc.turfRepo.SetSlotReserved(ctx, key, false)
	if err != nil {
		uc.log.Error("CancelReservation: failed to release slot %s for booking %d: %v", key, booking.ID, err)
		return
	}
	if !matched {
		matched, err = uc.turfRepo.SetSlotReserved(ctx, key.Trimmed(), false)
		if err != nil {
			uc.log.Error("CancelReservation: failed to release slot %s for booking %d: %v", key.Trimmed(), booking.ID, err)
			return
		}
	}
	if !matched {
		uc.log.Warn("CancelReservation: no slot matched %s while cancelling booking %d", key, booking.ID)
	}
}
