package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	paymentClient "github.com/m04kA/SMC-TurfService/internal/integrations/paymentservice"
)

// UseCase координатор бронирования: единственный компонент, которому
// разрешено писать и в журнал бронирований, и в календарь слотов.
//
// Записи в два независимых хранилища выполняются как одна логическая
// транзакция без общей транзакции БД: сначала журнал, затем флаг слота.
// Частичный отказ (запись в журнале есть, флаг не обновлён) не скрывается
// и не откатывается, а поднимается наверх как SlotSyncError - удаление
// только что созданной записи наперегонки с другими читателями само по
// себе небезопасно, а след для сверки ценнее чистого отката.
type UseCase struct {
	bookingRepo   BookingRepository
	turfRepo      TurfRepository
	paymentClient PaymentServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// paymentClient может быть nil, если интеграция с PaymentService выключена
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	paymentClient PaymentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		turfRepo:      turfRepo,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Execute выполняет запрос на бронирование слота.
//
// Состояния запроса: RECEIVED -> LEDGER_CHECKED -> BOOKING_CREATED ->
// SLOT_FLIPPED, с выходом по ошибке на каждом переходе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, turf=%d, date=%s, range=%s, players=%d",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat), req.TimeRange, req.PlayerCount)

	// 1. RECEIVED: валидация входных данных, до любых записей
	timeRange, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату к полуночи UTC, чтобы журнал и календарь
	// сравнивали даты бит-в-бит независимо от сериализации клиента
	date := domain.NormalizeDate(req.Date)

	key := domain.SlotKey{
		TurfID:    req.TurfID,
		Date:      date,
		StartTime: timeRange.Start,
		EndTime:   timeRange.End,
	}

	// 3. Проверяем существование площадки
	if _, err := uc.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateReservation: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateReservation: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 4. LEDGER_CHECKED: если активное бронирование на кортеж уже есть,
	// возвращаем его как already_booked. Это не ошибка: повторная отправка
	// того же запроса (retry сети) обязана увидеть тот же результат
	existing, err := uc.bookingRepo.FindActiveBooking(ctx, key)
	if err == nil {
		uc.logger.Info("CreateReservation: active booking id=%d already exists for turf=%d %s %s-%s",
			existing.ID, key.TurfID, key.Date.Format(domain.DateFormat), key.StartTime, key.EndTime)
		return &Response{Outcome: OutcomeAlreadyBooked, Booking: existing}, nil
	}
	if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Error("CreateReservation: ledger check failed: %v", err)
		return nil, fmt.Errorf("%w: ledger check failed: %v", ErrInternal, err)
	}

	// 5. Статус оплаты: платёж проводится внешним PaymentService до
	// создания бронирования; недоступность сервиса деградирует в pending
	paymentStatus := uc.resolvePaymentStatus(ctx, req.UserID, req.TotalPrice)

	// 6. BOOKING_CREATED: вставляем запись в журнал со статусом completed.
	// Уникальность активного кортежа гарантирует частичный индекс журнала:
	// проигравший гонку получает ErrDuplicateBooking и отвечает так же,
	// как если бы увидел чужое бронирование на шаге 4
	booking := &domain.Booking{
		UserID:        req.UserID,
		TurfID:        req.TurfID,
		BookingDate:   date,
		StartTime:     timeRange.Start,
		EndTime:       timeRange.End,
		PlayerCount:   req.PlayerCount,
		TotalPrice:    req.TotalPrice,
		Status:        domain.StatusCompleted,
		PaymentStatus: paymentStatus,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return uc.resolveLostRace(ctx, key)
		}
		uc.logger.Error("CreateReservation: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 7. SLOT_FLIPPED: помечаем слот занятым в календаре
	if err := uc.flipSlot(ctx, key); err != nil {
		uc.logger.Error("CreateReservation: booking id=%d persisted but slot flip failed: %v", created.ID, err)
		return nil, &SlotSyncError{BookingID: created.ID}
	}

	uc.logger.Info("CreateReservation: successfully created booking id=%d", created.ID)
	return &Response{Outcome: OutcomeCreated, Booking: created}, nil
}

// resolveLostRace обрабатывает проигрыш гонки за слот: вставка упёрлась в
// уникальный индекс, значит чужое бронирование уже в журнале - перечитываем
// и возвращаем его
func (uc *UseCase) resolveLostRace(ctx context.Context, key domain.SlotKey) (*Response, error) {
	winner, err := uc.bookingRepo.FindActiveBooking(ctx, key)
	if err != nil {
		uc.logger.Error("CreateReservation: duplicate detected but winner not found: %v", err)
		return nil, fmt.Errorf("%w: failed to read winning booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: lost insert race, returning booking id=%d", winner.ID)
	return &Response{Outcome: OutcomeAlreadyBooked, Booking: winner}, nil
}

// flipSlot помечает слот занятым. Если кортеж не нашёлся, повторяет попытку
// с обрезанными строками времени: лишние пробелы вокруг HH:MM - известный
// источник рассинхрона, и от него надо защищаться явно
func (uc *UseCase) flipSlot(ctx context.Context, key domain.SlotKey) error {
	matched, err := uc.turfRepo.SetSlotReserved(ctx, key, true)
	if err != nil {
		return err
	}
	if matched {
		return nil
	}

	trimmed := key.Trimmed()
	if trimmed != key {
		matched, err = uc.turfRepo.SetSlotReserved(ctx, trimmed, true)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}

	return fmt.Errorf("no slot matched key turf=%d date=%s start=%q end=%q",
		key.TurfID, key.Date.Format(domain.DateFormat), key.StartTime, key.EndTime)
}

// resolvePaymentStatus спрашивает PaymentService о последнем платеже.
// Любой исход кроме подтверждённого платежа даёт pending: бронирование
// не блокируется из-за платёжного контура
func (uc *UseCase) resolvePaymentStatus(ctx context.Context, userID int64, amount float64) domain.PaymentStatus {
	if uc.paymentClient == nil {
		return domain.PaymentCompleted
	}

	payment, err := uc.paymentClient.GetLatestPaymentWithGracefulDegradation(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, paymentClient.ErrPaymentNotFound) {
			uc.logger.Warn("CreateReservation: no payment found for user=%d, keeping payment status pending", userID)
		}
		return domain.PaymentPending
	}

	if payment.IsCaptured() {
		return domain.PaymentCompleted
	}
	return domain.PaymentPending
}
