package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	turfRepo    TurfRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, владелец площадки видит все
// бронирования своей площадки
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTurfBookings получает бронирования площадки с фильтрацией по дате и
// статусу. Доступно только владельцу площадки
func (s *Service) GetTurfBookings(ctx context.Context, req *models.GetTurfBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTurfBookings: fetching bookings for turf=%d, user=%d", req.TurfID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTurfBookings: invalid filter for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTurfWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTurfBookings: repository error for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: GetTurfBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTurfBookings: fetched %d bookings for turf=%d", len(bookings), req.TurfID)
	return models.FromDomainBookingList(bookings), nil
}

// GetUnsyncedBookings возвращает активные бронирования, для которых слот
// в календаре не помечен занятым. Такие записи появляются после частичного
// сбоя при создании брони. Доступно только владельцу площадки
func (s *Service) GetUnsyncedBookings(ctx context.Context, req *models.GetUnsyncedBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUnsyncedBookings: audit for turf=%d, user=%d", req.TurfID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return nil, err
	}

	var date *time.Time
	if req.Date != nil {
		normalized := domain.NormalizeDate(*req.Date)
		date = &normalized
	}

	bookings, err := s.bookingRepo.FindUnsynced(ctx, req.TurfID, date)
	if err != nil {
		s.logger.Error("GetUnsyncedBookings: repository error for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: GetUnsyncedBookings - repository error: %v", ErrInternal, err)
	}

	if len(bookings) > 0 {
		s.logger.Warn("GetUnsyncedBookings: turf=%d has %d bookings out of sync with the slot calendar", req.TurfID, len(bookings))
	}
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.TurfID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем площадки
func (s *Service) checkOwnerAccess(ctx context.Context, turfID int64, userID int64) error {
	turf, err := s.turfRepo.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("checkOwnerAccess: turf id=%d not found", turfID)
			return ErrTurfNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get turf id=%d: %v", turfID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get turf: %v", ErrInternal, err)
	}

	if turf.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of turf=%d", userID, turfID)
		return ErrAccessDenied
	}

	return nil
}
