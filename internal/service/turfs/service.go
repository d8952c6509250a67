package turfs

import (
	"context"
	"errors"
	"fmt"

	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

// Service сервис для чтения каталога площадок
type Service struct {
	turfRepo TurfRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(turfRepo TurfRepository, logger Logger) *Service {
	return &Service{
		turfRepo: turfRepo,
		logger:   logger,
	}
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TurfResponse, error) {
	s.logger.Info("GetByID: fetching turf id=%d", id)

	turf, err := s.turfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("GetByID: turf id=%d not found", id)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("GetByID: repository error for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTurf(turf), nil
}

// List получает список площадок с фильтрацией по городу и категории
func (s *Service) List(ctx context.Context, req *models.ListTurfsRequest) (*models.TurfListResponse, error) {
	s.logger.Info("List: fetching turfs, city=%v, category=%v", req.City, req.Category)

	turfs, err := s.turfRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d turfs", len(turfs))
	return models.FromDomainTurfList(turfs), nil
}
