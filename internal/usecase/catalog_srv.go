package usecase

import (
	"context"
	"fmt"
	"strings"

	"museumpass/internal/data/entity"
	"museumpass/internal/data/repository"
	"museumpass/internal/dto/request"
	"museumpass/internal/dto/response"
	"museumpass/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListMuseums(ctx context.Context, req *request.ListMuseumsRequest) (*response.PaginatedResponse[response.MuseumResponse], error)
	Availability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type catalogService struct {
	repo    *repository.Repository
	rules   *BookingRules
	matcher *museumMatcher
	log     *zap.Logger
}

func NewCatalogService(repo *repository.Repository, rules *BookingRules, matchThreshold int, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:    repo,
		rules:   rules,
		matcher: newMuseumMatcher(repo.Catalog, matchThreshold),
		log:     log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListMuseums(ctx context.Context, req *request.ListMuseumsRequest) (*response.PaginatedResponse[response.MuseumResponse], error) {
	all, err := s.repo.Catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list museums: %w", err)
	}

	museums := all
	if location := strings.TrimSpace(req.Location); location != "" {
		museums = make([]*entity.Museum, 0)
		for _, m := range all {
			if strings.EqualFold(m.Location, location) || strings.EqualFold(m.State, location) {
				museums = append(museums, m)
			}
		}
	}

	start, end := utils.PageBounds(len(museums), req.Offset(), req.Limit())
	data := make([]response.MuseumResponse, 0, end-start)
	for _, m := range museums[start:end] {
		data = append(data, response.MuseumToResponse(m))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(museums))), nil
}

func (s *catalogService) Availability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	museum, err := s.matcher.Resolve(ctx, req.Museum)
	if err != nil {
		return nil, err
	}

	date, err := s.rules.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	day := date.Format(dateLayout)

	used, err := s.repo.Ledger.CapacityUsed(ctx, museum.Title, day)
	if err != nil {
		s.log.Error("Failed to read capacity", zap.Error(err), zap.String("museum", museum.Title))
		return nil, fmt.Errorf("read capacity: %w", err)
	}

	slots := s.rules.AvailableSlots(date)
	if slots == nil {
		slots = []string{}
	}

	return &response.AvailabilityResponse{
		Museum:    museum.Title,
		Date:      day,
		Capacity:  s.rules.MaxVisitorsPerDay,
		Booked:    used,
		Remaining: max(s.rules.MaxVisitorsPerDay-used, 0),
		Slots:     slots,
	}, nil
}
