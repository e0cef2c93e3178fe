package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"museumpass/internal/data/entity"
	"museumpass/internal/data/repository"
	"museumpass/internal/dto/request"
	"museumpass/internal/dto/response"
	"museumpass/pkg/events"
	"museumpass/pkg/lock"
	"museumpass/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingConfirmation, error)

	// Admin
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	rules     *BookingRules
	matcher   *museumMatcher
	locker    lock.Locker
	publisher events.Publisher
	now       Clock
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	rules *BookingRules,
	matchThreshold int,
	locker lock.Locker,
	publisher events.Publisher,
	now Clock,
	log *zap.Logger,
) BookingService {
	if now == nil {
		now = time.Now
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &bookingService{
		repo:      repo,
		rules:     rules,
		matcher:   newMuseumMatcher(repo.Catalog, matchThreshold),
		locker:    locker,
		publisher: publisher,
		now:       now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingConfirmation, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	if req.Visitors() < 1 {
		return nil, fmt.Errorf("%w: at least one adult or kid is required", ErrValidation)
	}

	// 2. Resolve museum
	museum, err := s.matcher.Resolve(ctx, req.MuseumName)
	if err != nil {
		s.log.Warn("Museum not resolved", zap.String("museum_name", req.MuseumName), zap.Error(err))
		return nil, err
	}

	// 3. Run booking rules against the current ledger
	used, err := s.repo.Ledger.CapacityUsed(ctx, museum.Title, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("read capacity: %w", err)
	}

	checked, err := s.rules.Check(req.TicketType, req.BookingDate, req.TimeSlot, used, req.Visitors())
	if err != nil {
		s.log.Info("Booking rejected",
			zap.String("museum", museum.Title),
			zap.String("date", req.BookingDate),
			zap.Error(err))
		return nil, err
	}

	now := s.now()
	booking := &entity.Booking{
		ID:         uuid.New(),
		Reference:  utils.GenerateBookingRef(now),
		Name:       req.Name,
		Museum:     museum.Title,
		Visitors:   entity.Visitors{Adults: req.Adults, Kids: req.Kids},
		TicketType: tierLabel(checked.Tier),
		Date:       checked.Date.Format(dateLayout),
		TimeSlot:   checked.Slot,
		TotalPrice: Price(museum.Price, checked.Tier, req.Adults, req.Kids),
		BookedAt:   now,
	}

	// 4. Re-check capacity and append under the museum/date lock
	if err := s.appendLocked(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("museum", booking.Museum),
		zap.String("date", booking.Date),
		zap.Int("visitors", booking.Visitors.Total()),
		zap.Float64("total_price", booking.TotalPrice))

	// 5. Publish event; the booking is already stored so failures are only logged
	s.publish(ctx, booking)

	confirmation := &response.BookingConfirmation{BookingResponse: response.BookingToResponse(booking)}
	qr, err := utils.TicketQR(booking.Reference + "|" + booking.ID.String())
	if err != nil {
		s.log.Warn("Failed to render ticket QR", zap.Error(err), zap.String("booking_id", booking.ID.String()))
	} else {
		confirmation.QRCode = qr
	}

	return confirmation, nil
}

func (s *bookingService) appendLocked(ctx context.Context, booking *entity.Booking) error {
	unlock, err := s.locker.Lock(ctx, lockKey(booking.Museum, booking.Date))
	if err != nil {
		s.log.Error("Failed to acquire booking lock", zap.Error(err), zap.String("museum", booking.Museum))
		return fmt.Errorf("acquire booking lock: %w", err)
	}
	defer unlock()

	used, err := s.repo.Ledger.CapacityUsed(ctx, booking.Museum, booking.Date)
	if err != nil {
		return fmt.Errorf("read capacity: %w", err)
	}
	if err := s.rules.CheckCapacity(used, booking.Visitors.Total()); err != nil {
		s.log.Info("Booking rejected after lock", zap.String("museum", booking.Museum), zap.Error(err))
		return err
	}

	if err := s.repo.Ledger.Append(ctx, booking); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	return nil
}

func (s *bookingService) publish(ctx context.Context, booking *entity.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, booking.ID.String(), booking); err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()))
	}
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Ledger.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	start, end := utils.PageBounds(len(bookings), req.Offset(), req.Limit())
	data := make([]response.BookingResponse, 0, end-start)
	for _, b := range bookings[start:end] {
		data = append(data, response.BookingToResponse(b))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), int64(len(bookings))), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %q", ErrValidation, bookingID)
	}

	booking, err := s.repo.Ledger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func lockKey(museum, date string) string {
	return fmt.Sprintf("%s|%s", strings.ToLower(museum), date)
}
