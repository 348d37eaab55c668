package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sporzo/turf-booking-service/internal/domain"
	bookingRepo "github.com/sporzo/turf-booking-service/internal/infra/storage/booking"
	catalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	bookingRepo   BookingRepository
	ledger        AvailabilityLedger
	catalogClient TurfCatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	ledger AvailabilityLedger,
	catalogClient TurfCatalogClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		ledger:        ledger,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByBookingID получает бронирование по ID
// Проверяет права доступа: пользователь видит только своё бронирование,
// владелец площадки - любое бронирование своей площадки
func (s *Service) GetByBookingID(ctx context.Context, bookingID string, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByBookingID: fetching booking_id=%s for user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByBookingID: booking_id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBookingID: repository error for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByBookingID: access denied for user=%d to booking_id=%s", userID, bookingID)
		return nil, err
	}

	s.logger.Info("GetByBookingID: successfully fetched booking_id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу оплаты
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.PaymentStatus
	var domainStatus *domain.PaymentStatus
	if req.Status != nil {
		status, err := models.ToDomainPaymentStatus(*req.Status)
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

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTurfBookings получает бронирования площадки с фильтрацией
// Доступно только владельцу площадки
//
// Примеры использования:
// - Все активные бронирования: GetTurfBookings(ctx, &GetTurfBookingsRequest{TurfID: 1, UserID: 99})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только оплаченные онлайн: указать Status = "completed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetTurfBookings(ctx context.Context, req *models.GetTurfBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTurfBookings: fetching bookings for turf=%d, user=%d", req.TurfID, req.UserID)

	// Проверяем права владельца
	if err := s.checkOwnerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
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

	s.logger.Info("GetTurfBookings: successfully fetched %d bookings for turf=%d", len(bookings), req.TurfID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает его слоты
// Пользователь может отменить своё бронирование, владелец площадки - любое на своей площадке
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking_id=%s by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking_id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking_id=%s", req.UserID, bookingID)
		return err
	}

	// Повторная отмена неактивной записи - не ошибка, журнал идемпотентен
	if !booking.CanBeCancelled() {
		if booking.IsCancelled() || booking.PaymentStatus == domain.StatusRefunded {
			s.logger.Info("Cancel: booking_id=%s already cancelled", bookingID)
			return nil
		}
		s.logger.Warn("Cancel: booking_id=%s cannot be cancelled, status=%s", bookingID, booking.PaymentStatus)
		return ErrCannotCancel
	}

	if err := s.ledger.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: ledger error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - ledger error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking_id=%s", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у автора бронирования и у владельца площадки
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
	turf, err := s.catalogClient.GetTurf(ctx, turfID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrTurfNotFound) {
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
