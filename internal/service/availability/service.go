package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sporzo/turf-booking-service/internal/domain"
	bookingRepo "github.com/sporzo/turf-booking-service/internal/infra/storage/booking"
)

// cacheTTL время жизни кэша занятых часов на день
const cacheTTL = 2 * time.Minute

// Service журнал доступности слотов поверх Postgres.
// Единственная точка, через которую записи бронирований создаются и отменяются:
// фиксация атомарна ("все или ничего") и идемпотентна по booking_id.
type Service struct {
	repo      BookingRepository
	txManager TransactionManager
	cache     *redis.Client // опционален, nil отключает кэширование
	metrics   MetricsCollector
	logger    Logger
}

// NewService создает новый экземпляр журнала доступности
func NewService(
	repo BookingRepository,
	txManager TransactionManager,
	cache *redis.Client,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// IsBooked проверяет, занят ли час площадки активным бронированием.
// Занятость не зависит от конфигурации поля: физическое поле одно,
// и час, занятый под одну конфигурацию, недоступен для всех остальных.
func (s *Service) IsBooked(ctx context.Context, turfID int64, date string, hour int) (bool, error) {
	hours, err := s.bookedHours(ctx, turfID, date)
	if err != nil {
		return false, err
	}

	for _, h := range hours {
		if h == hour {
			return true, nil
		}
	}

	return false, nil
}

// ListForDate возвращает активные бронирования площадки на дату
func (s *Service) ListForDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error) {
	bookings, err := s.repo.GetActiveByTurfAndDate(ctx, turfID, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for turf=%d date=%s: %v", turfID, date, err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.OccupiesSlots() {
			result = append(result, b)
		}
	}

	return result, nil
}

// Commit атомарно фиксирует бронирование в журнале.
// Внутри serializable транзакции занятость перечитывается с блокировкой строк,
// поэтому два конкурентных коммита на пересекающиеся часы не могут пройти оба.
// Повторный вызов с уже зафиксированным booking_id завершается успешно.
func (s *Service) Commit(ctx context.Context, b *domain.Booking) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	date := b.Date.Format(domain.DateFormat)
	s.logger.Info("Commit: committing booking_id=%s turf=%d field_config=%d date=%s hours=%v",
		b.BookingID, b.TurfID, b.FieldConfigID, date, b.CoveredHours())

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// Идемпотентность: запись с таким booking_id уже есть
		existing, err := s.repo.GetByBookingID(ctx, b.BookingID)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: Commit - failed to check existing booking: %v", ErrInternal, err)
		}
		if existing != nil {
			s.logger.Info("Commit: booking_id=%s already committed, skipping", b.BookingID)
			return nil
		}

		// Перечитываем занятость внутри транзакции (SELECT ... FOR UPDATE)
		active, err := s.repo.GetActiveByTurfAndDate(ctx, b.TurfID, date)
		if err != nil {
			return fmt.Errorf("%w: Commit - failed to load active bookings: %v", ErrInternal, err)
		}

		// Конфликт по любой конфигурации поля: час площадки занимается целиком
		var conflicts []int
		for _, hour := range b.CoveredHours() {
			for _, other := range active {
				if other.OccupiesSlots() && other.CoversHour(hour) {
					conflicts = append(conflicts, hour)
					break
				}
			}
		}

		if len(conflicts) > 0 {
			return domain.NewSlotConflictError(b.TurfID, b.FieldConfigID, date, conflicts)
		}

		if _, err := s.repo.Create(ctx, b); err != nil {
			// Гонка на уникальном индексе booking_id: запись уже создана
			if errors.Is(err, bookingRepo.ErrDuplicateBookingID) {
				s.logger.Warn("Commit: booking_id=%s created concurrently", b.BookingID)
				return nil
			}
			return fmt.Errorf("%w: Commit - failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			s.logger.Warn("Commit: conflict for booking_id=%s: %v", b.BookingID, err)
			if s.metrics != nil {
				s.metrics.IncBookingConflict(strconv.FormatInt(b.TurfID, 10))
			}
			return err
		}
		s.logger.Error("Commit: failed for booking_id=%s: %v", b.BookingID, err)
		return err
	}

	if s.metrics != nil {
		s.metrics.IncBookingCommitted(string(b.PaymentStatus))
	}
	s.invalidateCache(ctx, b.TurfID, date)

	s.logger.Info("Commit: booking_id=%s committed", b.BookingID)
	return nil
}

// Cancel освобождает слоты бронирования.
// Повторная отмена неактивной записи завершается успешно без изменений.
func (s *Service) Cancel(ctx context.Context, bookingID, reason string) error {
	s.logger.Info("Cancel: cancelling booking_id=%s", bookingID)

	b, err := s.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking_id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !b.OccupiesSlots() {
		s.logger.Info("Cancel: booking_id=%s already inactive, status=%s", bookingID, b.PaymentStatus)
		return nil
	}

	// Завершенную онлайн-оплату помечаем к возврату средств
	status := domain.StatusCancelled
	if b.PaymentStatus == domain.StatusCompleted {
		status = domain.StatusRefunded
	}

	if err := s.repo.Cancel(ctx, bookingID, status, reason); err != nil {
		s.logger.Error("Cancel: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, b.TurfID, b.Date.Format(domain.DateFormat))

	s.logger.Info("Cancel: booking_id=%s cancelled with status=%s", bookingID, status)
	return nil
}

// bookedHours возвращает занятые часы дня, используя кэш при наличии
func (s *Service) bookedHours(ctx context.Context, turfID int64, date string) ([]int, error) {
	key := cacheKey(turfID, date)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var hours []int
			if err := json.Unmarshal([]byte(cached), &hours); err == nil {
				return hours, nil
			}
			s.logger.Warn("bookedHours: corrupted cache entry %s, falling back to repository", key)
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("bookedHours: cache read failed for %s: %v", key, err)
		}
	}

	bookings, err := s.ListForDate(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	hours := make([]int, 0)
	for _, b := range bookings {
		for _, h := range b.CoveredHours() {
			if _, ok := seen[h]; !ok {
				seen[h] = struct{}{}
				hours = append(hours, h)
			}
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(hours); err == nil {
			if err := s.cache.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
				s.logger.Warn("bookedHours: cache write failed for %s: %v", key, err)
			}
		}
	}

	return hours, nil
}

// invalidateCache сбрасывает кэш дня после изменения журнала
func (s *Service) invalidateCache(ctx context.Context, turfID int64, date string) {
	if s.cache == nil {
		return
	}

	key := cacheKey(turfID, date)
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("invalidateCache: failed to drop %s: %v", key, err)
	}
}

func cacheKey(turfID int64, date string) string {
	return fmt.Sprintf("availability:%d:%s", turfID, date)
}
