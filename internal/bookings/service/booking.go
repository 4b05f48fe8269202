package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	bookingserrors "evently/internal/bookings/errors"
	"evently/internal/bookings/repository"
	"evently/internal/bookings/validator"
	eventsrepository "evently/internal/events/repository"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/model"
	"evently/pkg/sanitizer"
)

const bookingCreatedEventType = "booking.created"

// NotificationPublisher is satisfied by kafka.Producer. A nil publisher
// disables notifications.
type NotificationPublisher interface {
	Publish(ctx context.Context, eventType, key string, value any) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByEvent(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) error
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	eventRepo eventsrepository.EventRepository
	validator *validator.BookingValidator
	publisher NotificationPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	eventRepo eventsrepository.EventRepository,
	validator *validator.BookingValidator,
	publisher NotificationPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		eventRepo: eventRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create runs the booking write pipeline: normalize the email, verify
// the referenced event exists, validate, persist. The existence check
// and the write are not transactional; an event deleted in between will
// leave a dangling booking, which callers accept.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)

	if err := s.verifyEventExists(ctx, booking.EventID); err != nil {
		return err
	}
	if err := s.validate(booking); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"event_id", booking.EventID,
	)
	s.notifyCreated(ctx, booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) GetByEvent(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if eventID == "" {
		return nil, 0, apperrors.InvalidInput("Event ID is required")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByEvent(ctx, eventID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings by event", "event_id", eventID, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByEvent(ctx, eventID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings by event", "event_id", eventID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Update merges the patch over the stored record. The event existence
// check only runs when the patch changes eventId; updating the email
// alone costs no extra store round trip.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to check booking existence", err)
	}

	merged := s.mergeBookingUpdates(existing, updates)
	s.sanitize(merged)

	if updates.EventID != nil && merged.EventID != existing.EventID {
		if err := s.verifyEventExists(ctx, merged.EventID); err != nil {
			return err
		}
	}

	if err := s.validate(merged); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return apperrors.Internal("Failed to update booking", err)
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.EventID = strings.TrimSpace(b.EventID)
	b.Email = sanitizer.NormalizeEmail(b.Email)
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.EventID != nil {
		merged.EventID = *updates.EventID
	}
	if updates.Email != nil {
		merged.Email = *updates.Email
	}

	return &merged
}

func (s *bookingService) verifyEventExists(ctx context.Context, eventID string) error {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		s.cfg.Log.Error("Failed to check event existence", "event_id", eventID, "error", err)
		return apperrors.Internal("Failed to check event existence", err)
	}
	if !exists {
		s.cfg.Log.Warn("Booking references missing event", "event_id", eventID)
		return apperrors.NotFoundWithID("Event", eventID).WithDetails(map[string]any{
			"event_id": eventID,
			"error":    bookingserrors.ErrEventNotFound.Error(),
		})
	}
	return nil
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// notifyCreated publishes a booking.created message. Notification
// failures never fail the booking itself.
func (s *bookingService) notifyCreated(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, bookingCreatedEventType, booking.EventID, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking notification",
			"booking_id", booking.ID,
			"event_id", booking.EventID,
			"error", err,
		)
	}
}
