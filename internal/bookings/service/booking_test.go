package service

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingserrors "evently/internal/bookings/errors"
	"evently/internal/bookings/validator"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/logger"
	"evently/pkg/model"
)

// Mock repository for testing
type mockBookingRepository struct {
	createFunc       func(ctx context.Context, booking *model.Booking) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc      func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	findByEventFunc  func(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, error)
	countFunc        func(ctx context.Context) (int64, error)
	countByEventFunc func(ctx context.Context, eventID string) (int64, error)
	updateFunc       func(ctx context.Context, id string, booking *model.Booking) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByEvent(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, error) {
	if m.findByEventFunc != nil {
		return m.findByEventFunc(ctx, eventID, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	if m.countByEventFunc != nil {
		return m.countByEventFunc(ctx, eventID)
	}
	return 0, nil
}

func (m *mockBookingRepository) Update(ctx context.Context, id string, booking *model.Booking) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, booking)
	}
	return nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// Minimal event repository mock; only Exists matters here.
type mockEventExistence struct {
	existsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockEventExistence) Create(ctx context.Context, event *model.Event) error { return nil }
func (m *mockEventExistence) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return nil, nil
}
func (m *mockEventExistence) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return nil, nil
}
func (m *mockEventExistence) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Event, error) {
	return nil, nil
}
func (m *mockEventExistence) Count(ctx context.Context) (int64, error)               { return 0, nil }
func (m *mockEventExistence) Update(ctx context.Context, id string, event *model.Event) error {
	return nil
}
func (m *mockEventExistence) Delete(ctx context.Context, id string) error { return nil }
func (m *mockEventExistence) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, eventType, key string, value any) error
	published   int
}

func (m *mockPublisher) Publish(ctx context.Context, eventType, key string, value any) error {
	m.published++
	if m.publishFunc != nil {
		return m.publishFunc(ctx, eventType, key, value)
	}
	return nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "error",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

func newTestService(repo *mockBookingRepository, events *mockEventExistence, pub NotificationPublisher) BookingService {
	cfg := newTestConfig()
	return NewBookingService(repo, events, validator.NewBookingValidator(cfg.Log), pub, cfg)
}

const testEventID = "665f1c2e9b3e4a0001a1b2c3"

func TestCreate_NormalizesEmailAndVerifiesEvent(t *testing.T) {
	var persisted *model.Booking
	var checkedEventID string

	mockRepo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			persisted = booking
			return nil
		},
	}
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			checkedEventID = id
			return true, nil
		},
	}

	service := newTestService(mockRepo, mockEvents, nil)
	booking := &model.Booking{
		EventID: "  " + testEventID + "  ",
		Email:   "  Jane.Doe@Example.COM ",
	}

	if err := service.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted == nil {
		t.Fatal("expected repository Create to be called")
	}

	if persisted.Email != "jane.doe@example.com" {
		t.Errorf("expected normalized email, got %q", persisted.Email)
	}
	if persisted.EventID != testEventID {
		t.Errorf("expected trimmed event ID, got %q", persisted.EventID)
	}
	if checkedEventID != testEventID {
		t.Errorf("existence check got event ID %q", checkedEventID)
	}
}

func TestCreate_MissingEventRejectedBeforePersist(t *testing.T) {
	createCalled := false
	mockRepo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			createCalled = true
			return nil
		},
	}
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}

	service := newTestService(mockRepo, mockEvents, nil)

	err := service.Create(context.Background(), &model.Booking{
		EventID: testEventID,
		Email:   "jane@example.com",
	})
	if err == nil {
		t.Fatal("expected error for missing event")
	}
	if createCalled {
		t.Error("repository Create must not run when the event is missing")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestCreate_InvalidEmailRejected(t *testing.T) {
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}

	service := newTestService(&mockBookingRepository{}, mockEvents, nil)

	err := service.Create(context.Background(), &model.Booking{
		EventID: testEventID,
		Email:   "not an email",
	})
	if err == nil {
		t.Fatal("expected error for invalid email")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected code %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
}

func TestCreate_PublishesNotification(t *testing.T) {
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}
	pub := &mockPublisher{}

	service := newTestService(&mockBookingRepository{}, mockEvents, pub)

	err := service.Create(context.Background(), &model.Booking{
		EventID: testEventID,
		Email:   "jane@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.published != 1 {
		t.Errorf("expected 1 published notification, got %d", pub.published)
	}
}

func TestCreate_PublishFailureDoesNotFailBooking(t *testing.T) {
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}
	pub := &mockPublisher{
		publishFunc: func(ctx context.Context, eventType, key string, value any) error {
			return errors.New("broker unreachable")
		},
	}

	service := newTestService(&mockBookingRepository{}, mockEvents, pub)

	err := service.Create(context.Background(), &model.Booking{
		EventID: testEventID,
		Email:   "jane@example.com",
	})
	if err != nil {
		t.Fatalf("booking must succeed despite publish failure, got: %v", err)
	}
}

func storedBooking() *model.Booking {
	return &model.Booking{
		ID:      "665f1c2e9b3e4a0001d4e5f6",
		EventID: testEventID,
		Email:   "jane@example.com",
	}
}

func TestUpdate_EmailOnlySkipsExistenceCheck(t *testing.T) {
	existsCalled := false
	var updated *model.Booking

	mockRepo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return storedBooking(), nil
		},
		updateFunc: func(ctx context.Context, id string, booking *model.Booking) error {
			updated = booking
			return nil
		},
	}
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			existsCalled = true
			return true, nil
		},
	}

	service := newTestService(mockRepo, mockEvents, nil)
	email := "New.Address@Example.com"

	err := service.Update(context.Background(), storedBooking().ID, &model.BookingUpdate{
		Email: &email,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if existsCalled {
		t.Error("event existence check must not run for an email-only patch")
	}
	if updated.Email != "new.address@example.com" {
		t.Errorf("expected normalized email, got %q", updated.Email)
	}
}

func TestUpdate_EventIDChangeTriggersExistenceCheck(t *testing.T) {
	const otherEventID = "665f1c2e9b3e4a0001a1b2c4"
	var checkedEventID string

	mockRepo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return storedBooking(), nil
		},
	}
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			checkedEventID = id
			return true, nil
		},
	}

	service := newTestService(mockRepo, mockEvents, nil)
	eventID := otherEventID

	err := service.Update(context.Background(), storedBooking().ID, &model.BookingUpdate{
		EventID: &eventID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if checkedEventID != otherEventID {
		t.Errorf("expected existence check for %q, got %q", otherEventID, checkedEventID)
	}
}

func TestUpdate_SameEventIDSkipsExistenceCheck(t *testing.T) {
	existsCalled := false

	mockRepo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return storedBooking(), nil
		},
	}
	mockEvents := &mockEventExistence{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			existsCalled = true
			return true, nil
		},
	}

	service := newTestService(mockRepo, mockEvents, nil)
	eventID := testEventID

	err := service.Update(context.Background(), storedBooking().ID, &model.BookingUpdate{
		EventID: &eventID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if existsCalled {
		t.Error("existence check must not run when the patch keeps the same event")
	}
}

func TestGetByEvent_RequiresEventID(t *testing.T) {
	service := newTestService(&mockBookingRepository{}, &mockEventExistence{}, nil)

	_, _, err := service.GetByEvent(context.Background(), "", 10, 0)
	if err == nil {
		t.Fatal("expected error for empty event ID")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}
}

func TestGetAll_ConcurrentCountAndFind(t *testing.T) {
	mockRepo := &mockBookingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			time.Sleep(5 * time.Millisecond)
			return 7, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			time.Sleep(5 * time.Millisecond)
			return []*model.Booking{storedBooking()}, nil
		},
	}

	service := newTestService(mockRepo, &mockEventExistence{}, nil)

	for i := 0; i < 10; i++ {
		bookings, count, err := service.GetAll(context.Background(), 10, 0)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if count != 7 {
			t.Errorf("iteration %d: expected count 7, got %d", i, count)
		}
		if len(bookings) != 1 {
			t.Errorf("iteration %d: expected 1 booking, got %d", i, len(bookings))
		}
	}
}
