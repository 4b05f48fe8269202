package service

import (
	"context"
	"errors"
	"sync"

	eventserrors "evently/internal/events/errors"
	"evently/internal/events/repository"
	"evently/internal/events/validator"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/model"
	"evently/pkg/sanitizer"
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error)
	Update(ctx context.Context, id string, updates *model.EventUpdate) error
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.EventValidator
	cfg       *config.Config
}

func NewEventService(
	repo repository.EventRepository,
	validator *validator.EventValidator,
	cfg *config.Config,
) EventService {
	return &eventService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Create runs the full write pipeline for a new event: trim, derive the
// slug from the title, canonicalize date and time, validate every field,
// then persist. Slug uniqueness is enforced by the store's unique index,
// not pre-checked here.
func (s *eventService) Create(ctx context.Context, event *model.Event) error {
	s.sanitize(event)

	if err := s.deriveSlug(event); err != nil {
		return err
	}
	if err := s.normalizeDate(event); err != nil {
		return err
	}
	if err := s.normalizeTime(event); err != nil {
		return err
	}
	if err := s.validate(event); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, eventserrors.ErrDuplicateSlug) {
			s.cfg.Log.Warn("Duplicate event slug rejected", "slug", event.Slug)
			return apperrors.Conflict(eventserrors.ErrDuplicateSlug.Error()).WithDetails(map[string]any{
				"slug": event.Slug,
			})
		}
		s.cfg.Log.Error("Failed to create event", "error", err)
		return apperrors.Internal("Failed to create event", err)
	}

	s.cfg.Log.Info("Event created successfully",
		"id", event.ID,
		"slug", event.Slug,
		"date", event.Date,
		"time", event.Time,
	)
	return nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event ID cannot be empty")
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid event ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("Event slug cannot be empty")
	}

	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Event")
		}
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *eventService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error) {
	var count int64
	var events []*model.Event
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count events", "error", errCount)
			errCount = apperrors.Internal("Failed to count events", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		events, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list events", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve events", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return events, count, nil
}

// Update merges the patch over the stored record and re-runs the write
// pipeline. Slug, date and time are only recomputed when the patch
// actually changes their source field; patching unrelated fields leaves
// them untouched.
func (s *eventService) Update(ctx context.Context, id string, updates *model.EventUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Event ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid event ID format")
		}
		return apperrors.Internal("Failed to check event existence", err)
	}

	merged := s.mergeEventUpdates(existing, updates)
	s.sanitize(merged)

	if updates.Title != nil && merged.Title != existing.Title {
		if err := s.deriveSlug(merged); err != nil {
			return err
		}
	}
	if updates.Date != nil && merged.Date != existing.Date {
		if err := s.normalizeDate(merged); err != nil {
			return err
		}
	}
	if updates.Time != nil && merged.Time != existing.Time {
		if err := s.normalizeTime(merged); err != nil {
			return err
		}
	}

	if err := s.validate(merged); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, eventserrors.ErrDuplicateSlug) {
			s.cfg.Log.Warn("Duplicate event slug rejected", "id", id, "slug", merged.Slug)
			return apperrors.Conflict(eventserrors.ErrDuplicateSlug.Error()).WithDetails(map[string]any{
				"slug": merged.Slug,
			})
		}
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		s.cfg.Log.Error("Failed to update event", "id", id, "error", err)
		return apperrors.Internal("Failed to update event", err)
	}

	s.cfg.Log.Info("Event updated successfully", "id", id, "slug", merged.Slug)
	return nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Event ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event", id)
		}
		if errors.Is(err, eventserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid event ID format")
		}
		return apperrors.Internal("Failed to delete event", err)
	}

	s.cfg.Log.Info("Event deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *eventService) sanitize(e *model.Event) {
	e.Title = sanitizer.Clean(e.Title)
	e.Description = sanitizer.Clean(e.Description)
	e.Overview = sanitizer.Clean(e.Overview)
	e.Image = sanitizer.Clean(e.Image)
	e.Venue = sanitizer.Clean(e.Venue)
	e.Location = sanitizer.Clean(e.Location)
	e.Date = sanitizer.Clean(e.Date)
	e.Time = sanitizer.Clean(e.Time)
	e.Mode = sanitizer.Clean(e.Mode)
	e.Audience = sanitizer.Clean(e.Audience)
	e.Organizer = sanitizer.Clean(e.Organizer)
	e.Agenda = sanitizer.CleanSlice(e.Agenda)
	e.Tags = sanitizer.CleanSlice(e.Tags)
}

func (s *eventService) deriveSlug(e *model.Event) error {
	slug, err := sanitizer.Slugify(e.Title)
	if err != nil {
		s.cfg.Log.Warn("Slug generation failed", "title", e.Title, "error", err)
		return apperrors.Validation(eventserrors.ErrSlugGeneration.Error(), map[string]any{
			"title": e.Title,
			"error": err.Error(),
		})
	}
	e.Slug = slug
	return nil
}

func (s *eventService) normalizeDate(e *model.Event) error {
	date, err := sanitizer.NormalizeDate(e.Date)
	if err != nil {
		s.cfg.Log.Warn("Date normalization failed", "date", e.Date, "error", err)
		return apperrors.Validation("Invalid event date", map[string]any{
			"date":  e.Date,
			"error": err.Error(),
		})
	}
	e.Date = date
	return nil
}

func (s *eventService) normalizeTime(e *model.Event) error {
	t, err := sanitizer.NormalizeTime(e.Time)
	if err != nil {
		s.cfg.Log.Warn("Time normalization failed", "time", e.Time, "error", err)
		return apperrors.Validation("Invalid event time", map[string]any{
			"time":  e.Time,
			"error": err.Error(),
		})
	}
	e.Time = t
	return nil
}

func (s *eventService) mergeEventUpdates(existing *model.Event, updates *model.EventUpdate) *model.Event {
	merged := *existing

	if updates.Title != nil {
		merged.Title = *updates.Title
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Overview != nil {
		merged.Overview = *updates.Overview
	}
	if updates.Image != nil {
		merged.Image = *updates.Image
	}
	if updates.Venue != nil {
		merged.Venue = *updates.Venue
	}
	if updates.Location != nil {
		merged.Location = *updates.Location
	}
	if updates.Date != nil {
		merged.Date = *updates.Date
	}
	if updates.Time != nil {
		merged.Time = *updates.Time
	}
	if updates.Mode != nil {
		merged.Mode = *updates.Mode
	}
	if updates.Audience != nil {
		merged.Audience = *updates.Audience
	}
	if updates.Agenda != nil {
		merged.Agenda = *updates.Agenda
	}
	if updates.Organizer != nil {
		merged.Organizer = *updates.Organizer
	}
	if updates.Tags != nil {
		merged.Tags = *updates.Tags
	}

	return &merged
}

func (s *eventService) validate(event *model.Event) error {
	if err := s.validator.Validate(event); err != nil {
		s.cfg.Log.Warn("Event validation failed", "error", err)
		if errors.Is(err, eventserrors.ErrInvalidAgenda) || errors.Is(err, eventserrors.ErrInvalidTags) {
			return apperrors.Validation(err.Error(), nil)
		}
		return apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
