package model

import "time"

// Event is a schedulable public event. Slug is derived from Title and
// unique across the collection; Date and Time are stored canonically as
// YYYY-MM-DD and 24h HH:MM.
type Event struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title       string    `json:"title" bson:"title" validate:"required,notblank"`
	Slug        string    `json:"slug" bson:"slug" validate:"omitempty"`
	Description string    `json:"description" bson:"description" validate:"required,notblank"`
	Overview    string    `json:"overview" bson:"overview" validate:"required,notblank"`
	Image       string    `json:"image" bson:"image" validate:"required,notblank"`
	Venue       string    `json:"venue" bson:"venue" validate:"required,notblank"`
	Location    string    `json:"location" bson:"location" validate:"required,notblank"`
	Date        string    `json:"date" bson:"date" validate:"required,notblank"`
	Time        string    `json:"time" bson:"time" validate:"required,notblank"`
	Mode        string    `json:"mode" bson:"mode" validate:"required,notblank"`
	Audience    string    `json:"audience" bson:"audience" validate:"required,notblank"`
	Agenda      []string  `json:"agenda" bson:"agenda" validate:"required,min=1,dive,notblank"`
	Organizer   string    `json:"organizer" bson:"organizer" validate:"required,notblank"`
	Tags        []string  `json:"tags" bson:"tags" validate:"required,min=1,dive,notblank"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

// EventUpdate is a partial patch. Nil means "leave unchanged"; slug, date
// and time recomputation in the write pipeline is keyed off which of
// these fields actually changed.
type EventUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Overview    *string   `json:"overview,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Mode        *string   `json:"mode,omitempty"`
	Audience    *string   `json:"audience,omitempty"`
	Agenda      *[]string `json:"agenda,omitempty"`
	Organizer   *string   `json:"organizer,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}
