package model

import "time"

// Booking ties an attendee email to an existing Event. The reference is
// non-owning: deleting an Event does not cascade to its bookings.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	EventID   string    `json:"event_id" bson:"event_id" validate:"required,mongodb"`
	Email     string    `json:"email" bson:"email" validate:"required,email_shape"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

type BookingUpdate struct {
	EventID *string `json:"event_id,omitempty"`
	Email   *string `json:"email,omitempty"`
}
