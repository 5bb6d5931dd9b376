package event

import (
	"strings"
	"time"
)

// Event represents a union event: a tournament, camp or fixture.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"` // "2006-01-02"
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// RegistrationContact is the person entering a team into an event.
type RegistrationContact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Registration enters a team into an event. EventID and TeamID are weak
// references; only the team side cascades on delete.
type Registration struct {
	ID              string              `json:"id"`
	EventID         string              `json:"eventId"`
	TeamID          string              `json:"teamId"`
	Contact         RegistrationContact `json:"contact"`
	NumberOfPlayers int                 `json:"numberOfPlayers"`
	SpecialRequests string              `json:"specialRequests,omitempty"`
	RegisteredAt    time.Time           `json:"registeredAt"`
}

// CreateEventInput represents input for publishing an event.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (in *CreateEventInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// UpdateEventInput represents a patch; nil fields keep the stored value.
type UpdateEventInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (in *UpdateEventInput) Trim() {
	for _, f := range []*string{in.Title, in.Description, in.Date, in.Location, in.ImageURL} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// CreateRegistrationInput represents input for entering a team into an
// event.
type CreateRegistrationInput struct {
	EventID         string              `json:"eventId"`
	TeamID          string              `json:"teamId"`
	Contact         RegistrationContact `json:"contact"`
	NumberOfPlayers int                 `json:"numberOfPlayers"`
	SpecialRequests string              `json:"specialRequests,omitempty"`
}

func (in *CreateRegistrationInput) Trim() {
	in.EventID = strings.TrimSpace(in.EventID)
	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Contact.Name = strings.TrimSpace(in.Contact.Name)
	in.Contact.Email = strings.TrimSpace(in.Contact.Email)
	in.Contact.Phone = strings.TrimSpace(in.Contact.Phone)
	in.SpecialRequests = strings.TrimSpace(in.SpecialRequests)
}
