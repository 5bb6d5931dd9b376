package player

import (
	"strings"
	"time"
)

// EmergencyContact is who to call when a player is injured.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Player represents a registered player. TeamID is a weak reference: it is
// not validated at write time, and the owning team's deletion cascades here.
type Player struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	TeamID            string            `json:"teamId"`
	Position          string            `json:"position"`
	JerseyNumber      string            `json:"jerseyNumber"`
	DateOfBirth       string            `json:"dateOfBirth"` // "2006-01-02"
	Gender            string            `json:"gender"`
	Nationality       string            `json:"nationality"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Address           string            `json:"address,omitempty"`
	MedicalConditions string            `json:"medicalConditions,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Photo             string            `json:"photo,omitempty"`
	IDNumber          string            `json:"idNumber,omitempty"`
	CreatedAt         time.Time         `json:"createdAt,omitempty"`
	UpdatedAt         time.Time         `json:"updatedAt,omitempty"`
}

// CreatePlayerInput represents input for registering a player.
type CreatePlayerInput struct {
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	TeamID            string            `json:"teamId"`
	Position          string            `json:"position"`
	JerseyNumber      string            `json:"jerseyNumber"`
	DateOfBirth       string            `json:"dateOfBirth"`
	Gender            string            `json:"gender"`
	Nationality       string            `json:"nationality"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Address           string            `json:"address,omitempty"`
	MedicalConditions string            `json:"medicalConditions,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Photo             string            `json:"photo,omitempty"`
	IDNumber          string            `json:"idNumber,omitempty"`
}

func (in *CreatePlayerInput) Trim() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Position = strings.TrimSpace(in.Position)
	in.JerseyNumber = strings.TrimSpace(in.JerseyNumber)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	in.Gender = strings.TrimSpace(in.Gender)
	in.Nationality = strings.TrimSpace(in.Nationality)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.IDNumber = strings.TrimSpace(in.IDNumber)
}

// UpdatePlayerInput represents a patch; nil fields keep the stored value.
type UpdatePlayerInput struct {
	FirstName         *string           `json:"firstName,omitempty"`
	LastName          *string           `json:"lastName,omitempty"`
	TeamID            *string           `json:"teamId,omitempty"`
	Position          *string           `json:"position,omitempty"`
	JerseyNumber      *string           `json:"jerseyNumber,omitempty"`
	DateOfBirth       *string           `json:"dateOfBirth,omitempty"`
	Gender            *string           `json:"gender,omitempty"`
	Nationality       *string           `json:"nationality,omitempty"`
	Email             *string           `json:"email,omitempty"`
	Phone             *string           `json:"phone,omitempty"`
	Address           *string           `json:"address,omitempty"`
	MedicalConditions *string           `json:"medicalConditions,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Photo             *string           `json:"photo,omitempty"`
	IDNumber          *string           `json:"idNumber,omitempty"`
}

func (in *UpdatePlayerInput) Trim() {
	for _, f := range []*string{
		in.FirstName, in.LastName, in.TeamID, in.Position, in.JerseyNumber,
		in.DateOfBirth, in.Gender, in.Nationality, in.Email, in.Phone,
		in.IDNumber,
	} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
