package team

import (
	"strings"
	"time"
)

// Contact identifies a coach or manager.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Team represents a club team registered with the union.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"` // "Men", "Women", "Mixed", "Junior Boys", ...
	Division  string    `json:"division"` // "Premier", "First", "Second", "Junior"
	HomeVenue string    `json:"homeVenue,omitempty"`
	Coach     *Contact  `json:"coach,omitempty"`
	Manager   *Contact  `json:"manager,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CreateTeamInput represents input for registering a team. Any caller
// supplied id is ignored; the repo assigns one.
type CreateTeamInput struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Division  string   `json:"division"`
	HomeVenue string   `json:"homeVenue,omitempty"`
	Coach     *Contact `json:"coach,omitempty"`
	Manager   *Contact `json:"manager,omitempty"`
}

func (in *CreateTeamInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Division = strings.TrimSpace(in.Division)
	in.HomeVenue = strings.TrimSpace(in.HomeVenue)
	if in.Coach != nil {
		in.Coach.Trim()
	}
	if in.Manager != nil {
		in.Manager.Trim()
	}
}

// UpdateTeamInput represents a patch: set fields overwrite, nil fields are
// retained from the stored record.
type UpdateTeamInput struct {
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Division  *string  `json:"division,omitempty"`
	HomeVenue *string  `json:"homeVenue,omitempty"`
	Coach     *Contact `json:"coach,omitempty"`
	Manager   *Contact `json:"manager,omitempty"`
}

func (in *UpdateTeamInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		*in.Category = strings.TrimSpace(*in.Category)
	}
	if in.Division != nil {
		*in.Division = strings.TrimSpace(*in.Division)
	}
	if in.HomeVenue != nil {
		*in.HomeVenue = strings.TrimSpace(*in.HomeVenue)
	}
	if in.Coach != nil {
		in.Coach.Trim()
	}
	if in.Manager != nil {
		in.Manager.Trim()
	}
}

func (c *Contact) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
}
