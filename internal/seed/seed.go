// Package seed carries the default records written on first run. The data
// is injected at bootstrap time so the domain repos stay data-agnostic.
package seed

import (
	"context"
	"fmt"

	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/feed"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/domain/team"
	"hockey-union/backend/internal/domain/user"
	"hockey-union/backend/internal/storage"
)

// Data is the seed set for the primary collections. Feed collections
// always seed empty and need no configuration.
type Data struct {
	Teams         []team.Team
	Players       []player.Player
	Events        []event.Event
	Registrations []event.Registration
	Users         []user.User
}

// Repos are the seeding targets.
type Repos struct {
	Teams   *team.Repo
	Players *player.Repo
	Events  *event.Repo
	Users   *user.Repo
	Feed    *feed.Repo
}

// Apply seeds every collection whose key is absent. It is idempotent:
// running it on every start writes nothing once data exists, even when a
// collection has been emptied since.
func Apply(ctx context.Context, d Data, r Repos) error {
	if err := r.Teams.Seed(ctx, d.Teams); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := r.Players.Seed(ctx, d.Players); err != nil {
		return fmt.Errorf("seed players: %w", err)
	}
	if err := r.Events.Seed(ctx, d.Events, d.Registrations); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	if err := r.Users.Seed(ctx, d.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := r.Feed.Seed(ctx); err != nil {
		return fmt.Errorf("seed feed: %w", err)
	}
	return nil
}

// collectionNames are every substrate key the app owns, singletons
// included.
var collectionNames = []string{
	"teams", "players", "events", "event_registrations", "users",
	"current_user", "news", "announcements", "notifications",
}

// Reset wipes every collection and the session singleton. The next Apply
// re-seeds from scratch.
func Reset(ctx context.Context, kv storage.KV) error {
	keys := make([]string, 0, len(collectionNames))
	for _, name := range collectionNames {
		keys = append(keys, storage.Key(name))
	}
	if err := kv.RemoveMany(ctx, keys); err != nil {
		return fmt.Errorf("reset collections: %w", err)
	}
	return nil
}

// Empty is the seed set for a blank installation: every collection starts
// as an empty sequence except users, which keeps the admin account so the
// app is reachable.
func Empty() Data {
	return Data{Users: adminUsers()}
}

// Demo returns the demo fixture set the mobile app ships with.
func Demo() Data {
	return Data{
		Teams: []team.Team{
			{ID: "1", Name: "Windhoek Warriors", Category: "Men", Division: "Premier", HomeVenue: "Windhoek Stadium"},
			{ID: "2", Name: "Swakopmund Stars", Category: "Women", Division: "Premier", HomeVenue: "Swakopmund Field"},
			{ID: "3", Name: "Walvis Bay Wolves", Category: "Mixed", Division: "First", HomeVenue: "Walvis Bay Arena"},
			{ID: "4", Name: "Otjiwarongo Owls", Category: "Junior Boys", Division: "Junior", HomeVenue: "Otjiwarongo School"},
			{ID: "5", Name: "Keetmanshoop Kings", Category: "Men", Division: "Second", HomeVenue: "Keetmanshoop Field"},
			{ID: "6", Name: "Rundu Rangers", Category: "Women", Division: "First", HomeVenue: "Rundu Sports Complex"},
		},
		Players: []player.Player{
			{
				ID: "1", FirstName: "John", LastName: "Doe", TeamID: "1",
				Position: "Forward", JerseyNumber: "10", DateOfBirth: "1995-05-15",
				Gender: "Male", Nationality: "Namibian",
			},
			{
				ID: "2", FirstName: "Jane", LastName: "Smith", TeamID: "2",
				Position: "Midfielder", JerseyNumber: "8", DateOfBirth: "1997-03-22",
				Gender: "Female", Nationality: "Namibian",
			},
			{
				ID: "3", FirstName: "Michael", LastName: "Johnson", TeamID: "1",
				Position: "Defender", JerseyNumber: "4", DateOfBirth: "1994-11-10",
				Gender: "Male", Nationality: "Namibian",
			},
		},
		Events: []event.Event{
			{
				ID: "1", Title: "National Championship",
				Description: "Annual national hockey championship tournament",
				Date:        "2025-06-15", Location: "Windhoek National Stadium",
			},
			{
				ID: "2", Title: "Youth Hockey Camp",
				Description: "Training camp for young hockey players",
				Date:        "2025-07-10", Location: "Swakopmund Sports Center",
			},
			{
				ID: "3", Title: "Coastal Tournament",
				Description: "Regional tournament for coastal teams",
				Date:        "2025-08-22", Location: "Walvis Bay Hockey Field",
			},
		},
		Users: adminUsers(),
	}
}

func adminUsers() []user.User {
	return []user.User{
		{
			ID:       "1",
			Username: "admin",
			// bcrypt hash of the demo password; derived at seed build
			// time, never stored in plaintext.
			PasswordHash: user.MustHashPassword("password"),
			Name:         "Admin User",
			Role:         "admin",
		},
	}
}
