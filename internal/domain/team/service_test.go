package team_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/domain/team"
	"hockey-union/backend/internal/storage/memory"
)

type fixture struct {
	teams   *team.Service
	players *player.Service
	events  *event.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	kv := memory.New()
	log := zerolog.Nop()

	playerRepo := player.NewRepo(kv, log)
	eventRepo := event.NewRepo(kv, log)
	teamRepo := team.NewRepo(kv, log)

	return fixture{
		teams:   team.NewService(teamRepo, playerRepo, eventRepo),
		players: player.NewService(playerRepo),
		events:  event.NewService(eventRepo),
	}
}

func TestRegisterAssignsID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.teams.Register(ctx, team.CreateTeamInput{
		Name: "Windhoek Warriors", Category: "Men", Division: "Premier",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := f.teams.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Windhoek Warriors", got.Name)
}

func TestRegisterIDsAreUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		created, err := f.teams.Register(ctx, team.CreateTeamInput{
			Name: "Team", Category: "Men", Division: "First",
		})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "id %s assigned twice", created.ID)
		seen[created.ID] = true
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.teams.Register(ctx, team.CreateTeamInput{Category: "Men", Division: "First"})
	require.True(t, team.IsErrBadRequest(err))

	_, err = f.teams.Register(ctx, team.CreateTeamInput{Name: "X", Division: "First"})
	require.True(t, team.IsErrBadRequest(err))
}

func TestUpdatePatchSemantics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.teams.Register(ctx, team.CreateTeamInput{
		Name: "Rundu Rangers", Category: "Women", Division: "First",
		HomeVenue: "Rundu Sports Complex",
	})
	require.NoError(t, err)

	division := "Premier"
	updated, err := f.teams.Update(ctx, created.ID, team.UpdateTeamInput{Division: &division})
	require.NoError(t, err)

	// patched field overwrites, unspecified fields are retained
	require.Equal(t, "Premier", updated.Division)
	require.Equal(t, "Rundu Rangers", updated.Name)
	require.Equal(t, "Rundu Sports Complex", updated.HomeVenue)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateMissingTeam(t *testing.T) {
	f := newFixture(t)

	name := "Nobody"
	_, err := f.teams.Update(context.Background(), "missing", team.UpdateTeamInput{Name: &name})
	require.True(t, team.IsErrNotFound(err))
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.teams.Register(ctx, team.CreateTeamInput{
		Name: "Windhoek Warriors", Category: "Men", Division: "Premier",
	})
	require.NoError(t, err)

	for _, name := range []string{"P1", "P2"} {
		_, err := f.players.Register(ctx, player.CreatePlayerInput{
			FirstName: name, LastName: "Player", TeamID: created.ID,
		})
		require.NoError(t, err)
	}
	// a player on another team must survive the cascade
	bystander, err := f.players.Register(ctx, player.CreatePlayerInput{
		FirstName: "Other", LastName: "Player", TeamID: "other-team",
	})
	require.NoError(t, err)

	ev, err := f.events.Create(ctx, event.CreateEventInput{Title: "Championship", Date: "2025-06-15"})
	require.NoError(t, err)
	_, err = f.events.RegisterTeam(ctx, event.CreateRegistrationInput{
		EventID: ev.ID, TeamID: created.ID,
		Contact:         event.RegistrationContact{Name: "Coach"},
		NumberOfPlayers: 11,
	})
	require.NoError(t, err)

	require.NoError(t, f.teams.Delete(ctx, created.ID))

	_, err = f.teams.Get(ctx, created.ID)
	require.True(t, team.IsErrNotFound(err))

	remaining, err := f.players.ListByTeam(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	regs, err := f.events.ListRegistrationsByTeam(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, regs)

	_, err = f.players.Get(ctx, bystander.ID)
	require.NoError(t, err)
}

func TestDeleteMissingTeam(t *testing.T) {
	f := newFixture(t)
	err := f.teams.Delete(context.Background(), "missing")
	require.True(t, team.IsErrNotFound(err))
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.teams.Register(ctx, team.CreateTeamInput{
		Name: "Windhoek Warriors", Category: "Men", Division: "Premier",
	})
	require.NoError(t, err)
	_, err = f.teams.Register(ctx, team.CreateTeamInput{
		Name: "Swakopmund Stars", Category: "Women", Division: "Premier",
	})
	require.NoError(t, err)

	got := f.teams.Search(ctx, "warriors")
	require.Len(t, got, 1)
	require.Equal(t, "Windhoek Warriors", got[0].Name)

	// blank query returns everything
	require.Len(t, f.teams.Search(ctx, "  "), 2)
}
