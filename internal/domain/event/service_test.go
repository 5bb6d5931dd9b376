package event_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/storage/memory"
)

func newService(t *testing.T) *event.Service {
	t.Helper()
	return event.NewService(event.NewRepo(memory.New(), zerolog.Nop()))
}

func createEvent(t *testing.T, svc *event.Service) *event.Event {
	t.Helper()
	ev, err := svc.Create(context.Background(), event.CreateEventInput{
		Title: "National Championship", Date: "2025-06-15",
		Location: "Windhoek National Stadium",
	})
	require.NoError(t, err)
	return ev
}

func TestCreateAndGet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ev := createEvent(t, svc)
	require.NotEmpty(t, ev.ID)

	got, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, ev.Title, got.Title)
	require.Equal(t, ev.Date, got.Date)
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, event.CreateEventInput{Date: "2025-06-15"})
	require.True(t, event.IsErrBadRequest(err))

	_, err = svc.Create(ctx, event.CreateEventInput{Title: "T"})
	require.True(t, event.IsErrBadRequest(err))

	_, err = svc.Create(ctx, event.CreateEventInput{Title: "T", Date: "not a date"})
	require.True(t, event.IsErrBadRequest(err))
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ev := createEvent(t, svc)

	location := "Swakopmund Sports Center"
	updated, err := svc.Update(ctx, ev.ID, event.UpdateEventInput{Location: &location})
	require.NoError(t, err)
	require.Equal(t, location, updated.Location)
	require.Equal(t, ev.Title, updated.Title)

	require.NoError(t, svc.Delete(ctx, ev.ID))
	_, err = svc.Get(ctx, ev.ID)
	require.True(t, event.IsErrNotFound(err))
}

func TestRegisterTeam(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ev := createEvent(t, svc)

	reg, err := svc.RegisterTeam(ctx, event.CreateRegistrationInput{
		EventID: ev.ID, TeamID: "team-1",
		Contact:         event.RegistrationContact{Name: "Coach", Email: "coach@example.com"},
		NumberOfPlayers: 11,
		SpecialRequests: "early slot",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.ID)
	require.False(t, reg.RegisteredAt.IsZero())

	byEvent, err := svc.ListRegistrationsByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, byEvent, 1)

	byTeam, err := svc.ListRegistrationsByTeam(ctx, "team-1")
	require.NoError(t, err)
	require.Len(t, byTeam, 1)
	require.Equal(t, reg.ID, byTeam[0].ID)
}

func TestRegisterTeamUnknownEvent(t *testing.T) {
	svc := newService(t)

	_, err := svc.RegisterTeam(context.Background(), event.CreateRegistrationInput{
		EventID: "missing", TeamID: "team-1",
		Contact:         event.RegistrationContact{Name: "Coach"},
		NumberOfPlayers: 11,
	})
	require.True(t, event.IsErrNotFound(err))
}

func TestRegisterTeamValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ev := createEvent(t, svc)

	_, err := svc.RegisterTeam(ctx, event.CreateRegistrationInput{
		EventID: ev.ID, TeamID: "team-1",
		Contact:         event.RegistrationContact{Name: "Coach"},
		NumberOfPlayers: 0,
	})
	require.True(t, event.IsErrBadRequest(err))

	_, err = svc.RegisterTeam(ctx, event.CreateRegistrationInput{
		EventID: ev.ID, TeamID: "team-1",
		NumberOfPlayers: 11,
	})
	require.True(t, event.IsErrBadRequest(err))
}
