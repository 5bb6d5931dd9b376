package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hockey-union/backend/internal/config"
	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/feed"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/domain/team"
	"hockey-union/backend/internal/domain/user"
	"hockey-union/backend/internal/middleware"
)

type RouterDeps struct {
	Cfg       config.Config
	TeamSvc   *team.Service
	PlayerSvc *player.Service
	EventSvc  *event.Service
	UserSvc   *user.Service
	FeedSvc   *feed.Service

	// Reset wipes all collections; the route is only mounted when set.
	Reset func(ctx context.Context) error
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Auth =====
	r.Post("/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var in user.RegisterInput
		if err := ReadJSON(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}

		out, err := d.UserSvc.Register(r.Context(), in)
		if err != nil {
			status, msg := mapUserError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Post("/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in user.LoginInput
		if err := ReadJSON(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}

		out, err := d.UserSvc.Login(r.Context(), in)
		if err != nil {
			status, msg := mapUserError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if err := d.UserSvc.Logout(r.Context()); err != nil {
			Fail(w, 500, "logout failed")
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})

	r.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		s := d.UserSvc.Current(r.Context())
		if s == nil {
			Fail(w, 401, "not logged in")
			return
		}
		WriteJSON(w, 200, s)
	})

	// ===== Public reads =====
	r.Get("/v1/teams", func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q != "" {
			WriteJSON(w, 200, d.TeamSvc.Search(r.Context(), q))
			return
		}
		WriteJSON(w, 200, d.TeamSvc.List(r.Context()))
	})

	r.Get("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.TeamSvc.Get(r.Context(), chi.URLParam(r, "teamId"))
		if err != nil {
			status, msg := mapTeamError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/teams/{teamId}/players", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.PlayerSvc.ListByTeam(r.Context(), chi.URLParam(r, "teamId"))
		if err != nil {
			status, msg := mapPlayerError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/teams/{teamId}/registrations", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.EventSvc.ListRegistrationsByTeam(r.Context(), chi.URLParam(r, "teamId"))
		if err != nil {
			status, msg := mapEventError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/players", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 200, d.PlayerSvc.List(r.Context()))
	})

	r.Get("/v1/players/{playerId}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.PlayerSvc.Get(r.Context(), chi.URLParam(r, "playerId"))
		if err != nil {
			status, msg := mapPlayerError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 200, d.EventSvc.List(r.Context()))
	})

	r.Get("/v1/events/{eventId}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.EventSvc.Get(r.Context(), chi.URLParam(r, "eventId"))
		if err != nil {
			status, msg := mapEventError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/events/{eventId}/registrations", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.EventSvc.ListRegistrationsByEvent(r.Context(), chi.URLParam(r, "eventId"))
		if err != nil {
			status, msg := mapEventError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/news", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 200, d.FeedSvc.ListNews(r.Context()))
	})

	r.Get("/v1/announcements", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 200, d.FeedSvc.ListAnnouncements(r.Context()))
	})

	r.Get("/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, 200, d.FeedSvc.ListNotifications(r.Context()))
	})

	// ===== Mutations require a session =====
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireSession(d.UserSvc))

		pr.Post("/v1/teams", func(w http.ResponseWriter, r *http.Request) {
			var in team.CreateTeamInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.TeamSvc.Register(r.Context(), in)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
			var in team.UpdateTeamInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.TeamSvc.Update(r.Context(), chi.URLParam(r, "teamId"), in)
			if err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/teams/{teamId}", func(w http.ResponseWriter, r *http.Request) {
			if err := d.TeamSvc.Delete(r.Context(), chi.URLParam(r, "teamId")); err != nil {
				status, msg := mapTeamError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/players", func(w http.ResponseWriter, r *http.Request) {
			var in player.CreatePlayerInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PlayerSvc.Register(r.Context(), in)
			if err != nil {
				status, msg := mapPlayerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/v1/players/{playerId}", func(w http.ResponseWriter, r *http.Request) {
			var in player.UpdatePlayerInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PlayerSvc.Update(r.Context(), chi.URLParam(r, "playerId"), in)
			if err != nil {
				status, msg := mapPlayerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/players/{playerId}", func(w http.ResponseWriter, r *http.Request) {
			if err := d.PlayerSvc.Delete(r.Context(), chi.URLParam(r, "playerId")); err != nil {
				status, msg := mapPlayerError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/events", func(w http.ResponseWriter, r *http.Request) {
			var in event.CreateEventInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.EventSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Patch("/v1/events/{eventId}", func(w http.ResponseWriter, r *http.Request) {
			var in event.UpdateEventInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.EventSvc.Update(r.Context(), chi.URLParam(r, "eventId"), in)
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/events/{eventId}", func(w http.ResponseWriter, r *http.Request) {
			if err := d.EventSvc.Delete(r.Context(), chi.URLParam(r, "eventId")); err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/events/{eventId}/registrations", func(w http.ResponseWriter, r *http.Request) {
			var in event.CreateRegistrationInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.EventID = chi.URLParam(r, "eventId")

			out, err := d.EventSvc.RegisterTeam(r.Context(), in)
			if err != nil {
				status, msg := mapEventError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Post("/v1/news", func(w http.ResponseWriter, r *http.Request) {
			var in feed.CreateNewsInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.FeedSvc.PublishNews(r.Context(), in)
			if err != nil {
				status, msg := mapFeedError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Post("/v1/announcements", func(w http.ResponseWriter, r *http.Request) {
			var in feed.CreateAnnouncementInput
			if err := ReadJSON(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.FeedSvc.PublishAnnouncement(r.Context(), in)
			if err != nil {
				status, msg := mapFeedError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Post("/v1/notifications/{notificationId}/read", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.FeedSvc.MarkNotificationRead(r.Context(), chi.URLParam(r, "notificationId"))
			if err != nil {
				status, msg := mapFeedError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Admin maintenance =====
		if d.Reset != nil {
			pr.Post("/v1/admin/reset", func(w http.ResponseWriter, r *http.Request) {
				s, _ := middleware.GetSession(r.Context())
				if s == nil || s.Role != "admin" {
					Fail(w, 403, "admin role required")
					return
				}

				if err := d.Reset(r.Context()); err != nil {
					Fail(w, 500, "reset failed")
					return
				}
				WriteJSON(w, 200, map[string]any{"success": true})
			})
		}
	})

	return r
}

func mapTeamError(err error) (int, string) {
	switch {
	case team.IsErrBadRequest(err):
		return 400, err.Error()
	case team.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, "internal error"
	}
}

func mapPlayerError(err error) (int, string) {
	switch {
	case player.IsErrBadRequest(err):
		return 400, err.Error()
	case player.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, "internal error"
	}
}

func mapEventError(err error) (int, string) {
	switch {
	case event.IsErrBadRequest(err):
		return 400, err.Error()
	case event.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, "internal error"
	}
}

func mapUserError(err error) (int, string) {
	switch {
	case user.IsErrBadRequest(err):
		return 400, err.Error()
	case user.IsErrDuplicateUsername(err):
		return 409, err.Error()
	case user.IsErrInvalidCredentials(err):
		return 401, err.Error()
	case user.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, "internal error"
	}
}

func mapFeedError(err error) (int, string) {
	switch {
	case feed.IsErrBadRequest(err):
		return 400, err.Error()
	case feed.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, "internal error"
	}
}
