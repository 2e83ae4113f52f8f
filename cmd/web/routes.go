package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gceelixir/symposium/internal/event"
	"github.com/gceelixir/symposium/internal/httputil"
	"github.com/gceelixir/symposium/internal/middleware"
	"github.com/gceelixir/symposium/internal/notify"
	"github.com/gceelixir/symposium/internal/pass"
	"github.com/gceelixir/symposium/internal/registration"
	"github.com/gceelixir/symposium/internal/service"
	"github.com/gceelixir/symposium/internal/store"
	"github.com/gceelixir/symposium/internal/wizard"
)

var validate = validator.New()

// entryQRSize is the pixel size of the pass QR shown on the dashboard.
const entryQRSize = 300

func defaultUPIID() string {
	if v := os.Getenv("ELIXIR_UPI_ID"); v != "" {
		return v
	}
	return "midhun73272@oksbi"
}

// registrationView is a registration plus its presentation fields for the
// verify and dashboard screens.
type registrationView struct {
	registration.Registration
	StatusDisplay string                    `json:"statusDisplay"`
	Presentation  registration.Presentation `json:"presentation"`
	EntryQRURL    string                    `json:"entryQrUrl,omitempty"`
}

func viewOf(reg registration.Registration) registrationView {
	v := registrationView{
		Registration:  reg,
		StatusDisplay: reg.Status.Display(),
		Presentation:  registration.Present(reg.Status),
	}
	if reg.PassEligible() {
		v.EntryQRURL = pass.EntryQRURL(pass.New(reg.ID), entryQRSize)
	}
	return v
}

// wizardState is the wizard snapshot returned after every flow mutation,
// with the derived values the registration screens render from.
type wizardState struct {
	*wizard.Wizard
	MaxTeamSize  int               `json:"maxTeamSize"`
	ActiveCount  int               `json:"activeCount"`
	TotalFee     int               `json:"totalFee"`
	CanSubmit    bool              `json:"canSubmit"`
	FieldErrors  map[string]string `json:"fieldErrors"`
	UPIURI       string            `json:"upiUri,omitempty"`
	PaymentQRURL string            `json:"paymentQrUrl,omitempty"`
	EntryQRURL   string            `json:"entryQrUrl,omitempty"`
	// PrintFallback is the raw pass payload, for rendering as text when
	// the QR image endpoint is unreachable.
	PrintFallback string `json:"printFallback,omitempty"`
}

func stateOf(w *wizard.Wizard) wizardState {
	st := wizardState{
		Wizard:      w,
		MaxTeamSize: w.MaxTeamSize(),
		ActiveCount: w.ActiveCount(),
		TotalFee:    w.TotalFee(),
		CanSubmit:   w.CanSubmit(),
		FieldErrors: w.FieldErrors(),
	}
	if w.Step == wizard.StepPayment {
		st.UPIURI = pass.UPIURI(defaultUPIID(), w.TotalFee())
		st.PaymentQRURL = pass.PaymentQRURL(defaultUPIID(), w.TotalFee())
	}
	if w.Step == wizard.StepDone && w.Result != nil {
		p := pass.New(w.Result.ID)
		st.EntryQRURL = pass.EntryQRURL(p, entryQRSize)
		st.PrintFallback = p.Encode()
	}
	return st
}

func newRouter(sessionManager *scs.SessionManager, database *sqlx.DB, hub *notify.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)

	regService := func() *service.RegistrationService {
		return service.NewRegistrationService(store.NewRegistrationStore(database), hub)
	}
	blogService := func() *service.BlogService {
		return service.NewBlogService(store.NewBlogStore(database))
	}

	loadWizard := func(r *http.Request) *wizard.Wizard {
		raw := sessionManager.GetString(r.Context(), middleware.WizardKey)
		if raw == "" {
			return wizard.New()
		}
		var w wizard.Wizard
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			return wizard.New()
		}
		return &w
	}
	saveWizard := func(r *http.Request, w *wizard.Wizard) {
		b, _ := json.Marshal(w)
		sessionManager.Put(r.Context(), middleware.WizardKey, string(b))
	}

	r.Get("/api/events", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, event.Catalog)
	})

	r.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		e, ok := event.ByID(chi.URLParam(r, "id"))
		if !ok {
			httputil.NotFound(w, "Event not found", nil)
			return
		}
		httputil.JSON(w, http.StatusOK, e)
	})

	// Registration wizard. State lives in the visitor's session; every
	// mutation returns the refreshed snapshot.
	r.Route("/api/register", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			wiz := loadWizard(r)
			if id := r.URL.Query().Get("eventId"); id != "" {
				wiz.Preselect(id)
				saveWizard(r, wiz)
			}
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			sessionManager.Remove(r.Context(), middleware.WizardKey)
			httputil.JSON(w, http.StatusOK, stateOf(wizard.New()))
		})

		r.Post("/events", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				ID string `json:"id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			wiz := loadWizard(r)
			if err := wiz.ToggleEvent(body.ID); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Put("/details", func(w http.ResponseWriter, r *http.Request) {
			var d wizard.Details
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			wiz := loadWizard(r)
			wiz.SetDetails(d)
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Post("/team", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Index int    `json:"index"`
				Name  string `json:"name"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			wiz := loadWizard(r)
			if err := wiz.SetTeamMember(body.Index, body.Name); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Put("/transaction", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				TransactionID string `json:"transactionId"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			wiz := loadWizard(r)
			wiz.SetTransactionID(body.TransactionID)
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Post("/next", func(w http.ResponseWriter, r *http.Request) {
			wiz := loadWizard(r)
			if err := wiz.Next(); err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Post("/back", func(w http.ResponseWriter, r *http.Request) {
			wiz := loadWizard(r)
			wiz.Back()
			saveWizard(r, wiz)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})

		r.Post("/submit", func(w http.ResponseWriter, r *http.Request) {
			wiz := loadWizard(r)
			reg, err := wiz.Finalize(time.Now().UTC())
			if err != nil {
				httputil.BadRequest(w, err.Error(), nil)
				return
			}
			if err := regService().Submit(r.Context(), reg); err != nil {
				wiz.Fail("Submission failed. Please try again.")
				saveWizard(r, wiz)
				httputil.InternalServerError(w, "Failed to save registration", err)
				return
			}
			wiz.Complete(reg)
			saveWizard(r, wiz)
			sessionManager.Put(r.Context(), middleware.UserEmailKey, reg.Email)
			httputil.JSON(w, http.StatusOK, stateOf(wiz))
		})
	})

	r.Get("/api/verify", func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			httputil.BadRequest(w, "Email is required", nil)
			return
		}
		reg, err := regService().FindByEmail(r.Context(), email)
		if errors.Is(err, service.ErrNotFound) {
			httputil.NotFound(w, "No registration found for this email", nil)
			return
		}
		if err != nil {
			httputil.InternalServerError(w, "Failed to look up registration", err)
			return
		}
		sessionManager.Put(r.Context(), middleware.UserEmailKey, reg.Email)
		httputil.JSON(w, http.StatusOK, viewOf(*reg))
	})

	r.Get("/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		email := sessionManager.GetString(r.Context(), middleware.UserEmailKey)
		if email == "" {
			httputil.Unauthorized(w, "No active registration session")
			return
		}
		regs, err := regService().ListByEmail(r.Context(), email)
		if err != nil {
			httputil.InternalServerError(w, "Failed to load registrations", err)
			return
		}
		views := make([]registrationView, 0, len(regs))
		for _, reg := range regs {
			views = append(views, viewOf(reg))
		}
		httputil.JSON(w, http.StatusOK, views)
	})

	r.Get("/api/blog", func(w http.ResponseWriter, r *http.Request) {
		posts, err := blogService().ListPublished(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to load posts", err)
			return
		}
		httputil.JSON(w, http.StatusOK, posts)
	})

	r.Get("/api/blog/{slug}", func(w http.ResponseWriter, r *http.Request) {
		post, err := blogService().GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "Post not found", nil)
			return
		}
		if err != nil {
			httputil.InternalServerError(w, "Failed to load post", err)
			return
		}
		httputil.JSON(w, http.StatusOK, post)
	})

	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Key string `json:"key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		if !middleware.CheckAdminKey(body.Key) {
			httputil.Unauthorized(w, "Invalid admin key")
			return
		}
		if err := sessionManager.RenewToken(r.Context()); err != nil {
			httputil.InternalServerError(w, "Failed to renew session", err)
			return
		}
		sessionManager.Put(r.Context(), middleware.AdminAuthKey, true)
		httputil.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			httputil.InternalServerError(w, "Failed to destroy session", err)
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/ws/verify", func(w http.ResponseWriter, r *http.Request) {
		serveVerifySocket(w, r, hub)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sessionManager))

		r.Get("/api/admin/registrations", func(w http.ResponseWriter, r *http.Request) {
			status := registration.Status(r.URL.Query().Get("status"))
			if status != "" && !status.Valid() {
				httputil.BadRequest(w, "Unknown status filter", nil)
				return
			}
			regs, err := regService().List(r.Context(), r.URL.Query().Get("q"), status)
			if err != nil {
				httputil.InternalServerError(w, "Failed to list registrations", err)
				return
			}
			httputil.JSON(w, http.StatusOK, regs)
		})

		r.Get("/api/admin/registrations/{id}", func(w http.ResponseWriter, r *http.Request) {
			reg, err := regService().FindByID(r.Context(), chi.URLParam(r, "id"))
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Registration not found", nil)
				return
			}
			if err != nil {
				httputil.InternalServerError(w, "Failed to load registration", err)
				return
			}
			httputil.JSON(w, http.StatusOK, viewOf(*reg))
		})

		r.Post("/api/admin/registrations", func(w http.ResponseWriter, r *http.Request) {
			var in service.WalkInInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if err := validate.Struct(in); err != nil {
				httputil.BadRequest(w, "Invalid walk-in details", err)
				return
			}
			reg, err := regService().CreateWalkIn(r.Context(), in)
			if err != nil {
				httputil.InternalServerError(w, "Failed to create walk-in", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, reg)
		})

		r.Post("/api/admin/registrations/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Status registration.Status `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if !body.Status.Valid() {
				httputil.BadRequest(w, "Unknown status", nil)
				return
			}
			reg, err := regService().Transition(r.Context(), chi.URLParam(r, "id"), body.Status)
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Registration not found", nil)
				return
			}
			if err != nil {
				httputil.InternalServerError(w, "Failed to update status", err)
				return
			}
			httputil.JSON(w, http.StatusOK, reg)
		})

		r.Get("/api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			stats, err := regService().ComputeStats(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to compute stats", err)
				return
			}
			httputil.JSON(w, http.StatusOK, stats)
		})

		r.Get("/api/admin/export", func(w http.ResponseWriter, r *http.Request) {
			data, err := regService().ExportCSV(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to export registrations", err)
				return
			}
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
			w.Write(data)
		})

		r.Get("/api/admin/blog", func(w http.ResponseWriter, r *http.Request) {
			posts, err := blogService().ListAll(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to load posts", err)
				return
			}
			httputil.JSON(w, http.StatusOK, posts)
		})

		r.Post("/api/admin/blog", func(w http.ResponseWriter, r *http.Request) {
			var in service.PostInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if err := validate.Struct(in); err != nil {
				httputil.BadRequest(w, "Invalid post", err)
				return
			}
			post, err := blogService().Create(r.Context(), in)
			if err != nil {
				httputil.InternalServerError(w, "Failed to create post", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, post)
		})

		r.Put("/api/admin/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid post ID", err)
				return
			}
			var in service.PostInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if err := validate.Struct(in); err != nil {
				httputil.BadRequest(w, "Invalid post", err)
				return
			}
			post, err := blogService().Update(r.Context(), id, in)
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Post not found", nil)
				return
			}
			if err != nil {
				httputil.InternalServerError(w, "Failed to update post", err)
				return
			}
			httputil.JSON(w, http.StatusOK, post)
		})

		r.Delete("/api/admin/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid post ID", err)
				return
			}
			if err := blogService().Delete(r.Context(), id); err != nil {
				httputil.InternalServerError(w, "Failed to delete post", err)
				return
			}
			httputil.JSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		r.Get("/ws/admin/registrations", func(w http.ResponseWriter, r *http.Request) {
			serveAdminSocket(w, r, hub)
		})

		r.Get("/ws/admin/scanner", func(w http.ResponseWriter, r *http.Request) {
			serveScannerSocket(w, r, regService())
		})
	})

	return r
}
