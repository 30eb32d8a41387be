package httpapi

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/i474232898/weather-lookup/internal/lookup"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/view"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	sessionCookie = "weather_session"
	lookupPath    = "/lookup"
)

var validate = validator.New()

// Handler serves the lookup form and its JSON counterparts.
type Handler struct {
	sessions *store.MemoryStore
	fetcher  lookup.Fetcher
	logger   *zap.Logger

	// baseCtx outlives individual requests; form-triggered lookups run
	// under it so they finish after the redirect.
	baseCtx context.Context
}

func NewHandler(baseCtx context.Context, sessions *store.MemoryStore, fetcher lookup.Fetcher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		sessions: sessions,
		fetcher:  fetcher,
		logger:   logger,
		baseCtx:  baseCtx,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.page)
	app.Post(lookupPath, h.trigger)

	v1 := app.Group("/api/v1")
	v1.Get("/weather/current", h.current)
	v1.Get("/lookup/state", h.state)
}

// page renders the session's form in whatever state its lookup is in.
func (h *Handler) page(c *fiber.Ctx) error {
	sess := h.session(c)
	page := view.Build(sess.Lookup.City(), sess.Lookup.State())

	var buf bytes.Buffer
	if err := view.Render(&buf, lookupPath, page); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// trigger stores the submitted city and starts a lookup unless the trigger
// is disabled (empty city or a lookup already in flight).
func (h *Handler) trigger(c *fiber.Ctx) error {
	sess := h.session(c)
	// Form values alias fasthttp's request buffer; the city outlives the request.
	sess.Lookup.SetCity(utils.CopyString(c.FormValue("city")))

	if _, ok := sess.Lookup.TriggerAsync(h.baseCtx); !ok {
		h.logger.Debug("lookup trigger ignored",
			zap.String("session", sess.ID),
			zap.String("mode", sess.Lookup.State().Mode().String()))
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// state reports the session's lookup as JSON.
func (h *Handler) state(c *fiber.Ctx) error {
	sess := h.session(c)
	return c.JSON(fiber.Map{
		"city":       sess.Lookup.City(),
		"canTrigger": sess.Lookup.CanTrigger(),
		"state":      sess.Lookup.State(),
	})
}

// current runs a one-shot lookup on a throwaway component.
func (h *Handler) current(c *fiber.Ctx) error {
	q := cityQuery{City: utils.CopyString(c.Query("city"))}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
	}

	l := lookup.New(h.fetcher, h.logger)
	snapshot, err := l.Lookup(c.UserContext(), q.City)
	if err != nil {
		var notFound *weather.NotFoundError
		if errors.As(err, &notFound) {
			return fiber.NewError(fiber.StatusNotFound, weather.Message(err))
		}
		return fiber.NewError(fiber.StatusBadGateway, weather.Message(err))
	}

	return c.JSON(fiber.Map{
		"city":     q.City,
		"iconUrl":  snapshot.Condition.IconURL(),
		"snapshot": snapshot,
	})
}

// cityQuery holds query parameters for the one-shot lookup.
type cityQuery struct {
	City string `validate:"required"`
}

// session resolves the caller's session from its cookie, creating one (and
// setting the cookie) when missing or expired.
func (h *Handler) session(c *fiber.Ctx) *store.Session {
	sess, created := h.sessions.GetOrCreate(c.Cookies(sessionCookie))
	if created {
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
	}
	return sess
}
