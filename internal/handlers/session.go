package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/service"
)

const (
	sessionCriteriaKey = "criteria"
	sessionTypeKey     = "type"
	sessionSearchKey   = "q"
)

// Workspace keeps each browser's sort criteria and filters in its session.
// State expires with the session and is never persisted.
type Workspace struct {
	sessions  *session.Store
	catalogue model.Catalogue
	opts      []service.CriteriaOption
}

// NewWorkspace creates a Workspace backed by an in-memory session store
func NewWorkspace(catalogue model.Catalogue, expiration time.Duration, opts ...service.CriteriaOption) *Workspace {
	return &Workspace{
		sessions: session.New(session.Config{
			Expiration:     expiration,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
		catalogue: catalogue,
		opts:      opts,
	}
}

// Catalogue returns the field catalogue the workspace sorts over
func (ws *Workspace) Catalogue() model.Catalogue {
	return ws.catalogue
}

// state is one request's view of the session
type state struct {
	sess     *session.Session
	criteria *service.Criteria
	filter   model.FilterState
}

func (ws *Workspace) load(c *fiber.Ctx) (*state, error) {
	sess, err := ws.sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var snapshot []model.SortCriterion
	if raw, ok := sess.Get(sessionCriteriaKey).(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			log.Printf("Discarding unreadable sort criteria in session %s: %v", sess.ID(), err)
			snapshot = nil
		}
	}

	filter := model.FilterState{Type: model.FilterAll}
	if t, ok := sess.Get(sessionTypeKey).(string); ok {
		filter.Type = model.ParseTypeFilter(t)
	}
	if q, ok := sess.Get(sessionSearchKey).(string); ok {
		filter.Search = q
	}

	return &state{
		sess:     sess,
		criteria: service.RestoreCriteria(ws.catalogue, snapshot, ws.opts...),
		filter:   filter,
	}, nil
}

// save writes the state back and releases the session; st.sess must not be used afterwards
func (ws *Workspace) save(st *state) error {
	raw, err := json.Marshal(st.criteria.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode sort criteria: %w", err)
	}

	st.sess.Set(sessionCriteriaKey, string(raw))
	st.sess.Set(sessionTypeKey, string(st.filter.Type))
	st.sess.Set(sessionSearchKey, st.filter.Search)

	if err := st.sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// applyFilterQuery updates the filter from the type and q query parameters when present
func applyFilterQuery(c *fiber.Ctx, filter *model.FilterState) {
	args := c.Context().QueryArgs()
	if args.Has("type") {
		filter.Type = model.ParseTypeFilter(c.Query("type"))
	}
	if args.Has("q") {
		filter.Search = c.Query("q")
	}
}
