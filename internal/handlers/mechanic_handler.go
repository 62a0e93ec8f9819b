package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/cache"
	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// MechanicHandler is plain roster CRUD. No booking invariants live
// here; the only guard is the configurable delete policy.
type MechanicHandler struct {
	repo   domain.Repository
	cfg    *config.Config
	roster *cache.Roster
	audit  *audit.Dispatcher
}

func NewMechanicHandler(
	repo domain.Repository,
	cfg *config.Config,
	roster *cache.Roster,
	audit *audit.Dispatcher,
) *MechanicHandler {
	return &MechanicHandler{
		repo:   repo,
		cfg:    cfg,
		roster: roster,
		audit:  audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMechanicRequest struct {
	Name          string `json:"name"`
	MaxActiveCars int    `json:"max_active_cars"`
}

type UpdateMechanicRequest struct {
	Name          *string `json:"name"`
	MaxActiveCars *int    `json:"max_active_cars"`
}

// ======================================================
// LIST
// ======================================================

func (h *MechanicHandler) List(c *gin.Context) {
	mechs, err := h.repo.ListMechanics(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_mechanics", "Failed to list mechanics.")
		return
	}

	httpresp.List(c, mechs)
}

// ======================================================
// CREATE
// ======================================================

func (h *MechanicHandler) Create(c *gin.Context) {
	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "invalid_name", "Mechanic name is required.")
		return
	}
	if req.MaxActiveCars < 1 {
		httperr.BadRequest(c, "invalid_capacity", "Daily capacity must be at least 1.")
		return
	}

	mech := models.Mechanic{
		Name:          req.Name,
		MaxActiveCars: req.MaxActiveCars,
	}

	if err := h.repo.CreateMechanic(c.Request.Context(), &mech); err != nil {
		httperr.Internal(c, "failed_to_create_mechanic", "Failed to create mechanic.")
		return
	}

	h.roster.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		ActorID:  actorID(c),
		Action:   "mechanic_created",
		Entity:   "mechanic",
		EntityID: &mech.ID,
	})

	c.JSON(http.StatusCreated, mech)
}

// ======================================================
// UPDATE
// ======================================================

func (h *MechanicHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	mech, err := h.repo.GetMechanic(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_mechanic", "Failed to load mechanic.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Mechanic name is required.")
			return
		}
		mech.Name = *req.Name
	}
	if req.MaxActiveCars != nil {
		if *req.MaxActiveCars < 1 {
			httperr.BadRequest(c, "invalid_capacity", "Daily capacity must be at least 1.")
			return
		}
		mech.MaxActiveCars = *req.MaxActiveCars
	}

	if err := h.repo.SaveMechanic(c.Request.Context(), mech); err != nil {
		httperr.Internal(c, "failed_to_update_mechanic", "Failed to update mechanic.")
		return
	}

	h.roster.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		ActorID:  actorID(c),
		Action:   "mechanic_updated",
		Entity:   "mechanic",
		EntityID: &mech.ID,
	})

	c.JSON(http.StatusOK, mech)
}

// ======================================================
// DELETE
// ======================================================

func (h *MechanicHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if h.cfg.MechanicDeletePolicy == config.DeletePolicyRestrict {
		count, err := h.repo.CountByMechanic(c.Request.Context(), id)
		if err != nil {
			httperr.Internal(c, "failed_to_delete_mechanic", "Failed to delete mechanic.")
			return
		}
		if count > 0 {
			httperr.BadRequest(c, "mechanic_in_use",
				"Mechanic still has appointments assigned.")
			return
		}
	}

	if err := h.repo.DeleteMechanic(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_mechanic", "Failed to delete mechanic.")
		return
	}

	h.roster.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		ActorID:  actorID(c),
		Action:   "mechanic_deleted",
		Entity:   "mechanic",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
