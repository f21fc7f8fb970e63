package handlers

import (
	"net/http"

	"cleaning-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for the team roster
type TeamHandler struct {
	rosterService service.RosterServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(rosterService service.RosterServiceInterface) *TeamHandler {
	return &TeamHandler{
		rosterService: rosterService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List every team with its crew members, ordered by team ID
// @Tags teams
// @Produce json
// @Success 200 {object} service.RosterResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	roster, err := h.rosterService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// SetupRoster handles POST /teams/roster
// @Summary Set up the roster
// @Description Create the listed teams with their crew. Teams whose label already exists are skipped.
// @Tags teams
// @Accept json
// @Produce json
// @Param roster body service.RosterSetupRequest true "Teams and crew members"
// @Success 201 {object} service.RosterResponse "At least one team was created"
// @Success 200 {object} service.RosterResponse "Every team already existed"
// @Failure 400 {object} ErrorResponse "Invalid roster"
// @Failure 409 {object} ErrorResponse "Label taken by a concurrent setup"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/roster [post]
func (h *TeamHandler) SetupRoster(c *gin.Context) {
	var req service.RosterSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	roster, err := h.rosterService.Setup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if roster.Created > 0 {
		status = http.StatusCreated
	}
	c.JSON(status, roster)
}
