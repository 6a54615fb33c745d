package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/api/metrics"
	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// VoteHandler handles vote casting. Votes require authentication but no
// ownership: any authenticated user may vote on any answer, repeatedly.
type VoteHandler struct {
	service ports.AnswerService
}

func NewVoteHandler(service ports.AnswerService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Cast handles POST /votes.
//
// @Summary      Vote on an answer
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      voteRequest  true  "Target answer and direction"
// @Success      200   {object}  envelope.Response
// @Failure      400   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /votes [post]
func (h *VoteHandler) Cast(c echo.Context) error {
	if _, err := subjectID(c); err != nil {
		return err
	}

	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.AnswerID == "" || (req.Vote != 1 && req.Vote != -1) {
		return domain.NewValidationError("invalid vote data")
	}

	answer, err := h.service.Vote(c.Request().Context(), req.AnswerID, req.Vote)
	if err != nil {
		return err
	}

	direction := "up"
	if req.Vote < 0 {
		direction = "down"
	}
	metrics.VotesCastTotal.WithLabelValues(direction).Inc()

	return c.JSON(http.StatusOK, envelope.OK("Vote updated successfully.", []*domain.Answer{answer}))
}
