package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/api/metrics"
	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// AnswerHandler handles HTTP requests for answer operations.
type AnswerHandler struct {
	service ports.AnswerService
}

func NewAnswerHandler(service ports.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

// Create handles POST /answers.
//
// @Summary      Post an answer to a question
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnswerRequest  true  "Answer details"
// @Success      200   {object}  envelope.Response
// @Failure      400   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /answers [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	if _, err := subjectID(c); err != nil {
		return err
	}

	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer, err := h.service.Create(c.Request().Context(), ports.CreateAnswerInput{
		Content:    req.Content,
		QuestionID: req.QuestionID,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		return err
	}

	metrics.AnswersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, envelope.OK("Answer added successfully", []*domain.Answer{answer}))
}

// List handles GET /answers?questionId=. Authenticated.
//
// @Summary      List a question's answers
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        questionId  query     string  true  "Parent question id"
// @Success      200         {object}  envelope.Response
// @Failure      400         {object}  envelope.Response
// @Failure      404         {object}  envelope.Response
// @Router       /answers [get]
func (h *AnswerHandler) List(c echo.Context) error {
	if _, err := subjectID(c); err != nil {
		return err
	}

	questionID := c.QueryParam("questionId")
	if questionID == "" {
		return domain.NewValidationError("questionId is required")
	}

	answers, err := h.service.ListByQuestion(c.Request().Context(), questionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Answers fetched successfully.", answers))
}

// Update handles PUT /answers. Author only.
//
// @Summary      Update an answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAnswerRequest  true  "New content"
// @Success      200   {object}  envelope.Response
// @Failure      403   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /answers [put]
func (h *AnswerHandler) Update(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req updateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer, err := h.service.Update(c.Request().Context(), subject, req.AnswerID, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Answer updated successfully", []*domain.Answer{answer}))
}

// Delete handles DELETE /answers. Author only.
//
// @Summary      Delete an answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteAnswerRequest  true  "Target answer"
// @Success      200   {object}  envelope.Response
// @Failure      403   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /answers [delete]
func (h *AnswerHandler) Delete(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req deleteAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), subject, req.AnswerID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Answer deleted successfully", nil))
}
