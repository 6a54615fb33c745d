package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/api/metrics"
	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// QuestionHandler handles HTTP requests for question operations.
type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// Create handles POST /questions.
//
// @Summary      Post a new question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuestionRequest  true  "Question details"
// @Success      200   {object}  envelope.Response
// @Failure      400   {object}  envelope.Response
// @Failure      401   {object}  envelope.Response
// @Router       /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	question, err := h.service.Create(c.Request().Context(), ports.CreateQuestionInput{
		AuthorID:    subject,
		Title:       req.Title,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return err
	}

	metrics.QuestionsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, envelope.OK("Question created successfully", []*domain.Question{question}))
}

// List handles GET /questions. No authentication required. With a
// `questionId` query parameter it returns that single question with nested
// answers; without it, all questions newest first.
//
// @Summary      List questions, or fetch one by id
// @Tags         questions
// @Produce      json
// @Param        questionId  query     string  false  "Question id"
// @Success      200         {object}  envelope.Response
// @Failure      404         {object}  envelope.Response
// @Router       /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	if questionID := c.QueryParam("questionId"); questionID != "" {
		question, err := h.service.Get(c.Request().Context(), questionID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, envelope.OK("Question fetched successfully", []*domain.Question{question}))
	}

	questions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK("Questions fetched successfully", questions))
}

// Update handles PUT /questions. Author only.
//
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateQuestionRequest  true  "Partial update"
// @Success      200   {object}  envelope.Response
// @Failure      403   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /questions [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req updateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	question, err := h.service.Update(c.Request().Context(), ports.UpdateQuestionInput{
		SubjectID:   subject,
		QuestionID:  req.QuestionID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Question updated", []*domain.Question{question}))
}

// Delete handles DELETE /questions. Author only.
//
// @Summary      Delete a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteQuestionRequest  true  "Target question"
// @Success      200   {object}  envelope.Response
// @Failure      403   {object}  envelope.Response
// @Failure      404   {object}  envelope.Response
// @Router       /questions [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req deleteQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), subject, req.QuestionID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Question deleted", nil))
}
