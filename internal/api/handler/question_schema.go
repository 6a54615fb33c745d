package handler

// Request types for the question routes. Mutation payloads carry the target
// id in the body, matching the established client contract.

type createQuestionRequest struct {
	Title       string   `json:"title"       validate:"required,min=5"`
	Description string   `json:"description" validate:"required,min=10"`
	TagIDs      []string `json:"tagIds"`
}

type updateQuestionRequest struct {
	QuestionID  string  `json:"questionId" validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type deleteQuestionRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
}
