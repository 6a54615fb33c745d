package handler

// Request types for the answer routes.

type createAnswerRequest struct {
	Content    string `json:"content"    validate:"required"`
	QuestionID string `json:"questionId" validate:"required"`
	AuthorID   string `json:"authorId"   validate:"required"`
}

type updateAnswerRequest struct {
	AnswerID string `json:"answerId" validate:"required"`
	Content  string `json:"content"  validate:"required"`
}

type deleteAnswerRequest struct {
	AnswerID string `json:"answerId" validate:"required"`
}

type voteRequest struct {
	AnswerID string `json:"answerId"`
	Vote     int    `json:"vote"`
}
