package domain

import "time"

// Tag is a topic label attached to questions.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Question is the core aggregate: a titled post with a rich-text description,
// an owning author, topic tags, and nested answers on reads.
type Question struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
	Tags        []Tag     `json:"tags"`
	Author      AuthorRef `json:"author"`
	Answers     []Answer  `json:"answers"`
}

// Answer is a reply to a question. VoteCount is the running tally mutated by
// the vote endpoint.
type Answer struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	QuestionID string    `json:"questionId"`
	AuthorID   string    `json:"authorId"`
	VoteCount  int       `json:"voteCount"`
	CreatedAt  time.Time `json:"createdAt"`
	Author     AuthorRef `json:"author"`
}
