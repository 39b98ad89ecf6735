package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMapSubmissionDocument(t *testing.T) {
	id := primitive.NewObjectID()
	createdAt := time.Date(2025, 11, 3, 12, 34, 56, 0, time.UTC)

	doc := SubmissionDocument{
		ID:        id,
		Name:      "Gaurav",
		Email:     "gaurav@example.com",
		Message:   "Hello, I love your website!",
		CreatedAt: createdAt,
	}

	submission := mapSubmissionDocument(doc)

	assert.Equal(t, id.Hex(), submission.ID)
	assert.Equal(t, "Gaurav", submission.Name)
	assert.Equal(t, "gaurav@example.com", submission.Email)
	assert.Equal(t, "Hello, I love your website!", submission.Message)
	assert.True(t, submission.CreatedAt.Equal(createdAt))
}
