package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_PasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:        primitive.NewObjectID(),
		Email:     "test@example.com",
		Username:  "testuser",
		Password:  "$2a$10$hashedpassword",
		Name:      "Test User",
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hashedpassword")
	assert.Contains(t, string(data), "test@example.com")
}

func TestToken_Fields(t *testing.T) {
	userID := primitive.NewObjectID()
	token := Token{
		UserID:    userID,
		Token:     "refresh-token-value",
		Type:      "refresh",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "refresh", token.Type)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}
