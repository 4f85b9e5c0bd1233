package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IsEmpty(t *testing.T) {
	assert.True(t, Session{}.IsEmpty())
	assert.True(t, Session{User: User{ID: "u1"}}.IsEmpty())
	assert.False(t, Session{Token: "t", User: User{ID: "u1"}}.IsEmpty())
}

func TestAuthResponse_DecodesServerShape(t *testing.T) {
	body := `{"token":"jwt-abc","user":{"id":"u-1","name":"Ada","email":"ada@example.com"}}`

	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "jwt-abc", resp.Token)
	assert.Equal(t, User{ID: "u-1", Name: "Ada", Email: "ada@example.com"}, resp.User)
}
