package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	user := &User{Username: "eljefe", Password: "Passw3rd!"}
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "Passw3rd!", user.Password)
	assert.True(t, user.CheckPassword("Passw3rd!"))
	assert.False(t, user.CheckPassword("Passw3rd"))
}
