package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleCustomer))
	assert.True(t, IsValidRole(RoleProvider))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("moderator"))
	assert.False(t, IsValidRole(""))
}
