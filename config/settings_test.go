package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyDefaults(t *testing.T) {
	os.Unsetenv("AUTH_POLICY")
	os.Unsetenv("RATING_POLICY")
	os.Unsetenv("ADMIN_USER_ID")

	assert.Equal(t, "owner", AuthPolicyName())
	assert.Equal(t, "reject", RatingPolicyName())
	assert.Equal(t, uint(1), AdminUserID())
}

func TestPolicyOverrides(t *testing.T) {
	os.Setenv("AUTH_POLICY", "single_admin")
	os.Setenv("RATING_POLICY", "merge")
	os.Setenv("ADMIN_USER_ID", "42")

	assert.Equal(t, "single_admin", AuthPolicyName())
	assert.Equal(t, "merge", RatingPolicyName())
	assert.Equal(t, uint(42), AdminUserID())

	os.Unsetenv("AUTH_POLICY")
	os.Unsetenv("RATING_POLICY")
	os.Unsetenv("ADMIN_USER_ID")
}

func TestAdminUserID_Invalid(t *testing.T) {
	os.Setenv("ADMIN_USER_ID", "not-a-number")
	assert.Equal(t, uint(1), AdminUserID())
	os.Unsetenv("ADMIN_USER_ID")
}
