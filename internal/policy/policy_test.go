package policy

import (
	"testing"

	"go-stockdesk/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := Default()

	for _, c := range []Capability{CustomerDelete, PurchaseWrite, ExpenseWrite, UserManage} {
		assert.True(t, p.Allows(model.RoleAdmin, c), "admin should carry %s", c)
		assert.False(t, p.Allows(model.RoleSalesPerson, c), "sales person should not carry %s", c)
	}
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	p := Default()
	assert.False(t, p.Allows(model.Role("Intern"), PurchaseWrite))
}

func TestRolePolicyIsExtensible(t *testing.T) {
	custom := RolePolicy{
		model.Role("Bookkeeper"): {ExpenseWrite},
	}
	assert.True(t, custom.Allows(model.Role("Bookkeeper"), ExpenseWrite))
	assert.False(t, custom.Allows(model.Role("Bookkeeper"), UserManage))
}
