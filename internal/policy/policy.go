// Package policy decides which capabilities a role carries. Routes
// declare the capability they need; adding a role means extending one
// table here, not touching every handler.
package policy

import "go-stockdesk/internal/model"

type Capability string

const (
	CustomerDelete Capability = "customer:delete"
	PurchaseWrite  Capability = "purchase:write"
	ExpenseWrite   Capability = "expense:write"
	UserManage     Capability = "user:manage"
)

type Policy interface {
	Allows(role model.Role, c Capability) bool
}

// RolePolicy is a static role -> capability set mapping.
type RolePolicy map[model.Role][]Capability

func (p RolePolicy) Allows(role model.Role, c Capability) bool {
	for _, have := range p[role] {
		if have == c {
			return true
		}
	}
	return false
}

// Default grants admins every capability; sales people get the read
// and order surfaces, which are gated by authentication alone.
func Default() Policy {
	return RolePolicy{
		model.RoleAdmin: {
			CustomerDelete,
			PurchaseWrite,
			ExpenseWrite,
			UserManage,
		},
		model.RoleSalesPerson: {},
	}
}
