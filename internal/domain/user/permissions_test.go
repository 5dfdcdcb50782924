//go:build unit

package user_test

import (
	"testing"

	"discount-hub/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name     string
		roles    []user.Role
		resource user.Resource
		action   user.Action
		want     bool
	}{
		{
			name:     "admin passes any check",
			roles:    []user.Role{user.RoleAdmin},
			resource: user.ResourceConfig,
			action:   user.ActionChange,
			want:     true,
		},
		{
			name:     "staff can block users",
			roles:    []user.Role{user.RoleStaff},
			resource: user.ResourceUsers,
			action:   user.ActionBlock,
			want:     true,
		},
		{
			name:     "staff cannot promote users",
			roles:    []user.Role{user.RoleStaff},
			resource: user.ResourceUsers,
			action:   user.ActionPromote,
			want:     false,
		},
		{
			name:     "staff can view config but not change it",
			roles:    []user.Role{user.RoleStaff},
			resource: user.ResourceConfig,
			action:   user.ActionView,
			want:     true,
		},
		{
			name:     "staff cannot change config",
			roles:    []user.Role{user.RoleStaff},
			resource: user.ResourceConfig,
			action:   user.ActionChange,
			want:     false,
		},
		{
			name:     "staff can change discounts",
			roles:    []user.Role{user.RoleStaff},
			resource: user.ResourceDiscount,
			action:   user.ActionChange,
			want:     true,
		},
		{
			name:     "brand can change discounts",
			roles:    []user.Role{user.RoleBrand},
			resource: user.ResourceDiscount,
			action:   user.ActionChange,
			want:     true,
		},
		{
			name:     "brand cannot block users",
			roles:    []user.Role{user.RoleBrand},
			resource: user.ResourceUsers,
			action:   user.ActionBlock,
			want:     false,
		},
		{
			name:     "user can view discounts",
			roles:    []user.Role{user.RoleUser},
			resource: user.ResourceDiscount,
			action:   user.ActionView,
			want:     true,
		},
		{
			name:     "user cannot change discounts",
			roles:    []user.Role{user.RoleUser},
			resource: user.ResourceDiscount,
			action:   user.ActionChange,
			want:     false,
		},
		{
			name:     "any matching role grants",
			roles:    []user.Role{user.RoleUser, user.RoleStaff},
			resource: user.ResourceUsers,
			action:   user.ActionBlock,
			want:     true,
		},
		{
			name:     "no roles",
			roles:    nil,
			resource: user.ResourceDiscount,
			action:   user.ActionView,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := user.HasPermission(tt.roles, tt.resource, tt.action)
			assert.Equal(t, tt.want, got)
		})
	}
}
