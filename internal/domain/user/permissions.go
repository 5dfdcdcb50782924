package user

// Resource and Action identify an entry in the static capability table.
// Permission checks are pure lookups; no runtime string configuration.
type Resource string

const (
	ResourceUsers    Resource = "users"
	ResourceBrands   Resource = "brands"
	ResourceConfig   Resource = "config"
	ResourceDiscount Resource = "discounts"
)

type Action string

const (
	ActionView    Action = "view"
	ActionChange  Action = "change"
	ActionBlock   Action = "block"
	ActionPromote Action = "promote"
)

// capabilities maps each role to the actions it may perform per resource.
// Admin is resolved before the table lookup and always passes.
var capabilities = map[Role]map[Resource][]Action{
	RoleStaff: {
		ResourceUsers:    {ActionView, ActionBlock},
		ResourceBrands:   {ActionView},
		ResourceConfig:   {ActionView},
		ResourceDiscount: {ActionView, ActionChange},
	},
	RoleBrand: {
		ResourceDiscount: {ActionView, ActionChange},
	},
	RoleUser: {
		ResourceDiscount: {ActionView},
	},
}

// HasPermission reports whether any of the given roles grants action on resource.
func HasPermission(roles []Role, resource Resource, action Action) bool {
	for _, role := range roles {
		if role == RoleAdmin {
			return true
		}
		for _, a := range capabilities[role][resource] {
			if a == action {
				return true
			}
		}
	}
	return false
}
