package rbac

// Roles a user can hold relative to a partnership request.
const (
	RoleCreator   = "creator"   // owns the target campaign/event
	RoleRequester = "requester" // sent the request
)

// Permission constants
const (
	PermApproveRequest = "approve_request"
	PermDenyRequest    = "deny_request"
	PermCancelRequest  = "cancel_request"
	PermEditDraft      = "edit_draft"
)

// RolePermissions defines what each side of a request can do.
var RolePermissions = map[string][]string{
	RoleCreator: {
		PermApproveRequest, PermDenyRequest,
	},
	RoleRequester: {
		PermCancelRequest, PermEditDraft,
		// Requester CANNOT: PermApproveRequest, PermDenyRequest
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
