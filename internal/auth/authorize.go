package auth

import "clubsite/internal/model"

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether user may act with the required role. Admins
// satisfy every role requirement. It is a pure predicate so route code can
// inspect the decision instead of being short-circuited by middleware.
func Authorize(user *model.User, required model.Role) Decision {
	if user == nil {
		return Decision{Reason: "no authenticated user"}
	}
	if user.Role == model.RoleAdmin {
		return Decision{Allowed: true}
	}
	if user.Role == required {
		return Decision{Allowed: true}
	}
	return Decision{Reason: "insufficient role"}
}
