package models

// AccessRole is the role a user holds in a sphere.
type AccessRole string

const (
	RoleAdmin  AccessRole = "admin"
	RoleMember AccessRole = "member"
	RoleGuest  AccessRole = "guest"
)

// Valid reports whether r is one of the known roles.
func (r AccessRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// SphereAccess is an access grant of a user to a sphere.
type SphereAccess struct {
	UserID        string     `json:"userId"`
	SphereID      string     `json:"sphereId"`
	Role          AccessRole `json:"role"`
	InvitePending bool       `json:"invitePending"`
	UpdatedAt     Timestamp  `json:"updatedAt"`
}

// DomainRestriction narrows a sync call to a subset of spheres and,
// optionally, a subset of stones. It is set by the server-side entry points
// (sphere or stone scoped sync) and never decoded from a client payload.
type DomainRestriction struct {
	Spheres []string `json:"-"`
	Stones  []string `json:"-"`
}

// HasStones reports whether the restriction targets individual stones.
func (d *DomainRestriction) HasStones() bool {
	return d != nil && len(d.Stones) > 0
}

// AllowsSphere reports whether sphereID passes the sphere restriction.
// A nil restriction or an empty sphere list allows every sphere.
func (d *DomainRestriction) AllowsSphere(sphereID string) bool {
	if d == nil || len(d.Spheres) == 0 {
		return true
	}
	for _, id := range d.Spheres {
		if id == sphereID {
			return true
		}
	}
	return false
}
