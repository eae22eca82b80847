package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRole is returned by ParseRole for anything outside the role set
var ErrInvalidRole = errors.New("invalid role")

// Role is the closed set of platform roles
type Role string

const (
	RoleGovernment   Role = "government"
	RoleIndustry     Role = "industry"
	RoleUrbanPlanner Role = "urban-planner"
	RoleCitizen      Role = "citizen"
	RoleRecycler     Role = "recycler"
)

// Roles returns every role in login-screen order
func Roles() []Role {
	return []Role{RoleGovernment, RoleIndustry, RoleUrbanPlanner, RoleCitizen, RoleRecycler}
}

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Label is the human readable role name
func (r Role) Label() string {
	switch r {
	case RoleGovernment:
		return "Government Authority"
	case RoleIndustry:
		return "Industry Manager"
	case RoleUrbanPlanner:
		return "Urban Planner"
	case RoleCitizen:
		return "Citizen"
	case RoleRecycler:
		return "Recycler"
	}
	return string(r)
}

// Capability gates access to a feature area
type Capability string

const (
	CapViewDashboard    Capability = "view_dashboard"
	CapViewMonitoring   Capability = "view_monitoring"
	CapViewIntelligence Capability = "view_intelligence"
	CapRunSimulation    Capability = "run_simulation"
	CapUseMarketplace   Capability = "use_marketplace"
	CapViewReports      Capability = "view_reports"
	CapExportData       Capability = "export_data"
	CapManageSettings   Capability = "manage_settings"
)

var roleCapabilities = map[Role][]Capability{
	RoleGovernment: {
		CapViewDashboard, CapViewMonitoring, CapViewIntelligence, CapRunSimulation,
		CapUseMarketplace, CapViewReports, CapExportData, CapManageSettings,
	},
	RoleIndustry: {
		CapViewDashboard, CapViewMonitoring, CapViewIntelligence, CapRunSimulation,
		CapUseMarketplace, CapViewReports, CapExportData, CapManageSettings,
	},
	RoleUrbanPlanner: {
		CapViewDashboard, CapViewMonitoring, CapViewIntelligence, CapRunSimulation,
		CapViewReports, CapExportData, CapManageSettings,
	},
	RoleCitizen: {
		CapViewDashboard, CapViewMonitoring, CapManageSettings,
	},
	RoleRecycler: {
		CapViewDashboard, CapViewMonitoring, CapUseMarketplace, CapManageSettings,
	},
}

// Can reports whether a role holds a capability
func Can(role Role, capability Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Capabilities returns a copy of the role's capability list
func (r Role) Capabilities() []Capability {
	caps := roleCapabilities[r]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// User is the logged-in profile
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}
