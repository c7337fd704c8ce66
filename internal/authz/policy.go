// Package authz holds the single role-based decision table consulted
// before every gated mutation. Reads and event operations are open to any
// authenticated role and have no table entry.
package authz

import "github.com/edventure-park/community-api/internal/user"

// Action names a role-gated operation on a resource type.
type Action string

const (
	ActionCohortCreate     Action = "cohort:create"
	ActionCohortUpdate     Action = "cohort:update"
	ActionCohortDelete     Action = "cohort:delete"
	ActionCampusLeadCreate Action = "campus_lead:create"
	ActionCampusLeadDelete Action = "campus_lead:delete"
	ActionChannelCreate    Action = "channel:create"
	ActionStatsUpdate      Action = "stats:update"
)

var policy = map[Action]map[user.Role]bool{
	ActionCohortCreate:     {user.RoleTeam: true},
	ActionCohortUpdate:     {user.RoleTeam: true},
	ActionCohortDelete:     {user.RoleTeam: true},
	ActionCampusLeadCreate: {user.RoleTeam: true},
	ActionCampusLeadDelete: {user.RoleTeam: true},
	ActionChannelCreate:    {user.RoleTeam: true},
	ActionStatsUpdate:      {user.RoleTeam: true},
}

// Allowed reports whether role may perform action. Unknown actions are denied.
func Allowed(role user.Role, action Action) bool {
	return policy[action][role]
}

// CanSeeChannel reports whether role may see a channel of the given type
// when listing. Team-only channels are hidden from campus leads; this is a
// read-time filter, not a hard deny.
func CanSeeChannel(role user.Role, channelType string) bool {
	if role == user.RoleCampusLead && channelType == "team" {
		return false
	}
	return true
}
