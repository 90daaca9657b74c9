package services

import "megabot/domain/interfaces"

// StaticAdminPolicy authorizes a fixed set of Discord IDs captured at construction
type StaticAdminPolicy struct {
	admins map[int64]struct{}
}

// NewStaticAdminPolicy creates a policy that authorizes exactly the given IDs
func NewStaticAdminPolicy(adminIDs []int64) interfaces.Authorizer {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &StaticAdminPolicy{admins: admins}
}

// IsAuthorized reports whether the Discord ID is in the admin set
func (p *StaticAdminPolicy) IsAuthorized(discordID int64) bool {
	_, ok := p.admins[discordID]
	return ok
}
