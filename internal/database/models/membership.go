package models

// Membership links a user to a team. It is distinct from the team's admin.
type Membership struct {
	UserID int `json:"user_id" validate:"gt=0"`
	TeamID int `json:"team_id" validate:"gt=0"`
}

// Memberships is the persisted user/team link collection in storage order
type Memberships []Membership

// Exists reports whether the exact (team, user) pair is present
func (m Memberships) Exists(teamID, userID int) bool {
	for _, link := range m {
		if link.TeamID == teamID && link.UserID == userID {
			return true
		}
	}
	return false
}

// Add appends the pair unless it is already present and reports whether it was added
func (m *Memberships) Add(teamID, userID int) bool {
	if m.Exists(teamID, userID) {
		return false
	}
	*m = append(*m, Membership{UserID: userID, TeamID: teamID})
	return true
}

// Remove deletes the pair if present and reports whether it was removed
func (m *Memberships) Remove(teamID, userID int) bool {
	links := *m
	for i, link := range links {
		if link.TeamID == teamID && link.UserID == userID {
			*m = append(links[:i:i], links[i+1:]...)
			return true
		}
	}
	return false
}

// UserIDsOfTeam returns the linked user ids of a team in storage order
func (m Memberships) UserIDsOfTeam(teamID int) []int {
	ids := []int{}
	for _, link := range m {
		if link.TeamID == teamID {
			ids = append(ids, link.UserID)
		}
	}
	return ids
}

// TeamIDsOfUser returns the linked team ids of a user in storage order
func (m Memberships) TeamIDsOfUser(userID int) []int {
	ids := []int{}
	for _, link := range m {
		if link.UserID == userID {
			ids = append(ids, link.TeamID)
		}
	}
	return ids
}
