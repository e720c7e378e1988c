package models

// Team represents a group of users administered by one user
type Team struct {
	BaseModel
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=128"`
	Admin       int    `json:"admin" validate:"gt=0"`

	// Users is persisted for layout compatibility only; membership lives in the links collection
	Users []int `json:"users"`
}

// Teams is the persisted teams collection in storage order
type Teams []Team

// FindByID returns the team with the given id, or nil
func (t Teams) FindByID(id int) *Team {
	for i := range t {
		if t[i].ID == id {
			return &t[i]
		}
	}
	return nil
}

// NameTaken reports whether a team other than excludeID already uses name.
// Pass 0 as excludeID to check against every team.
func (t Teams) NameTaken(name string, excludeID int) bool {
	for i := range t {
		if t[i].ID != excludeID && t[i].Name == name {
			return true
		}
	}
	return false
}

// NextID numbers teams by max(id)+1, or 1 for an empty collection
func (t Teams) NextID() int {
	maxID := 0
	for i := range t {
		if t[i].ID > maxID {
			maxID = t[i].ID
		}
	}
	return maxID + 1
}

// Index maps team ids to their records
func (t Teams) Index() map[int]*Team {
	index := make(map[int]*Team, len(t))
	for i := range t {
		index[t[i].ID] = &t[i]
	}
	return index
}
