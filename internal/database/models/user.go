package models

// User represents a person that can administer teams and be assigned tasks
type User struct {
	BaseModel
	Name        string `json:"name" validate:"required,max=64"`
	DisplayName string `json:"display_name" validate:"max=128"`
	Description string `json:"description" validate:"max=256"`
}

// Users is the persisted users collection in storage order
type Users []User

// FindByID returns the user with the given id, or nil
func (u Users) FindByID(id int) *User {
	for i := range u {
		if u[i].ID == id {
			return &u[i]
		}
	}
	return nil
}

// NameExists reports whether any user already has the given name
func (u Users) NameExists(name string) bool {
	for i := range u {
		if u[i].Name == name {
			return true
		}
	}
	return false
}

// NextID numbers users by count+1
func (u Users) NextID() int {
	return NextSequentialID(len(u))
}

// Index maps user ids to their records
func (u Users) Index() map[int]*User {
	index := make(map[int]*User, len(u))
	for i := range u {
		index[u[i].ID] = &u[i]
	}
	return index
}
