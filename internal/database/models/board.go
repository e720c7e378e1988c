package models

// Board is a unit of delivery owned by one team
type Board struct {
	BaseModel
	Name        string      `json:"name" validate:"required,max=64"`
	Description string      `json:"description" validate:"max=128"`
	TeamID      int         `json:"team_id" validate:"gt=0"`
	BoardStatus BoardStatus `json:"board_status"`
}

// IsClosed reports whether the board reached its terminal state
func (b *Board) IsClosed() bool {
	return b.BoardStatus == BoardStatusClosed
}

// Boards is the persisted boards collection in storage order
type Boards []Board

// FindByID returns the board with the given id, or nil
func (b Boards) FindByID(id int) *Board {
	for i := range b {
		if b[i].ID == id {
			return &b[i]
		}
	}
	return nil
}

// NameExistsInTeam reports whether the team already has a board with the given name
func (b Boards) NameExistsInTeam(teamID int, name string) bool {
	for i := range b {
		if b[i].TeamID == teamID && b[i].Name == name {
			return true
		}
	}
	return false
}

// NextID numbers boards by count+1
func (b Boards) NextID() int {
	return NextSequentialID(len(b))
}

// Open returns the boards that are not closed, optionally scoped to a team (teamID > 0)
func (b Boards) Open(teamID int) Boards {
	open := Boards{}
	for _, board := range b {
		if board.IsClosed() {
			continue
		}
		if teamID > 0 && board.TeamID != teamID {
			continue
		}
		open = append(open, board)
	}
	return open
}
