package models

// Task is a unit of work on a board, assigned to a member of the board's team
type Task struct {
	BaseModel
	BoardID     int        `json:"board_id" validate:"gt=0"`
	Title       string     `json:"title" validate:"required,max=64"`
	Description string     `json:"description" validate:"max=128"`
	UserID      int        `json:"user_id" validate:"gt=0"`
	TaskStatus  TaskStatus `json:"task_status"`
}

// IsClosed reports whether the task is complete
func (t *Task) IsClosed() bool {
	return t.TaskStatus == TaskStatusClosed
}

// Tasks is the persisted tasks collection in storage order
type Tasks []Task

// FindByID returns the task with the given id, or nil
func (t Tasks) FindByID(id int) *Task {
	for i := range t {
		if t[i].ID == id {
			return &t[i]
		}
	}
	return nil
}

// TitleExistsInBoard reports whether the board already has a task with the given title
func (t Tasks) TitleExistsInBoard(boardID int, title string) bool {
	for i := range t {
		if t[i].BoardID == boardID && t[i].Title == title {
			return true
		}
	}
	return false
}

// NextID numbers tasks by count+1 across all boards
func (t Tasks) NextID() int {
	return NextSequentialID(len(t))
}

// OfBoard returns every task of a board in storage order
func (t Tasks) OfBoard(boardID int) Tasks {
	tasks := Tasks{}
	for _, task := range t {
		if task.BoardID == boardID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// OpenOfBoard returns the tasks of a board that are not closed
func (t Tasks) OpenOfBoard(boardID int) Tasks {
	tasks := Tasks{}
	for _, task := range t {
		if task.BoardID == boardID && !task.IsClosed() {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// CountNotClosed counts the tasks of a board that are not closed
func (t Tasks) CountNotClosed(boardID int) int {
	n := 0
	for i := range t {
		if t[i].BoardID == boardID && !t[i].IsClosed() {
			n++
		}
	}
	return n
}
