package models

import (
	"bytes"
	"encoding/json"
	"time"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Toggled flips between done and not done. IN_PROGRESS counts as not done.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusDone {
		return StatusTodo
	}
	return StatusDone
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Task is a unit of work owned by a user and optionally filed in one of
// that user's lists.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TaskName    string     `json:"taskName" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO'"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    Priority   `json:"priority" gorm:"type:varchar(10);not null;default:'LOW'"`
	AuthorID    uint       `json:"authorId" gorm:"not null;index"`
	ListID      *uint      `json:"listId" gorm:"index"`
	Archived    bool       `json:"archived" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTask is the body of POST /api/tasks.
type NewTask struct {
	TaskName    string      `json:"taskName" validate:"required,min=1,max=255"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Status      *TaskStatus `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *time.Time  `json:"dueDate"`
	Priority    *Priority   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	ListID      *uint       `json:"listId" validate:"omitempty,gt=0"`
	Archived    *bool       `json:"archived"`
}

// Task builds the row to insert, filling defaults for omitted fields.
func (n NewTask) Task(authorID uint) *Task {
	t := &Task{
		TaskName:    n.TaskName,
		Description: n.Description,
		Status:      StatusTodo,
		DueDate:     n.DueDate,
		Priority:    PriorityLow,
		AuthorID:    authorID,
		ListID:      n.ListID,
	}
	if n.Status != nil {
		t.Status = *n.Status
	}
	if n.Priority != nil {
		t.Priority = *n.Priority
	}
	if n.Archived != nil {
		t.Archived = *n.Archived
	}
	return t
}

// OptionalID is a JSON field that distinguishes an absent key from an
// explicit null or zero.
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Disconnects reports whether the key was supplied with a falsy value.
func (o OptionalID) Disconnects() bool {
	return o.Set && (o.Value == nil || *o.Value == 0)
}

// Target returns the list id to connect to, if any.
func (o OptionalID) Target() (uint, bool) {
	if !o.Set || o.Value == nil || *o.Value == 0 {
		return 0, false
	}
	return *o.Value, true
}

// Nullable is a JSON field that can be cleared: an absent key leaves Set
// false, an explicit null sets it with a nil Value.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// TaskUpdate is the body of PATCH /api/tasks.
type TaskUpdate struct {
	ID          uint        `json:"id" validate:"required,gt=0"`
	TaskName    *string             `json:"taskName" validate:"omitempty,min=1,max=255"`
	Description Nullable[string]    `json:"description" validate:"omitempty,max=2000"`
	Status      *TaskStatus         `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     Nullable[time.Time] `json:"dueDate"`
	Priority    *Priority           `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	ListID      OptionalID          `json:"listId"`
	Archived    *bool               `json:"archived"`
}

func (u TaskUpdate) Empty() bool {
	return u.TaskName == nil && !u.Description.Set && u.Status == nil &&
		!u.DueDate.Set && u.Priority == nil && !u.ListID.Set && u.Archived == nil
}

// Apply merges supplied fields into t. A null description, dueDate or listId
// clears it. Ownership of the target list is the caller's concern.
func (u TaskUpdate) Apply(t *Task) {
	if u.TaskName != nil {
		t.TaskName = *u.TaskName
	}
	if u.Description.Set {
		t.Description = u.Description.Value
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.DueDate.Set {
		t.DueDate = u.DueDate.Value
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Archived != nil {
		t.Archived = *u.Archived
	}
	if u.ListID.Disconnects() {
		t.ListID = nil
	} else if id, ok := u.ListID.Target(); ok {
		t.ListID = &id
	}
}

// TaskFilter holds the optional equality filters of GET /api/tasks.
type TaskFilter struct {
	Status   *TaskStatus `query:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority *Priority   `query:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	ListID   *uint       `query:"listId" validate:"omitempty,gt=0"`
	Archived *bool       `query:"archived"`
}

// TaskIDParams binds the :taskId path segment.
type TaskIDParams struct {
	TaskID uint `params:"taskId" validate:"required,gt=0"`
}
