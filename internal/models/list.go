package models

import "time"

const DefaultListColor = "#000000"

// List groups tasks of a single author.
type List struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(100);not null"`
	Color     string    `json:"color" gorm:"type:varchar(9);not null;default:'#000000'"`
	Favorite  bool      `json:"favorite" gorm:"not null;default:false"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	Tasks []Task `json:"-" gorm:"foreignKey:ListID;constraint:OnDelete:RESTRICT"`
}

// ListWithTasks is a list rendered with its tasks embedded.
type ListWithTasks struct {
	List
	Tasks []Task `json:"tasks"`
}

// WithTasks projects l for GET /api/lists/:id. Tasks is never null.
func (l *List) WithTasks() ListWithTasks {
	tasks := l.Tasks
	if tasks == nil {
		tasks = []Task{}
	}
	return ListWithTasks{List: *l, Tasks: tasks}
}

// NewList is the body of POST /api/lists.
type NewList struct {
	Title string  `json:"title" validate:"required,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// ListPatch is the body of PUT /api/lists/:id.
type ListPatch struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=100"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	Favorite *bool   `json:"favorite"`
}

func (p ListPatch) Empty() bool {
	return p.Title == nil && p.Color == nil && p.Favorite == nil
}

func (p ListPatch) Apply(l *List) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Color != nil {
		l.Color = *p.Color
	}
	if p.Favorite != nil {
		l.Favorite = *p.Favorite
	}
}

// ListIDParams binds the :id path segment of list routes.
type ListIDParams struct {
	ID uint `params:"id" validate:"required,gt=0"`
}
