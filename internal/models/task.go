package models

import "time"

type Task struct {
	ID             int64     `json:"id" db:"id"`
	PropertyDealID int64     `json:"property_deal_id" db:"property_deal_id"`
	ContactID      *int64    `json:"contact_id" db:"contact_id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description" db:"description"`
	DueDate        time.Time `json:"due_date" db:"due_date"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
	TaskStatusBlocked    = "Blocked"
)

type TaskPatch struct {
	Name        *string
	Description *string
	DueDate     *time.Time
	Status      *string
	ContactID   Nullable[int64]
}

func (p TaskPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.DueDate == nil &&
		p.Status == nil && !p.ContactID.Set
}

func (p TaskPatch) Apply(t *Task) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = DateOf(*p.DueDate)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	p.ContactID.apply(&t.ContactID)
}
