package models

import "time"

// Deal is a property deal, the root of the ownership hierarchy.
type Deal struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	Status      string    `json:"status" db:"status"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// suggested by the UI; the store accepts any string
const (
	DealStatusActive  = "active"
	DealStatusPending = "pending"
	DealStatusClosed  = "closed"
	DealStatusOnHold  = "on hold"
)

type DealPatch struct {
	Name        *string
	Address     *string
	Status      *string
	Description *string
}

func (p DealPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Status == nil && p.Description == nil
}

func (p DealPatch) Apply(d *Deal) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
}
