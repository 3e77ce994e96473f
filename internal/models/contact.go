package models

import "time"

type Contact struct {
	ID             int64     `json:"id" db:"id"`
	PropertyDealID int64     `json:"property_deal_id" db:"property_deal_id"`
	Name           string    `json:"name" db:"name"`
	Role           string    `json:"role" db:"role"`
	Organization   *string   `json:"organization" db:"organization"`
	Email          *string   `json:"email" db:"email"`
	Phone          *string   `json:"phone" db:"phone"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type ContactPatch struct {
	Name         *string
	Role         *string
	Organization Nullable[string]
	Email        Nullable[string]
	Phone        Nullable[string]
	Notes        Nullable[string]
}

func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && !p.Organization.Set &&
		!p.Email.Set && !p.Phone.Set && !p.Notes.Set
}

func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Role != nil {
		c.Role = *p.Role
	}
	p.Organization.apply(&c.Organization)
	p.Email.apply(&c.Email)
	p.Phone.apply(&c.Phone)
	p.Notes.apply(&c.Notes)
}
