package models

import "time"

// Communication is a logged call, email or meeting. Date is the day it
// happened and is independent of CreatedAt.
type Communication struct {
	ID             int64     `json:"id" db:"id"`
	PropertyDealID int64     `json:"property_deal_id" db:"property_deal_id"`
	Date           time.Time `json:"date" db:"date"`
	Type           string    `json:"type" db:"type"`
	Subject        string    `json:"subject" db:"subject"`
	Notes          string    `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CommunicationPatch struct {
	Date    *time.Time
	Type    *string
	Subject *string
	Notes   *string
}

func (p CommunicationPatch) IsEmpty() bool {
	return p.Date == nil && p.Type == nil && p.Subject == nil && p.Notes == nil
}

func (p CommunicationPatch) Apply(c *Communication) {
	if p.Date != nil {
		c.Date = DateOf(*p.Date)
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
