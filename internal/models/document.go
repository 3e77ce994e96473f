package models

import "time"

// Document only records where the file lives; FilePath is an opaque path or URL.
type Document struct {
	ID             int64     `json:"id" db:"id"`
	PropertyDealID int64     `json:"property_deal_id" db:"property_deal_id"`
	Name           string    `json:"name" db:"name"`
	Type           string    `json:"type" db:"type"`
	UploadDate     time.Time `json:"upload_date" db:"upload_date"`
	FilePath       *string   `json:"file_path" db:"file_path"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type DocumentPatch struct {
	Name       *string
	Type       *string
	UploadDate *time.Time
	FilePath   Nullable[string]
}

func (p DocumentPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.UploadDate == nil && !p.FilePath.Set
}

func (p DocumentPatch) Apply(d *Document) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.UploadDate != nil {
		d.UploadDate = DateOf(*p.UploadDate)
	}
	p.FilePath.apply(&d.FilePath)
}
