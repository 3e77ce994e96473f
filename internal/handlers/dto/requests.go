package dto

import (
	"dealTracker/internal/models"
)

// Create requests use pointers so a missing key can be told apart from an
// empty string; every non-nullable field must be present.

type CreateDealRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (r CreateDealRequest) ToModel() (models.Deal, error) {
	switch {
	case r.Name == nil:
		return models.Deal{}, required("name")
	case r.Address == nil:
		return models.Deal{}, required("address")
	case r.Status == nil:
		return models.Deal{}, required("status")
	case r.Description == nil:
		return models.Deal{}, required("description")
	}
	return models.Deal{
		Name:        *r.Name,
		Address:     *r.Address,
		Status:      *r.Status,
		Description: *r.Description,
	}, nil
}

// Update requests decode every field as Nullable so that an explicit null on
// a non-nullable column is rejected instead of read as "leave unchanged".

type UpdateDealRequest struct {
	Name        models.Nullable[string] `json:"name"`
	Address     models.Nullable[string] `json:"address"`
	Status      models.Nullable[string] `json:"status"`
	Description models.Nullable[string] `json:"description"`
}

func (r UpdateDealRequest) ToPatch() (models.DealPatch, error) {
	var (
		p   models.DealPatch
		err error
	)
	if p.Name, err = notNull("name", r.Name); err != nil {
		return models.DealPatch{}, err
	}
	if p.Address, err = notNull("address", r.Address); err != nil {
		return models.DealPatch{}, err
	}
	if p.Status, err = notNull("status", r.Status); err != nil {
		return models.DealPatch{}, err
	}
	if p.Description, err = notNull("description", r.Description); err != nil {
		return models.DealPatch{}, err
	}
	return p, nil
}

type CreateTaskRequest struct {
	PropertyDealID *int64  `json:"property_deal_id"`
	ContactID      *int64  `json:"contact_id"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	DueDate        *Date   `json:"due_date"`
	Status         *string `json:"status"`
}

func (r CreateTaskRequest) ToModel() (models.Task, error) {
	switch {
	case r.PropertyDealID == nil:
		return models.Task{}, required("property_deal_id")
	case r.Name == nil:
		return models.Task{}, required("name")
	case r.Description == nil:
		return models.Task{}, required("description")
	case r.DueDate == nil:
		return models.Task{}, required("due_date")
	case r.Status == nil:
		return models.Task{}, required("status")
	}
	return models.Task{
		PropertyDealID: *r.PropertyDealID,
		ContactID:      r.ContactID,
		Name:           *r.Name,
		Description:    *r.Description,
		DueDate:        r.DueDate.Time(),
		Status:         *r.Status,
	}, nil
}

type UpdateTaskRequest struct {
	ContactID   models.Nullable[int64]  `json:"contact_id"`
	Name        models.Nullable[string] `json:"name"`
	Description models.Nullable[string] `json:"description"`
	DueDate     models.Nullable[Date]   `json:"due_date"`
	Status      models.Nullable[string] `json:"status"`
}

func (r UpdateTaskRequest) ToPatch() (models.TaskPatch, error) {
	p := models.TaskPatch{ContactID: r.ContactID}
	var err error
	if p.Name, err = notNull("name", r.Name); err != nil {
		return models.TaskPatch{}, err
	}
	if p.Description, err = notNull("description", r.Description); err != nil {
		return models.TaskPatch{}, err
	}
	if p.DueDate, err = notNullDate("due_date", r.DueDate); err != nil {
		return models.TaskPatch{}, err
	}
	if p.Status, err = notNull("status", r.Status); err != nil {
		return models.TaskPatch{}, err
	}
	return p, nil
}

// CreateDocumentRequest has no upload date; the server stamps it.
type CreateDocumentRequest struct {
	PropertyDealID *int64  `json:"property_deal_id"`
	Name           *string `json:"name"`
	Type           *string `json:"type"`
	FilePath       *string `json:"file_path"`
}

func (r CreateDocumentRequest) ToModel() (models.Document, error) {
	switch {
	case r.PropertyDealID == nil:
		return models.Document{}, required("property_deal_id")
	case r.Name == nil:
		return models.Document{}, required("name")
	case r.Type == nil:
		return models.Document{}, required("type")
	}
	return models.Document{
		PropertyDealID: *r.PropertyDealID,
		Name:           *r.Name,
		Type:           *r.Type,
		FilePath:       r.FilePath,
	}, nil
}

type UpdateDocumentRequest struct {
	Name       models.Nullable[string] `json:"name"`
	Type       models.Nullable[string] `json:"type"`
	UploadDate models.Nullable[Date]   `json:"upload_date"`
	FilePath   models.Nullable[string] `json:"file_path"`
}

func (r UpdateDocumentRequest) ToPatch() (models.DocumentPatch, error) {
	p := models.DocumentPatch{FilePath: r.FilePath}
	var err error
	if p.Name, err = notNull("name", r.Name); err != nil {
		return models.DocumentPatch{}, err
	}
	if p.Type, err = notNull("type", r.Type); err != nil {
		return models.DocumentPatch{}, err
	}
	if p.UploadDate, err = notNullDate("upload_date", r.UploadDate); err != nil {
		return models.DocumentPatch{}, err
	}
	return p, nil
}

type CreateCommunicationRequest struct {
	PropertyDealID *int64  `json:"property_deal_id"`
	Date           *Date   `json:"date"`
	Type           *string `json:"type"`
	Subject        *string `json:"subject"`
	Notes          *string `json:"notes"`
}

func (r CreateCommunicationRequest) ToModel() (models.Communication, error) {
	switch {
	case r.PropertyDealID == nil:
		return models.Communication{}, required("property_deal_id")
	case r.Date == nil:
		return models.Communication{}, required("date")
	case r.Type == nil:
		return models.Communication{}, required("type")
	case r.Subject == nil:
		return models.Communication{}, required("subject")
	case r.Notes == nil:
		return models.Communication{}, required("notes")
	}
	return models.Communication{
		PropertyDealID: *r.PropertyDealID,
		Date:           r.Date.Time(),
		Type:           *r.Type,
		Subject:        *r.Subject,
		Notes:          *r.Notes,
	}, nil
}

type UpdateCommunicationRequest struct {
	Date    models.Nullable[Date]   `json:"date"`
	Type    models.Nullable[string] `json:"type"`
	Subject models.Nullable[string] `json:"subject"`
	Notes   models.Nullable[string] `json:"notes"`
}

func (r UpdateCommunicationRequest) ToPatch() (models.CommunicationPatch, error) {
	var (
		p   models.CommunicationPatch
		err error
	)
	if p.Date, err = notNullDate("date", r.Date); err != nil {
		return models.CommunicationPatch{}, err
	}
	if p.Type, err = notNull("type", r.Type); err != nil {
		return models.CommunicationPatch{}, err
	}
	if p.Subject, err = notNull("subject", r.Subject); err != nil {
		return models.CommunicationPatch{}, err
	}
	if p.Notes, err = notNull("notes", r.Notes); err != nil {
		return models.CommunicationPatch{}, err
	}
	return p, nil
}

type CreateContactRequest struct {
	PropertyDealID *int64  `json:"property_deal_id"`
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Organization   *string `json:"organization"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Notes          *string `json:"notes"`
}

func (r CreateContactRequest) ToModel() (models.Contact, error) {
	switch {
	case r.PropertyDealID == nil:
		return models.Contact{}, required("property_deal_id")
	case r.Name == nil:
		return models.Contact{}, required("name")
	case r.Role == nil:
		return models.Contact{}, required("role")
	}
	return models.Contact{
		PropertyDealID: *r.PropertyDealID,
		Name:           *r.Name,
		Role:           *r.Role,
		Organization:   r.Organization,
		Email:          r.Email,
		Phone:          r.Phone,
		Notes:          r.Notes,
	}, nil
}

type UpdateContactRequest struct {
	Name         models.Nullable[string] `json:"name"`
	Role         models.Nullable[string] `json:"role"`
	Organization models.Nullable[string] `json:"organization"`
	Email        models.Nullable[string] `json:"email"`
	Phone        models.Nullable[string] `json:"phone"`
	Notes        models.Nullable[string] `json:"notes"`
}

func (r UpdateContactRequest) ToPatch() (models.ContactPatch, error) {
	p := models.ContactPatch{
		Organization: r.Organization,
		Email:        r.Email,
		Phone:        r.Phone,
		Notes:        r.Notes,
	}
	var err error
	if p.Name, err = notNull("name", r.Name); err != nil {
		return models.ContactPatch{}, err
	}
	if p.Role, err = notNull("role", r.Role); err != nil {
		return models.ContactPatch{}, err
	}
	return p, nil
}
