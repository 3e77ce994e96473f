package dto

import (
	"dealTracker/internal/models"
	"dealTracker/internal/view"
	"time"
)

type DealResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromDeal maps nil to nil so "not found" serialises as null.
func FromDeal(d *models.Deal) *DealResponse {
	if d == nil {
		return nil
	}
	return &DealResponse{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		Status:      d.Status,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDealList(deals []*models.Deal) []*DealResponse {
	result := make([]*DealResponse, len(deals))
	for i, d := range deals {
		result[i] = FromDeal(d)
	}
	return result
}

type TaskResponse struct {
	ID             int64     `json:"id"`
	PropertyDealID int64     `json:"property_deal_id"`
	ContactID      *int64    `json:"contact_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DueDate        Date      `json:"due_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsOverdue      bool      `json:"is_overdue"`
}

func FromTask(t *models.Task, today time.Time) *TaskResponse {
	if t == nil {
		return nil
	}
	return &TaskResponse{
		ID:             t.ID,
		PropertyDealID: t.PropertyDealID,
		ContactID:      t.ContactID,
		Name:           t.Name,
		Description:    t.Description,
		DueDate:        Date(t.DueDate),
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		IsOverdue:      view.IsOverdue(t, today),
	}
}

func FromTaskList(tasks []*models.Task, today time.Time) []*TaskResponse {
	result := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t, today)
	}
	return result
}

type DocumentResponse struct {
	ID             int64     `json:"id"`
	PropertyDealID int64     `json:"property_deal_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	UploadDate     Date      `json:"upload_date"`
	FilePath       *string   `json:"file_path"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromDocument(d *models.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{
		ID:             d.ID,
		PropertyDealID: d.PropertyDealID,
		Name:           d.Name,
		Type:           d.Type,
		UploadDate:     Date(d.UploadDate),
		FilePath:       d.FilePath,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDocumentList(docs []*models.Document) []*DocumentResponse {
	result := make([]*DocumentResponse, len(docs))
	for i, d := range docs {
		result[i] = FromDocument(d)
	}
	return result
}

type CommunicationResponse struct {
	ID             int64     `json:"id"`
	PropertyDealID int64     `json:"property_deal_id"`
	Date           Date      `json:"date"`
	Type           string    `json:"type"`
	Subject        string    `json:"subject"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCommunication(c *models.Communication) *CommunicationResponse {
	if c == nil {
		return nil
	}
	return &CommunicationResponse{
		ID:             c.ID,
		PropertyDealID: c.PropertyDealID,
		Date:           Date(c.Date),
		Type:           c.Type,
		Subject:        c.Subject,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromCommunicationList(comms []*models.Communication) []*CommunicationResponse {
	result := make([]*CommunicationResponse, len(comms))
	for i, c := range comms {
		result[i] = FromCommunication(c)
	}
	return result
}

type ContactResponse struct {
	ID             int64     `json:"id"`
	PropertyDealID int64     `json:"property_deal_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Organization   *string   `json:"organization"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromContact(c *models.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:             c.ID,
		PropertyDealID: c.PropertyDealID,
		Name:           c.Name,
		Role:           c.Role,
		Organization:   c.Organization,
		Email:          c.Email,
		Phone:          c.Phone,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromContactList(contacts []*models.Contact) []*ContactResponse {
	result := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		result[i] = FromContact(c)
	}
	return result
}

type OverviewResponse struct {
	Deal           *DealResponse            `json:"deal"`
	Tasks          []*TaskResponse          `json:"tasks"`
	Documents      []*DocumentResponse      `json:"documents"`
	Communications []*CommunicationResponse `json:"communications"`
	Contacts       []*ContactResponse       `json:"contacts"`
	TaskSummary    view.TaskSummary         `json:"task_summary"`
	Today          Date                     `json:"today"`
}

func FromOverview(o *view.DealOverview) *OverviewResponse {
	if o == nil {
		return nil
	}
	return &OverviewResponse{
		Deal:           FromDeal(o.Deal),
		Tasks:          FromTaskList(o.Tasks, o.Today),
		Documents:      FromDocumentList(o.Documents),
		Communications: FromCommunicationList(o.Communications),
		Contacts:       FromContactList(o.Contacts),
		TaskSummary:    o.TaskSummary,
		Today:          Date(o.Today),
	}
}
