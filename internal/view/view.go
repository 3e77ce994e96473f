// Package view computes the read-side values shown next to stored records:
// overdue flags, display order and dashboard counts. Nothing here touches
// storage and nothing it produces is persisted.
package view

import (
	"dealTracker/internal/models"
	"slices"
	"strings"
	"time"
)

const completedStatus = "completed"

// IsCompleted reports whether a task status means the task is done.
func IsCompleted(status string) bool {
	return strings.EqualFold(status, completedStatus)
}

// IsOverdue compares calendar days only, so a task due today is never overdue.
func IsOverdue(task *models.Task, today time.Time) bool {
	if task == nil || IsCompleted(task.Status) {
		return false
	}
	return models.DateOf(task.DueDate).Before(models.DateOf(today))
}

// SortTasks returns open tasks before completed ones, each group by due date.
func SortTasks(tasks []*models.Task) []*models.Task {
	res := slices.Clone(tasks)
	slices.SortStableFunc(res, func(a, b *models.Task) int {
		ac, bc := IsCompleted(a.Status), IsCompleted(b.Status)
		if ac != bc {
			if ac {
				return 1
			}
			return -1
		}
		return models.DateOf(a.DueDate).Compare(models.DateOf(b.DueDate))
	})
	return res
}

// SortDocuments puts the most recently uploaded first.
func SortDocuments(docs []*models.Document) []*models.Document {
	res := slices.Clone(docs)
	slices.SortStableFunc(res, func(a, b *models.Document) int {
		return b.UploadDate.Compare(a.UploadDate)
	})
	return res
}

// SortCommunications puts the most recent first.
func SortCommunications(comms []*models.Communication) []*models.Communication {
	res := slices.Clone(comms)
	slices.SortStableFunc(res, func(a, b *models.Communication) int {
		return b.Date.Compare(a.Date)
	})
	return res
}

type TaskSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Overdue   int `json:"overdue"`
}

func SummarizeTasks(tasks []*models.Task, today time.Time) TaskSummary {
	var s TaskSummary
	for _, t := range tasks {
		s.Total++
		if IsCompleted(t.Status) {
			s.Completed++
			continue
		}
		s.Active++
		if IsOverdue(t, today) {
			s.Overdue++
		}
	}
	return s
}

// OverdueTasks keeps input order.
func OverdueTasks(tasks []*models.Task, today time.Time) []*models.Task {
	res := []*models.Task{}
	for _, t := range tasks {
		if IsOverdue(t, today) {
			res = append(res, t)
		}
	}
	return res
}

type DealStats struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"by_status"`
	Active           int            `json:"active"`
	Closed           int            `json:"closed"`
	CreatedThisMonth int            `json:"created_this_month"`
}

// SummarizeDeals groups statuses case-insensitively. The month is taken in
// the location of now.
func SummarizeDeals(deals []*models.Deal, now time.Time) DealStats {
	stats := DealStats{ByStatus: map[string]int{}}
	year, month, _ := now.Date()

	for _, d := range deals {
		stats.Total++
		stats.ByStatus[strings.ToLower(d.Status)]++

		y, m, _ := d.CreatedAt.In(now.Location()).Date()
		if y == year && m == month {
			stats.CreatedThisMonth++
		}
	}
	stats.Active = stats.ByStatus[models.DealStatusActive]
	stats.Closed = stats.ByStatus[models.DealStatusClosed]
	return stats
}

// FilterDealsByStatus matches case-insensitively and keeps input order.
func FilterDealsByStatus(deals []*models.Deal, status string) []*models.Deal {
	res := []*models.Deal{}
	for _, d := range deals {
		if strings.EqualFold(d.Status, status) {
			res = append(res, d)
		}
	}
	return res
}

// DealOverview is everything the deal detail page shows.
type DealOverview struct {
	Deal           *models.Deal
	Tasks          []*models.Task
	Documents      []*models.Document
	Communications []*models.Communication
	Contacts       []*models.Contact
	TaskSummary    TaskSummary
	Today          time.Time
}

func Overview(
	deal *models.Deal,
	tasks []*models.Task,
	docs []*models.Document,
	comms []*models.Communication,
	contacts []*models.Contact,
	today time.Time,
) *DealOverview {
	return &DealOverview{
		Deal:           deal,
		Tasks:          SortTasks(tasks),
		Documents:      SortDocuments(docs),
		Communications: SortCommunications(comms),
		Contacts:       slices.Clone(contacts),
		TaskSummary:    SummarizeTasks(tasks, today),
		Today:          models.DateOf(today),
	}
}
