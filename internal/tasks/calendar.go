package tasks

import (
	"strings"

	"github.com/partnerlink/backend/internal/models"
)

// GroupByDueDate buckets tasks by their normalized due date. Group key is the
// YYYY-MM-DD string; membership is every task due that calendar day. Order
// within a group follows the input order.
func GroupByDueDate(tasks []models.Task) map[string][]models.Task {
	groups := make(map[string][]models.Task)
	for _, t := range tasks {
		groups[t.DueDate] = append(groups[t.DueDate], t)
	}
	return groups
}

// FilterMonth returns the tasks whose due date falls in the given month.
// month is a YYYY-MM string as displayed by the calendar.
func FilterMonth(tasks []models.Task, month string) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.DueDate, month+"-") {
			out = append(out, t)
		}
	}
	return out
}
