package tasks

import (
	"testing"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
)

func TestGroupByDueDate(t *testing.T) {
	tasks := []models.Task{
		{ID: uuid.New(), Title: "a", DueDate: "2024-08-01"},
		{ID: uuid.New(), Title: "b", DueDate: "2024-08-01"},
		{ID: uuid.New(), Title: "c", DueDate: "2024-08-07"},
	}

	groups := GroupByDueDate(tasks)
	if len(groups) != 2 {
		t.Fatalf("GroupByDueDate() = %d groups, want 2", len(groups))
	}
	if len(groups["2024-08-01"]) != 2 {
		t.Errorf("2024-08-01 has %d tasks, want 2", len(groups["2024-08-01"]))
	}
	if len(groups["2024-08-07"]) != 1 {
		t.Errorf("2024-08-07 has %d tasks, want 1", len(groups["2024-08-07"]))
	}
	if groups["2024-08-01"][0].Title != "a" || groups["2024-08-01"][1].Title != "b" {
		t.Errorf("group order does not follow input order")
	}
}

func TestFilterMonth(t *testing.T) {
	tasks := []models.Task{
		{ID: uuid.New(), DueDate: "2024-08-01"},
		{ID: uuid.New(), DueDate: "2024-08-31"},
		{ID: uuid.New(), DueDate: "2024-09-01"},
		{ID: uuid.New(), DueDate: "2023-08-15"},
	}

	got := FilterMonth(tasks, "2024-08")
	if len(got) != 2 {
		t.Fatalf("FilterMonth() = %d tasks, want 2", len(got))
	}
	for _, task := range got {
		if task.DueDate[:7] != "2024-08" {
			t.Errorf("task %s leaked into month filter", task.DueDate)
		}
	}
}
