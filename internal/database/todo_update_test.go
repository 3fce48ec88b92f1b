package database

import (
	"reflect"
	"testing"
	"time"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBuildTodoUpdate_Empty(t *testing.T) {
	set, args := buildTodoUpdate(models.TodoUpdate{})
	if len(set) != 0 || len(args) != 0 {
		t.Fatalf("expected empty update, got set=%v args=%v", set, args)
	}
}

func TestBuildTodoUpdate_SingleField(t *testing.T) {
	set, args := buildTodoUpdate(models.TodoUpdate{Priority: strPtr("high")})
	wantSet := []string{"priority = $1", "updated_at = NOW()"}
	if !reflect.DeepEqual(set, wantSet) {
		t.Fatalf("expected %v, got %v", wantSet, set)
	}
	if len(args) != 1 || args[0] != "high" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildTodoUpdate_AllFields(t *testing.T) {
	due := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
	set, args := buildTodoUpdate(models.TodoUpdate{
		Title:       strPtr("t"),
		Description: strPtr("d"),
		Status:      strPtr("completed"),
		Priority:    strPtr("low"),
		DueDate:     &due,
	})

	wantSet := []string{
		"title = $1",
		"description = $2",
		"status = $3",
		"priority = $4",
		"due_date = $5",
		"updated_at = NOW()",
	}
	if !reflect.DeepEqual(set, wantSet) {
		t.Fatalf("expected %v, got %v", wantSet, set)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
	if args[4] != due {
		t.Fatalf("expected due date arg, got %v", args[4])
	}
}
