package utils

import (
	"testing"

	"kanban-api/domain/dto"
)

func TestValidateStructFlattensFieldErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&dto.CreateTaskRequest{Status: "archived"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	details := GetValidationErrors(err)
	if details["title"] != "title is required" {
		t.Errorf("title message = %q", details["title"])
	}
	if details["status"] != "status must be one of: todo inProgress done" {
		t.Errorf("status message = %q", details["status"])
	}
}

func TestValidateStructAcceptsValidRequest(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&dto.CreateTaskRequest{
		Title:    "Write spec",
		Status:   "inProgress",
		Priority: "high",
		Labels:   []string{"bug", "documentation"},
	}); err != nil {
		t.Errorf("ValidateStruct: %v", err)
	}
}
