package validation_test

import (
	"testing"

	"github.com/ferdiebergado/leavekit/internal/platform/validation"
)

type submitInput struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	LeaveType  string `json:"leave_type" validate:"required,oneof=annual sick personal emergency"`
	Days       int    `json:"days_requested" validate:"required,gte=1"`
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name       string
		input      submitInput
		wantFields []string
	}{
		{
			name: "valid input",
			input: submitInput{
				EmployeeID: "EMP001",
				StartDate:  "2024-07-01",
				LeaveType:  "annual",
				Days:       3,
			},
		},
		{
			name: "missing employee id",
			input: submitInput{
				StartDate: "2024-07-01",
				LeaveType: "annual",
				Days:      3,
			},
			wantFields: []string{"employee_id"},
		},
		{
			name: "bad leave type and date",
			input: submitInput{
				EmployeeID: "EMP001",
				StartDate:  "July 1st",
				LeaveType:  "sabbatical",
				Days:       3,
			},
			wantFields: []string{"start_date", "leave_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := v.ValidateStruct(tt.input)

			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("v.ValidateStruct(%+v) = %v, want: nil", tt.input, errs)
				}
				return
			}

			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("errs is missing field %q: %v", field, errs)
				}
			}
		})
	}
}
