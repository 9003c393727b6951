package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ferdiebergado/leavekit/internal/employee"
)

type employeeTools struct {
	employees employee.Service
}

func newEmployeeTools(employees employee.Service) *employeeTools {
	return &employeeTools{employees: employees}
}

func (t *employeeTools) checkLeaveBalanceTool() mcp.Tool {
	return mcp.NewTool("check_leave_balance",
		mcp.WithDescription("Check leave balance for an employee"),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
	)
}

func (t *employeeTools) handleCheckLeaveBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	emp, err := t.employees.Find(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Error: Employee %s not found", employeeID)), nil
		}
		return nil, fmt.Errorf("find employee %s: %w", employeeID, err)
	}

	return mcp.NewToolResultText(renderLeaveBalance(emp)), nil
}

func (t *employeeTools) addEmployeeTool() mcp.Tool {
	return mcp.NewTool("add_employee",
		mcp.WithDescription("Add a new employee to the system with duplicate checking"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Full name of the employee"),
		),
		mcp.WithString("department",
			mcp.Required(),
			mcp.Description("Department the employee belongs to"),
		),
		mcp.WithString("manager",
			mcp.Required(),
			mcp.Description("Name of the employee's manager"),
		),
		mcp.WithNumber("annual_leave_balance",
			mcp.Description("Starting annual leave balance in days"),
		),
		mcp.WithNumber("sick_leave_balance",
			mcp.Description("Starting sick leave balance in days"),
		),
		mcp.WithBoolean("force_create",
			mcp.Description("Create the employee even when a duplicate or similar name exists"),
		),
	)
}

func (t *employeeTools) handleAddEmployee(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	department, err := req.RequireString("department")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	manager, err := req.RequireString("manager")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := employee.CreateParams{
		Name:          name,
		Department:    department,
		Manager:       manager,
		AnnualBalance: req.GetInt("annual_leave_balance", 0),
		SickBalance:   req.GetInt("sick_leave_balance", 0),
		Force:         req.GetBool("force_create", false),
	}
	result, err := t.employees.Create(ctx, params)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error creating employee: %v", err)), nil
	}

	switch {
	case result.Duplicate != nil:
		return mcp.NewToolResultText(renderDuplicateEmployee(name, result.Duplicate)), nil
	case len(result.Similar) > 0:
		return mcp.NewToolResultText(renderSimilarEmployees(name, result.Similar)), nil
	default:
		return mcp.NewToolResultText(renderCreatedEmployee(result.Created)), nil
	}
}
