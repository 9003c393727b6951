package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/leave"
)

const mimeTextPlain = "text/plain"

type resources struct {
	employees employee.Service
	leaves    leave.Service
}

func newResources(employees employee.Service, leaves leave.Service) *resources {
	return &resources{
		employees: employees,
		leaves:    leaves,
	}
}

func textContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeTextPlain,
			Text:     text,
		},
	}
}

func (r *resources) allEmployeesResource() mcp.Resource {
	return mcp.NewResource("employees://all", "Employee Directory",
		mcp.WithResourceDescription("All employees and their leave balances"),
		mcp.WithMIMEType(mimeTextPlain),
	)
}

func (r *resources) handleAllEmployees(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	employees, err := r.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return textContents(req.Params.URI, renderEmployeeDirectory(employees)), nil
}

func (r *resources) employeeTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate("employee://{employee_id}", "Employee Information",
		mcp.WithTemplateDescription("Specific employee information and leave balance"),
		mcp.WithTemplateMIMEType(mimeTextPlain),
	)
}

func (r *resources) handleEmployee(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	employeeID := strings.TrimPrefix(req.Params.URI, "employee://")

	emp, err := r.employees.Find(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return textContents(req.Params.URI, fmt.Sprintf("Employee %s not found", employeeID)), nil
		}
		return nil, fmt.Errorf("find employee %s: %w", employeeID, err)
	}

	return textContents(req.Params.URI, renderEmployeeInfo(emp)), nil
}

func (r *resources) allRequestsResource() mcp.Resource {
	return mcp.NewResource("leave-requests://all", "All Leave Requests",
		mcp.WithResourceDescription("Every leave request in the system"),
		mcp.WithMIMEType(mimeTextPlain),
	)
}

func (r *resources) handleAllRequests(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	requests, err := r.leaves.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	text := renderRequests("All Leave Requests:", requests, requestRenderOpts{
		withEmployee: true,
		withStatus:   true,
	})
	return textContents(req.Params.URI, text), nil
}

func (r *resources) employeeRequestsTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate("leave-requests://employee/{employee_id}", "Employee Leave Requests",
		mcp.WithTemplateDescription("Leave requests for a specific employee"),
		mcp.WithTemplateMIMEType(mimeTextPlain),
	)
}

func (r *resources) handleEmployeeRequests(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	employeeID := strings.TrimPrefix(req.Params.URI, "leave-requests://employee/")

	requests, err := r.leaves.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests for %s: %w", employeeID, err)
	}

	if len(requests) == 0 {
		text := fmt.Sprintf("No leave requests found for employee %s", employeeID)
		return textContents(req.Params.URI, text), nil
	}

	header := fmt.Sprintf("Leave Requests for Employee %s:", employeeID)
	text := renderRequests(header, requests, requestRenderOpts{withStatus: true})
	return textContents(req.Params.URI, text), nil
}

func (r *resources) statusRequestsTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate("leave-requests://status/{status}", "Leave Requests by Status",
		mcp.WithTemplateDescription("Leave requests filtered by status (pending, approved, denied)"),
		mcp.WithTemplateMIMEType(mimeTextPlain),
	)
}

func (r *resources) handleStatusRequests(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := strings.TrimPrefix(req.Params.URI, "leave-requests://status/")

	requests, err := r.leaves.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list %s leave requests: %w", status, err)
	}

	if len(requests) == 0 {
		text := fmt.Sprintf("No %s leave requests found", status)
		return textContents(req.Params.URI, text), nil
	}

	header := fmt.Sprintf("%s Leave Requests:", titleCase(status))
	text := renderRequests(header, requests, requestRenderOpts{
		withEmployee: true,
		withStatus:   true,
	})
	return textContents(req.Params.URI, text), nil
}
