package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ferdiebergado/leavekit/internal/leave"
)

type leaveTools struct {
	leaves leave.Service
}

func newLeaveTools(leaves leave.Service) *leaveTools {
	return &leaveTools{leaves: leaves}
}

func (t *leaveTools) submitLeaveRequestTool() mcp.Tool {
	return mcp.NewTool("submit_leave_request",
		mcp.WithDescription("Submit a new leave request"),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("First day of leave in YYYY-MM-DD format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Last day of leave in YYYY-MM-DD format"),
		),
		mcp.WithString("leave_type",
			mcp.Required(),
			mcp.Description("One of: annual, sick, personal, emergency"),
		),
		mcp.WithString("reason",
			mcp.Required(),
			mcp.Description("Reason for the leave"),
		),
		mcp.WithNumber("days_requested",
			mcp.Required(),
			mcp.Description("Number of leave days requested"),
		),
	)
}

func (t *leaveTools) handleSubmitLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startDate, err := req.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endDate, err := req.RequireString("end_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	leaveType, err := req.RequireString("leave_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reason, err := req.RequireString("reason")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days, err := req.RequireInt("days_requested")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := leave.SubmitParams{
		EmployeeID:    employeeID,
		StartDate:     startDate,
		EndDate:       endDate,
		LeaveType:     strings.ToLower(leaveType),
		Reason:        reason,
		DaysRequested: days,
	}
	submitted, err := t.leaves.Submit(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrEmployeeNotFound):
			return mcp.NewToolResultText(fmt.Sprintf("Error: Employee %s not found", employeeID)), nil
		case errors.Is(err, leave.ErrInvalidLeaveType):
			return mcp.NewToolResultText(fmt.Sprintf("Error: Invalid leave type. Must be one of: %s",
				strings.Join(leave.ValidTypes, ", "))), nil
		default:
			return nil, fmt.Errorf("submit leave request: %w", err)
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Leave request (%s) submitted successfully for %s",
		submitted.RequestID, submitted.EmployeeName)), nil
}

func (t *leaveTools) approveLeaveRequestTool() mcp.Tool {
	return mcp.NewTool("approve_leave_request",
		mcp.WithDescription("Approve a leave request"),
		mcp.WithString("request_id",
			mcp.Required(),
			mcp.Description("Leave request ID, e.g. REQ001"),
		),
		mcp.WithString("approver_name",
			mcp.Required(),
			mcp.Description("Name of the approver"),
		),
	)
}

func (t *leaveTools) handleApproveLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := req.RequireString("request_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	approverName, err := req.RequireString("approver_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.leaves.Approve(ctx, requestID, approverName); err != nil {
		if text, ok := decisionErrorText(requestID, err); ok {
			return mcp.NewToolResultText(text), nil
		}
		return nil, fmt.Errorf("approve leave request %s: %w", requestID, err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Leave request %s approved by %s", requestID, approverName)), nil
}

func (t *leaveTools) denyLeaveRequestTool() mcp.Tool {
	return mcp.NewTool("deny_leave_request",
		mcp.WithDescription("Deny a leave request"),
		mcp.WithString("request_id",
			mcp.Required(),
			mcp.Description("Leave request ID, e.g. REQ001"),
		),
		mcp.WithString("denied_by",
			mcp.Required(),
			mcp.Description("Name of the person denying the request"),
		),
	)
}

func (t *leaveTools) handleDenyLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := req.RequireString("request_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	deniedBy, err := req.RequireString("denied_by")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.leaves.Deny(ctx, requestID, deniedBy); err != nil {
		if text, ok := decisionErrorText(requestID, err); ok {
			return mcp.NewToolResultText(text), nil
		}
		return nil, fmt.Errorf("deny leave request %s: %w", requestID, err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Leave request %s denied by %s", requestID, deniedBy)), nil
}

// decisionErrorText maps the expected approve/deny failures to the text
// shown to the client. Unexpected errors are left for the caller.
func decisionErrorText(requestID string, err error) (string, bool) {
	if errors.Is(err, leave.ErrNotFound) {
		return fmt.Sprintf("Error: Leave request %s not found", requestID), true
	}

	var notPending *leave.NotPendingError
	if errors.As(err, &notPending) {
		return fmt.Sprintf("Error: Leave request %s is already %s", requestID, notPending.Status), true
	}

	return "", false
}

func (t *leaveTools) pendingApprovalsTool() mcp.Tool {
	return mcp.NewTool("get_pending_approvals",
		mcp.WithDescription("Get all pending leave requests that need approval"),
	)
}

func (t *leaveTools) handlePendingApprovals(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending, err := t.leaves.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending leave requests: %w", err)
	}

	if len(pending) == 0 {
		return mcp.NewToolResultText("No pending leave requests requiring approval"), nil
	}

	return mcp.NewToolResultText(renderPendingRequests(pending)), nil
}

func (t *leaveTools) databaseStatsTool() mcp.Tool {
	return mcp.NewTool("get_database_stats",
		mcp.WithDescription("Get database statistics"),
	)
}

func (t *leaveTools) handleDatabaseStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := t.leaves.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("database stats: %w", err)
	}

	return mcp.NewToolResultText(renderStats(stats)), nil
}
