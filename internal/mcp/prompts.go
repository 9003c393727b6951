package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func requestLeavePrompt() mcp.Prompt {
	return mcp.NewPrompt("request_leave",
		mcp.WithPromptDescription("Guide the user through submitting a leave request"),
		mcp.WithArgument("employee_id",
			mcp.ArgumentDescription("Employee ID of the person requesting leave"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("leave_type",
			mcp.ArgumentDescription("Type of leave: annual, sick, personal or emergency"),
		),
	)
}

func handleRequestLeavePrompt(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	employeeID := req.Params.Arguments["employee_id"]
	leaveType := req.Params.Arguments["leave_type"]
	if leaveType == "" {
		leaveType = "annual"
	}

	text := fmt.Sprintf(`Help me submit a %s leave request for employee %s.

First check the employee's leave balance with check_leave_balance.
Then ask for the start date, end date, number of days and the reason,
and submit the request with submit_leave_request. Confirm the request
ID back to me once it is submitted.`, leaveType, employeeID)

	return mcp.NewGetPromptResult(
		"Submit a leave request",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
