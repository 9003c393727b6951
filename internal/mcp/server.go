// Package mcp wires the leave management services into an MCP server.
// Tools mutate data, resources read it, prompts guide the client. No
// business logic lives here, only registration.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/leave"
)

// New builds the MCP server with every tool, resource and prompt
// registered.
func New(cfg *config.MCP, employees employee.Service, leaves leave.Service) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	empTools := newEmployeeTools(employees)
	s.AddTool(empTools.checkLeaveBalanceTool(), empTools.handleCheckLeaveBalance)
	s.AddTool(empTools.addEmployeeTool(), empTools.handleAddEmployee)

	lvTools := newLeaveTools(leaves)
	s.AddTool(lvTools.submitLeaveRequestTool(), lvTools.handleSubmitLeaveRequest)
	s.AddTool(lvTools.approveLeaveRequestTool(), lvTools.handleApproveLeaveRequest)
	s.AddTool(lvTools.denyLeaveRequestTool(), lvTools.handleDenyLeaveRequest)
	s.AddTool(lvTools.pendingApprovalsTool(), lvTools.handlePendingApprovals)
	s.AddTool(lvTools.databaseStatsTool(), lvTools.handleDatabaseStats)

	res := newResources(employees, leaves)
	s.AddResource(res.allEmployeesResource(), res.handleAllEmployees)
	s.AddResource(res.allRequestsResource(), res.handleAllRequests)
	s.AddResourceTemplate(res.employeeTemplate(), res.handleEmployee)
	s.AddResourceTemplate(res.employeeRequestsTemplate(), res.handleEmployeeRequests)
	s.AddResourceTemplate(res.statusRequestsTemplate(), res.handleStatusRequests)

	s.AddPrompt(requestLeavePrompt(), handleRequestLeavePrompt)

	return s
}

func serverInstructions() string {
	return `This server manages employee leave requests.

Use the resources to read data: employees://all lists every employee,
employee://{employee_id} shows one employee, leave-requests://all lists
every request, and leave-requests://employee/{employee_id} and
leave-requests://status/{status} filter them.

Use the tools to change data: submit_leave_request files a new request,
approve_leave_request and deny_leave_request decide a pending one,
add_employee registers a new employee (it warns about duplicate or
similar names unless force_create is set), check_leave_balance reads an
employee's remaining days, get_pending_approvals lists requests waiting
for a decision, and get_database_stats summarizes the database.

Leave types are annual, sick, personal and emergency. Approving an
annual or sick request deducts the days from the employee's balance.`
}
