package mcp

import (
	"fmt"
	"strings"

	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/leave"
)

// The rendered text is what MCP clients show to users, so the layout is
// part of the server's contract. Entries in a listing are separated by a
// 40-character underscore rule.
var separator = strings.Repeat("_", 40) + "\n"

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func renderEmployeeDirectory(employees []employee.Employee) string {
	var sb strings.Builder
	sb.WriteString("Employee Directory:\n\n")
	for _, emp := range employees {
		fmt.Fprintf(&sb, "ID: %s\n", emp.EmployeeID)
		fmt.Fprintf(&sb, "Name: %s\n", emp.Name)
		fmt.Fprintf(&sb, "Department: %s\n", emp.Department)
		fmt.Fprintf(&sb, "Manager: %s\n", emp.Manager)
		fmt.Fprintf(&sb, "Annual Leave Balance: %d days\n", emp.AnnualLeaveBalance)
		fmt.Fprintf(&sb, "Sick Leave Balance: %d days\n", emp.SickLeaveBalance)
		sb.WriteString(separator)
	}
	return sb.String()
}

func renderEmployeeInfo(emp *employee.Employee) string {
	return fmt.Sprintf(`Employee Information:
ID: %s
Name: %s
Department: %s
Manager: %s
Annual Leave Balance: %d days
Sick Leave Balance: %d days
`, emp.EmployeeID, emp.Name, emp.Department, emp.Manager, emp.AnnualLeaveBalance, emp.SickLeaveBalance)
}

func renderLeaveBalance(emp *employee.Employee) string {
	return fmt.Sprintf("Leave Balance for %s (%s):\n"+
		"Annual Leave: %d days remaining\n"+
		"Sick Leave: %d days remaining",
		emp.Name, emp.EmployeeID, emp.AnnualLeaveBalance, emp.SickLeaveBalance)
}

// requestRenderOpts controls which lines appear in a request listing.
// The employee line is dropped when the listing is already scoped to one
// employee, the status line when the listing is scoped to one status.
type requestRenderOpts struct {
	withEmployee bool
	withStatus   bool
}

func renderRequests(header string, requests []leave.Request, opts requestRenderOpts) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	for _, req := range requests {
		fmt.Fprintf(&sb, "Request ID: %s\n", req.RequestID)
		if opts.withEmployee {
			fmt.Fprintf(&sb, "Employee: %s (%s)\n", req.EmployeeName, req.EmployeeID)
		}
		fmt.Fprintf(&sb, "Dates: %s to %s\n", req.StartDate, req.EndDate)
		fmt.Fprintf(&sb, "Type: %s\n", titleCase(req.LeaveType))
		fmt.Fprintf(&sb, "Days: %d\n", req.DaysRequested)
		if opts.withStatus {
			fmt.Fprintf(&sb, "Status: %s\n", titleCase(req.Status))
		}
		fmt.Fprintf(&sb, "Reason: %s\n", req.Reason)
		fmt.Fprintf(&sb, "Submitted: %s\n", req.SubmittedDate)
		if req.ApprovedBy != nil && *req.ApprovedBy != "" {
			fmt.Fprintf(&sb, "Approved by: %s\n", *req.ApprovedBy)
		}
		sb.WriteString(separator)
	}
	return sb.String()
}

func renderPendingRequests(requests []leave.Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pending Leave Requests (%d):\n\n", len(requests))
	for _, req := range requests {
		fmt.Fprintf(&sb, "Request ID: %s\n", req.RequestID)
		fmt.Fprintf(&sb, "Employee: %s (%s)\n", req.EmployeeName, req.EmployeeID)
		fmt.Fprintf(&sb, "Dates: %s to %s\n", req.StartDate, req.EndDate)
		fmt.Fprintf(&sb, "Type: %s\n", titleCase(req.LeaveType))
		fmt.Fprintf(&sb, "Days: %d\n", req.DaysRequested)
		fmt.Fprintf(&sb, "Reason: %s\n", req.Reason)
		fmt.Fprintf(&sb, "Submitted: %s\n", req.SubmittedDate)
		sb.WriteString(separator)
	}
	return sb.String()
}

func renderStats(stats *leave.Stats) string {
	return fmt.Sprintf("Database Statistics:\n"+
		"Employees: %d\n"+
		"Total Leave Requests: %d\n"+
		"Pending Requests: %d\n"+
		"Approved Requests: %d\n"+
		"Denied Requests: %d\n",
		stats.Employees, stats.TotalRequests, stats.PendingRequests,
		stats.ApprovedRequests, stats.DeniedRequests)
}

func renderDuplicateEmployee(name string, existing *employee.Employee) string {
	return fmt.Sprintf("Employee with exact name '%s' already exists:\n"+
		"ID: %s\n"+
		"Department: %s\n"+
		"Manager: %s\n"+
		"If you want to create a new employee anyway, call this function again with force_create=True",
		name, existing.EmployeeID, existing.Department, existing.Manager)
}

const maxSimilarShown = 3

func renderSimilarEmployees(name string, similar []employee.Match) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found employees with similar names to '%s':\n", name)
	for i, match := range similar {
		if i == maxSimilarShown {
			break
		}
		emp := match.Employee
		fmt.Fprintf(&sb, "ID: %s | Name: %s | Dept: %s\n", emp.EmployeeID, emp.Name, emp.Department)
	}
	sb.WriteString("\nDo you want to:\n")
	sb.WriteString("#1. Use an existing employee above, or\n")
	sb.WriteString("#2. Create new employee anyway by calling add_employee with force_create=True\n")
	sb.WriteString("#3. Cancel and choose a different name")
	return sb.String()
}

func renderCreatedEmployee(emp *employee.Employee) string {
	return fmt.Sprintf("New employee created successfully:\n"+
		"ID: %s\n"+
		"Name: %s\n"+
		"Department: %s\n"+
		"Manager: %s\n"+
		"Annual Leave Balance: %d days\n"+
		"Sick Leave Balance: %d days",
		emp.EmployeeID, emp.Name, emp.Department, emp.Manager,
		emp.AnnualLeaveBalance, emp.SickLeaveBalance)
}
