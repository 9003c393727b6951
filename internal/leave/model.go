package leave

// Leave types accepted on submission.
const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypePersonal  = "personal"
	TypeEmergency = "emergency"
)

// Request lifecycle.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// ValidTypes lists the accepted leave types in the order they are reported
// to clients.
var ValidTypes = []string{TypeAnnual, TypeSick, TypePersonal, TypeEmergency}

func IsValidType(leaveType string) bool {
	for _, t := range ValidTypes {
		if leaveType == t {
			return true
		}
	}
	return false
}

// Request mirrors a row in the leave_requests table. Dates are ISO-8601
// strings. ApprovedBy is nil until the request is approved or denied.
type Request struct {
	RequestID     string
	EmployeeID    string
	EmployeeName  string
	StartDate     string
	EndDate       string
	LeaveType     string
	Status        string
	Reason        string
	DaysRequested int
	SubmittedDate string
	ApprovedBy    *string
}

// Stats summarizes the tables for the database stats report.
type Stats struct {
	Employees        int
	TotalRequests    int
	PendingRequests  int
	ApprovedRequests int
	DeniedRequests   int
}
