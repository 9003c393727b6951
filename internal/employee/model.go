package employee

// Employee mirrors a row in the employees table. Leave balances are whole
// days.
type Employee struct {
	EmployeeID         string
	Name               string
	Department         string
	Manager            string
	AnnualLeaveBalance int
	SickLeaveBalance   int
}
