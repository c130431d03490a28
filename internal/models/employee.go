package models

// Employee represents an employee record stored in the "Employee" table.
// Text fields are optional and stay nil when the caller does not provide them.
type Employee struct {
	ID               int64   `json:"id"`
	Name             *string `json:"name"             validate:"omitempty,max=255"`
	Surname          *string `json:"surname"          validate:"omitempty,max=255"`
	Email            *string `json:"email"            validate:"omitempty,max=255"`
	Phone            *string `json:"phone"            validate:"omitempty,max=255"`
	Address          *string `json:"address"          validate:"omitempty,max=255"`
	DateOfBirth      Date    `json:"dateOfBirth"`
	DateOfEmployment Date    `json:"dateOfEmployment"`
	DateOfDismissal  Date    `json:"dateOfDismissal"`
	Position         *string `json:"position"         validate:"omitempty,max=255"`
	Department       *string `json:"department"       validate:"omitempty,max=255"`
	Manager          *string `json:"manager"          validate:"omitempty,max=255"`
}

// CreateEmployeeRequest is the body of the single create endpoint. Dates arrive as free-form
// text and are converted by the date parser before the record is assembled.
type CreateEmployeeRequest struct {
	Name             *string `json:"name"             validate:"omitempty,max=255"`
	Surname          *string `json:"surname"          validate:"omitempty,max=255"`
	Email            *string `json:"email"            validate:"omitempty,max=255"`
	Phone            *string `json:"phone"            validate:"omitempty,max=255"`
	Address          *string `json:"address"          validate:"omitempty,max=255"`
	DateOfBirth      *string `json:"dateOfBirth"      validate:"omitempty,max=64"`
	DateOfEmployment *string `json:"dateOfEmployment" validate:"omitempty,max=64"`
	DateOfDismissal  *string `json:"dateOfDismissal"  validate:"omitempty,max=64"`
	Position         *string `json:"position"         validate:"omitempty,max=255"`
	Department       *string `json:"department"       validate:"omitempty,max=255"`
	Manager          *string `json:"manager"          validate:"omitempty,max=255"`
}

// StringPtr returns a pointer to s. Handy for building records in code and tests.
func StringPtr(s string) *string {
	return &s
}
