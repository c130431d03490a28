package repository

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// ErrEmployeeNotFound is returned when no record matches an id or filter.
var ErrEmployeeNotFound = errors.New("employee not found")

// Column names a filterable column of the "Employee" table.
type Column string

const (
	ColumnDepartment       Column = "department"
	ColumnPosition         Column = "position"
	ColumnManager          Column = "manager"
	ColumnDateOfEmployment Column = "date_of_employment"
	ColumnName             Column = "name"
)

// Valid reports whether c is one of the filterable columns.
func (c Column) Valid() bool {
	switch c {
	case ColumnDepartment, ColumnPosition, ColumnManager, ColumnDateOfEmployment, ColumnName:
		return true
	default:
		return false
	}
}

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	FindEmployees(ctx context.Context, column Column, value any) ([]models.Employee, error)
	FindEmployee(ctx context.Context, column Column, value any) (models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	SaveEmployees(ctx context.Context, employees []models.Employee) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) (models.Employee, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
