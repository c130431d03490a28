package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

const employeeColumns = `id, name, surname, email, phone, address,
		date_of_birth, date_of_employment, date_of_dismissal, position, department, manager`

const (
	listEmployeesQuery   = `SELECT ` + employeeColumns + ` FROM "Employee" ORDER BY id`
	getEmployeeByIDQuery = `SELECT ` + employeeColumns + ` FROM "Employee" WHERE id = $1`
	insertEmployeeQuery  = `
		INSERT INTO "Employee" (name, surname, email, phone, address,
			date_of_birth, date_of_employment, date_of_dismissal, position, department, manager)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	updateEmployeeQuery = `
		UPDATE "Employee"
		SET name = $2, surname = $3, email = $4, phone = $5, address = $6,
			date_of_birth = $7, date_of_employment = $8, date_of_dismissal = $9,
			position = $10, department = $11, manager = $12
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`
	deleteEmployeeQuery = `DELETE FROM "Employee" WHERE id = $1 RETURNING ` + employeeColumns
	findEmployeesQuery  = `SELECT ` + employeeColumns + ` FROM "Employee" WHERE %s = $1 ORDER BY id`
)

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (models.Employee, error) {
	var result models.Employee

	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Surname,
		&result.Email,
		&result.Phone,
		&result.Address,
		&result.DateOfBirth,
		&result.DateOfEmployment,
		&result.DateOfDismissal,
		&result.Position,
		&result.Department,
		&result.Manager,
	)

	return result, err
}

func collectEmployees(rows pgx.Rows) ([]models.Employee, error) {
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// insertArgs returns the writable fields in column order. The id is assigned by the store.
func insertArgs(employee models.Employee) []any {
	return []any{
		employee.Name,
		employee.Surname,
		employee.Email,
		employee.Phone,
		employee.Address,
		employee.DateOfBirth,
		employee.DateOfEmployment,
		employee.DateOfDismissal,
		employee.Position,
		employee.Department,
		employee.Manager,
	}
}

func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()
	return func() {
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
	}
}

// ListEmployees returns every stored employee ordered by id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees")()

	rows, err := r.db.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("get_employee_by_id")()

	result, err := scanEmployee(r.db.QueryRow(ctx, getEmployeeByIDQuery, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// FindEmployees returns every employee whose column equals value, ordered by id.
// An empty result is not an error.
func (r *Repository) FindEmployees(ctx context.Context, column Column, value any) ([]models.Employee, error) {
	if !column.Valid() {
		return nil, fmt.Errorf("failed to find employees: unknown column %q", column)
	}
	defer r.observe("find_employees_by_" + string(column))()

	rows, err := r.db.Query(ctx, fmt.Sprintf(findEmployeesQuery, column), value)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees by %s: %w", column, err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read employees by %s: %w", column, err)
	}

	return employees, nil
}

// FindEmployee returns the first employee (lowest id) whose column equals value.
func (r *Repository) FindEmployee(ctx context.Context, column Column, value any) (models.Employee, error) {
	if !column.Valid() {
		return models.Employee{}, fmt.Errorf("failed to find employee: unknown column %q", column)
	}
	defer r.observe("find_employee_by_" + string(column))()

	query := fmt.Sprintf(findEmployeesQuery, column) + " LIMIT 1"

	result, err := scanEmployee(r.db.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to find employee by %s: %w", column, err)
	}

	return result, nil
}

// SaveEmployee inserts a new employee and returns it with the identifier assigned by the store.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee")()

	if err := r.db.QueryRow(ctx, insertEmployeeQuery, insertArgs(employee)...).Scan(&employee.ID); err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return employee, nil
}

// SaveEmployees inserts all employees in one transaction. Either every record is stored or none is.
func (r *Repository) SaveEmployees(ctx context.Context, employees []models.Employee) ([]models.Employee, error) {
	defer r.observe("save_employees")()

	txn, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	saved := make([]models.Employee, 0, len(employees))
	for index, employee := range employees {
		if err = txn.QueryRow(ctx, insertEmployeeQuery, insertArgs(employee)...).Scan(&employee.ID); err != nil {
			err = fmt.Errorf("failed to save employee #%d: %w", index, err)
			if rbErr := txn.Rollback(ctx); rbErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
			}
			return nil, err
		}
		saved = append(saved, employee)
	}

	if err = txn.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// UpdateEmployee overwrites every field of the employee identified by employee.ID.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("update_employee")()

	args := append([]any{employee.ID}, insertArgs(employee)...)

	result, err := scanEmployee(r.db.QueryRow(ctx, updateEmployeeQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return result, nil
}

// DeleteEmployee removes an employee and returns the removed record.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("delete_employee")()

	result, err := scanEmployee(r.db.QueryRow(ctx, deleteEmployeeQuery, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to delete employee: %w", err)
	}

	return result, nil
}
