package employees

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/mnemosyne/internal/dateparse"
	"github.com/UnknownOlympus/mnemosyne/internal/lib/logger/sl"
	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
)

const (
	modeSingle = "single"
	modeBulk   = "bulk"
)

// Staff is the employee record service. It owns date conversion for incoming records and
// turns empty filtered lookups into repository.ErrEmployeeNotFound.
type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "employee"),
	)
}

// List returns every stored employee.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.List"
	log := s.initLogger(opn)

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	log.DebugContext(ctx, "employees listed", "count", len(employees))
	return employees, nil
}

// Get returns the employee with the given identifier.
func (s *Staff) Get(ctx context.Context, identifier int64) (models.Employee, error) {
	const opn = "Employee.Get"

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	return employee, nil
}

// Create converts the free-form dates of req and stores the resulting record.
// A date that no supported format accepts fails the whole request and nothing is stored.
func (s *Staff) Create(ctx context.Context, req models.CreateEmployeeRequest) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	employee, err := s.fromRequest(ctx, log, req)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	saved, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		log.ErrorContext(ctx, "failed to save employee", sl.Err(err))
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.metrics.EmployeesCreated.WithLabelValues(modeSingle).Inc()
	log.InfoContext(ctx, "employee created", "id", saved.ID)

	return saved, nil
}

// CreateBulk stores all employees in one transaction. Identifiers in the input are ignored.
func (s *Staff) CreateBulk(ctx context.Context, employees []models.Employee) ([]models.Employee, error) {
	const opn = "Employee.CreateBulk"
	log := s.initLogger(opn)

	if len(employees) == 0 {
		log.DebugContext(ctx, "empty batch, nothing to store")
		return []models.Employee{}, nil
	}

	batch := make([]models.Employee, len(employees))
	for index, employee := range employees {
		employee.ID = 0
		batch[index] = employee
	}

	saved, err := s.repo.SaveEmployees(ctx, batch)
	if err != nil {
		log.ErrorContext(ctx, "batch rejected, nothing stored", "size", len(batch), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	s.metrics.EmployeesCreated.WithLabelValues(modeBulk).Add(float64(len(saved)))
	log.InfoContext(ctx, "employees created", "count", len(saved))

	return saved, nil
}

// Update replaces every field of the employee with the given identifier.
// Fields left out of employee are cleared.
func (s *Staff) Update(ctx context.Context, identifier int64, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	employee.ID = identifier

	updated, err := s.repo.UpdateEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	log.InfoContext(ctx, "employee updated", "id", identifier)
	return updated, nil
}

// Delete removes the employee with the given identifier and returns the removed record.
func (s *Staff) Delete(ctx context.Context, identifier int64) (models.Employee, error) {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	removed, err := s.repo.DeleteEmployee(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.metrics.EmployeesDeleted.Inc()
	log.InfoContext(ctx, "employee deleted", "id", identifier)

	return removed, nil
}

func (s *Staff) ByDepartment(ctx context.Context, department string) ([]models.Employee, error) {
	return s.findAll(ctx, "Employee.ByDepartment", repository.ColumnDepartment, department)
}

func (s *Staff) ByPosition(ctx context.Context, position string) ([]models.Employee, error) {
	return s.findAll(ctx, "Employee.ByPosition", repository.ColumnPosition, position)
}

func (s *Staff) ByManager(ctx context.Context, manager string) ([]models.Employee, error) {
	return s.findAll(ctx, "Employee.ByManager", repository.ColumnManager, manager)
}

// ByDateOfEmployment parses raw with the date parser and lists employees hired on that day.
func (s *Staff) ByDateOfEmployment(ctx context.Context, raw string) ([]models.Employee, error) {
	const opn = "Employee.ByDateOfEmployment"
	log := s.initLogger(opn)

	day, err := s.parseDate(ctx, log, "dateOfEmployment", raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return s.findAll(ctx, opn, repository.ColumnDateOfEmployment, day)
}

// ByName returns the first employee, by identifier, whose name matches exactly.
func (s *Staff) ByName(ctx context.Context, name string) (models.Employee, error) {
	const opn = "Employee.ByName"

	employee, err := s.repo.FindEmployee(ctx, repository.ColumnName, name)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", opn, err)
	}

	return employee, nil
}

func (s *Staff) findAll(ctx context.Context, opn string, column repository.Column, value any) ([]models.Employee, error) {
	employees, err := s.repo.FindEmployees(ctx, column, value)
	if err != nil {
		s.initLogger(opn).ErrorContext(ctx, "lookup failed", "column", string(column), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	if len(employees) == 0 {
		return nil, fmt.Errorf("%s: %w", opn, repository.ErrEmployeeNotFound)
	}

	return employees, nil
}

func (s *Staff) fromRequest(
	ctx context.Context,
	log *slog.Logger,
	req models.CreateEmployeeRequest,
) (models.Employee, error) {
	employee := models.Employee{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Position:   req.Position,
		Department: req.Department,
		Manager:    req.Manager,
	}

	dates := []struct {
		field  string
		raw    *string
		target *models.Date
	}{
		{"dateOfBirth", req.DateOfBirth, &employee.DateOfBirth},
		{"dateOfEmployment", req.DateOfEmployment, &employee.DateOfEmployment},
		{"dateOfDismissal", req.DateOfDismissal, &employee.DateOfDismissal},
	}

	for _, date := range dates {
		result, err := dateparse.ParseOptional(date.raw)
		if err != nil {
			log.InfoContext(ctx, "rejected date", "field", date.field, "value", *date.raw)
			return models.Employee{}, fmt.Errorf("invalid %s: %w", date.field, err)
		}
		if !result.Date.Valid {
			continue
		}

		s.accepted(ctx, log, date.field, result)
		*date.target = result.Date
	}

	return employee, nil
}

func (s *Staff) parseDate(ctx context.Context, log *slog.Logger, field, raw string) (models.Date, error) {
	result, err := dateparse.Parse(raw)
	if err != nil {
		log.InfoContext(ctx, "rejected date", "field", field, "value", raw)
		return models.Date{}, fmt.Errorf("invalid %s: %w", field, err)
	}

	s.accepted(ctx, log, field, result)
	return result.Date, nil
}

func (s *Staff) accepted(ctx context.Context, log *slog.Logger, field string, result dateparse.Result) {
	s.metrics.DatesParsed.WithLabelValues(string(result.Stage)).Inc()
	if result.Stage != dateparse.StageDefault {
		log.DebugContext(ctx, "date accepted by fallback layout",
			"field", field, "stage", result.Stage, "pattern", result.Pattern)
	}
}
