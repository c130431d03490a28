package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
)

// EmployeeService is the set of operations the HTTP API exposes.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, identifier int64) (models.Employee, error)
	Create(ctx context.Context, req models.CreateEmployeeRequest) (models.Employee, error)
	CreateBulk(ctx context.Context, employees []models.Employee) ([]models.Employee, error)
	Update(ctx context.Context, identifier int64, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, identifier int64) (models.Employee, error)
	ByDepartment(ctx context.Context, department string) ([]models.Employee, error)
	ByPosition(ctx context.Context, position string) ([]models.Employee, error)
	ByManager(ctx context.Context, manager string) ([]models.Employee, error)
	ByDateOfEmployment(ctx context.Context, raw string) ([]models.Employee, error)
	ByName(ctx context.Context, name string) (models.Employee, error)
}

type EmployeeHandler struct {
	service EmployeeService
	binder  *echo.DefaultBinder
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service, binder: &echo.DefaultBinder{}}
}

// Register mounts every employee route on the root of e.
func (h *EmployeeHandler) Register(e *echo.Echo) {
	e.GET("/employees", h.List)
	e.GET("/:id", h.Get)
	e.POST("/employee/add", h.Create)
	e.POST("/employee/add-bulk", h.CreateBulk)
	e.PUT("/update/:id", h.Update)
	e.DELETE("/employee/delete/:id", h.Delete)
	e.GET("/department/:department", h.ByDepartment)
	e.GET("/position/:position", h.ByPosition)
	e.GET("/manager/:manager", h.ByManager)
	e.GET("/dateOfEmployment/:date", h.ByDateOfEmployment)
	e.GET("/name/:name", h.ByName)
}

// List handles GET /employees
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /:id
func (h *EmployeeHandler) Get(c echo.Context) error {
	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), identifier)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employee)
}

// Create handles POST /employee/add
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req *models.CreateEmployeeRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if req == nil {
		return errEmptyBody
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), *req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employee)
}

// CreateBulk handles POST /employee/add-bulk
func (h *EmployeeHandler) CreateBulk(c echo.Context) error {
	var employees []models.Employee
	if err := h.bind(c, &employees); err != nil {
		return err
	}
	for index := range employees {
		if err := c.Validate(&employees[index]); err != nil {
			return err
		}
	}

	saved, err := h.service.CreateBulk(c.Request().Context(), employees)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saved)
}

// Update handles PUT /update/:id
func (h *EmployeeHandler) Update(c echo.Context) error {
	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	var employee *models.Employee
	if err = h.bind(c, &employee); err != nil {
		return err
	}
	if employee == nil {
		return errEmptyBody
	}
	if err = c.Validate(employee); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), identifier, *employee)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /employee/delete/:id
func (h *EmployeeHandler) Delete(c echo.Context) error {
	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	removed, err := h.service.Delete(c.Request().Context(), identifier)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, removed)
}

func (h *EmployeeHandler) ByDepartment(c echo.Context) error {
	return listResponse(c, h.service.ByDepartment, pathParam(c, "department"))
}

func (h *EmployeeHandler) ByPosition(c echo.Context) error {
	return listResponse(c, h.service.ByPosition, pathParam(c, "position"))
}

func (h *EmployeeHandler) ByManager(c echo.Context) error {
	return listResponse(c, h.service.ByManager, pathParam(c, "manager"))
}

func (h *EmployeeHandler) ByDateOfEmployment(c echo.Context) error {
	return listResponse(c, h.service.ByDateOfEmployment, pathParam(c, "date"))
}

// ByName handles GET /name/:name
func (h *EmployeeHandler) ByName(c echo.Context) error {
	employee, err := h.service.ByName(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) bind(c echo.Context, target any) error {
	err := h.binder.BindBody(c, target)
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("%w: %v", errInvalidBody, httpErr.Message)
	}
	return fmt.Errorf("%w: %v", errInvalidBody, err)
}

// pathParam returns a path parameter with percent-encoding removed. Echo routes on URL.RawPath
// when it is set, so only then do values such as "01%2F15%2F2020" arrive encoded.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// pathID reads the :id parameter. An identifier that is not a number cannot exist, so it reads as not found.
func pathID(c echo.Context) (int64, error) {
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q: %w", c.Param("id"), repository.ErrEmployeeNotFound)
	}
	return identifier, nil
}

func listResponse(
	c echo.Context,
	lookup func(context.Context, string) ([]models.Employee, error),
	value string,
) error {
	employees, err := lookup(c.Request().Context(), value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employees)
}
