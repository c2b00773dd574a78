package employees

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/dto"
	"github.com/nomipay/nomi/internal/handlers/authz"
	"github.com/nomipay/nomi/internal/service/employeeservice"
	"github.com/nomipay/nomi/pkg/utils"
	"github.com/nomipay/nomi/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) error
}

type EmployeeHandler struct {
	employeeService Service
}

func New(employeeService Service) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// companyScope resolves which company the caller may operate on. HR users
// are pinned to their own company; admins may target any company and the
// payload or query wins.
func companyScope(r *http.Request, requested uuid.UUID) (uuid.UUID, bool) {
	profile := authz.FromContext(r.Context())
	if profile == nil {
		return uuid.Nil, false
	}
	if profile.Role == domain.RoleAdmin {
		return requested, requested != uuid.Nil
	}
	if !profile.CompanyID.Valid {
		return uuid.Nil, false
	}
	return profile.CompanyID.UUID, true
}

// CreateEmployee godoc
//
//	@Summary		Register an employee
//	@Description	Onboard an employee into the caller's company. The available balance starts at the company availability percentage of the salary.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EmployeeRequestDTO	true	"Employee payload"
//	@Success		201		{object}	dto.EmployeeResponseDTO	"Created employee"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Company scope missing"
//	@Failure		404		{object}	utils.Response			"Company not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/hr/employees [post]
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	requested, _ := uuid.Parse(req.CompanyID)
	companyID, ok := companyScope(r, requested)
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "no company scope")
		return
	}

	created, err := h.employeeService.Create(r.Context(), &domain.Employee{
		CompanyID:    companyID,
		EmployeeCode: req.EmployeeCode,
		Cedula:       req.Cedula,
		FullName:     req.FullName,
		Email:        req.Email,
		Salary:       req.Salary,
		BankName:     req.BankName,
		BankAccount:  req.BankAccount,
		HireDate:     req.HireDate,
	})
	if err != nil {
		if errors.Is(err, employeeservice.ErrCompanyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEmployeeDTO(created))
}

// GetEmployee godoc
//
//	@Summary		Get an employee
//	@Tags			Employees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Employee id"
//	@Success		200	{object}	dto.EmployeeResponseDTO	"Employee"
//	@Failure		400	{object}	utils.Response			"Invalid employee id"
//	@Failure		403	{object}	utils.Response			"Employee outside the caller's company"
//	@Failure		404	{object}	utils.Response			"Employee not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/hr/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, employeeservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !inScope(r, employee.CompanyID) {
		utils.RespondWithError(w, http.StatusForbidden, "employee outside company scope")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEmployeeDTO(employee))
}

// ListEmployees godoc
//
//	@Summary		List employees
//	@Description	List the employees of the caller's company. Admins pass company_id explicitly.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			company_id	query		string					false	"Company id (admin only)"
//	@Param			limit		query		int						false	"Page size"
//	@Param			offset		query		int						false	"Page offset"
//	@Success		200			{array}		dto.EmployeeResponseDTO	"Employees"
//	@Failure		403			{object}	utils.Response			"Company scope missing"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/hr/employees [get]
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	requested, _ := uuid.Parse(r.URL.Query().Get("company_id"))
	companyID, ok := companyScope(r, requested)
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "no company scope")
		return
	}
	limit, offset := utils.ParsePagination(r)

	employees, err := h.employeeService.ListByCompany(r.Context(), companyID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}

	response := make([]dto.EmployeeResponseDTO, len(employees))
	for i := range employees {
		response[i] = toEmployeeDTO(&employees[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateEmployee godoc
//
//	@Summary		Update an employee
//	@Description	Change contact and payroll fields. A salary change does not retroactively adjust the available balance.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Employee id"
//	@Param			request	body		dto.EmployeeUpdateRequestDTO	true	"Employee payload"
//	@Success		200		{object}	dto.EmployeeResponseDTO		"Updated employee"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		403		{object}	utils.Response				"Employee outside the caller's company"
//	@Failure		404		{object}	utils.Response				"Employee not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/hr/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req dto.EmployeeUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, employeeservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !inScope(r, current.CompanyID) {
		utils.RespondWithError(w, http.StatusForbidden, "employee outside company scope")
		return
	}

	updated, err := h.employeeService.Update(r.Context(), &domain.Employee{
		ID:           id,
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Salary:       req.Salary,
		BankName:     req.BankName,
		BankAccount:  req.BankAccount,
		HireDate:     req.HireDate,
	})
	if err != nil {
		if errors.Is(err, employeeservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEmployeeDTO(updated))
}

// SetEmployeeStatus godoc
//
//	@Summary		Change an employee status
//	@Description	Suspend or reactivate an employee. Suspension blocks new withdrawals immediately.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Employee id"
//	@Param			request	body		dto.EmployeeStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response				"Status changed"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		403		{object}	utils.Response				"Employee outside the caller's company"
//	@Failure		404		{object}	utils.Response				"Employee not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/hr/employees/{id}/status [patch]
func (h *EmployeeHandler) SetEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req dto.EmployeeStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, employeeservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !inScope(r, current.CompanyID) {
		utils.RespondWithError(w, http.StatusForbidden, "employee outside company scope")
		return
	}

	if err := h.employeeService.SetStatus(r.Context(), id, domain.EmployeeStatus(req.Status)); err != nil {
		if errors.Is(err, employeeservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "status updated"})
}

func inScope(r *http.Request, companyID uuid.UUID) bool {
	profile := authz.FromContext(r.Context())
	if profile == nil {
		return false
	}
	if profile.Role == domain.RoleAdmin {
		return true
	}
	return profile.CompanyID.Valid && profile.CompanyID.UUID == companyID
}

func toEmployeeDTO(e *domain.Employee) dto.EmployeeResponseDTO {
	return dto.EmployeeResponseDTO{
		ID:               e.ID.String(),
		CompanyID:        e.CompanyID.String(),
		EmployeeCode:     e.EmployeeCode,
		Cedula:           e.Cedula,
		FullName:         e.FullName,
		Email:            e.Email,
		Salary:           e.Salary,
		AvailableBalance: e.AvailableBalance,
		TotalWithdrawn:   e.TotalWithdrawn,
		BankName:         e.BankName,
		BankAccount:      e.BankAccount,
		Status:           string(e.Status),
		HireDate:         e.HireDate,
		CreatedAt:        e.CreatedAt,
	}
}
