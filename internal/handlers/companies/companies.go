package companies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/dto"
	"github.com/nomipay/nomi/internal/service/companyservice"
	"github.com/nomipay/nomi/pkg/utils"
	"github.com/nomipay/nomi/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, limit, offset int) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus) error
}

type CompanyHandler struct {
	companyService Service
}

func New(companyService Service) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany godoc
//
//	@Summary		Register a company
//	@Description	Onboard a new company with its credit limit, availability percentage and commission fee.
//	@Tags			Companies
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompanyRequestDTO	true	"Company payload"
//	@Success		201		{object}	dto.CompanyResponseDTO	"Created company"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Insufficient role"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/companies [post]
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req dto.CompanyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.companyService.Create(r.Context(), companyFromRequest(&req))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCompanyDTO(created))
}

// GetCompany godoc
//
//	@Summary		Get a company
//	@Tags			Companies
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Company id"
//	@Success		200	{object}	dto.CompanyResponseDTO	"Company"
//	@Failure		400	{object}	utils.Response			"Invalid company id"
//	@Failure		404	{object}	utils.Response			"Company not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/companies/{id} [get]
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	company, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, companyservice.ErrCompanyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCompanyDTO(company))
}

// ListCompanies godoc
//
//	@Summary		List companies
//	@Tags			Companies
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size"
//	@Param			offset	query		int						false	"Page offset"
//	@Success		200		{array}		dto.CompanyResponseDTO	"Companies"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/companies [get]
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.ParsePagination(r)

	companies, err := h.companyService.List(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch companies")
		return
	}

	response := make([]dto.CompanyResponseDTO, len(companies))
	for i := range companies {
		response[i] = toCompanyDTO(&companies[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateCompany godoc
//
//	@Summary		Update a company
//	@Tags			Companies
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Company id"
//	@Param			request	body		dto.CompanyRequestDTO	true	"Company payload"
//	@Success		200		{object}	dto.CompanyResponseDTO	"Updated company"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Company not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req dto.CompanyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	company := companyFromRequest(&req)
	company.ID = id
	updated, err := h.companyService.Update(r.Context(), company)
	if err != nil {
		if errors.Is(err, companyservice.ErrCompanyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCompanyDTO(updated))
}

// SetCompanyStatus godoc
//
//	@Summary		Change a company status
//	@Description	Activate or suspend a company. Suspension blocks every withdrawal for its employees.
//	@Tags			Companies
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Company id"
//	@Param			request	body		dto.CompanyStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response				"Status changed"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Company not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/companies/{id}/status [patch]
func (h *CompanyHandler) SetCompanyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req dto.CompanyStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.companyService.SetStatus(r.Context(), id, domain.CompanyStatus(req.Status)); err != nil {
		if errors.Is(err, companyservice.ErrCompanyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "status updated"})
}

func companyFromRequest(req *dto.CompanyRequestDTO) *domain.Company {
	return &domain.Company{
		Name:                       req.Name,
		RNC:                        req.RNC,
		Email:                      req.Email,
		Phone:                      req.Phone,
		Address:                    req.Address,
		CreditLimit:                req.CreditLimit,
		WithdrawalLimitPerEmployee: req.WithdrawalLimitPerEmployee,
		AvailabilityPercentage:     req.AvailabilityPercentage,
		CommissionFee:              req.CommissionFee,
		PaymentFrequency:           domain.PaymentFrequency(req.PaymentFrequency),
	}
}

func toCompanyDTO(c *domain.Company) dto.CompanyResponseDTO {
	return dto.CompanyResponseDTO{
		ID:                         c.ID.String(),
		Name:                       c.Name,
		RNC:                        c.RNC,
		Email:                      c.Email,
		Phone:                      c.Phone,
		Address:                    c.Address,
		CreditLimit:                c.CreditLimit,
		CreditUsed:                 c.CreditUsed,
		WithdrawalLimitPerEmployee: c.WithdrawalLimitPerEmployee,
		AvailabilityPercentage:     c.AvailabilityPercentage,
		CommissionFee:              c.CommissionFee,
		PaymentFrequency:           string(c.PaymentFrequency),
		Status:                     string(c.Status),
		CreatedAt:                  c.CreatedAt,
	}
}
