package transactions

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
	"github.com/nomipay/nomi/internal/service/withdrawalservice"
	"github.com/nomipay/nomi/pkg/utils"
	"github.com/nomipay/nomi/pkg/validate"
)

type Service interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, note string) error
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListCompanyTransactions godoc
//
//	@Summary		List company withdrawals
//	@Description	List every withdrawal of the caller's company, newest first. Admins pass company_id explicitly.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			company_id	query		string						false	"Company id (admin only)"
//	@Param			limit		query		int							false	"Page size"
//	@Param			offset		query		int							false	"Page offset"
//	@Success		200			{array}		dto.TransactionResponseDTO	"Transactions"
//	@Failure		403			{object}	utils.Response				"Company scope missing"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/hr/transactions [get]
func (h *TransactionHandler) ListCompanyTransactions(w http.ResponseWriter, r *http.Request) {
	profile := authz.FromContext(r.Context())
	if profile == nil {
		utils.RespondWithError(w, http.StatusForbidden, "no company scope")
		return
	}

	companyID := uuid.Nil
	if profile.Role == domain.RoleAdmin {
		companyID, _ = uuid.Parse(r.URL.Query().Get("company_id"))
	} else if profile.CompanyID.Valid {
		companyID = profile.CompanyID.UUID
	}
	if companyID == uuid.Nil {
		utils.RespondWithError(w, http.StatusForbidden, "no company scope")
		return
	}
	limit, offset := utils.ParsePagination(r)

	transactions, err := h.transactionService.ListByCompany(r.Context(), companyID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, transaction := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:          transaction.ID.String(),
			EmployeeID:  transaction.EmployeeID.String(),
			Amount:      transaction.Amount,
			Commission:  transaction.Commission,
			NetAmount:   transaction.NetAmount,
			Status:      string(transaction.Status),
			BankName:    transaction.BankName,
			BankAccount: transaction.BankAccount,
			Notes:       transaction.Notes,
			ProcessedAt: transaction.ProcessedAt,
			CreatedAt:   transaction.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Settle a withdrawal
//	@Description	Move a withdrawal to approved, completed or rejected. Rejection restores the employee balance and releases company credit.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Transaction id"
//	@Param			request	body		dto.TransactionStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response					"Status changed"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		404		{object}	utils.Response					"Transaction not found"
//	@Failure		409		{object}	utils.Response					"Transition not allowed from the current status"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/transactions/{id}/status [patch]
func (h *TransactionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req dto.TransactionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch domain.TransactionStatus(req.Status) {
	case domain.TransactionApproved:
		err = h.transactionService.Approve(r.Context(), id)
	case domain.TransactionCompleted:
		err = h.transactionService.Complete(r.Context(), id)
	case domain.TransactionRejected:
		err = h.transactionService.Reject(r.Context(), id, req.Notes)
	}
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "status updated"})
}
