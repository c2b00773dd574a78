package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/dto"
	"github.com/nomipay/nomi/internal/service/withdrawalservice"
	"github.com/nomipay/nomi/pkg/auth"
	"github.com/nomipay/nomi/pkg/utils"
	"github.com/nomipay/nomi/pkg/validate"
)

type Service interface {
	GetBalanceSummary(ctx context.Context, userID uuid.UUID) (*domain.BalanceSummary, error)
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*domain.Transaction, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// GetBalance godoc
//
//	@Summary		Get earned wage balance
//	@Description	Retrieve the salary, the amount currently available for withdrawal and the commission the authenticated employee would pay.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceSummaryResponseDTO	"Current balance summary"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		404	{object}	utils.Response					"No employee record linked to the user"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/employee/balance [get]
func (h *WithdrawalHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	summary, err := h.withdrawalService.GetBalanceSummary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, withdrawalservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceSummaryResponseDTO{
		Salary:                 summary.Salary,
		AvailableBalance:       summary.AvailableBalance,
		EligibleAmount:         summary.EligibleAmount,
		TotalWithdrawn:         summary.TotalWithdrawn,
		CommissionFee:          summary.CommissionFee,
		MinimumWithdrawal:      summary.MinimumWithdrawal,
		AvailabilityPercentage: summary.AvailabilityPercentage,
		PaymentFrequency:       string(summary.PaymentFrequency),
	})
}

// Withdraw godoc
//
//	@Summary		Request an earned wage withdrawal
//	@Description	Debit the available balance and record a pending payout. Replaying the same idempotency key returns the original transaction.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient available balance"
//	@Failure		403		{object}	utils.Response				"Employee or company suspended"
//	@Failure		409		{object}	utils.Response				"Conflicting request or exhausted company credit"
//	@Failure		422		{object}	utils.Response				"Amount outside the allowed range"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/employee/withdrawals [post]
func (h *WithdrawalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, req.Amount, req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrEmployeeNotFound),
			errors.Is(err, withdrawalservice.ErrCompanyNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrEmployeeInactive),
			errors.Is(err, withdrawalservice.ErrCompanyInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrAboveWithdrawalLimit):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrBalanceConflict),
			errors.Is(err, withdrawalservice.ErrCreditExhausted),
			errors.Is(err, withdrawalservice.ErrIdempotencyKeyReused):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(*transaction))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	List the authenticated employee's withdrawals, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Page size"
//	@Param			offset	query		int							false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Withdrawal history"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/employee/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	limit, offset := utils.ParsePagination(r)

	transactions, err := h.withdrawalService.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, transaction := range transactions {
		response[i] = toTransactionDTO(transaction)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(t domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          t.ID.String(),
		EmployeeID:  t.EmployeeID.String(),
		Amount:      t.Amount,
		Commission:  t.Commission,
		NetAmount:   t.NetAmount,
		Status:      string(t.Status),
		BankName:    t.BankName,
		BankAccount: t.BankAccount,
		Notes:       t.Notes,
		ProcessedAt: t.ProcessedAt,
		CreatedAt:   t.CreatedAt,
	}
}
