package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

func (h *PaymentHandler) ListContractPayments(c echo.Context) error {
	contractID, err := pathID(c, "contract_id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByContract(c.Request().Context(), contractID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// CreatePayment records the installment and raises the contract's amount_paid.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var in payment.PaymentInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return success(c)
}
