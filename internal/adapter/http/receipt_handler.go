package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/receipt"
)

type ReceiptHandler struct{ uc *receipt.Usecase }

func NewReceiptHandler(uc *receipt.Usecase) *ReceiptHandler { return &ReceiptHandler{uc: uc} }

func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

// CreateReceipt also sells the referenced house and opens its contract.
func (h *ReceiptHandler) CreateReceipt(c echo.Context) error {
	var in receipt.ReceiptInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return success(c)
}
