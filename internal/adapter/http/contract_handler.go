package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/contract"
)

type ContractHandler struct{ uc *contract.Usecase }

func NewContractHandler(uc *contract.Usecase) *ContractHandler { return &ContractHandler{uc: uc} }

func (h *ContractHandler) ListContracts(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
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

func (h *ContractHandler) CreateContract(c echo.Context) error {
	var in contract.ContractInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ContractHandler) UpdateContract(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in contract.ContractInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) RemainingAmount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.uc.Remaining(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) SoldHouses(c echo.Context) error {
	out, err := h.uc.SoldHouses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContractHandler) OverdueContracts(c echo.Context) error {
	out, err := h.uc.Overdue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
