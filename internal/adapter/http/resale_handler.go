package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/resale"
)

type ResaleHandler struct{ uc *resale.Usecase }

func NewResaleHandler(uc *resale.Usecase) *ResaleHandler { return &ResaleHandler{uc: uc} }

func (h *ResaleHandler) ListResales(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResaleHandler) CreateResale(c echo.Context) error {
	var in resale.ResaleInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ResaleHandler) DeleteResale(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return success(c)
}
