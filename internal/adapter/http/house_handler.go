package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/house"
)

type HouseHandler struct{ uc *house.Usecase }

func NewHouseHandler(uc *house.Usecase) *HouseHandler { return &HouseHandler{uc: uc} }

type setStatusReq struct {
	Status string `json:"status" validate:"required,house_status"`
}

// ListHouses: ?phase=N narrows to one phase (0 means all), ?include_sold=false hides sold ones.
func (h *HouseHandler) ListHouses(c echo.Context) error {
	phase, err := queryInt(c, "phase")
	if err != nil {
		return err
	}
	includeSold, err := queryBool(c, "include_sold", true)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), phase, includeSold)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HouseHandler) GetHouse(c echo.Context) error {
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

func (h *HouseHandler) CreateHouse(c echo.Context) error {
	in := house.HouseInput{Phase: 1}
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *HouseHandler) UpdateHouse(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	in := house.HouseInput{Phase: 1}
	if err := bindValid(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

// SetHouseStatus reads the new status from ?status= or, failing that, the JSON body.
func (h *HouseHandler) SetHouseStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req := setStatusReq{Status: c.QueryParam("status")}
	if req.Status == "" {
		if err := c.Bind(&req); err != nil {
			return errInvalidBody
		}
	}
	if err := c.Validate(&req); err != nil {
		return &validationError{fields: ToFieldErrors(err)}
	}
	if err := h.uc.SetStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}
	return success(c)
}

func (h *HouseHandler) DeleteHouse(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.SoftDelete(c.Request().Context(), id); err != nil {
		return err
	}
	return success(c)
}
