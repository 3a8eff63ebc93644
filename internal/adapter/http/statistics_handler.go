package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/usecase/statistics"
)

type StatisticsHandler struct{ uc *statistics.Usecase }

func NewStatisticsHandler(uc *statistics.Usecase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

func (h *StatisticsHandler) GetStatistics(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}
