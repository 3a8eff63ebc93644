package http

import (
	"github.com/labstack/echo/v4"

	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/contract"
	"realestate-backend/internal/usecase/house"
	"realestate-backend/internal/usecase/payment"
	"realestate-backend/internal/usecase/receipt"
	"realestate-backend/internal/usecase/resale"
	"realestate-backend/internal/usecase/statistics"
)

type Handlers struct {
	Base       *Handler
	Houses     *HouseHandler
	Receipts   *ReceiptHandler
	Contracts  *ContractHandler
	Payments   *PaymentHandler
	Resales    *ResaleHandler
	Statistics *StatisticsHandler
}

// NewHandlers wires every usecase onto repos; writes go through tx.
func NewHandlers(repos uow.Repos, tx uow.UnitOfWork, db Pinger) Handlers {
	return Handlers{
		Base:       NewHandler(db),
		Houses:     NewHouseHandler(house.NewUsecase(repos.Houses, tx)),
		Receipts:   NewReceiptHandler(receipt.NewUsecase(repos.Receipts, tx)),
		Contracts:  NewContractHandler(contract.NewUsecase(repos.Contracts, repos.Payments, tx)),
		Payments:   NewPaymentHandler(payment.NewUsecase(repos.Payments, tx)),
		Resales:    NewResaleHandler(resale.NewUsecase(repos.Resales, repos.Houses, repos.Contracts, tx)),
		Statistics: NewStatisticsHandler(statistics.NewUsecase(repos.Contracts)),
	}
}

func Register(e *echo.Echo, h Handlers) {
	e.GET("/", h.Base.Root)
	e.GET("/health", h.Base.Health)

	api := e.Group("/api")

	houses := api.Group("/houses")
	houses.GET("", h.Houses.ListHouses)
	houses.POST("", h.Houses.CreateHouse)
	houses.GET("/:id", h.Houses.GetHouse)
	houses.PUT("/:id", h.Houses.UpdateHouse)
	houses.DELETE("/:id", h.Houses.DeleteHouse)
	houses.PATCH("/:id/status", h.Houses.SetHouseStatus)

	receipts := api.Group("/receipts")
	receipts.GET("", h.Receipts.ListReceipts)
	receipts.POST("", h.Receipts.CreateReceipt)
	receipts.GET("/:id", h.Receipts.GetReceipt)
	receipts.DELETE("/:id", h.Receipts.DeleteReceipt)

	// static segments win over /:id in echo's router
	contracts := api.Group("/contracts")
	contracts.GET("", h.Contracts.ListContracts)
	contracts.POST("", h.Contracts.CreateContract)
	contracts.GET("/sold-houses", h.Contracts.SoldHouses)
	contracts.GET("/overdue", h.Contracts.OverdueContracts)
	contracts.GET("/:id", h.Contracts.GetContract)
	contracts.PUT("/:id", h.Contracts.UpdateContract)
	contracts.GET("/:id/remaining", h.Contracts.RemainingAmount)

	resales := api.Group("/resale")
	resales.GET("", h.Resales.ListResales)
	resales.POST("", h.Resales.CreateResale)
	resales.DELETE("/:id", h.Resales.DeleteResale)

	payments := api.Group("/payments")
	payments.GET("/contract/:contract_id", h.Payments.ListContractPayments)
	payments.POST("", h.Payments.CreatePayment)
	payments.DELETE("/:id", h.Payments.DeletePayment)

	api.GET("/statistics", h.Statistics.GetStatistics)
}
