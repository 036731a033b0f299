package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type placeOrderRequest struct {
	UserID    int64            `json:"user_id"`
	AddressID int64            `json:"address_id"`
	Items     []orderLineInput `json:"items"`
}

type orderLineInput struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	VariantID int64  `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type orderResponse struct {
	ID          int64               `json:"id"`
	UserID      *int64              `json:"user_id"`
	Status      string              `json:"status"`
	PlacedAt    string              `json:"placed_at"`
	AddressID   int64               `json:"address_id"`
	TotalAmount string              `json:"total_amount"`
	Items       []orderItemResponse `json:"items"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		PlacedAt:    order.PlacedAt.Format(time.RFC3339),
		AddressID:   order.ShippingAddrID,
		TotalAmount: formatCents(order.TotalAmount),
		Items:       make([]orderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: formatCents(item.UnitPrice),
		})
	}

	return resp
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ из позиций корзины, резервируя остатки вариантов
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		placeOrderRequest	true	"Позиции заказа"
//	@Success		201		{object}	orderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, err)
		return
	}

	lines := make([]usecase.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.OrderLine{VariantID: item.VariantID, Quantity: item.Quantity})
	}

	order, err := o.orderUsecase.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(req.UserID, req.AddressID, lines))
	if err != nil {
		o.logger.Warnf("place order failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(order))
}

// getOrder
//
//	@Summary	Получение заказа
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"ID заказа"
//	@Success	200	{object}	orderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Warnf("get order %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}

// updateStatus
//
//	@Summary		Перевод заказа в новый статус
//	@Description	Допустимы только переходы PEN→PAI→SHP→DEL, отмена возможна из PEN и PAI
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID заказа"
//	@Param			request	body		updateStatusRequest	true	"Новый статус"
//	@Success		200		{object}	orderResponse
//	@Failure		409		{object}	ErrorResponse	"Недопустимый переход"
//	@Router			/orders/{id}/status [patch]
func (o *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.UpdateStatus(r.Context(), usecase.NewUpdateOrderStatusReq(id, domain.OrderStatus(req.Status)))
	if err != nil {
		o.logger.Warnf("update order %d status failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}
