package http

import (
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUC
	logger         logger.Logger
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUC, logger logger.Logger) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase, logger: logger}
}

type confirmPaymentRequest struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

type paymentResponse struct {
	ID            int64  `json:"id"`
	OrderID       int64  `json:"order_id"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// confirmPayment
//
//	@Summary		Подтверждение оплаты заказа
//	@Description	Колбэк платёжного провайдера: фиксирует платёж и переводит заказ в PAI
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID заказа"
//	@Param			request	body		confirmPaymentRequest	true	"Данные платежа"
//	@Success		200		{object}	paymentResponse
//	@Failure		409		{object}	ErrorResponse	"Платёж уже зафиксирован"
//	@Router			/orders/{id}/payment [post]
func (p *PaymentHandler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req confirmPaymentRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	payment, err := p.paymentUsecase.Confirm(r.Context(), usecase.NewConfirmPaymentReq(
		orderID, domain.PaymentMethod(req.Method), req.TransactionID,
	))
	if err != nil {
		p.logger.Warnf("confirm payment for order %d failed: %s", orderID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, paymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Method:        string(payment.Method),
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
	})
}
