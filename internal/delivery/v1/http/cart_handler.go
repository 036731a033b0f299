package http

import (
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type createCartRequest struct {
	UserID *int64 `json:"user_id"`
}

type addCartItemRequest struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type cartItemResponse struct {
	ID        int64 `json:"id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type cartResponse struct {
	ID       int64              `json:"id"`
	UserID   *int64             `json:"user_id"`
	IsActive bool               `json:"is_active"`
	Items    []cartItemResponse `json:"items"`
}

// createCart
//
//	@Summary		Создание корзины
//	@Description	Создаёт корзину; user_id опционален для анонимных покупателей
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createCartRequest	true	"Владелец корзины"
//	@Success		201		{object}	cartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts [post]
func (c *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	var req createCartRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.CreateCart(r.Context(), req.UserID)
	if err != nil {
		c.logger.Warnf("create cart failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, cartResponse{
		ID:       cart.ID,
		UserID:   cart.UserID,
		IsActive: cart.IsActive,
		Items:    []cartItemResponse{},
	})
}

// addItem
//
//	@Summary		Добавление позиции в корзину
//	@Description	Повторное добавление того же варианта увеличивает количество
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID корзины"
//	@Param			request	body		addCartItemRequest	true	"Вариант и количество"
//	@Success		201		{object}	cartItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts/{id}/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addCartItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, err := c.cartUsecase.AddItem(r.Context(), usecase.NewAddCartItemReq(cartID, req.VariantID, req.Quantity))
	if err != nil {
		c.logger.Warnf("add item to cart %d failed: %s", cartID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, cartItemResponse{
		ID:        item.ID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
	})
}

// getCart
//
//	@Summary	Корзина с позициями
//	@Tags		carts
//	@Produce	json
//	@Param		id	path		int	true	"ID корзины"
//	@Success	200	{object}	cartResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/carts/{id} [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.GetCart(r.Context(), cartID)
	if err != nil {
		c.logger.Warnf("get cart %d failed: %s", cartID, err.Error())
		WriteError(w, err)
		return
	}

	resp := cartResponse{
		ID:       res.Cart.ID,
		UserID:   res.Cart.UserID,
		IsActive: res.Cart.IsActive,
		Items:    make([]cartItemResponse, 0, len(res.Items)),
	}
	for _, item := range res.Items {
		resp.Items = append(resp.Items, cartItemResponse{
			ID:        item.ID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}
