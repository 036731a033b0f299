package http

import (
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUC
	logger        logger.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUC, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase, logger: logger}
}

type addReviewRequest struct {
	UserID  int64  `json:"user_id"`
	Rating  int32  `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// addReview
//
//	@Summary		Добавление отзыва о товаре
//	@Description	Допускается один отзыв на пару (товар, пользователь), рейтинг от 1 до 5
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID товара"
//	@Param			request	body		addReviewRequest	true	"Отзыв"
//	@Success		201		{object}	reviewResponse
//	@Failure		400		{object}	ErrorResponse	"Некорректный рейтинг"
//	@Failure		409		{object}	ErrorResponse	"Отзыв уже существует"
//	@Router			/products/{id}/reviews [post]
func (h *ReviewHandler) addReview(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addReviewRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	review, err := h.reviewUsecase.AddReview(r.Context(), usecase.NewAddReviewReq(
		productID, req.UserID, req.Rating, req.Title, req.Comment,
	))
	if err != nil {
		h.logger.Warnf("add review for product %d failed: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, reviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Title:     review.Title,
		Comment:   review.Comment,
	})
}
