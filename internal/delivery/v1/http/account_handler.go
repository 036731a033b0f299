package http

import (
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUC
	logger         logger.Logger
}

func NewAccountHandler(accountUsecase usecase.AccountUC, logger logger.Logger) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase, logger: logger}
}

type signUpRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsCustomer bool   `json:"is_customer"`
	IsSeller   bool   `json:"is_seller"`
}

type signUpResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// signUp
//
//	@Summary		Регистрация пользователя
//	@Description	Создаёт учётную запись с профилем; пароль хранится в виде bcrypt-хэша
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signUpRequest	true	"Данные учётной записи"
//	@Success		201		{object}	signUpResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Имя занято"
//	@Router			/accounts/signup [post]
func (a *AccountHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.accountUsecase.SignUp(r.Context(), &usecase.SignUpReq{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		IsCustomer: req.IsCustomer,
		IsSeller:   req.IsSeller,
	})
	if err != nil {
		a.logger.Warnf("sign up failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, signUpResponse{
		ID:       res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
	})
}
