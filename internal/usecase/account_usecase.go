package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// AccountUseCase реализует регистрацию учётных записей. Профиль создаётся
// явно в той же транзакции, что и пользователь, без скрытых обработчиков
// событий.
type AccountUseCase struct {
	userRepo UserRepository
	dbPool   transaction.Transactional
	logger   logger.Logger
}

func NewAccountUC(userRepo UserRepository, dbPool transaction.Transactional, logger logger.Logger) *AccountUseCase {
	return &AccountUseCase{
		userRepo: userRepo,
		dbPool:   dbPool,
		logger:   logger,
	}
}

// SignUp регистрирует пользователя вместе с профилем.
func (a *AccountUseCase) SignUp(ctx context.Context, req *SignUpReq) (*SignUpRes, error) {
	const op = "AccountUseCase.SignUp"

	var err error
	if err = a.validateSignUp(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	taken, err := a.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if taken {
		return nil, e.Wrap(op, e.ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	user, err := a.userRepo.Create(ctx, domain.NewUser(req.Username, req.Email, string(hash), req.IsCustomer, req.IsSeller))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	profile := domain.NewUserProfile(user.ID, req.Phone, req.Address)
	if err = a.userRepo.CreateProfile(ctx, profile); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &SignUpRes{User: user, Profile: profile}, nil
}

func (a *AccountUseCase) validateSignUp(req *SignUpReq) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return e.ErrMissingFields
	}

	return nil
}
