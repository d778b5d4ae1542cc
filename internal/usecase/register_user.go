package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/erino/leadcrm/internal/entity"
)

const bcryptCost = 10

type RegisterUserUseCase struct {
	Users entity.UserRepositoryInterface
}

func NewRegisterUserUseCase(users entity.UserRepositoryInterface) *RegisterUserUseCase {
	return &RegisterUserUseCase{Users: users}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(input.Email, string(hash))
	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
