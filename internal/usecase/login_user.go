package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/erino/leadcrm/internal/entity"
)

type LoginUserUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuer
}

func NewLoginUserUseCase(users entity.UserRepositoryInterface, tokens TokenIssuer) *LoginUserUseCase {
	return &LoginUserUseCase{Users: users, Tokens: tokens}
}

// Execute checks the credentials and issues a session token. Unknown email
// and wrong password both collapse into ErrInvalidCredentials.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginInput) (*entity.User, string, error) {
	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
