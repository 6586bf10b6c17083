package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/pkg/jwt"
)

type memUsers map[string]*entity.User

func (m memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m[id], nil
}

func newAuth(t *testing.T, useYN string) *AuthUseCase {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := memUsers{"PDA01": {UserID: "PDA01", Saupj: "1000", UserName: "Kim", PasswordHash: string(hash), Role: entity.RoleOperator, UseYN: useYN}}
	return NewAuthUseCase(users, JWTConfig{Secret: "s3cr3t", ExpMinutes: 60, Issuer: "mes-test"})
}

func TestLogin_OK(t *testing.T) {
	uc := newAuth(t, "Y")
	out, err := uc.Login(context.Background(), dto.LoginRequest{UserID: "PDA01", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "1000", out.User.Saupj)

	id, err := jwt.Parse("s3cr3t", "mes-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.Identity{UserID: "PDA01", Saupj: "1000", Role: entity.RoleOperator}, id)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newAuth(t, "Y")
	_, err := uc.Login(context.Background(), dto.LoginRequest{UserID: "PDA01", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(context.Background(), dto.LoginRequest{UserID: "NADIE", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	inactive := newAuth(t, "N")
	_, err = inactive.Login(context.Background(), dto.LoginRequest{UserID: "PDA01", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
