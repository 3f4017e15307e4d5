package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenExpiry = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  []byte
	mapper     *mapper.UserMapper
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  []byte(jwtSecret),
		mapper:     mapper.NewUserMapper(),
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	// Same answer for unknown user and wrong password.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, serverutils.Unauthorized("Invalid username or password")
	}

	claims := jwt.MapClaims{
		"user_id": strconv.FormatInt(user.Id, 10),
		"iat":     s.now().Unix(),
		"exp":     s.now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User:  s.mapper.ToResponse(user),
	}, nil
}
