package service

import (
	"context"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/repository/unitofwork"
)

const msgUserNotFound = "User not found"

// requireUser enforces the userId reference before any dependent write or read.
func requireUser(ctx context.Context, uow unitofwork.UnitOfWork, userId int64) (*entity.User, error) {
	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound(msgUserNotFound)
	}
	return user, nil
}

// emptyToNil stores blank optional text as absent.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
