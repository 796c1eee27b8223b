package mappers

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.DisplayName,
		user.Role(model.Role),
		model.PasswordHash,
		model.IsActive,
		model.CreatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		DisplayName:  entity.DisplayName(),
		Role:         entity.Role().String(),
		PasswordHash: entity.PasswordHash(),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
	}
}
