package mappers

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type CallMapper interface {
	ToEntity(model *models.CallModel) *call.Call
	ToModel(entity *call.Call) *models.CallModel
}

type CallMapperImpl struct{}

func NewCallMapper() CallMapper {
	return &CallMapperImpl{}
}

func (m *CallMapperImpl) ToEntity(model *models.CallModel) *call.Call {
	if model == nil {
		return nil
	}
	return call.ReconstructCall(
		model.ID,
		call.CallType(model.CallType),
		model.FromUserID,
		model.ToUserID,
		model.TableID,
		model.OrderID,
		model.Message,
		model.IsAck,
		model.CreatedAt,
		model.AckedAt,
	)
}

func (m *CallMapperImpl) ToModel(entity *call.Call) *models.CallModel {
	if entity == nil {
		return nil
	}
	return &models.CallModel{
		ID:         entity.ID(),
		CallType:   entity.Type().String(),
		FromUserID: entity.FromUserID(),
		ToUserID:   entity.ToUserID(),
		TableID:    entity.TableID(),
		OrderID:    entity.OrderID(),
		Message:    entity.Message(),
		IsAck:      entity.IsAck(),
		CreatedAt:  entity.CreatedAt(),
		AckedAt:    entity.AckedAt(),
	}
}
