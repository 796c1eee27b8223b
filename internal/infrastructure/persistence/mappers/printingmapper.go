package mappers

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type PrintingMapper interface {
	PrinterToEntity(model *models.PrinterModel) *printing.Printer
	PrinterToModel(entity *printing.Printer) *models.PrinterModel
	JobToEntity(model *models.PrintJobModel) *printing.Job
	JobToModel(entity *printing.Job) *models.PrintJobModel
}

type PrintingMapperImpl struct{}

func NewPrintingMapper() PrintingMapper {
	return &PrintingMapperImpl{}
}

func (m *PrintingMapperImpl) PrinterToEntity(model *models.PrinterModel) *printing.Printer {
	if model == nil {
		return nil
	}
	return printing.ReconstructPrinter(model.ID, model.Name, model.Kind, model.Destination, model.IsActive)
}

func (m *PrintingMapperImpl) PrinterToModel(entity *printing.Printer) *models.PrinterModel {
	if entity == nil {
		return nil
	}
	return &models.PrinterModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Kind:        entity.Kind(),
		Destination: entity.Destination(),
		IsActive:    entity.IsActive(),
	}
}

func (m *PrintingMapperImpl) JobToEntity(model *models.PrintJobModel) *printing.Job {
	if model == nil {
		return nil
	}
	return printing.ReconstructJob(
		model.ID,
		model.OrderID,
		model.PrinterID,
		printing.JobStatus(model.Status),
		model.Payload,
		model.Error,
		model.CreatedAt,
		model.SentAt,
	)
}

func (m *PrintingMapperImpl) JobToModel(entity *printing.Job) *models.PrintJobModel {
	if entity == nil {
		return nil
	}
	return &models.PrintJobModel{
		ID:        entity.ID(),
		OrderID:   entity.OrderID(),
		PrinterID: entity.PrinterID(),
		Status:    entity.Status().String(),
		Payload:   entity.Payload(),
		Error:     entity.ErrorText(),
		CreatedAt: entity.CreatedAt(),
		SentAt:    entity.SentAt(),
	}
}
