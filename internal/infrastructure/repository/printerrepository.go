package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/mappers"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

type PrinterRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PrintingMapper
}

func NewPrinterRepository(db *gorm.DB) printing.PrinterRepository {
	return &PrinterRepositoryImpl{
		db:     db,
		mapper: mappers.NewPrintingMapper(),
	}
}

func (r *PrinterRepositoryImpl) Create(ctx context.Context, p *printing.Printer) error {
	model := r.mapper.PrinterToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("printer already exists", p.Name())
		}
		return fmt.Errorf("failed to create printer: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *PrinterRepositoryImpl) GetActiveByName(ctx context.Context, name string) (*printing.Printer, error) {
	var model models.PrinterModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active("")).
		Where("name = ?", name).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("printer not found", name)
		}
		return nil, fmt.Errorf("failed to get printer: %w", err)
	}
	return r.mapper.PrinterToEntity(&model), nil
}

func (r *PrinterRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PrinterModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check printer: %w", err)
	}
	return count > 0, nil
}

func (r *PrinterRepositoryImpl) List(ctx context.Context) ([]*printing.Printer, error) {
	var list []*models.PrinterModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list printers: %w", err)
	}
	printers := make([]*printing.Printer, 0, len(list))
	for _, m := range list {
		printers = append(printers, r.mapper.PrinterToEntity(m))
	}
	return printers, nil
}

type PrintJobRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PrintingMapper
}

func NewPrintJobRepository(db *gorm.DB) printing.JobRepository {
	return &PrintJobRepositoryImpl{
		db:     db,
		mapper: mappers.NewPrintingMapper(),
	}
}

func (r *PrintJobRepositoryImpl) Create(ctx context.Context, j *printing.Job) error {
	model := r.mapper.JobToModel(j)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create print job: %w", err)
	}
	j.SetID(model.ID)
	return nil
}

func (r *PrintJobRepositoryImpl) UpdateResult(ctx context.Context, j *printing.Job) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PrintJobModel{}).
		Where("id = ?", j.ID()).
		Updates(map[string]interface{}{
			"status":  j.Status().String(),
			"error":   j.ErrorText(),
			"sent_at": j.SentAt(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update print job: %w", err)
	}
	return nil
}

func (r *PrintJobRepositoryImpl) GetByID(ctx context.Context, id uint) (*printing.Job, error) {
	var model models.PrintJobModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("print job not found")
		}
		return nil, fmt.Errorf("failed to get print job: %w", err)
	}
	return r.mapper.JobToEntity(&model), nil
}
