package shift

import (
	"log/slog"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
)

type RepositoryAPI interface {
	GetAll(filter ListFilter) ([]*staffing.Shift, error)
	GetByID(id int64) (*staffing.Shift, error)
	GetByName(name string) (*staffing.Shift, error)
	Create(shift *staffing.Shift) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns shift templates ordered by name, optionally filtered on the
// active flag.
func (s *Service) List(filter ListFilter) ([]*Shift, error) {
	dataShifts, err := s.repo.GetAll(filter)
	if err != nil {
		s.logger.Error("failed to list shifts", "error", err)
		return nil, internal.NewInternalError("failed to retrieve shifts", err)
	}

	shifts := make([]*Shift, 0, len(dataShifts))
	for _, ds := range dataShifts {
		shifts = append(shifts, FromDataModel(ds))
	}

	s.logger.Info("retrieved shifts", "count", len(shifts))
	return shifts, nil
}

func (s *Service) GetByID(id int64) (*Shift, error) {
	ds, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get shift", "shift_id", id, "error", err)
		return nil, internal.NewInternalError("failed to retrieve shift", err)
	}
	if ds == nil {
		return nil, internal.NewNotFoundError("shift not found", internal.ErrCodeShiftNotFound)
	}
	return FromDataModel(ds), nil
}

// Seed inserts a template after validation, skipping names that already
// exist so re-seeding stays idempotent.
func (s *Service) Seed(dto TemplateDTO) (*Shift, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidTime)
	}

	existing, err := s.repo.GetByName(dto.Nama)
	if err != nil {
		return nil, internal.NewInternalError("failed to check shift name", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("shift name already exists", internal.ErrCodeShiftNameExists)
	}

	ds := ToDataModel(&Shift{
		Nama:       dto.Nama,
		JamMulai:   dto.JamMulai,
		JamSelesai: dto.JamSelesai,
		Deskripsi:  dto.Deskripsi,
		Aktif:      dto.Aktif,
	})
	if err := s.repo.Create(ds); err != nil {
		return nil, internal.NewInternalError("failed to create shift", err)
	}

	s.logger.Info("seeded shift template", "nama", ds.Nama)
	return FromDataModel(ds), nil
}
