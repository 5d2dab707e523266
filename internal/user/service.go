package user

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetAll(filter ListFilter) ([]*staffing.User, error)
	GetByID(id int64) (*staffing.User, error)
	GetByEmail(email string) (*staffing.User, error)
	Create(u *staffing.User) error
	Save(u *staffing.User) error
	Delete(id int64) error
	GetRoleByID(id int64) (*staffing.Role, error)
	CountDependents(userID int64) (*DependentCounts, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// List returns users ordered by role then name, enriched with their role
// summary and attendance/payslip counts. The password hash is never mapped.
func (s *Service) List(filter ListFilter) ([]*ListItemResponse, error) {
	dataUsers, err := s.repo.GetAll(filter)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to retrieve users", err)
	}

	items := make([]*ListItemResponse, 0, len(dataUsers))
	for _, du := range dataUsers {
		counts, err := s.repo.CountDependents(du.ID)
		if err != nil {
			s.logger.Error("failed to count dependents", "user_id", du.ID, "error", err)
			return nil, internal.NewInternalError("failed to retrieve users", err)
		}
		items = append(items, &ListItemResponse{
			User: *FromDataModel(du),
			Role: roleSummary(&du.Role, false),
			Count: ListCounts{
				Absensi:  counts.Absensi,
				SlipGaji: counts.SlipGaji,
			},
		})
	}

	s.logger.Info("retrieved users", "count", len(items))
	return items, nil
}

func (s *Service) Get(id int64) (*DetailResponse, error) {
	du, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to retrieve user", err)
	}
	if du == nil {
		return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	}

	counts, err := s.repo.CountDependents(du.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to retrieve user", err)
	}

	return &DetailResponse{
		User:  *FromDataModel(du),
		Role:  roleSummary(&du.Role, true),
		Count: *counts,
	}, nil
}

// Create validates the payload, pre-checks email uniqueness and role
// existence, hashes the password, and persists. The pre-checks are
// advisory: the unique constraint remains the final authority, and a
// constraint violation from a concurrent writer maps to the same conflict.
func (s *Service) Create(dto CreateUserDTO) (*CreatedResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("email already registered", internal.ErrCodeEmailExists)
	}

	role, err := s.repo.GetRoleByID(dto.RoleID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check role", err)
	}
	if role == nil {
		return nil, internal.NewNotFoundError("role not found", internal.ErrCodeRoleNotFound)
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	du := &staffing.User{
		Nama:     dto.Nama,
		Email:    dto.Email,
		Password: hash,
		RoleID:   dto.RoleID,
		Shift:    dto.Shift,
	}
	if dto.GajiPerJam != nil {
		du.GajiPerJam = *dto.GajiPerJam
	}

	if err := s.repo.Create(du); err != nil {
		if isDuplicateKey(err) {
			return nil, internal.NewConflictError("email already registered", internal.ErrCodeEmailExists)
		}
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", du.ID, "email", du.Email, "role", role.Nama)
	return &CreatedResponse{
		ID:         du.ID,
		Nama:       du.Nama,
		Email:      du.Email,
		RoleID:     du.RoleID,
		GajiPerJam: du.GajiPerJam,
		Shift:      du.Shift,
		CreatedAt:  du.CreatedAt,
		Role:       RoleName{Nama: role.Nama},
	}, nil
}

// Update applies only the fields present in the payload. Shift accepts an
// explicit null to unassign the label. An empty payload is a valid no-op.
func (s *Service) Update(id int64, dto UpdateUserDTO) (*UpdatedResponse, error) {
	du, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to retrieve user", err)
	}
	if du == nil {
		return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if dto.Email != nil && *dto.Email != "" && *dto.Email != du.Email {
		other, err := s.repo.GetByEmail(*dto.Email)
		if err != nil {
			return nil, internal.NewInternalError("failed to check email", err)
		}
		if other != nil {
			return nil, internal.NewConflictError("email already used by another user", internal.ErrCodeEmailExists)
		}
		du.Email = *dto.Email
	}

	role := du.Role
	if dto.RoleID != nil && *dto.RoleID != 0 {
		newRole, err := s.repo.GetRoleByID(*dto.RoleID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check role", err)
		}
		if newRole == nil {
			return nil, internal.NewNotFoundError("role not found", internal.ErrCodeRoleNotFound)
		}
		du.RoleID = *dto.RoleID
		role = *newRole
	}

	if dto.Nama != nil && *dto.Nama != "" {
		du.Nama = *dto.Nama
	}
	if dto.GajiPerJam != nil {
		du.GajiPerJam = *dto.GajiPerJam
	}
	if dto.Shift.Set {
		du.Shift = dto.Shift.Value
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		du.Password = hash
	}

	if err := s.repo.Save(du); err != nil {
		if isDuplicateKey(err) {
			return nil, internal.NewConflictError("email already used by another user", internal.ErrCodeEmailExists)
		}
		return nil, internal.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "user_id", du.ID)
	return &UpdatedResponse{
		ID:         du.ID,
		Nama:       du.Nama,
		Email:      du.Email,
		RoleID:     du.RoleID,
		GajiPerJam: du.GajiPerJam,
		Shift:      du.Shift,
		UpdatedAt:  du.UpdatedAt,
		Role:       RoleName{Nama: role.Nama},
	}, nil
}

// Delete removes a user with no dependent records. When any of the four
// dependent kinds is present the delete is refused and the counts are
// reported back.
func (s *Service) Delete(id int64) (*DeletedResponse, error) {
	du, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to retrieve user", err)
	}
	if du == nil {
		return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to count related data", err)
	}
	if counts.Total() > 0 {
		s.logger.Warn("delete refused, user has related data",
			"user_id", id,
			"absensi", counts.Absensi,
			"slip_gaji", counts.SlipGaji,
			"jadwal", counts.Jadwal,
			"laporan_pemasukan", counts.LaporanPemasukan)
		return nil, internal.NewDependencyError("cannot delete user: user has related data", *counts)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id, "email", du.Email)
	return &DeletedResponse{
		ID:    du.ID,
		Nama:  du.Nama,
		Email: du.Email,
	}, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
