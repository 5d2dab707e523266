package postgres

import (
	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"github.com/Bar-innutshell/Management-Karyawan/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db         *gorm.DB
	searchMode string
}

// NewUserRepository builds the gorm-backed user repository. searchMode
// decides whether name/email search follows the database collation or is
// lower()-folded; see DatabaseConfig.SearchMode.
func NewUserRepository(db *gorm.DB, searchMode string) user.RepositoryAPI {
	if searchMode == "" {
		searchMode = internal.SearchModeDefault
	}
	return &UserRepository{db: db, searchMode: searchMode}
}

func (r *UserRepository) GetAll(filter user.ListFilter) ([]*staffing.User, error) {
	var users []*staffing.User
	q := r.db.Preload("Role").Order("role_id ASC, nama ASC")

	if filter.RoleID != nil {
		q = q.Where("role_id = ?", *filter.RoleID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if r.searchMode == internal.SearchModeInsensitive {
			q = q.Where("lower(nama) LIKE lower(?) OR lower(email) LIKE lower(?)", pattern, pattern)
		} else {
			q = q.Where("nama LIKE ? OR email LIKE ?", pattern, pattern)
		}
	}

	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id int64) (*staffing.User, error) {
	var u staffing.User
	err := r.db.Preload("Role").Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*staffing.User, error) {
	var u staffing.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *staffing.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Save(u *staffing.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&staffing.User{}, id).Error
}

func (r *UserRepository) GetRoleByID(id int64) (*staffing.Role, error) {
	var role staffing.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *UserRepository) CountDependents(userID int64) (*user.DependentCounts, error) {
	var counts user.DependentCounts

	if err := r.db.Model(&staffing.Absensi{}).Where("user_id = ?", userID).Count(&counts.Absensi).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&staffing.SlipGaji{}).Where("user_id = ?", userID).Count(&counts.SlipGaji).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&staffing.Jadwal{}).Where("user_id = ?", userID).Count(&counts.Jadwal).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&staffing.LaporanPemasukan{}).Where("user_id = ?", userID).Count(&counts.LaporanPemasukan).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
