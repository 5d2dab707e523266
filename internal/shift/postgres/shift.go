package postgres

import (
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"github.com/Bar-innutshell/Management-Karyawan/internal/shift"
	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) shift.RepositoryAPI {
	return &ShiftRepository{db: db}
}

func (r *ShiftRepository) GetAll(filter shift.ListFilter) ([]*staffing.Shift, error) {
	var shifts []*staffing.Shift
	q := r.db.Order("nama ASC")
	if filter.Aktif != nil {
		q = q.Where("aktif = ?", *filter.Aktif)
	}
	err := q.Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) GetByID(id int64) (*staffing.Shift, error) {
	var sh staffing.Shift
	err := r.db.Where("id = ?", id).First(&sh).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sh, nil
}

func (r *ShiftRepository) GetByName(name string) (*staffing.Shift, error) {
	var sh staffing.Shift
	err := r.db.Where("nama = ?", name).First(&sh).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sh, nil
}

func (r *ShiftRepository) Create(sh *staffing.Shift) error {
	return r.db.Create(sh).Error
}
