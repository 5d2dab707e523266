package user

import (
	"time"

	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
)

// ShiftPagi and ShiftSore are the only shift labels a user may carry; the
// field stays NULL when the user has no assignment.
const (
	ShiftPagi = "Pagi"
	ShiftSore = "Sore"
)

func ValidShiftLabel(s string) bool {
	return s == ShiftPagi || s == ShiftSore
}

// User is the domain view of a staff account. The password hash never
// leaves the persistence layer through this type.
type User struct {
	ID         int64     `json:"id"`
	Nama       string    `json:"nama"`
	Email      string    `json:"email"`
	RoleID     int64     `json:"roleId"`
	GajiPerJam float64   `json:"gajiPerJam"`
	Shift      *string   `json:"shift"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoleSummary mirrors the role fields exposed alongside a user. Deskripsi
// is only filled on the detail endpoint.
type RoleSummary struct {
	ID               int64   `json:"id"`
	Nama             string  `json:"nama"`
	Deskripsi        *string `json:"deskripsi,omitempty"`
	GajiPokokBulanan float64 `json:"gajiPokokBulanan"`
}

// DependentCounts holds the number of records in each of the four
// collections that reference a user and block its deletion.
type DependentCounts struct {
	Absensi          int64 `json:"absensi"`
	SlipGaji         int64 `json:"slipGaji"`
	Jadwal           int64 `json:"jadwal"`
	LaporanPemasukan int64 `json:"laporanPemasukan"`
}

func (c DependentCounts) Total() int64 {
	return c.Absensi + c.SlipGaji + c.Jadwal + c.LaporanPemasukan
}

func FromDataModel(u *staffing.User) *User {
	return &User{
		ID:         u.ID,
		Nama:       u.Nama,
		Email:      u.Email,
		RoleID:     u.RoleID,
		GajiPerJam: u.GajiPerJam,
		Shift:      u.Shift,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func roleSummary(r *staffing.Role, withDeskripsi bool) *RoleSummary {
	if r == nil {
		return nil
	}
	summary := &RoleSummary{
		ID:               r.ID,
		Nama:             r.Nama,
		GajiPokokBulanan: r.GajiPokokBulanan,
	}
	if withDeskripsi {
		summary.Deskripsi = r.Deskripsi
	}
	return summary
}
