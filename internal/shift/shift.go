package shift

import (
	"regexp"
	"time"

	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
)

// Shift is a named work-time template. Templates are seed data: the API
// exposes them read-only and mutation happens only through the seeder.
type Shift struct {
	ID         int64     `json:"id"`
	Nama       string    `json:"nama"`
	JamMulai   string    `json:"jamMulai"`
	JamSelesai string    `json:"jamSelesai"`
	Deskripsi  *string   `json:"deskripsi"`
	Aktif      bool      `json:"aktif"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// timePattern accepts 24-hour HH:MM with a mandatory leading zero, so
// "08:00" and "23:59" pass while "24:00" and "8:5" do not.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTime reports whether s is a well-formed HH:MM clock time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

func FromDataModel(s *staffing.Shift) *Shift {
	return &Shift{
		ID:         s.ID,
		Nama:       s.Nama,
		JamMulai:   s.JamMulai,
		JamSelesai: s.JamSelesai,
		Deskripsi:  s.Deskripsi,
		Aktif:      s.Aktif,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func ToDataModel(s *Shift) *staffing.Shift {
	return &staffing.Shift{
		ID:         s.ID,
		Nama:       s.Nama,
		JamMulai:   s.JamMulai,
		JamSelesai: s.JamSelesai,
		Deskripsi:  s.Deskripsi,
		Aktif:      s.Aktif,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
