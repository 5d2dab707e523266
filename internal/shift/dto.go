package shift

import "errors"

// TemplateDTO is the shape the seeder feeds through before a shift template
// reaches the database. The HTTP API has no create path, so this is the
// single gate enforcing the time-format rule.
type TemplateDTO struct {
	Nama       string  `json:"nama" validate:"required"`
	JamMulai   string  `json:"jamMulai" validate:"required"`
	JamSelesai string  `json:"jamSelesai" validate:"required"`
	Deskripsi  *string `json:"deskripsi,omitempty"`
	Aktif      bool    `json:"aktif"`
}

func (dto TemplateDTO) Validate() error {
	if dto.Nama == "" {
		return errors.New("nama is required")
	}
	if dto.JamMulai == "" || dto.JamSelesai == "" {
		return errors.New("jamMulai and jamSelesai are required")
	}
	if !ValidTime(dto.JamMulai) {
		return errors.New("jamMulai must be in HH:MM format (example: 08:00)")
	}
	if !ValidTime(dto.JamSelesai) {
		return errors.New("jamSelesai must be in HH:MM format (example: 14:30)")
	}
	return nil
}

type ListFilter struct {
	Aktif *bool
}
