package user

import (
	"encoding/json"
	"errors"
	"time"
)

// OptionalString distinguishes a JSON key that is absent from one that is
// explicitly null. UnmarshalJSON only runs when the key is present, so Set
// marks presence and a nil Value means "explicitly unset".
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type CreateUserDTO struct {
	Nama       string   `json:"nama" validate:"required"`
	Email      string   `json:"email" validate:"required"`
	Password   string   `json:"password" validate:"required"`
	RoleID     int64    `json:"roleId" validate:"required"`
	GajiPerJam *float64 `json:"gajiPerJam,omitempty"`
	Shift      *string  `json:"shift,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Nama == "" || dto.Email == "" || dto.Password == "" || dto.RoleID == 0 {
		return errors.New("nama, email, password, and roleId are required")
	}
	if dto.GajiPerJam != nil && *dto.GajiPerJam < 0 {
		return errors.New("gajiPerJam must not be negative")
	}
	if dto.Shift != nil && !ValidShiftLabel(*dto.Shift) {
		return errors.New(`shift must be "Pagi" or "Sore"`)
	}
	return nil
}

// UpdateUserDTO carries partial-update semantics: nil pointers mean the
// field was not in the request. Shift additionally allows an explicit null
// to unassign the label.
type UpdateUserDTO struct {
	Nama       *string        `json:"nama"`
	Email      *string        `json:"email"`
	Password   *string        `json:"password"`
	RoleID     *int64         `json:"roleId"`
	GajiPerJam *float64       `json:"gajiPerJam"`
	Shift      OptionalString `json:"shift"`
}

func (dto UpdateUserDTO) Validate() error {
	if dto.GajiPerJam != nil && *dto.GajiPerJam < 0 {
		return errors.New("gajiPerJam must not be negative")
	}
	if dto.Shift.Set && dto.Shift.Value != nil && !ValidShiftLabel(*dto.Shift.Value) {
		return errors.New(`shift must be "Pagi" or "Sore"`)
	}
	return nil
}

type ListFilter struct {
	RoleID *int64
	Search string
}

// ListCounts is the dependent-record summary attached to each list row.
type ListCounts struct {
	Absensi  int64 `json:"absensi"`
	SlipGaji int64 `json:"slipGaji"`
}

// ListItemResponse is one row of GET /users.
type ListItemResponse struct {
	User
	Role  *RoleSummary `json:"role"`
	Count ListCounts   `json:"_count"`
}

// DetailResponse is the body of GET /users/{id}.
type DetailResponse struct {
	User
	Role  *RoleSummary    `json:"role"`
	Count DependentCounts `json:"_count"`
}

// RoleName carries just the role name on create/update responses.
type RoleName struct {
	Nama string `json:"nama"`
}

type CreatedResponse struct {
	ID         int64     `json:"id"`
	Nama       string    `json:"nama"`
	Email      string    `json:"email"`
	RoleID     int64     `json:"roleId"`
	GajiPerJam float64   `json:"gajiPerJam"`
	Shift      *string   `json:"shift"`
	CreatedAt  time.Time `json:"createdAt"`
	Role       RoleName  `json:"role"`
}

type UpdatedResponse struct {
	ID         int64     `json:"id"`
	Nama       string    `json:"nama"`
	Email      string    `json:"email"`
	RoleID     int64     `json:"roleId"`
	GajiPerJam float64   `json:"gajiPerJam"`
	Shift      *string   `json:"shift"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Role       RoleName  `json:"role"`
}

// DeletedResponse is the identity echo returned after a successful delete.
type DeletedResponse struct {
	ID    int64  `json:"id"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
}
