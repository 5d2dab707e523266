// Package staffing holds the persistence models for the staffing schema.
// Table and column names follow the production database, which predates this
// service.
package staffing

import "time"

type Role struct {
	ID               int64   `gorm:"primaryKey"`
	Nama             string  `gorm:"column:nama;not null;uniqueIndex"`
	Deskripsi        *string `gorm:"column:deskripsi"`
	GajiPokokBulanan float64 `gorm:"column:gaji_pokok_bulanan;not null"`
}

func (Role) TableName() string { return "roles" }

type Shift struct {
	ID         int64     `gorm:"primaryKey"`
	Nama       string    `gorm:"column:nama;not null;uniqueIndex"`
	JamMulai   string    `gorm:"column:jam_mulai;not null"`
	JamSelesai string    `gorm:"column:jam_selesai;not null"`
	Deskripsi  *string   `gorm:"column:deskripsi"`
	Aktif      bool      `gorm:"column:aktif;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Shift) TableName() string { return "shifts" }

type User struct {
	ID         int64     `gorm:"primaryKey"`
	Nama       string    `gorm:"column:nama;not null"`
	Email      string    `gorm:"column:email;not null;uniqueIndex"`
	Password   string    `gorm:"column:password;not null"`
	RoleID     int64     `gorm:"column:role_id;not null"`
	GajiPerJam float64   `gorm:"column:gaji_per_jam;not null"`
	Shift      *string   `gorm:"column:shift"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Role Role `gorm:"foreignKey:RoleID"`
}

func (User) TableName() string { return "users" }

// The four dependent-record kinds are owned by other subsystems; this
// service only ever counts them to guard user deletion.

type Absensi struct {
	ID      int64     `gorm:"primaryKey"`
	UserID  int64     `gorm:"column:user_id;not null;index"`
	Tanggal time.Time `gorm:"column:tanggal"`
	Status  string    `gorm:"column:status"`
}

func (Absensi) TableName() string { return "absensi" }

type SlipGaji struct {
	ID      int64   `gorm:"primaryKey"`
	UserID  int64   `gorm:"column:user_id;not null;index"`
	Periode string  `gorm:"column:periode"`
	Total   float64 `gorm:"column:total"`
}

func (SlipGaji) TableName() string { return "slip_gaji" }

type Jadwal struct {
	ID      int64     `gorm:"primaryKey"`
	UserID  int64     `gorm:"column:user_id;not null;index"`
	ShiftID int64     `gorm:"column:shift_id"`
	Tanggal time.Time `gorm:"column:tanggal"`
}

func (Jadwal) TableName() string { return "jadwal" }

type LaporanPemasukan struct {
	ID      int64     `gorm:"primaryKey"`
	UserID  int64     `gorm:"column:user_id;not null;index"`
	Tanggal time.Time `gorm:"column:tanggal"`
	Jumlah  float64   `gorm:"column:jumlah"`
}

func (LaporanPemasukan) TableName() string { return "laporan_pemasukan" }
