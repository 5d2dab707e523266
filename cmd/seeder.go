package cmd

import (
	"fmt"
	"log"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"github.com/Bar-innutshell/Management-Karyawan/internal/shift"
	shiftPostgres "github.com/Bar-innutshell/Management-Karyawan/internal/shift/postgres"
	"github.com/Bar-innutshell/Management-Karyawan/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with roles, shift templates, and the admin account",
	Long:  `Seed the database with the fixed role catalog, the shift templates, and the initial admin user. Safe to re-run; existing rows are kept.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			// dependents first, then users, then the catalogs
			for _, model := range []interface{}{
				&staffing.Absensi{}, &staffing.SlipGaji{}, &staffing.Jadwal{}, &staffing.LaporanPemasukan{},
				&staffing.User{}, &staffing.Shift{}, &staffing.Role{},
			} {
				if err := db.Where("1 = 1").Delete(model).Error; err != nil {
					log.Fatalf("failed to clear table: %v", err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedRoles(db)
		seedShifts(db)
		seedAdmin(db, cfg)

		fmt.Println("Seeding finished")
	},
}

func seedRoles(db *gorm.DB) {
	roles := []struct {
		Nama             string
		Deskripsi        string
		GajiPokokBulanan float64
	}{
		{"Admin", "full access to staff administration", 5000000},
		{"Koki", "kitchen staff", 3500000},
		{"Pelayan", "service staff", 3000000},
		{"Kasir", "cashier", 3200000},
	}

	for _, r := range roles {
		var existing staffing.Role
		err := db.Where("nama = ?", r.Nama).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to check role %s: %v", r.Nama, err)
		}

		desc := r.Deskripsi
		role := staffing.Role{Nama: r.Nama, Deskripsi: &desc, GajiPokokBulanan: r.GajiPokokBulanan}
		if err := db.Create(&role).Error; err != nil {
			log.Fatalf("failed to insert role %s: %v", r.Nama, err)
		}
		fmt.Println("Seeded role:", r.Nama)
	}
}

// seedShifts routes templates through the shift service so the HH:MM
// validation applies to seed data exactly as it would to any other write.
func seedShifts(db *gorm.DB) {
	svc := shift.NewService(shiftPostgres.NewShiftRepository(db), logger.L())

	pagi := "morning shift, opening through lunch"
	sore := "evening shift, dinner through closing"
	templates := []shift.TemplateDTO{
		{Nama: "Pagi", JamMulai: "08:00", JamSelesai: "16:00", Deskripsi: &pagi, Aktif: true},
		{Nama: "Sore", JamMulai: "16:00", JamSelesai: "23:00", Deskripsi: &sore, Aktif: true},
	}

	for _, tpl := range templates {
		_, err := svc.Seed(tpl)
		if err != nil {
			if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeShiftNameExists {
				continue
			}
			log.Fatalf("failed to seed shift %s: %v", tpl.Nama, err)
		}
		fmt.Println("Seeded shift template:", tpl.Nama)
	}
}

func seedAdmin(db *gorm.DB, cfg *internal.Config) {
	adminEmail := "admin@restoran.local"

	var existing staffing.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		fmt.Println("Admin user already exists:", adminEmail)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to check admin user: %v", err)
	}

	var adminRole staffing.Role
	if err := db.Where("nama = ?", "Admin").First(&adminRole).Error; err != nil {
		log.Fatalf("admin role missing, seed roles first: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := staffing.User{
		Nama:     "Administrator",
		Email:    adminEmail,
		Password: string(hash),
		RoleID:   adminRole.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to insert admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", adminEmail)
}
