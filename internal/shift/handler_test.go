package shift_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"github.com/Bar-innutshell/Management-Karyawan/internal/shift"
	shiftPostgres "github.com/Bar-innutshell/Management-Karyawan/internal/shift/postgres"
	"github.com/Bar-innutshell/Management-Karyawan/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Shift Handler", func() {
	var router *chi.Mux

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&staffing.Shift{})).NotTo(HaveOccurred())

		seed := []staffing.Shift{
			{Nama: "Sore", JamMulai: "16:00", JamSelesai: "23:00", Aktif: true},
			{Nama: "Pagi", JamMulai: "08:00", JamSelesai: "16:00", Aktif: true},
			{Nama: "Lembur", JamMulai: "23:00", JamSelesai: "04:00", Aktif: false},
		}
		for i := range seed {
			Expect(db.Create(&seed[i]).Error).NotTo(HaveOccurred())
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := shiftPostgres.NewShiftRepository(db)
		service := shift.NewService(repo, logger)
		handler := shift.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Get("/shifts", handler.GetShifts)
		router.Get("/shifts/{id}", handler.GetShift)
	})

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return body
	}

	Describe("GET /shifts", func() {
		It("returns all shifts ordered by name", func() {
			rec := get("/shifts")
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["total"]).To(Equal(3.0))

			items := body["data"].([]interface{})
			names := []string{}
			for _, it := range items {
				names = append(names, it.(map[string]interface{})["nama"].(string))
			}
			Expect(names).To(Equal([]string{"Lembur", "Pagi", "Sore"}))
		})

		It("returns only active shifts when aktif=true", func() {
			rec := get("/shifts?aktif=true")
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["total"]).To(Equal(2.0))
			for _, it := range body["data"].([]interface{}) {
				Expect(it.(map[string]interface{})["aktif"]).To(Equal(true))
			}
		})

		It("returns only inactive shifts when aktif=false", func() {
			rec := get("/shifts?aktif=false")
			Expect(rec.Code).To(Equal(http.StatusOK))

			items := decodeBody(rec)["data"].([]interface{})
			Expect(items).To(HaveLen(1))
			Expect(items[0].(map[string]interface{})["nama"]).To(Equal("Lembur"))
		})

		It("rejects a non-boolean aktif value", func() {
			rec := get("/shifts?aktif=maybe")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /shifts/{id}", func() {
		It("returns the shift with its time window", func() {
			rec := get("/shifts/2")
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["nama"]).To(Equal("Pagi"))
			Expect(data["jamMulai"]).To(Equal("08:00"))
			Expect(data["jamSelesai"]).To(Equal("16:00"))
		})

		It("returns 404 for an unknown id", func() {
			rec := get("/shifts/999")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a non-numeric id", func() {
			rec := get("/shifts/abc")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
