package user_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/internal/auth"
	"github.com/Bar-innutshell/Management-Karyawan/internal/core/datamodel/staffing"
	"github.com/Bar-innutshell/Management-Karyawan/internal/transport"
	"github.com/Bar-innutshell/Management-Karyawan/internal/user"
	userPostgres "github.com/Bar-innutshell/Management-Karyawan/internal/user/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("User Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		// a second pool connection would see a different in-memory database
		sqlDB.SetMaxOpenConns(1)

		err = db.AutoMigrate(
			&staffing.Role{},
			&staffing.Shift{},
			&staffing.User{},
			&staffing.Absensi{},
			&staffing.SlipGaji{},
			&staffing.Jadwal{},
			&staffing.LaporanPemasukan{},
		)
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&staffing.Role{ID: 1, Nama: "Admin", GajiPokokBulanan: 5000000}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&staffing.Role{ID: 2, Nama: "Pelayan", GajiPokokBulanan: 2500000}).Error).NotTo(HaveOccurred())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := userPostgres.NewUserRepository(db, internal.SearchModeDefault)
		hasher := auth.NewService(nil, nil, bcrypt.MinCost)
		service := user.NewService(repo, hasher, logger)
		handler := user.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Get("/users", handler.GetUsers)
		router.Post("/users", handler.CreateUser)
		router.Get("/users/{id}", handler.GetUser)
		router.Put("/users/{id}", handler.UpdateUser)
		router.Delete("/users/{id}", handler.DeleteUser)
	})

	doJSON := func(method, target, body string) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body == "" {
			reader = bytes.NewReader(nil)
		} else {
			reader = bytes.NewReader([]byte(body))
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return body
	}

	createUser := func(payload string) int64 {
		rec := doJSON(http.MethodPost, "/users", payload)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		data := decodeBody(rec)["data"].(map[string]interface{})
		return int64(data["id"].(float64))
	}

	Describe("POST /users", func() {
		It("creates a user and never returns the password", func() {
			rec := doJSON(http.MethodPost, "/users",
				`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2,"gajiPerJam":20000,"shift":"Pagi"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			body := decodeBody(rec)
			Expect(body["message"]).To(Equal("user created"))

			data := body["data"].(map[string]interface{})
			Expect(data["email"]).To(Equal("ani@restoran.local"))
			Expect(data["shift"]).To(Equal("Pagi"))
			Expect(data["gajiPerJam"]).To(Equal(20000.0))
			Expect(data["role"].(map[string]interface{})["nama"]).To(Equal("Pelayan"))
			Expect(data).NotTo(HaveKey("password"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("rahasia1"))
		})

		It("stores a bcrypt hash, not the plaintext", func() {
			id := createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2}`)

			var stored staffing.User
			Expect(db.First(&stored, id).Error).NotTo(HaveOccurred())
			Expect(stored.Password).NotTo(Equal("rahasia1"))
			Expect(bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("rahasia1"))).To(Succeed())
		})

		It("rejects a duplicate email with 409", func() {
			createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2}`)

			rec := doJSON(http.MethodPost, "/users",
				`{"nama":"Other","email":"ani@restoran.local","password":"rahasia1","roleId":2}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("rejects an unknown role with 404", func() {
			rec := doJSON(http.MethodPost, "/users",
				`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":42}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a bad shift label with 400", func() {
			rec := doJSON(http.MethodPost, "/users",
				`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2,"shift":"Malam"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed JSON with 400", func() {
			rec := doJSON(http.MethodPost, "/users", `{"nama":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /users", func() {
		BeforeEach(func() {
			createUser(`{"nama":"Citra","email":"citra@restoran.local","password":"rahasia1","roleId":2}`)
			createUser(`{"nama":"Budi","email":"budi@restoran.local","password":"rahasia1","roleId":2}`)
			createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":1}`)
		})

		It("lists users ordered by role then name with counts", func() {
			rec := doJSON(http.MethodGet, "/users", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["total"]).To(Equal(3.0))

			items := body["data"].([]interface{})
			names := []string{}
			for _, it := range items {
				row := it.(map[string]interface{})
				names = append(names, row["nama"].(string))
				Expect(row).To(HaveKey("_count"))
				Expect(row).NotTo(HaveKey("password"))
			}
			Expect(names).To(Equal([]string{"Ani", "Budi", "Citra"}))
		})

		It("filters by role", func() {
			rec := doJSON(http.MethodGet, "/users?roleId=1", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			items := decodeBody(rec)["data"].([]interface{})
			Expect(items).To(HaveLen(1))
			Expect(items[0].(map[string]interface{})["nama"]).To(Equal("Ani"))
		})

		It("searches by name fragment", func() {
			rec := doJSON(http.MethodGet, "/users?search=Bud", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			items := decodeBody(rec)["data"].([]interface{})
			Expect(items).To(HaveLen(1))
			Expect(items[0].(map[string]interface{})["email"]).To(Equal("budi@restoran.local"))
		})

		It("rejects a non-numeric roleId", func() {
			rec := doJSON(http.MethodGet, "/users?roleId=abc", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /users/{id}", func() {
		It("returns the detail view with the role description", func() {
			id := createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":1}`)

			rec := doJSON(http.MethodGet, "/users/"+strconv.FormatInt(id, 10), "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["email"]).To(Equal("ani@restoran.local"))
			Expect(data["role"].(map[string]interface{})["nama"]).To(Equal("Admin"))

			counts := data["_count"].(map[string]interface{})
			Expect(counts["absensi"]).To(Equal(0.0))
			Expect(counts["laporanPemasukan"]).To(Equal(0.0))
		})

		It("returns 404 for an unknown id", func() {
			rec := doJSON(http.MethodGet, "/users/999", "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a non-numeric id", func() {
			rec := doJSON(http.MethodGet, "/users/abc", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /users/{id}", func() {
		var id int64

		BeforeEach(func() {
			id = createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2,"shift":"Pagi"}`)
		})

		It("treats an empty payload as a successful no-op", func() {
			rec := doJSON(http.MethodPut, "/users/"+strconv.FormatInt(id, 10), `{}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["nama"]).To(Equal("Ani"))
			Expect(data["email"]).To(Equal("ani@restoran.local"))
			Expect(data["shift"]).To(Equal("Pagi"))
		})

		It("updates only the provided fields", func() {
			rec := doJSON(http.MethodPut, "/users/"+strconv.FormatInt(id, 10), `{"nama":"Ani Baru"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["nama"]).To(Equal("Ani Baru"))
			Expect(data["shift"]).To(Equal("Pagi"))
		})

		It("unassigns the shift on an explicit null", func() {
			rec := doJSON(http.MethodPut, "/users/"+strconv.FormatInt(id, 10), `{"shift":null}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["shift"]).To(BeNil())

			var stored staffing.User
			Expect(db.First(&stored, id).Error).NotTo(HaveOccurred())
			Expect(stored.Shift).To(BeNil())
		})

		It("conflicts when the email belongs to another user", func() {
			createUser(`{"nama":"Budi","email":"budi@restoran.local","password":"rahasia1","roleId":2}`)

			rec := doJSON(http.MethodPut, "/users/"+strconv.FormatInt(id, 10), `{"email":"budi@restoran.local"}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("returns 404 for an unknown user", func() {
			rec := doJSON(http.MethodPut, "/users/999", `{"nama":"X"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /users/{id}", func() {
		var id int64

		BeforeEach(func() {
			id = createUser(`{"nama":"Ani","email":"ani@restoran.local","password":"rahasia1","roleId":2}`)
		})

		It("deletes a user with no dependents and echoes the identity", func() {
			rec := doJSON(http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decodeBody(rec)["data"].(map[string]interface{})
			Expect(data["nama"]).To(Equal("Ani"))
			Expect(data["email"]).To(Equal("ani@restoran.local"))

			rec = doJSON(http.MethodGet, "/users/"+strconv.FormatInt(id, 10), "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("refuses to delete a user with attendance records", func() {
			Expect(db.Create(&staffing.Absensi{UserID: id, Status: "hadir"}).Error).NotTo(HaveOccurred())
			Expect(db.Create(&staffing.Absensi{UserID: id, Status: "hadir"}).Error).NotTo(HaveOccurred())

			rec := doJSON(http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			body := decodeBody(rec)
			Expect(strings.ToLower(body["message"].(string))).To(ContainSubstring("related data"))

			related := body["relatedData"].(map[string]interface{})
			Expect(related["absensi"]).To(Equal(2.0))
			Expect(related["slipGaji"]).To(Equal(0.0))

			// still there
			rec = doJSON(http.MethodGet, "/users/"+strconv.FormatInt(id, 10), "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 for an unknown user", func() {
			rec := doJSON(http.MethodDelete, "/users/999", "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
