package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/Bar-innutshell/Management-Karyawan/internal/auth"
	"github.com/Bar-innutshell/Management-Karyawan/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Auth Handler", func() {
	var (
		mockRepo *MockRepository
		service  *auth.Service
		handler  *auth.Handler
		router   *chi.Mux
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		mockRepo = &MockRepository{
			passwordHash: string(hash),
			userID:       "1",
			authUser: &auth.User{
				ID:       1,
				Email:    "admin@restoran.local",
				Nama:     "Admin",
				RoleName: auth.AdminRoleName,
			},
		}
		tokenGen := auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
		service = auth.NewService(mockRepo, tokenGen, bcrypt.MinCost)

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = auth.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Post("/auth/login", handler.Login)
		router.Post("/auth/refresh", handler.RefreshToken)
		router.Group(func(r chi.Router) {
			r.Use(handler.AuthMiddleware)
			r.Use(handler.RequireAdmin)
			r.Get("/admin-only", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	login := func() string {
		tokens, err := service.Authenticate(auth.LoginDTO{Email: "admin@restoran.local", Password: "rahasia1"})
		Expect(err).NotTo(HaveOccurred())
		return tokens.AccessToken
	}

	Describe("POST /auth/login", func() {
		It("returns a token pair on valid credentials", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"email":"admin@restoran.local","password":"rahasia1"}`))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("accessToken"))
			Expect(rec.Body.String()).To(ContainSubstring("refreshToken"))
		})

		It("returns 401 on a wrong password", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"email":"admin@restoran.local","password":"salah"}`))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 on a missing password", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"email":"admin@restoran.local"}`))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("AuthMiddleware", func() {
		It("rejects a request without a bearer token", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a garbage token", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("lets a valid token through", func() {
			token := login()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("RequireAdmin", func() {
		It("returns 403 when the current role is not Admin", func() {
			token := login()
			// role changed between token issuance and this request
			mockRepo.authUser.RoleName = "Pelayan"

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})
})
