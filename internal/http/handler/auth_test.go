package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/http/handler"
	"basegraph.app/planboard/internal/http/middleware"
	"basegraph.app/planboard/internal/model"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		auth   *mockAuthService
	)

	get := func(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		auth = &mockAuthService{}
		h := handler.NewAuthHandler(auth, "http://dashboard.test", false)
		router.GET("/auth/login", h.Login)
		router.GET("/auth/callback", h.Callback)
		router.POST("/auth/logout", h.Logout)
		router.GET("/auth/me", middleware.RequireAuth(auth), h.Me)
	})

	Describe("Me", func() {
		It("rejects requests without a session cookie", func() {
			w := get("/auth/me")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("not authenticated"))
		})

		It("clears an expired session", func() {
			w := get("/auth/me", &http.Cookie{Name: middleware.SessionCookieName, Value: "42"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=;"))
		})

		It("returns 500 when the session store fails", func() {
			auth.validateSessionFn = func(context.Context, int64) (*model.User, error) {
				return nil, errors.New("db down")
			}

			w := get("/auth/me", &http.Cookie{Name: middleware.SessionCookieName, Value: "42"})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})

		It("returns the session's user", func() {
			auth.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, error) {
				Expect(sessionID).To(Equal(int64(42)))
				return &model.User{ID: 7, Name: "Tester", Email: "tester@example.com"}, nil
			}

			w := get("/auth/me", &http.Cookie{Name: middleware.SessionCookieName, Value: "42"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"email":"tester@example.com"`))
		})
	})

	Describe("Login", func() {
		It("redirects with a state cookie", func() {
			w := get("/auth/login")

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(HavePrefix("https://auth.example.com/authorize?state="))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("planboard_oauth_state="))
		})
	})

	Describe("Callback", func() {
		It("rejects a mismatched state", func() {
			w := get("/auth/callback?code=abc&state=forged",
				&http.Cookie{Name: "planboard_oauth_state", Value: "real"})

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(Equal("http://dashboard.test?auth_error=invalid_state"))
		})

		It("reports an invalid code", func() {
			w := get("/auth/callback?code=abc&state=s1",
				&http.Cookie{Name: "planboard_oauth_state", Value: "s1"})

			Expect(w.Header().Get("Location")).To(Equal("http://dashboard.test?auth_error=invalid_code"))
		})
	})
})
