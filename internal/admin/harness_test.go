package admin

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	authdomain "github.com/nexatech/nexatech-web/internal/auth/domain"
	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/auth/repository"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/backend/backendtest"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
	"github.com/nexatech/nexatech-web/internal/upload"
	"github.com/nexatech/nexatech-web/internal/web"
)

type stubUploader struct {
	calls  int
	result upload.Attempt
}

func (s *stubUploader) Upload(context.Context, *multipart.FileHeader) upload.Attempt {
	s.calls++
	return s.result
}

type harness struct {
	t       *testing.T
	fake    *backendtest.Server
	auth    *service.AuthService
	router  *gin.Engine
	uploads *stubUploader
	session *authdomain.Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := backendtest.New(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client := backend.NewClient(fake.URL, 5*time.Second)
	auth := service.NewAuthService(client, repository.NewSessionRepository(rdb, time.Hour))
	sessions := authmw.NewSessions(auth, false)
	copy, err := sitecopy.Load("")
	require.NoError(t, err)

	up := &stubUploader{}
	r := gin.New()
	r.HTMLRender = web.MustNew()
	Register(r.Group("/admin", sessions.Load()), Deps{
		Auth:     auth,
		Sessions: sessions,
		API:      client,
		Uploads:  up,
		Copy:     copy,
	})

	return &harness{t: t, fake: fake, auth: auth, router: r, uploads: up}
}

// login signs in as the fake backend's admin.
func (h *harness) login() *harness {
	h.t.Helper()
	sess, err := h.auth.Login(context.Background(), backendtest.AdminEmail, backendtest.AdminPassword)
	require.NoError(h.t, err)
	h.session = sess
	return h
}

func (h *harness) serve(req *http.Request) *httptest.ResponseRecorder {
	if h.session != nil {
		req.AddCookie(&http.Cookie{Name: authmw.CookieName, Value: h.session.ID})
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) get(path string) *httptest.ResponseRecorder {
	return h.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func (h *harness) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.serve(req)
}

// postMultipart sends form plus one file under fileField.
func (h *harness) postMultipart(path string, form url.Values, fileField string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, vs := range form {
		for _, v := range vs {
			require.NoError(h.t, mw.WriteField(k, v))
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, "shot.png")
		require.NoError(h.t, err)
		_, err = fw.Write(data)
		require.NoError(h.t, err)
	}
	require.NoError(h.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return h.serve(req)
}
