package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and the full route table for
// one test.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var err error
	config.DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Each :memory: connection is its own database, so pin the pool to one
	sqlDB, err := config.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.DB.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.MenuItem{},
		&models.Offer{},
		&models.PageContent{},
		&models.ContactMessage{},
	))

	config.JWTSecret = []byte("test-secret")
	config.UploadDir = t.TempDir()
	config.MenuUploadMaxBytes = 5 << 20
	config.OfferUploadMaxBytes = 5 << 20

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// seedAdmin inserts an admin account and returns it with a valid token
func seedAdmin(t *testing.T) (models.Admin, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{
		Email:        "admin@eatandout.com",
		PasswordHash: string(hash),
		DOB:          "2000-01-01",
	}
	require.NoError(t, config.DB.Create(&admin).Error)

	token, err := middleware.GenerateToken(&admin)
	require.NoError(t, err)
	return admin, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type formFile struct {
	name string
	mime string
	data []byte
}

// doForm sends a multipart form, the way the admin frontend submits menu and
// offer data
func doForm(t *testing.T, r *gin.Engine, method, path, token string, fields map[string]string, file *formFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+file.name+`"`)
		h.Set("Content-Type", file.mime)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
