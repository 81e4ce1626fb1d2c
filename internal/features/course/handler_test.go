package course

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestHandler(t *testing.T, defaultMinAge int) (*Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Course{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(db, logger, defaultMinAge), db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return rec
}

func TestCreate_AppliesConfiguredMinAgeDefault(t *testing.T) {
	handler, db := newTestHandler(t, 21)

	rec := postJSON(t, handler.Create, `{"title":"Algorithms","code":"CS201","availableSlots":30}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var crs Course
	if err := db.First(&crs, "code = ?", "CS201").Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crs.MinAge != 21 {
		t.Errorf("expected configured default min age 21, got %d", crs.MinAge)
	}
}

func TestCreate_ExplicitMinAgeOverridesDefault(t *testing.T) {
	handler, db := newTestHandler(t, 21)

	rec := postJSON(t, handler.Create, `{"title":"Intro Logic","code":"PH101","availableSlots":10,"minAge":16}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var crs Course
	if err := db.First(&crs, "code = ?", "PH101").Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crs.MinAge != 16 {
		t.Errorf("expected explicit min age 16, got %d", crs.MinAge)
	}
}

func TestCreate_NormalizesCourseCodes(t *testing.T) {
	handler, db := newTestHandler(t, 18)

	rec := postJSON(t, handler.Create, `{"title":"Algorithms","code":"cs201","availableSlots":5,"prerequisite":"cs101"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var crs Course
	if err := db.First(&crs, "code = ?", "CS201").Error; err != nil {
		t.Fatalf("expected the code to be uppercased: %v", err)
	}
	if crs.Prerequisite != "CS101" {
		t.Errorf("expected normalized prerequisite CS101, got %q", crs.Prerequisite)
	}
}
