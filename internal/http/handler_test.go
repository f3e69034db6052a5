package http

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-service.com/todo-service/internal/classifier"
	"todo-service.com/todo-service/internal/constants"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
	"todo-service.com/todo-service/internal/services"
)

type wordClassifier struct{}

func (wordClassifier) Classify(_ context.Context, text string) constants.Category {
	if strings.Contains(strings.ToLower(text), "meeting") {
		return constants.CategoryWork
	}
	return constants.CategoryGeneral
}

var _ classifier.Classifier = wordClassifier{}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Assignee{}, &model.Todo{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestServer(t *testing.T) *echo.Echo {
	store := repository.NewStore(setupTestDB(t))
	now := func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	h := NewHandler(
		services.NewTodoService(store, wordClassifier{}, now),
		services.NewAssigneeService(store),
	)

	e := echo.New()
	Register(e, h, RouteOptions{AllowOrigins: []string{"http://localhost:3000"}})
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createAssignee(t *testing.T, e *echo.Echo, name string) model.Assignee {
	rec := do(e, http.MethodPost, "/api/v1/assignees",
		`{"name":"`+name+`","prename":"Max","email":"`+strings.ToLower(name)+`@uni-stuttgart.de"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Assignee](t, rec)
}

func TestTodoLifecycleOverHTTP(t *testing.T) {
	e := newTestServer(t)
	a := createAssignee(t, e, "Mustermann")

	rec := do(e, http.MethodPost, "/api/v1/todos",
		`{"title":"Team meeting","priority":"HIGH","dueDate":"2026-03-12","assigneeIdList":[`+itoa(a.ID)+`]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "work", created["category"])
	assert.Equal(t, "2026-03-10", created["createdDate"])
	assert.Nil(t, created["finishedDate"])
	assert.Len(t, created["assigneeList"], 1)
	id := itoa(uint(created["id"].(float64)))

	rec = do(e, http.MethodGet, "/api/v1/todos/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/todos/"+id, `{"description":"bring coffee","assigneeIdList":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Todo](t, rec)
	assert.Equal(t, "bring coffee", updated.Description)
	assert.Equal(t, "Team meeting", updated.Title)
	assert.Empty(t, updated.Assignees)

	rec = do(e, http.MethodPut, "/api/v1/todos/"+id+"/finish", "")
	require.Equal(t, http.StatusOK, rec.Code)
	finished := decode[model.Todo](t, rec)
	assert.True(t, finished.Finished)
	require.NotNil(t, finished.FinishedDate)
	assert.Equal(t, "2026-03-10", finished.FinishedDate.String())

	rec = do(e, http.MethodGet, "/api/v1/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Todo](t, rec), 1)

	rec = do(e, http.MethodDelete, "/api/v1/todos/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodGet, "/api/v1/todos/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTodoErrors(t *testing.T) {
	e := newTestServer(t)
	a := createAssignee(t, e, "Mustermann")

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"blank title", `{"title":" ","priority":"LOW","dueDate":"2026-03-12"}`},
		{"due today", `{"title":"x","priority":"LOW","dueDate":"2026-03-10"}`},
		{"bad priority", `{"title":"x","priority":"SOON","dueDate":"2026-03-12"}`},
		{"wrong type", `{"title":42,"priority":"LOW","dueDate":"2026-03-12"}`},
		{"duplicate assignees", `{"title":"x","priority":"LOW","dueDate":"2026-03-12","assigneeIdList":[` + itoa(a.ID) + `,` + itoa(a.ID) + `]}`},
		{"unknown assignee", `{"title":"x","priority":"LOW","dueDate":"2026-03-12","assigneeIdList":[999]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/todos", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateTodoErrors(t *testing.T) {
	e := newTestServer(t)
	a := createAssignee(t, e, "Mustermann")

	rec := do(e, http.MethodPost, "/api/v1/todos", `{"title":"x","priority":"LOW","dueDate":"2026-03-12"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := itoa(decode[model.Todo](t, rec).ID)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPut, "/api/v1/todos/999", `{"title":" "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPut, "/api/v1/todos/abc", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPut, "/api/v1/todos/"+id, `{"title":" "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPut, "/api/v1/todos/"+id,
		`{"assigneeIdList":[`+itoa(a.ID)+`,`+itoa(a.ID)+`]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPut, "/api/v1/todos/"+id, `{"category":"hobby"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPut, "/api/v1/todos/999/finish", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/api/v1/todos/999", "").Code)
}

func TestAssigneeEndpoints(t *testing.T) {
	e := newTestServer(t)
	a := createAssignee(t, e, "Mustermann")
	path := "/api/v1/assignees/" + itoa(a.ID)

	rec := do(e, http.MethodPost, "/api/v1/assignees", `{"name":"X","prename":"Y","email":"x@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, path, `{"name":" Musterfrau ","prename":"Erika","email":"erika@stud.uni-stuttgart.de"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Musterfrau", decode[model.Assignee](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPut, "/api/v1/assignees/999", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPut, path, `{"name":"A","prename":"B"}`).Code)

	rec = do(e, http.MethodGet, "/api/v1/assignees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Assignee](t, rec), 1)

	rec = do(e, http.MethodPost, "/api/v1/todos",
		`{"title":"x","priority":"LOW","dueDate":"2026-03-12","assigneeIdList":["`+itoa(a.ID)+`"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	todoID := itoa(decode[model.Todo](t, rec).ID)

	assert.Equal(t, http.StatusOK, do(e, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, path, "").Code)

	rec = do(e, http.MethodGet, "/api/v1/todos/"+todoID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[model.Todo](t, rec).Assignees)
}

func TestClassifyEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/todos/classify", `{"title":"Weekly meeting"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"category":"work","title":"Weekly meeting"}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/v1/todos/classify", `{"title":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadTodosCSV(t *testing.T) {
	e := newTestServer(t)
	a := createAssignee(t, e, "Mustermann")

	for _, body := range []string{
		`{"title":"Plan meeting","priority":"MEDIUM","dueDate":"2026-03-20","assigneeIdList":[` + itoa(a.ID) + `]}`,
		`{"title":"Water plants","priority":"LOW","dueDate":"2026-03-11","finished":true}`,
	} {
		require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/v1/todos", body).Code)
	}

	rec := do(e, http.MethodGet, "/api/v1/csv-downloads/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv"))
	assert.Equal(t, `attachment; filename="todos.csv"`, rec.Header().Get(echo.HeaderContentDisposition))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Max Mustermann", records[1][4])
	assert.Equal(t, "", records[1][7])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "2026-03-10", records[2][7])
}

func TestCORSPreflight(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/todos", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
