//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	httpadapter "github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/dto"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/handlers"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/store"
	appservice "github.com/zeeshanarif5173/mywms-sub000/internal/app/service"
	"github.com/zeeshanarif5173/mywms-sub000/internal/config"
	"github.com/zeeshanarif5173/mywms-sub000/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	sqlStore, err := store.NewSQLStore(s.DB)
	s.Require().NoError(err)
	listStore := store.NewFallbackStore(sqlStore, store.DefaultSeeds())

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(config.StorageModeMySQL, s.DB)
	taskRepository := store.NewTaskRepository(listStore)
	taskService := appservice.NewTaskService(taskRepository)
	taskHandler := handlers.NewTaskHandler(taskService)
	recordHandler := handlers.NewRecordHandler(appservice.NewRecordService(listStore))
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, recordHandler)

	s.router = router
}

func (s *TasksIntegrationSuite) TestGetTasks_EmptyDatabaseReturnsEmptyList() {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 0)
}

func (s *TasksIntegrationSuite) TestPostTasks_PersistsTaskRow() {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{
		"title":"Restock pantry",
		"department":"Operations",
		"priority":"Medium",
		"createdBy":"mgr-1",
		"createdByName":"Sara",
		"branchId":"1",
		"dueDate":"2026-03-02T09:00:00Z"
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("1", got.ID)
	s.Require().Equal("Open", got.Status)
	s.Require().Len(got.History, 1)

	var payload string
	s.Require().NoError(s.DB.Get(&payload, "SELECT payload FROM record_lists WHERE list_key = ?", "tasks"))
	s.Require().Contains(payload, "Restock pantry")
}

func (s *TasksIntegrationSuite) TestTaskLifecycle_CreateUpdateCommentSweep() {
	create := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{
		"title":"Fix door lock",
		"department":"Maintenance",
		"priority":"High",
		"createdBy":"mgr-1",
		"createdByName":"Sara",
		"branchId":"1",
		"dueDate":"2020-01-01T09:00:00Z",
		"assignedTo":"staff-1",
		"assignedToName":"Mike",
		"fineAmount":50
	}`))
	create.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, create)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	s.Require().Equal("Assigned", task.Status)
	s.Require().Len(task.History, 2)

	comment := httptest.NewRequest(http.MethodPost, "/api/tasks/"+task.ID+"/comments", strings.NewReader(`{
		"comment":"parts ordered",
		"authorId":"u1",
		"authorName":"Alice"
	}`))
	comment.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, comment)
	s.Require().Equal(http.StatusCreated, rec.Code)

	sweep := httptest.NewRequest(http.MethodPost, "/api/tasks/sweep/overdue", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, sweep)
	s.Require().Equal(http.StatusOK, rec.Code)

	var swept []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &swept))
	s.Require().Len(swept, 1)
	s.Require().Equal("Overdue", swept[0].Status)

	fines := httptest.NewRequest(http.MethodPost, "/api/tasks/sweep/fines", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, fines)
	s.Require().Equal(http.StatusOK, rec.Code)

	var applied []dto.FineApplicationItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &applied))
	s.Require().Len(applied, 1)
	s.Require().Equal(task.ID, applied[0].TaskID)
	s.Require().Equal(float64(50), applied[0].FineAmount)

	// Second fine sweep must be a no-op.
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/sweep/fines", nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	var again []dto.FineApplicationItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &again))
	s.Require().Len(again, 0)

	get := httptest.NewRequest(http.MethodGet, "/api/tasks/"+task.ID, nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, get)
	s.Require().Equal(http.StatusOK, rec.Code)

	var reloaded dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reloaded))
	s.Require().True(reloaded.FineApplied)
	s.Require().Len(reloaded.Comments, 1)
}

func (s *TasksIntegrationSuite) TestGetTask_UnknownIDReturnsNotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999999", nil)
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusNotFound, got.ErrDetails.Code)
}

func (s *TasksIntegrationSuite) TestGetBranches_SeedFallbackServesDefaults() {
	req := httptest.NewRequest(http.MethodGet, "/api/branches", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "Downtown Hub")
}
