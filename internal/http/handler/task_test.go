package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/http/handler"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
)

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
	)

	send := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.Use(asUser())
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)
		router.GET("/tasks", h.List)
		router.POST("/tasks", h.Create)
		router.POST("/tasks/:taskId/move", h.Move)
	})

	Describe("List", func() {
		It("builds the filter from the query", func() {
			var got model.TaskFilter
			svc.listFn = func(_ context.Context, _ int64, filter model.TaskFilter) ([]model.TaskView, error) {
				got = filter
				return nil, nil
			}

			w := send(http.MethodGet, "/tasks?workspace_id=1&project_id=2&status=TODO&assignee_id=3&due_date=2024-05-20&search=%20docs%20&order=position", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.WorkspaceID).To(Equal(int64(1)))
			Expect(*got.ProjectID).To(Equal(int64(2)))
			Expect(*got.Status).To(Equal(model.TaskStatusTodo))
			Expect(*got.AssigneeID).To(Equal(int64(3)))
			Expect(*got.DueDate).To(BeTemporally("==", time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)))
			Expect(*got.Search).To(Equal("docs"))
			Expect(got.Order).To(Equal(model.TaskOrderPosition))
		})

		It("rejects a malformed due date", func() {
			w := send(http.MethodGet, "/tasks?workspace_id=1&due_date=tomorrow", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an unknown order", func() {
			w := send(http.MethodGet, "/tasks?workspace_id=1&order=random", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Create", func() {
		It("parses string ids", func() {
			svc.createFn = func(_ context.Context, _ int64, params service.CreateTaskParams) (*model.Task, error) {
				Expect(params.AssigneeIDs).To(Equal([]int64{5, 6}))
				return &model.Task{ID: 9, WorkspaceID: params.WorkspaceID, ProjectID: params.ProjectID, Name: params.Name,
					Status: params.Status, AssigneeIDs: params.AssigneeIDs, DueDate: params.DueDate, Position: 1000}, nil
			}

			w := send(http.MethodPost, "/tasks", `{
				"workspace_id": "1",
				"project_id": "2",
				"name": "Write docs",
				"status": "TODO",
				"due_date": "2024-06-01T00:00:00Z",
				"assignee_ids": ["5", "6"]
			}`)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("9"))
			Expect(resp["assignee_ids"]).To(Equal([]any{"5", "6"}))
			Expect(resp["position"]).To(BeNumerically("==", 1000))
		})

		It("requires assignees", func() {
			w := send(http.MethodPost, "/tasks", `{"workspace_id":"1","project_id":"2","name":"x","status":"TODO","due_date":"2024-06-01T00:00:00Z","assignee_ids":[]}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Move", func() {
		It("forwards status and index", func() {
			svc.moveFn = func(_ context.Context, _, taskID int64, status model.TaskStatus, index int) (*model.Task, error) {
				Expect(index).To(Equal(2))
				return &model.Task{ID: taskID, Status: status, Position: 2500}, nil
			}

			w := send(http.MethodPost, "/tasks/8/move", `{"status":"TODO","index":2}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"position":2500`))
		})

		It("accepts index zero", func() {
			svc.moveFn = func(_ context.Context, _, taskID int64, status model.TaskStatus, index int) (*model.Task, error) {
				Expect(index).To(BeZero())
				return &model.Task{ID: taskID, Status: status}, nil
			}

			w := send(http.MethodPost, "/tasks/8/move", `{"status":"DONE","index":0}`)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("rejects a negative index", func() {
			w := send(http.MethodPost, "/tasks/8/move", `{"status":"TODO","index":-1}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps hidden projects to 403", func() {
			svc.moveFn = func(context.Context, int64, int64, model.TaskStatus, int) (*model.Task, error) {
				return nil, service.ErrForbidden
			}

			w := send(http.MethodPost, "/tasks/8/move", `{"status":"TODO","index":1}`)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.String()).To(ContainSubstring("access denied to resource"))
		})
	})
})
