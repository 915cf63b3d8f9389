package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/http/handler"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
)

var _ = Describe("ProjectHandler", func() {
	var (
		router    *gin.Engine
		projects  *mockProjectService
		analytics *mockAnalyticsService
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
		projects = &mockProjectService{}
		analytics = &mockAnalyticsService{}
		h := handler.NewProjectHandler(projects, analytics)
		router.GET("/projects", h.List)
		router.GET("/projects/:projectId", h.Get)
		router.POST("/projects/:projectId/members", h.AddMember)
		router.DELETE("/projects/:projectId/members", h.RemoveMember)
		router.GET("/projects/:projectId/analytics", h.Analytics)
	})

	Describe("List", func() {
		It("renders projects with string ids", func() {
			projects.listFn = func(_ context.Context, userID, workspaceID int64) ([]model.Project, error) {
				Expect(userID).To(Equal(testUserID))
				Expect(workspaceID).To(Equal(int64(1)))
				return []model.Project{{ID: 900719925474099301, WorkspaceID: 1, Name: "Apollo", CreatedBy: 7, AssigneeIDs: []int64{7, 8}}}, nil
			}

			w := send(http.MethodGet, "/projects?workspace_id=1", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Documents []map[string]any `json:"documents"`
				Total     int              `json:"total"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Total).To(Equal(1))
			Expect(resp.Documents[0]["id"]).To(Equal("900719925474099301"))
			Expect(resp.Documents[0]["assignee_ids"]).To(Equal([]any{"7", "8"}))
		})

		It("requires workspace_id", func() {
			w := send(http.MethodGet, "/projects", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("returns 403 for a project the caller cannot see", func() {
			projects.getFn = func(context.Context, int64, int64) (*model.Project, error) {
				return nil, service.ErrForbidden
			}

			w := send(http.MethodGet, "/projects/5", "")

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("AddMember", func() {
		It("reads member_id as a string id", func() {
			projects.addMemberFn = func(_ context.Context, _, projectID, memberID int64) (*model.Project, error) {
				Expect(projectID).To(Equal(int64(5)))
				Expect(memberID).To(Equal(int64(12)))
				return &model.Project{ID: projectID, AssigneeIDs: []int64{7, memberID}}, nil
			}

			w := send(http.MethodPost, "/projects/5/members", `{"member_id":"12"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"assignee_ids":["7","12"]`))
		})

		It("requires member_id", func() {
			w := send(http.MethodPost, "/projects/5/members", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a foreign member to 400", func() {
			projects.addMemberFn = func(context.Context, int64, int64, int64) (*model.Project, error) {
				return nil, service.ErrValidation
			}

			w := send(http.MethodPost, "/projects/5/members", `{"member_id":"12"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("RemoveMember", func() {
		It("maps removing the creator to 400", func() {
			projects.removeMemberFn = func(_ context.Context, _, _, memberID int64) (*model.Project, error) {
				Expect(memberID).To(Equal(int64(7)))
				return nil, service.ErrConflict
			}

			w := send(http.MethodDelete, "/projects/5/members?member_id=7", "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Analytics", func() {
		It("flattens the metrics", func() {
			analytics.projectFn = func(_ context.Context, _, projectID int64) (*model.Analytics, error) {
				Expect(projectID).To(Equal(int64(5)))
				return &model.Analytics{
					Tasks:    model.NewMetric(3, 4),
					Assigned: model.NewMetric(3, 0),
					Overdue:  model.NewMetric(0, 0),
				}, nil
			}

			w := send(http.MethodGet, "/projects/5/analytics", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveKeyWithValue("taskCount", BeNumerically("==", 3)))
			Expect(resp).To(HaveKeyWithValue("taskDifference", BeNumerically("==", -1)))
			Expect(resp).To(HaveKeyWithValue("assignedTaskDifference", BeNumerically("==", 3)))
			Expect(resp).To(HaveKey("overdueTaskCount"))
			Expect(resp["trends"]).To(HaveKeyWithValue("tasks", "decrease"))
			Expect(resp["trends"]).To(HaveKeyWithValue("assigned", "increase"))
			Expect(resp["trends"]).To(HaveKeyWithValue("overdue", "decrease"))
		})

		It("maps a non-assignee to 403", func() {
			analytics.projectFn = func(context.Context, int64, int64) (*model.Analytics, error) {
				return nil, service.ErrForbidden
			}

			w := send(http.MethodGet, "/projects/5/analytics", "")

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
