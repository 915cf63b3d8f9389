package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/http/handler"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
)

var _ = Describe("CommentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCommentService
	)

	form := func(values map[string]string, file string) (io.Reader, string) {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		for k, v := range values {
			Expect(mw.WriteField(k, v)).To(Succeed())
		}
		if file != "" {
			fw, err := mw.CreateFormFile("document", "notes.txt")
			Expect(err).NotTo(HaveOccurred())
			_, err = fw.Write([]byte(file))
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(mw.Close()).To(Succeed())
		return body, mw.FormDataContentType()
	}

	post := func(values map[string]string, file string) *httptest.ResponseRecorder {
		body, contentType := form(values, file)
		req := httptest.NewRequest(http.MethodPost, "/comments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.Use(asUser())
		svc = &mockCommentService{}
		h := handler.NewCommentHandler(svc)
		router.GET("/comments", h.List)
		router.POST("/comments", h.Create)
		router.PATCH("/comments/:commentId", h.Update)
		router.DELETE("/comments/:commentId", h.Delete)
	})

	Describe("Create", func() {
		It("passes the form and document to the service", func() {
			svc.createFn = func(_ context.Context, userID int64, params service.CreateCommentParams) (*model.CommentView, error) {
				Expect(userID).To(Equal(testUserID))
				Expect(params.TaskID).To(Equal(int64(11)))
				Expect(params.WorkspaceID).To(Equal(int64(22)))
				Expect(params.Comment).To(Equal("hello"))
				Expect(params.Document).NotTo(BeNil())
				Expect(params.Document.Name).To(Equal("notes.txt"))
				data, err := io.ReadAll(params.Document.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(data)).To(Equal("file body"))

				fileID := int64(33)
				return &model.CommentView{
					Comment:     model.Comment{ID: 44, TaskID: 11, Creator: 55, Comment: "hello", FileID: &fileID},
					CreatorName: "Tester",
					Document: &model.Attachment{
						StorageFile: model.StorageFile{ID: 33, BucketID: "documents", Name: "notes.txt"},
						DownloadURL: "http://files.test/storage/buckets/documents/files/33/download?project=p",
					},
				}, nil
			}

			w := post(map[string]string{"task_id": "11", "workspace_id": "22", "comment": "hello"}, "file body")

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("44"))
			Expect(resp["creator_name"]).To(Equal("Tester"))
			Expect(resp["document"]).To(HaveKeyWithValue("download_url", ContainSubstring("/files/33/download")))
		})

		It("accepts a comment without a document", func() {
			svc.createFn = func(_ context.Context, _ int64, params service.CreateCommentParams) (*model.CommentView, error) {
				Expect(params.Document).To(BeNil())
				return &model.CommentView{Comment: model.Comment{ID: 1, Comment: params.Comment}}, nil
			}

			w := post(map[string]string{"task_id": "11", "workspace_id": "22", "comment": "plain"}, "")

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		DescribeTable("reports each missing field with 400",
			func(values map[string]string, message string) {
				svc.createFn = func(context.Context, int64, service.CreateCommentParams) (*model.CommentView, error) {
					Fail("service must not be called")
					return nil, nil
				}

				w := post(values, "")

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(message))
			},
			Entry("task_id", map[string]string{"workspace_id": "22", "comment": "x"}, "task_id is required"),
			Entry("workspace_id", map[string]string{"task_id": "11", "comment": "x"}, "workspace_id is required"),
			Entry("comment", map[string]string{"task_id": "11", "workspace_id": "22"}, "comment is required"),
		)

		It("also reads urlencoded forms", func() {
			svc.createFn = func(_ context.Context, _ int64, params service.CreateCommentParams) (*model.CommentView, error) {
				return &model.CommentView{Comment: model.Comment{ID: 1, Comment: params.Comment}}, nil
			}
			values := url.Values{"task_id": {"11"}, "workspace_id": {"22"}, "comment": {"hi"}}
			req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(values.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("maps a policy rejection to 401", func() {
			svc.createFn = func(context.Context, int64, service.CreateCommentParams) (*model.CommentView, error) {
				return nil, service.ErrUnauthorized
			}

			w := post(map[string]string{"task_id": "11", "workspace_id": "22", "comment": "x"}, "")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("List", func() {
		It("requires task_id", func() {
			req := httptest.NewRequest(http.MethodGet, "/comments", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists comments", func() {
			svc.listFn = func(_ context.Context, _, taskID int64) ([]model.CommentView, error) {
				return []model.CommentView{
					{Comment: model.Comment{ID: 2, TaskID: taskID, Comment: "new"}},
					{Comment: model.Comment{ID: 1, TaskID: taskID, Comment: "old"}},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/comments?task_id=11", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Documents []map[string]any `json:"documents"`
				Total     int              `json:"total"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Total).To(Equal(2))
			Expect(resp.Documents[0]["comment"]).To(Equal("new"))
			Expect(resp.Documents[0]["task_id"]).To(Equal("11"))
		})
	})

	Describe("Update", func() {
		It("requires a change", func() {
			body, contentType := form(map[string]string{}, "")
			req := httptest.NewRequest(http.MethodPatch, "/comments/5", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("sends the new text", func() {
			svc.updateFn = func(_ context.Context, _, commentID int64, params service.UpdateCommentParams) (*model.CommentView, error) {
				Expect(params.Comment).NotTo(BeNil())
				return &model.CommentView{Comment: model.Comment{ID: commentID, Comment: *params.Comment}}, nil
			}
			body, contentType := form(map[string]string{"comment": "edited"}, "")
			req := httptest.NewRequest(http.MethodPatch, "/comments/5", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"comment":"edited"`))
		})
	})
})
