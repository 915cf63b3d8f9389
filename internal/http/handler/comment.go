package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/http/dto"
	"basegraph.app/planboard/internal/service"
)

type CommentHandler struct {
	comments service.CommentService
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) List(c *gin.Context) {
	var q dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "task_id is required")
		return
	}

	views, err := h.comments.List(c.Request.Context(), userID(c), q.TaskID)
	if err != nil {
		respondError(c, err, "failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.Map(views, dto.ToCommentResponse))
}

// Create takes a multipart form: task_id, workspace_id, comment and an
// optional document file. Each missing field is reported by name.
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, err := id.Parse(c.PostForm("task_id"))
	if err != nil {
		badRequest(c, "task_id is required")
		return
	}
	workspaceID, err := id.Parse(c.PostForm("workspace_id"))
	if err != nil {
		badRequest(c, "workspace_id is required")
		return
	}
	text, ok := c.GetPostForm("comment")
	if !ok {
		badRequest(c, "comment is required")
		return
	}
	document, closer, err := formUpload(c, "document")
	if err != nil {
		badRequest(c, "invalid document upload")
		return
	}
	defer closer.Close()

	view, err := h.comments.Create(c.Request.Context(), userID(c), service.CreateCommentParams{
		TaskID:      taskID,
		WorkspaceID: workspaceID,
		Comment:     text,
		Document:    document,
	})
	if err != nil {
		respondError(c, err, "failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(*view))
}

func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var params service.UpdateCommentParams
	if text, ok := c.GetPostForm("comment"); ok {
		params.Comment = &text
	}
	document, closer, err := formUpload(c, "document")
	if err != nil {
		badRequest(c, "invalid document upload")
		return
	}
	defer closer.Close()
	params.Document = document

	if params.Comment == nil && params.Document == nil {
		badRequest(c, "comment or document is required")
		return
	}

	view, err := h.comments.Update(c.Request.Context(), userID(c), commentID, params)
	if err != nil {
		respondError(c, err, "failed to update comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(*view))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), userID(c), commentID); err != nil {
		respondError(c, err, "failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": formatID(commentID)})
}
