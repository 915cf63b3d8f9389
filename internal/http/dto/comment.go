package dto

import (
	"time"

	"basegraph.app/planboard/internal/model"
)

type ListCommentsQuery struct {
	TaskID int64 `form:"task_id" binding:"required"`
}

type DocumentResponse struct {
	ID          int64  `json:"id,string"`
	BucketID    string `json:"bucket_id"`
	Name        string `json:"name"`
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

type CommentResponse struct {
	ID           int64             `json:"id,string"`
	TaskID       int64             `json:"task_id,string"`
	Creator      int64             `json:"creator,string"`
	CreatorName  string            `json:"creator_name"`
	CreatorEmail string            `json:"creator_email,omitempty"`
	Comment      string            `json:"comment"`
	Document     *DocumentResponse `json:"document,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func ToCommentResponse(v model.CommentView) CommentResponse {
	resp := CommentResponse{
		ID:           v.ID,
		TaskID:       v.TaskID,
		Creator:      v.Creator,
		CreatorName:  v.CreatorName,
		CreatorEmail: v.CreatorEmail,
		Comment:      v.Comment.Comment,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if d := v.Document; d != nil {
		resp.Document = &DocumentResponse{
			ID:          d.ID,
			BucketID:    d.BucketID,
			Name:        d.Name,
			MimeType:    d.MimeType,
			Size:        d.Size,
			DownloadURL: d.DownloadURL,
		}
	}
	return resp
}
