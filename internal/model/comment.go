package model

import "time"

const MaxCommentLength = 2048

type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	Creator   int64     `json:"creator"`
	Comment   string    `json:"comment"`
	FileID    *int64    `json:"file_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentView is a comment with its creator and attachment resolved.
type CommentView struct {
	Comment
	CreatorName  string      `json:"creator_name"`
	CreatorEmail string      `json:"creator_email,omitempty"`
	Document     *Attachment `json:"document,omitempty"`
}

// CommentEditPolicy decides who may edit or delete a comment.
type CommentEditPolicy string

const (
	// CommentPolicyCreatorAndAdmin allows only admins editing their own comments.
	CommentPolicyCreatorAndAdmin CommentEditPolicy = "creator_and_admin"
	CommentPolicyCreatorOrAdmin  CommentEditPolicy = "creator_or_admin"
	CommentPolicyCreator         CommentEditPolicy = "creator"
)

func ParseCommentEditPolicy(s string) (CommentEditPolicy, bool) {
	switch p := CommentEditPolicy(s); p {
	case CommentPolicyCreatorAndAdmin, CommentPolicyCreatorOrAdmin, CommentPolicyCreator:
		return p, true
	}
	return "", false
}

// Allows reports whether caller may mutate c under the policy.
func (p CommentEditPolicy) Allows(caller *Member, c *Comment) bool {
	if caller == nil || c == nil {
		return false
	}
	isCreator := caller.ID == c.Creator
	switch p {
	case CommentPolicyCreatorOrAdmin:
		return isCreator || caller.IsAdmin()
	case CommentPolicyCreator:
		return isCreator
	default:
		return isCreator && caller.IsAdmin()
	}
}
