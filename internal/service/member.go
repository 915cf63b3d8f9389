package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/model"
)

type MemberService interface {
	// List returns the workspace members with name and email resolved. With a
	// project id it is narrowed to that project's assignees.
	List(ctx context.Context, userID, workspaceID int64, projectID *int64) ([]model.MemberProfile, error)
	// NonProject returns the workspace members not yet assigned to the project.
	NonProject(ctx context.Context, userID, workspaceID, projectID int64) ([]model.MemberProfile, error)
	Delete(ctx context.Context, userID, memberID int64) error
	UpdateRole(ctx context.Context, userID, memberID int64, role model.Role) (*model.Member, error)
}

type memberService struct {
	stores StoreProvider
	tx     TxRunner
}

func NewMemberService(stores StoreProvider, tx TxRunner) MemberService {
	return &memberService{stores: stores, tx: tx}
}

func (s *memberService) List(ctx context.Context, userID, workspaceID int64, projectID *int64) ([]model.MemberProfile, error) {
	caller, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.stores.Members().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	// Admins always see the whole workspace, project or not. Other members
	// only see the assignees of a project they belong to.
	if !caller.IsAdmin() {
		if projectID == nil {
			return []model.MemberProfile{}, nil
		}
		project, _, err := resolveProject(ctx, s.stores, *projectID, userID)
		if err != nil {
			return nil, err
		}
		if project.WorkspaceID != workspaceID {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		members = slices.DeleteFunc(members, func(m model.Member) bool {
			return !project.HasAssignee(m.ID)
		})
	}

	return resolveProfiles(ctx, s.stores.Users(), members)
}

func (s *memberService) NonProject(ctx context.Context, userID, workspaceID, projectID int64) ([]model.MemberProfile, error) {
	if _, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID); err != nil {
		return nil, err
	}

	project, _, err := resolveProject(ctx, s.stores, projectID, userID)
	if err != nil {
		return nil, err
	}
	if project.WorkspaceID != workspaceID {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}

	members, err := s.stores.Members().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	members = slices.DeleteFunc(members, func(m model.Member) bool {
		return project.HasAssignee(m.ID)
	})

	return resolveProfiles(ctx, s.stores.Users(), members)
}

// Delete removes a membership. Admins may remove anyone; other members may
// only leave. The workspace row lock makes the last-member and last-admin
// checks hold against concurrent deletes and role changes.
func (s *memberService) Delete(ctx context.Context, userID, memberID int64) error {
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		target, err := stores.Members().GetByID(ctx, memberID)
		if err != nil {
			return lookupErr(err, "member")
		}
		if err := stores.Workspaces().Lock(ctx, target.WorkspaceID); err != nil {
			return lookupErr(err, "workspace")
		}

		caller, err := ResolveMember(ctx, stores.Members(), target.WorkspaceID, userID)
		if err != nil {
			return err
		}
		if caller.ID != target.ID {
			if err := requireAdmin(caller); err != nil {
				return err
			}
		}

		total, admins, err := stores.Members().CountByRole(ctx, target.WorkspaceID)
		if err != nil {
			return fmt.Errorf("counting members: %w", err)
		}
		if total <= 1 {
			return conflictf("cannot delete the only member")
		}
		if target.IsAdmin() && admins <= 1 {
			return conflictf("cannot delete the last admin")
		}

		return stores.Members().Delete(ctx, target.ID)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{MemberID: &memberID}), "member deleted",
		"user_id", userID)
	return nil
}

func (s *memberService) UpdateRole(ctx context.Context, userID, memberID int64, role model.Role) (*model.Member, error) {
	if !role.Valid() {
		return nil, validationf("unknown role %q", role)
	}

	var updated *model.Member
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		target, err := stores.Members().GetByID(ctx, memberID)
		if err != nil {
			return lookupErr(err, "member")
		}
		if err := stores.Workspaces().Lock(ctx, target.WorkspaceID); err != nil {
			return lookupErr(err, "workspace")
		}

		caller, err := ResolveMember(ctx, stores.Members(), target.WorkspaceID, userID)
		if err != nil {
			return err
		}
		if err := requireAdmin(caller); err != nil {
			return err
		}

		if target.Role == role {
			updated = target
			return nil
		}

		total, admins, err := stores.Members().CountByRole(ctx, target.WorkspaceID)
		if err != nil {
			return fmt.Errorf("counting members: %w", err)
		}
		if total <= 1 {
			return conflictf("cannot downgrade the only member")
		}
		if target.IsAdmin() && admins <= 1 {
			return conflictf("cannot downgrade the last admin")
		}

		updated, err = stores.Members().UpdateRole(ctx, target.ID, role)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{MemberID: &memberID}), "member role updated",
		"user_id", userID,
		"role", role)
	return updated, nil
}
