package service

import (
	"context"
	"errors"
	"fmt"

	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/store"
)

// ResolveMember returns the caller's membership in a workspace. A missing
// membership is ErrUnauthorized; every workspace-scoped operation starts here.
func ResolveMember(ctx context.Context, members store.MemberStore, workspaceID, userID int64) (*model.Member, error) {
	if workspaceID == 0 || userID == 0 {
		return nil, validationf("workspace and user are required")
	}
	member, err := members.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: not a member of this workspace", ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolving member: %w", err)
	}
	return member, nil
}

func requireAdmin(member *model.Member) error {
	if !member.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrUnauthorized)
	}
	return nil
}

// resolveProject loads a project and the caller's membership, and applies
// the project visibility rule.
func resolveProject(ctx context.Context, stores StoreProvider, projectID, userID int64) (*model.Project, *model.Member, error) {
	project, err := stores.Projects().GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, lookupErr(err, "project")
	}
	member, err := ResolveMember(ctx, stores.Members(), project.WorkspaceID, userID)
	if err != nil {
		return nil, nil, err
	}
	if !project.CanAccess(member) {
		return nil, nil, ErrForbidden
	}
	return project, member, nil
}

// resolveProfiles batches the identity lookup for a set of members.
func resolveProfiles(ctx context.Context, users store.UserStore, members []model.Member) ([]model.MemberProfile, error) {
	userIDs := make([]int64, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	found, err := users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	byID := make(map[int64]model.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	profiles := make([]model.MemberProfile, 0, len(members))
	for _, m := range members {
		p := model.MemberProfile{Member: m}
		if u, ok := byID[m.UserID]; ok {
			p.Name = u.Name
			p.Email = u.Email
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
