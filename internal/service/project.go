package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/storage"
)

type CreateProjectParams struct {
	WorkspaceID int64
	Name        string
	Image       *storage.Upload
}

type UpdateProjectParams struct {
	Name  *string
	Image *storage.Upload
}

type ProjectService interface {
	Create(ctx context.Context, userID int64, params CreateProjectParams) (*model.Project, error)
	// List applies the visibility rule: admins see every project of the
	// workspace, members only those they are assigned to. Newest first.
	List(ctx context.Context, userID, workspaceID int64) ([]model.Project, error)
	Get(ctx context.Context, userID, projectID int64) (*model.Project, error)
	Update(ctx context.Context, userID, projectID int64, params UpdateProjectParams) (*model.Project, error)
	Delete(ctx context.Context, userID, projectID int64) error
	Members(ctx context.Context, userID, projectID int64) ([]model.MemberProfile, error)
	AddMember(ctx context.Context, userID, projectID, memberID int64) (*model.Project, error)
	RemoveMember(ctx context.Context, userID, projectID, memberID int64) (*model.Project, error)
}

type projectService struct {
	stores  StoreProvider
	tx      TxRunner
	storage storage.Service
}

func NewProjectService(stores StoreProvider, tx TxRunner, files storage.Service) ProjectService {
	return &projectService{stores: stores, tx: tx, storage: files}
}

// Create assigns the creator to the new project so it stays visible to them.
func (s *projectService) Create(ctx context.Context, userID int64, params CreateProjectParams) (*model.Project, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, validationf("name is required")
	}

	member, err := ResolveMember(ctx, s.stores.Members(), params.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}

	imageURL, err := saveImage(ctx, s.storage, params.WorkspaceID, params.Image)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:          id.New(),
		WorkspaceID: params.WorkspaceID,
		Name:        name,
		ImageURL:    imageURL,
		CreatedBy:   member.ID,
		AssigneeIDs: []int64{member.ID},
	}
	if err := s.stores.Projects().Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	}), "project created", "member_id", member.ID)
	return project, nil
}

func (s *projectService) List(ctx context.Context, userID, workspaceID int64) ([]model.Project, error) {
	member, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID)
	if err != nil {
		return nil, err
	}
	return visibleProjects(ctx, s.stores, member)
}

func visibleProjects(ctx context.Context, stores StoreProvider, member *model.Member) ([]model.Project, error) {
	var (
		projects []model.Project
		err      error
	)
	if member.IsAdmin() {
		projects, err = stores.Projects().ListByWorkspace(ctx, member.WorkspaceID)
	} else {
		projects, err = stores.Projects().ListByAssignee(ctx, member.WorkspaceID, member.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, userID, projectID int64) (*model.Project, error) {
	project, _, err := resolveProject(ctx, s.stores, projectID, userID)
	return project, err
}

func (s *projectService) Update(ctx context.Context, userID, projectID int64, params UpdateProjectParams) (*model.Project, error) {
	project, _, err := resolveProject(ctx, s.stores, projectID, userID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, validationf("name must not be empty")
		}
		project.Name = name
	}
	if params.Image != nil {
		imageURL, err := saveImage(ctx, s.storage, project.WorkspaceID, params.Image)
		if err != nil {
			return nil, err
		}
		project.ImageURL = imageURL
	}

	if err := s.stores.Projects().Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return project, nil
}

// Delete removes the project; its tasks and their comments go with it.
func (s *projectService) Delete(ctx context.Context, userID, projectID int64) error {
	project, member, err := resolveProject(ctx, s.stores, projectID, userID)
	if err != nil {
		return err
	}
	if err := requireAdmin(member); err != nil {
		return err
	}
	if err := s.stores.Projects().Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	}), "project deleted", "member_id", member.ID)
	return nil
}

func (s *projectService) Members(ctx context.Context, userID, projectID int64) ([]model.MemberProfile, error) {
	project, _, err := resolveProject(ctx, s.stores, projectID, userID)
	if err != nil {
		return nil, err
	}
	members, err := s.stores.Members().ListByIDs(ctx, project.AssigneeIDs)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}
	return resolveProfiles(ctx, s.stores.Users(), members)
}

func (s *projectService) AddMember(ctx context.Context, userID, projectID, memberID int64) (*model.Project, error) {
	if memberID == 0 {
		return nil, validationf("member is required")
	}
	return s.editAssignees(ctx, userID, projectID, func(project *model.Project, stores StoreProvider) ([]int64, error) {
		target, err := stores.Members().GetByID(ctx, memberID)
		if err != nil {
			return nil, lookupErr(err, "member")
		}
		if target.WorkspaceID != project.WorkspaceID {
			return nil, validationf("member does not belong to the project's workspace")
		}
		if project.HasAssignee(memberID) {
			return project.AssigneeIDs, nil
		}
		return append(slices.Clone(project.AssigneeIDs), memberID), nil
	})
}

func (s *projectService) RemoveMember(ctx context.Context, userID, projectID, memberID int64) (*model.Project, error) {
	if memberID == 0 {
		return nil, validationf("member is required")
	}
	return s.editAssignees(ctx, userID, projectID, func(project *model.Project, _ StoreProvider) ([]int64, error) {
		if memberID == project.CreatedBy {
			return nil, conflictf("cannot remove the project creator")
		}
		return slices.DeleteFunc(slices.Clone(project.AssigneeIDs), func(assignee int64) bool {
			return assignee == memberID
		}), nil
	})
}

// editAssignees runs an admin-only read-modify-write of the assignee list
// under the project row lock.
func (s *projectService) editAssignees(
	ctx context.Context,
	userID, projectID int64,
	edit func(project *model.Project, stores StoreProvider) ([]int64, error),
) (*model.Project, error) {
	var updated *model.Project
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Projects().Lock(ctx, projectID); err != nil {
			return lookupErr(err, "project")
		}
		project, err := stores.Projects().GetByID(ctx, projectID)
		if err != nil {
			return lookupErr(err, "project")
		}
		caller, err := ResolveMember(ctx, stores.Members(), project.WorkspaceID, userID)
		if err != nil {
			return err
		}
		if err := requireAdmin(caller); err != nil {
			return err
		}

		assignees, err := edit(project, stores)
		if err != nil {
			return err
		}
		if slices.Equal(assignees, project.AssigneeIDs) {
			updated = project
			return nil
		}
		updated, err = stores.Projects().SetAssignees(ctx, project.ID, assignees)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{ProjectID: &projectID}), "project assignees updated",
		"assignee_count", len(updated.AssigneeIDs))
	return updated, nil
}
