package service_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
	"basegraph.app/planboard/internal/storage"
)

var _ = Describe("ProjectService", func() {
	var (
		ctx    context.Context
		db     *fakeDB
		svc    service.ProjectService
		alice  model.User
		bob    model.User
		ws     model.Workspace
		admin  model.Member
		member model.Member
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newFakeDB()
		svc = service.NewProjectService(db, txOver(db), newMockStorage())
		alice = db.addUser("Alice")
		bob = db.addUser("Bob")
		ws = db.addWorkspace(alice)
		admin = db.addMember(ws, alice, model.RoleAdmin)
		member = db.addMember(ws, bob, model.RoleMember)
	})

	Describe("Create", func() {
		It("assigns the creator", func() {
			project, err := svc.Create(ctx, bob.ID, service.CreateProjectParams{WorkspaceID: ws.ID, Name: "  Launch  "})

			Expect(err).NotTo(HaveOccurred())
			Expect(project.Name).To(Equal("Launch"))
			Expect(project.CreatedBy).To(Equal(member.ID))
			Expect(project.AssigneeIDs).To(ConsistOf(member.ID))
			Expect(project.ImageURL).To(BeNil())
		})

		It("stores the image and records its download url", func() {
			project, err := svc.Create(ctx, alice.ID, service.CreateProjectParams{
				WorkspaceID: ws.ID,
				Name:        "Launch",
				Image:       &storage.Upload{Name: "logo.png", ContentType: "image/png", Body: strings.NewReader("png")},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(project.ImageURL).NotTo(BeNil())
			Expect(*project.ImageURL).To(HavePrefix("http://files.test/storage/buckets/images/files/"))
		})

		It("requires a name", func() {
			_, err := svc.Create(ctx, alice.ID, service.CreateProjectParams{WorkspaceID: ws.ID, Name: " "})
			Expect(err).To(MatchError(service.ErrValidation))
		})

		It("requires membership", func() {
			_, err := svc.Create(ctx, db.addUser("Mallory").ID, service.CreateProjectParams{WorkspaceID: ws.ID, Name: "X"})
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("visibility", func() {
		It("shows a project to a member only after they are added", func() {
			project, err := svc.Create(ctx, alice.ID, service.CreateProjectParams{WorkspaceID: ws.ID, Name: "Secret"})
			Expect(err).NotTo(HaveOccurred())

			visible, err := svc.List(ctx, bob.ID, ws.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(BeEmpty())

			_, err = svc.Get(ctx, bob.ID, project.ID)
			Expect(err).To(MatchError(service.ErrForbidden))

			_, err = svc.AddMember(ctx, alice.ID, project.ID, member.ID)
			Expect(err).NotTo(HaveOccurred())

			visible, err = svc.List(ctx, bob.ID, ws.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(HaveLen(1))
			Expect(visible[0].ID).To(Equal(project.ID))

			got, err := svc.Get(ctx, bob.ID, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Secret"))
		})

		It("shows every project to an admin", func() {
			db.addProject(ws, member)
			db.addProject(ws, member)

			visible, err := svc.List(ctx, alice.ID, ws.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(HaveLen(2))
		})
	})

	Describe("assignees", func() {
		var project model.Project

		BeforeEach(func() {
			project = db.addProject(ws, admin)
		})

		It("adds a member once", func() {
			_, err := svc.AddMember(ctx, alice.ID, project.ID, member.ID)
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.AddMember(ctx, alice.ID, project.ID, member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.AssigneeIDs).To(Equal([]int64{admin.ID, member.ID}))
		})

		It("refuses members of another workspace", func() {
			other := db.addWorkspace(bob)
			stranger := db.addMember(other, bob, model.RoleAdmin)

			_, err := svc.AddMember(ctx, alice.ID, project.ID, stranger.ID)

			Expect(err).To(MatchError(service.ErrValidation))
		})

		It("requires an admin", func() {
			_, err := svc.AddMember(ctx, bob.ID, project.ID, member.ID)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})

		It("removes an assignee", func() {
			_, err := svc.AddMember(ctx, alice.ID, project.ID, member.ID)
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.RemoveMember(ctx, alice.ID, project.ID, member.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.AssigneeIDs).To(Equal([]int64{admin.ID}))
		})

		It("never removes the creator", func() {
			_, err := svc.RemoveMember(ctx, alice.ID, project.ID, admin.ID)

			Expect(err).To(MatchError(service.ErrConflict))
			Expect(db.projects[project.ID].AssigneeIDs).To(ContainElement(admin.ID))
		})

		It("resolves member profiles", func() {
			_, err := svc.AddMember(ctx, alice.ID, project.ID, member.ID)
			Expect(err).NotTo(HaveOccurred())

			profiles, err := svc.Members(ctx, alice.ID, project.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(profiles).To(ConsistOf(
				HaveField("Name", "Alice"),
				HaveField("Name", "Bob"),
			))
		})
	})

	Describe("Delete", func() {
		It("removes the project and its tasks", func() {
			project := db.addProject(ws, admin)
			task := db.addTask(model.Task{WorkspaceID: ws.ID, ProjectID: project.ID, Status: model.TaskStatusTodo})

			Expect(svc.Delete(ctx, alice.ID, project.ID)).To(Succeed())

			Expect(db.projects).NotTo(HaveKey(project.ID))
			Expect(db.tasks).NotTo(HaveKey(task.ID))
		})

		It("is admin only", func() {
			project := db.addProject(ws, member)

			Expect(svc.Delete(ctx, bob.ID, project.ID)).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("Update", func() {
		It("renames a visible project", func() {
			project := db.addProject(ws, member)
			name := "Renamed"

			updated, err := svc.Update(ctx, bob.ID, project.ID, service.UpdateProjectParams{Name: &name})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Renamed"))
		})

		It("hides projects the caller is not assigned to", func() {
			project := db.addProject(ws, admin)
			name := "Renamed"

			_, err := svc.Update(ctx, bob.ID, project.ID, service.UpdateProjectParams{Name: &name})

			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})
})
