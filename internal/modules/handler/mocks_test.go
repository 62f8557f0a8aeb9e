package handler

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/modules/service"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthOutput), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthOutput), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, p *service.Principal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, raw string) (*service.Principal, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Principal), args.Error(1)
}

// MockTeamService is a mock implementation of TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) List(ctx context.Context) ([]*model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamService) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamService) ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *MockTeamService) Create(ctx context.Context, t *model.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTeamService) Update(ctx context.Context, id uuid.UUID, t *model.Team) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *MockTeamService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamService) GetCreator(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockTeamService) ListMembers(ctx context.Context, id uuid.UUID) ([]model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamService) AddMembers(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, role string) ([]model.TeamMember, error) {
	args := m.Called(ctx, id, userIDs, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamService) RemoveMember(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context) ([]*model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskService) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskService) Update(ctx context.Context, id uuid.UUID, t *model.Task) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillService is a mock implementation of SkillService
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) List(ctx context.Context) ([]*model.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Skill), args.Error(1)
}

func (m *MockSkillService) ListFor(ctx context.Context, owner repo.SkillOwner) ([]model.Skill, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillService) Add(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error) {
	args := m.Called(ctx, owner, labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillService) Replace(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error) {
	args := m.Called(ctx, owner, labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillService) Remove(ctx context.Context, owner repo.SkillOwner, skillID uuid.UUID) error {
	args := m.Called(ctx, owner, skillID)
	return args.Error(0)
}

func (m *MockSkillService) Clear(ctx context.Context, owner repo.SkillOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Upload(ctx context.Context, taskID uuid.UUID, files []*multipart.FileHeader, description string) ([]*model.Attachment, error) {
	args := m.Called(ctx, taskID, files, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Download(ctx context.Context, id uuid.UUID) (*service.Download, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Download), args.Error(1)
}

func (m *MockAttachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) ListByOwner(ctx context.Context, id uuid.UUID) ([]*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) ListJoined(ctx context.Context, id uuid.UUID) ([]*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, v *model.Project) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockProjectService) Update(ctx context.Context, id uuid.UUID, v *model.Project) error {
	args := m.Called(ctx, id, v)
	return args.Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMilestoneService is a mock implementation of MilestoneService
type MockMilestoneService struct {
	mock.Mock
}

func (m *MockMilestoneService) List(ctx context.Context) ([]*model.Milestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Milestone), args.Error(1)
}

func (m *MockMilestoneService) ListByCreator(ctx context.Context, id uuid.UUID) ([]*model.Milestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Milestone), args.Error(1)
}

func (m *MockMilestoneService) ListByProject(ctx context.Context, id uuid.UUID) ([]*model.Milestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Milestone), args.Error(1)
}

func (m *MockMilestoneService) Create(ctx context.Context, v *model.Milestone) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockMilestoneService) Update(ctx context.Context, id uuid.UUID, v *model.Milestone) error {
	args := m.Called(ctx, id, v)
	return args.Error(0)
}

func (m *MockMilestoneService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context) ([]*model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListByTask(ctx context.Context, id uuid.UUID) ([]*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListByAuthor(ctx context.Context, id uuid.UUID) ([]*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, v *model.Comment) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockCommentService) Update(ctx context.Context, id uuid.UUID, v *model.Comment) error {
	args := m.Called(ctx, id, v)
	return args.Error(0)
}

func (m *MockCommentService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) List(ctx context.Context) ([]*model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Report), args.Error(1)
}

func (m *MockReportService) ListByTask(ctx context.Context, id uuid.UUID) ([]*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Report), args.Error(1)
}

func (m *MockReportService) Create(ctx context.Context, v *model.Report) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockReportService) Update(ctx context.Context, id uuid.UUID, v *model.Report) error {
	args := m.Called(ctx, id, v)
	return args.Error(0)
}

func (m *MockReportService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context) ([]*model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tag), args.Error(1)
}

func (m *MockTagService) Create(ctx context.Context, v *model.Tag) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockTagService) Update(ctx context.Context, id uuid.UUID, v *model.Tag) error {
	args := m.Called(ctx, id, v)
	return args.Error(0)
}

func (m *MockTagService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListByUser(ctx context.Context, id uuid.UUID) ([]*model.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notification), args.Error(1)
}

func (m *MockNotificationService) ListByTask(ctx context.Context, id uuid.UUID) ([]*model.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notification), args.Error(1)
}

func (m *MockNotificationService) Create(ctx context.Context, v *model.Notification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
