package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectDelete_CascadesToMilestonesAndTasks(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()

	owner := seedUser(t, d, "owner@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)

	ms := &model.Milestone{Label: "M1", Status: "ouvert", ProjectID: p.ID, CreatorID: owner.ID}
	require.NoError(t, NewMilestoneRepo(d).Create(ctx, ms))
	task := newTask(p, owner, nil)
	task.MilestoneID = &ms.ID
	_, err := NewTaskRepo(d).CreateWithAssignment(ctx, task, assignedText)
	require.NoError(t, err)

	require.NoError(t, NewProjectRepo(d).Delete(ctx, p.ID))

	var n int64
	require.NoError(t, d.Model(&model.Milestone{}).Where("project_id = ?", p.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, d.Model(&model.Task{}).Where("project_id = ?", p.ID).Count(&n).Error)
	assert.Zero(t, n)

	assert.ErrorIs(t, NewProjectRepo(d).Delete(ctx, p.ID), gorm.ErrRecordNotFound)
}

func TestSkillRepo_ReplaceAddShare(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewSkillRepo(d)

	u := seedUser(t, d, "dev@e.com")
	_, err := r.Replace(ctx, UserSkills(u.ID), []string{"VueJS"})
	require.NoError(t, err)

	got, err := r.Replace(ctx, UserSkills(u.ID), []string{"React", "Kotlin-Multiplatform"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kotlin-Multiplatform", "React"}, labels(got))

	// the VueJS row survives, only the association is gone
	var n int64
	require.NoError(t, d.Model(&model.Skill{}).Where("label = ?", "VueJS").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	got, err = r.Add(ctx, UserSkills(u.ID), []string{"React", "Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kotlin-Multiplatform", "React"}, labels(got))

	// a task naming React shares the same row
	team := seedTeam(t, d, u)
	p := seedProject(t, d, team, u)
	task := newTask(p, u, nil)
	_, err = NewTaskRepo(d).CreateWithAssignment(ctx, task, assignedText)
	require.NoError(t, err)
	_, err = r.Add(ctx, TaskSkills(task.ID), []string{"React"})
	require.NoError(t, err)
	require.NoError(t, d.Model(&model.Skill{}).Where("label = ?", "React").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	react := got[2]
	require.NoError(t, r.Remove(ctx, UserSkills(u.ID), react.ID))
	got, err = r.ListFor(ctx, UserSkills(u.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kotlin-Multiplatform"}, labels(got))

	require.NoError(t, r.Clear(ctx, UserSkills(u.ID)))
	got, err = r.ListFor(ctx, UserSkills(u.ID))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Replace(ctx, UserSkills(uuid.New()), []string{"React"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func labels(skills []model.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Label)
	}
	return out
}

func TestTeamRepo_Membership(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewTeamRepo(d)

	leader := seedUser(t, d, "lead@e.com")
	u2 := seedUser(t, d, "u2@e.com")
	u3 := seedUser(t, d, "u3@e.com")
	team := seedTeam(t, d, leader)

	members, err := r.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, model.RoleLeader, members[0].Role)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "lead@e.com", members[0].User.Email)

	_, err = r.UpsertMembers(ctx, team.ID, []uuid.UUID{u2.ID}, model.RoleMember)
	require.NoError(t, err)
	_, err = r.UpsertMembers(ctx, team.ID, []uuid.UUID{u2.ID, u3.ID}, model.RoleLeader)
	require.NoError(t, err)

	members, err = r.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	roles := map[uuid.UUID]string{}
	for _, m := range members {
		roles[m.UserID] = m.Role
	}
	assert.Equal(t, model.RoleLeader, roles[u2.ID])

	joined, err := r.ListJoined(ctx, u3.ID)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, team.ID, joined[0].ID)

	require.NoError(t, r.RemoveMember(ctx, team.ID, u3.ID))
	assert.ErrorIs(t, r.RemoveMember(ctx, team.ID, u3.ID), gorm.ErrRecordNotFound)

	_, err = r.UpsertMembers(ctx, team.ID, []uuid.UUID{uuid.New()}, model.RoleMember)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	creator, err := r.GetCreator(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, leader.ID, creator.ID)
}

func TestProjectRepo_ListJoined(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()

	owner := seedUser(t, d, "owner@e.com")
	member := seedUser(t, d, "member@e.com")
	outsider := seedUser(t, d, "out@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)
	_, err := NewTeamRepo(d).UpsertMembers(ctx, team.ID, []uuid.UUID{member.ID}, model.RoleMember)
	require.NoError(t, err)

	got, err := NewProjectRepo(d).ListJoined(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ID)

	got, err = NewProjectRepo(d).ListJoined(ctx, outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjectRepo_UpdateKeepsOwner(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()

	owner := seedUser(t, d, "owner@e.com")
	other := seedUser(t, d, "other@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)

	upd := &model.Project{Title: "Renamed", TeamID: team.ID, OwnerID: other.ID}
	require.NoError(t, NewProjectRepo(d).Update(ctx, p.ID, upd))
	assert.Equal(t, "Renamed", upd.Title)
	assert.Equal(t, owner.ID, upd.OwnerID)

	assert.ErrorIs(t, NewProjectRepo(d).Update(ctx, uuid.New(), &model.Project{Title: "x", TeamID: team.ID}), gorm.ErrRecordNotFound)
}

func TestTaskRepo_AssignmentNotification(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewTaskRepo(d)

	owner := seedUser(t, d, "owner@e.com")
	dev := seedUser(t, d, "dev@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)

	task := newTask(p, owner, &dev.ID)
	n, err := r.CreateWithAssignment(ctx, task, assignedText)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, dev.ID, n.UserID)
	assert.Equal(t, task.ID, n.TaskID)
	assert.Equal(t, "La tâche Ecrire la doc du projet Projet A vous a été assignée.", n.Content)

	var count int64
	require.NoError(t, d.Model(&model.Notification{}).Where("user_id = ? AND task_id = ?", dev.ID, task.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	upd := newTask(p, owner, nil)
	n, err = r.UpdateWithAssignment(ctx, task.ID, upd, assignedText)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, owner.ID, upd.CreatorID)
	require.NoError(t, d.Model(&model.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := r.UpdateStatus(ctx, task.ID, "terminee")
	require.NoError(t, err)
	assert.Equal(t, "terminee", got.Status)

	// unknown project: neither task nor notification is written
	orphan := newTask(&model.Project{ID: uuid.New()}, owner, &dev.ID)
	_, err = r.CreateWithAssignment(ctx, orphan, assignedText)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	require.NoError(t, d.Model(&model.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNotificationRepo_MarkAllRead(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewNotificationRepo(d)

	owner := seedUser(t, d, "owner@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)
	task := newTask(p, owner, nil)
	_, err := NewTaskRepo(d).CreateWithAssignment(ctx, task, assignedText)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Create(ctx, &model.Notification{UserID: owner.ID, TaskID: task.ID, Content: "x"}))
	}
	items, err := r.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	one, err := r.MarkRead(ctx, items[0].ID)
	require.NoError(t, err)
	assert.True(t, one.IsRead)

	n, err := r.MarkAllRead(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestTokenRepo_DeleteAllForUser(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewTokenRepo(d)

	u := seedUser(t, d, "tok@e.com")
	a := &model.AccessToken{UserID: u.ID, Name: "auth_token", TokenHash: "a" + uuid.NewString()}
	b := &model.AccessToken{UserID: u.ID, Name: "auth_token", TokenHash: "b" + uuid.NewString()}
	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))

	assert.ErrorIs(t, r.Delete(ctx, "wrong"), gorm.ErrRecordNotFound)

	hashes, err := r.DeleteAllForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.TokenHash, b.TokenHash}, hashes)

	_, err = r.GetByHash(ctx, a.TokenHash)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAttachmentRepo_DeleteWith(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewAttachmentRepo(d)

	owner := seedUser(t, d, "owner@e.com")
	team := seedTeam(t, d, owner)
	p := seedProject(t, d, team, owner)
	task := newTask(p, owner, nil)
	_, err := NewTaskRepo(d).CreateWithAssignment(ctx, task, assignedText)
	require.NoError(t, err)

	att := &model.Attachment{TaskID: task.ID, FileKey: "pieces_jointes/x/a.txt", Filename: "a.txt"}
	require.NoError(t, r.CreateBatch(ctx, []*model.Attachment{att}))

	boom := errors.New("disk failure")
	err = r.DeleteWith(ctx, att.ID, func(*model.Attachment) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, err = r.Get(ctx, att.ID)
	require.NoError(t, err, "row must survive a failed file removal")

	var removedKey string
	require.NoError(t, r.DeleteWith(ctx, att.ID, func(a *model.Attachment) error {
		removedKey = a.FileKey
		return nil
	}))
	assert.Equal(t, "pieces_jointes/x/a.txt", removedKey)
	_, err = r.Get(ctx, att.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepo_UniqueEmail(t *testing.T) {
	d := requireDB(t)
	ctx := context.Background()
	r := NewUserRepo(d)

	seedUser(t, d, "dup@e.com")
	err := r.Create(ctx, &model.User{FullName: "B", Email: "dup@e.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	u, err := r.GetByEmail(ctx, "dup@e.com")
	require.NoError(t, err)
	u.FullName = "Renamed"
	u.PasswordHash = "changed"
	require.NoError(t, r.Update(ctx, u.ID, u))
	assert.Equal(t, "Renamed", u.FullName)
	assert.Equal(t, "x", u.PasswordHash)
}
