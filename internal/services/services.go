package services

import (
	"github.com/atb-labs/tracker/internal/config"
	"github.com/atb-labs/tracker/internal/db"
	"github.com/atb-labs/tracker/internal/services/auth"
	"github.com/atb-labs/tracker/internal/services/client"
	"github.com/atb-labs/tracker/internal/services/member"
	"github.com/atb-labs/tracker/internal/services/pomodoro"
	"github.com/atb-labs/tracker/internal/services/profile"
	"github.com/atb-labs/tracker/internal/services/project"
	"github.com/atb-labs/tracker/internal/services/tag"
	"github.com/atb-labs/tracker/internal/services/task"
	"github.com/atb-labs/tracker/internal/services/timeentry"
)

type Services struct {
	Auth      *auth.AuthService
	Member    *member.MemberService
	Profile   *profile.ProfileService
	Client    *client.ClientService
	Project   *project.ProjectService
	Task      *task.TaskService
	TimeEntry *timeentry.TimeEntryService
	Pomodoro  *pomodoro.PomodoroService
	Tag       *tag.TagService
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	memberRepo := member.NewMemberRepo(dbconn)
	tokenRepo := auth.NewTokenRepo(dbconn)
	profileRepo := profile.NewProfileRepo(dbconn)

	return &Services{
		Auth:      auth.NewAuthService(memberRepo, tokenRepo),
		Member:    member.NewMemberService(memberRepo),
		Profile:   profile.NewProfileService(profileRepo),
		Client:    client.NewClientService(client.NewClientRepo(dbconn)),
		Project:   project.NewProjectService(project.NewProjectRepo(dbconn)),
		Task:      task.NewTaskService(task.NewTaskRepo(dbconn)),
		TimeEntry: timeentry.NewTimeEntryService(timeentry.NewTimeEntryRepo(dbconn)),
		Pomodoro:  pomodoro.NewPomodoroService(pomodoro.NewPomodoroRepo(dbconn)),
		Tag:       tag.NewTagService(tag.NewTagRepo(dbconn)),
	}
}
