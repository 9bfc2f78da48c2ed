package http

import (
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/prioritization"
	"deadline-sync/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Deadline    time.Time `json:"deadline"    binding:"required"`
	Priority    string    `json:"priority"    binding:"omitempty,task_priority"`
}

func (r createReq) toInput() task.CreateInput {
	in := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
	}
	if p, err := model.ParseTaskPriority(r.Priority); err == nil {
		in.Priority = p
	}
	return in
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,task_status"`
	Priority string `form:"priority" binding:"omitempty,task_priority"`
}

func (r listReq) toInput() task.ListInput {
	var in task.ListInput
	if s, err := model.ParseTaskStatus(r.Status); err == nil {
		in.Status = &s
	}
	if p, err := model.ParseTaskPriority(r.Priority); err == nil {
		in.Priority = &p
	}
	return in
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status"      binding:"omitempty,task_status"`
	Priority    *string    `json:"priority"    binding:"omitempty,task_priority"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
	}
	if r.Status != nil {
		if s, err := model.ParseTaskStatus(*r.Status); err == nil {
			in.Status = &s
		}
	}
	if r.Priority != nil {
		if p, err := model.ParseTaskPriority(*r.Priority); err == nil {
			in.Priority = &p
		}
	}
	return in
}

// ---

type upcomingReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

func (r upcomingReq) toInput() task.UpcomingInput {
	return task.UpcomingInput{Days: r.Days}
}

// ---

type googleTokenReq struct {
	AccessToken  string     `json:"access_token"  binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Scope        string     `json:"scope"`
	TokenType    string     `json:"token_type"`
}

func (r googleTokenReq) toInput() task.GoogleTokenInput {
	return task.GoogleTokenInput{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		Scope:        r.Scope,
		TokenType:    r.TokenType,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Deadline           time.Time  `json:"deadline"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	CalendarEventID    string     `json:"calendar_event_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	TimeRemaining      float64    `json:"time_remaining"`
	HoursUntilDeadline float64    `json:"hours_until_deadline"`
	IsOverdue          bool       `json:"is_overdue"`
	PriorityScore      float64    `json:"priority_score"`
	UrgencyLevel       string     `json:"urgency_level"`
}

func newTaskResp(v prioritization.TaskView) taskResp {
	t := v.Task
	return taskResp{
		ID:                 t.ID,
		UserID:             t.UserID,
		Title:              t.Title,
		Description:        t.Description,
		Deadline:           t.Deadline,
		Status:             t.Status.String(),
		Priority:           t.Priority.String(),
		CalendarEventID:    t.CalendarEventID,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		CompletedAt:        t.CompletedAt,
		TimeRemaining:      v.TimeRemainingHours,
		HoursUntilDeadline: v.HoursUntilDeadline,
		IsOverdue:          v.IsOverdue,
		PriorityScore:      v.Score,
		UrgencyLevel:       v.Urgency.String(),
	}
}

func newTaskResps(views []prioritization.TaskView) []taskResp {
	out := make([]taskResp, len(views))
	for i, v := range views {
		out[i] = newTaskResp(v)
	}
	return out
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Total: len(out.Tasks),
	}
}

type prioritizedResp struct {
	RecommendedNextTask *taskResp  `json:"recommended_next_task"`
	UpcomingTasks       []taskResp `json:"upcoming_tasks"`
	PastTasks           []taskResp `json:"past_tasks"`
}

func (h *handler) newPrioritizedResp(out task.PrioritizedOutput) prioritizedResp {
	resp := prioritizedResp{
		UpcomingTasks: newTaskResps(out.Ranking.Upcoming),
		PastTasks:     newTaskResps(out.Ranking.Past),
	}
	if out.Ranking.Recommended != nil {
		rec := newTaskResp(*out.Ranking.Recommended)
		resp.RecommendedNextTask = &rec
	}
	return resp
}

type analyticsResp struct {
	TotalTasks            int      `json:"total_tasks"`
	CompletedTasks        int      `json:"completed_tasks"`
	PendingTasks          int      `json:"pending_tasks"`
	InProgressTasks       int      `json:"in_progress_tasks"`
	MissedTasks           int      `json:"missed_tasks"`
	CompletionRate        float64  `json:"completion_rate"`
	AverageCompletionTime *float64 `json:"average_completion_time"`
	OverdueTasks          int      `json:"overdue_tasks"`
	UpcomingDeadlines     int      `json:"upcoming_deadlines"`
}

func (h *handler) newAnalyticsResp(out task.AnalyticsOutput) analyticsResp {
	s := out.Summary
	return analyticsResp{
		TotalTasks:            s.Total,
		CompletedTasks:        s.Completed,
		PendingTasks:          s.Pending,
		InProgressTasks:       s.InProgress,
		MissedTasks:           s.Missed,
		CompletionRate:        s.CompletionRate,
		AverageCompletionTime: s.AverageCompletionTimeHours,
		OverdueTasks:          s.Overdue,
		UpcomingDeadlines:     s.Upcoming,
	}
}

type notifyResp struct {
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

func (h *handler) newNotifyResp(out task.NotifyOutput) notifyResp {
	return notifyResp{Channel: string(out.Channel), MessageID: out.MessageID}
}

type calendarResp struct {
	EventID string `json:"event_id"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	return calendarResp{EventID: out.EventID}
}
