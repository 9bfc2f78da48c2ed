package postgre

import (
	"fmt"
	"strings"

	repo "deadline-sync/internal/task/repository"
)

const defaultTaskOrder = "deadline ASC"

var allowedTaskOrders = map[string]bool{
	"deadline ASC":    true,
	"deadline DESC":   true,
	"created_at DESC": true,
}

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, arg)
		idx++
	}

	// Filters
	if opt.UserID != "" {
		add("user_id = $%d", opt.UserID)
	}
	if opt.Status != nil {
		add("status = $%d", opt.Status.String())
	}
	if opt.Priority != nil {
		add("priority = $%d", opt.Priority.String())
	}
	if opt.DeadlineFrom != nil {
		add("deadline >= $%d", opt.DeadlineFrom.UTC())
	}
	if opt.DeadlineTo != nil {
		add("deadline <= $%d", opt.DeadlineTo.UTC())
	}
	if opt.DeadlineBefore != nil {
		add("deadline < $%d", opt.DeadlineBefore.UTC())
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy := opt.OrderBy
	if !allowedTaskOrders[orderBy] {
		orderBy = defaultTaskOrder
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s, id ASC", orderBy))

	return strings.Join(parts, " "), args
}
