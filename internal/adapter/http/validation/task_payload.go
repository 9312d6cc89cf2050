package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/dto"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:         title,
		Description:   req.Description,
		Department:    domain.Department(req.Department),
		Priority:      domain.TaskPriority(req.Priority),
		CreatedBy:     req.CreatedBy,
		CreatedByName: req.CreatedByName,
		BranchID:      req.BranchID,
		DueDate:       dueDate,
		IsRecurring:   req.IsRecurring,
		FineAmount:    req.FineAmount,
	}

	if req.AssignedTo != nil {
		input.AssignedTo = strings.TrimSpace(*req.AssignedTo)
	}
	if req.AssignedToName != nil {
		input.AssignedToName = strings.TrimSpace(*req.AssignedToName)
	}

	// A recurrence flag without a pattern is accepted; a pattern without the
	// flag is not.
	if req.RecurringPattern != nil {
		if !req.IsRecurring {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		pattern, err := buildRecurringPattern(*req.RecurringPattern)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.RecurringPattern = &pattern
	}

	return input, nil
}

func buildRecurringPattern(req dto.RecurringPatternRequest) (domain.RecurringPattern, error) {
	pattern := domain.RecurringPattern{
		Type:       domain.RecurrenceType(req.Type),
		Interval:   req.Interval,
		DaysOfWeek: req.DaysOfWeek,
		DayOfMonth: req.DayOfMonth,
		TimeOfDay:  req.TimeOfDay,
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return domain.RecurringPattern{}, ErrInvalidTaskPayload
		}
		pattern.EndDate = &endDate
	}
	return pattern, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var assignedTo *string
	if hasJSONField(raw, "assignedTo") {
		if isJSONNull(raw["assignedTo"]) {
			empty := ""
			assignedTo = &empty
		} else {
			if req.AssignedTo == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			value := strings.TrimSpace(*req.AssignedTo)
			assignedTo = &value
		}
	}

	var dueDate *time.Time
	if hasJSONField(raw, "dueDate") && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.UpdateTaskInput{
		Status:         status,
		AssignedTo:     assignedTo,
		AssignedToName: req.AssignedToName,
		DueDate:        dueDate,
		Priority:       priority,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "status") ||
		hasJSONField(raw, "assignedTo") ||
		hasJSONField(raw, "assignedToName") ||
		hasJSONField(raw, "dueDate") ||
		hasJSONField(raw, "priority")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
