package dto

import (
	"kanban-api/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Role:   user.Role,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	comments := make([]CommentResponse, len(task.Comments))
	for i, c := range task.Comments {
		comments[i] = CommentResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	labels := task.Labels
	if labels == nil {
		labels = []string{}
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Labels:      labels,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
		DueDate:     task.DueDate,
		Comments:    comments,
		CreatedAt:   task.CreatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToTaskResponse(t)
	}
	return out
}

func ActivityToActivityResponse(activity *models.Activity) *ActivityResponse {
	if activity == nil {
		return nil
	}
	return &ActivityResponse{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Action:    activity.Action,
		TaskID:    activity.TaskID,
		ProjectID: activity.ProjectID,
		CreatedAt: activity.CreatedAt,
	}
}

func ProjectToProjectResponse(project *models.Project, tasks []*models.Task, members []*models.User) *ProjectResponse {
	if project == nil {
		return nil
	}
	memberResponses := make([]UserResponse, len(members))
	for i, u := range members {
		memberResponses[i] = *UserToUserResponse(u)
	}
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		Tasks:       TasksToTaskResponses(tasks),
		Members:     memberResponses,
	}
}
