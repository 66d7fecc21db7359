// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import "time"

// CreateTaskReq represents the request body for POST /tasks.
// Title is required; description is optional free text.
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// TaskItem is a single task in the GET /tasks response.
type TaskItem struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
