// Package entity はtasksフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	authentity "task_backend/internal/feature/auth/domain/entity"
)

// Task status values.
const (
	// StatusPending は未完了のタスクを表します。作成時のデフォルト値です。
	StatusPending = "pending"
	// StatusCompleted は完了済みのタスクを表します。
	StatusCompleted = "completed"
)

// Task はひとりのユーザーが所有するタスクを表します。
// タスクは所有者にのみ可視で、所有ユーザーの削除時に連鎖削除されます。
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user's identifier.
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Title is the short required summary of the task.
	Title string `gorm:"size:255;not null" json:"title"`

	// Description is optional free text.
	Description string `gorm:"type:text" json:"description"`

	// Status is either StatusPending or StatusCompleted.
	Status string `gorm:"size:20;not null;default:pending" json:"status"`

	// CreatedAt is assigned by the server at insert time.
	CreatedAt time.Time `json:"created_at"`

	// User is the owning user. The association carries the
	// ON DELETE CASCADE constraint for the users foreign key.
	User authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
