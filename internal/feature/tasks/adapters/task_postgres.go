// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskPostgres はTaskRepositoryインターフェースのPostgreSQL実装です。
type taskPostgres struct {
	db *gorm.DB
}

var _ usecase.TaskRepository = (*taskPostgres)(nil)

// NewTaskRepository は指定されたDB接続でtaskPostgresリポジトリの新しいインスタンスを生成します。
func NewTaskRepository(db *gorm.DB) *taskPostgres {
	return &taskPostgres{db: db}
}

// Create はタスクをデータベースに追加します。
// CreatedAtはGORMが挿入時に設定し、Statusが空の場合はストアのデフォルト（pending）が適用されます。
func (r *taskPostgres) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListByUser は指定ユーザーが所有するすべてのタスクを返します。
// 並び順はストアのデフォルトに従います。
func (r *taskPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
