// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID uint, title, description string) error
	ListTasks(ctx context.Context, userID uint) ([]entity.Task, error)
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
type TaskHandler struct {
	uc TaskUsecase
}

// NewTaskHandler は新しい TaskHandler を作成します。
func NewTaskHandler(uc TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// userIDFrom は認証ミドルウェアがginコンテキストに設定したユーザーIDを取り出します。
func userIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Create は認証済みユーザーの新規タスクを作成するAPIです。
// - タイトル欠落時は400を返却（行は挿入されない）
// - 認証情報がコンテキストにない場合は401を返却
// - 永続化失敗時は500を返却
// - 成功時は201を返却
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.uc.CreateTask(c.Request.Context(), userID, req.Title, req.Description); err != nil {
		slog.Error("task creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	slog.Info("task created", "user_id", userID, "title", req.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "task created successfully"})
}

// List は認証済みユーザーが所有するタスクの一覧を取得するAPIです。
// Usecaseを呼び出してタスク一覧を取得し、DTOに変換して {"tasks": [...]} 形式で返します。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	tasks, err := h.uc.ListTasks(c.Request.Context(), userID)
	if err != nil {
		slog.Error("task listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	out := make([]dto.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.TaskItem{
			ID:          t.ID,
			UserID:      t.UserID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tasks": out})
}
