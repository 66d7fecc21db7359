package router

import (
	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/http/handler"
	"task_backend/internal/platform/http/middleware"
	jwtmw "task_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter は全ルートを登録したginエンジンを生成します。
// jwtSecret は保護ルートのミドルウェアに注入されます。
func NewRouter(authHandler *authhandler.AuthHandler, tasks *taskhandler.TaskHandler,
	jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 全オリジン許可のCORS
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.POST("/tasks", tasks.Create)
		auth.GET("/tasks", tasks.List)
	}

	return r
}
