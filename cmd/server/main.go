package main

import (
	"log"
	"time"

	"task_backend/internal/app/router"
	"task_backend/internal/config"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	platformdb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
)

// tokenTTL は発行するJWTの有効期間です。
const tokenTTL = time.Hour

func main() {
	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// db
	db := platformdb.Open(cfg)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	taskRepo := taskadapters.NewTaskRepository(db)

	// JWT
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, tokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成
	r := router.NewRouter(authH, taskH, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
