// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config はアプリケーションの設定を保持する構造体です。
// 起動時に一度だけ読み込まれ、各コンポーネントのコンストラクタへ明示的に注入されます。
type Config struct {
	// データベース設定
	DBHost     string // データベースホスト
	DBPort     string // データベースポート
	DBUser     string // データベースユーザー
	DBPassword string // データベースパスワード
	DBName     string // データベース名

	// 認証設定
	JWTSecret string // JWT署名用の秘密鍵

	// サーバー設定
	Port string // APIサーバーのポート番号
}

// Load は環境変数から設定を読み込みます。
// .env ファイルが存在する場合はそこから読み込みます（存在しない場合はスキップ）。
// JWT_SECRETが未設定の場合はエラーを返します。
func Load() (*Config, error) {
	// .env ファイルを読み込む（存在しない場合はスキップ）
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		Port: getEnv("PORT", "3000"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// getEnv は環境変数を取得し、未設定の場合はデフォルト値を返します。
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
