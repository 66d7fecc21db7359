// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 両フィールドとも非空のみを要求し、メール形式のチェックは行いません
// （未知のメールは400ではなく401として扱われます）。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
