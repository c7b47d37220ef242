// Package api はsenritsuのAPIサーバー実装を提供します。
package api

import "net/http"

// authMiddleware はAPIリクエストの認証を行うミドルウェアです。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ヘッダーからAPIキーを取得
		apiKey := r.Header.Get("X-API-Key")

		// APIキーがサーバー側で設定されていない場合はエラー
		if s.config.APIToken == "" {
			writeJSONError(w, "API authentication is not configured on server", http.StatusInternalServerError)
			return
		}

		// APIキーが一致するか確認
		if apiKey != s.config.APIToken {
			writeJSONError(w, "Unauthorized: Invalid API key", http.StatusUnauthorized)
			return
		}

		// 認証成功：次のハンドラーを呼び出し
		next.ServeHTTP(w, r)
	})
}
