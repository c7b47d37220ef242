// Package api はsenritsuのAPIサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/stsysd/senritsu/chart"
	"github.com/stsysd/senritsu/config"
	"github.com/stsysd/senritsu/model"
	"github.com/stsysd/senritsu/store"
)

// chartPageSize は1回のウィジェット更新で取り込むスクロブル数です。
const chartPageSize = 200

// Server はAPIサーバーの構造体です。
type Server struct {
	router *http.ServeMux
	store  store.ScrobbleStore
	config *config.Config
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(store store.ScrobbleStore, config *config.Config) *Server {
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
	}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Scrobble endpoints
	securedHandler.HandleFunc("POST /api/v0/s", s.handleCreateScrobble)
	securedHandler.HandleFunc("GET /api/v0/s", s.handleListScrobbles)
	securedHandler.HandleFunc("GET /api/v0/s/{scrobble_id}", s.handleGetScrobble)
	securedHandler.HandleFunc("DELETE /api/v0/s/{scrobble_id}", s.handleDeleteScrobble)

	securedHandler.HandleFunc("POST /api/v0/bulk-deletion", s.handleBulkDeleteScrobbles)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))

	// Chart endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /u/{user}/chart.svg", s.handleGetChart)
	s.router.HandleFunc("GET /u/{user}/chart", s.handleGetChart)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// routesに設定されたルーティングを使用する
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{"status": "ok"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// CreateScrobbleParams represents parameters for creating a scrobble.
type CreateScrobbleParams struct {
	User      *model.UserName
	Timestamp *model.Timestamp
	Artist    string
	Track     string
}

// NewCreateScrobbleParams creates parameters for scrobble creation from HTTP request.
func NewCreateScrobbleParams(r *http.Request) (*CreateScrobbleParams, error) {
	// Parse request body
	var requestBody struct {
		User      string `json:"user"`
		Timestamp string `json:"timestamp"`
		Artist    string `json:"artist"`
		Track     string `json:"track"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	user, err := model.NewUserName(requestBody.User)
	if err != nil {
		return nil, err
	}

	timestamp, err := model.NewTimestamp(requestBody.Timestamp)
	if err != nil {
		return nil, err
	}

	return &CreateScrobbleParams{
		User:      user,
		Timestamp: timestamp,
		Artist:    requestBody.Artist,
		Track:     requestBody.Track,
	}, nil
}

// handleCreateScrobble はスクロブル作成エンドポイントのハンドラーです。
func (s *Server) handleCreateScrobble(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewCreateScrobbleParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 新しいスクロブルの作成
	scrobble, err := model.NewScrobble(params.Timestamp.Time(), params.User.String(), params.Artist, params.Track)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// スクロブルの保存
	if err := s.store.CreateScrobble(r.Context(), scrobble); err != nil {
		log.Printf("Error creating scrobble: %v", err)
		writeJSONError(w, "Failed to create scrobble", http.StatusInternalServerError)
		return
	}

	// 成功レスポンスの返却
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(scrobble); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetScrobbleParams represents parameters for getting a scrobble.
type GetScrobbleParams struct {
	ScrobbleID *model.ScrobbleID
}

// NewGetScrobbleParams creates parameters for scrobble retrieval from HTTP request.
func NewGetScrobbleParams(r *http.Request) (*GetScrobbleParams, error) {
	scrobbleID, err := model.NewScrobbleID(r.PathValue("scrobble_id"))
	if err != nil {
		return nil, err
	}

	return &GetScrobbleParams{
		ScrobbleID: scrobbleID,
	}, nil
}

// handleGetScrobble は特定のIDのスクロブルを取得するハンドラーです。
func (s *Server) handleGetScrobble(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetScrobbleParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// スクロブルの取得
	scrobble, err := s.store.GetScrobble(r.Context(), params.ScrobbleID.UUID())
	if err != nil {
		if errors.Is(err, model.ErrScrobbleNotFound) {
			writeJSONError(w, "Scrobble not found", http.StatusNotFound)
		} else {
			log.Printf("Error retrieving scrobble: %v", err)
			writeJSONError(w, "Failed to retrieve scrobble", http.StatusInternalServerError)
		}
		return
	}

	// レスポンスの返却
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scrobble); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleDeleteScrobble はスクロブル削除をハンドリングします。
func (s *Server) handleDeleteScrobble(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetScrobbleParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// スクロブル削除の実行（べき等性：既に存在しない場合もエラーにしない）
	err = s.store.DeleteScrobble(r.Context(), params.ScrobbleID.UUID())
	if err != nil {
		// スクロブルが存在しない場合は成功とみなす（べき等性）
		if errors.Is(err, model.ErrScrobbleNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		// その他のエラーの場合は500を返す
		log.Printf("Error deleting scrobble: %v", err)
		writeJSONError(w, "Failed to delete scrobble", http.StatusInternalServerError)
		return
	}

	// 成功した場合は204 No Contentを返す
	w.WriteHeader(http.StatusNoContent)
}

// ListScrobblesParams represents parameters for listing scrobbles.
type ListScrobblesParams struct {
	User       *model.UserName
	DateRange  *model.DateRange
	Pagination *model.Pagination
}

// NewListScrobblesParams creates parameters for scrobble listing from HTTP request.
func NewListScrobblesParams(r *http.Request) (*ListScrobblesParams, error) {
	query := r.URL.Query()

	user, err := model.NewUserName(query.Get("user"))
	if err != nil {
		return nil, err
	}

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		return nil, err
	}

	pagination, err := model.NewPagination(query.Get("limit"), query.Get("offset"))
	if err != nil {
		return nil, err
	}

	return &ListScrobblesParams{
		User:       user,
		DateRange:  dateRange,
		Pagination: pagination,
	}, nil
}

// ListScrobblesResponse represents the response for list scrobbles.
type ListScrobblesResponse struct {
	Items []*model.Scrobble `json:"items"`
}

// handleListScrobbles はユーザーのスクロブル一覧を取得するハンドラーです。
func (s *Server) handleListScrobbles(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewListScrobblesParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// スクロブルの取得
	scrobbles, err := s.store.ListScrobbles(r.Context(), params.User.String(),
		params.DateRange.From(), params.DateRange.To(), params.Pagination)
	if err != nil {
		log.Printf("Error retrieving scrobbles: %v", err)
		writeJSONError(w, "Failed to retrieve scrobbles", http.StatusInternalServerError)
		return
	}

	// レスポンスの構築
	response := &ListScrobblesResponse{
		Items: scrobbles,
	}
	// 空配列を返すためにnilチェック
	if response.Items == nil {
		response.Items = []*model.Scrobble{}
	}

	// レスポンスの返却
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleBulkDeleteScrobbles は条件に一致するスクロブルをまとめて削除するハンドラーです。
func (s *Server) handleBulkDeleteScrobbles(w http.ResponseWriter, r *http.Request) {
	// JSONのパース
	var deletionData struct {
		User  string `json:"user"`
		Until string `json:"until"`
	}
	if err := json.NewDecoder(r.Body).Decode(&deletionData); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// untilパラメータの検証
	if deletionData.Until == "" {
		writeJSONError(w, "until parameter is required", http.StatusBadRequest)
		return
	}

	// タイムスタンプのパース
	timestamp, err := model.NewTimestamp(deletionData.Until)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// スクロブルの一括削除を実行
	count, err := s.store.DeleteScrobblesUntil(r.Context(), deletionData.User, timestamp.Time())
	if err != nil {
		log.Printf("Error deleting scrobbles until specified date: %v", err)
		writeJSONError(w, "Failed to delete scrobbles", http.StatusInternalServerError)
		return
	}

	// 削除結果をJSONで返す
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := map[string]int{
		"deleted_count": count,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetChartParams represents parameters for rendering a listening chart.
type GetChartParams struct {
	User *model.UserName
}

// NewGetChartParams creates parameters for chart rendering from HTTP request.
func NewGetChartParams(r *http.Request) (*GetChartParams, error) {
	user, err := model.NewUserName(r.PathValue("user"))
	if err != nil {
		return nil, err
	}

	return &GetChartParams{
		User: user,
	}, nil
}

// handleGetChart はユーザーの週次チャートSVGを返すハンドラーです。
// ウィジェットをマウントし、ストアから取得したページ列を1ページずつ
// 追記しながら更新した上で、描画結果を返却します。
func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetChartParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// ウィジェットのマウント（固定の1年ウィンドウが確定する）
	widget := chart.Mount(params.User.String(), time.Now(), nil)
	window := widget.Window()

	// ウィンドウ内のスクロブルをページ列として取得
	pages, err := s.store.ListScrobblePages(r.Context(), params.User.String(),
		window.Start, window.End, chartPageSize)
	if err != nil {
		log.Printf("Error retrieving scrobble pages: %v", err)
		writeJSONError(w, "Failed to retrieve scrobbles", http.StatusInternalServerError)
		return
	}

	// 親ビューの契約どおり、1ページずつ追記して通知する
	for i := range pages {
		widget.Update(pages[:i+1])
	}

	// レスポンスの返却
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(widget.SVG())); err != nil {
		log.Printf("Error writing SVG response: %v", err)
	}
}

// Run はサーバーを指定されたアドレスで起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s)
}
