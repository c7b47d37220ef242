// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/senritsu/model"
)

// ScrobbleStore はスクロブルの保存と取得を行うインターフェースです。
type ScrobbleStore interface {
	// CreateScrobble は新しいスクロブルを作成します。
	CreateScrobble(ctx context.Context, scrobble *model.Scrobble) error
	// GetScrobble は指定されたIDのスクロブルを取得します。
	GetScrobble(ctx context.Context, id uuid.UUID) (*model.Scrobble, error)
	// DeleteScrobble は指定されたIDのスクロブルを削除します。
	DeleteScrobble(ctx context.Context, id uuid.UUID) error
	// DeleteScrobblesUntil は指定日時より前のスクロブルを削除します。
	DeleteScrobblesUntil(ctx context.Context, user string, until time.Time) (int, error)
	// ListScrobbles は指定されたユーザーの、指定した期間内のスクロブルを
	// 日時の昇順で取得します。
	ListScrobbles(ctx context.Context, user string, from, to time.Time, pagination *model.Pagination) ([]*model.Scrobble, error)
	// ListScrobblePages は指定されたユーザーの、指定した期間内のスクロブルを
	// 追記順のページ列にまとめて返します。各ページのStart/Endは
	// ページ内イベントのUNIX秒の範囲です。
	ListScrobblePages(ctx context.Context, user string, from, to time.Time, pageSize int) ([]*model.Page, error)
	// Close はストアの接続を閉じます。
	Close() error
}

// SQLiteStore はSQLiteを使用したScrobbleStoreの実装です。
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
// migrateにはスキーママイグレーションを実行する関数を渡します。
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "senritsu.db")

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

// CreateScrobble は新しいスクロブルをデータベースに保存します。
func (s *SQLiteStore) CreateScrobble(ctx context.Context, scrobble *model.Scrobble) error {
	// バリデーション
	if err := scrobble.Validate(); err != nil {
		return err
	}

	// 日時をRFC3339形式に統一して保存
	formattedTime := scrobble.Timestamp.UTC().Format(time.RFC3339)

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO scrobbles (id, user_name, artist, track, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, scrobble.ID.String(), scrobble.User, scrobble.Artist, scrobble.Track, formattedTime)
	if err != nil {
		return fmt.Errorf("failed to create scrobble: %w", err)
	}

	return nil
}

// GetScrobble は指定されたIDのスクロブルを取得します。
func (s *SQLiteStore) GetScrobble(ctx context.Context, id uuid.UUID) (*model.Scrobble, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, user_name, artist, track, timestamp
		FROM scrobbles WHERE id = ?
	`, id.String())

	scrobble, err := scanScrobble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrScrobbleNotFound
	}
	if err != nil {
		return nil, err
	}
	return scrobble, nil
}

// DeleteScrobble は指定されたIDのスクロブルを削除します。
func (s *SQLiteStore) DeleteScrobble(ctx context.Context, id uuid.UUID) error {
	result, err := s.conn.ExecContext(ctx, `DELETE FROM scrobbles WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete scrobble: %w", err)
	}

	// 削除された行数を確認
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return model.ErrScrobbleNotFound
	}

	return nil
}

// DeleteScrobblesUntil は指定日時より前のスクロブルを削除します。
// userが空文字列の場合はすべてのユーザーが対象になります。
func (s *SQLiteStore) DeleteScrobblesUntil(ctx context.Context, user string, until time.Time) (int, error) {
	untilStr := until.UTC().Format(time.RFC3339)

	var result sql.Result
	var err error
	if user == "" {
		result, err = s.conn.ExecContext(ctx, `DELETE FROM scrobbles WHERE timestamp < ?`, untilStr)
	} else {
		result, err = s.conn.ExecContext(ctx, `DELETE FROM scrobbles WHERE user_name = ? AND timestamp < ?`, user, untilStr)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete scrobbles: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// ListScrobbles は指定されたユーザーの、指定した期間内のスクロブルを
// 日時の昇順で取得します。
func (s *SQLiteStore) ListScrobbles(ctx context.Context, user string, from, to time.Time, pagination *model.Pagination) ([]*model.Scrobble, error) {
	fromStr := from.UTC().Format(time.RFC3339)
	toStr := to.UTC().Format(time.RFC3339)

	limit := 100
	offset := 0
	if pagination != nil {
		limit = pagination.Limit()
		offset = pagination.Offset()
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, user_name, artist, track, timestamp
		FROM scrobbles
		WHERE user_name = ? AND timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC, id ASC
		LIMIT ? OFFSET ?
	`, user, fromStr, toStr, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrobbles: %w", err)
	}
	defer rows.Close()

	var scrobbles []*model.Scrobble
	for rows.Next() {
		scrobble, err := scanScrobble(rows)
		if err != nil {
			return nil, err
		}
		scrobbles = append(scrobbles, scrobble)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scrobbles: %w", err)
	}

	return scrobbles, nil
}

// ListScrobblePages は指定されたユーザーの、指定した期間内のスクロブルを
// 追記順のページ列にまとめて返します。
func (s *SQLiteStore) ListScrobblePages(ctx context.Context, user string, from, to time.Time, pageSize int) ([]*model.Page, error) {
	if pageSize <= 0 {
		pageSize = 200
	}

	fromStr := from.UTC().Format(time.RFC3339)
	toStr := to.UTC().Format(time.RFC3339)

	rows, err := s.conn.QueryContext(ctx, `
		SELECT timestamp
		FROM scrobbles
		WHERE user_name = ? AND timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC, id ASC
	`, user, fromStr, toStr)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrobbles: %w", err)
	}
	defer rows.Close()

	var pages []*model.Page
	var current *model.Page
	for rows.Next() {
		var timestampStr string
		if err := rows.Scan(&timestampStr); err != nil {
			return nil, fmt.Errorf("failed to scan scrobble: %w", err)
		}
		timestamp, err := time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scrobble date: %w", err)
		}

		if current == nil || len(current.List) >= pageSize {
			current = &model.Page{Start: timestamp.Unix()}
			pages = append(pages, current)
		}
		current.List = append(current.List, model.NewPageEntry(timestamp))
		current.End = timestamp.Unix()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scrobbles: %w", err)
	}

	return pages, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// scanner はsql.Rowとsql.Rowsの共通部分です。
type scanner interface {
	Scan(dest ...any) error
}

// scanScrobble は1行をScrobbleに変換します。
func scanScrobble(row scanner) (*model.Scrobble, error) {
	var idStr, user, artist, track, timestampStr string
	if err := row.Scan(&idStr, &user, &artist, &track, &timestampStr); err != nil {
		return nil, err
	}

	// UUIDの解析
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in database: %w", err)
	}

	// 文字列から時間に変換
	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scrobble date: %w", err)
	}

	return model.LoadScrobble(id, timestamp, user, artist, track)
}
