// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Scrobble は1回の再生イベントを表すモデルです。
type Scrobble struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`      // リスナーのユーザー名
	Artist    string    `json:"artist"`    // アーティスト名
	Track     string    `json:"track"`     // トラック名
	Timestamp time.Time `json:"timestamp"` // 再生日時
}

// NewScrobble はScrobbleの新しいインスタンスを作成します。
// IDはサーバー側で生成します。
func NewScrobble(timestamp time.Time, user, artist, track string) (*Scrobble, error) {
	s := &Scrobble{
		ID:        uuid.New(),
		User:      user,
		Artist:    artist,
		Track:     track,
		Timestamp: timestamp,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScrobble は既存のScrobbleインスタンスを作成します。
func LoadScrobble(id uuid.UUID, timestamp time.Time, user, artist, track string) (*Scrobble, error) {
	// LoadScrobbleはDBから読み込んだレコード用なので、IDは必須
	if id == uuid.Nil {
		return nil, errors.New("id is required for loaded scrobble")
	}

	s := &Scrobble{
		ID:        id,
		User:      user,
		Artist:    artist,
		Track:     track,
		Timestamp: timestamp,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate はスクロブルのデータバリデーションを行います。
func (s *Scrobble) Validate() error {
	// 日時の検証
	if s.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}

	// ユーザー名の検証
	if s.User == "" {
		return errors.New("user is required")
	}

	// アーティスト名とトラック名の検証
	if s.Artist == "" {
		return errors.New("artist is required")
	}
	if s.Track == "" {
		return errors.New("track is required")
	}

	return nil
}
