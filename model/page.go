// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"strconv"
	"time"
)

// Page は親ビューから追記順に供給される1ページ分のイベントバッチです。
// StartとEndはページに含まれるイベントのUNIX秒の範囲を表します。
type Page struct {
	Start int64       `json:"start"`
	End   int64       `json:"end"`
	List  []PageEntry `json:"list"`
}

// PageEntry はページ内の1件のイベントです。
type PageEntry struct {
	Date PageDate `json:"date"`
}

// PageDate はイベントの日時情報です。UTSはUNIX秒の10進文字列です。
type PageDate struct {
	UTS  string `json:"uts"`
	Text string `json:"#text,omitempty"`
}

// NewPageEntry はUNIX秒からPageEntryを作成します。
func NewPageEntry(t time.Time) PageEntry {
	return PageEntry{
		Date: PageDate{
			UTS:  strconv.FormatInt(t.Unix(), 10),
			Text: t.UTC().Format("02 Jan 2006, 15:04"),
		},
	}
}

// IsEmpty はページにイベントが含まれないかどうかを返します。
func (p *Page) IsEmpty() bool {
	return len(p.List) == 0
}

// Timestamps はページ内イベントのUNIX秒を抽出して返します。
// パースできないUTS文字列は黙って読み飛ばします。
func (p *Page) Timestamps() []int64 {
	ts := make([]int64, 0, len(p.List))
	for _, e := range p.List {
		uts, err := strconv.ParseInt(e.Date.UTS, 10, 64)
		if err != nil {
			continue
		}
		ts = append(ts, uts)
	}
	return ts
}
