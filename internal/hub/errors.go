package hub

import "errors"

// ハブが返すエラーの種別
var (
	// ErrUninitialized は最初のNextEvent呼び出し前であることを表す
	ErrUninitialized = errors.New("event hub is not initialized")
	// ErrNotFound は未知のデバイスIDや未登録のコードを表す
	ErrNotFound = errors.New("device or code not found")
	// ErrIO はioctlや読み取りの失敗を表す
	ErrIO = errors.New("i/o error")
)
