package hub

import (
	"github.com/char5742/input-hub/internal/keylayout"
	"github.com/char5742/input-hub/internal/types"
)

// deviceRecord は開いているデバイス1台分の状態を表す構造体
type deviceRecord struct {
	id      int32             // 複合デバイスID（下位16bitがスロット、上位15bitが世代）
	path    string            // デバイスノードのパス
	name    string            // EVIOCGNAMEで得た人間向けの名前
	classes types.DeviceClass // 分類結果

	fd int // ハブが専有するファイルディスクリプタ

	// キーボードに分類された場合のみ保持するEV_KEY能力ビットマスク
	keyBitmask []byte
	// スキャンコード→キーコードの変換表。常に非nil
	layoutMap *keylayout.KeyLayoutMap
	// 専用の.klが見つからずqwerty.klへフォールバックしたか
	defaultKeymap bool
}

// DeviceInfo はAPIなど外部向けに公開するデバイス情報のスナップショット
type DeviceInfo struct {
	ID      int32  `json:"id"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	Classes uint32 `json:"classes"`
}
