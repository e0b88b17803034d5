package hub

import (
	"os"
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sys/unix"

	"github.com/char5742/input-hub/internal/config"
	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/power"
	"github.com/char5742/input-hub/internal/props"
)

// ブロッキング待機の前後で操作するウェイクロックのタグ
const wakeLockTag = "KeyEvents"

// EventHub はデバイスディレクトリ配下の入力デバイスを検出・分類し、
// 単一のイベントストリームへ多重化する構造体。
// NextEventの呼び出し元は常に1つ。pull系の問い合わせは複数スレッドから呼べる。
type EventHub struct {
	mu  sync.Mutex // レジストリ（テーブル・pollセット・保留リスト）を守るロック
	err error

	opened bool // 初回NextEventでプラットフォームオープン済みか

	table   deviceTable
	fds     []unix.PollFd   // 添字0はinotify。ユーザーデバイスは1から
	devices []*deviceRecord // fdsと添字を揃えた平行配列

	opening *queue.Queue // DEVICE_ADDED待ちのレコード
	closing *queue.Queue // DEVICE_REMOVED待ちのレコード

	excluded []string
	switches [consts.SwMax + 1]int32 // スイッチコード→最初に申告したデバイスのID

	haveFirstKeyboard bool
	firstKeyboardID   int32

	deviceDir     string
	keylayoutRoot string

	probe    deviceProbe
	wakeLock power.WakeLock
	props    props.Store
}

// NewEventHub はイベントハブを作成する。
// ウェイクロックとプロパティストアは注入し、プロセス共通の状態を持たない。
func NewEventHub(cfg *config.Config, lock power.WakeLock, store props.Store) *EventHub {
	root := cfg.Hub.KeylayoutRoot
	if root == "" {
		// 未設定なら環境変数に従う。どちらも空の場合は
		// カレントディレクトリ相対で解決される
		root = os.Getenv("ANDROID_ROOT")
	}

	h := &EventHub{
		err:           ErrUninitialized,
		opening:       queue.New(),
		closing:       queue.New(),
		deviceDir:     cfg.Hub.DeviceDir,
		keylayoutRoot: root,
		probe:         evdevProbe{},
		wakeLock:      lock,
		props:         store,
	}
	for _, name := range cfg.Hub.ExcludedDevices {
		h.excluded = append(h.excluded, name)
	}

	// 最初のpollで眠るまではロックを保持する
	h.wakeLock.AcquirePartial(wakeLockTag)
	return h
}

// ErrorCheck はプラットフォームオープンの結果を返す。
// 初回のNextEvent呼び出し前はErrUninitializedを返す
func (h *EventHub) ErrorCheck() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// AddExcludedDevice は検出時に無視するデバイス名を追加する
func (h *EventHub) AddExcludedDevice(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.excluded = append(h.excluded, name)
}

// getDeviceLocked は複合IDからレコードを引く。呼び出し元がロックを取る。
// ID 0はレガシー呼び出し向けにファーストキーボードへ付け替える。
func (h *EventHub) getDeviceLocked(id int32) *deviceRecord {
	if id == 0 {
		id = h.firstKeyboardID
	}
	return h.table.lookup(id)
}

// ListDevices は開いているデバイスのスナップショットを返す
func (h *EventHub) ListDevices() []DeviceInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]DeviceInfo, 0, len(h.devices))
	for i := 1; i < len(h.devices); i++ {
		rec := h.devices[i]
		out = append(out, DeviceInfo{
			ID:      rec.id,
			Path:    rec.path,
			Name:    rec.name,
			Classes: uint32(rec.classes),
		})
	}
	return out
}
