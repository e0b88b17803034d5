package power

import (
	"log"
	"os"
	"sync"
)

// WakeLock はシステムのサスペンドを抑止するためのインターフェース
type WakeLock interface {
	// 部分ウェイクロックを獲得する
	AcquirePartial(tag string)
	// タグで指定したウェイクロックを解放する
	Release(tag string)
}

// sysfsWakeLock はカーネルのwake_lockインターフェースへ書き込む実装
type sysfsWakeLock struct {
	lockPath   string
	unlockPath string
}

// NewSysfsWakeLock はsysfs経由のウェイクロックを作成する
func NewSysfsWakeLock() WakeLock {
	return &sysfsWakeLock{
		lockPath:   "/sys/power/wake_lock",
		unlockPath: "/sys/power/wake_unlock",
	}
}

func (w *sysfsWakeLock) AcquirePartial(tag string) {
	if err := writeTag(w.lockPath, tag); err != nil {
		log.Printf("ウェイクロックの獲得に失敗しました (%s): %v", tag, err)
	}
}

func (w *sysfsWakeLock) Release(tag string) {
	if err := writeTag(w.unlockPath, tag); err != nil {
		log.Printf("ウェイクロックの解放に失敗しました (%s): %v", tag, err)
	}
}

func writeTag(path, tag string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(tag)
	return err
}

// CountingWakeLock は獲得・解放の回数を数えるだけの実装。
// wake_lockを持たない環境での既定実装であり、テストの観測にも使う。
type CountingWakeLock struct {
	mu       sync.Mutex
	held     map[string]bool
	acquires int
	releases int
}

// NewCountingWakeLock は計数のみのウェイクロックを作成する
func NewCountingWakeLock() *CountingWakeLock {
	return &CountingWakeLock{held: make(map[string]bool)}
}

func (w *CountingWakeLock) AcquirePartial(tag string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.held[tag] = true
	w.acquires++
}

func (w *CountingWakeLock) Release(tag string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.held, tag)
	w.releases++
}

// Held はタグのロックを保持中かを返す
func (w *CountingWakeLock) Held(tag string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.held[tag]
}

// Counts はこれまでの獲得・解放回数を返す
func (w *CountingWakeLock) Counts() (acquires, releases int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.acquires, w.releases
}
