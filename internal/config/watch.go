package config

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher は設定ファイルの変更を監視する構造体
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback func(*Config)
	stopChan chan struct{}
}

// WatchConfig は設定ファイルの変更監視を開始する。
// ファイルが書き換えられるたびに再読み込みしてコールバックへ渡す。
func WatchConfig(configPath string, callback func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// エディタの保存はrename+createで届くことがあるためディレクトリごと監視する
	if err := fw.Add(filepath.Dir(configPath)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     configPath,
		callback: callback,
		stopChan: make(chan struct{}),
	}
	go w.watchEvents()
	return w, nil
}

// Stop は監視を停止する
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.watcher.Close()
}

// watchEvents はfsnotifyのイベントを監視する
func (w *Watcher) watchEvents() {
	// 連続する書き込みイベントをまとめて処理するためのしくみ
	debounce := 500 * time.Millisecond
	timer := time.NewTimer(debounce)
	timer.Stop()
	pendingReload := false

	for {
		select {
		case <-w.stopChan:
			return

		case <-timer.C:
			if pendingReload {
				pendingReload = false
				cfg, err := LoadConfig(w.path)
				if err != nil {
					log.Printf("設定ファイルの再読み込みに失敗しました: %v", err)
					continue
				}
				log.Printf("設定ファイルを再読み込みしました: %s", w.path)
				w.callback(cfg)
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				if !pendingReload {
					pendingReload = true
					timer.Reset(debounce)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("設定ファイル監視エラー: %v", err)
		}
	}
}
