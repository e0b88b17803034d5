package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/browser"

	"github.com/char5742/input-hub/internal/api"
	"github.com/char5742/input-hub/internal/config"
	"github.com/char5742/input-hub/internal/hub"
	"github.com/char5742/input-hub/internal/power"
	"github.com/char5742/input-hub/internal/props"
	"github.com/char5742/input-hub/internal/types"
)

func main() {
	// コマンドライン引数の解析
	configPath := flag.String("config", "", "設定ファイルのパス (指定しない場合はデフォルトパスを使用)")
	useApi := flag.Bool("api", false, "状態確認用のAPIサーバーも起動します")
	openPage := flag.Bool("open", false, "APIサーバーのデバイス一覧をブラウザで開きます")
	verbose := flag.Bool("verbose", false, "受信したイベントをすべて表示します")
	flag.Parse()

	// デフォルト設定ファイルパスの設定
	defaultConfigPath := ""
	configDir, err := config.GetDefaultConfigDir()
	if err == nil {
		defaultConfigPath = filepath.Join(configDir, "config.toml")
	}

	// 設定ファイルパスの決定
	cfgPath := defaultConfigPath
	if *configPath != "" {
		cfgPath = *configPath
	}

	// 設定ファイルの読み込み
	var cfg *config.Config
	if cfgPath != "" {
		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			fmt.Printf("設定ファイルの読み込みに失敗しました: %v\nデフォルト設定を使用します\n", err)
			cfg = config.DefaultConfig()
		} else {
			fmt.Printf("設定ファイルを読み込みました: %s\n", cfgPath)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	// シグナルハンドラの設定
	handleSignals()

	// ウェイクロックとプロパティストアを用意してハブを作成
	wakeLock := chooseWakeLock()
	store := props.NewMemoryStore()
	eventHub := hub.NewEventHub(cfg, wakeLock, store)

	// 設定ファイルの変更を監視して除外リストへ反映する
	if cfgPath != "" {
		watcher, err := config.WatchConfig(cfgPath, func(newCfg *config.Config) {
			for _, name := range newCfg.Hub.ExcludedDevices {
				eventHub.AddExcludedDevice(name)
			}
		})
		if err != nil {
			log.Printf("設定ファイルの監視を開始できませんでした: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	// APIサーバーの起動
	if *useApi || *openPage {
		server := api.NewServer(eventHub, store, cfg, cfg.API.Port)
		go func() {
			if err := server.Start(); err != nil {
				log.Printf("APIサーバーの起動に失敗しました: %v", err)
			}
		}()
		if *openPage {
			url := fmt.Sprintf("http://localhost:%d/api/devices", cfg.API.Port)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("ブラウザを開けませんでした: %v", err)
			}
		}
	}

	// イベントポンプ。NextEventの呼び出し元はこのループだけ
	for {
		ev := eventHub.NextEvent()
		switch ev.Type {
		case types.DeviceAdded:
			name, _ := eventHub.DeviceName(ev.DeviceID)
			classes, _ := eventHub.DeviceClasses(ev.DeviceID)
			fmt.Printf("デバイス追加: id=0x%x name=%q classes=0x%x\n", ev.DeviceID, name, classes)
		case types.DeviceRemoved:
			fmt.Printf("デバイス削除: id=0x%x\n", ev.DeviceID)
		default:
			if *verbose {
				fmt.Printf("イベント: id=0x%x type=%d scancode=%d keycode=%d flags=0x%x value=%d when=%d\n",
					ev.DeviceID, ev.Type, ev.ScanCode, ev.KeyCode, ev.Flags, ev.Value, ev.When)
			}
		}
	}
}

// chooseWakeLock は環境に応じたウェイクロック実装を選ぶ
func chooseWakeLock() power.WakeLock {
	if _, err := os.Stat("/sys/power/wake_lock"); err == nil {
		return power.NewSysfsWakeLock()
	}
	// wake_lockを持たない環境では計数のみの実装を使う
	return power.NewCountingWakeLock()
}

func handleSignals() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("シャットダウンします...")
		os.Exit(0)
	}()
}
