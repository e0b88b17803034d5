package hub

import (
	"encoding/binary"
	"log"
	"time"

	"golang.org/x/sys/unix"

	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/types"
)

// NextEvent は次のフレームワークイベントを1件返す。
// 呼び出し元は専用のゴルーチン1つに限る。イベントが来るまでブロックし、
// 待機中はウェイクロックを手放してシステムのサスペンドを許す。
func (h *EventHub) NextEvent() types.InputEvent {
	var ev types.InputEvent

	if !h.opened {
		err := h.openPlatformInput()
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
		h.opened = true
	}

	for {
		// まず取り外し済みデバイスの報告を済ませる
		h.mu.Lock()
		if h.closing.Length() > 0 {
			rec := h.closing.Remove().(*deviceRecord)
			ev.DeviceID = rec.id
			if ev.DeviceID == h.firstKeyboardID {
				ev.DeviceID = 0
			}
			h.mu.Unlock()
			ev.Type = types.DeviceRemoved
			log.Printf("デバイスの取り外しを報告します: id=0x%x path=%s", rec.id, rec.path)
			return ev
		}

		// 次に追加済みデバイスの報告
		if h.opening.Length() > 0 {
			rec := h.opening.Remove().(*deviceRecord)
			ev.DeviceID = rec.id
			if ev.DeviceID == h.firstKeyboardID {
				ev.DeviceID = 0
			}
			h.mu.Unlock()
			ev.Type = types.DeviceAdded
			log.Printf("デバイスの追加を報告します: id=0x%x path=%s", rec.id, rec.path)
			return ev
		}
		h.mu.Unlock()

		// 待機の間だけウェイクロックを手放す
		h.wakeLock.Release(wakeLockTag)
		n, err := unix.Poll(h.fds, -1)
		h.wakeLock.AcquirePartial(wakeLockTag)

		if n <= 0 {
			if err != unix.EINTR {
				log.Printf("pollに失敗しました: %v", err)
				time.Sleep(100 * time.Millisecond)
			}
			continue
		}

		// 添字0はinotifyなので、通常イベントは1から走査する
		for i := 1; i < len(h.fds); i++ {
			if h.fds[i].Revents&unix.POLLIN == 0 {
				continue
			}

			var buf [types.EventSize]byte
			res, err := unix.Read(int(h.fds[i].Fd), buf[:])
			if res != types.EventSize {
				if err != nil {
					log.Printf("イベントを読み取れませんでした: %v", err)
				} else {
					log.Printf("イベントのサイズが不正です: %d", res)
				}
				continue
			}

			raw := parseInputEvent(buf[:])
			rec := h.devices[i]

			ev.DeviceID = rec.id
			if ev.DeviceID == h.firstKeyboardID {
				ev.DeviceID = 0
			}
			ev.Type = int32(raw.Type)
			ev.ScanCode = int32(raw.Code)
			if raw.Type == consts.EvKey {
				keyCode, flags, ok := rec.layoutMap.Map(int32(raw.Code))
				if ok {
					ev.KeyCode = keyCode
					ev.Flags = flags
				} else {
					// 変換できなくてもイベント自体は届ける
					ev.KeyCode = 0
					ev.Flags = 0
				}
			} else {
				ev.KeyCode = ev.ScanCode
			}
			ev.Value = raw.Value
			ev.When = raw.Time.Sec*1e9 + raw.Time.Usec*1e3
			return ev
		}

		// inotifyの処理はfdsを書き換えるため、走査が終わってから行う
		if h.fds[0].Revents&unix.POLLIN != 0 {
			_ = h.readNotify(int(h.fds[0].Fd))
		}
	}
}

// parseInputEvent は生のstruct input_eventをデコードする
func parseInputEvent(buf []byte) types.Event {
	var e types.Event
	e.Time.Sec = int64(binary.LittleEndian.Uint64(buf[0:8]))
	e.Time.Usec = int64(binary.LittleEndian.Uint64(buf[8:16]))
	e.Type = binary.LittleEndian.Uint16(buf[16:18])
	e.Code = binary.LittleEndian.Uint16(buf[18:20])
	e.Value = int32(binary.LittleEndian.Uint32(buf[20:24]))
	return e
}
