package hub

import (
	"encoding/binary"
	"log"

	"golang.org/x/sys/unix"
)

// openPlatformInput は初回のNextEvent呼び出しで一度だけ実行される。
// inotifyの監視を張り、すでに存在するデバイスをディレクトリ走査で拾う。
func (h *EventHub) openPlatformInput() error {
	h.fds = make([]unix.PollFd, 1, 8)
	h.devices = make([]*deviceRecord, 1, 8)

	// 添字0はinotify専用。使えない環境では-1の番兵を置き、
	// 起動後のデバイス増減は観測されなくなる
	h.fds[0] = unix.PollFd{Fd: -1, Events: unix.POLLIN}

	ifd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		log.Printf("inotifyを初期化できませんでした: %v", err)
	} else {
		h.fds[0].Fd = int32(ifd)
		if _, err := unix.InotifyAddWatch(ifd, h.deviceDir, unix.IN_DELETE|unix.IN_CREATE); err != nil {
			log.Printf("%s の監視を追加できませんでした: %v", h.deviceDir, err)
		}
	}

	if err := h.scanDir(h.deviceDir); err != nil {
		log.Printf("%s の走査に失敗しました: %v", h.deviceDir, err)
	}

	return nil
}

// inotifyレコードの固定長ヘッダーのバイト数
const inotifyEventSize = 16

// readNotify はinotifyの通知をまとめて読み出し、作成・削除に応じて
// デバイスの開閉を行う。fdsを書き換えるため、pollセットの走査が
// 終わったあとにだけ呼ぶこと。
func (h *EventHub) readNotify(nfd int) error {
	var buf [512]byte

	n, err := unix.Read(nfd, buf[:])
	if n < inotifyEventSize {
		if err == unix.EINTR {
			return nil
		}
		log.Printf("inotifyイベントを読み取れませんでした: %v", err)
		return err
	}

	offset := 0
	for offset+inotifyEventSize <= n {
		mask := binary.LittleEndian.Uint32(buf[offset+4 : offset+8])
		length := int(binary.LittleEndian.Uint32(buf[offset+12 : offset+16]))

		if length > 0 {
			nameBytes := buf[offset+inotifyEventSize : offset+inotifyEventSize+length]
			// 名前はNUL詰めで届く
			end := 0
			for end < len(nameBytes) && nameBytes[end] != 0 {
				end++
			}
			path := h.deviceDir + "/" + string(nameBytes[:end])

			if mask&unix.IN_CREATE != 0 {
				_ = h.openDevice(path)
			} else {
				_ = h.closeDevice(path)
			}
		}

		offset += inotifyEventSize + length
	}
	return nil
}
