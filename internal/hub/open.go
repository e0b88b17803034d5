package hub

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/keylayout"
	"github.com/char5742/input-hub/internal/types"
	"github.com/char5742/input-hub/internal/utils"
)

// scanDir はディレクトリ内の全エントリをデバイス候補として開く
func (h *EventHub) scanDir(dirname string) error {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		// 個々の失敗は記録済みなので走査は続ける
		_ = h.openDevice(dirname + "/" + entry.Name())
	}
	return nil
}

// openDevice はデバイスファイルを開いて能力を調べ、分類してレジストリへ登録する。
// 候補ごとの失敗はこのデバイスを捨てるだけで、呼び出し元の走査は継続できる。
func (h *EventHub) openDevice(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	fd, err := h.probe.open(path)
	if err != nil {
		log.Printf("%s を開けませんでした: %v", path, err)
		return err
	}

	// バージョンとIDが取れないものはevdevデバイスではない
	version, err := h.probe.version(fd)
	if err != nil {
		log.Printf("%s のドライバーバージョンを取得できませんでした: %v", path, err)
		h.probe.close(fd)
		return err
	}
	devID, err := h.probe.inputID(fd)
	if err != nil {
		log.Printf("%s のドライバーIDを取得できませんでした: %v", path, err)
		h.probe.close(fd)
		return err
	}

	// 名前・物理位置・固有IDは取れなくても致命的ではない
	name, _ := h.probe.name(fd)
	phys, _ := h.probe.phys(fd)
	uniq, _ := h.probe.uniq(fd)

	// 除外リストとの照合はバイト単位の完全一致
	for _, excluded := range h.excluded {
		if name == excluded {
			log.Printf("除外対象のデバイスを無視します: %s (%s)", path, name)
			h.probe.close(fd)
			return fmt.Errorf("デバイス %q は除外されています", name)
		}
	}

	slot := h.table.allocate()
	id := h.table.nextID(slot)

	rec := &deviceRecord{
		id:        id,
		path:      path,
		name:      name,
		fd:        fd,
		layoutMap: keylayout.NewKeyLayoutMap(),
	}

	// キーボード判定。BTN_MISC未満のキーだけを根拠にする。
	// メディアキーしか持たないリモコン類をキーボード扱いしないため
	keyBits, _ := h.probe.capBits(fd, consts.EvKey, consts.KeyMax)
	for i := 0; i < utils.BitmaskBytes(consts.BtnMisc-1); i++ {
		if keyBits[i] != 0 {
			rec.classes |= types.ClassKeyboard
			break
		}
	}
	if rec.classes.Has(types.ClassKeyboard) {
		rec.keyBitmask = make([]byte, len(keyBits))
		copy(rec.keyBitmask, keyBits)
	}

	// マウス・トラックボール判定
	if utils.TestBit(consts.BtnMouse, keyBits) {
		relBits, _ := h.probe.capBits(fd, consts.EvRel, consts.RelMax)
		if utils.TestBit(consts.RelX, relBits) && utils.TestBit(consts.RelY, relBits) {
			if utils.TestBit(consts.BtnLeft, keyBits) && utils.TestBit(consts.BtnRight, keyBits) {
				rec.classes |= types.ClassMouse
			} else {
				rec.classes |= types.ClassTrackball
			}
		}
	}

	// タッチスクリーン判定
	absBits, _ := h.probe.capBits(fd, consts.EvAbs, consts.AbsMax)
	if utils.TestBit(consts.AbsMtTouchMajor, absBits) &&
		utils.TestBit(consts.AbsMtPositionX, absBits) &&
		utils.TestBit(consts.AbsMtPositionY, absBits) {
		// マルチタッチ対応ドライバー
		rec.classes |= types.ClassTouchscreen | types.ClassTouchscreenMT
	} else if utils.TestBit(consts.BtnTouch, keyBits) &&
		utils.TestBit(consts.AbsX, absBits) && utils.TestBit(consts.AbsY, absBits) {
		// 旧来のシングルタッチドライバー
		rec.classes |= types.ClassTouchscreen
	}

	// スイッチの申告。各スイッチは最初に申告したデバイスのものになる
	swBits, _ := h.probe.capBits(fd, consts.EvSw, consts.SwMax)
	for i := 0; i <= consts.SwMax; i++ {
		if utils.TestBit(i, swBits) && h.switches[i] == 0 {
			h.switches[i] = rec.id
		}
	}
	if h.switches[consts.SwHeadphoneInsert] == rec.id {
		rec.classes |= types.ClassHeadset
	}

	if rec.classes.Has(types.ClassKeyboard) {
		h.setupKeyboardLocked(rec)
	}

	// どのクラスにも当てはまらないデバイスは監視しない
	if rec.classes == 0 {
		log.Printf("対象外のデバイスを破棄します: %s (%s)", path, name)
		for i := 0; i <= consts.SwMax; i++ {
			if h.switches[i] == rec.id {
				h.switches[i] = 0
			}
		}
		h.probe.close(fd)
		return fmt.Errorf("デバイス %q は対象外です", path)
	}

	h.table.place(slot, rec)
	h.fds = append(h.fds, unix.PollFd{Fd: int32(fd), Events: unix.POLLIN})
	h.devices = append(h.devices, rec)
	h.opening.Add(rec)

	log.Printf("新しいデバイス: path=%s name=%q phys=%q uniq=%q id=0x%x fd=%d classes=0x%x version=%d.%d.%d bus=0x%04x",
		path, name, phys, uniq, rec.id, fd, rec.classes,
		version>>16, (version>>8)&0xff, version&0xff, devID.Bustype)
	return nil
}

// setupKeyboardLocked はキーレイアウトの読み込みとキーボード固有の分類を行う
func (h *EventHub) setupKeyboardLocked(rec *deviceRecord) {
	// デバイス名の空白をアンダースコアに置き換えて.klファイル名を作る
	layoutName := strings.ReplaceAll(rec.name, " ", "_")
	// ルートが空ならカレントディレクトリ相対で解決する
	layoutDir := "usr/keylayout"
	if h.keylayoutRoot != "" {
		layoutDir = h.keylayoutRoot + "/" + layoutDir
	}
	layoutPath := fmt.Sprintf("%s/%s.kl", layoutDir, layoutName)
	if unix.Access(layoutPath, unix.R_OK) != nil {
		layoutPath = fmt.Sprintf("%s/qwerty.kl", layoutDir)
		rec.defaultKeymap = true
	}
	if err := rec.layoutMap.Load(layoutPath); err != nil {
		log.Printf("キーレイアウトを読み込めませんでした: %v", err)
	}

	if !h.haveFirstKeyboard && !rec.defaultKeymap && strings.Contains(rec.name, "-keypad") {
		// 内蔵キーボードはID 0の別名として公開される
		h.haveFirstKeyboard = true
		h.firstKeyboardID = rec.id
		h.props.Set("hw.keyboards.0.devname", rec.name)
	} else if h.firstKeyboardID == 0 {
		h.firstKeyboardID = rec.id
	}
	h.props.Set(fmt.Sprintf("hw.keyboards.%d.devname", uint32(rec.id)), rec.name)

	// Qキーの有無でアルファベット入力可否を判定する
	if h.hasKeycodeLocked(rec, keylayout.KeyCodeQ) {
		rec.classes |= types.ClassAlphakey
	}

	// 5方向すべて揃っていればDPADとみなす
	if h.hasKeycodeLocked(rec, keylayout.KeyCodeDpadUp) &&
		h.hasKeycodeLocked(rec, keylayout.KeyCodeDpadDown) &&
		h.hasKeycodeLocked(rec, keylayout.KeyCodeDpadLeft) &&
		h.hasKeycodeLocked(rec, keylayout.KeyCodeDpadRight) &&
		h.hasKeycodeLocked(rec, keylayout.KeyCodeDpadCenter) {
		rec.classes |= types.ClassDpad
	}

	log.Printf("新しいキーボード: id=0x%x name=%q keylayout=%q default=%v",
		rec.id, rec.name, layoutPath, rec.defaultKeymap)
}

// hasKeycodeLocked はキーコードに対応するスキャンコードのいずれかを
// デバイスが実際に備えているかを返す
func (h *EventHub) hasKeycodeLocked(rec *deviceRecord, keyCode int32) bool {
	if rec.keyBitmask == nil {
		return false
	}
	for _, sc := range rec.layoutMap.FindScancodes(keyCode) {
		if sc >= 0 && sc <= consts.KeyMax && utils.TestBit(int(sc), rec.keyBitmask) {
			return true
		}
	}
	return false
}

// closeDevice はパスが一致する開済みデバイスを閉じてレジストリから外す。
// DEVICE_REMOVEDの通知はポンプが保留リスト経由で行う
func (h *EventHub) closeDevice(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := 1; i < len(h.fds); i++ {
		rec := h.devices[i]
		if rec.path != path {
			continue
		}

		log.Printf("デバイスを取り外します: path=%s name=%q id=0x%x fd=%d classes=0x%x",
			rec.path, rec.name, rec.id, rec.fd, rec.classes)

		// スロットを空ける（世代カウンターは残す）
		h.table.release(int(rec.id & slotMask))

		// fdを閉じてpollセットと平行配列を詰める
		h.probe.close(rec.fd)
		h.fds = append(h.fds[:i], h.fds[i+1:]...)
		h.devices = append(h.devices[:i], h.devices[i+1:]...)

		// このデバイスが申告していたスイッチを解放する
		for j := 0; j <= consts.SwMax; j++ {
			if h.switches[j] == rec.id {
				h.switches[j] = 0
			}
		}

		h.closing.Add(rec)

		if rec.id == h.firstKeyboardID {
			log.Printf("内蔵キーボード %s (id=0x%x) が取り外されました。ID 0の別名は無効になります",
				rec.path, rec.id)
			h.firstKeyboardID = 0
			h.props.Clear("hw.keyboards.0.devname")
		}
		h.props.Clear(fmt.Sprintf("hw.keyboards.%d.devname", uint32(rec.id)))
		return nil
	}

	log.Printf("取り外し対象が見つかりませんでした: %s", path)
	return ErrNotFound
}
