package hub

import (
	"fmt"

	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/types"
	"github.com/char5742/input-hub/internal/utils"
)

// DeviceName はデバイスの人間向けの名前を返す
func (h *EventHub) DeviceName(id int32) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec == nil {
		return "", ErrNotFound
	}
	return rec.name, nil
}

// DeviceClasses はデバイスの分類ビットセットを返す
func (h *EventHub) DeviceClasses(id int32) (types.DeviceClass, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec == nil {
		return 0, ErrNotFound
	}
	return rec.classes, nil
}

// AbsoluteInfo は絶対軸の範囲情報を問い合わせる
func (h *EventHub) AbsoluteInfo(id int32, axis int) (types.AbsInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec == nil {
		return types.AbsInfo{}, ErrNotFound
	}
	info, err := h.probe.absInfo(rec.fd, axis)
	if err != nil {
		return types.AbsInfo{}, fmt.Errorf("軸 %d の情報を取得できませんでした (%s): %w", axis, rec.name, ErrIO)
	}
	return info, nil
}

// SwitchState はスイッチを申告しているデバイスに現在の状態を問い合わせる。
// どのデバイスも申告していなければエラーを返す
func (h *EventHub) SwitchState(sw int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sw < 0 || sw > consts.SwMax {
		return 0, ErrNotFound
	}
	devID := h.switches[sw]
	if devID == 0 {
		return 0, ErrNotFound
	}
	return h.switchStateLocked(devID, sw)
}

// SwitchStateForDevice は指定デバイスのスイッチ状態を問い合わせる
func (h *EventHub) SwitchStateForDevice(id int32, sw int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.switchStateLocked(id, sw)
}

func (h *EventHub) switchStateLocked(id int32, sw int) (int, error) {
	rec := h.getDeviceLocked(id)
	if rec == nil {
		return 0, ErrNotFound
	}
	if sw < 0 || sw > consts.SwMax {
		return 0, ErrNotFound
	}
	bits, err := h.probe.swState(rec.fd)
	if err != nil {
		return 0, fmt.Errorf("スイッチ状態を取得できませんでした (%s): %w", rec.name, ErrIO)
	}
	if utils.TestBit(sw, bits) {
		return 1, nil
	}
	return 0, nil
}

// ScancodeState はファーストキーボードのスキャンコード押下状態を返す
func (h *EventHub) ScancodeState(code int) (int, error) {
	h.mu.Lock()
	firstID := h.firstKeyboardID
	h.mu.Unlock()
	return h.ScancodeStateForDevice(firstID, code)
}

// ScancodeStateForDevice は指定デバイスのスキャンコード押下状態を返す
func (h *EventHub) ScancodeStateForDevice(id int32, code int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec == nil {
		return 0, ErrNotFound
	}
	if code < 0 || code > consts.KeyMax {
		return 0, ErrNotFound
	}
	bits, err := h.probe.keyState(rec.fd)
	if err != nil {
		return 0, fmt.Errorf("キー押下状態を取得できませんでした (%s): %w", rec.name, ErrIO)
	}
	if utils.TestBit(code, bits) {
		return 1, nil
	}
	return 0, nil
}

// KeycodeState はファーストキーボードのキーコード押下状態を返す
func (h *EventHub) KeycodeState(keyCode int32) (int, error) {
	h.mu.Lock()
	firstID := h.firstKeyboardID
	h.mu.Unlock()
	return h.KeycodeStateForDevice(firstID, keyCode)
}

// KeycodeStateForDevice はキーコードを逆引きしたスキャンコードのうち、
// いずれかが押されていれば1を返す
func (h *EventHub) KeycodeStateForDevice(id int32, keyCode int32) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec == nil {
		return 0, ErrNotFound
	}
	scanCodes := rec.layoutMap.FindScancodes(keyCode)
	bits, err := h.probe.keyState(rec.fd)
	if err != nil {
		return 0, fmt.Errorf("キー押下状態を取得できませんでした (%s): %w", rec.name, ErrIO)
	}
	for _, sc := range scanCodes {
		if sc >= 0 && sc <= consts.KeyMax && utils.TestBit(int(sc), bits) {
			return 1, nil
		}
	}
	return 0, nil
}

// ScancodeToKeycode はスキャンコードをキーコードへ変換する。
// 指定デバイスのマップで見つからなければファーストキーボードのマップを試す。
// この再試行は-keypadのファーストキーボードが指名済みの場合に限る
func (h *EventHub) ScancodeToKeycode(id int32, scanCode int32) (keyCode int32, flags uint32, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.getDeviceLocked(id)
	if rec != nil {
		if keyCode, flags, ok := rec.layoutMap.Map(scanCode); ok {
			return keyCode, flags, nil
		}
	}

	if h.haveFirstKeyboard {
		first := h.table.lookup(h.firstKeyboardID)
		if first != nil && first != rec {
			if keyCode, flags, ok := first.layoutMap.Map(scanCode); ok {
				return keyCode, flags, nil
			}
		}
	}

	return 0, 0, ErrNotFound
}

// HasKeys は各キーコードについて、逆引きしたスキャンコードを
// いずれかのデバイスが備えているかを調べる
func (h *EventHub) HasKeys(keyCodes []int32) []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]uint8, len(keyCodes))
	for i, keyCode := range keyCodes {
		for n := 1; n < len(h.devices) && out[i] == 0; n++ {
			rec := h.devices[n]
			for _, sc := range rec.layoutMap.FindScancodes(keyCode) {
				if utils.TestBit(int(sc), rec.keyBitmask) {
					out[i] = 1
					break
				}
			}
		}
	}
	return out
}
