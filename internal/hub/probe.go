package hub

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/types"
	"github.com/char5742/input-hub/internal/utils"
)

// deviceProbe はデバイスのオープンと能力問い合わせを抽象化するインターフェース。
// 実機ではevdevのioctlを発行し、テストでは固定データを返す実装に差し替える。
type deviceProbe interface {
	open(path string) (int, error)
	close(fd int) error
	version(fd int) (int32, error)
	inputID(fd int) (types.InputID, error)
	name(fd int) (string, error)
	phys(fd int) (string, error)
	uniq(fd int) (string, error)
	// capBits は指定イベントタイプの能力ビットマスクを返す。
	// ioctlが失敗してもゼロ埋めのバッファを返す（能力なしとして扱う）。
	capBits(fd int, evType int, maxCode int) ([]byte, error)
	absInfo(fd int, axis int) (types.AbsInfo, error)
	keyState(fd int) ([]byte, error)
	swState(fd int) ([]byte, error)
}

// evdevProbe はカーネルのevdevインターフェースを直接叩く実装
type evdevProbe struct{}

func (evdevProbe) open(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
}

func (evdevProbe) close(fd int) error {
	return unix.Close(fd)
}

func (evdevProbe) version(fd int) (int32, error) {
	var version int32
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGVersion, 4), unsafe.Pointer(&version))
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (evdevProbe) inputID(fd int) (types.InputID, error) {
	var id types.InputID
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGID, int(unsafe.Sizeof(id))), unsafe.Pointer(&id))
	if err != nil {
		return types.InputID{}, err
	}
	return id, nil
}

func (evdevProbe) name(fd int) (string, error) {
	return readString(fd, consts.EviocGName)
}

func (evdevProbe) phys(fd int) (string, error) {
	return readString(fd, consts.EviocGPhys)
}

func (evdevProbe) uniq(fd int) (string, error) {
	return readString(fd, consts.EviocGUniq)
}

// readString は文字列を返すioctlを発行する。
// ioctlが失敗すれば空文字列とエラーを、1バイトも得られなければ空文字列とnilを返す。
func readString(fd int, nr int) (string, error) {
	var buf [80]byte
	n, err := utils.IOCtl(fd, utils.IocRead(nr, len(buf)-1), unsafe.Pointer(&buf[0]))
	if err != nil {
		return "", err
	}
	if n < 1 {
		return "", nil
	}
	// カーネルは終端NUL込みの長さを返す
	for i := 0; i < len(buf); i++ {
		if buf[i] == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf[:]), nil
}

func (evdevProbe) capBits(fd int, evType int, maxCode int) ([]byte, error) {
	buf := make([]byte, utils.BitmaskBytes(maxCode))
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGBit+evType, len(buf)), unsafe.Pointer(&buf[0]))
	return buf, err
}

func (evdevProbe) absInfo(fd int, axis int) (types.AbsInfo, error) {
	var info types.AbsInfo
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGAbs+axis, int(unsafe.Sizeof(info))), unsafe.Pointer(&info))
	if err != nil {
		return types.AbsInfo{}, err
	}
	return info, nil
}

func (evdevProbe) keyState(fd int) ([]byte, error) {
	buf := make([]byte, utils.BitmaskBytes(consts.KeyMax))
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGKey, len(buf)), unsafe.Pointer(&buf[0]))
	return buf, err
}

func (evdevProbe) swState(fd int) ([]byte, error) {
	buf := make([]byte, utils.BitmaskBytes(consts.SwMax))
	_, err := utils.IOCtl(fd, utils.IocRead(consts.EviocGSw, len(buf)), unsafe.Pointer(&buf[0]))
	return buf, err
}
