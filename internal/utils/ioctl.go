package utils

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// _IOCマクロ相当の値（asm-generic/ioctl.hより）
const (
	iocWrite = 1
	iocRead  = 2

	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

// evdevのioctlタイプ文字
const eviocType = 'E'

// IocRead はevdev向けの読み出しioctlリクエスト番号を構築する
func IocRead(nr int, size int) uintptr {
	return uintptr(iocRead<<iocDirShift |
		int(eviocType)<<iocTypeShift |
		size<<iocSizeShift |
		nr<<iocNrShift)
}

// IOCtl はioctlを発行し、カーネルの戻り値をそのまま返す。
// 文字列系のioctlは格納したバイト数を返すため戻り値が意味を持つ。
func IOCtl(fd int, op uintptr, arg unsafe.Pointer) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), op, uintptr(arg))
	if errno != 0 {
		return -1, errno
	}
	return int(r), nil
}
