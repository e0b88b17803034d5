package hub

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/char5742/input-hub/internal/config"
	"github.com/char5742/input-hub/internal/consts"
	"github.com/char5742/input-hub/internal/power"
	"github.com/char5742/input-hub/internal/props"
	"github.com/char5742/input-hub/internal/types"
	"github.com/char5742/input-hub/internal/utils"
)

// fakeDevice は能力問い合わせに対する固定の応答を表す
type fakeDevice struct {
	version    int32
	versionErr error
	inputID    types.InputID
	name       string

	keyBits []byte
	relBits []byte
	absBits []byte
	swBits  []byte

	keyStateBits []byte
	swStateBits  []byte
	absInfos     map[int]types.AbsInfo
	absErr       error
}

// fakeProbe はパスごとに用意した固定データを返すdeviceProbe実装。
// openは実ファイルを開くため、FIFOを置けばポンプのpollもそのまま動く。
type fakeProbe struct {
	devices map[string]*fakeDevice
	byFd    map[int]*fakeDevice
}

func newFakeProbe() *fakeProbe {
	return &fakeProbe{
		devices: make(map[string]*fakeDevice),
		byFd:    make(map[int]*fakeDevice),
	}
}

func (p *fakeProbe) open(path string) (int, error) {
	d, ok := p.devices[path]
	if !ok {
		return -1, unix.ENODEV
	}
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return -1, err
	}
	p.byFd[fd] = d
	return fd, nil
}

func (p *fakeProbe) close(fd int) error {
	delete(p.byFd, fd)
	return unix.Close(fd)
}

func (p *fakeProbe) version(fd int) (int32, error) {
	d := p.byFd[fd]
	if d.versionErr != nil {
		return 0, d.versionErr
	}
	return d.version, nil
}

func (p *fakeProbe) inputID(fd int) (types.InputID, error) {
	return p.byFd[fd].inputID, nil
}

func (p *fakeProbe) name(fd int) (string, error) {
	return p.byFd[fd].name, nil
}

func (p *fakeProbe) phys(fd int) (string, error) { return "", nil }
func (p *fakeProbe) uniq(fd int) (string, error) { return "", nil }

func (p *fakeProbe) capBits(fd int, evType int, maxCode int) ([]byte, error) {
	d := p.byFd[fd]
	var src []byte
	switch evType {
	case consts.EvKey:
		src = d.keyBits
	case consts.EvRel:
		src = d.relBits
	case consts.EvAbs:
		src = d.absBits
	case consts.EvSw:
		src = d.swBits
	}
	buf := make([]byte, utils.BitmaskBytes(maxCode))
	copy(buf, src)
	return buf, nil
}

func (p *fakeProbe) absInfo(fd int, axis int) (types.AbsInfo, error) {
	d := p.byFd[fd]
	if d.absErr != nil {
		return types.AbsInfo{}, d.absErr
	}
	info, ok := d.absInfos[axis]
	if !ok {
		return types.AbsInfo{}, unix.EINVAL
	}
	return info, nil
}

func (p *fakeProbe) keyState(fd int) ([]byte, error) {
	d := p.byFd[fd]
	buf := make([]byte, utils.BitmaskBytes(consts.KeyMax))
	copy(buf, d.keyStateBits)
	return buf, nil
}

func (p *fakeProbe) swState(fd int) ([]byte, error) {
	d := p.byFd[fd]
	buf := make([]byte, utils.BitmaskBytes(consts.SwMax))
	copy(buf, d.swStateBits)
	return buf, nil
}

// bits は指定コードのビットを立てたビットマスクを作る
func bits(maxCode int, codes ...int) []byte {
	b := make([]byte, utils.BitmaskBytes(maxCode))
	for _, c := range codes {
		b[c/8] |= 1 << (uint(c) % 8)
	}
	return b
}

// keyboardFixture はキーボードとして分類される最小のfakeDeviceを作る
func keyboardFixture(name string, scanCodes ...int) *fakeDevice {
	return &fakeDevice{
		version: 0x010001,
		name:    name,
		keyBits: bits(consts.KeyMax, scanCodes...),
	}
}

// writeKeylayoutRoot はkeylayout_rootとして使えるディレクトリを作り、
// qwerty.klをデフォルトとして置く
func writeKeylayoutRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeKl(t, root, "qwerty", "key 16 Q\nkey 30 A\n")
	return root
}

// writeKl はroot配下にキーレイアウトファイルを書く
func writeKl(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "usr", "keylayout")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".kl"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// touchFile はデバイスノードの代わりになる通常ファイルを作る
func touchFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// mkFifo はポンプから読み出せる疑似デバイスノードを作る
func mkFifo(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := unix.Mkfifo(path, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestHub はfakeProbeを差し込んだハブを作る
func newTestHub(t *testing.T, deviceDir, keylayoutRoot string, probe *fakeProbe) (*EventHub, *power.CountingWakeLock, props.Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Hub.DeviceDir = deviceDir
	cfg.Hub.KeylayoutRoot = keylayoutRoot

	lock := power.NewCountingWakeLock()
	store := props.NewMemoryStore()
	h := NewEventHub(cfg, lock, store)
	h.probe = probe
	return h, lock, store
}

// openPlatform は初回NextEventと同じプラットフォームオープンを実行する
func openPlatform(t *testing.T, h *EventHub) {
	t.Helper()
	if err := h.openPlatformInput(); err != nil {
		t.Fatalf("openPlatformInput: %v", err)
	}
	h.mu.Lock()
	h.err = nil
	h.mu.Unlock()
	h.opened = true
}

// nextEvent はタイムアウト付きでNextEventを呼ぶ
func nextEvent(t *testing.T, h *EventHub) types.InputEvent {
	t.Helper()
	ch := make(chan types.InputEvent, 1)
	go func() { ch <- h.NextEvent() }()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("NextEventがタイムアウトしました")
		return types.InputEvent{}
	}
}
