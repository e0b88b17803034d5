package keylayout

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// mapping はスキャンコード1つ分の変換結果
type mapping struct {
	keyCode int32
	flags   uint32
}

// KeyLayoutMap はスキャンコードからキーコードへの変換表を表す構造体。
// ロード前・ロード失敗後も空のマップとして安全に使える。
type KeyLayoutMap struct {
	byScanCode map[int32]mapping
	byKeyCode  map[int32][]int32
}

// NewKeyLayoutMap は空のキーレイアウトマップを作成する
func NewKeyLayoutMap() *KeyLayoutMap {
	return &KeyLayoutMap{
		byScanCode: make(map[int32]mapping),
		byKeyCode:  make(map[int32][]int32),
	}
}

// Load はキーレイアウトファイルを読み込む。
// 書式は1行につき「key <スキャンコード> <キーコードラベル> [フラグ...]」。
// 解析できない行はスキップして読み込みを続ける。
func (m *KeyLayoutMap) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("キーレイアウトファイルを開けませんでした: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] != "key" || len(fields) < 3 {
			log.Printf("%s:%d: 解析できない行をスキップします: %q", path, lineno, scanner.Text())
			continue
		}

		scanCode, err := strconv.ParseInt(fields[1], 0, 32)
		if err != nil {
			log.Printf("%s:%d: 不正なスキャンコード %q", path, lineno, fields[1])
			continue
		}
		keyCode, ok := keyCodeLabels[fields[2]]
		if !ok {
			log.Printf("%s:%d: 未知のキーコードラベル %q", path, lineno, fields[2])
			continue
		}

		var flags uint32
		for _, fl := range fields[3:] {
			v, ok := flagLabels[fl]
			if !ok {
				log.Printf("%s:%d: 未知のフラグ %q", path, lineno, fl)
				continue
			}
			flags |= v
		}

		sc := int32(scanCode)
		m.byScanCode[sc] = mapping{keyCode: keyCode, flags: flags}
		m.byKeyCode[keyCode] = append(m.byKeyCode[keyCode], sc)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("キーレイアウトファイルの読み込みに失敗しました: %w", err)
	}
	return nil
}

// Map はスキャンコードをキーコードとフラグに変換する
func (m *KeyLayoutMap) Map(scanCode int32) (keyCode int32, flags uint32, ok bool) {
	e, ok := m.byScanCode[scanCode]
	if !ok {
		return 0, 0, false
	}
	return e.keyCode, e.flags, true
}

// FindScancodes はキーコードに対応するスキャンコードの一覧を返す（逆引き）
func (m *KeyLayoutMap) FindScancodes(keyCode int32) []int32 {
	return m.byKeyCode[keyCode]
}

// Size は登録済みのスキャンコード数を返す
func (m *KeyLayoutMap) Size() int {
	return len(m.byScanCode)
}
