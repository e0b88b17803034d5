package props

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	s.Set("hw.keyboards.0.devname", "omap-keypad")
	if got := s.Get("hw.keyboards.0.devname"); got != "omap-keypad" {
		t.Errorf("Get = %q", got)
	}

	// 未設定のキーは空文字列
	if got := s.Get("no.such.key"); got != "" {
		t.Errorf("未設定キーのGet = %q", got)
	}

	s.Set("hw.keyboards.0.devname", "other")
	if got := s.Get("hw.keyboards.0.devname"); got != "other" {
		t.Errorf("上書き後のGet = %q", got)
	}

	s.Clear("hw.keyboards.0.devname")
	if got := s.Get("hw.keyboards.0.devname"); got != "" {
		t.Errorf("Clear後のGet = %q", got)
	}
}

func TestMemoryStoreAll(t *testing.T) {
	s := NewMemoryStore()
	s.Set("a", "1")
	s.Set("b", "2")

	all := s.All()
	if len(all) != 2 || all["a"] != "1" || all["b"] != "2" {
		t.Errorf("All = %v", all)
	}

	// Allはスナップショットであり、書き換えてもストアに影響しない
	all["a"] = "changed"
	if got := s.Get("a"); got != "1" {
		t.Errorf("スナップショット変更後のGet = %q", got)
	}
}
