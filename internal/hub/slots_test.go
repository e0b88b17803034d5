package hub

import "testing"

func TestAllocateReusesLowestSlot(t *testing.T) {
	var table deviceTable

	a := table.allocate()
	table.place(a, &deviceRecord{id: table.nextID(a)})
	b := table.allocate()
	table.place(b, &deviceRecord{id: table.nextID(b)})
	c := table.allocate()
	table.place(c, &deviceRecord{id: table.nextID(c)})

	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("スロット割り当て = %d, %d, %d", a, b, c)
	}

	// 途中のスロットを空けると次の割り当てで再利用される
	table.release(b)
	if got := table.allocate(); got != b {
		t.Errorf("allocate() = %d, want %d", got, b)
	}
}

func TestNextIDAdvancesSequence(t *testing.T) {
	var table deviceTable
	slot := table.allocate()

	id1 := table.nextID(slot)
	id2 := table.nextID(slot)

	if id1&slotMask != int32(slot) || id2&slotMask != int32(slot) {
		t.Fatalf("下位16bitはスロット番号のはず: 0x%x, 0x%x", id1, id2)
	}
	if id1 == id2 {
		t.Error("世代が進むためIDは変わるはず")
	}
	if id1>>seqShift != 1 || id2>>seqShift != 2 {
		t.Errorf("世代 = %d, %d, want 1, 2", id1>>seqShift, id2>>seqShift)
	}
}

func TestSequenceWrapsToOne(t *testing.T) {
	var table deviceTable
	slot := table.allocate()

	// 0x7fffの次は0を飛ばして1に戻る
	table.slots[slot].seq = seqMask
	id := table.nextID(slot)
	if id>>seqShift != 1 {
		t.Errorf("ラップ後の世代 = %d, want 1", id>>seqShift)
	}
}

func TestLookup(t *testing.T) {
	var table deviceTable
	slot := table.allocate()
	id := table.nextID(slot)
	rec := &deviceRecord{id: id}
	table.place(slot, rec)

	if got := table.lookup(id); got != rec {
		t.Fatal("登録済みIDのlookupが失敗しました")
	}

	// 範囲外のスロット
	if got := table.lookup(0x7fff); got != nil {
		t.Errorf("範囲外スロットのlookup = %v", got)
	}

	// スロット解放後は引けない
	table.release(slot)
	if got := table.lookup(id); got != nil {
		t.Error("解放済みスロットのlookupはnilのはず")
	}

	// 再割り当て後、古いIDでは引けない
	newID := table.nextID(slot)
	table.place(slot, &deviceRecord{id: newID})
	if got := table.lookup(id); got != nil {
		t.Error("古い世代のIDで新しいレコードが引けてしまいました")
	}
	if got := table.lookup(newID); got == nil {
		t.Error("新しいIDのlookupが失敗しました")
	}
}
