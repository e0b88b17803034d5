package consts

// イベントタイプの定数（input-event-codes.hより）
const (
	EvSyn = 0x00 // 同期イベント
	EvKey = 0x01 // キーイベント
	EvRel = 0x02 // 相対座標イベント
	EvAbs = 0x03 // 絶対座標イベント
	EvMsc = 0x04 // その他のイベント
	EvSw  = 0x05 // スイッチイベント
)

// 各イベントタイプのコード上限値
const (
	KeyMax = 0x2ff // キーコードの最大値
	RelMax = 0x0f  // 相対軸コードの最大値
	AbsMax = 0x3f  // 絶対軸コードの最大値
	SwMax  = 0x10  // スイッチコードの最大値
)

// キー・ボタンコードの定数
const (
	BtnMisc  = 0x100 // ボタンコードの先頭（これ未満が通常キー）
	BtnMouse = 0x110 // マウスボタンの先頭
	BtnLeft  = 0x110 // マウス左ボタン
	BtnRight = 0x111 // マウス右ボタン
	BtnTouch = 0x14a // 画面タッチの検出
)

// 相対軸コードの定数
const (
	RelX = 0x00 // X軸の相対移動
	RelY = 0x01 // Y軸の相対移動
)

// 絶対軸コードの定数
const (
	AbsX            = 0x00 // X軸の絶対座標
	AbsY            = 0x01 // Y軸の絶対座標
	AbsMtTouchMajor = 0x30 // タッチ領域の長径
	AbsMtPositionX  = 0x35 // マルチタッチのX座標
	AbsMtPositionY  = 0x36 // マルチタッチのY座標
)

// スイッチコードの定数
const (
	SwHeadphoneInsert = 0x02 // ヘッドホン挿入スイッチ
)

// evdevのioctl番号定義（input.hの_IOR/_IOCマクロに対応）
const (
	EviocGVersion = 0x01 // ドライバーバージョン取得
	EviocGID      = 0x02 // デバイスID取得
	EviocGName    = 0x06 // デバイス名取得
	EviocGPhys    = 0x07 // 物理位置取得
	EviocGUniq    = 0x08 // 固有ID取得
	EviocGKey     = 0x18 // キー押下状態取得
	EviocGSw      = 0x1b // スイッチ状態取得
	EviocGBit     = 0x20 // 能力ビットマスク取得（+イベントタイプ）
	EviocGAbs     = 0x40 // 絶対軸情報取得（+軸番号）
)
