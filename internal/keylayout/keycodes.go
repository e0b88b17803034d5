package keylayout

// フレームワークキーコードの定数。
// キーレイアウトファイル中のラベルはこの値に解決される。
const (
	KeyCodeUnknown          = 0
	KeyCodeSoftLeft         = 1
	KeyCodeSoftRight        = 2
	KeyCodeHome             = 3
	KeyCodeBack             = 4
	KeyCodeCall             = 5
	KeyCodeEndCall          = 6
	KeyCode0                = 7
	KeyCode1                = 8
	KeyCode2                = 9
	KeyCode3                = 10
	KeyCode4                = 11
	KeyCode5                = 12
	KeyCode6                = 13
	KeyCode7                = 14
	KeyCode8                = 15
	KeyCode9                = 16
	KeyCodeStar             = 17
	KeyCodePound            = 18
	KeyCodeDpadUp           = 19
	KeyCodeDpadDown         = 20
	KeyCodeDpadLeft         = 21
	KeyCodeDpadRight        = 22
	KeyCodeDpadCenter       = 23
	KeyCodeVolumeUp         = 24
	KeyCodeVolumeDown       = 25
	KeyCodePower            = 26
	KeyCodeCamera           = 27
	KeyCodeClear            = 28
	KeyCodeA                = 29
	KeyCodeB                = 30
	KeyCodeC                = 31
	KeyCodeD                = 32
	KeyCodeE                = 33
	KeyCodeF                = 34
	KeyCodeG                = 35
	KeyCodeH                = 36
	KeyCodeI                = 37
	KeyCodeJ                = 38
	KeyCodeK                = 39
	KeyCodeL                = 40
	KeyCodeM                = 41
	KeyCodeN                = 42
	KeyCodeO                = 43
	KeyCodeP                = 44
	KeyCodeQ                = 45
	KeyCodeR                = 46
	KeyCodeS                = 47
	KeyCodeT                = 48
	KeyCodeU                = 49
	KeyCodeV                = 50
	KeyCodeW                = 51
	KeyCodeX                = 52
	KeyCodeY                = 53
	KeyCodeZ                = 54
	KeyCodeComma            = 55
	KeyCodePeriod           = 56
	KeyCodeAltLeft          = 57
	KeyCodeAltRight         = 58
	KeyCodeShiftLeft        = 59
	KeyCodeShiftRight       = 60
	KeyCodeTab              = 61
	KeyCodeSpace            = 62
	KeyCodeSym              = 63
	KeyCodeExplorer         = 64
	KeyCodeEnvelope         = 65
	KeyCodeEnter            = 66
	KeyCodeDel              = 67
	KeyCodeGrave            = 68
	KeyCodeMinus            = 69
	KeyCodeEquals           = 70
	KeyCodeLeftBracket      = 71
	KeyCodeRightBracket     = 72
	KeyCodeBackslash        = 73
	KeyCodeSemicolon        = 74
	KeyCodeApostrophe       = 75
	KeyCodeSlash            = 76
	KeyCodeAt               = 77
	KeyCodeNum              = 78
	KeyCodeHeadsetHook      = 79
	KeyCodeFocus            = 80
	KeyCodePlus             = 81
	KeyCodeMenu             = 82
	KeyCodeNotification     = 83
	KeyCodeSearch           = 84
	KeyCodeMediaPlayPause   = 85
	KeyCodeMediaStop        = 86
	KeyCodeMediaNext        = 87
	KeyCodeMediaPrevious    = 88
	KeyCodeMediaRewind      = 89
	KeyCodeMediaFastForward = 90
	KeyCodeMute             = 91
)

// keyCodeLabels は.klファイル中のラベルからキーコードへの対応表
var keyCodeLabels = map[string]int32{
	"SOFT_LEFT":          KeyCodeSoftLeft,
	"SOFT_RIGHT":         KeyCodeSoftRight,
	"HOME":               KeyCodeHome,
	"BACK":               KeyCodeBack,
	"CALL":               KeyCodeCall,
	"ENDCALL":            KeyCodeEndCall,
	"0":                  KeyCode0,
	"1":                  KeyCode1,
	"2":                  KeyCode2,
	"3":                  KeyCode3,
	"4":                  KeyCode4,
	"5":                  KeyCode5,
	"6":                  KeyCode6,
	"7":                  KeyCode7,
	"8":                  KeyCode8,
	"9":                  KeyCode9,
	"STAR":               KeyCodeStar,
	"POUND":              KeyCodePound,
	"DPAD_UP":            KeyCodeDpadUp,
	"DPAD_DOWN":          KeyCodeDpadDown,
	"DPAD_LEFT":          KeyCodeDpadLeft,
	"DPAD_RIGHT":         KeyCodeDpadRight,
	"DPAD_CENTER":        KeyCodeDpadCenter,
	"VOLUME_UP":          KeyCodeVolumeUp,
	"VOLUME_DOWN":        KeyCodeVolumeDown,
	"POWER":              KeyCodePower,
	"CAMERA":             KeyCodeCamera,
	"CLEAR":              KeyCodeClear,
	"A":                  KeyCodeA,
	"B":                  KeyCodeB,
	"C":                  KeyCodeC,
	"D":                  KeyCodeD,
	"E":                  KeyCodeE,
	"F":                  KeyCodeF,
	"G":                  KeyCodeG,
	"H":                  KeyCodeH,
	"I":                  KeyCodeI,
	"J":                  KeyCodeJ,
	"K":                  KeyCodeK,
	"L":                  KeyCodeL,
	"M":                  KeyCodeM,
	"N":                  KeyCodeN,
	"O":                  KeyCodeO,
	"P":                  KeyCodeP,
	"Q":                  KeyCodeQ,
	"R":                  KeyCodeR,
	"S":                  KeyCodeS,
	"T":                  KeyCodeT,
	"U":                  KeyCodeU,
	"V":                  KeyCodeV,
	"W":                  KeyCodeW,
	"X":                  KeyCodeX,
	"Y":                  KeyCodeY,
	"Z":                  KeyCodeZ,
	"COMMA":              KeyCodeComma,
	"PERIOD":             KeyCodePeriod,
	"ALT_LEFT":           KeyCodeAltLeft,
	"ALT_RIGHT":          KeyCodeAltRight,
	"SHIFT_LEFT":         KeyCodeShiftLeft,
	"SHIFT_RIGHT":        KeyCodeShiftRight,
	"TAB":                KeyCodeTab,
	"SPACE":              KeyCodeSpace,
	"SYM":                KeyCodeSym,
	"EXPLORER":           KeyCodeExplorer,
	"ENVELOPE":           KeyCodeEnvelope,
	"ENTER":              KeyCodeEnter,
	"DEL":                KeyCodeDel,
	"GRAVE":              KeyCodeGrave,
	"MINUS":              KeyCodeMinus,
	"EQUALS":             KeyCodeEquals,
	"LEFT_BRACKET":       KeyCodeLeftBracket,
	"RIGHT_BRACKET":      KeyCodeRightBracket,
	"BACKSLASH":          KeyCodeBackslash,
	"SEMICOLON":          KeyCodeSemicolon,
	"APOSTROPHE":         KeyCodeApostrophe,
	"SLASH":              KeyCodeSlash,
	"AT":                 KeyCodeAt,
	"NUM":                KeyCodeNum,
	"HEADSETHOOK":        KeyCodeHeadsetHook,
	"FOCUS":              KeyCodeFocus,
	"PLUS":               KeyCodePlus,
	"MENU":               KeyCodeMenu,
	"NOTIFICATION":       KeyCodeNotification,
	"SEARCH":             KeyCodeSearch,
	"MEDIA_PLAY_PAUSE":   KeyCodeMediaPlayPause,
	"MEDIA_STOP":         KeyCodeMediaStop,
	"MEDIA_NEXT":         KeyCodeMediaNext,
	"MEDIA_PREVIOUS":     KeyCodeMediaPrevious,
	"MEDIA_REWIND":       KeyCodeMediaRewind,
	"MEDIA_FAST_FORWARD": KeyCodeMediaFastForward,
	"MUTE":               KeyCodeMute,
}

// キーレイアウトのフラグ値
const (
	FlagWake        uint32 = 0x00000001 // このキーで端末を起床させる
	FlagWakeDropped uint32 = 0x00000002 // 起床させるがキー自体は破棄する
	FlagShift       uint32 = 0x00000004 // シフト修飾を伴う
	FlagCapsLock    uint32 = 0x00000008 // キャップスロック
	FlagAlt         uint32 = 0x00000010 // ALT修飾を伴う
	FlagAltGr       uint32 = 0x00000020 // ALT_GR修飾を伴う
	FlagMenu        uint32 = 0x00000040 // メニューキー
	FlagLauncher    uint32 = 0x00000080 // ランチャー起動キー
	FlagVirtual     uint32 = 0x00000100 // 仮想キー
	FlagFunction    uint32 = 0x00000200 // ファンクション修飾を伴う
)

// flagLabels は.klファイル中のフラグラベルから値への対応表
var flagLabels = map[string]uint32{
	"WAKE":         FlagWake,
	"WAKE_DROPPED": FlagWakeDropped,
	"SHIFT":        FlagShift,
	"CAPS_LOCK":    FlagCapsLock,
	"ALT":          FlagAlt,
	"ALT_GR":       FlagAltGr,
	"MENU":         FlagMenu,
	"LAUNCHER":     FlagLauncher,
	"VIRTUAL":      FlagVirtual,
	"FUNCTION":     FlagFunction,
}
