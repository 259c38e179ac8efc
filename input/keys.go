package input

import "strconv"

// Key is a keyboard key code. Codes share the GLFW numbering so platform
// events can be forwarded without translation.
type Key int

// MaxKeys bounds the key-code space tracked by a Keyboard.
const MaxKeys = 512

const (
	KeyNull Key = 0

	// Char keys
	KeySpace        Key = 32
	KeyApostrophe   Key = 39 // '
	KeyComma        Key = 44 // ,
	KeyMinus        Key = 45 // -
	KeyPeriod       Key = 46 // .
	KeySlash        Key = 47 // /
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59 // ;
	KeyEqual        Key = 61 // =
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91 // [
	KeyBackslash    Key = 92 // \
	KeyRightBracket Key = 93 // ]
	KeyGrave        Key = 96 // `

	// System keys
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261

	// Navigation
	KeyRight    Key = 262
	KeyLeft     Key = 263
	KeyDown     Key = 264
	KeyUp       Key = 265
	KeyPageUp   Key = 266
	KeyPageDown Key = 267
	KeyHome     Key = 268
	KeyEnd      Key = 269

	// Lock keys
	KeyCapsLock   Key = 280
	KeyScrollLock Key = 281
	KeyNumLock    Key = 282

	KeyPrintScreen Key = 283
	KeyPause       Key = 284

	// Function keys
	KeyF1  Key = 290
	KeyF2  Key = 291
	KeyF3  Key = 292
	KeyF4  Key = 293
	KeyF5  Key = 294
	KeyF6  Key = 295
	KeyF7  Key = 296
	KeyF8  Key = 297
	KeyF9  Key = 298
	KeyF10 Key = 299
	KeyF11 Key = 300
	KeyF12 Key = 301

	// Numpad
	KeyNum0     Key = 320
	KeyNum1     Key = 321
	KeyNum2     Key = 322
	KeyNum3     Key = 323
	KeyNum4     Key = 324
	KeyNum5     Key = 325
	KeyNum6     Key = 326
	KeyNum7     Key = 327
	KeyNum8     Key = 328
	KeyNum9     Key = 329
	KeyNumDot   Key = 330
	KeyNumSlash Key = 331
	KeyNumMul   Key = 332
	KeyNumMinus Key = 333
	KeyNumPlus  Key = 334
	KeyNumEnter Key = 335
	KeyNumEqual Key = 336

	// Modifiers
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyKbMenu       Key = 348
)

// Action is the kind of transition reported for a key.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "action(" + strconv.Itoa(int(a)) + ")"
}

// ModifierKey is the modifier bitmask delivered with each key event.
type ModifierKey int

const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020
)

var keyNames = map[Key]string{
	KeyNull:         "null",
	KeySpace:        "space",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeySemicolon:    "semicolon",
	KeyEqual:        "equal",
	KeyLeftBracket:  "left_bracket",
	KeyBackslash:    "backslash",
	KeyRightBracket: "right_bracket",
	KeyGrave:        "grave",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyInsert:       "insert",
	KeyDelete:       "delete",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page_up",
	KeyPageDown:     "page_down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "caps_lock",
	KeyScrollLock:   "scroll_lock",
	KeyNumLock:      "num_lock",
	KeyPrintScreen:  "print_screen",
	KeyPause:        "pause",
	KeyNumDot:       "num_dot",
	KeyNumSlash:     "num_slash",
	KeyNumMul:       "num_mul",
	KeyNumMinus:     "num_minus",
	KeyNumPlus:      "num_plus",
	KeyNumEnter:     "num_enter",
	KeyNumEqual:     "num_equal",
	KeyLeftShift:    "left_shift",
	KeyLeftControl:  "left_control",
	KeyLeftAlt:      "left_alt",
	KeyLeftSuper:    "left_super",
	KeyRightShift:   "right_shift",
	KeyRightControl: "right_control",
	KeyRightAlt:     "right_alt",
	KeyRightSuper:   "right_super",
	KeyKbMenu:       "kb_menu",
}

// String returns a readable name for the key, falling back to its code.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= KeyZero && k <= KeyNine:
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyNum0 && k <= KeyNum9:
		return "num_" + strconv.Itoa(int(k-KeyNum0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k falls inside the tracked key-code space.
func (k Key) Valid() bool {
	return k >= 0 && k < MaxKeys
}
