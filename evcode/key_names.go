package evcode

// Key is the code of EventKey events. The space covers both keys and buttons.
type Key uint16

const (
	KeyReserved          Key = 0x000
	KeyEsc               Key = 0x001
	Key1                 Key = 0x002
	Key2                 Key = 0x003
	Key3                 Key = 0x004
	Key4                 Key = 0x005
	Key5                 Key = 0x006
	Key6                 Key = 0x007
	Key7                 Key = 0x008
	Key8                 Key = 0x009
	Key9                 Key = 0x00a
	Key0                 Key = 0x00b
	KeyMinus             Key = 0x00c
	KeyEqual             Key = 0x00d
	KeyBackspace         Key = 0x00e
	KeyTab               Key = 0x00f
	KeyQ                 Key = 0x010
	KeyW                 Key = 0x011
	KeyE                 Key = 0x012
	KeyR                 Key = 0x013
	KeyT                 Key = 0x014
	KeyY                 Key = 0x015
	KeyU                 Key = 0x016
	KeyI                 Key = 0x017
	KeyO                 Key = 0x018
	KeyP                 Key = 0x019
	KeyLeftBrace         Key = 0x01a
	KeyRightBrace        Key = 0x01b
	KeyEnter             Key = 0x01c
	KeyLeftCtrl          Key = 0x01d
	KeyA                 Key = 0x01e
	KeyS                 Key = 0x01f
	KeyD                 Key = 0x020
	KeyF                 Key = 0x021
	KeyG                 Key = 0x022
	KeyH                 Key = 0x023
	KeyJ                 Key = 0x024
	KeyK                 Key = 0x025
	KeyL                 Key = 0x026
	KeySemicolon         Key = 0x027
	KeyApostrophe        Key = 0x028
	KeyGrave             Key = 0x029
	KeyLeftShift         Key = 0x02a
	KeyBackslash         Key = 0x02b
	KeyZ                 Key = 0x02c
	KeyX                 Key = 0x02d
	KeyC                 Key = 0x02e
	KeyV                 Key = 0x02f
	KeyB                 Key = 0x030
	KeyN                 Key = 0x031
	KeyM                 Key = 0x032
	KeyComma             Key = 0x033
	KeyDot               Key = 0x034
	KeySlash             Key = 0x035
	KeyRightShift        Key = 0x036
	KeyKpAsterisk        Key = 0x037
	KeyLeftAlt           Key = 0x038
	KeySpace             Key = 0x039
	KeyCapsLock          Key = 0x03a
	KeyF1                Key = 0x03b
	KeyF2                Key = 0x03c
	KeyF3                Key = 0x03d
	KeyF4                Key = 0x03e
	KeyF5                Key = 0x03f
	KeyF6                Key = 0x040
	KeyF7                Key = 0x041
	KeyF8                Key = 0x042
	KeyF9                Key = 0x043
	KeyF10               Key = 0x044
	KeyNumLock           Key = 0x045
	KeyScrollLock        Key = 0x046
	KeyKp7               Key = 0x047
	KeyKp8               Key = 0x048
	KeyKp9               Key = 0x049
	KeyKpMinus           Key = 0x04a
	KeyKp4               Key = 0x04b
	KeyKp5               Key = 0x04c
	KeyKp6               Key = 0x04d
	KeyKpPlus            Key = 0x04e
	KeyKp1               Key = 0x04f
	KeyKp2               Key = 0x050
	KeyKp3               Key = 0x051
	KeyKp0               Key = 0x052
	KeyKpDot             Key = 0x053
	KeyZenkakuHankaku    Key = 0x055
	Key102nd             Key = 0x056
	KeyF11               Key = 0x057
	KeyF12               Key = 0x058
	KeyRo                Key = 0x059
	KeyKatakana          Key = 0x05a
	KeyHiragana          Key = 0x05b
	KeyHenkan            Key = 0x05c
	KeyKatakanaHiragana  Key = 0x05d
	KeyMuhenkan          Key = 0x05e
	KeyKpJpComma         Key = 0x05f
	KeyKpEnter           Key = 0x060
	KeyRightCtrl         Key = 0x061
	KeyKpSlash           Key = 0x062
	KeySysRq             Key = 0x063
	KeyRightAlt          Key = 0x064
	KeyLineFeed          Key = 0x065
	KeyHome              Key = 0x066
	KeyUp                Key = 0x067
	KeyPageUp            Key = 0x068
	KeyLeft              Key = 0x069
	KeyRight             Key = 0x06a
	KeyEnd               Key = 0x06b
	KeyDown              Key = 0x06c
	KeyPageDown          Key = 0x06d
	KeyInsert            Key = 0x06e
	KeyDelete            Key = 0x06f
	KeyMacro             Key = 0x070
	KeyMute              Key = 0x071
	KeyVolumeDown        Key = 0x072
	KeyVolumeUp          Key = 0x073
	KeyPower             Key = 0x074
	KeyKpEqual           Key = 0x075
	KeyKpPlusMinus       Key = 0x076
	KeyPause             Key = 0x077
	KeyScale             Key = 0x078
	KeyKpComma           Key = 0x079
	KeyHangeul           Key = 0x07a
	KeyHanja             Key = 0x07b
	KeyYen               Key = 0x07c
	KeyLeftMeta          Key = 0x07d
	KeyRightMeta         Key = 0x07e
	KeyCompose           Key = 0x07f
	KeyStop              Key = 0x080
	KeyAgain             Key = 0x081
	KeyProps             Key = 0x082
	KeyUndo              Key = 0x083
	KeyFront             Key = 0x084
	KeyCopy              Key = 0x085
	KeyOpen              Key = 0x086
	KeyPaste             Key = 0x087
	KeyFind              Key = 0x088
	KeyCut               Key = 0x089
	KeyHelp              Key = 0x08a
	KeyMenu              Key = 0x08b
	KeyCalc              Key = 0x08c
	KeySetup             Key = 0x08d
	KeySleep             Key = 0x08e
	KeyWakeup            Key = 0x08f
	KeyFile              Key = 0x090
	KeySendFile          Key = 0x091
	KeyDeleteFile        Key = 0x092
	KeyXfer              Key = 0x093
	KeyProg1             Key = 0x094
	KeyProg2             Key = 0x095
	KeyWWW               Key = 0x096
	KeyMsDos             Key = 0x097
	KeyScreenLock        Key = 0x098
	KeyRotateDisplay     Key = 0x099
	KeyCycleWindows      Key = 0x09a
	KeyMail              Key = 0x09b
	KeyBookmarks         Key = 0x09c
	KeyComputer          Key = 0x09d
	KeyBack              Key = 0x09e
	KeyForward           Key = 0x09f
	KeyCloseCd           Key = 0x0a0
	KeyEjectCd           Key = 0x0a1
	KeyEjectCloseCd      Key = 0x0a2
	KeyNextSong          Key = 0x0a3
	KeyPlayPause         Key = 0x0a4
	KeyPreviousSong      Key = 0x0a5
	KeyStopCd            Key = 0x0a6
	KeyRecord            Key = 0x0a7
	KeyRewind            Key = 0x0a8
	KeyPhone             Key = 0x0a9
	KeyIso               Key = 0x0aa
	KeyConfig            Key = 0x0ab
	KeyHomepage          Key = 0x0ac
	KeyRefresh           Key = 0x0ad
	KeyExit              Key = 0x0ae
	KeyMove              Key = 0x0af
	KeyEdit              Key = 0x0b0
	KeyScrollUp          Key = 0x0b1
	KeyScrollDown        Key = 0x0b2
	KeyKpLeftParen       Key = 0x0b3
	KeyKpRightParen      Key = 0x0b4
	KeyNew               Key = 0x0b5
	KeyRedo              Key = 0x0b6
	KeyF13               Key = 0x0b7
	KeyF14               Key = 0x0b8
	KeyF15               Key = 0x0b9
	KeyF16               Key = 0x0ba
	KeyF17               Key = 0x0bb
	KeyF18               Key = 0x0bc
	KeyF19               Key = 0x0bd
	KeyF20               Key = 0x0be
	KeyF21               Key = 0x0bf
	KeyF22               Key = 0x0c0
	KeyF23               Key = 0x0c1
	KeyF24               Key = 0x0c2
	KeyPlayCd            Key = 0x0c8
	KeyPauseCd           Key = 0x0c9
	KeyProg3             Key = 0x0ca
	KeyProg4             Key = 0x0cb
	KeyDashboard         Key = 0x0cc
	KeySuspend           Key = 0x0cd
	KeyClose             Key = 0x0ce
	KeyPlay              Key = 0x0cf
	KeyFastForward       Key = 0x0d0
	KeyBassBoost         Key = 0x0d1
	KeyPrint             Key = 0x0d2
	KeyHP                Key = 0x0d3
	KeyCamera            Key = 0x0d4
	KeySound             Key = 0x0d5
	KeyQuestion          Key = 0x0d6
	KeyEmail             Key = 0x0d7
	KeyChat              Key = 0x0d8
	KeySearch            Key = 0x0d9
	KeyConnect           Key = 0x0da
	KeyFinance           Key = 0x0db
	KeySport             Key = 0x0dc
	KeyShop              Key = 0x0dd
	KeyAltErase          Key = 0x0de
	KeyCancel            Key = 0x0df
	KeyBrightnessDown    Key = 0x0e0
	KeyBrightnessUp      Key = 0x0e1
	KeyMedia             Key = 0x0e2
	KeySwitchVideoMode   Key = 0x0e3
	KeyKbdIllumToggle    Key = 0x0e4
	KeyKbdIllumDown      Key = 0x0e5
	KeyKbdIllumUp        Key = 0x0e6
	KeySend              Key = 0x0e7
	KeyReply             Key = 0x0e8
	KeyForwardMail       Key = 0x0e9
	KeySave              Key = 0x0ea
	KeyDocuments         Key = 0x0eb
	KeyBattery           Key = 0x0ec
	KeyBluetooth         Key = 0x0ed
	KeyWLAN              Key = 0x0ee
	KeyUWB               Key = 0x0ef
	KeyUnknown           Key = 0x0f0
	KeyVideoNext         Key = 0x0f1
	KeyVideoPrev         Key = 0x0f2
	KeyBrightnessCycle   Key = 0x0f3
	KeyBrightnessAuto    Key = 0x0f4
	KeyDisplayOff        Key = 0x0f5
	KeyWWAN              Key = 0x0f6
	KeyRfKill            Key = 0x0f7
	KeyMicMute           Key = 0x0f8
	Button0              Key = 0x100
	Button1              Key = 0x101
	Button2              Key = 0x102
	Button3              Key = 0x103
	Button4              Key = 0x104
	Button5              Key = 0x105
	Button6              Key = 0x106
	Button7              Key = 0x107
	Button8              Key = 0x108
	Button9              Key = 0x109
	ButtonLeft           Key = 0x110
	ButtonRight          Key = 0x111
	ButtonMiddle         Key = 0x112
	ButtonSide           Key = 0x113
	ButtonExtra          Key = 0x114
	ButtonForward        Key = 0x115
	ButtonBack           Key = 0x116
	ButtonTask           Key = 0x117
	ButtonTrigger        Key = 0x120
	ButtonThumb          Key = 0x121
	ButtonThumb2         Key = 0x122
	ButtonTop            Key = 0x123
	ButtonTop2           Key = 0x124
	ButtonPinkie         Key = 0x125
	ButtonBase           Key = 0x126
	ButtonBase2          Key = 0x127
	ButtonBase3          Key = 0x128
	ButtonBase4          Key = 0x129
	ButtonBase5          Key = 0x12a
	ButtonBase6          Key = 0x12b
	ButtonDead           Key = 0x12f
	ButtonSouth          Key = 0x130
	ButtonEast           Key = 0x131
	ButtonC              Key = 0x132
	ButtonNorth          Key = 0x133
	ButtonWest           Key = 0x134
	ButtonZ              Key = 0x135
	ButtonTL             Key = 0x136
	ButtonTR             Key = 0x137
	ButtonTL2            Key = 0x138
	ButtonTR2            Key = 0x139
	ButtonSelect         Key = 0x13a
	ButtonStart          Key = 0x13b
	ButtonMode           Key = 0x13c
	ButtonThumbL         Key = 0x13d
	ButtonThumbR         Key = 0x13e
	ButtonToolPen        Key = 0x140
	ButtonToolRubber     Key = 0x141
	ButtonToolBrush      Key = 0x142
	ButtonToolPencil     Key = 0x143
	ButtonToolAirbrush   Key = 0x144
	ButtonToolFinger     Key = 0x145
	ButtonToolMouse      Key = 0x146
	ButtonToolLens       Key = 0x147
	ButtonToolQuintTap   Key = 0x148
	ButtonStylus3        Key = 0x149
	ButtonTouch          Key = 0x14a
	ButtonStylus         Key = 0x14b
	ButtonStylus2        Key = 0x14c
	ButtonToolDoubleTap  Key = 0x14d
	ButtonToolTripleTap  Key = 0x14e
	ButtonToolQuadTap    Key = 0x14f
	ButtonGearDown       Key = 0x150
	ButtonGearUp         Key = 0x151
	KeyOk                Key = 0x160
	KeySelect            Key = 0x161
	KeyGoto              Key = 0x162
	KeyClear             Key = 0x163
	KeyPower2            Key = 0x164
	KeyOption            Key = 0x165
	KeyInfo              Key = 0x166
	KeyTime              Key = 0x167
	KeyVendor            Key = 0x168
	KeyArchive           Key = 0x169
	KeyProgram           Key = 0x16a
	KeyChannel           Key = 0x16b
	KeyFavorites         Key = 0x16c
	KeyEPG               Key = 0x16d
	KeyPVR               Key = 0x16e
	KeyMHP               Key = 0x16f
	KeyLanguage          Key = 0x170
	KeyTitle             Key = 0x171
	KeySubtitle          Key = 0x172
	KeyAngle             Key = 0x173
	KeyZoom              Key = 0x174
	KeyMode              Key = 0x175
	KeyKeyboard          Key = 0x176
	KeyScreen            Key = 0x177
	KeyPC                Key = 0x178
	KeyTV                Key = 0x179
	KeyTV2               Key = 0x17a
	KeyVCR               Key = 0x17b
	KeyVCR2              Key = 0x17c
	KeySat               Key = 0x17d
	KeySat2              Key = 0x17e
	KeyCD                Key = 0x17f
	KeyTape              Key = 0x180
	KeyRadio             Key = 0x181
	KeyTuner             Key = 0x182
	KeyPlayer            Key = 0x183
	KeyText              Key = 0x184
	KeyDVD               Key = 0x185
	KeyAux               Key = 0x186
	KeyMP3               Key = 0x187
	KeyAudio             Key = 0x188
	KeyVideo             Key = 0x189
	KeyDirectory         Key = 0x18a
	KeyList              Key = 0x18b
	KeyMemo              Key = 0x18c
	KeyCalendar          Key = 0x18d
	KeyRed               Key = 0x18e
	KeyGreen             Key = 0x18f
	KeyYellow            Key = 0x190
	KeyBlue              Key = 0x191
	KeyChannelUp         Key = 0x192
	KeyChannelDown       Key = 0x193
	KeyFirst             Key = 0x194
	KeyLast              Key = 0x195
	KeyAB                Key = 0x196
	KeyNext              Key = 0x197
	KeyRestart           Key = 0x198
	KeySlow              Key = 0x199
	KeyShuffle           Key = 0x19a
	KeyBreak             Key = 0x19b
	KeyPrevious          Key = 0x19c
	KeyDigits            Key = 0x19d
	KeyTeen              Key = 0x19e
	KeyTwen              Key = 0x19f
	KeyFn                Key = 0x1d0
	ButtonDpadUp         Key = 0x220
	ButtonDpadDown       Key = 0x221
	ButtonDpadLeft       Key = 0x222
	ButtonDpadRight      Key = 0x223
	ButtonTriggerHappy1  Key = 0x2c0
	ButtonTriggerHappy2  Key = 0x2c1
	ButtonTriggerHappy3  Key = 0x2c2
	ButtonTriggerHappy4  Key = 0x2c3
	ButtonTriggerHappy5  Key = 0x2c4
	ButtonTriggerHappy6  Key = 0x2c5
	ButtonTriggerHappy7  Key = 0x2c6
	ButtonTriggerHappy8  Key = 0x2c7
	ButtonTriggerHappy9  Key = 0x2c8
	ButtonTriggerHappy10 Key = 0x2c9
	ButtonTriggerHappy11 Key = 0x2ca
	ButtonTriggerHappy12 Key = 0x2cb
	ButtonTriggerHappy13 Key = 0x2cc
	ButtonTriggerHappy14 Key = 0x2cd
	ButtonTriggerHappy15 Key = 0x2ce
	ButtonTriggerHappy16 Key = 0x2cf
	ButtonTriggerHappy17 Key = 0x2d0
	ButtonTriggerHappy18 Key = 0x2d1
	ButtonTriggerHappy19 Key = 0x2d2
	ButtonTriggerHappy20 Key = 0x2d3
	ButtonTriggerHappy21 Key = 0x2d4
	ButtonTriggerHappy22 Key = 0x2d5
	ButtonTriggerHappy23 Key = 0x2d6
	ButtonTriggerHappy24 Key = 0x2d7
	ButtonTriggerHappy25 Key = 0x2d8
	ButtonTriggerHappy26 Key = 0x2d9
	ButtonTriggerHappy27 Key = 0x2da
	ButtonTriggerHappy28 Key = 0x2db
	ButtonTriggerHappy29 Key = 0x2dc
	ButtonTriggerHappy30 Key = 0x2dd
	ButtonTriggerHappy31 Key = 0x2de
	ButtonTriggerHappy32 Key = 0x2df
	ButtonTriggerHappy33 Key = 0x2e0
	ButtonTriggerHappy34 Key = 0x2e1
	ButtonTriggerHappy35 Key = 0x2e2
	ButtonTriggerHappy36 Key = 0x2e3
	ButtonTriggerHappy37 Key = 0x2e4
	ButtonTriggerHappy38 Key = 0x2e5
	ButtonTriggerHappy39 Key = 0x2e6
	ButtonTriggerHappy40 Key = 0x2e7

	// Aliases.
	ButtonA        = ButtonSouth
	ButtonB        = ButtonEast
	ButtonX        = ButtonNorth
	ButtonY        = ButtonWest
	ButtonMouse    = ButtonLeft
	ButtonJoystick = ButtonTrigger
	ButtonGamepad  = ButtonSouth
	ButtonDigi     = ButtonToolPen
)

var keyNames = []string{
	KeyReserved:          "Reserved",
	KeyEsc:               "Esc",
	Key1:                 "1",
	Key2:                 "2",
	Key3:                 "3",
	Key4:                 "4",
	Key5:                 "5",
	Key6:                 "6",
	Key7:                 "7",
	Key8:                 "8",
	Key9:                 "9",
	Key0:                 "0",
	KeyMinus:             "Minus",
	KeyEqual:             "Equal",
	KeyBackspace:         "Backspace",
	KeyTab:               "Tab",
	KeyQ:                 "Q",
	KeyW:                 "W",
	KeyE:                 "E",
	KeyR:                 "R",
	KeyT:                 "T",
	KeyY:                 "Y",
	KeyU:                 "U",
	KeyI:                 "I",
	KeyO:                 "O",
	KeyP:                 "P",
	KeyLeftBrace:         "LeftBrace",
	KeyRightBrace:        "RightBrace",
	KeyEnter:             "Enter",
	KeyLeftCtrl:          "LeftCtrl",
	KeyA:                 "A",
	KeyS:                 "S",
	KeyD:                 "D",
	KeyF:                 "F",
	KeyG:                 "G",
	KeyH:                 "H",
	KeyJ:                 "J",
	KeyK:                 "K",
	KeyL:                 "L",
	KeySemicolon:         "Semicolon",
	KeyApostrophe:        "Apostrophe",
	KeyGrave:             "Grave",
	KeyLeftShift:         "LeftShift",
	KeyBackslash:         "Backslash",
	KeyZ:                 "Z",
	KeyX:                 "X",
	KeyC:                 "C",
	KeyV:                 "V",
	KeyB:                 "B",
	KeyN:                 "N",
	KeyM:                 "M",
	KeyComma:             "Comma",
	KeyDot:               "Dot",
	KeySlash:             "Slash",
	KeyRightShift:        "RightShift",
	KeyKpAsterisk:        "KpAsterisk",
	KeyLeftAlt:           "LeftAlt",
	KeySpace:             "Space",
	KeyCapsLock:          "CapsLock",
	KeyF1:                "F1",
	KeyF2:                "F2",
	KeyF3:                "F3",
	KeyF4:                "F4",
	KeyF5:                "F5",
	KeyF6:                "F6",
	KeyF7:                "F7",
	KeyF8:                "F8",
	KeyF9:                "F9",
	KeyF10:               "F10",
	KeyNumLock:           "NumLock",
	KeyScrollLock:        "ScrollLock",
	KeyKp7:               "Kp7",
	KeyKp8:               "Kp8",
	KeyKp9:               "Kp9",
	KeyKpMinus:           "KpMinus",
	KeyKp4:               "Kp4",
	KeyKp5:               "Kp5",
	KeyKp6:               "Kp6",
	KeyKpPlus:            "KpPlus",
	KeyKp1:               "Kp1",
	KeyKp2:               "Kp2",
	KeyKp3:               "Kp3",
	KeyKp0:               "Kp0",
	KeyKpDot:             "KpDot",
	KeyZenkakuHankaku:    "ZenkakuHankaku",
	Key102nd:             "102nd",
	KeyF11:               "F11",
	KeyF12:               "F12",
	KeyRo:                "Ro",
	KeyKatakana:          "Katakana",
	KeyHiragana:          "Hiragana",
	KeyHenkan:            "Henkan",
	KeyKatakanaHiragana:  "KatakanaHiragana",
	KeyMuhenkan:          "Muhenkan",
	KeyKpJpComma:         "KpJpComma",
	KeyKpEnter:           "KpEnter",
	KeyRightCtrl:         "RightCtrl",
	KeyKpSlash:           "KpSlash",
	KeySysRq:             "SysRq",
	KeyRightAlt:          "RightAlt",
	KeyLineFeed:          "LineFeed",
	KeyHome:              "Home",
	KeyUp:                "Up",
	KeyPageUp:            "PageUp",
	KeyLeft:              "Left",
	KeyRight:             "Right",
	KeyEnd:               "End",
	KeyDown:              "Down",
	KeyPageDown:          "PageDown",
	KeyInsert:            "Insert",
	KeyDelete:            "Delete",
	KeyMacro:             "Macro",
	KeyMute:              "Mute",
	KeyVolumeDown:        "VolumeDown",
	KeyVolumeUp:          "VolumeUp",
	KeyPower:             "Power",
	KeyKpEqual:           "KpEqual",
	KeyKpPlusMinus:       "KpPlusMinus",
	KeyPause:             "Pause",
	KeyScale:             "Scale",
	KeyKpComma:           "KpComma",
	KeyHangeul:           "Hangeul",
	KeyHanja:             "Hanja",
	KeyYen:               "Yen",
	KeyLeftMeta:          "LeftMeta",
	KeyRightMeta:         "RightMeta",
	KeyCompose:           "Compose",
	KeyStop:              "Stop",
	KeyAgain:             "Again",
	KeyProps:             "Props",
	KeyUndo:              "Undo",
	KeyFront:             "Front",
	KeyCopy:              "Copy",
	KeyOpen:              "Open",
	KeyPaste:             "Paste",
	KeyFind:              "Find",
	KeyCut:               "Cut",
	KeyHelp:              "Help",
	KeyMenu:              "Menu",
	KeyCalc:              "Calc",
	KeySetup:             "Setup",
	KeySleep:             "Sleep",
	KeyWakeup:            "Wakeup",
	KeyFile:              "File",
	KeySendFile:          "SendFile",
	KeyDeleteFile:        "DeleteFile",
	KeyXfer:              "Xfer",
	KeyProg1:             "Prog1",
	KeyProg2:             "Prog2",
	KeyWWW:               "WWW",
	KeyMsDos:             "MsDos",
	KeyScreenLock:        "ScreenLock",
	KeyRotateDisplay:     "RotateDisplay",
	KeyCycleWindows:      "CycleWindows",
	KeyMail:              "Mail",
	KeyBookmarks:         "Bookmarks",
	KeyComputer:          "Computer",
	KeyBack:              "Back",
	KeyForward:           "Forward",
	KeyCloseCd:           "CloseCd",
	KeyEjectCd:           "EjectCd",
	KeyEjectCloseCd:      "EjectCloseCd",
	KeyNextSong:          "NextSong",
	KeyPlayPause:         "PlayPause",
	KeyPreviousSong:      "PreviousSong",
	KeyStopCd:            "StopCd",
	KeyRecord:            "Record",
	KeyRewind:            "Rewind",
	KeyPhone:             "Phone",
	KeyIso:               "Iso",
	KeyConfig:            "Config",
	KeyHomepage:          "Homepage",
	KeyRefresh:           "Refresh",
	KeyExit:              "Exit",
	KeyMove:              "Move",
	KeyEdit:              "Edit",
	KeyScrollUp:          "ScrollUp",
	KeyScrollDown:        "ScrollDown",
	KeyKpLeftParen:       "KpLeftParen",
	KeyKpRightParen:      "KpRightParen",
	KeyNew:               "New",
	KeyRedo:              "Redo",
	KeyF13:               "F13",
	KeyF14:               "F14",
	KeyF15:               "F15",
	KeyF16:               "F16",
	KeyF17:               "F17",
	KeyF18:               "F18",
	KeyF19:               "F19",
	KeyF20:               "F20",
	KeyF21:               "F21",
	KeyF22:               "F22",
	KeyF23:               "F23",
	KeyF24:               "F24",
	KeyPlayCd:            "PlayCd",
	KeyPauseCd:           "PauseCd",
	KeyProg3:             "Prog3",
	KeyProg4:             "Prog4",
	KeyDashboard:         "Dashboard",
	KeySuspend:           "Suspend",
	KeyClose:             "Close",
	KeyPlay:              "Play",
	KeyFastForward:       "FastForward",
	KeyBassBoost:         "BassBoost",
	KeyPrint:             "Print",
	KeyHP:                "HP",
	KeyCamera:            "Camera",
	KeySound:             "Sound",
	KeyQuestion:          "Question",
	KeyEmail:             "Email",
	KeyChat:              "Chat",
	KeySearch:            "Search",
	KeyConnect:           "Connect",
	KeyFinance:           "Finance",
	KeySport:             "Sport",
	KeyShop:              "Shop",
	KeyAltErase:          "AltErase",
	KeyCancel:            "Cancel",
	KeyBrightnessDown:    "BrightnessDown",
	KeyBrightnessUp:      "BrightnessUp",
	KeyMedia:             "Media",
	KeySwitchVideoMode:   "SwitchVideoMode",
	KeyKbdIllumToggle:    "KbdIllumToggle",
	KeyKbdIllumDown:      "KbdIllumDown",
	KeyKbdIllumUp:        "KbdIllumUp",
	KeySend:              "Send",
	KeyReply:             "Reply",
	KeyForwardMail:       "ForwardMail",
	KeySave:              "Save",
	KeyDocuments:         "Documents",
	KeyBattery:           "Battery",
	KeyBluetooth:         "Bluetooth",
	KeyWLAN:              "WLAN",
	KeyUWB:               "UWB",
	KeyUnknown:           "Unknown",
	KeyVideoNext:         "VideoNext",
	KeyVideoPrev:         "VideoPrev",
	KeyBrightnessCycle:   "BrightnessCycle",
	KeyBrightnessAuto:    "BrightnessAuto",
	KeyDisplayOff:        "DisplayOff",
	KeyWWAN:              "WWAN",
	KeyRfKill:            "RfKill",
	KeyMicMute:           "MicMute",
	Button0:              "Button0",
	Button1:              "Button1",
	Button2:              "Button2",
	Button3:              "Button3",
	Button4:              "Button4",
	Button5:              "Button5",
	Button6:              "Button6",
	Button7:              "Button7",
	Button8:              "Button8",
	Button9:              "Button9",
	ButtonLeft:           "ButtonLeft",
	ButtonRight:          "ButtonRight",
	ButtonMiddle:         "ButtonMiddle",
	ButtonSide:           "ButtonSide",
	ButtonExtra:          "ButtonExtra",
	ButtonForward:        "ButtonForward",
	ButtonBack:           "ButtonBack",
	ButtonTask:           "ButtonTask",
	ButtonTrigger:        "ButtonTrigger",
	ButtonThumb:          "ButtonThumb",
	ButtonThumb2:         "ButtonThumb2",
	ButtonTop:            "ButtonTop",
	ButtonTop2:           "ButtonTop2",
	ButtonPinkie:         "ButtonPinkie",
	ButtonBase:           "ButtonBase",
	ButtonBase2:          "ButtonBase2",
	ButtonBase3:          "ButtonBase3",
	ButtonBase4:          "ButtonBase4",
	ButtonBase5:          "ButtonBase5",
	ButtonBase6:          "ButtonBase6",
	ButtonDead:           "ButtonDead",
	ButtonSouth:          "ButtonSouth",
	ButtonEast:           "ButtonEast",
	ButtonC:              "ButtonC",
	ButtonNorth:          "ButtonNorth",
	ButtonWest:           "ButtonWest",
	ButtonZ:              "ButtonZ",
	ButtonTL:             "ButtonTL",
	ButtonTR:             "ButtonTR",
	ButtonTL2:            "ButtonTL2",
	ButtonTR2:            "ButtonTR2",
	ButtonSelect:         "ButtonSelect",
	ButtonStart:          "ButtonStart",
	ButtonMode:           "ButtonMode",
	ButtonThumbL:         "ButtonThumbL",
	ButtonThumbR:         "ButtonThumbR",
	ButtonToolPen:        "ButtonToolPen",
	ButtonToolRubber:     "ButtonToolRubber",
	ButtonToolBrush:      "ButtonToolBrush",
	ButtonToolPencil:     "ButtonToolPencil",
	ButtonToolAirbrush:   "ButtonToolAirbrush",
	ButtonToolFinger:     "ButtonToolFinger",
	ButtonToolMouse:      "ButtonToolMouse",
	ButtonToolLens:       "ButtonToolLens",
	ButtonToolQuintTap:   "ButtonToolQuintTap",
	ButtonStylus3:        "ButtonStylus3",
	ButtonTouch:          "ButtonTouch",
	ButtonStylus:         "ButtonStylus",
	ButtonStylus2:        "ButtonStylus2",
	ButtonToolDoubleTap:  "ButtonToolDoubleTap",
	ButtonToolTripleTap:  "ButtonToolTripleTap",
	ButtonToolQuadTap:    "ButtonToolQuadTap",
	ButtonGearDown:       "ButtonGearDown",
	ButtonGearUp:         "ButtonGearUp",
	KeyOk:                "Ok",
	KeySelect:            "Select",
	KeyGoto:              "Goto",
	KeyClear:             "Clear",
	KeyPower2:            "Power2",
	KeyOption:            "Option",
	KeyInfo:              "Info",
	KeyTime:              "Time",
	KeyVendor:            "Vendor",
	KeyArchive:           "Archive",
	KeyProgram:           "Program",
	KeyChannel:           "Channel",
	KeyFavorites:         "Favorites",
	KeyEPG:               "EPG",
	KeyPVR:               "PVR",
	KeyMHP:               "MHP",
	KeyLanguage:          "Language",
	KeyTitle:             "Title",
	KeySubtitle:          "Subtitle",
	KeyAngle:             "Angle",
	KeyZoom:              "Zoom",
	KeyMode:              "Mode",
	KeyKeyboard:          "Keyboard",
	KeyScreen:            "Screen",
	KeyPC:                "PC",
	KeyTV:                "TV",
	KeyTV2:               "TV2",
	KeyVCR:               "VCR",
	KeyVCR2:              "VCR2",
	KeySat:               "Sat",
	KeySat2:              "Sat2",
	KeyCD:                "CD",
	KeyTape:              "Tape",
	KeyRadio:             "Radio",
	KeyTuner:             "Tuner",
	KeyPlayer:            "Player",
	KeyText:              "Text",
	KeyDVD:               "DVD",
	KeyAux:               "Aux",
	KeyMP3:               "MP3",
	KeyAudio:             "Audio",
	KeyVideo:             "Video",
	KeyDirectory:         "Directory",
	KeyList:              "List",
	KeyMemo:              "Memo",
	KeyCalendar:          "Calendar",
	KeyRed:               "Red",
	KeyGreen:             "Green",
	KeyYellow:            "Yellow",
	KeyBlue:              "Blue",
	KeyChannelUp:         "ChannelUp",
	KeyChannelDown:       "ChannelDown",
	KeyFirst:             "First",
	KeyLast:              "Last",
	KeyAB:                "AB",
	KeyNext:              "Next",
	KeyRestart:           "Restart",
	KeySlow:              "Slow",
	KeyShuffle:           "Shuffle",
	KeyBreak:             "Break",
	KeyPrevious:          "Previous",
	KeyDigits:            "Digits",
	KeyTeen:              "Teen",
	KeyTwen:              "Twen",
	KeyFn:                "Fn",
	ButtonDpadUp:         "ButtonDpadUp",
	ButtonDpadDown:       "ButtonDpadDown",
	ButtonDpadLeft:       "ButtonDpadLeft",
	ButtonDpadRight:      "ButtonDpadRight",
	ButtonTriggerHappy1:  "ButtonTriggerHappy1",
	ButtonTriggerHappy2:  "ButtonTriggerHappy2",
	ButtonTriggerHappy3:  "ButtonTriggerHappy3",
	ButtonTriggerHappy4:  "ButtonTriggerHappy4",
	ButtonTriggerHappy5:  "ButtonTriggerHappy5",
	ButtonTriggerHappy6:  "ButtonTriggerHappy6",
	ButtonTriggerHappy7:  "ButtonTriggerHappy7",
	ButtonTriggerHappy8:  "ButtonTriggerHappy8",
	ButtonTriggerHappy9:  "ButtonTriggerHappy9",
	ButtonTriggerHappy10: "ButtonTriggerHappy10",
	ButtonTriggerHappy11: "ButtonTriggerHappy11",
	ButtonTriggerHappy12: "ButtonTriggerHappy12",
	ButtonTriggerHappy13: "ButtonTriggerHappy13",
	ButtonTriggerHappy14: "ButtonTriggerHappy14",
	ButtonTriggerHappy15: "ButtonTriggerHappy15",
	ButtonTriggerHappy16: "ButtonTriggerHappy16",
	ButtonTriggerHappy17: "ButtonTriggerHappy17",
	ButtonTriggerHappy18: "ButtonTriggerHappy18",
	ButtonTriggerHappy19: "ButtonTriggerHappy19",
	ButtonTriggerHappy20: "ButtonTriggerHappy20",
	ButtonTriggerHappy21: "ButtonTriggerHappy21",
	ButtonTriggerHappy22: "ButtonTriggerHappy22",
	ButtonTriggerHappy23: "ButtonTriggerHappy23",
	ButtonTriggerHappy24: "ButtonTriggerHappy24",
	ButtonTriggerHappy25: "ButtonTriggerHappy25",
	ButtonTriggerHappy26: "ButtonTriggerHappy26",
	ButtonTriggerHappy27: "ButtonTriggerHappy27",
	ButtonTriggerHappy28: "ButtonTriggerHappy28",
	ButtonTriggerHappy29: "ButtonTriggerHappy29",
	ButtonTriggerHappy30: "ButtonTriggerHappy30",
	ButtonTriggerHappy31: "ButtonTriggerHappy31",
	ButtonTriggerHappy32: "ButtonTriggerHappy32",
	ButtonTriggerHappy33: "ButtonTriggerHappy33",
	ButtonTriggerHappy34: "ButtonTriggerHappy34",
	ButtonTriggerHappy35: "ButtonTriggerHappy35",
	ButtonTriggerHappy36: "ButtonTriggerHappy36",
	ButtonTriggerHappy37: "ButtonTriggerHappy37",
	ButtonTriggerHappy38: "ButtonTriggerHappy38",
	ButtonTriggerHappy39: "ButtonTriggerHappy39",
	ButtonTriggerHappy40: "ButtonTriggerHappy40",
}
