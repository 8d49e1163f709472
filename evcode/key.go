package evcode

const keyCount = 0x300

func (Key) Ordinals() int    { return keyCount }
func (k Key) String() string { return nameOf(keyNames, uint16(k)) }

// IsButton reports whether k lies in one of the button ranges
// (BTN_MISC..KEY_OK and the trigger happy block).
func (k Key) IsButton() bool {
	return (k >= Button0 && k < KeyOk) || k >= ButtonTriggerHappy1
}

func (k Key) IsKey() bool { return !k.IsButton() }
