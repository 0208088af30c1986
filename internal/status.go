package internal

// StatusFlag marks the guidance conditions that are currently active.
type StatusFlag int

const (
	StatusNone      StatusFlag = 0b0000
	StatusRerouting StatusFlag = 0b0001
	StatusGPSLost   StatusFlag = 0b0010
	StatusSpeeding  StatusFlag = 0b0100
	StatusArrived   StatusFlag = 0b1000
)

// Has reports whether every flag in other is set.
func (s StatusFlag) Has(other StatusFlag) bool {
	return s&other == other
}

func (s StatusFlag) with(flag StatusFlag, on bool) StatusFlag {
	if on {
		return s | flag
	}

	return s &^ flag
}
