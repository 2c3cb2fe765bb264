package term

import "gridsnake/pkg/snake"

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b

	// maxEscape bounds how many bytes of an unfinished escape sequence are
	// held between reads.
	maxEscape = 16
)

var runeInputs = map[byte]snake.Input{
	'w': snake.InputUp, 'W': snake.InputUp, 'k': snake.InputUp,
	's': snake.InputDown, 'S': snake.InputDown, 'j': snake.InputDown,
	'a': snake.InputLeft, 'A': snake.InputLeft, 'h': snake.InputLeft,
	'd': snake.InputRight, 'D': snake.InputRight, 'l': snake.InputRight,
	'q': snake.InputQuit, 'Q': snake.InputQuit, keyCtrlC: snake.InputQuit,
}

var arrowInputs = map[byte]snake.Input{
	'A': snake.InputUp,
	'B': snake.InputDown,
	'C': snake.InputRight,
	'D': snake.InputLeft,
}

// Decoder translates raw terminal bytes into inputs. An escape sequence
// split across reads is held until the rest arrives.
type Decoder struct {
	pending []byte
}

// Decode is a one-shot Decoder over a complete buffer.
func Decode(buf []byte) []snake.Input {
	var d Decoder
	return d.Feed(buf)
}

// Feed decodes buf, in the order typed. Arrow keys arrive as CSI
// (ESC [ params final) or SS3 (ESC O final); modifier parameters are
// ignored. Other sequences, a bare ESC and unknown bytes are dropped.
func (d *Decoder) Feed(buf []byte) []snake.Input {
	data := append(d.pending, buf...)
	d.pending = nil

	var out []snake.Input
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != keyEsc {
			if in, ok := runeInputs[b]; ok {
				out = append(out, in)
			}
			continue
		}

		final, next, complete := escapeEnd(data, i)
		if !complete {
			if len(data)-i <= maxEscape {
				d.pending = append([]byte(nil), data[i:]...)
			}
			break
		}
		if final >= 0 {
			if in, ok := arrowInputs[data[final]]; ok {
				out = append(out, in)
			}
		}
		i = next - 1
	}
	return out
}

// escapeEnd inspects the sequence starting at the ESC at data[i]. It returns
// the index of the final byte (-1 when there is none to map), the index to
// resume scanning at, and whether the sequence is complete.
func escapeEnd(data []byte, i int) (final, next int, complete bool) {
	if i+1 >= len(data) {
		return -1, 0, false
	}
	switch data[i+1] {
	case 'O':
		if i+2 >= len(data) {
			return -1, 0, false
		}
		return i + 2, i + 3, true
	case '[':
		j := i + 2
		for j < len(data) && data[j] >= 0x20 && data[j] <= 0x3f {
			j++
		}
		if j >= len(data) {
			return -1, 0, false
		}
		if data[j] >= 0x40 && data[j] <= 0x7e {
			if j == i+2 || onlyModifiers(data[i+2:j]) {
				return j, j + 1, true
			}
			return -1, j + 1, true
		}
		// Malformed: drop the introducer and rescan the offending byte.
		return -1, j, true
	default:
		// ESC followed by an ordinary key (Alt+key): drop the ESC.
		return -1, i + 1, true
	}
}

// onlyModifiers reports whether params has the "1;m" shape terminals use
// for modified arrows.
func onlyModifiers(params []byte) bool {
	for _, c := range params {
		if (c < '0' || c > '9') && c != ';' {
			return false
		}
	}
	return true
}
