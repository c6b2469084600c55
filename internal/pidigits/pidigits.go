// Package pidigits derives batch run counts from the decimal expansion
// of pi: a fixed-width window is cut from the digits at a random start
// position and parsed as the number of runs.
package pidigits

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
)

// The first 776 decimal digits of pi.
const digits = "141592653589793238462643383279502884197169399375105820974944" +
	"592307816406286208998628034825342117067982148086513282306647" +
	"093844609550582231725359408128481117450284102701938521105559" +
	"644622948954930381964428810975665933446128475648233786783165" +
	"271201909145648566923460348610454326648213393607260249141273" +
	"724587006606315588174881520920962829254091715364367892590360" +
	"011330530548820466521384146951941511609433057270365759591953" +
	"092186117381932611793105118548074462379962749567351885752724" +
	"891227938183011949129833673362440656643086021394946395224737" +
	"190702179860943702770539217176293176752384674818467669405132" +
	"000568127145263560827785771342757789609173637178721468440901" +
	"224953430146549585371050792279689258923542019956112129021960" +
	"86403441815981362977477130996051870721134999999837297805"

// #region sequence

// Sequence returns width consecutive digits from a random position,
// re-drawing while the window starts with '0' so the parsed count
// keeps its full width.
func Sequence(width int) (string, error) {
	if width < 1 || width > len(digits) {
		return "", fmt.Errorf("sequence width %d out of range [1,%d]", width, len(digits))
	}
	for {
		start, err := randomStart(len(digits) - width)
		if err != nil {
			return "", err
		}
		seq := digits[start : start+width]
		if seq[0] != '0' {
			return seq, nil
		}
	}
}

// RunCount parses a width-digit sequence as a positive run count.
func RunCount(width int) (int, error) {
	seq, err := Sequence(width)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return 0, fmt.Errorf("parse sequence: %w", err)
	}
	return n, nil
}

// randomStart draws a uniform index in [0, max] from the system CSPRNG.
func randomStart(max int) (int, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(max+1)), nil
}

// #endregion sequence
