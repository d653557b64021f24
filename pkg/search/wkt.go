package search

import "strconv"

// isValidGeometry checks the WKT subset accepted as a geometry filter:
// POINT, LINESTRING, LINEARRING and single POLYGON, with plain two-number
// coordinates. Multi-part geometries are not supported. Polygon rings and
// linear rings must close: the first coordinate equals the last, compared
// numerically so "30.1200 10.00" closes "30.12 10".
func isValidGeometry(value string) bool {
	sc := &wktScanner{input: value}
	switch sc.keyword() {
	case "POINT":
		coords, ok := sc.coordinateGroup()
		if !ok || len(coords) != 1 {
			return false
		}
	case "LINESTRING":
		coords, ok := sc.coordinateGroup()
		if !ok || len(coords) < 2 {
			return false
		}
	case "LINEARRING":
		coords, ok := sc.coordinateGroup()
		if !ok || !isClosedRing(coords) {
			return false
		}
	case "POLYGON":
		if !sc.expect('(') {
			return false
		}
		for {
			ring, ok := sc.coordinateGroup()
			if !ok || !isClosedRing(ring) {
				return false
			}
			if sc.expect(',') {
				continue
			}
			break
		}
		if !sc.expect(')') {
			return false
		}
	default:
		return false
	}
	return sc.atEnd()
}

type wktPoint struct {
	x, y float64
}

func isClosedRing(coords []wktPoint) bool {
	return len(coords) >= 4 && coords[0] == coords[len(coords)-1]
}

// wktScanner is a single-pass cursor over a WKT string. Whitespace is free
// between tokens; only the separator between a coordinate's two numbers is
// mandatory.
type wktScanner struct {
	input string
	pos   int
}

func (sc *wktScanner) skipSpace() {
	for sc.pos < len(sc.input) {
		switch sc.input[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *wktScanner) keyword() string {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.input) && isWKTLetter(sc.input[sc.pos]) {
		sc.pos++
	}
	word := sc.input[start:sc.pos]
	upper := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return string(upper)
}

func isWKTLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (sc *wktScanner) expect(ch byte) bool {
	sc.skipSpace()
	if sc.pos < len(sc.input) && sc.input[sc.pos] == ch {
		sc.pos++
		return true
	}
	return false
}

// coordinateGroup parses "(x y, x y, ...)" with at least one coordinate and
// no trailing comma.
func (sc *wktScanner) coordinateGroup() ([]wktPoint, bool) {
	if !sc.expect('(') {
		return nil, false
	}
	var coords []wktPoint
	for {
		p, ok := sc.coordinate()
		if !ok {
			return nil, false
		}
		coords = append(coords, p)
		if sc.expect(',') {
			continue
		}
		break
	}
	if !sc.expect(')') {
		return nil, false
	}
	return coords, true
}

func (sc *wktScanner) coordinate() (wktPoint, bool) {
	x, ok := sc.number()
	if !ok {
		return wktPoint{}, false
	}
	// the two numbers must be separated by whitespace, not punctuation
	mark := sc.pos
	sc.skipSpace()
	if sc.pos == mark {
		return wktPoint{}, false
	}
	y, ok := sc.number()
	if !ok {
		return wktPoint{}, false
	}
	return wktPoint{x: x, y: y}, true
}

func (sc *wktScanner) number() (float64, bool) {
	sc.skipSpace()
	start := sc.pos
	if sc.pos < len(sc.input) && (sc.input[sc.pos] == '+' || sc.input[sc.pos] == '-') {
		sc.pos++
	}
	digits := 0
	for sc.pos < len(sc.input) && sc.input[sc.pos] >= '0' && sc.input[sc.pos] <= '9' {
		sc.pos++
		digits++
	}
	if sc.pos < len(sc.input) && sc.input[sc.pos] == '.' {
		sc.pos++
		for sc.pos < len(sc.input) && sc.input[sc.pos] >= '0' && sc.input[sc.pos] <= '9' {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(sc.input[start:sc.pos], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (sc *wktScanner) atEnd() bool {
	sc.skipSpace()
	return sc.pos == len(sc.input)
}
