package main

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Board state travels inside the URL hash. Current format (version 2):
//
//	v=2&b=<token>;<token>&r=<row>;<row>
//	token := <kindCode><sizeField>@<x36>,<y36>[~<escapedLabel>]
//	sizeField := <size36> | <w36>x<h36>
//	row := <y36>:<run>,<run>    run := <x36> | <x36>-<x36>
//
// All numbers are base-36 lowercase. Version 1 used decimal numbers, a
// flat p=x,y;x,y paint list, and sometimes ';' between size and
// coordinates. Decoding tolerates both; malformed entries are skipped so
// a hand-edited or truncated URL still loads as much as possible.

var codeToKind = func() map[byte]Kind {
	m := make(map[byte]Kind, len(kindCodes)+1)
	for k, c := range kindCodes {
		m[c] = k
	}
	m['B'] = KindCustom // retired "block" kind
	return m
}()

// defaultLabel is the label an object carries when the user never edited
// it. Custom blocks default to their dimension string, which is also how
// edited labels are recognized (best effort: a user label that happens to
// equal the current dimensions is treated as default).
func defaultLabel(kind Kind, w, h int) string {
	if kind == KindCustom {
		return fmt.Sprintf("%dx%d", w, h)
	}
	return kindNames[kind]
}

func encodeState(g *Grid, objects []*Object, paint map[Cell]bool) string {
	var tokens []string
	for _, o := range objects {
		if o.Immutable {
			continue
		}
		code, ok := kindCodes[o.Kind]
		if !ok {
			continue
		}
		cell := g.PixelToCell(o.PX, o.PY)

		var b strings.Builder
		b.WriteByte(code)
		if o.Kind == KindCustom {
			b.WriteString(strconv.FormatInt(int64(o.Width), 36))
			b.WriteByte('x')
			b.WriteString(strconv.FormatInt(int64(o.Height), 36))
		} else {
			b.WriteString(strconv.FormatInt(int64(o.Width), 36))
		}
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(int64(cell.X), 36))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(cell.Y), 36))
		if o.Label != "" && o.Label != defaultLabel(o.Kind, o.Width, o.Height) {
			b.WriteByte('~')
			b.WriteString(url.QueryEscape(o.Label))
		}
		tokens = append(tokens, b.String())
	}

	out := fmt.Sprintf("v=%d&b=%s", codecVersion, strings.Join(tokens, ";"))
	if rows := encodePaint(paint); rows != "" {
		out += "&r=" + rows
	}
	return out
}

// encodePaint run-length encodes the user paint set row by row. Returns
// "" for an empty set so the key can be omitted entirely.
func encodePaint(paint map[Cell]bool) string {
	if len(paint) == 0 {
		return ""
	}
	byRow := make(map[int][]int)
	for c, on := range paint {
		if on {
			byRow[c.Y] = append(byRow[c.Y], c.X)
		}
	}
	ys := make([]int, 0, len(byRow))
	for y := range byRow {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	var rows []string
	for _, y := range ys {
		xs := byRow[y]
		sort.Ints(xs)
		var runs []string
		for i := 0; i < len(xs); {
			j := i
			for j+1 < len(xs) && xs[j+1] == xs[j]+1 {
				j++
			}
			if j == i {
				runs = append(runs, strconv.FormatInt(int64(xs[i]), 36))
			} else {
				runs = append(runs, strconv.FormatInt(int64(xs[i]), 36)+"-"+strconv.FormatInt(int64(xs[j]), 36))
			}
			i = j + 1
		}
		rows = append(rows, strconv.FormatInt(int64(y), 36)+":"+strings.Join(runs, ","))
	}
	return strings.Join(rows, ";")
}

func decodeState(s string) ([]decodedObject, map[Cell]bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "?")
	pairs := make(map[string]string)
	for _, part := range strings.Split(s, "&") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			pairs[kv[0]] = kv[1]
		}
	}

	if pairs["v"] == strconv.Itoa(codecVersion) {
		return decodeObjects(pairs["b"], 36), decodePaintRLE(pairs["r"])
	}

	// Legacy format: decimal numbers, flat paint list.
	objects := decodeObjects(pairs["b"], 10)
	paint := decodePaintFlat(pairs["p"])
	return objects, paint
}

// decodeObjects parses the object token list. base selects the numeric
// base (36 current, 10 legacy). Legacy tokens sometimes carried ';'
// between size and coordinates, which the token separator splits apart;
// a fragment that looks like a bare coordinate pair is folded back into
// the preceding token.
func decodeObjects(b string, base int) []decodedObject {
	if b == "" {
		return nil
	}
	var objects []decodedObject
	fragments := strings.Split(b, ";")
	for i := 0; i < len(fragments); i++ {
		frag := fragments[i]
		if frag == "" {
			continue
		}
		if !strings.Contains(frag, "@") && i+1 < len(fragments) && isCoordPair(fragments[i+1], base) {
			frag = frag + "@" + fragments[i+1]
			i++
		}
		if o, ok := parseToken(frag, base); ok {
			objects = append(objects, o)
		} else {
			debugLog("codec: skipping malformed token %q", frag)
		}
	}
	return objects
}

func parseToken(tok string, base int) (decodedObject, bool) {
	if len(tok) < 2 {
		return decodedObject{}, false
	}
	kind, ok := codeToKind[tok[0]]
	if !ok {
		return decodedObject{}, false
	}
	legacyBlock := tok[0] == 'B'
	rest := tok[1:]

	var label string
	hasLabel := false
	if idx := strings.IndexByte(rest, '~'); idx >= 0 {
		if unescaped, err := url.QueryUnescape(rest[idx+1:]); err == nil {
			label = unescaped
			hasLabel = true
		}
		rest = rest[:idx]
	}

	at := strings.IndexByte(rest, '@')
	if at < 0 {
		return decodedObject{}, false
	}
	sizeField, coordField := rest[:at], rest[at+1:]

	var w, h int
	if xi := strings.IndexByte(sizeField, 'x'); xi >= 0 {
		var ok1, ok2 bool
		w, ok1 = parseNum(sizeField[:xi], base)
		h, ok2 = parseNum(sizeField[xi+1:], base)
		if !ok1 || !ok2 {
			return decodedObject{}, false
		}
	} else {
		n, ok := parseNum(sizeField, base)
		if !ok {
			return decodedObject{}, false
		}
		w, h = n, n
	}
	w = clampInt(w, minObjectCells, maxObjectCells)
	h = clampInt(h, minObjectCells, maxObjectCells)

	comma := strings.IndexByte(coordField, ',')
	if comma < 0 {
		return decodedObject{}, false
	}
	cx, ok1 := parseNum(coordField[:comma], base)
	cy, ok2 := parseNum(coordField[comma+1:], base)
	if !ok1 || !ok2 {
		return decodedObject{}, false
	}

	if legacyBlock {
		kind = KindCustom
	}
	return decodedObject{
		Kind:     kind,
		Width:    w,
		Height:   h,
		Cell:     Cell{X: cx, Y: cy},
		Label:    label,
		HasLabel: hasLabel,
	}, true
}

func decodePaintRLE(r string) map[Cell]bool {
	paint := make(map[Cell]bool)
	if r == "" {
		return paint
	}
	for _, row := range strings.Split(r, ";") {
		colon := strings.IndexByte(row, ':')
		if colon < 0 {
			debugLog("codec: skipping malformed paint row %q", row)
			continue
		}
		y, ok := parseNum(row[:colon], 36)
		if !ok {
			continue
		}
		for _, run := range strings.Split(row[colon+1:], ",") {
			if run == "" {
				continue
			}
			if dash := strings.IndexByte(run, '-'); dash > 0 {
				start, ok1 := parseNum(run[:dash], 36)
				end, ok2 := parseNum(run[dash+1:], 36)
				if !ok1 || !ok2 {
					debugLog("codec: skipping malformed paint run %q", run)
					continue
				}
				if end < start {
					start, end = end, start
				}
				for x := start; x <= end; x++ {
					paint[Cell{X: x, Y: y}] = true
				}
			} else {
				x, ok := parseNum(run, 36)
				if !ok {
					debugLog("codec: skipping malformed paint run %q", run)
					continue
				}
				paint[Cell{X: x, Y: y}] = true
			}
		}
	}
	return paint
}

// decodePaintFlat parses the legacy x,y;x,y cell list.
func decodePaintFlat(p string) map[Cell]bool {
	paint := make(map[Cell]bool)
	if p == "" {
		return paint
	}
	for _, entry := range strings.Split(p, ";") {
		if entry == "" {
			continue
		}
		comma := strings.IndexByte(entry, ',')
		if comma < 0 {
			continue
		}
		x, ok1 := parseNum(entry[:comma], 10)
		y, ok2 := parseNum(entry[comma+1:], 10)
		if !ok1 || !ok2 {
			continue
		}
		paint[Cell{X: x, Y: y}] = true
	}
	return paint
}

// parseNum parses a non-negative integer in the given base. Anything
// unparseable or negative fails so the caller can drop just that entry.
func parseNum(s string, base int) (int, bool) {
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}

func isCoordPair(s string, base int) bool {
	comma := strings.IndexByte(s, ',')
	if comma <= 0 {
		return false
	}
	_, ok1 := parseNum(s[:comma], base)
	_, ok2 := parseNum(s[comma+1:], base)
	return ok1 && ok2
}
