package svgmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// pathBounds returns the bounding box of an SVG path's "d" attribute. Curves
// and arcs contribute their extrema, so the box matches the rendered
// geometry rather than the control polygon.
func pathBounds(d string) (orb.Bound, bool, error) {
	s := &pathScanner{src: d}
	var (
		b        orb.Bound
		have     bool
		cur      orb.Point
		subStart orb.Point
		cmd      byte
		// last control point and the kind of segment that set it ('C' or
		// 'Q'), for the reflections of S and T.
		ctrl     orb.Point
		ctrlKind byte
	)
	add := func(p orb.Point) {
		if !have {
			b = p.Bound()
			have = true
			return
		}
		b = b.Extend(p)
	}
	pair := func(rel bool) (orb.Point, error) {
		x, err := s.number()
		if err != nil {
			return orb.Point{}, err
		}
		y, err := s.number()
		if err != nil {
			return orb.Point{}, err
		}
		if rel {
			return orb.Point{cur[0] + x, cur[1] + y}, nil
		}
		return orb.Point{x, y}, nil
	}
	reflect := func(kind byte) orb.Point {
		if ctrlKind != kind {
			return cur
		}
		return orb.Point{2*cur[0] - ctrl[0], 2*cur[1] - ctrl[1]}
	}

	for {
		s.skipSeparators()
		if s.done() {
			break
		}
		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return b, false, fmt.Errorf("path data must start with a command, got %q", c)
		}

		rel := cmd >= 'a' && cmd <= 'z'
		kind := byte(0)
		switch cmd {
		case 'M', 'm':
			p, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			cur, subStart = p, p
			add(p)
			// Further coordinate pairs are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			p, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			cur = p
			add(p)
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return b, have, err
			}
			if rel {
				x += cur[0]
			}
			cur = orb.Point{x, cur[1]}
			add(cur)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return b, have, err
			}
			if rel {
				y += cur[1]
			}
			cur = orb.Point{cur[0], y}
			add(cur)
		case 'C', 'c', 'S', 's':
			var c1 orb.Point
			if cmd == 'C' || cmd == 'c' {
				p, err := pair(rel)
				if err != nil {
					return b, have, err
				}
				c1 = p
			} else {
				c1 = reflect('C')
			}
			c2, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			end, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			for _, p := range cubicExtrema(cur, c1, c2, end) {
				add(p)
			}
			add(end)
			cur, ctrl, kind = end, c2, 'C'
		case 'Q', 'q', 'T', 't':
			var c1 orb.Point
			if cmd == 'Q' || cmd == 'q' {
				p, err := pair(rel)
				if err != nil {
					return b, have, err
				}
				c1 = p
			} else {
				c1 = reflect('Q')
			}
			end, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			for _, p := range quadExtrema(cur, c1, end) {
				add(p)
			}
			add(end)
			cur, ctrl, kind = end, c1, 'Q'
		case 'A', 'a':
			var radii [3]float64
			for i := range radii {
				v, err := s.number()
				if err != nil {
					return b, have, err
				}
				radii[i] = v
			}
			large, err := s.flag()
			if err != nil {
				return b, have, err
			}
			sweep, err := s.flag()
			if err != nil {
				return b, have, err
			}
			end, err := pair(rel)
			if err != nil {
				return b, have, err
			}
			for _, p := range arcExtrema(cur, end, radii[0], radii[1], radii[2], large, sweep) {
				add(p)
			}
			add(end)
			cur = end
		case 'Z', 'z':
			cur = subStart
			// Z takes no arguments; force the next token to be a command.
			cmd = 0
			s.skipSeparators()
			if !s.done() && !isCommand(s.peek()) {
				return b, have, fmt.Errorf("unexpected data after closepath at %d", s.pos)
			}
		default:
			return b, have, fmt.Errorf("unsupported path command %q", cmd)
		}
		ctrlKind = kind
	}
	return b, have, nil
}

// cubicExtrema returns the points where the cubic Bézier p0..p3 reaches an
// axis extremum strictly inside the segment.
func cubicExtrema(p0, p1, p2, p3 orb.Point) []orb.Point {
	var out []orb.Point
	for axis := 0; axis < 2; axis++ {
		a := -p0[axis] + 3*p1[axis] - 3*p2[axis] + p3[axis]
		b := 2 * (p0[axis] - 2*p1[axis] + p2[axis])
		c := p1[axis] - p0[axis]
		for _, t := range quadRoots(a, b, c) {
			if t <= 0 || t >= 1 {
				continue
			}
			mt := 1 - t
			out = append(out, orb.Point{
				mt*mt*mt*p0[0] + 3*mt*mt*t*p1[0] + 3*mt*t*t*p2[0] + t*t*t*p3[0],
				mt*mt*mt*p0[1] + 3*mt*mt*t*p1[1] + 3*mt*t*t*p2[1] + t*t*t*p3[1],
			})
		}
	}
	return out
}

// quadExtrema is cubicExtrema for a quadratic Bézier.
func quadExtrema(p0, p1, p2 orb.Point) []orb.Point {
	var out []orb.Point
	for axis := 0; axis < 2; axis++ {
		den := p0[axis] - 2*p1[axis] + p2[axis]
		if den == 0 {
			continue
		}
		t := (p0[axis] - p1[axis]) / den
		if t <= 0 || t >= 1 {
			continue
		}
		mt := 1 - t
		out = append(out, orb.Point{
			mt*mt*p0[0] + 2*mt*t*p1[0] + t*t*p2[0],
			mt*mt*p0[1] + 2*mt*t*p1[1] + t*t*p2[1],
		})
	}
	return out
}

// quadRoots solves a*t^2 + b*t + c = 0, falling back to the linear case.
func quadRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// arcExtrema returns the axis extrema of an elliptical arc from p1 to p2
// that lie on the swept part of the ellipse. Degenerate radii make the arc
// a straight line, which has none.
func arcExtrema(p1, p2 orb.Point, rx, ry, rotDeg float64, large, sweep bool) []orb.Point {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p1 == p2 {
		return nil
	}
	phi := rotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Endpoint to center parameterization.
	dx, dy := (p1[0]-p2[0])/2, (p1[1]-p2[1])/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		scale := math.Sqrt(lambda)
		rx, ry = rx*scale, ry*scale
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p1[0]+p2[0])/2
	cy := sinPhi*cxp + cosPhi*cyp + (p1[1]+p2[1])/2

	theta1 := math.Atan2((y1-cyp)/ry, (x1-cxp)/rx)
	theta2 := math.Atan2((-y1-cyp)/ry, (-x1-cxp)/rx)
	delta := theta2 - theta1
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	at := func(theta float64) orb.Point {
		c, s := math.Cos(theta), math.Sin(theta)
		return orb.Point{
			cx + rx*cosPhi*c - ry*sinPhi*s,
			cy + rx*sinPhi*c + ry*cosPhi*s,
		}
	}
	onArc := func(theta float64) bool {
		d := math.Mod(theta-theta1, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if delta >= 0 {
			return d <= delta
		}
		return d == 0 || 2*math.Pi-d <= -delta
	}

	tx := math.Atan2(-ry*sinPhi, rx*cosPhi)
	ty := math.Atan2(ry*cosPhi, rx*sinPhi)
	var out []orb.Point
	for _, theta := range []float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		if onArc(theta) {
			out = append(out, at(theta))
		}
	}
	return out
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.src) }
func (s *pathScanner) peek() byte { return s.src[s.pos] }

func (s *pathScanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', ',', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// number reads one number. Numbers may abut without separators, as in
// "1.5.5" (1.5 then .5) or "3-2" (3 then -2).
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.done() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits, dot := false, false
scan:
	for !s.done() {
		c := s.peek()
		switch {
		case c >= '0' && c <= '9':
			digits = true
			s.pos++
		case c == '.' && !dot:
			dot = true
			s.pos++
		default:
			break scan
		}
	}
	if digits && !s.done() && (s.peek() == 'e' || s.peek() == 'E') {
		save := s.pos
		s.pos++
		if !s.done() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := false
		for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
			expDigits = true
			s.pos++
		}
		if !expDigits {
			s.pos = save
		}
	}
	if !digits {
		return 0, fmt.Errorf("expected number at %d in path data", start)
	}
	return strconv.ParseFloat(s.src[start:s.pos], 64)
}

// flag reads an arc flag, which is a single 0 or 1 and may abut the next
// value.
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.done() || (s.peek() != '0' && s.peek() != '1') {
		return false, fmt.Errorf("expected arc flag at %d in path data", s.pos)
	}
	set := s.peek() == '1'
	s.pos++
	return set, nil
}
