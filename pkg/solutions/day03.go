package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

type wireDirection int

const (
	wireLeft wireDirection = iota
	wireRight
	wireUp
	wireDown
)

// wireSegment is one straight run of a wire. totalLength is the wire length
// from the central port to the segment's endpoint.
type wireSegment struct {
	direction   wireDirection
	length      int64
	startX      int64
	startY      int64
	totalLength int64
}

func (s wireSegment) endpoint() (int64, int64) {
	switch s.direction {
	case wireLeft:
		return s.startX - s.length, s.startY
	case wireRight:
		return s.startX + s.length, s.startY
	case wireUp:
		return s.startX, s.startY - s.length
	default:
		return s.startX, s.startY + s.length
	}
}

// matchHorizontal reports whether a horizontal segment covers column x.
func (s wireSegment) matchHorizontal(x int64) bool {
	a, b := s.startX, s.startX
	switch s.direction {
	case wireLeft:
		a -= s.length
	case wireRight:
		b += s.length
	default:
		return false
	}
	return a <= x && x <= b
}

// matchVertical reports whether a vertical segment covers row y.
func (s wireSegment) matchVertical(y int64) bool {
	a, b := s.startY, s.startY
	switch s.direction {
	case wireUp:
		a -= s.length
	case wireDown:
		b += s.length
	default:
		return false
	}
	return a <= y && y <= b
}

// intersects returns the crossing point of two perpendicular segments.
func (s wireSegment) intersects(other wireSegment) (x, y int64, ok bool) {
	if s.matchHorizontal(other.startX) && other.matchVertical(s.startY) {
		return other.startX, s.startY, true
	}
	if s.matchVertical(other.startY) && other.matchHorizontal(s.startX) {
		return s.startX, other.startY, true
	}
	return 0, 0, false
}

// lengthForPoint is the wire length from the central port to a point on the
// segment.
func (s wireSegment) lengthForPoint(x, y int64) int64 {
	var relative int64
	switch s.direction {
	case wireLeft:
		relative = s.startX - x
	case wireRight:
		relative = x - s.startX
	case wireUp:
		relative = s.startY - y
	default:
		relative = y - s.startY
	}
	return s.totalLength - s.length + relative
}

func parseWire(s string) ([]wireSegment, error) {
	var segments []wireSegment
	var x, y, totalLength int64

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty wire segment")
		}

		var direction wireDirection
		switch part[0] {
		case 'L':
			direction = wireLeft
		case 'R':
			direction = wireRight
		case 'U':
			direction = wireUp
		case 'D':
			direction = wireDown
		default:
			return nil, fmt.Errorf("invalid wire direction in %q", part)
		}

		length, err := strconv.ParseInt(part[1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wire segment %q: %w", part, err)
		}

		totalLength += length
		segment := wireSegment{
			direction:   direction,
			length:      length,
			startX:      x,
			startY:      y,
			totalLength: totalLength,
		}
		x, y = segment.endpoint()
		segments = append(segments, segment)
	}

	return segments, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func solveDay3(input string) (Result, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) != 2 {
		return Result{}, fmt.Errorf("expected 2 wires, got %d", len(lines))
	}

	first, err := parseWire(lines[0])
	if err != nil {
		return Result{}, err
	}
	second, err := parseWire(lines[1])
	if err != nil {
		return Result{}, err
	}

	var bestDistance, bestLength int64 = -1, -1

	for _, a := range first {
		for _, b := range second {
			x, y, ok := a.intersects(b)
			if !ok {
				continue
			}
			// Both wires start at the central port; that crossing does
			// not count.
			if x == 0 && y == 0 {
				continue
			}

			distance := abs64(x) + abs64(y)
			if bestDistance < 0 || distance < bestDistance {
				bestDistance = distance
			}

			length := a.lengthForPoint(x, y) + b.lengthForPoint(x, y)
			if bestLength < 0 || length < bestLength {
				bestLength = length
			}
		}
	}

	if bestDistance < 0 {
		return Result{}, fmt.Errorf("the wires never cross")
	}

	return Result{
		Part1: strconv.FormatInt(bestDistance, 10),
		Part2: strconv.FormatInt(bestLength, 10),
	}, nil
}
