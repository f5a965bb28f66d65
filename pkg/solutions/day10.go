package solutions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrix/advent2019/pkg/logger"
)

type asteroid struct {
	x, y int64
}

// ray is a direction from the monitoring station, normalized so every
// asteroid along the same line of sight maps to the same ray.
type ray struct {
	dx, dy int64
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func sign64(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func rayBetween(from, to asteroid) ray {
	dx := to.x - from.x
	dy := to.y - from.y

	switch {
	case dx == 0:
		dy = sign64(dy)
	case dy == 0:
		dx = sign64(dx)
	default:
		k := gcd64(abs64(dx), abs64(dy))
		dx /= k
		dy /= k
	}

	return ray{dx: dx, dy: dy}
}

// quadrant orders rays clockwise starting straight up, the direction the
// laser fires first.
func (r ray) quadrant() int {
	switch [2]int64{sign64(r.dx), sign64(r.dy)} {
	case [2]int64{0, -1}:
		return 0
	case [2]int64{1, -1}:
		return 1
	case [2]int64{1, 0}:
		return 2
	case [2]int64{1, 1}:
		return 3
	case [2]int64{0, 1}:
		return 4
	case [2]int64{-1, 1}:
		return 5
	case [2]int64{-1, 0}:
		return 6
	default:
		return 7
	}
}

// rayLess orders rays by laser rotation: quadrant first, then slope within
// the quadrant by cross product.
func rayLess(a, b ray) bool {
	qa, qb := a.quadrant(), b.quadrant()
	if qa != qb {
		return qa < qb
	}
	return b.dx*a.dy < a.dx*b.dy
}

func parseAsteroids(input string) ([]asteroid, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	var asteroids []asteroid

	width := -1
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if width < 0 {
			width = len(line)
		}
		if len(line) != width || width == 0 {
			return nil, fmt.Errorf("invalid map line %d: %q", y, line)
		}
		for x, c := range line {
			if c == '#' {
				asteroids = append(asteroids, asteroid{x: int64(x), y: int64(y)})
			}
		}
	}

	if len(asteroids) == 0 {
		return nil, fmt.Errorf("the map has no asteroids")
	}
	return asteroids, nil
}

// visibleFrom groups every other asteroid by its line of sight from the
// station, nearest first within each ray.
func visibleFrom(asteroids []asteroid, station asteroid) map[ray][]asteroid {
	collisions := make(map[ray][]asteroid)
	for _, other := range asteroids {
		if other == station {
			continue
		}
		r := rayBetween(station, other)
		collisions[r] = append(collisions[r], other)
	}

	for _, group := range collisions {
		sort.Slice(group, func(i, j int) bool {
			di := abs64(group[i].x-station.x) + abs64(group[i].y-station.y)
			dj := abs64(group[j].x-station.x) + abs64(group[j].y-station.y)
			return di < dj
		})
	}

	return collisions
}

// bestStation returns the asteroid that can see the most others, with its
// line of sight map.
func bestStation(asteroids []asteroid) (asteroid, map[ray][]asteroid) {
	var best asteroid
	var bestCollisions map[ray][]asteroid

	for _, candidate := range asteroids {
		collisions := visibleFrom(asteroids, candidate)
		if bestCollisions == nil || len(collisions) > len(bestCollisions) {
			best = candidate
			bestCollisions = collisions
		}
	}

	return best, bestCollisions
}

// killOrder vaporizes asteroids the way the rotating laser does: one per
// ray per revolution, nearest first.
func killOrder(collisions map[ray][]asteroid) []asteroid {
	rays := make([]ray, 0, len(collisions))
	for r := range collisions {
		rays = append(rays, r)
	}
	sort.Slice(rays, func(i, j int) bool {
		return rayLess(rays[i], rays[j])
	})

	var kills []asteroid
	remaining := len(collisions)
	for remaining > 0 {
		for _, r := range rays {
			group := collisions[r]
			if len(group) == 0 {
				continue
			}
			kills = append(kills, group[0])
			collisions[r] = group[1:]
			if len(collisions[r]) == 0 {
				remaining--
			}
		}
	}

	return kills
}

func solveDay10(input string) (Result, error) {
	asteroids, err := parseAsteroids(input)
	if err != nil {
		return Result{}, err
	}

	station, collisions := bestStation(asteroids)
	logger.Get().Debug("best monitoring station", "x", station.x, "y", station.y, "visible", len(collisions))
	part1 := len(collisions)

	kills := killOrder(collisions)
	if len(kills) < 200 {
		return Result{}, fmt.Errorf("only %d asteroids to vaporize, need 200", len(kills))
	}
	target := kills[199]

	return Result{
		Part1: strconv.Itoa(part1),
		Part2: strconv.FormatInt(target.x*100+target.y, 10),
	}, nil
}
