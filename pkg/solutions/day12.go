package solutions

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// vec3 is an integer position or velocity in space.
type vec3 struct {
	x, y, z int64
}

func (v vec3) add(o vec3) vec3 {
	return vec3{x: v.x + o.x, y: v.y + o.y, z: v.z + o.z}
}

func (v vec3) absSum() int64 {
	return abs64(v.x) + abs64(v.y) + abs64(v.z)
}

// body is one moon with its position and velocity.
type body struct {
	position vec3
	velocity vec3
}

// accelerationTowards is the gravity pull on the body from another: one step
// toward it on each axis.
func (b body) accelerationTowards(other body) vec3 {
	return vec3{
		x: sign64(other.position.x - b.position.x),
		y: sign64(other.position.y - b.position.y),
		z: sign64(other.position.z - b.position.z),
	}
}

// energy is potential times kinetic.
func (b body) energy() int64 {
	return b.position.absSum() * b.velocity.absSum()
}

// moonSystem simulates the moons under pairwise gravity.
type moonSystem struct {
	bodies []body
	step   int
}

var moonPattern = regexp.MustCompile(`<x=([-+]?\d+), y=([-+]?\d+), z=([-+]?\d+)>`)

func parseMoons(input string) (*moonSystem, error) {
	matches := moonPattern.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no moon positions in input")
	}

	system := &moonSystem{}
	for _, match := range matches {
		var position vec3
		var err error
		if position.x, err = strconv.ParseInt(match[1], 10, 64); err != nil {
			return nil, err
		}
		if position.y, err = strconv.ParseInt(match[2], 10, 64); err != nil {
			return nil, err
		}
		if position.z, err = strconv.ParseInt(match[3], 10, 64); err != nil {
			return nil, err
		}
		system.bodies = append(system.bodies, body{position: position})
	}

	return system, nil
}

func (s *moonSystem) clone() *moonSystem {
	bodies := make([]body, len(s.bodies))
	copy(bodies, s.bodies)
	return &moonSystem{bodies: bodies, step: s.step}
}

// advance applies one time step: gravity updates every velocity, then every
// body moves.
func (s *moonSystem) advance() {
	for i := range s.bodies {
		for j := i + 1; j < len(s.bodies); j++ {
			acceleration := s.bodies[i].accelerationTowards(s.bodies[j])
			s.bodies[i].velocity = s.bodies[i].velocity.add(acceleration)
			s.bodies[j].velocity = s.bodies[j].velocity.add(vec3{
				x: -acceleration.x,
				y: -acceleration.y,
				z: -acceleration.z,
			})
		}
	}
	for i := range s.bodies {
		s.bodies[i].position = s.bodies[i].position.add(s.bodies[i].velocity)
	}
	s.step++
}

func (s *moonSystem) energy() int64 {
	var total int64
	for _, b := range s.bodies {
		total += b.energy()
	}
	return total
}

// axisKey encodes the positions and velocities of one axis, since each axis
// evolves independently.
func (s *moonSystem) axisKey(axis int) string {
	var b strings.Builder
	for _, body := range s.bodies {
		var p, v int64
		switch axis {
		case 0:
			p, v = body.position.x, body.velocity.x
		case 1:
			p, v = body.position.y, body.velocity.y
		default:
			p, v = body.position.z, body.velocity.z
		}
		fmt.Fprintf(&b, "%d,%d;", p, v)
	}
	return b.String()
}

// energyAfter advances a copy of the system and returns its total energy.
func (s *moonSystem) energyAfter(steps int) int64 {
	system := s.clone()
	for i := 0; i < steps; i++ {
		system.advance()
	}
	return system.energy()
}

func lcm64(a, b int64) int64 {
	return a / gcd64(a, b) * b
}

// cycleLength finds how many steps the system takes to revisit a previous
// state. Each axis cycles independently, so the answer is the least common
// multiple of the three axis cycles.
func (s *moonSystem) cycleLength() int64 {
	system := s.clone()
	seen := [3]map[string]int{{}, {}, {}}
	var cycles [3]int64

	for {
		found := 0
		for axis := 0; axis < 3; axis++ {
			if cycles[axis] != 0 {
				found++
				continue
			}
			key := system.axisKey(axis)
			if start, ok := seen[axis][key]; ok {
				cycles[axis] = int64(system.step - start)
				found++
				continue
			}
			seen[axis][key] = system.step
		}

		if found == 3 {
			return lcm64(cycles[0], lcm64(cycles[1], cycles[2]))
		}
		system.advance()
	}
}

func solveDay12(input string) (Result, error) {
	system, err := parseMoons(input)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.FormatInt(system.energyAfter(1000), 10),
		Part2: strconv.FormatInt(system.cycleLength(), 10),
	}, nil
}
