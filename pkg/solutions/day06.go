package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// orbitMap maps each object to the object it directly orbits.
type orbitMap map[string]string

func parseOrbitMap(input string) (orbitMap, error) {
	orbits := make(orbitMap)
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		around, object, ok := strings.Cut(line, ")")
		if !ok {
			return nil, fmt.Errorf("invalid orbit %q", line)
		}
		orbits[object] = around
	}
	return orbits, nil
}

// checksum counts every direct and indirect orbit in the map.
func (m orbitMap) checksum() int {
	total := 0
	for object := range m {
		for current := object; ; {
			around, ok := m[current]
			if !ok {
				break
			}
			total++
			current = around
		}
	}
	return total
}

// pathToCOM lists the objects visited walking from the given object down to
// the universal center of mass.
func (m orbitMap) pathToCOM(from string) []string {
	var path []string
	for current := from; ; {
		around, ok := m[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = around
	}
	return path
}

// transfersBetween counts the orbital transfers needed to move the object
// `from` orbits next to the object `to` orbits.
func (m orbitMap) transfersBetween(from, to string) int {
	fromPath := m.pathToCOM(from)
	toPath := m.pathToCOM(to)

	// Strip the shared tail down to the common ancestor
	common := 0
	for common < len(fromPath) && common < len(toPath) {
		a := fromPath[len(fromPath)-1-common]
		b := toPath[len(toPath)-1-common]
		if a != b {
			break
		}
		common++
	}

	// The paths include the starting objects themselves, hence the -2
	return len(fromPath) + len(toPath) - 2*common - 2
}

func solveDay6(input string) (Result, error) {
	orbits, err := parseOrbitMap(input)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.Itoa(orbits.checksum()),
		Part2: strconv.Itoa(orbits.transfersBetween("YOU", "SAN")),
	}, nil
}
