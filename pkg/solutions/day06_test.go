package solutions

import "testing"

const orbitExample = `COM)B
B)C
C)D
D)E
E)F
B)G
G)H
D)I
E)J
J)K
K)L`

func TestOrbitChecksum(t *testing.T) {
	orbits, err := parseOrbitMap(orbitExample)
	if err != nil {
		t.Fatalf("parseOrbitMap failed: %v", err)
	}

	if got := orbits.checksum(); got != 42 {
		t.Errorf("checksum = %d, want 42", got)
	}
}

func TestSolveDay6(t *testing.T) {
	input := orbitExample + "\nK)YOU\nI)SAN\n"

	result, err := solveDay6(input)
	if err != nil {
		t.Fatalf("solveDay6 failed: %v", err)
	}

	if result.Part1 != "54" {
		t.Errorf("Part1 = %s, want 54", result.Part1)
	}
	if result.Part2 != "4" {
		t.Errorf("Part2 = %s, want 4", result.Part2)
	}
}

func TestParseOrbitMapRejectsBadLine(t *testing.T) {
	if _, err := parseOrbitMap("COM-B"); err == nil {
		t.Error("expected error for a line without the ) separator")
	}
}
