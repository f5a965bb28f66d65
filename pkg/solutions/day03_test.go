package solutions

import "testing"

func TestSolveDay3(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part1 string
		part2 string
	}{
		{
			name:  "small example",
			input: "R8,U5,L5,D3\nU7,R6,D4,L4",
			part1: "6",
			part2: "30",
		},
		{
			name: "second example",
			input: "R75,D30,R83,U83,L12,D49,R71,U7,L72\n" +
				"U62,R66,U55,R34,D71,R55,D58,R83",
			part1: "159",
			part2: "610",
		},
		{
			name: "third example",
			input: "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51\n" +
				"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
			part1: "135",
			part2: "410",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := solveDay3(tt.input)
			if err != nil {
				t.Fatalf("solveDay3 failed: %v", err)
			}
			if result.Part1 != tt.part1 {
				t.Errorf("Part1 = %s, want %s", result.Part1, tt.part1)
			}
			if result.Part2 != tt.part2 {
				t.Errorf("Part2 = %s, want %s", result.Part2, tt.part2)
			}
		})
	}
}

func TestParseWireRejectsBadInput(t *testing.T) {
	for _, input := range []string{"X5", "R", "R5,,U3"} {
		if _, err := parseWire(input); err == nil {
			t.Errorf("parseWire(%q) expected error", input)
		}
	}
}

func TestSolveDay3RequiresTwoWires(t *testing.T) {
	if _, err := solveDay3("R8,U5"); err == nil {
		t.Error("expected error for a single wire")
	}
}
