package component

import "testing"

func TestJumperStartsGrounded(t *testing.T) {
	var j Jumper
	if j.IsAirborne() {
		t.Fatalf("zero Jumper should be grounded")
	}
	if j.State() != JumpStateGrounded {
		t.Fatalf("expected %s, got %s", JumpStateGrounded, j.State())
	}
}

func TestJumperTransitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   []string
		want    JumpState
		results []bool
	}{
		{"jump_from_ground", []string{"jump"}, JumpStateAirborne, []bool{true}},
		{"jump_twice_second_fails", []string{"jump", "jump"}, JumpStateAirborne, []bool{true, false}},
		{"land_then_jump", []string{"jump", "land", "jump"}, JumpStateAirborne, []bool{true, true}},
		{"land_while_grounded", []string{"land"}, JumpStateGrounded, nil},
		{"land_twice", []string{"jump", "land", "land"}, JumpStateGrounded, []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j Jumper
			var results []bool
			for _, step := range tt.steps {
				switch step {
				case "jump":
					results = append(results, j.RequestJump())
				case "land":
					j.ReportGroundContact()
				}
			}
			if j.State() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, j.State())
			}
			if len(results) != len(tt.results) {
				t.Fatalf("expected results %v, got %v", tt.results, results)
			}
			for i := range results {
				if results[i] != tt.results[i] {
					t.Fatalf("expected results %v, got %v", tt.results, results)
				}
			}
		})
	}
}

func TestJumperNilSafe(t *testing.T) {
	var j *Jumper
	if j.RequestJump() {
		t.Fatalf("nil Jumper must not jump")
	}
	j.ReportGroundContact()
	if j.IsAirborne() {
		t.Fatalf("nil Jumper reports grounded")
	}
}

func TestInputMoveX(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  float64
	}{
		{"neither", Input{}, 0},
		{"left", Input{Left: true}, -1},
		{"right", Input{Right: true}, 1},
		{"both", Input{Left: true, Right: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.MoveX(); got != tt.want {
				t.Fatalf("MoveX() = %v, want %v", got, tt.want)
			}
		})
	}
}
