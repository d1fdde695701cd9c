package svgpath

import "testing"

func TestScanner_ReadNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantPos int
	}{
		{"integer", "12", 12, 2},
		{"leading separators", "  -3.5,", -3.5, 6},
		{"plus sign", "+7", 7, 2},
		{"leading dot", ".25", 0.25, 3},
		{"trailing dot", "5.", 5, 2},
		{"second dot starts next number", "1.2.3", 1.2, 3},
		{"comma then number", ", 4", 4, 3},
		{"exponent not supported", "1e5", 1, 1},
		{"lone minus", "-", 0, 1},
		{"lone dot", ".", 0, 1},
		{"letter", "abc", 0, 0},
		{"empty", "", 0, 0},
		{"separators only", " ,\t\r\n", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner(tt.input)
			got := s.readNumber()
			if got != tt.want {
				t.Errorf("readNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if s.pos != tt.wantPos {
				t.Errorf("readNumber(%q) pos = %d, want %d", tt.input, s.pos, tt.wantPos)
			}
		})
	}
}

func TestScanner_ReadNumberOverflow(t *testing.T) {
	digits := make([]byte, 400)
	for i := range digits {
		digits[i] = '9'
	}
	s := newScanner(string(digits))
	if got := s.readNumber(); got != 0 {
		t.Errorf("readNumber(400 digits) = %v, want 0", got)
	}
	if !s.done() {
		t.Errorf("readNumber(400 digits) pos = %d, want end of input", s.pos)
	}
}

func TestScanner_PeekNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{" ,5", true},
		{"-1", true},
		{"+1", true},
		{".5", true},
		{"  L", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		s := newScanner(tt.input)
		if got := s.peekNumber(); got != tt.want {
			t.Errorf("peekNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if s.pos != 0 {
			t.Errorf("peekNumber(%q) moved cursor to %d", tt.input, s.pos)
		}
	}
}

func TestScanner_ReadFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantPos int
	}{
		{"1", true, 1},
		{" 0", false, 2},
		{",1", true, 2},
		{"x", false, 1},
		{"11", true, 1},
		{"", false, 0},
	}

	for _, tt := range tests {
		s := newScanner(tt.input)
		if got := s.readFlag(); got != tt.want {
			t.Errorf("readFlag(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if s.pos != tt.wantPos {
			t.Errorf("readFlag(%q) pos = %d, want %d", tt.input, s.pos, tt.wantPos)
		}
	}
}

func TestScanner_NextCommand(t *testing.T) {
	s := newScanner("M1")
	c, ok := s.nextCommand()
	if !ok || c != 'M' {
		t.Errorf("nextCommand() = %q, %v, want 'M', true", c, ok)
	}
	if s.pos != 1 {
		t.Errorf("nextCommand() pos = %d, want 1", s.pos)
	}

	c, ok = s.nextCommand()
	if ok {
		t.Errorf("nextCommand() on digit = %q, true, want false", c)
	}
	if s.pos != 1 {
		t.Errorf("nextCommand() on digit moved cursor to %d", s.pos)
	}

	empty := newScanner("")
	if _, ok := empty.nextCommand(); ok {
		t.Error("nextCommand() on empty input returned true")
	}
}

func TestScanner_SkipSeparators(t *testing.T) {
	s := newScanner(" ,\t\n\rM")
	s.skipSeparators()
	if s.pos != 5 {
		t.Errorf("skipSeparators() pos = %d, want 5", s.pos)
	}
	s.skipSeparators()
	if s.pos != 5 {
		t.Errorf("skipSeparators() on letter moved cursor to %d", s.pos)
	}
}
