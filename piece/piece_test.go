package piece

import "testing"

func TestNewAndAccessors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ   Type
		color Color
		want  Piece
	}{
		{Pawn, White, WhitePawn},
		{King, Black, BlackKing},
		{Knight, White, WhiteKnight},
		{Queen, Black, BlackQueen},
	}
	for _, tt := range tests {
		got := New(tt.typ, tt.color)
		if got != tt.want {
			t.Errorf("New(%v,%v): got=%v want=%v", tt.typ, tt.color, got, tt.want)
		}
		if got.Type() != tt.typ {
			t.Errorf("Type(): got=%v want=%v", got.Type(), tt.typ)
		}
		if got.Color() != tt.color {
			t.Errorf("Color(): got=%v want=%v", got.Color(), tt.color)
		}
	}
}

func TestFromFENSymbol(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sym  byte
		want Piece
		ok   bool
	}{
		{'P', WhitePawn, true},
		{'k', BlackKing, true},
		{'x', None, false},
	}
	for _, tt := range tests {
		got, ok := FromFENSymbol(tt.sym)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromFENSymbol(%c): got=(%v,%v) want=(%v,%v)", tt.sym, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSymbolFEN(t *testing.T) {
	t.Parallel()
	if got := WhiteQueen.SymbolFEN(); got != "Q" {
		t.Errorf("got=%s want=Q", got)
	}
	if got := BlackQueen.SymbolFEN(); got != "q" {
		t.Errorf("got=%s want=q", got)
	}
}

func TestColorOpposite(t *testing.T) {
	t.Parallel()
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is not total")
	}
}

func TestTypeOfNonePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	_ = None.Type()
}
