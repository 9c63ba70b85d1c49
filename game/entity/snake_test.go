package entity

import (
	"reflect"
	"testing"

	"snake-arcade/game/types"
)

func TestNewSnakeLaysBodyBehindHead(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)
	want := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if s.Head() != (types.Point{X: 5, Y: 5}) || s.Len() != 3 {
		t.Fatalf("head/len = %v/%d", s.Head(), s.Len())
	}

	single := NewSnake(types.Point{X: 10, Y: 10}, types.Up, 0)
	if single.Len() != 1 {
		t.Fatalf("length clamp: got %d segments", single.Len())
	}
}

func TestAdvanceMovesAndGrows(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)

	moved := s.Advance(s.NextHead(), false)
	if want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}; !reflect.DeepEqual(moved.Body, want) {
		t.Fatalf("moved body = %v, want %v", moved.Body, want)
	}

	grown := s.Advance(s.NextHead(), true)
	if want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}; !reflect.DeepEqual(grown.Body, want) {
		t.Fatalf("grown body = %v, want %v", grown.Body, want)
	}

	if want := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}; !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("Advance mutated the receiver: %v", s.Body)
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2}, types.Down, 3)
	if !s.Occupies(types.Point{X: 2, Y: 0}) {
		t.Fatalf("tail cell should be occupied: %v", s.Body)
	}
	if s.Occupies(types.Point{X: 2, Y: 3}) {
		t.Fatalf("cell ahead of head should be free")
	}
}
