package model_test

import (
	"encoding/json"
	"testing"

	"github.com/saadjs/fitmentor/internal/model"
)

func TestAmountDecodesLeniently(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		`{"calories": 450}`:     450,
		`{"calories": "320.5"}`: 320.5,
		`{"calories": " 12 "}`:  12,
		`{"calories": "lots"}`:  0,
		`{"calories": true}`:    0,
		`{"calories": null}`:    0,
		`{"calories": {}}`:      0,
		`{}`:                    0,
	}
	for raw, want := range cases {
		var m model.Meal
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
		if m.Calories.Float() != want {
			t.Fatalf("decode %s: expected %.1f, got %.1f", raw, want, m.Calories.Float())
		}
	}
}

func TestAmountIntTruncates(t *testing.T) {
	t.Parallel()
	if got := model.Amount(45.9).Int(); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
}
