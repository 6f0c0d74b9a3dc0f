package bench

import (
	"encoding/json"
	"testing"

	"github.com/heft-dev/heft/internal/instrument"
)

func TestResultCost(t *testing.T) {
	r := Result{
		Memory:   instrument.Float(10),
		Duration: instrument.Float(250),
	}
	if r.Cost() == nil || *r.Cost() != 2.5 {
		t.Errorf("Expected cost of 2.5, got %v", r.Cost())
	}

	r.Memory = nil
	if r.Cost() != nil {
		t.Errorf("Expected nil cost without memory, got %v", r.Cost())
	}
}

func TestResultCostRounding(t *testing.T) {
	r := Result{
		Memory:   instrument.Float(1.234),
		Duration: instrument.Float(5.678),
	}

	// 1.234 * 5.678 / 1000 = 0.0070066..., rounded to three decimals
	if r.Cost() == nil || *r.Cost() != 0.007 {
		t.Errorf("Expected cost of 0.007, got %v", r.Cost())
	}
}

func TestResultMarshalJSON(t *testing.T) {
	r := Result{
		Target:      "demo",
		Mode:        ModeValue,
		Repetitions: 5,
		Memory:      instrument.Float(10),
		Duration:    instrument.Float(250),
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if decoded["cost"] != 2.5 {
		t.Errorf("Expected derived cost in JSON, got %v", decoded["cost"])
	}
	if decoded["memory"] != 10.0 {
		t.Errorf("Expected memory of 10, got %v", decoded["memory"])
	}
	if decoded["mode"] != "value" {
		t.Errorf("Expected value mode, got %v", decoded["mode"])
	}

	// Inapplicable metrics serialize as explicit nulls, not omissions
	if v, ok := decoded["count"]; !ok || v != nil {
		t.Errorf("Expected count to serialize as null, got %v (present %v)", v, ok)
	}
}
