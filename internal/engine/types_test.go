package engine

import "testing"

func TestDecodeSelection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "single card", raw: `{"card":2}`},
		{name: "card zero", raw: `{"card":0}`},
		{name: "multi cards", raw: `{"cards":[0,1,2]}`},
		{name: "neither", raw: `{}`, wantErr: true},
		{name: "both", raw: `{"card":0,"cards":[1]}`, wantErr: true},
		{name: "malformed", raw: `{"card":`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := DecodeSelection([]byte(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DecodeSelection(%s) succeeded, want error", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSelection(%s): %v", tc.raw, err)
			}
			if err := sel.Validate(); err != nil {
				t.Fatalf("decoded selection invalid: %v", err)
			}
		})
	}
}

func TestDecodeIterationInputs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "card then enemy turn",
			raw:  `[{"kind":"hand_card_use","selection":{"card":0},"target":0},{"kind":"enemy_turn"}]`,
			want: 2,
		},
		{
			name: "pending select",
			raw:  `[{"kind":"pending_card_select","selection":{"cards":[0,2]}}]`,
			want: 1,
		},
		{name: "empty sequence", raw: `[]`, want: 0},
		{name: "unknown kind", raw: `[{"kind":"dance"}]`, wantErr: true},
		{name: "card use without selection", raw: `[{"kind":"hand_card_use"}]`, wantErr: true},
		{name: "enemy turn with selection", raw: `[{"kind":"enemy_turn","selection":{"card":0}}]`, wantErr: true},
		{name: "selection one-of violation", raw: `[{"kind":"item_use","selection":{"card":0,"cards":[1]}}]`, wantErr: true},
		{name: "not an array", raw: `{"kind":"enemy_turn"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ops, err := DecodeIterationInputs([]byte(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DecodeIterationInputs(%s) succeeded, want error", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeIterationInputs(%s): %v", tc.raw, err)
			}
			if len(ops) != tc.want {
				t.Fatalf("decoded %d inputs, want %d", len(ops), tc.want)
			}
		})
	}
}
