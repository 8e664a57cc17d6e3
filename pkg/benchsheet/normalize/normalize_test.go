package normalize

import (
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"Feature-Matrix", "featurematrix"},
		{"feature_matrix", "featurematrix"},
		{"Traction Score(1-5)", "tractionscore15"},
		{"Écart", "ecart"},
		{"Parität", "paritat"},
		{"Lücke", "lucke"},
		{"En ligne", "enligne"},
		{"证据来源", "证据来源"},
		{"价格・GTM", "价格gtm"},
		{"ギャップ", "ギャップ"},
		{"기능 매트릭스", "기능매트릭스"},
		{"  Company/Product ", "companyproduct"},
	}

	for _, tt := range tests {
		result := Key(tt.input)
		if result != tt.expected {
			t.Errorf("Key(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestKeyKeepsKanaVoicing(t *testing.T) {
	// ギ and キ differ only by a combining voiced mark after decomposition.
	if Key("ギ") == Key("キ") {
		t.Errorf("Key collapsed kana voicing mark: %q", Key("ギ"))
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{"Évaluation Produit", "部分ギャップ", "Score de Tracción(1-5)", "부분 격차"}
	for _, in := range inputs {
		once := Key(in)
		if twice := Key(once); twice != once {
			t.Errorf("Key(Key(%q)) = %q, expected %q", in, twice, once)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet("Pricing-GTM", "pricing_gtm", "", "---")
	if len(s) != 1 {
		t.Fatalf("expected 1 key, got %d: %v", len(s), s)
	}
	if !s.Contains("PRICING gtm") {
		t.Errorf("expected set to contain %q", "PRICING gtm")
	}
	if s.Contains("") {
		t.Errorf("empty input must never match")
	}
	if !Equal("Direkt", "direkt") {
		t.Errorf("Equal should ignore case")
	}
}
