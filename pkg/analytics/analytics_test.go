package analytics

import "testing"

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("The appellant filed the appeal. The appellant was heard.")
	if freq["appellant"] != 2 {
		t.Errorf("appellant count = %d, want 2", freq["appellant"])
	}
	if freq["appeal"] != 1 {
		t.Errorf("appeal count = %d, want 1", freq["appeal"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' survived filtering")
	}
}

func TestWordFrequencyBengali(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("আদালত রায় দিয়েছে। আদালত বহাল রেখেছে।")
	if freq["আদালত"] != 2 {
		t.Errorf("আদালত count = %d, want 2", freq["আদালত"])
	}
}

func TestWordFrequencyBoilerplate(t *testing.T) {
	a := &Analytics{}

	freq := a.WordFrequency("The learned counsel for the aforesaid appellant")
	if _, ok := freq["learned"]; ok {
		t.Error("judgment boilerplate 'learned' survived filtering")
	}
	if _, ok := freq["aforesaid"]; ok {
		t.Error("judgment boilerplate 'aforesaid' survived filtering")
	}
	if freq["counsel"] != 1 || freq["appellant"] != 1 {
		t.Errorf("substantive terms lost: %v", freq)
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("IsStopword(The) = false")
	}
	if IsStopword("conviction") {
		t.Error("IsStopword(conviction) = true")
	}
}

func TestTopNWords(t *testing.T) {
	a := &Analytics{}

	text := "appeal appeal appeal conviction conviction sentence"
	top := a.TopNWords(text, 2)
	if len(top) != 2 {
		t.Fatalf("TopNWords() returned %d words", len(top))
	}
	if top[0] != "appeal" || top[1] != "conviction" {
		t.Errorf("TopNWords() = %v", top)
	}

	// n larger than vocabulary
	all := a.TopNWords(text, 10)
	if len(all) != 3 {
		t.Errorf("TopNWords(10) returned %d words, want 3", len(all))
	}
}
