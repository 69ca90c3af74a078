package models

import (
	"testing"
	"time"
)

func validItemInput() ItemInput {
	return ItemInput{
		PostType: PostTypeLost,
		Title:    "Lost wallet",
		Email:    "sam@example.com",
		Date:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestItemInput_Validate(t *testing.T) {
	if err := (&ItemInput{}).Validate(); err == nil {
		t.Error("zero input passed validation")
	}

	in := validItemInput()
	if err := in.Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	mutations := map[string]func(*ItemInput){
		"bad post type": func(in *ItemInput) { in.PostType = "stolen" },
		"empty title":   func(in *ItemInput) { in.Title = "" },
		"empty email":   func(in *ItemInput) { in.Email = "" },
		"zero date":     func(in *ItemInput) { in.Date = time.Time{} },
		"bad status":    func(in *ItemInput) { in.Status = "gone" },
	}
	for name, mutate := range mutations {
		in := validItemInput()
		mutate(&in)
		if err := in.Validate(); err == nil {
			t.Errorf("%s: passed validation", name)
		}
	}

	in = validItemInput()
	in.Status = ItemStatusRecovered
	if err := in.Validate(); err != nil {
		t.Errorf("explicit valid status rejected: %v", err)
	}
}

func TestRecoveryInput_Validate(t *testing.T) {
	in := RecoveryInput{
		OriginalItemID: "0b6f7c58-2f9e-4a57-9f7d-3a3cf18cbb5c",
		RecoveredBy:    RecoveredBy{Name: "Finn Finder", Email: "finn@example.com"},
	}
	if err := in.Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	cases := map[string]RecoveryInput{
		"missing item id": {RecoveredBy: RecoveredBy{Name: "F", Email: "f@example.com"}},
		"missing name":    {OriginalItemID: "x", RecoveredBy: RecoveredBy{Email: "f@example.com"}},
		"missing email":   {OriginalItemID: "x", RecoveredBy: RecoveredBy{Name: "F"}},
	}
	for name, in := range cases {
		if err := in.Validate(); err == nil {
			t.Errorf("%s: passed validation", name)
		}
	}
}

func TestStatusPatch_Validate(t *testing.T) {
	for _, s := range []ItemStatus{ItemStatusOpen, ItemStatusRecovered} {
		p := StatusPatch{Status: s}
		if err := p.Validate(); err != nil {
			t.Errorf("status %q rejected: %v", s, err)
		}
	}
	for _, s := range []ItemStatus{"", "gone", "OPEN"} {
		p := StatusPatch{Status: s}
		if err := p.Validate(); err == nil {
			t.Errorf("status %q accepted", s)
		}
	}
}
