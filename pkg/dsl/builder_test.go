package dsl

import (
	"testing"

	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/turn"
)

// answers feeds canned results to steps, one per call.
type answers struct {
	results []domain.ActionResult
	data    []any
}

func (a *answers) next() (domain.ActionResult, any) {
	r, d := a.results[0], a.data[0]
	a.results, a.data = a.results[1:], a.data[1:]
	return r, d
}

func fromInput(input domain.InputMethod) (domain.ActionResult, any) {
	return input.(*answers).next()
}

func playerFor(chain *Chain, in *answers) *domain.BasicPlayer {
	return &domain.BasicPlayer{
		PlayerID:    "p1",
		PlayerName:  "Alice",
		InputHandle: in,
		Initial:     chain.Start,
	}
}

func TestBuilder_SimpleChain(t *testing.T) {
	b := New()

	b.Add("pick").
		Do(fromInput).
		Go("confirm")

	b.Add("confirm").
		Do(fromInput).
		Terminal()

	chain, err := b.Build("pick")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	in := &answers{
		results: []domain.ActionResult{domain.Success, domain.Back, domain.Success, domain.Success},
		data:    []any{3, false, 2, true},
	}
	tr := turn.New(1, playerFor(chain, in))
	ok, err := tr.Execute()
	if err != nil || !ok {
		t.Fatalf("Execute() = %v, %v; want true, nil", ok, err)
	}

	pick, err := turn.DataAs[int](tr, "pick")
	if err != nil {
		t.Fatalf("pick data: %v", err)
	}
	if pick != 2 {
		t.Errorf("Expected pick 2 after going back, got %d", pick)
	}
	confirmed, _ := turn.DataAs[bool](tr, "confirm")
	if !confirmed {
		t.Error("Expected confirm=true")
	}
	if got := chain.Tags(); len(got) != 2 || got[0] != "pick" || got[1] != "confirm" {
		t.Errorf("Unexpected tags %v", got)
	}
}

func TestBuilder_Branch(t *testing.T) {
	b := New()
	b.Add("kind").
		Do(fromInput).
		Branch(func(data any) string { return data.(string) })
	b.Add("attack").Do(fromInput)
	b.Add("defend").Do(fromInput)

	chain, err := b.Build("kind")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	in := &answers{
		results: []domain.ActionResult{domain.Success, domain.Success},
		data:    []any{"defend", "shield"},
	}
	tr := turn.New(1, playerFor(chain, in))
	if ok, err := tr.Execute(); err != nil || !ok {
		t.Fatalf("Execute() = %v, %v", ok, err)
	}

	if _, err := tr.Data("attack"); err == nil {
		t.Error("Expected attack to be skipped")
	}
	if got, _ := tr.Data("defend"); got != "shield" {
		t.Errorf("Expected defend=shield, got %v", got)
	}
}

func TestBuilder_BranchToUnknownStep(t *testing.T) {
	b := New()
	b.Add("kind").
		Do(fromInput).
		Branch(func(any) string { return "flee" })

	chain, err := b.Build("kind")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	in := &answers{results: []domain.ActionResult{domain.Success}, data: []any{nil}}
	tr := turn.New(1, playerFor(chain, in))
	if _, err := tr.Execute(); err == nil {
		t.Fatal("Expected an illegal transition for an unknown branch")
	}
}

func TestBuilder_StartIsFreshPerTurn(t *testing.T) {
	b := New()
	b.Add("only").Do(fromInput)
	chain, err := b.Build("only")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	first := chain.Start()
	second := chain.Start()
	if first == second {
		t.Fatal("Expected distinct actions for each run")
	}

	in := &answers{results: []domain.ActionResult{domain.Success}, data: []any{"x"}}
	first.Do(in)
	if second.Data() != nil {
		t.Errorf("Runs must not share data, got %v", second.Data())
	}
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder)
		start string
	}{
		{"missing start", func(b *Builder) { b.Add("a").Do(fromInput) }, "zzz"},
		{"missing do", func(b *Builder) { b.Add("a") }, "a"},
		{"dangling go", func(b *Builder) { b.Add("a").Do(fromInput).Go("b") }, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			if _, err := b.Build(tt.start); err == nil {
				t.Error("Expected Build() to fail")
			}
		})
	}
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	if b.Add("a") != b.Add("a") {
		t.Error("Expected Add to return the existing step builder")
	}
}
