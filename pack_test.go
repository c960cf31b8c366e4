package pilflow

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

// testContext is a minimal Context implementation for carrier tests.
type testContext struct {
	Label string
	Count int
}

func (c *testContext) Name() string { return ContextName(c) }

func (c *testContext) Validate() error {
	if c.Count < 0 {
		return &ValidationError{Context: c.Name(), Field: "count", Reason: "must be non-negative"}
	}
	return nil
}

func (c *testContext) Data() map[string]any {
	return map[string]any{"label": c.Label, "count": c.Count}
}

func (c *testContext) Restore(data map[string]any) (Context, error) {
	out := &testContext{}
	if v, ok := data["label"].(string); ok {
		out.Label = v
	}
	switch n := data["count"].(type) {
	case int:
		out.Count = n
	case float64:
		out.Count = int(n)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// createTestImage builds a solid-color RGBA image for carrier tests.
func createTestImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPack_Copy_ReturnsNewPack(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(10, 10, color.RGBA{255, 0, 0, 255}))
	p.SetValue("source", "test")

	cp, err := p.Copy(nil, map[string]any{"stage": 1})
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if cp == p {
		t.Fatal("Copy returned the same Pack")
	}
	if cp.Image != p.Image {
		t.Error("Copy without a new image should keep the source image handle")
	}
	if v, _ := cp.Value("source"); v != "test" {
		t.Errorf("source value not carried: got %v", v)
	}
	if v, _ := cp.Value("stage"); v != 1 {
		t.Errorf("update not applied: got %v", v)
	}
	if _, ok := p.Value("stage"); ok {
		t.Error("update leaked into the source Pack")
	}
}

func TestPack_Copy_UpdatesOverrideOldKeys(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{0, 255, 0, 255}))
	p.SetValue("stage", "old")

	cp, err := p.Copy(nil, map[string]any{"stage": "new"})
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if v, _ := cp.Value("stage"); v != "new" {
		t.Errorf("stage: got %v, want new", v)
	}
	if v, _ := p.Value("stage"); v != "old" {
		t.Errorf("source stage mutated: got %v", v)
	}
}

func TestPack_Copy_DeepCopiesStructuredContexts(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{0, 0, 255, 255}))
	p.AddContext(&testContext{Label: "original", Count: 1})

	cp, err := p.Copy(nil, nil)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	src := p.GetContext("test").(*testContext)
	dup := cp.GetContext("test").(*testContext)
	if src == dup {
		t.Fatal("copy shares a context instance with the source")
	}

	// Mutating the copy's context must never change the source's entry.
	dup.Label = "mutated"
	dup.Count = 99
	if src.Label != "original" || src.Count != 1 {
		t.Errorf("source context changed by mutating the copy: %+v", src)
	}
}

func TestPack_Copy_NewImageReplacesHandle(t *testing.T) {
	first := createTestImage(4, 4, color.RGBA{1, 2, 3, 255})
	second := createTestImage(8, 8, color.RGBA{4, 5, 6, 255})

	p := NewWith(NewRegistry(), first)
	cp, err := p.Copy(second, nil)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if cp.Image != second {
		t.Error("Copy did not adopt the new image")
	}
	if p.Image != first {
		t.Error("source image handle changed")
	}
}

func TestPack_AddContext(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))
	p.AddContext(&testContext{Label: "a", Count: 1})

	if !p.HasContext("test") {
		t.Fatal("context not stored under canonical name")
	}
	// The exported fields merge into the legacy values map.
	if v, _ := p.Value("label"); v != "a" {
		t.Errorf("legacy label: got %v, want a", v)
	}

	// A later entry under the same name replaces the earlier one.
	p.AddContext(&testContext{Label: "b", Count: 2})
	if got := p.GetContext("test").(*testContext).Label; got != "b" {
		t.Errorf("replaced context label: got %q, want b", got)
	}
}

func TestPack_AddContextNamed(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))
	p.AddContextNamed("alias", &testContext{Label: "x", Count: 0})

	if !p.HasContext("alias") {
		t.Error("explicit name not used")
	}
	if p.HasContext("test") {
		t.Error("canonical name used despite explicit one")
	}
}

func TestPack_GetContext_AbsentReturnsNil(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))
	if got := p.GetContext("nothing"); got != nil {
		t.Errorf("absent context: got %v, want nil", got)
	}
}

func TestPack_RemoveContext(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))
	p.AddContext(&testContext{Label: "a", Count: 1})

	if !p.RemoveContext("test") {
		t.Error("RemoveContext on a present entry returned false")
	}
	if p.HasContext("test") {
		t.Error("context still present after removal")
	}
	if p.RemoveContext("test") {
		t.Error("RemoveContext on an absent entry returned true")
	}
}

func TestPack_Contexts_ReturnsCopy(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))
	p.AddContext(&testContext{Label: "a", Count: 1})

	all := p.Contexts()
	delete(all, "test")

	if !p.HasContext("test") {
		t.Error("mutating the returned map affected the Pack")
	}
}

func TestPack_Invoke_UnknownOperation(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))

	_, err := p.Invoke("does_not_exist", nil)
	if err == nil {
		t.Fatal("Invoke on unregistered name succeeded")
	}
	if !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("error does not wrap ErrUnknownOperation: %v", err)
	}
	var unknownErr *UnknownOperationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error is not an UnknownOperationError: %v", err)
	}
	if unknownErr.Name != "does_not_exist" {
		t.Errorf("attempted name: got %q, want does_not_exist", unknownErr.Name)
	}
}

func TestPack_Invoke_RegisteredOperation(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterOperation("tag", func(args Args) (Transformer, error) {
		label, err := args.String("label", "default")
		if err != nil {
			return nil, err
		}
		return transformerFunc(func(p *Pack) (*Pack, error) {
			out, err := p.Copy(nil, nil)
			if err != nil {
				return nil, err
			}
			out.AddContext(&testContext{Label: label, Count: 1})
			return out, nil
		}), nil
	})

	p := NewWith(reg, createTestImage(4, 4, color.RGBA{}))
	out, err := p.Invoke("tag", Args{"label": "hello"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out == p {
		t.Error("Invoke returned the input Pack")
	}
	if got := out.GetContext("test").(*testContext).Label; got != "hello" {
		t.Errorf("context label: got %q, want hello", got)
	}
	if p.HasContext("test") {
		t.Error("Invoke mutated the input Pack")
	}
}

func TestPack_Invoke_NameExactness(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterOperation("blur", noopFactory("a"))
	p := NewWith(reg, createTestImage(4, 4, color.RGBA{}))

	if _, err := p.Invoke("blur", nil); err != nil {
		t.Errorf("registered name failed: %v", err)
	}
	if _, err := p.Invoke("Blur", nil); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("near-miss name should fail with ErrUnknownOperation, got: %v", err)
	}
}

func TestPack_Apply_ChainsTransformers(t *testing.T) {
	p := NewWith(NewRegistry(), createTestImage(4, 4, color.RGBA{}))

	counter := 0
	step := transformerFunc(func(p *Pack) (*Pack, error) {
		counter++
		return p.Copy(nil, map[string]any{fmt.Sprintf("step_%d", counter): true})
	})

	out, err := p.Apply(step, step, step)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if _, ok := out.Value(fmt.Sprintf("step_%d", i)); !ok {
			t.Errorf("step %d value missing", i)
		}
	}
}

// transformerFunc adapts a function to the Transformer interface for tests.
type transformerFunc func(*Pack) (*Pack, error)

func (f transformerFunc) Apply(p *Pack) (*Pack, error) { return f(p) }
