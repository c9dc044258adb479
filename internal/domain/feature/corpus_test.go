package feature

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNewCorpus_IgnoresEmptyDocuments(t *testing.T) {
	c := NewCorpus([]Document{
		{Key: "a", Terms: []string{"go", "redis"}},
		{Key: "b", Terms: nil},
		{Key: "c", Terms: []string{"go", "go"}},
	})
	if c.Size() != 2 {
		t.Fatalf("expected 2 documents, got %d", c.Size())
	}
	if c.VocabularySize() != 2 {
		t.Fatalf("expected vocabulary 2, got %d", c.VocabularySize())
	}
}

func TestCorpus_IDF(t *testing.T) {
	c := NewCorpus([]Document{
		{Key: "a", Terms: []string{"go", "redis"}},
		{Key: "b", Terms: []string{"go"}},
		{Key: "c", Terms: []string{"python"}},
		{Key: "d", Terms: []string{"rust"}},
	})

	// df(go)=2, N=4
	want := 1 + math.Log(4.0/3.0)
	if got := c.IDF("go"); math.Abs(got-want) > eps {
		t.Fatalf("IDF(go) = %v, want %v", got, want)
	}
	// unseen term
	want = 1 + math.Log(4.0)
	if got := c.IDF("java"); math.Abs(got-want) > eps {
		t.Fatalf("IDF(java) = %v, want %v", got, want)
	}
	if c.IDF("redis") <= c.IDF("go") {
		t.Fatal("rarer term must weigh more")
	}
}

func TestCorpus_IDFEmptyCorpus(t *testing.T) {
	c := NewCorpus(nil)
	if got := c.IDF("go"); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCorpus_Vectorize(t *testing.T) {
	c := NewCorpus([]Document{
		{Key: "a", Terms: []string{"go", "redis"}},
		{Key: "b", Terms: []string{"python"}},
	})
	v := c.Vectorize([]string{"go", "go", "redis"})

	if got, want := v.Weight("go"), 2*c.IDF("go"); math.Abs(got-want) > eps {
		t.Fatalf("weight(go) = %v, want %v", got, want)
	}
	if got, want := v.Weight("redis"), c.IDF("redis"); math.Abs(got-want) > eps {
		t.Fatalf("weight(redis) = %v, want %v", got, want)
	}
	if v.Weight("python") != 0 {
		t.Fatal("absent term must weigh 0")
	}
}

func TestCorpus_VectorizeEmpty(t *testing.T) {
	c := NewCorpus([]Document{{Key: "a", Terms: []string{"go"}}})
	if v := c.Vectorize(nil); !v.IsEmpty() {
		t.Fatalf("expected empty vector, got %v", v)
	}
	if v := NewCorpus(nil).Vectorize([]string{"go"}); !v.IsEmpty() {
		t.Fatalf("expected empty vector on empty corpus, got %v", v)
	}
}

func TestCorpus_VectorizeAll(t *testing.T) {
	docs := []Document{
		{Key: "project:p1", Terms: []string{"react"}},
		{Key: "collaborator:u1", Terms: nil},
	}
	c := NewCorpus(docs)
	vs := c.VectorizeAll(docs)
	if len(vs) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vs))
	}
	if vs["project:p1"].IsEmpty() {
		t.Fatal("expected non-empty project vector")
	}
	if !vs["collaborator:u1"].IsEmpty() {
		t.Fatal("expected empty collaborator vector")
	}
}

func TestVector_NormAndTerms(t *testing.T) {
	v := Vector{"b": 3, "a": 4}
	if v.SquaredNorm() != 25 {
		t.Fatalf("SquaredNorm() = %v, want 25", v.SquaredNorm())
	}
	if v.Norm() != 5 {
		t.Fatalf("Norm() = %v, want 5", v.Norm())
	}
	terms := v.Terms()
	if len(terms) != 2 || terms[0] != "a" || terms[1] != "b" {
		t.Fatalf("Terms() = %v", terms)
	}
	if (Vector{"x": 0}).IsEmpty() != true {
		t.Fatal("zero-weight vector must be empty")
	}
	var nilVec Vector
	if nilVec.Weight("x") != 0 || nilVec.Norm() != 0 || !nilVec.IsEmpty() {
		t.Fatal("nil vector must behave as empty")
	}
}
