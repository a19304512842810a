package random

import (
	"sort"
	"testing"
)

type fixedSource struct {
	values []int
	calls  int
}

func (source *fixedSource) IntN(n int) int {
	value := source.values[source.calls%len(source.values)] % n
	source.calls++
	return value
}

func TestNewSeededIsDeterministic(t *testing.T) {
	first := NewSeeded(7, 11)
	second := NewSeeded(7, 11)
	for index := 0; index < 32; index++ {
		if a, b := first.IntN(1000), second.IntN(1000); a != b {
			t.Fatalf("draw %d differs: %d vs %d", index, a, b)
		}
	}
}

func TestNewSeedsFromCrypto(t *testing.T) {
	source, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if value := source.IntN(10); value < 0 || value >= 10 {
		t.Fatalf("IntN(10) = %d, out of range", value)
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewSeeded(1, 2), items)

	sorted := append([]int(nil), items...)
	sort.Ints(sorted)
	for index, value := range sorted {
		if value != index+1 {
			t.Fatalf("shuffle lost elements: %v", items)
		}
	}
}

func TestShuffleWithZeroSourceRotates(t *testing.T) {
	items := []string{"a", "b", "c"}
	Shuffle(&fixedSource{values: []int{0}}, items)

	want := []string{"b", "c", "a"}
	for index := range want {
		if items[index] != want[index] {
			t.Fatalf("Shuffle() = %v, want %v", items, want)
		}
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	source := NewSeeded(42, 4242)
	counts := map[[3]int]int{}
	const rounds = 6000
	for round := 0; round < rounds; round++ {
		items := []int{0, 1, 2}
		Shuffle(source, items)
		counts[[3]int{items[0], items[1], items[2]}]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, got %d", len(counts))
	}
	for permutation, count := range counts {
		if count < 800 || count > 1200 {
			t.Fatalf("permutation %v drawn %d times out of %d", permutation, count, rounds)
		}
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []int
		count int
		want  int
	}{
		{name: "fewer than requested", items: []int{1, 2}, count: 3, want: 2},
		{name: "exactly requested", items: []int{1, 2, 3}, count: 3, want: 3},
		{name: "more than requested", items: []int{1, 2, 3, 4, 5, 6}, count: 3, want: 3},
		{name: "empty", items: nil, count: 3, want: 0},
		{name: "zero count", items: []int{1, 2}, count: 0, want: 0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Sample(NewSeeded(3, 5), test.items, test.count)
			if len(got) != test.want {
				t.Fatalf("Sample() len = %d, want %d", len(got), test.want)
			}

			seen := map[int]struct{}{}
			for _, value := range got {
				if _, dup := seen[value]; dup {
					t.Fatalf("Sample() returned duplicate %d in %v", value, got)
				}
				seen[value] = struct{}{}
			}
		})
	}
}

func TestSampleLeavesInputUntouched(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	Sample(&fixedSource{values: []int{4, 3, 2}}, items, 3)
	for index, value := range items {
		if value != index+1 {
			t.Fatalf("Sample() mutated input: %v", items)
		}
	}
}
