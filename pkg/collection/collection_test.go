package collection_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]string{"salad", "pizza", "soup"}, func(s string) bool {
		return s[0] == 's'
	})
	if !reflect.DeepEqual(got, []string{"salad", "soup"}) {
		t.Errorf("got %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	if !ok || v != 2 {
		t.Errorf("got %v, %v", v, ok)
	}

	_, ok = collection.First([]int{1, 2, 3}, func(n int) bool { return n > 10 })
	if ok {
		t.Error("expected no match")
	}
}

func TestGroupBy(t *testing.T) {
	type dish struct {
		name     string
		category string
	}
	dishes := []dish{
		{"Caeser Salad", "salad"},
		{"Tuna Niçoise", "salad"},
		{"Lemon Tart", "dessert"},
	}
	got := collection.GroupBy(dishes, func(d dish) string { return d.category })
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2", len(got))
	}
	if len(got["salad"]) != 2 || len(got["dessert"]) != 1 {
		t.Errorf("got %v", got)
	}
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce([]float64{14.5, 10.5}, 0.0, func(acc, v float64) float64 {
		return acc + v
	})
	if sum != 25 {
		t.Errorf("sum = %v", sum)
	}
}

func TestContains(t *testing.T) {
	ids := []string{"a1", "b2"}
	if !collection.Contains(ids, "a1") {
		t.Error("expected a1")
	}
	if collection.Contains(ids, "c3") {
		t.Error("did not expect c3")
	}
}

func TestFlatten(t *testing.T) {
	got := collection.Flatten([][]int{{1, 2}, {3}, nil})
	sort.Ints(got)
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}
