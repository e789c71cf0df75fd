package calendar

import (
	"math"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 2)
	if len(p.Items) != 2 || p.Items[0] != 3 || !p.HasNext || !p.HasPrev || p.Total != 5 {
		t.Fatalf("unexpected page: %+v", p)
	}

	last := Paginate(items, 3, 2)
	if len(last.Items) != 1 || last.HasNext {
		t.Fatalf("unexpected last page: %+v", last)
	}

	beyond := Paginate(items, 10, 2)
	if len(beyond.Items) != 0 || beyond.HasNext {
		t.Fatalf("unexpected page beyond range: %+v", beyond)
	}

	def := Paginate(items, 0, 0)
	if def.Page != 1 || def.PageSize != DefaultPageSize || len(def.Items) != 5 || def.HasPrev {
		t.Fatalf("unexpected defaults: %+v", def)
	}
}

func TestPaginate_HugeValuesDoNotOverflow(t *testing.T) {
	items := []int{1, 2, 3}

	far := Paginate(items, math.MaxInt/10, 20)
	if len(far.Items) != 0 || far.HasNext || !far.HasPrev || far.Total != 3 {
		t.Fatalf("unexpected far page: %+v", far)
	}

	maxPage := Paginate(items, math.MaxInt, math.MaxInt)
	if len(maxPage.Items) != 0 || maxPage.HasNext {
		t.Fatalf("unexpected page for max values: %+v", maxPage)
	}

	wide := Paginate(items, 1, math.MaxInt)
	if len(wide.Items) != 3 || wide.HasNext || wide.HasPrev {
		t.Fatalf("unexpected wide page: %+v", wide)
	}

	second := Paginate(items, 2, math.MaxInt)
	if len(second.Items) != 0 || second.HasNext {
		t.Fatalf("unexpected second wide page: %+v", second)
	}
}
