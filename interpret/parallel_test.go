package interpret

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"mdflow/layout"
	"mdflow/tree"
)

const document = `<h1 align="center">Project</h1>
<p>Intro with <a href="#usage">link</a> and <code>code</code>.</p>
<blockquote>
<p>Quoted <em>text</em></p>
</blockquote>
loose <b>inline</b> text
<h2>Usage</h2>
<ol start="3">
<li>first</li>
<li><p>second</p>
<ul>
<li><input type="checkbox" checked="" disabled="" /> nested</li>
</ul>
</li>
</ol>
<a id="anchor"></a>tail<br>after break
<pre style="background-color:#2b303b;"><code><span style="color:#bf616a;">let</span> x = 1;
</code></pre>
<table>
<thead><tr><th>a</th><th align="right">b</th></tr></thead>
<tbody><tr><td>1</td><td>2</td></tr></tbody>
</table>
<hr>
<h2>Usage</h2>
<blockquote><p>after quote</p></blockquote>inline after quote
<p><small>fine print</small></p>`

func TestInterpret_ParallelMatchesSequential(t *testing.T) {
	tr := tree.Parse(strings.NewReader(document), zap.NewNop())
	want := New(testTheme()).Interpret(tr)
	if len(want) == 0 {
		t.Fatal("sequential interpretation produced nothing")
	}

	for _, workers := range []int{2, 3, 8} {
		for range 5 {
			got := New(testTheme(), WithParallel(workers)).Interpret(tr)
			if diff := cmp.Diff(layout.Dump(want), layout.Dump(got)); diff != "" {
				t.Fatalf("workers=%d: parallel output differs (-want +got):\n%s", workers, diff)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("workers=%d: parallel elements differ (-want +got):\n%s", workers, diff)
			}
		}
	}
}

func TestSplitUnits(t *testing.T) {
	tr := tree.Parse(strings.NewReader("a<b>b</b><p>p</p>\n<i>c</i><br>d<hr><ul><li>x</li></ul>"), zap.NewNop())
	units := splitUnits(tr, tr.Root().Content)

	var sizes []int
	for _, u := range units {
		sizes = append(sizes, len(u))
	}
	// [a b] [p] ["\n" i br d] [hr] [ul]
	if diff := cmp.Diff([]int{2, 1, 4, 1, 1}, sizes); diff != "" {
		t.Errorf("unit sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpret_ParallelSingleItem(t *testing.T) {
	tr := tree.Parse(strings.NewReader("<p>only</p>"), zap.NewNop())
	got := New(testTheme(), WithParallel(4)).Interpret(tr)
	if len(got) != 2 {
		t.Errorf("unexpected elements:\n%s", layout.Dump(got))
	}
}
