package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestComparison_Boundary(t *testing.T) {
	for _, k := range []int{0, 1, 1 << 20} {
		assert.True(t, Equal.Int(k, k), "== at %d", k)
		assert.False(t, LessThan.Int(k, k), "< at %d", k)
		assert.False(t, Greater.Int(k, k), "> at %d", k)
		assert.False(t, NotEqual.Int(k, k), "!= at %d", k)
		assert.True(t, LessEqual.Int(k, k), "<= at %d", k)
		assert.True(t, GreaterEqual.Int(k, k), ">= at %d", k)

		f := float64(k)
		assert.True(t, Equal.Float(f, f))
		assert.False(t, LessThan.Float(f, f))
		assert.False(t, Greater.Float(f, f))
		assert.False(t, NotEqual.Float(f, f))
	}
}

func TestComparison_CountConditionBoundary(t *testing.T) {
	for _, k := range []int{0, 1, 1 << 20} {
		f := newFixture(t)
		f.usa.Credits = k
		cases := map[Comparison]bool{Equal: true, LessThan: false, Greater: false, NotEqual: false, LessEqual: true, GreaterEqual: true}
		for op, want := range cases {
			got := f.evalBody(&PlayerHasCredits{Player: NewPlayerRef("USA"), Op: op, Value: k})
			assert.Equal(t, want, got, "credits %d %s %d", k, op, k)
		}
	}
}

func TestParseComparison(t *testing.T) {
	for sym, want := range map[string]Comparison{"<": LessThan, "<=": LessEqual, "==": Equal, "=": Equal, ">=": GreaterEqual, ">": Greater, "!=": NotEqual} {
		got, err := ParseComparison(sym)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseComparison("~")
	assert.Error(t, err)
}

func TestPlayerRef_YAML(t *testing.T) {
	var doc struct {
		A PlayerRef  `yaml:"a"`
		B PlayerRef  `yaml:"b"`
		C PlayerRef  `yaml:"c"`
		D PlayerRef  `yaml:"d"`
		O Comparison `yaml:"o"`
	}
	src := "a: USA\nb: <This Player's Enemy>\nc: <this player>\nd: <Local Player>\no: '>='\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, "USA", doc.A.Name)
	assert.False(t, doc.A.Volatile)
	assert.True(t, doc.B.Volatile)
	assert.True(t, doc.C.Volatile)
	assert.False(t, doc.D.Volatile)
	assert.Equal(t, GreaterEqual, doc.O)
}
