package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k64z/footballdata/filter"
)

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		set  filter.Set
		want string
	}{
		"nil": {
			set:  nil,
			want: "",
		},
		"empty": {
			set:  filter.Set{},
			want: "",
		},
		"single scalar": {
			set:  filter.Set{}.Add(filter.Areas, 2224),
			want: "areas=2224&",
		},
		"list": {
			set:  filter.Set{}.Add(filter.Areas, 2081, 2072),
			want: "areas=2081,2072&",
		},
		"scalars keep order": {
			set:  filter.Set{}.Add(filter.Matchday, 15).Add(filter.Season, 2023),
			want: "matchday=15&season=2023&",
		},
		"date": {
			set:  filter.Set{}.Add(filter.Date, "2025-01-01"),
			want: "date=2025-01-01&",
		},
		"no escaping": {
			set:  filter.Set{}.Add("q", "a b&c"),
			want: "q=a b&c&",
		},
		"mixed": {
			set: filter.Set{}.
				Add(filter.DateFrom, "2025-01-01").
				Add(filter.Areas, "2081", "2072", "2224").
				Add(filter.DateTo, "2025-01-31"),
			want: "dateFrom=2025-01-01&areas=2081,2072,2224&dateTo=2025-01-31&",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := filter.Encode(tt.set)
			if got != tt.want {
				t.Errorf("Encode() = %q; want %q", got, tt.want)
			}
			if m := tt.set.Encode(); m != got {
				t.Errorf("Set.Encode() = %q; want %q", m, got)
			}
		})
	}
}

func TestEncodeScalarsConcatenate(t *testing.T) {
	set := filter.Set{}
	want := ""
	for _, kv := range [][2]string{{"a", "1"}, {"b", "two"}, {"c", "3.5"}} {
		set = set.Add(kv[0], kv[1])
		want += kv[0] + "=" + kv[1] + "&"

		assert.Equal(t, want, filter.Encode(set))
	}
}

func TestFromMap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, filter.FromMap(nil))
		assert.Equal(t, "", filter.FromMap(nil).Encode())
	})

	t.Run("scalar", func(t *testing.T) {
		got := filter.FromMap(map[string]any{"areas": 2224})
		assert.Equal(t, "areas=2224&", got.Encode())
	})

	t.Run("int slice", func(t *testing.T) {
		got := filter.FromMap(map[string]any{"areas": []int{2081, 2072}})
		assert.Equal(t, "areas=2081,2072&", got.Encode())
	})

	t.Run("any slice", func(t *testing.T) {
		got := filter.FromMap(map[string]any{"areas": []any{2081, "2072"}})
		assert.Equal(t, "areas=2081,2072&", got.Encode())
	})

	t.Run("sorted by key", func(t *testing.T) {
		got := filter.FromMap(map[string]any{
			"season":   2023,
			"matchday": 15,
			"date":     "2025-01-01",
		})
		assert.Equal(t, "date=2025-01-01&matchday=15&season=2023&", got.Encode())
	})
}

func TestParse(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		got, err := filter.Parse([]string{"season=2023", "areas=2081,2072"})
		require.NoError(t, err)

		want := filter.Set{
			{Key: "season", Values: []string{"2023"}},
			{Key: "areas", Values: []string{"2081", "2072"}},
		}
		assert.Equal(t, want, got)
		assert.Equal(t, "season=2023&areas=2081,2072&", got.Encode())
	})

	t.Run("none", func(t *testing.T) {
		got, err := filter.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, "", got.Encode())
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := filter.Parse([]string{"season"})
		assert.Error(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := filter.Parse([]string{"=2023"})
		assert.Error(t, err)
	})
}
