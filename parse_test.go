package main

import "testing"

func TestParseTenths(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{"23.1", 231}, {"0.0", 0}, {"-5.0", -50}, {"99.9", 999},
		{"-99.9", -999}, {"8.9", 89}, {"123.4", 1234}, {"-0.1", -1},
	} {
		got, err := parseTenths([]byte(tt.in))
		if err != nil {
			t.Errorf("parseTenths(%q): %v", tt.in, err)
		} else if got != tt.want {
			t.Errorf("parseTenths(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTenthsRoundTrip(t *testing.T) {
	for _, in := range []string{"-3.2", "0.0", "99.9", "123.4", "-0.1", "7.5"} {
		v, err := parseTenths([]byte(in))
		if err != nil {
			t.Fatalf("parseTenths(%q): %v", in, err)
		}
		if got := formatTenths(v); got != in {
			t.Errorf("round trip %q -> %d -> %q", in, v, got)
		}
	}
}

func TestParseTenthsMalformed(t *testing.T) {
	for _, in := range []string{
		"", "-", "12", "1.23", "1.", ".5", "-.5", "abc", "4,2", "1..0", "1. 0", "12a.3",
	} {
		if v, err := parseTenths([]byte(in)); err == nil {
			t.Errorf("parseTenths(%q) = %d, want error", in, v)
		}
	}
}

func tableAsMap(tb *table) map[string]stats {
	m := make(map[string]stats)
	tb.each(func(key string, s stats) { m[key] = s })
	return m
}

func TestParseChunk(t *testing.T) {
	data := memSource("Hamburg;12.0\nBulawayo;8.9\nHamburg;34.2\n")
	tb, err := parseChunk(data, chunkRange{0, data.Len()})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]stats{
		"Hamburg":  {min: 120, max: 342, sum: 462, count: 2},
		"Bulawayo": {min: 89, max: 89, sum: 89, count: 1},
	}
	got := tableAsMap(tb)
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %+v, want %+v", k, got[k], w)
		}
	}
}

func TestParseChunkSubRange(t *testing.T) {
	data := memSource("Hamburg;12.0\nBulawayo;8.9\nHamburg;34.2\n")
	// Just the middle line.
	tb, err := parseChunk(data, chunkRange{13, 26})
	if err != nil {
		t.Fatal(err)
	}
	got := tableAsMap(tb)
	if len(got) != 1 || got["Bulawayo"] != (stats{min: 89, max: 89, sum: 89, count: 1}) {
		t.Errorf("sub-range parse = %v", got)
	}
}

func TestParseChunkNoTrailingNewline(t *testing.T) {
	data := memSource("a;1.0\nb;-2.5")
	tb, err := parseChunk(data, chunkRange{0, data.Len()})
	if err != nil {
		t.Fatal(err)
	}
	got := tableAsMap(tb)
	if got["b"] != (stats{min: -25, max: -25, sum: -25, count: 1}) {
		t.Errorf("unterminated last line parsed as %v", got)
	}
}

func TestParseChunkMalformed(t *testing.T) {
	for _, in := range []string{
		"no separator here\n",
		"key;not-a-number\n",
		"key;1.23\n",
		";1.0\n",
	} {
		data := memSource(in)
		if _, err := parseChunk(data, chunkRange{0, data.Len()}); err == nil {
			t.Errorf("parseChunk(%q) succeeded, want error", in)
		}
	}
}
