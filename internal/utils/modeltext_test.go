package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "bare number", input: "0.85", want: 0.85, ok: true},
		{name: "number with prose", input: "Độ tương đồng là 0.7 trên thang điểm.", want: 0.7, ok: true},
		{name: "integer one", input: "1", want: 1, ok: true},
		{name: "clamped above one", input: "The score is 8 out of 10", want: 1, ok: true},
		{name: "leading dot", input: ".4", want: 0.4, ok: true},
		{name: "no number at all", input: "hoàn toàn khác nhau", want: 0, ok: false},
		{name: "empty", input: "", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseScore(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestCleanModelReply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "  Nike  ", want: "Nike"},
		{name: "double quoted", input: `"Adidas Ultraboost"`, want: "Adidas Ultraboost"},
		{name: "code fence", input: "```\nPuma\n```", want: "Puma"},
		{name: "fence with language", input: "```text\nConverse Chuck Taylor\n```", want: "Converse Chuck Taylor"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelReply(tt.input))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{500000, "500,000"},
		{1250000, "1,250,000"},
		{-42000, "-42,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupThousands(tt.in))
	}
}

func TestFirstDigitRun(t *testing.T) {
	assert.Equal(t, "500000", FirstDigitRun("tìm sản phẩm dưới 500000đ"))
	assert.Equal(t, "3", FirstDigitRun("mua 3 đôi giá 200"))
	assert.Equal(t, "", FirstDigitRun("không có số"))
	assert.Equal(t, "42", FirstDigitRun("42"))
}
