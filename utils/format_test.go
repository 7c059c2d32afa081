package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT1H30M", "1小時30分鐘"},
		{"P1DT2H", "1天2小時"},
		{"PT45M", "45分鐘"},
		{"PT30S", "30秒"},
		{"P2DT3H4M5S", "2天3小時4分鐘5秒"},
		{"", "未知時間"},
		{"garbage", "未知時間"},
		{"P", "未知時間"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDuration(c.in), "input %q", c.in)
	}
}

func TestInstrumentName(t *testing.T) {
	assert.Equal(t, "爵士鼓", InstrumentName("DRUMS"))
	assert.Equal(t, "KAZOO", InstrumentName("KAZOO"))
}

func TestCodeValidation(t *testing.T) {
	assert.True(t, ValidCityCode("C01"))
	assert.True(t, ValidCityCode("C22"))
	assert.False(t, ValidCityCode("C99"))
	assert.True(t, ValidInstrumentCode("PIANO"))
	assert.False(t, ValidInstrumentCode("piano"))
}
